// This file is part of atari2600.
//
// atari2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// atari2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with atari2600.  If not, see <https://www.gnu.org/licenses/>.

package debugger

import (
	"bufio"
	"fmt"
	"io"
)

// Terminal defines the operations the debugger requires of its terminal.
// The rawterm package provides the implementation used in an interactive
// session; PlainTerminal works with any reader and writer, which is ideal
// for scripts and for tests.
type Terminal interface {
	// UserRead waits for the next line of input. the returned count
	// includes the line terminator
	UserRead(buffer []byte, prompt string) (int, error)

	// UserPrint sends formatted output to the user
	UserPrint(s string, a ...interface{})

	// CleanUp restores any state the terminal implementation has disturbed
	CleanUp()
}

// PlainTerminal is the simplest possible implementation of the Terminal
// interface.
type PlainTerminal struct {
	input  *bufio.Scanner
	output io.Writer
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	return &PlainTerminal{
		input:  bufio.NewScanner(input),
		output: output,
	}
}

// UserRead implements the Terminal interface.
func (pt *PlainTerminal) UserRead(buffer []byte, prompt string) (int, error) {
	pt.UserPrint(prompt)

	if !pt.input.Scan() {
		if err := pt.input.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}

	n := copy(buffer, pt.input.Bytes())
	return n, nil
}

// UserPrint implements the Terminal interface.
func (pt *PlainTerminal) UserPrint(s string, a ...interface{}) {
	fmt.Fprintf(pt.output, s, a...)
}

// CleanUp implements the Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}
