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

// Package rawterm puts the controlling terminal into raw mode for the
// debugger, giving it the input one keystroke at a time. Only the editing
// the debugger needs is implemented: backspace and ctrl-c.
package rawterm

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/term"
)

// control bytes we react to while in raw mode
const (
	keyCtrlC          = 0x03
	keyBackspace      = 0x08
	keyCarriageReturn = 0x0d
	keyDelete         = 0x7f
)

// RawTerminal is an implementation of the debugger's Terminal interface on
// the process's controlling terminal.
type RawTerminal struct {
	tty *term.Term
}

// NewRawTerminal is the preferred method of initialisation for the
// RawTerminal type.
func NewRawTerminal() (*RawTerminal, error) {
	tty, err := term.Open("/dev/tty")
	if err != nil {
		return nil, err
	}
	return &RawTerminal{tty: tty}, nil
}

// UserRead implements the debugger.Terminal interface. The line is built a
// keystroke at a time; ctrl-c ends the session.
func (rt *RawTerminal) UserRead(buffer []byte, prompt string) (int, error) {
	if err := term.RawMode(rt.tty); err != nil {
		return 0, err
	}
	defer rt.tty.Restore()

	rt.UserPrint("%s", prompt)

	b := make([]byte, 1)
	n := 0

	for {
		if _, err := rt.tty.Read(b); err != nil {
			return n, err
		}

		switch b[0] {
		case keyCtrlC:
			rt.UserPrint("\r\n")
			return n, io.EOF

		case keyCarriageReturn:
			rt.UserPrint("\r\n")
			return n, nil

		case keyBackspace, keyDelete:
			if n > 0 {
				n--
				rt.UserPrint("\b \b")
			}

		default:
			if b[0] >= 0x20 && b[0] < 0x7f && n < len(buffer) {
				buffer[n] = b[0]
				n++
				rt.UserPrint("%c", b[0])
			}
		}
	}
}

// UserPrint implements the debugger.Terminal interface.
func (rt *RawTerminal) UserPrint(s string, a ...interface{}) {
	fmt.Fprintf(os.Stdout, s, a...)
}

// CleanUp implements the debugger.Terminal interface.
func (rt *RawTerminal) CleanUp() {
	rt.tty.Restore()
	rt.tty.Close()
}
