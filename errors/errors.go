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

package errors

import (
	"fmt"
	"strings"
)

// Errno identifies the specific error. The error message associated with each
// Errno lives in the messages map.
type Errno int

// FormattedError is the error type used throughout the emulation. Values are
// not formatted into the message until Error() is called.
type FormattedError struct {
	Errno  Errno
	Values []interface{}
}

// NewFormattedError creates a new FormattedError.
func NewFormattedError(errno Errno, values ...interface{}) FormattedError {
	return FormattedError{
		Errno:  errno,
		Values: values,
	}
}

// Error returns the normalised error message. Normalisation is the removal of
// duplicate adjacent message parts, which occur when a FormattedError wraps
// another FormattedError of the same Errno.
//
// Implements the error interface.
func (er FormattedError) Error() string {
	s := fmt.Sprintf(messages[er.Errno], er.Values...)

	p := strings.SplitN(s, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		return strings.Join(p[1:], ": ")
	}

	return strings.Join(p, ": ")
}

// Is checks if an error is a FormattedError with the specified Errno.
func Is(err error, errno Errno) bool {
	er, ok := err.(FormattedError)
	if !ok {
		return false
	}
	return er.Errno == errno
}

// IsAny checks if an error is a FormattedError of any Errno.
func IsAny(err error) bool {
	_, ok := err.(FormattedError)
	return ok
}

// Has checks if the specified Errno appears anywhere in the error chain.
func Has(err error, errno Errno) bool {
	if !IsAny(err) {
		return false
	}

	if Is(err, errno) {
		return true
	}

	for _, v := range err.(FormattedError).Values {
		if e, ok := v.(FormattedError); ok {
			if Has(e, errno) {
				return true
			}
		}
	}

	return false
}
