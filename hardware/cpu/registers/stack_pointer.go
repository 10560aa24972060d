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

package registers

import "fmt"

// StackPointer is the specialised 8 bit register of the 6507. It differs
// from a plain Register in how the value converts to an address: the stack
// always sits in page one of the address space.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer type.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%#02x", sp.value)
}

// Label returns the label assigned to the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

// Value returns the current value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the address pointed to by the stack pointer; the value
// offset into page one.
func (sp StackPointer) Address() uint16 {
	return 0x0100 | uint16(sp.value)
}

// Load a value into the stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Add a value to the stack pointer. The stack pointer wraps around inside
// page one; there is no carry to speak of.
func (sp *StackPointer) Add(val uint8) {
	sp.value += val
}
