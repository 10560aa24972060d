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

import "strings"

// StatusRegister is the special purpose register of the 6507. The flags are
// public fields; interrogating and setting them individually is how the CPU
// uses them almost all of the time. Value() and Load() exist for the
// instructions that move the whole register through the stack.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the
// StatusRegister type.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// String returns the status flags in the conventional sv-bdizc notation;
// upper case meaning the flag is set.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) rune {
		if set {
			return r - 0x20
		}
		return r
	}

	s.WriteRune(flag(sr.Sign, 's'))
	s.WriteRune(flag(sr.Overflow, 'v'))
	s.WriteRune('-')
	s.WriteRune(flag(sr.Break, 'b'))
	s.WriteRune(flag(sr.DecimalMode, 'd'))
	s.WriteRune(flag(sr.InterruptDisable, 'i'))
	s.WriteRune(flag(sr.Zero, 'z'))
	s.WriteRune(flag(sr.Carry, 'c'))

	return s.String()
}

// Label returns the label assigned to the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// Reset the status flags to their initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(0)
}

// Value returns the status register as an 8 bit value, as it would appear
// on the stack.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.Break {
		v |= 0x10
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}

	// the unused bit in the status register is always 1 when read
	v |= 0x20

	return v
}

// Load the status register from an 8 bit value.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
	sr.Break = v&0x10 == 0x10
	sr.DecimalMode = v&0x08 == 0x08
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}
