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

package registers_test

import (
	"testing"

	"github.com/ltriant/atari2600/hardware/cpu/registers"
	"github.com/ltriant/atari2600/test"
)

func TestRegisterArithmetic(t *testing.T) {
	r := registers.NewRegister(0, "test")

	carry, overflow := r.Add(0x10, false)
	test.Equate(t, r.Value(), 0x10)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, false)

	// carry out
	r.Load(0xff)
	carry, overflow = r.Add(0x01, false)
	test.Equate(t, r.Value(), 0x00)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)
	test.Equate(t, r.IsZero(), true)

	// signed overflow; 0x7f + 0x01 = -128
	r.Load(0x7f)
	carry, overflow = r.Add(0x01, false)
	test.Equate(t, r.Value(), 0x80)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, true)
	test.Equate(t, r.IsNegative(), true)

	// carry in
	r.Load(0x01)
	carry, _ = r.Add(0x01, true)
	test.Equate(t, r.Value(), 0x03)
	test.Equate(t, carry, false)
}

func TestRegisterSubtract(t *testing.T) {
	r := registers.NewRegister(0x64, "test")

	// subtraction with carry set is subtraction without borrow
	carry, overflow := r.Subtract(0x32, true)
	test.Equate(t, r.Value(), 0x32)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)

	// subtracting past zero clears carry (borrow occurred)
	r.Load(0x01)
	carry, _ = r.Subtract(0x02, true)
	test.Equate(t, r.Value(), 0xff)
	test.Equate(t, carry, false)
	test.Equate(t, r.IsNegative(), true)
}

func TestRegisterShifts(t *testing.T) {
	r := registers.NewRegister(0x81, "test")

	test.Equate(t, r.ASL(), true)
	test.Equate(t, r.Value(), 0x02)

	test.Equate(t, r.LSR(), false)
	test.Equate(t, r.Value(), 0x01)
	test.Equate(t, r.LSR(), true)
	test.Equate(t, r.Value(), 0x00)

	r.Load(0x80)
	test.Equate(t, r.ROL(true), true)
	test.Equate(t, r.Value(), 0x01)

	r.Load(0x01)
	test.Equate(t, r.ROR(true), true)
	test.Equate(t, r.Value(), 0x80)
}

func TestDecimalMode(t *testing.T) {
	r := registers.NewRegister(0x19, "test")

	// 19 + 1 = 20 in BCD
	carry, zero, _, _ := r.AddDecimal(0x01, false)
	test.Equate(t, r.Value(), 0x20)
	test.Equate(t, carry, false)
	test.Equate(t, zero, false)

	// 99 + 1 wraps to 00 with carry
	r.Load(0x99)
	carry, _, _, _ = r.AddDecimal(0x01, false)
	test.Equate(t, r.Value(), 0x00)
	test.Equate(t, carry, true)

	// 20 - 1 = 19 in BCD (carry set means no borrow)
	r.Load(0x20)
	carry, zero, _, _ = r.SubtractDecimal(0x01, true)
	test.Equate(t, r.Value(), 0x19)
	test.Equate(t, carry, true)
	test.Equate(t, zero, false)

	// 00 - 1 wraps to 99 with borrow
	r.Load(0x00)
	carry, _, _, _ = r.SubtractDecimal(0x01, true)
	test.Equate(t, r.Value(), 0x99)
	test.Equate(t, carry, false)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0xfffe)
	test.Equate(t, int(pc.Address()), 0xfffe)

	cycled := pc.Add(1)
	test.Equate(t, cycled, false)
	test.Equate(t, int(pc.Address()), 0xffff)

	cycled = pc.Add(1)
	test.Equate(t, cycled, true)
	test.Equate(t, int(pc.Address()), 0x0000)
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0xff)
	test.Equate(t, int(sp.Address()), 0x01ff)

	// decrement by adding 0xff
	sp.Add(0xff)
	test.Equate(t, int(sp.Address()), 0x01fe)

	// the stack pointer stays in page one when it wraps
	sp.Load(0x00)
	sp.Add(0xff)
	test.Equate(t, int(sp.Address()), 0x01ff)
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()

	// unused bit is always set
	test.Equate(t, sr.Value(), 0x20)

	sr.Carry = true
	sr.Sign = true
	test.Equate(t, sr.Value(), 0xa1)
	test.Equate(t, sr.String(), "Sv-bdizC")

	sr.Load(0x08)
	test.Equate(t, sr.DecimalMode, true)
	test.Equate(t, sr.Carry, false)
}
