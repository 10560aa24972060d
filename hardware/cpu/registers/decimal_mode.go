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

// the BCD arithmetic below is based on the "Decimal Mode" document by Jorge
// Cwik. the order in which the flags are computed relative to the nibble
// adjustments is the subtle part.

func addDecimal(a, b uint8, carry bool) (r uint8, rcarry bool) {
	r = a + b
	if carry {
		r++
	}
	return r, r > 9
}

// AddDecimal adds a value to the register with BCD arithmetic. Returns
// carry, zero, overflow and sign states.
func (r *Register) AddDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	var zero, overflow, sign bool
	var ucarry, tcarry bool

	// binary addition of units and tens
	runits := r.value & 0x0f
	vunits := val & 0x0f
	runits, ucarry = addDecimal(runits, vunits, carry)

	rtens := (r.value & 0xf0) >> 4
	vtens := (val & 0xf0) >> 4
	rtens, tcarry = addDecimal(rtens, vtens, ucarry)

	// "The Z flag is computed before performing any decimal adjust"
	zero = runits == 0x00 && rtens == 0x00

	// decimal correction for units
	if ucarry {
		runits -= 10
	}

	// "The N and V flags are computed after a decimal adjust of the low
	// nibble, but before adjusting the high nibble"
	overflow = rtens&0x04 == 0x04
	sign = rtens&0x08 == 0x08

	// decimal correction for tens
	if tcarry {
		rtens -= 10
	}

	r.value = (rtens << 4) | runits

	return tcarry, zero, overflow, sign
}

func subtractDecimal(a, b uint8, borrow bool) (r uint8, rborrow bool) {
	r = a - b
	if borrow {
		r--
	}
	return r, b > a || (borrow && b == a)
}

// SubtractDecimal subtracts a value from the register with BCD arithmetic.
// Returns carry, zero, overflow and sign states.
func (r *Register) SubtractDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	var zero, overflow, sign bool
	var uborrow, tborrow bool

	// the carry flag is a borrow flag when subtracting; set meaning no
	// borrow
	borrow := !carry

	runits := r.value & 0x0f
	vunits := val & 0x0f
	runits, uborrow = subtractDecimal(runits, vunits, borrow)

	rtens := (r.value & 0xf0) >> 4
	vtens := (val & 0xf0) >> 4
	rtens, tborrow = subtractDecimal(rtens, vtens, uborrow)

	// decimal correction for units
	if uborrow {
		runits += 10
	}

	// decimal correction for tens
	if tborrow {
		rtens += 10
	}

	r.value = (rtens << 4) | runits

	// zero and sign follow the stored result. overflow is undefined for
	// decimal subtraction and we leave it untouched by returning false
	zero = r.value == 0
	sign = r.value&0x80 == 0x80

	return !tborrow, zero, overflow, sign
}
