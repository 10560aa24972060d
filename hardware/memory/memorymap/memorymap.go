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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case TIA:
		return "TIA"
	case RAM:
		return "RAM"
	case RIOT:
		return "RIOT"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas in the VCS.
const (
	Undefined Area = iota
	TIA
	RAM
	RIOT
	Cartridge
)

// The origin and memory top for each area of memory. Checking which area an
// address falls within and forcing the address into the normalised range is
// all handled by the MapAddress() function.
//
// Implementations of the different memory areas may need to drag the address
// down into the range of an array. This can be done with (address^origin)
// rather than subtraction.
const (
	OriginTIA  = uint16(0x0000)
	MemtopTIA  = uint16(0x003f)
	OriginRAM  = uint16(0x0080)
	MemtopRAM  = uint16(0x00ff)
	OriginRIOT = uint16(0x0280)
	MemtopRIOT = uint16(0x0297)
	OriginCart = uint16(0x1000)
	MemtopCart = uint16(0x1fff)
)

// Cartridge memory is mirrored in a number of places in the address space. The
// most useful mirror is the Fxxx mirror, which many programmers use when
// writing assembly programs. The reset vector at 0xfffc is in this mirror.
const (
	OriginCartFxxxMirror = uint16(0xf000)
	MemtopCartFxxxMirror = uint16(0xffff)
)

// Memtop is the top most address of memory in the VCS. The 6507 has only 13
// address lines so this is the same as the cartridge memtop; higher lines in
// a 16 bit address are not connected to anything.
const Memtop = uint16(0x1fff)

// Within the RIOT and TIA areas there are smaller mirrors. MaskRIOT and
// MaskTIA keep only the relevant bits of a RIOT and TIA address. Should only
// be applied to addresses that are definitely either a RIOT or TIA address.
//
// The masks apply to read addresses only. The TIA mirrors its readable
// registers every 16 addresses; the write registers use all six address
// lines.
const (
	MaskRIOT = uint16(0x02f7)
	MaskTIA  = uint16(0x000f)
)

// CartridgeBits identifies the bits in an address that are relevant to the
// cartridge. Useful for discounting those bits that determine the cartridge
// mirror. For example, the following is true:
//
//	0x1123 & CartridgeBits == 0xf123 & CartridgeBits
const CartridgeBits = OriginCart ^ MemtopCart

// MapAddress translates the address argument from mirror space to primary
// space. Generally, an address should be passed through this function before
// accessing memory.
//
// Note that the read and write targets of a chip address differ. The returned
// address of a read is normalised further by the chip read mask.
func MapAddress(address uint16, read bool) (uint16, Area) {
	// note that the order of these filters is important

	// cartridge addresses
	if address&OriginCart == OriginCart {
		return address & MemtopCart, Cartridge
	}

	// RIOT addresses
	if address&OriginRIOT == OriginRIOT {
		if read {
			return address & MemtopRIOT & MaskRIOT, RIOT
		}
		return address & MemtopRIOT, RIOT
	}

	// RAM addresses
	if address&OriginRAM == OriginRAM {
		return address & MemtopRAM, RAM
	}

	// everything else is in TIA space
	if read {
		return address & MemtopTIA & MaskTIA, TIA
	}

	return address & MemtopTIA, TIA
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address, true)
	return area == a
}
