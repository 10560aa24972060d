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

package addresses

// ChipRegister specifies the offset of a chip register in a chip memory
// area. It is used in contexts where the emulated chip, rather than the CPU,
// is the one addressing the register.
type ChipRegister int

// TIA registers. The TIA can only ever write to the registers the CPU can
// read; collision results and the input ports.
//
// Values are enumerated from 0; the value is the offset from the origin
// address of the TIA memory area.
const (
	CXM0P ChipRegister = iota
	CXM1P
	CXP0FB
	CXP1FB
	CXM0FB
	CXM1FB
	CXBLPF
	CXPPMM
	INPT0
	INPT1
	INPT2
	INPT3
	INPT4
	INPT5
)

// RIOT registers.
//
// Values are enumerated from 0; the value is the offset from the origin
// address of the RIOT memory area. The timer updates INTIM on every cycle of
// its operation, which is why the register offsets matter to the RIOT and
// not just to the CPU.
const (
	SWCHA ChipRegister = iota
	SWACNT
	SWCHB
	SWBCNT
	INTIM
	TIMINT
)
