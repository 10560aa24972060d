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

package bus

import "github.com/ltriant/atari2600/hardware/memory/addresses"

// CPUBus defines the operations for the memory system when accessed from the
// CPU. All memory areas implement this interface because they are all
// accessible from the CPU. The VCSMemory type also implements this interface
// and maps the read/write address to the correct memory area, meaning the
// CPU need not care which part of memory it is accessing.
type CPUBus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// ChangedRegister packages together the details of a chip register write
// made by the CPU, as retrieved through ChipBus.ChipHasChanged().
type ChangedRegister struct {
	// the normalised address of the register
	Address uint16

	// the data value written by the CPU
	Value uint8

	// the canonical name of the register. if the register is not named then
	// the write is non-effective; the TIA/RIOT implementation should log
	// such an event
	Register string
}

// ChipBus defines the operations for the memory system when accessed from
// the VCS chips (TIA, RIOT). Only the chip memory areas implement this
// interface.
type ChipBus interface {
	// ChipHasChanged checks whether the chip's memory area has been written
	// to by the CPU since the last call to the function
	ChipHasChanged() (ChangedRegister, bool)

	// ChipWrite writes the data to the memory area, where the CPU will see
	// it on its next read of the register
	ChipWrite(reg addresses.ChipRegister, data uint8)

	// ChipRefer reads the data from chip memory; the value the CPU would
	// see. Should be used in preference to keeping a local copy of a written
	// value in the TIA/RIOT implementation
	ChipRefer(reg addresses.ChipRegister) uint8

	// LastReadAddress returns true and the normalised address of the last
	// CPU read of the memory area. Returns false if no read has taken place
	// since the last call to the function.
	//
	// Only used by the RIOT timer.
	LastReadAddress() (bool, uint16)
}

// DebugBus defines the meta-operations for all memory areas. Think of these
// as "debugging" operations, outside of the normal operation of the machine.
type DebugBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, data uint8) error
}
