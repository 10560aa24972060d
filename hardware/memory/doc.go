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

// Package memory implements the memory system of the VCS.
//
// There is not much memory in the console: 128 bytes of RAM in the RIOT, the
// register interfaces of the TIA and RIOT chips, and whatever the cartridge
// provides. VCSMemory composes the four areas and presents them to the CPU
// as a single address space, normalising the many mirrored addresses as it
// goes (see the memorymap package).
//
// The chip areas deserve comment. What the CPU writes to a TIA or RIOT
// address is not stored anywhere the CPU can read it back; the write is
// latched and the owning chip services it at the correct point of its own
// cycle, through the bus.ChipBus interface. What the CPU reads from those
// same areas is whatever the chip last placed there with ChipWrite(). The
// arrangement mirrors how the address and data buses are shared on the real
// board, and it is what makes cycle-accurate interleaving of the CPU and the
// chips possible.
//
// Cartridges attach through the Cartridge area, which delegates to a format
// specific mapper. The standard Atari formats, including the F8/F6/F4 bank
// switching schemes, are implemented in this package.
package memory
