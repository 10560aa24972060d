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

package memory

import (
	"github.com/ltriant/atari2600/errors"
	"github.com/ltriant/atari2600/hardware/memory/bus"
	"github.com/ltriant/atari2600/hardware/memory/memorymap"
)

// VCSMemory presents a monolithic representation of system memory to the
// CPU. The CPU only ever accesses memory through an instance of this
// structure. Other parts of the system access the chip areas directly.
type VCSMemory struct {
	bus.CPUBus

	// the four memory areas of the console. TIA and RIOT are the register
	// interfaces to the chips of the same name, not the chips themselves
	TIA  *ChipMemory
	RIOT *ChipMemory
	RAM  *RAM
	Cart *Cartridge
}

// NewVCSMemory is the preferred method of initialisation for VCSMemory.
func NewVCSMemory() *VCSMemory {
	mem := &VCSMemory{}
	mem.TIA = newTIA()
	mem.RIOT = newRIOT()
	mem.RAM = newRAM()
	mem.Cart = newCartridge()
	return mem
}

// Reset contents of memory. The cartridge is reset to its power-on bank but
// is otherwise unaffected.
func (mem *VCSMemory) Reset() {
	mem.TIA.Reset()
	mem.RIOT.Reset()
	mem.RAM.Reset()
	mem.Cart.Initialise()
}

// area returns the memory area for an already normalised address.
func (mem *VCSMemory) area(area memorymap.Area) (bus.CPUBus, error) {
	switch area {
	case memorymap.TIA:
		return mem.TIA, nil
	case memorymap.RIOT:
		return mem.RIOT, nil
	case memorymap.RAM:
		return mem.RAM, nil
	case memorymap.Cartridge:
		return mem.Cart, nil
	}
	return nil, errors.NewFormattedError(errors.UnrecognisedAddress, area)
}

// Read is an implementation of bus.CPUBus. The address is normalised before
// the area is consulted.
func (mem *VCSMemory) Read(address uint16) (uint8, error) {
	ma, ar := memorymap.MapAddress(address, true)
	area, err := mem.area(ar)
	if err != nil {
		return 0, err
	}
	return area.Read(ma)
}

// Write is an implementation of bus.CPUBus. The address is normalised before
// the area is consulted.
func (mem *VCSMemory) Write(address uint16, data uint8) error {
	ma, ar := memorymap.MapAddress(address, false)
	area, err := mem.area(ar)
	if err != nil {
		return err
	}
	return area.Write(ma, data)
}

// Peek implements bus.DebugBus for the monolithic memory. The address is
// normalised as for a read.
func (mem *VCSMemory) Peek(address uint16) (uint8, error) {
	ma, ar := memorymap.MapAddress(address, true)
	switch ar {
	case memorymap.TIA:
		return mem.TIA.Peek(ma)
	case memorymap.RIOT:
		return mem.RIOT.Peek(ma)
	case memorymap.RAM:
		return mem.RAM.Peek(ma)
	case memorymap.Cartridge:
		return mem.Cart.Peek(ma)
	}
	return 0, errors.NewFormattedError(errors.UnreadableAddress, address)
}

// Poke implements bus.DebugBus for the monolithic memory. The address is
// normalised as for a write.
func (mem *VCSMemory) Poke(address uint16, data uint8) error {
	ma, ar := memorymap.MapAddress(address, false)
	switch ar {
	case memorymap.TIA:
		return mem.TIA.Poke(ma, data)
	case memorymap.RIOT:
		return mem.RIOT.Poke(ma, data)
	case memorymap.RAM:
		return mem.RAM.Poke(ma, data)
	case memorymap.Cartridge:
		return mem.Cart.Poke(ma, data)
	}
	return errors.NewFormattedError(errors.UnwritableAddress, address)
}
