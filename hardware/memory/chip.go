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
	"github.com/ltriant/atari2600/hardware/memory/addresses"
	"github.com/ltriant/atari2600/hardware/memory/bus"
	"github.com/ltriant/atari2600/hardware/memory/memorymap"
)

// ChipMemory is the memory area for those registers accessed by the VCS
// chips as well as the CPU. Both the TIA and RIOT register blocks are
// instances of this type.
type ChipMemory struct {
	origin uint16
	memtop uint16

	// the memory stores only the values the CPU can read. what the CPU
	// writes is not memory at all; it is a latch noted below and serviced by
	// the chip at the correct point in its own cycle
	memory []uint8

	// when the CPU writes to chip memory it is not writing to memory in the
	// way we might expect. instead we note the address that has been written
	// to, and a boolean true to indicate that a write has been performed by
	// the CPU
	writeSignal  bool
	writeAddress uint16
	writeData    uint8

	// the timer in the RIOT needs to know about CPU reads of its registers,
	// not just writes
	readSignal  bool
	readAddress uint16
}

// newTIA creates the memory area for the TIA registers.
func newTIA() *ChipMemory {
	area := &ChipMemory{
		origin: memorymap.OriginTIA,
		memtop: memorymap.MemtopTIA,
	}
	area.memory = make([]uint8, area.memtop-area.origin+1)
	return area
}

// newRIOT creates the memory area for the RIOT registers.
func newRIOT() *ChipMemory {
	area := &ChipMemory{
		origin: memorymap.OriginRIOT,
		memtop: memorymap.MemtopRIOT,
	}
	area.memory = make([]uint8, area.memtop-area.origin+1)
	return area
}

// Reset clears the register memory and any outstanding write signal.
func (area *ChipMemory) Reset() {
	for i := range area.memory {
		area.memory[i] = 0
	}
	area.writeSignal = false
	area.readSignal = false
}

// Read is an implementation of bus.CPUBus. The address must be normalised.
func (area *ChipMemory) Read(address uint16) (uint8, error) {
	area.readAddress = address
	area.readSignal = true

	if _, ok := addresses.ReadSymbols[address]; !ok {
		// the address is in chip space but there is nothing connected to it.
		// a real console leaves remnants of the address on the data bus; we
		// settle for zero
		return 0, nil
	}

	return area.memory[address^area.origin], nil
}

// Write is an implementation of bus.CPUBus. The address must be normalised.
func (area *ChipMemory) Write(address uint16, data uint8) error {
	// check that the last write to this memory area has been serviced by the
	// chip. the clock arbiter runs the chips between every CPU cycle so a
	// second write before service means the machine loop is broken
	if area.writeSignal {
		return errors.NewFormattedError(errors.UnservicedChipWrite,
			addresses.WriteSymbols[area.writeAddress])
	}

	if _, ok := addresses.WriteSymbols[address]; !ok {
		// silently ignore writes to nothing. we're definitely writing to the
		// correct memory space but some addresses have no register behind
		// them
		return nil
	}

	area.writeAddress = address
	area.writeSignal = true
	area.writeData = data

	return nil
}

// ChipHasChanged is an implementation of bus.ChipBus.
func (area *ChipMemory) ChipHasChanged() (bus.ChangedRegister, bool) {
	if area.writeSignal {
		area.writeSignal = false
		return bus.ChangedRegister{
			Address:  area.writeAddress,
			Value:    area.writeData,
			Register: addresses.WriteSymbols[area.writeAddress],
		}, true
	}
	return bus.ChangedRegister{}, false
}

// ChipWrite is an implementation of bus.ChipBus.
func (area *ChipMemory) ChipWrite(reg addresses.ChipRegister, data uint8) {
	area.memory[reg] = data
}

// ChipRefer is an implementation of bus.ChipBus.
func (area *ChipMemory) ChipRefer(reg addresses.ChipRegister) uint8 {
	return area.memory[reg]
}

// LastReadAddress is an implementation of bus.ChipBus.
func (area *ChipMemory) LastReadAddress() (bool, uint16) {
	if area.readSignal {
		area.readSignal = false
		return true, area.readAddress
	}
	return false, 0
}

// Peek is an implementation of bus.DebugBus. The address must be normalised.
func (area *ChipMemory) Peek(address uint16) (uint8, error) {
	if _, ok := addresses.ReadSymbols[address]; !ok {
		return 0, errors.NewFormattedError(errors.UnreadableAddress, address)
	}
	return area.memory[address^area.origin], nil
}

// Poke is an implementation of bus.DebugBus. The address must be normalised.
func (area *ChipMemory) Poke(address uint16, data uint8) error {
	if _, ok := addresses.ReadSymbols[address]; !ok {
		return errors.NewFormattedError(errors.UnwritableAddress, address)
	}
	area.memory[address^area.origin] = data
	return nil
}
