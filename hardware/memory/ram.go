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
	"fmt"
	"strings"

	"github.com/ltriant/atari2600/hardware/memory/memorymap"
)

// RAM represents the 128 bytes of RAM in the PIA 6532 chip, found in the
// Atari VCS.
type RAM struct {
	origin uint16
	memory []uint8
}

// newRAM is the preferred method of initialisation for the RAM memory area.
func newRAM() *RAM {
	ram := &RAM{
		origin: memorymap.OriginRAM,
	}
	ram.memory = make([]uint8, memorymap.MemtopRAM-memorymap.OriginRAM+1)
	return ram
}

// Reset clears the RAM. Real hardware powers up with unpredictable values
// but a clean slate is the better default for emulation.
func (ram *RAM) Reset() {
	for i := range ram.memory {
		ram.memory[i] = 0
	}
}

func (ram RAM) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	for y := 0; y < 8; y++ {
		s.WriteString(fmt.Sprintf("%X- | ", y+8))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[(y*16)+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// Read is an implementation of bus.CPUBus. The address must be normalised.
func (ram *RAM) Read(address uint16) (uint8, error) {
	return ram.memory[address^ram.origin], nil
}

// Write is an implementation of bus.CPUBus. The address must be normalised.
func (ram *RAM) Write(address uint16, data uint8) error {
	ram.memory[address^ram.origin] = data
	return nil
}

// Peek is an implementation of bus.DebugBus.
func (ram *RAM) Peek(address uint16) (uint8, error) {
	return ram.memory[address^ram.origin], nil
}

// Poke is an implementation of bus.DebugBus.
func (ram *RAM) Poke(address uint16, data uint8) error {
	ram.memory[address^ram.origin] = data
	return nil
}
