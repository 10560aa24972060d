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

package video

import (
	"github.com/ltriant/atari2600/hardware/memory/addresses"
	"github.com/ltriant/atari2600/hardware/memory/bus"
)

// Collisions represents the TIA's fifteen collision latches. A latch is set
// whenever the serialised outputs of two objects are on during the same
// color clock; once set it stays set until the CXCLR strobe.
type Collisions struct {
	mem bus.ChipBus

	CXM0P  uint8
	CXM1P  uint8
	CXP0FB uint8
	CXP1FB uint8
	CXM0FB uint8
	CXM1FB uint8
	CXBLPF uint8
	CXPPMM uint8
}

func newCollisions(mem bus.ChipBus) *Collisions {
	col := &Collisions{mem: mem}
	col.Clear()
	return col
}

// Clear services the CXCLR strobe.
func (col *Collisions) Clear() {
	col.CXM0P = 0
	col.CXM1P = 0
	col.CXP0FB = 0
	col.CXP1FB = 0
	col.CXM0FB = 0
	col.CXM1FB = 0
	col.CXBLPF = 0
	col.CXPPMM = 0
	col.commit()
}

// tally sets the collision latches for the objects that are outputting a
// pixel on this color clock.
func (col *Collisions) tally(p0, m0, p1, m1, bl, pf bool) {
	if m0 && p1 {
		col.CXM0P |= 0x80
	}
	if m0 && p0 {
		col.CXM0P |= 0x40
	}

	if m1 && p0 {
		col.CXM1P |= 0x80
	}
	if m1 && p1 {
		col.CXM1P |= 0x40
	}

	if p0 && pf {
		col.CXP0FB |= 0x80
	}
	if p0 && bl {
		col.CXP0FB |= 0x40
	}

	if p1 && pf {
		col.CXP1FB |= 0x80
	}
	if p1 && bl {
		col.CXP1FB |= 0x40
	}

	if m0 && pf {
		col.CXM0FB |= 0x80
	}
	if m0 && bl {
		col.CXM0FB |= 0x40
	}

	if m1 && pf {
		col.CXM1FB |= 0x80
	}
	if m1 && bl {
		col.CXM1FB |= 0x40
	}

	// CXBLPF has no bit 6
	if bl && pf {
		col.CXBLPF |= 0x80
	}

	if p0 && p1 {
		col.CXPPMM |= 0x80
	}
	if m0 && m1 {
		col.CXPPMM |= 0x40
	}

	col.commit()
}

// commit writes the latch values to chip memory, where the CPU can read
// them.
func (col *Collisions) commit() {
	col.mem.ChipWrite(addresses.CXM0P, col.CXM0P)
	col.mem.ChipWrite(addresses.CXM1P, col.CXM1P)
	col.mem.ChipWrite(addresses.CXP0FB, col.CXP0FB)
	col.mem.ChipWrite(addresses.CXP1FB, col.CXP1FB)
	col.mem.ChipWrite(addresses.CXM0FB, col.CXM0FB)
	col.mem.ChipWrite(addresses.CXM1FB, col.CXM1FB)
	col.mem.ChipWrite(addresses.CXBLPF, col.CXBLPF)
	col.mem.ChipWrite(addresses.CXPPMM, col.CXPPMM)
}
