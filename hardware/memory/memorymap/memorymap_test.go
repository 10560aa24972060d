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

package memorymap_test

import (
	"testing"

	"github.com/ltriant/atari2600/hardware/memory/memorymap"
	"github.com/ltriant/atari2600/test"
)

func TestMapAddress(t *testing.T) {
	tests := []struct {
		address uint16
		read    bool
		mapped  uint16
		area    memorymap.Area
	}{
		// the primary addresses map to themselves
		{0x0000, false, 0x0000, memorymap.TIA},
		{0x0080, true, 0x0080, memorymap.RAM},
		{0x0280, true, 0x0280, memorymap.RIOT},
		{0x1000, true, 0x1000, memorymap.Cartridge},

		// TIA write mirrors
		{0x0040, false, 0x0000, memorymap.TIA},
		{0x0100, false, 0x0000, memorymap.TIA},
		{0x0106, false, 0x0006, memorymap.TIA},
		{0x2002, false, 0x0002, memorymap.TIA},

		// TIA read mirrors fold every 16 addresses
		{0x0030, true, 0x0000, memorymap.TIA},
		{0x0032, true, 0x0002, memorymap.TIA},
		{0x010c, true, 0x000c, memorymap.TIA},

		// RAM mirrors
		{0x0180, true, 0x0080, memorymap.RAM},
		{0x01ff, false, 0x00ff, memorymap.RAM},
		{0x0d81, true, 0x0081, memorymap.RAM},

		// RIOT mirrors. reads fold the timer mirror bit
		{0x0284, true, 0x0284, memorymap.RIOT},
		{0x028c, true, 0x0284, memorymap.RIOT},
		{0x0394, false, 0x0294, memorymap.RIOT},
		{0x2684, true, 0x0284, memorymap.RIOT},

		// cartridge mirrors, including the popular Fxxx mirror
		{0xf000, true, 0x1000, memorymap.Cartridge},
		{0xfffc, true, 0x1ffc, memorymap.Cartridge},
		{0x5123, true, 0x1123, memorymap.Cartridge},
		{0xd000, false, 0x1000, memorymap.Cartridge},
	}

	for _, tst := range tests {
		ma, area := memorymap.MapAddress(tst.address, tst.read)
		if ma != tst.mapped || area != tst.area {
			t.Errorf("%#04x (read=%v) mapped to %#04x/%s, expected %#04x/%s",
				tst.address, tst.read, ma, area, tst.mapped, tst.area)
		}
	}
}

func TestIsArea(t *testing.T) {
	test.Equate(t, memorymap.IsArea(0xfffc, memorymap.Cartridge), true)
	test.Equate(t, memorymap.IsArea(0x0080, memorymap.RAM), true)
	test.Equate(t, memorymap.IsArea(0x0080, memorymap.TIA), false)
	test.Equate(t, memorymap.IsArea(0x0284, memorymap.RIOT), true)
}
