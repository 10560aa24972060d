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

package memory_test

import (
	"testing"

	"github.com/ltriant/atari2600/hardware/memory"
	"github.com/ltriant/atari2600/hardware/memory/addresses"
	"github.com/ltriant/atari2600/test"
)

func TestRAMMirrors(t *testing.T) {
	mem := memory.NewVCSMemory()

	// write to the primary address, read from a mirror
	if err := mem.Write(0x0080, 0xde); err != nil {
		t.Fatal(err)
	}
	v, err := mem.Read(0x0180)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, v, 0xde)

	// and the other way around
	if err := mem.Write(0x0d83, 0xad); err != nil {
		t.Fatal(err)
	}
	v, err = mem.Read(0x0083)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, v, 0xad)
}

func TestChipWriteSignal(t *testing.T) {
	mem := memory.NewVCSMemory()

	// no write has happened yet
	_, ok := mem.TIA.ChipHasChanged()
	test.Equate(t, ok, false)

	// CPU writes to a TIA register (via a mirror)
	if err := mem.Write(0x4002, 0x00); err != nil {
		t.Fatal(err)
	}

	reg, ok := mem.TIA.ChipHasChanged()
	test.Equate(t, ok, true)
	test.Equate(t, reg.Register, "WSYNC")
	test.Equate(t, int(reg.Address), 0x02)

	// the signal is consumed by the call
	_, ok = mem.TIA.ChipHasChanged()
	test.Equate(t, ok, false)
}

func TestChipUnservicedWrite(t *testing.T) {
	mem := memory.NewVCSMemory()

	if err := mem.Write(0x0006, 0x1a); err != nil {
		t.Fatal(err)
	}

	// a second write before the chip has serviced the first is an emulation
	// defect and must error
	if err := mem.Write(0x0007, 0x1a); err == nil {
		t.Fatal("expected unserviced write error")
	}
}

func TestChipReadOfChipWrite(t *testing.T) {
	mem := memory.NewVCSMemory()

	// the chip places a collision result where the CPU can see it
	mem.TIA.ChipWrite(addresses.CXM0P, 0xc0)

	v, err := mem.Read(0x0000)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, v, 0xc0)

	// the read registers mirror every 16 addresses in TIA space
	v, err = mem.Read(0x0030)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, v, 0xc0)
}

func TestUnconnectedChipAddresses(t *testing.T) {
	mem := memory.NewVCSMemory()

	// a read of a chip address with nothing behind it returns zero
	v, err := mem.Read(0x000e)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, v, 0)

	// a write to a chip address with nothing behind it is swallowed
	if err := mem.Write(0x002d, 0xff); err != nil {
		t.Fatal(err)
	}
	_, ok := mem.TIA.ChipHasChanged()
	test.Equate(t, ok, false)
}

// makeROM builds a ROM image of the given number of 4k banks. the first byte
// of each bank identifies the bank.
func makeROM(banks int) []uint8 {
	data := make([]uint8, banks*4096)
	for b := 0; b < banks; b++ {
		data[b*4096] = uint8(b + 1)
	}
	return data
}

func TestCartridgeEjected(t *testing.T) {
	mem := memory.NewVCSMemory()
	test.Equate(t, mem.Cart.IsEjected(), true)
	if _, err := mem.Read(0x1000); err == nil {
		t.Fatal("expected error reading ejected cartridge")
	}
}

func TestCartridgeAttach(t *testing.T) {
	mem := memory.NewVCSMemory()

	sizes := []struct {
		banks    int
		numBanks int
	}{
		{1, 1},
		{2, 2},
		{4, 4},
		{8, 8},
	}

	for _, sz := range sizes {
		if err := mem.Cart.Attach("AUTO", makeROM(sz.banks)); err != nil {
			t.Fatal(err)
		}
		test.Equate(t, mem.Cart.NumBanks(), sz.numBanks)
		test.Equate(t, mem.Cart.IsEjected(), false)
	}

	// a 2k image presents as a single doubled-up 4k bank
	if err := mem.Cart.Attach("AUTO", make([]uint8, 2048)); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, mem.Cart.NumBanks(), 1)

	// anything else is refused
	if err := mem.Cart.Attach("AUTO", make([]uint8, 6144)); err == nil {
		t.Fatal("expected invalid size error")
	}
	test.Equate(t, mem.Cart.IsEjected(), true)
}

func TestCartridge2kMirror(t *testing.T) {
	mem := memory.NewVCSMemory()

	data := make([]uint8, 2048)
	data[0x0123] = 0x56
	if err := mem.Cart.Attach("AUTO", data); err != nil {
		t.Fatal(err)
	}

	// the image appears in both halves of the 4k space
	v, _ := mem.Read(0x1123)
	test.Equate(t, v, 0x56)
	v, _ = mem.Read(0x1923)
	test.Equate(t, v, 0x56)
}

func TestCartridgeBankswitch(t *testing.T) {
	mem := memory.NewVCSMemory()

	if err := mem.Cart.Attach("AUTO", makeROM(2)); err != nil {
		t.Fatal(err)
	}

	// power-on selects the last bank
	test.Equate(t, mem.Cart.GetBank(), 1)
	v, _ := mem.Read(0x1000)
	test.Equate(t, v, 2)

	// a read of the hot-spot selects bank 0. the Fxxx mirror works too
	_, _ = mem.Read(0xfff8)
	test.Equate(t, mem.Cart.GetBank(), 0)
	v, _ = mem.Read(0x1000)
	test.Equate(t, v, 1)

	// a write to a hot-spot also switches
	_ = mem.Write(0x1ff9, 0x00)
	test.Equate(t, mem.Cart.GetBank(), 1)

	// writes anywhere else in ROM space are ignored
	_ = mem.Write(0x1000, 0xff)
	v, _ = mem.Read(0x1000)
	test.Equate(t, v, 2)
}
