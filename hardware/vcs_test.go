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

package hardware_test

import (
	"testing"

	"github.com/ltriant/atari2600/cartridgeloader"
	"github.com/ltriant/atari2600/hardware"
	"github.com/ltriant/atari2600/television"
	"github.com/ltriant/atari2600/test"
)

// kernelROM assembles a minimal 4k display kernel by hand. It draws nothing
// but a playfield: PF0 is set to 0xf0, lighting the leftmost sixteen clocks
// of each half of every visible scanline, with PF1 and PF2 clear.
//
// The frame follows the programmer's guide: three scanlines of vertical
// sync, 37 of vertical blank, 192 visible and the remainder overscan, with
// every scanline closed by a WSYNC strobe.
func kernelROM() []uint8 {
	rom := make([]uint8, 4096)

	program := []uint8{
		// initialisation
		0x78,       // f000  SEI
		0xd8,       // f001  CLD
		0xa2, 0xff, // f002  LDX #$ff
		0x9a,       // f004  TXS
		0xa9, 0x0e, // f005  LDA #$0e
		0x85, 0x08, // f007  STA COLUPF
		0xa9, 0x42, // f009  LDA #$42
		0x85, 0x09, // f00b  STA COLUBK
		0xa9, 0xf0, // f00d  LDA #$f0
		0x85, 0x0d, // f00f  STA PF0
		0xa9, 0x00, // f011  LDA #$00
		0x85, 0x0e, // f013  STA PF1
		0x85, 0x0f, // f015  STA PF2
		0x85, 0x02, // f017  STA WSYNC

		// vertical sync
		0xa9, 0x02, // f019  LDA #$02      <- frame
		0x85, 0x00, // f01b  STA VSYNC
		0x85, 0x02, // f01d  STA WSYNC
		0x85, 0x02, // f01f  STA WSYNC
		0x85, 0x02, // f021  STA WSYNC
		0xa9, 0x00, // f023  LDA #$00
		0x85, 0x00, // f025  STA VSYNC

		// vertical blank
		0xa9, 0x02, // f027  LDA #$02
		0x85, 0x01, // f029  STA VBLANK
		0xa2, 0x25, // f02b  LDX #$25
		0x85, 0x02, // f02d  STA WSYNC     <- vblankLoop
		0xca,       // f02f  DEX
		0xd0, 0xfb, // f030  BNE vblankLoop

		// visible scanlines
		0xa9, 0x00, // f032  LDA #$00
		0x85, 0x01, // f034  STA VBLANK
		0xa2, 0xc0, // f036  LDX #$c0
		0x85, 0x02, // f038  STA WSYNC     <- visibleLoop
		0xca,       // f03a  DEX
		0xd0, 0xfb, // f03b  BNE visibleLoop

		// overscan
		0xa9, 0x02, // f03d  LDA #$02
		0x85, 0x01, // f03f  STA VBLANK
		0xa2, 0x1d, // f041  LDX #$1d
		0x85, 0x02, // f043  STA WSYNC     <- overscanLoop
		0xca,       // f045  DEX
		0xd0, 0xfb, // f046  BNE overscanLoop
		0x4c, 0x19, 0xf0, // f048  JMP frame
	}
	copy(rom, program)

	// reset vector
	rom[0xffc] = 0x00
	rom[0xffd] = 0xf0

	return rom
}

func TestFullFrame(t *testing.T) {
	tv, err := television.NewTelevision("NTSC")
	if err != nil {
		t.Fatal(err)
	}

	vcs, err := hardware.NewVCS(tv)
	if err != nil {
		t.Fatal(err)
	}

	err = vcs.AttachCartridge(cartridgeloader.Loader{Mapping: "AUTO", Data: kernelROM()})
	if err != nil {
		t.Fatal(err)
	}

	// the frame assembled between the first and second vsync sequences is
	// the first complete one
	if err := vcs.RunForFrameCount(3); err != nil {
		t.Fatal(err)
	}

	fn, err := tv.GetState(television.ReqFramenum)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, fn, 3)

	frame := tv.Raster()
	pf := television.GetColor(television.ColorSignal(0x0e))
	bk := television.GetColor(television.ColorSignal(0x42))

	for _, y := range []int{0, 100, 191} {
		for _, x := range []int{0, 8, 15, 80, 95} {
			if frame.Pixel(x, y) != pf {
				t.Fatalf("pixel (%d,%d) should carry the playfield color", x, y)
			}
		}
		for _, x := range []int{16, 79, 96, 159} {
			if frame.Pixel(x, y) != bk {
				t.Fatalf("pixel (%d,%d) should carry the background color", x, y)
			}
		}
	}
}

func TestStepAndReset(t *testing.T) {
	tv, err := television.NewTelevision("NTSC")
	if err != nil {
		t.Fatal(err)
	}

	vcs, err := hardware.NewVCS(tv)
	if err != nil {
		t.Fatal(err)
	}

	err = vcs.AttachCartridge(cartridgeloader.Loader{Mapping: "AUTO", Data: kernelROM()})
	if err != nil {
		t.Fatal(err)
	}

	// the reset vector points at the start of the kernel
	test.Equate(t, vcs.CPU.PC.Address(), 0xf000)

	// the first instruction is SEI
	if err := vcs.Step(); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, vcs.CPU.PC.Address(), 0xf001)
	test.Equate(t, vcs.CPU.Status.InterruptDisable, true)

	// a reset puts the program counter back
	if err := vcs.Reset(); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, vcs.CPU.PC.Address(), 0xf000)
}

func TestRun(t *testing.T) {
	tv, err := television.NewTelevision("NTSC")
	if err != nil {
		t.Fatal(err)
	}

	vcs, err := hardware.NewVCS(tv)
	if err != nil {
		t.Fatal(err)
	}

	err = vcs.AttachCartridge(cartridgeloader.Loader{Mapping: "AUTO", Data: kernelROM()})
	if err != nil {
		t.Fatal(err)
	}

	// run for a fixed number of instructions. enough for the emulation to be
	// inside the displayable portion of the first frame
	instructions := 0
	err = vcs.Run(func() (bool, error) {
		instructions++
		return instructions < 5000, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	fn, err := tv.GetState(television.ReqFramenum)
	if err != nil {
		t.Fatal(err)
	}
	if fn < 1 {
		t.Fatalf("emulation has not reached the first frame (frame %d)", fn)
	}
}

func TestEjectedCartridge(t *testing.T) {
	tv, err := television.NewTelevision("NTSC")
	if err != nil {
		t.Fatal(err)
	}

	vcs, err := hardware.NewVCS(tv)
	if err != nil {
		t.Fatal(err)
	}

	// without a cartridge the reset vector cannot be read
	if err := vcs.AttachCartridge(cartridgeloader.Loader{}); err == nil {
		t.Fatal("expected an error when resetting without a cartridge")
	}
	test.Equate(t, vcs.Mem.Cart.IsEjected(), true)
}
