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

package debugger_test

import (
	"strings"
	"testing"

	"github.com/ltriant/atari2600/cartridgeloader"
	"github.com/ltriant/atari2600/debugger"
	"github.com/ltriant/atari2600/hardware"
	"github.com/ltriant/atari2600/television"
	"github.com/ltriant/atari2600/test"
)

// a trivial program: store a value in RAM and spin.
func spinROM() []uint8 {
	rom := make([]uint8, 4096)
	copy(rom, []uint8{
		0xa9, 0x05, // f000  LDA #$05
		0x85, 0x80, // f002  STA $80
		0x4c, 0x04, 0xf0, // f004  JMP $f004
	})
	rom[0xffc] = 0x00
	rom[0xffd] = 0xf0
	return rom
}

func startDebugger(t *testing.T, script string) (*strings.Builder, error) {
	t.Helper()

	tv, err := television.NewTelevision("NTSC")
	if err != nil {
		t.Fatal(err)
	}
	vcs, err := hardware.NewVCS(tv)
	if err != nil {
		t.Fatal(err)
	}
	err = vcs.AttachCartridge(cartridgeloader.Loader{Mapping: "AUTO", Data: spinROM()})
	if err != nil {
		t.Fatal(err)
	}

	output := &strings.Builder{}
	term := debugger.NewPlainTerminal(strings.NewReader(script), output)
	dbg := debugger.NewDebugger(vcs, tv, term)

	return output, dbg.Start()
}

func TestStepAndPeek(t *testing.T) {
	output, err := startDebugger(t, "step\nstep\npeek 80\nquit\n")
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, strings.Contains(output.String(), "0x0080 = 0x05"), true)
}

func TestRepeatLastCommand(t *testing.T) {
	// the empty line repeats the previous step command
	output, err := startDebugger(t, "step\n\npeek 80\nquit\n")
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, strings.Contains(output.String(), "0x0080 = 0x05"), true)
}

func TestBreakpoint(t *testing.T) {
	output, err := startDebugger(t, "break f004\nrun\nregisters\nquit\n")
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, strings.Contains(output.String(), "breakpoint at 0xf004"), true)
	test.Equate(t, strings.Contains(output.String(), "PC=0xf004"), true)
}

func TestUnknownCommand(t *testing.T) {
	output, err := startDebugger(t, "wobble\nquit\n")
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, strings.Contains(output.String(), "unrecognised command"), true)
}

func TestInputExhaustion(t *testing.T) {
	// input running out is the same as quitting
	_, err := startDebugger(t, "step\n")
	if err != nil {
		t.Fatal(err)
	}
}
