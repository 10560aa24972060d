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

package tia_test

import (
	"testing"

	"github.com/ltriant/atari2600/hardware/memory"
	"github.com/ltriant/atari2600/hardware/tia"
	"github.com/ltriant/atari2600/television"
	"github.com/ltriant/atari2600/test"
)

// mockTV records every signal the TIA sends
type mockTV struct {
	signals []television.SignalAttributes
}

func (tv *mockTV) Signal(sig television.SignalAttributes) error {
	tv.signals = append(tv.signals, sig)
	return nil
}

func (tv *mockTV) GetState(req television.StateReq) (int, error) { return 0, nil }
func (tv *mockTV) Spec() *television.Spec                        { return television.SpecNTSC }
func (tv *mockTV) AddRenderer(r television.Renderer)             {}
func (tv *mockTV) AddRasterReceiver(r television.RasterReceiver) {}
func (tv *mockTV) Reset() error                                  { return nil }
func (tv *mockTV) End() error                                    { return nil }

func newTestTIA() (*tia.TIA, *memory.VCSMemory, *mockTV) {
	tv := &mockTV{}
	mem := memory.NewVCSMemory()
	return tia.NewTIA(tv, mem.TIA), mem, tv
}

// poke performs a CPU write to a TIA register and has the TIA service it
func poke(t *testing.T, mem *memory.VCSMemory, chip *tia.TIA, address uint16, value uint8) {
	t.Helper()
	if err := mem.Write(address, value); err != nil {
		t.Fatal(err)
	}
	chip.ReadMemory()
}

// runScanline steps the TIA through one complete scanline, returning the
// signals sent during it
func runScanline(t *testing.T, chip *tia.TIA, tv *mockTV) []television.SignalAttributes {
	t.Helper()
	from := len(tv.signals)
	for i := 0; i < 228; i++ {
		if _, err := chip.Step(); err != nil {
			t.Fatal(err)
		}
	}
	return tv.signals[from:]
}

// firstPixel returns the offset into the scanline of the first signal
// carrying the given color, or -1
func firstPixel(signals []television.SignalAttributes, color television.ColorSignal) int {
	for i, sig := range signals {
		if sig.Pixel == color {
			return i
		}
	}
	return -1
}

func TestWSYNC(t *testing.T) {
	chip, mem, tv := newTestTIA()

	poke(t, mem, chip, 0x02, 0x00) // WSYNC

	// the RDY pin stays low for the rest of the scanline
	for i := 0; i < 227; i++ {
		rdy, err := chip.Step()
		if err != nil {
			t.Fatal(err)
		}
		test.Equate(t, rdy, false)
	}

	// and is released on the front porch clock
	rdy, err := chip.Step()
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, rdy, true)
	test.Equate(t, tv.signals[227].FrontPorch, true)
}

func TestSignalTiming(t *testing.T) {
	chip, _, tv := newTestTIA()

	signals := runScanline(t, chip, tv)
	test.Equate(t, len(signals), 228)

	nHSync := 0
	nCBurst := 0
	nPixels := 0
	for _, sig := range signals {
		if sig.HSync {
			nHSync++
		}
		if sig.CBurst {
			nCBurst++
		}
		if sig.Pixel != television.VideoBlack {
			nPixels++
		}
	}

	test.Equate(t, nHSync, 16)
	test.Equate(t, nCBurst, 16)
	test.Equate(t, nPixels, 160)

	// hsync begins after the front porch period
	test.Equate(t, signals[18].HSync, false)
	test.Equate(t, signals[19].HSync, true)

	// the visible portion of the scanline begins after 68 clocks of
	// horizontal blank
	test.Equate(t, signals[66].Pixel == television.VideoBlack, true)
	test.Equate(t, signals[67].Pixel == television.VideoBlack, false)
}

func TestVerticalSignals(t *testing.T) {
	chip, mem, tv := newTestTIA()

	poke(t, mem, chip, 0x00, 0x02) // VSYNC on
	poke(t, mem, chip, 0x01, 0x02) // VBLANK on
	signals := runScanline(t, chip, tv)
	test.Equate(t, signals[0].VSync, true)
	test.Equate(t, signals[0].VBlank, true)

	poke(t, mem, chip, 0x00, 0x00)
	poke(t, mem, chip, 0x01, 0x00)
	signals = runScanline(t, chip, tv)
	test.Equate(t, signals[0].VSync, false)
	test.Equate(t, signals[0].VBlank, false)
}

func TestHMoveNetZero(t *testing.T) {
	chip, mem, tv := newTestTIA()

	poke(t, mem, chip, 0x06, 0x42) // COLUP0
	poke(t, mem, chip, 0x1b, 0xff) // GRP0

	// race the beam to the middle of the first scanline and strobe RESP0
	for i := 0; i < 100; i++ {
		if _, err := chip.Step(); err != nil {
			t.Fatal(err)
		}
	}
	poke(t, mem, chip, 0x10, 0x00) // RESP0
	for i := 100; i < 228; i++ {
		if _, err := chip.Step(); err != nil {
			t.Fatal(err)
		}
	}

	// the position counter free-runs: the sprite appears at the same spot
	// on every subsequent scanline
	line2 := runScanline(t, chip, tv)
	x := firstPixel(line2, television.ColorSignal(0x42))
	test.Equate(t, x != -1, true)

	line3 := runScanline(t, chip, tv)
	test.Equate(t, firstPixel(line3, television.ColorSignal(0x42)), x)

	// an HMOVE with a zero motion register: the eight stuffed clocks are
	// balanced by the eight gated clocks of the extended blank
	poke(t, mem, chip, 0x2a, 0x00) // HMOVE
	line4 := runScanline(t, chip, tv)
	test.Equate(t, firstPixel(line4, television.ColorSignal(0x42)), x)

	// the extended blank hides the first eight clocks of the scanline
	nPixels := 0
	for _, sig := range line4 {
		if sig.Pixel != television.VideoBlack {
			nPixels++
		}
	}
	test.Equate(t, nPixels, 152)

	// the blanking ends with the scanline
	line5 := runScanline(t, chip, tv)
	test.Equate(t, firstPixel(line5, television.ColorSignal(0x42)), x)
	nPixels = 0
	for _, sig := range line5 {
		if sig.Pixel != television.VideoBlack {
			nPixels++
		}
	}
	test.Equate(t, nPixels, 160)
}

func TestHMoveMotion(t *testing.T) {
	chip, mem, tv := newTestTIA()

	poke(t, mem, chip, 0x06, 0x42) // COLUP0
	poke(t, mem, chip, 0x1b, 0xff) // GRP0

	for i := 0; i < 100; i++ {
		if _, err := chip.Step(); err != nil {
			t.Fatal(err)
		}
	}
	poke(t, mem, chip, 0x10, 0x00) // RESP0
	for i := 100; i < 228; i++ {
		if _, err := chip.Step(); err != nil {
			t.Fatal(err)
		}
	}

	line2 := runScanline(t, chip, tv)
	x := firstPixel(line2, television.ColorSignal(0x42))

	// +1 moves the sprite one clock to the left
	poke(t, mem, chip, 0x20, 0x10) // HMP0
	poke(t, mem, chip, 0x2a, 0x00) // HMOVE
	line3 := runScanline(t, chip, tv)
	test.Equate(t, firstPixel(line3, television.ColorSignal(0x42)), x-1)

	// HMCLR then -2 moves it two clocks back to the right
	poke(t, mem, chip, 0x2b, 0x00) // HMCLR
	poke(t, mem, chip, 0x20, 0xe0) // HMP0
	poke(t, mem, chip, 0x2a, 0x00) // HMOVE
	line4 := runScanline(t, chip, tv)
	test.Equate(t, firstPixel(line4, television.ColorSignal(0x42)), x+1)
}
