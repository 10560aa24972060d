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

package television_test

import (
	"testing"

	"github.com/ltriant/atari2600/television"
	"github.com/ltriant/atari2600/test"
)

// sendScanline sends one complete scanline's worth of color clocks. the
// front porch signal begins the scanline, as it does in the real signal
// stream.
func sendScanline(t *testing.T, btv *television.BasicTelevision, sig television.SignalAttributes) {
	t.Helper()

	porch := sig
	porch.FrontPorch = true
	if err := btv.Signal(porch); err != nil {
		t.Fatal(err)
	}

	sig.FrontPorch = false
	for i := 0; i < television.SpecNTSC.ClocksPerScanline-1; i++ {
		if err := btv.Signal(sig); err != nil {
			t.Fatal(err)
		}
	}
}

func stateChecker(t *testing.T, btv *television.BasicTelevision, frame, scanline int) {
	t.Helper()

	f, err := btv.GetState(television.ReqFramenum)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, f, frame)

	s, err := btv.GetState(television.ReqScanline)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, s, scanline)
}

func TestNewTelevision(t *testing.T) {
	btv, err := television.NewTelevision("NTSC")
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, btv.Spec().ID, "NTSC")
	stateChecker(t, btv, 0, 0)

	_, err = television.NewTelevision("PAL")
	if err == nil {
		t.Fatal("expected an error for an unsupported specification")
	}
}

func TestScanlineAdvance(t *testing.T) {
	btv, err := television.NewTelevision("AUTO")
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		sendScanline(t, btv, television.SignalAttributes{VBlank: true})
	}
	stateChecker(t, btv, 0, 10)

	hp, err := btv.GetState(television.ReqHorizPos)
	if err != nil {
		t.Fatal(err)
	}
	test.Equate(t, hp, television.SpecNTSC.ClocksPerVisible-1)
}

func TestFrameBoundary(t *testing.T) {
	btv, err := television.NewTelevision("NTSC")
	if err != nil {
		t.Fatal(err)
	}

	// a sustained vsync followed by its release starts a new frame
	for i := 0; i < television.SpecNTSC.ScanlinesPerVSync; i++ {
		sendScanline(t, btv, television.SignalAttributes{VSync: true})
	}
	sendScanline(t, btv, television.SignalAttributes{VBlank: true})
	stateChecker(t, btv, 1, television.SpecNTSC.ScanlinesPerVSync)

	// a vsync that is too short does not
	sendScanline(t, btv, television.SignalAttributes{VSync: true})
	sendScanline(t, btv, television.SignalAttributes{VBlank: true})
	stateChecker(t, btv, 1, television.SpecNTSC.ScanlinesPerVSync+2)
}

func TestRasterAssembly(t *testing.T) {
	btv, err := television.NewTelevision("NTSC")
	if err != nil {
		t.Fatal(err)
	}

	// run to the top of the visible portion of the frame
	for i := 0; i < television.SpecNTSC.ScanlinesPerVSync; i++ {
		sendScanline(t, btv, television.SignalAttributes{VSync: true})
	}
	for i := 0; i < television.SpecNTSC.ScanlinesPerVBlank; i++ {
		sendScanline(t, btv, television.SignalAttributes{VBlank: true})
	}

	// white is hue zero, maximum luminance
	white := television.ColorSignal(0x0e)
	for i := 0; i < television.SpecNTSC.ScanlinesPerVisible; i++ {
		sendScanline(t, btv, television.SignalAttributes{Pixel: white})
	}
	for i := 0; i < television.SpecNTSC.ScanlinesPerOverscan; i++ {
		sendScanline(t, btv, television.SignalAttributes{VBlank: true})
	}

	// frame isn't complete until the next vsync sequence ends
	for i := 0; i < television.SpecNTSC.ScanlinesPerVSync; i++ {
		sendScanline(t, btv, television.SignalAttributes{VSync: true})
	}
	sendScanline(t, btv, television.SignalAttributes{VBlank: true})
	stateChecker(t, btv, 2, television.SpecNTSC.ScanlinesPerVSync)

	frame := btv.Raster()
	test.Equate(t, frame.Width(), television.SpecNTSC.ClocksPerVisible)
	test.Equate(t, frame.Height(), television.SpecNTSC.ScanlinesPerVisible)

	expected := television.GetColor(white)
	for _, y := range []int{0, 95, 191} {
		for _, x := range []int{0, 80, 159} {
			if frame.Pixel(x, y) != expected {
				t.Fatalf("pixel (%d,%d) not set from the color signal", x, y)
			}
		}
	}
}

type mockRenderer struct {
	frames    int
	scanlines int
	pixels    int
	ended     bool
}

func (m *mockRenderer) NewFrame(frameNum int) error { m.frames++; return nil }

func (m *mockRenderer) NewScanline(scanline int) error { m.scanlines++; return nil }

func (m *mockRenderer) SetPixel(x, y int, red, green, blue byte, vblank bool) error {
	m.pixels++
	return nil
}

func (m *mockRenderer) EndRendering() error { m.ended = true; return nil }

func TestRendererDispatch(t *testing.T) {
	btv, err := television.NewTelevision("NTSC")
	if err != nil {
		t.Fatal(err)
	}

	mock := &mockRenderer{}
	btv.AddRenderer(mock)

	for i := 0; i < television.SpecNTSC.ScanlinesPerVSync; i++ {
		sendScanline(t, btv, television.SignalAttributes{VSync: true})
	}
	for i := 0; i < television.SpecNTSC.ScanlinesTotal-television.SpecNTSC.ScanlinesPerVSync; i++ {
		sendScanline(t, btv, television.SignalAttributes{})
	}

	test.Equate(t, mock.frames, 1)
	test.Equate(t, mock.scanlines, television.SpecNTSC.ScanlinesTotal)
	test.Equate(t, mock.pixels, television.SpecNTSC.ScanlinesPerVisible*television.SpecNTSC.ClocksPerVisible)

	if err := btv.End(); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, mock.ended, true)
}
