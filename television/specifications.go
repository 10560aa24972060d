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

package television

// Spec is the specification of a television protocol.
//
// From the Stella Programmer's Guide:
//
// "Each scan line starts with 68 clock counts of horizontal blank (not seen
// on the TV screen) followed by 160 clock counts to fully scan one line of TV
// picture."
//
// The vertical composition of a frame, also from the guide:
//
// "A typical frame will consists of 3 vertical sync (VSYNC) lines, 37
// vertical blank (VBLANK) lines, 192 TV picture lines, and 30 overscan
// lines."
type Spec struct {
	ID string

	ClocksPerHblank   int
	ClocksPerVisible  int
	ClocksPerScanline int

	ScanlinesPerVSync    int
	ScanlinesPerVBlank   int
	ScanlinesPerVisible  int
	ScanlinesPerOverscan int
	ScanlinesTotal       int

	// the scanline at which the visible portion of the frame is expected to
	// begin and end
	IdealTop    int
	IdealBottom int

	// the number of color clocks the VSYNC signal must be held for before a
	// new frame is considered to have begun
	VsyncClocks int

	FramesPerSecond float32
}

// SpecNTSC is the NTSC television specification. It is the only specification
// currently supported; the emulated console is the NTSC model.
var SpecNTSC *Spec

func init() {
	SpecNTSC = &Spec{
		ID:                   "NTSC",
		ClocksPerHblank:      68,
		ClocksPerVisible:     160,
		ClocksPerScanline:    228,
		ScanlinesPerVSync:    3,
		ScanlinesPerVBlank:   37,
		ScanlinesPerVisible:  192,
		ScanlinesPerOverscan: 30,
		FramesPerSecond:      60.0,
	}

	SpecNTSC.ScanlinesTotal = SpecNTSC.ScanlinesPerVSync +
		SpecNTSC.ScanlinesPerVBlank +
		SpecNTSC.ScanlinesPerVisible +
		SpecNTSC.ScanlinesPerOverscan

	SpecNTSC.IdealTop = SpecNTSC.ScanlinesPerVSync + SpecNTSC.ScanlinesPerVBlank
	SpecNTSC.IdealBottom = SpecNTSC.ScanlinesTotal - SpecNTSC.ScanlinesPerOverscan

	// the VSYNC on and off writes each land a few color clocks inside a
	// scanline, so demanding the nominal three full scanlines would reject
	// well behaved programs
	SpecNTSC.VsyncClocks = (SpecNTSC.ScanlinesPerVSync - 1) * SpecNTSC.ClocksPerScanline
}
