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

import "math"

// RGB represents a color as a 3-tuple of bytes.
type RGB struct {
	Red   byte
	Green byte
	Blue  byte
}

// the color produced by a television in the absence of a color signal.
var videoBlack = RGB{0, 0, 0}

// PaletteNTSC is the 128 colors the NTSC TIA can produce, indexed by the
// seven significant bits of the color register (hue in the high nibble,
// luminance in bits 1-3).
var PaletteNTSC []RGB

// GetColor translates a ColorSignal into an RGB value.
func GetColor(col ColorSignal) RGB {
	if col == VideoBlack {
		return videoBlack
	}
	return PaletteNTSC[(col>>1)&0x7f]
}

func clamp(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

// the NTSC palette is generated rather than stored as a table of values. hue
// zero is pure luminance; the other fifteen hues are points on the color
// wheel, spaced by the phase angle below and rotated so that hue one lands in
// the gold region, as described by the Stella Programmer's Guide ("Binary
// code 0 selects no color. Code 1 selects gold").
func init() {
	const (
		phase = 26.7
		minY  = 0.35
		maxY  = 1.00

		// angle between the color burst reference and hue one
		phiAdj = -57.28

		saturation = 0.3
	)

	PaletteNTSC = make([]RGB, 128)

	for i := 0; i < 128; i++ {
		lum := i & 0x07
		hue := (i >> 3) & 0x0f

		Y := minY + (float64(lum)/8)*(maxY-minY)

		if hue == 0 {
			if lum == 0 {
				PaletteNTSC[i] = RGB{}
				continue
			}
			g := byte(Y * 255)
			PaletteNTSC[i] = RGB{g, g, g}
			continue
		}

		phi := (float64(hue)-1)*-phase + phiAdj + 180
		phi *= math.Pi / 180

		I := Y * saturation * math.Sin(phi)
		Q := Y * saturation * math.Cos(phi)

		// YIQ to RGB conversion (NTSC 1953 colorimetry)
		R := clamp(Y + (0.956 * I) + (0.619 * Q))
		G := clamp(Y - (0.272 * I) - (0.647 * Q))
		B := clamp(Y - (1.106 * I) + (1.703 * Q))

		PaletteNTSC[i] = RGB{
			Red:   byte(R * 255.0),
			Green: byte(G * 255.0),
			Blue:  byte(B * 255.0),
		}
	}
}
