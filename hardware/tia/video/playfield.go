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
	"fmt"
	"strings"

	"github.com/ltriant/atari2600/hardware/tia/counter"
)

// Playfield is the 20-bit playfield. The same 20 bits are drawn over the
// left half of the scanline and then again, optionally mirrored, over the
// right half. Each bit is four color clocks wide.
type Playfield struct {
	colors *Colors

	// the playfield has no reset strobe. its counter wraps exactly once per
	// 160 visible clocks so it stays locked to the screen
	ctr *counter.Counter

	// the raw register values and the decoded 20-bit pattern
	PF0 uint8
	PF1 uint8
	PF2 uint8
	data [20]bool

	// from the CTRLPF register
	Reflected bool
	Scoremode bool
	Priority  bool

	// the serialised output
	pixelOn bool
	// which color register the pixel takes. in score mode the two halves of
	// the playfield take the color of the corresponding player
	pixelColor *uint8
}

func newPlayfield(colors *Colors) *Playfield {
	pf := &Playfield{
		colors: colors,
		ctr:    counter.NewCounter(40, 39),
	}
	pf.pixelColor = &colors.COLUPF
	return pf
}

func (pf Playfield) String() string {
	s := strings.Builder{}
	for _, b := range pf.data {
		if b {
			s.WriteString("1")
		} else {
			s.WriteString("0")
		}
	}
	return fmt.Sprintf("PF: %s pos=%s", s.String(), pf.ctr)
}

// SetPF0 services the PF0 register. only the top four bits are connected,
// drawn least significant bit leftmost.
func (pf *Playfield) SetPF0(value uint8) {
	pf.PF0 = value & 0xf0
	for i := 0; i < 4; i++ {
		pf.data[i] = value>>(i+4)&0x01 != 0
	}
}

// SetPF1 services the PF1 register, drawn most significant bit leftmost.
func (pf *Playfield) SetPF1(value uint8) {
	pf.PF1 = value
	for i := 0; i < 8; i++ {
		pf.data[i+4] = value>>(7-i)&0x01 != 0
	}
}

// SetPF2 services the PF2 register, drawn least significant bit leftmost.
func (pf *Playfield) SetPF2(value uint8) {
	pf.PF2 = value
	for i := 0; i < 8; i++ {
		pf.data[i+12] = value>>i&0x01 != 0
	}
}

// SetControl services the playfield bits of the CTRLPF register.
func (pf *Playfield) SetControl(value uint8) {
	pf.Reflected = value&0x01 != 0
	pf.Priority = value&0x04 != 0
	pf.Scoremode = value&0x02 != 0 && !pf.Priority
}

// clock advances the playfield by one color clock.
func (pf *Playfield) clock() {
	v := pf.ctr.Value()
	x := v % 20

	if v < 20 {
		pf.pixelOn = pf.data[x]
		if pf.Scoremode {
			pf.pixelColor = &pf.colors.COLUP0
		} else {
			pf.pixelColor = &pf.colors.COLUPF
		}
	} else {
		if pf.Reflected {
			x = len(pf.data) - 1 - x
		}
		pf.pixelOn = pf.data[x]
		if pf.Scoremode {
			pf.pixelColor = &pf.colors.COLUP1
		} else {
			pf.pixelColor = &pf.colors.COLUPF
		}
	}

	pf.ctr.Clock()
}

// Pixel returns whether the playfield is outputting a pixel on this color
// clock, and the color of that pixel.
func (pf Playfield) Pixel() (bool, uint8) {
	return pf.pixelOn, *pf.pixelColor
}
