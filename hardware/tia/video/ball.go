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

	"github.com/ltriant/atari2600/hardware/tia/counter"
)

const ballInitDelay = 4

// Ball is the single-bit ball sprite. It takes its color from COLUPF and its
// width from CTRLPF. Unlike the other sprites it has no copies.
type Ball struct {
	colors *Colors

	ctr  *counter.Counter
	scan scanCounter

	hmove uint8

	// width of the ball in color clocks, from CTRLPF bits 4-5
	size int

	// the ENABL register and the value it had when GRP1 was last written.
	// which of the two is drawn depends on the VDELBL register
	enabled    bool
	oldEnabled bool
	vdel       bool
}

func newBall(colors *Colors) *Ball {
	bl := &Ball{
		colors: colors,
		ctr:    counter.NewCounter(40, 39),
		size:   1,
	}
	bl.scan = scanCounter{initDelay: ballInitDelay, graphicSize: 1}
	return bl
}

func (bl Ball) String() string {
	return fmt.Sprintf("BL: pos=%s enabled=%v size=%d", bl.ctr, bl.enabled, bl.size)
}

func (bl Ball) pixelBit(_ int) bool {
	if bl.vdel {
		return bl.oldEnabled
	}
	return bl.enabled
}

func (bl Ball) startDecode() bool {
	return bl.ctr.Value() == 39
}

// resbl services the RESBL strobe.
func (bl *Ball) resbl() {
	bl.ctr.Reset()
	if bl.startDecode() {
		bl.scan.start()
	}
}

// clock advances the ball by one color clock.
func (bl *Ball) clock() {
	bl.scan.tick(bl.size, bl.pixelBit)

	if bl.ctr.Clock() && bl.startDecode() {
		bl.scan.start()
	}
}

func (bl *Ball) startHMove() {
	bl.ctr.StartHMove(bl.hmove)
	bl.scan.tick(bl.size, bl.pixelBit)
}

func (bl *Ball) applyHMove() {
	moved, clocked := bl.ctr.ApplyHMove()

	if clocked && bl.startDecode() {
		bl.scan.start()
	}

	if moved {
		bl.scan.tick(bl.size, bl.pixelBit)
	}
}

// Pixel returns whether the ball is outputting a pixel on this color clock,
// and the color of that pixel.
func (bl Ball) Pixel() (bool, uint8) {
	return bl.scan.latched && bl.scan.pixelOn, bl.colors.COLUPF
}
