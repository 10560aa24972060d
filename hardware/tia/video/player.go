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

// player sprites begin to draw one clock later than the other sprites
const playerInitDelay = 5

// Player is one of the two eight-bit player sprites.
type Player struct {
	label  string
	colors *Colors

	// which of the COLUPx registers colors this player. 0 or 1
	id int

	ctr  *counter.Counter
	scan scanCounter

	// the raw value of the HMPx register
	hmove uint8

	// the REFPx register, for drawing the graphic backwards
	reflect bool

	// the low three bits of the NUSIZx register. controls the number of
	// copies of the sprite and the width of each copy
	nusiz uint8

	// the GRPx register and the value it had when the other player's GRPx
	// register was last written. which of the two is drawn depends on the
	// VDELPx register
	graphic    uint8
	oldGraphic uint8
	vdel       bool
}

func newPlayer(label string, id int, colors *Colors) *Player {
	pl := &Player{
		label:  label,
		id:     id,
		colors: colors,
		ctr:    counter.NewCounter(40, 39),
	}
	pl.scan = scanCounter{initDelay: playerInitDelay, graphicSize: 8}
	return pl
}

func (pl Player) String() string {
	return fmt.Sprintf("%s: pos=%s gfx=%08b nusiz=%03b", pl.label, pl.ctr, pl.graphic, pl.nusiz)
}

// width returns the number of color clocks each bit of the graphic is held
// for, as selected by the NUSIZx register.
func (pl Player) width() int {
	switch pl.nusiz {
	case 0x05:
		return 2
	case 0x07:
		return 4
	}
	return 1
}

// startDecode returns true if the position counter has just reached a value
// at which a copy of the sprite starts drawing. the value of 39 is the main
// copy; the other values produce the close/medium/wide copies selected by
// NUSIZx.
func (pl Player) startDecode() bool {
	v := pl.ctr.Value()

	return v == 39 ||
		(v == 3 && (pl.nusiz == 0x01 || pl.nusiz == 0x03)) ||
		(v == 7 && (pl.nusiz == 0x02 || pl.nusiz == 0x03 || pl.nusiz == 0x06)) ||
		(v == 15 && (pl.nusiz == 0x04 || pl.nusiz == 0x06))
}

// pixelBit reports whether the given bit of the graphic is set, taking the
// reflect and vertical delay registers into account.
func (pl Player) pixelBit(bit int) bool {
	gfx := pl.graphic
	if pl.vdel {
		gfx = pl.oldGraphic
	}

	if pl.reflect {
		return gfx&(0x01<<bit) != 0
	}
	return gfx&(0x80>>bit) != 0
}

// resp services the RESPx strobe.
func (pl *Player) resp() {
	pl.ctr.Reset()
	if pl.startDecode() {
		pl.scan.start()
	}
}

// clock advances the player by one color clock.
func (pl *Player) clock() {
	pl.scan.tick(pl.width(), pl.pixelBit)

	if pl.ctr.Clock() && pl.startDecode() {
		pl.scan.start()
	}
}

// startHMove latches the motion register into the position counter.
func (pl *Player) startHMove() {
	pl.ctr.StartHMove(pl.hmove)
	pl.scan.tick(pl.width(), pl.pixelBit)
}

// applyHMove feeds one stuffed clock into the position counter, if any
// remain outstanding.
func (pl *Player) applyHMove() {
	moved, clocked := pl.ctr.ApplyHMove()

	if clocked && pl.startDecode() {
		pl.scan.start()
	}

	if moved {
		pl.scan.tick(pl.width(), pl.pixelBit)
	}
}

// Pixel returns whether the player is outputting a pixel on this color
// clock, and the color of that pixel.
func (pl Player) Pixel() (bool, uint8) {
	color := pl.colors.COLUP0
	if pl.id == 1 {
		color = pl.colors.COLUP1
	}
	return pl.scan.latched && pl.scan.pixelOn, color
}
