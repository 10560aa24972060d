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

const missileInitDelay = 4

// Missile is one of the two single-bit missile sprites. A missile takes its
// color from its sibling player and its copy count from the same NUSIZx bits
// that position the player copies.
type Missile struct {
	label  string
	colors *Colors
	id     int

	ctr  *counter.Counter
	scan scanCounter

	enabled bool
	hmove   uint8

	// width of the missile in color clocks, from NUSIZx bits 4-5
	size int

	// copy count bits shared with the sibling player, from NUSIZx bits 0-2
	nusiz uint8

	// the RESMPx register. while set the missile is hidden and its position
	// counter tracks the sibling player
	lockedToPlayer bool
}

func newMissile(label string, id int, colors *Colors) *Missile {
	ms := &Missile{
		label:  label,
		id:     id,
		colors: colors,
		ctr:    counter.NewCounter(40, 39),
		size:   1,
	}
	ms.scan = scanCounter{initDelay: missileInitDelay, graphicSize: 1}
	return ms
}

func (ms Missile) String() string {
	return fmt.Sprintf("%s: pos=%s enabled=%v size=%d", ms.label, ms.ctr, ms.enabled, ms.size)
}

func (ms Missile) pixelBit(_ int) bool {
	return ms.enabled
}

func (ms Missile) startDecode() bool {
	v := ms.ctr.Value()

	return v == 39 ||
		(v == 3 && (ms.nusiz == 0x01 || ms.nusiz == 0x03)) ||
		(v == 7 && (ms.nusiz == 0x02 || ms.nusiz == 0x03 || ms.nusiz == 0x06)) ||
		(v == 15 && (ms.nusiz == 0x04 || ms.nusiz == 0x06))
}

// resm services the RESMx strobe.
func (ms *Missile) resm() {
	ms.ctr.Reset()
	if ms.startDecode() {
		ms.scan.start()
	}
}

// resetToPlayer services the RESMPx register. the missile's position counter
// adopts the phase of the sibling player's counter.
func (ms *Missile) resetToPlayer(pl *Player) {
	ms.ctr.AlignTo(pl.ctr)
}

// clock advances the missile by one color clock.
func (ms *Missile) clock() {
	ms.scan.tick(ms.size, ms.pixelBit)

	if ms.ctr.Clock() && ms.startDecode() {
		ms.scan.start()
	}
}

func (ms *Missile) startHMove() {
	ms.ctr.StartHMove(ms.hmove)
	ms.scan.tick(ms.size, ms.pixelBit)
}

func (ms *Missile) applyHMove() {
	moved, clocked := ms.ctr.ApplyHMove()

	if clocked && ms.startDecode() {
		ms.scan.start()
	}

	if moved {
		ms.scan.tick(ms.size, ms.pixelBit)
	}
}

// Pixel returns whether the missile is outputting a pixel on this color
// clock, and the color of that pixel.
func (ms Missile) Pixel() (bool, uint8) {
	color := ms.colors.COLUP0
	if ms.id == 1 {
		color = ms.colors.COLUP1
	}
	return !ms.lockedToPlayer && ms.scan.latched && ms.scan.pixelOn, color
}
