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

// scanCounter is the graphics scan counter circuit attached to each sprite.
// When the sprite's position counter hits a start decode the scan counter is
// started and, after the sprite's start-up delay, serialises the bits of the
// graphic onto the video output.
type scanCounter struct {
	// clocks between the start signal and the first bit of the graphic.
	// five for players, four for missiles and the ball
	initDelay int

	// number of bits in the graphic. eight for players, one for missiles
	// and the ball
	graphicSize int

	// the bit of the graphic currently being output. counts up from
	// -initDelay; bits are output while the value is a valid bit index
	idx    int
	active bool

	// how many clocks the current bit has been held for. a bit is held for
	// as many clocks as the sprite's width demands
	clocksHeld int

	// the serialised output. latched is false when the scan counter is not
	// outputting anything at all
	pixelOn bool
	latched bool
}

// start begins a new scan of the graphic. called on a start decode or a
// reset strobe.
func (sc *scanCounter) start() {
	sc.active = true
	sc.idx = -sc.initDelay
	sc.clocksHeld = 0
}

// tick advances the scan by one color clock. width is the number of clocks
// each bit is held for; pixelBit reports whether a given bit of the graphic
// is set.
func (sc *scanCounter) tick(width int, pixelBit func(bit int) bool) {
	if !sc.active {
		sc.latched = false
		return
	}

	if sc.idx >= 0 && sc.idx < sc.graphicSize {
		sc.pixelOn = pixelBit(sc.idx)
		sc.latched = true

		sc.clocksHeld++
		if sc.clocksHeld == width {
			sc.clocksHeld = 0
			sc.idx++
		}

		if sc.idx == sc.graphicSize {
			sc.active = false
		}
	} else {
		sc.idx++
	}
}
