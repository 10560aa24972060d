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

package counter

import "fmt"

// Counter is the divide-by-four ripple counter used throughout the TIA. The
// hsync circuit uses a period of 57 (228 color clocks) and the five sprite
// circuits use a period of 40 (160 color clocks).
type Counter struct {
	period     int
	resetValue int

	// the counter at color clock granularity. the counted value, as seen by
	// the decode circuits, is internal divided by four
	internal int

	// the value at the time of the last Clock(), so that Clock() can report
	// a change of value
	lastValue int

	// outstanding clocks from a horizontal move. see StartHMove()
	clocksToAdd int
}

// NewCounter is the preferred method of initialisation for the Counter type.
// resetValue is the value adopted on Reset(), in counts not color clocks.
func NewCounter(period int, resetValue int) *Counter {
	ct := &Counter{
		period:     period,
		resetValue: resetValue,
	}
	return ct
}

func (ct Counter) String() string {
	return fmt.Sprintf("%d [phase %d]", ct.Value(), ct.internal%4)
}

// Value returns the current count, in the range 0 to period-1.
func (ct Counter) Value() int {
	return ct.internal / 4
}

// InternalValue returns the count at color clock granularity. Used for
// postioning information and for aligning one counter with another.
func (ct Counter) InternalValue() int {
	return ct.internal
}

// Reset strobes the counter back to its reset value.
func (ct *Counter) Reset() {
	ct.internal = ct.resetValue * 4
}

// AlignTo adopts the phase and value of another counter. This is how the
// RESMPx registers lock a missile to its player.
func (ct *Counter) AlignTo(other *Counter) {
	ct.internal = other.internal
}

// Clock advances the counter by one color clock, returning true if the
// counted value has changed as a result.
func (ct *Counter) Clock() bool {
	ct.internal = (ct.internal + 1) % (ct.period * 4)

	if ct.lastValue != ct.Value() {
		ct.lastValue = ct.Value()
		return true
	}

	return false
}

// StartHMove latches the number of additional clocks the counter is to
// receive, decoded from a HMxx register value. The register stores a signed
// motion value in its top nibble (-8 to +7, positive values moving the sprite
// left); offsetting by eight gives the count of extra clocks.
func (ct *Counter) StartHMove(reg uint8) {
	ct.clocksToAdd = int((reg >> 4) ^ 0x08)
}

// ApplyHMove consumes one of the clocks latched by StartHMove(). The first
// return value indicates whether a clock was consumed at all; the second
// whether the consumed clock caused the counted value to change.
func (ct *Counter) ApplyHMove() (bool, bool) {
	if ct.clocksToAdd == 0 {
		return false, false
	}

	ct.clocksToAdd--
	return true, ct.Clock()
}
