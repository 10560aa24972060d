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

package counter_test

import (
	"testing"

	"github.com/ltriant/atari2600/hardware/tia/counter"
	"github.com/ltriant/atari2600/test"
)

func TestClocking(t *testing.T) {
	ct := counter.NewCounter(40, 39)

	test.Equate(t, ct.Value(), 0)

	// the counted value only changes every fourth color clock
	ct.Clock()
	test.Equate(t, ct.Value(), 0)
	ct.Clock()
	test.Equate(t, ct.Value(), 0)
	ct.Clock()
	test.Equate(t, ct.Value(), 0)
	clocked := ct.Clock()
	test.Equate(t, clocked, true)
	test.Equate(t, ct.Value(), 1)

	for i := 0; i < 152; i++ {
		ct.Clock()
	}
	test.Equate(t, ct.Value(), 39)

	ct.Clock()
	test.Equate(t, ct.Value(), 39)
	ct.Clock()
	test.Equate(t, ct.Value(), 39)
	ct.Clock()
	test.Equate(t, ct.Value(), 39)
	clocked = ct.Clock()
	test.Equate(t, clocked, true)
	test.Equate(t, ct.Value(), 0)
}

func TestReset(t *testing.T) {
	ct := counter.NewCounter(40, 39)

	for i := 0; i < 99; i++ {
		ct.Clock()
	}
	test.Equate(t, ct.Value(), 24)

	// a sprite counter resets to the value just before wrap-around; the
	// wrap occurs four clocks later
	ct.Reset()
	test.Equate(t, ct.Value(), 39)
	ct.Clock()
	ct.Clock()
	ct.Clock()
	clocked := ct.Clock()
	test.Equate(t, clocked, true)
	test.Equate(t, ct.Value(), 0)

	// the hsync counter resets to zero
	hs := counter.NewCounter(57, 0)
	for i := 0; i < 51; i++ {
		hs.Clock()
	}
	hs.Reset()
	test.Equate(t, hs.Value(), 0)
	test.Equate(t, hs.InternalValue(), 0)
}

func TestHMove(t *testing.T) {
	ct := counter.NewCounter(40, 39)

	// a motion value of zero still stuffs eight clocks
	ct.StartHMove(0x00)
	n := 0
	for {
		moved, _ := ct.ApplyHMove()
		if !moved {
			break
		}
		n++
	}
	test.Equate(t, n, 8)
	test.Equate(t, ct.Value(), 2)

	// +1 (move left) stuffs nine clocks
	ct.StartHMove(0x10)
	n = 0
	for {
		moved, _ := ct.ApplyHMove()
		if !moved {
			break
		}
		n++
	}
	test.Equate(t, n, 9)

	// -8 (extreme right) stuffs no clocks at all
	ct.StartHMove(0x80)
	moved, _ := ct.ApplyHMove()
	test.Equate(t, moved, false)

	// -1 (move right) stuffs seven clocks
	ct.StartHMove(0xf0)
	n = 0
	for {
		moved, _ := ct.ApplyHMove()
		if !moved {
			break
		}
		n++
	}
	test.Equate(t, n, 7)
}

func TestAlignTo(t *testing.T) {
	a := counter.NewCounter(40, 39)
	b := counter.NewCounter(40, 39)

	for i := 0; i < 77; i++ {
		a.Clock()
	}

	b.AlignTo(a)
	test.Equate(t, b.InternalValue(), a.InternalValue())
	test.Equate(t, b.Value(), 19)
}
