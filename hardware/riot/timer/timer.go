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

package timer

import (
	"fmt"

	"github.com/ltriant/atari2600/hardware/memory/addresses"
	"github.com/ltriant/atari2600/hardware/memory/bus"
)

// Interval indicates how often, in CPU cycles, the timer value decreases.
// The interval is chosen by which of the four timer registers the CPU writes
// to; it collapses to 1 once the timer has underflowed.
type Interval int

// List of valid Interval values.
const (
	TIM1T  Interval = 1
	TIM8T  Interval = 8
	TIM64T Interval = 64
	T1024T Interval = 1024
)

func (in Interval) String() string {
	switch in {
	case TIM1T:
		return "TIM1T"
	case TIM8T:
		return "TIM8T"
	case TIM64T:
		return "TIM64T"
	case T1024T:
		return "T1024T"
	}
	panic("unknown timer interval")
}

// Timer implements the timer part of the 6532.
type Timer struct {
	mem bus.ChipBus

	// the interval most recently requested by the CPU
	Divider Interval

	// the current timer value. a reflection of the INTIM register
	INTIMvalue uint8

	// whether the timer has underflowed since the last write to a timer
	// register or read of INTIM
	TIMINT bool

	// the number of CPU cycles remaining before the value next decreases:
	//  * set to 0 when a new timer value is written, so the first decrease
	//    follows on the next cycle
	//  * reset to the divider whenever the value decreases
	TicksRemaining int
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer(mem bus.ChipBus) *Timer {
	tmr := &Timer{
		mem:            mem,
		Divider:        T1024T,
		TicksRemaining: int(T1024T),
	}

	tmr.mem.ChipWrite(addresses.INTIM, tmr.INTIMvalue)
	tmr.mem.ChipWrite(addresses.TIMINT, 0)

	return tmr
}

func (tmr Timer) String() string {
	return fmt.Sprintf("INTIM=%#02x remn=%#02x intv=%s timint=%v",
		tmr.INTIMvalue, tmr.TicksRemaining, tmr.Divider, tmr.TIMINT)
}

// ReadMemory checks whether the changed register applies to the timer and
// services it if so. Returns true if the write was serviced.
func (tmr *Timer) ReadMemory(reg bus.ChangedRegister) bool {
	switch reg.Register {
	case "TIM1T":
		tmr.Divider = TIM1T
	case "TIM8T":
		tmr.Divider = TIM8T
	case "TIM64T":
		tmr.Divider = TIM64T
	case "T1024T":
		tmr.Divider = T1024T
	default:
		return false
	}

	tmr.INTIMvalue = reg.Value
	tmr.TicksRemaining = 0
	tmr.TIMINT = false

	tmr.mem.ChipWrite(addresses.INTIM, tmr.INTIMvalue)
	tmr.mem.ChipWrite(addresses.TIMINT, 0x00)

	return true
}

// Step the timer forward one CPU cycle.
func (tmr *Timer) Step() {
	// the timer reacts to reads of its registers, not just writes
	if ok, address := tmr.mem.LastReadAddress(); ok {
		switch addresses.ReadSymbols[address] {
		case "INTIM":
			// reading INTIM acknowledges an underflow
			tmr.TIMINT = false
			tmr.mem.ChipWrite(addresses.TIMINT, 0x00)
		case "TIMINT":
			// bit 6 of TIMINT, the edge-detect flag, clears on read.
			// bit 7 does not
			v := tmr.mem.ChipRefer(addresses.TIMINT)
			tmr.mem.ChipWrite(addresses.TIMINT, v&0xbf)
		}
	}

	tmr.TicksRemaining--
	if tmr.TicksRemaining < 0 {
		tmr.INTIMvalue--
		if tmr.INTIMvalue == 0xff {
			tmr.TIMINT = true
			tmr.mem.ChipWrite(addresses.TIMINT, 0xc0)
		}

		tmr.mem.ChipWrite(addresses.INTIM, tmr.INTIMvalue)

		// once the timer has underflowed it decreases at every cycle,
		// until the underflow is acknowledged or a new value written
		if tmr.TIMINT {
			tmr.TicksRemaining = 0
		} else {
			tmr.TicksRemaining = int(tmr.Divider) - 1
		}
	}
}
