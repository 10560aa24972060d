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

package riot

import (
	"fmt"

	"github.com/ltriant/atari2600/hardware/memory/bus"
	"github.com/ltriant/atari2600/hardware/riot/ports"
	"github.com/ltriant/atari2600/hardware/riot/timer"
	"github.com/ltriant/atari2600/logger"
)

// RIOT contains the sub-components of the VCS RIOT sub-system: the interval
// timer and the IO ports. The RAM of the 6532 is part of the memory system
// and is not represented here.
type RIOT struct {
	mem bus.ChipBus

	Timer *timer.Timer
	Ports *ports.Ports
}

// NewRIOT is the preferred method of initialisation for the RIOT type. mem
// is the RIOT's chip memory; inp is the owner of the INPTx registers the
// fire buttons are wired to.
func NewRIOT(mem bus.ChipBus, inp ports.InputWriter) *RIOT {
	riot := &RIOT{mem: mem}
	riot.Timer = timer.NewTimer(mem)
	riot.Ports = ports.NewPorts(mem, inp)
	return riot
}

// MachineInfoTerse returns the RIOT information in terse format.
func (riot RIOT) MachineInfoTerse() string {
	return fmt.Sprintf("RIOT: %s", riot.Timer)
}

// MachineInfo returns the RIOT information in verbose format.
func (riot RIOT) MachineInfo() string {
	return fmt.Sprintf("%v\n%v", riot.Timer, riot.Ports)
}

// map String to MachineInfo.
func (riot RIOT) String() string {
	return riot.MachineInfo()
}

// ReadMemory checks for side effects in the RIOT sub-system. Called by the
// console on every CPU cycle, before the RIOT is stepped.
func (riot *RIOT) ReadMemory() {
	reg, ok := riot.mem.ChipHasChanged()
	if !ok {
		return
	}

	if riot.Timer.ReadMemory(reg) {
		return
	}
	if riot.Ports.ReadMemory(reg) {
		return
	}

	logger.Logf("RIOT", "ineffective write to RIOT (%s=%#02x)", reg.Register, reg.Value)
}

// Step moves the state of the RIOT forward one CPU cycle.
func (riot *RIOT) Step() {
	riot.Timer.Step()
}
