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

package ports

import (
	"fmt"

	"github.com/ltriant/atari2600/errors"
	"github.com/ltriant/atari2600/hardware/memory/addresses"
	"github.com/ltriant/atari2600/hardware/memory/bus"
)

// Event represents a state change of an attached peripheral: a joystick
// direction or fire button, or one of the switches on the console panel.
// Directions and buttons come in press/release pairs.
type Event int

// List of defined events.
const (
	NoEvent Event = iota

	// joystick
	Up
	NoUp
	Down
	NoDown
	Left
	NoLeft
	Right
	NoRight
	Fire
	NoFire

	// console panel
	PanelSelect
	PanelNoSelect
	PanelReset
	PanelNoReset
	PanelToggleColor
)

func (ev Event) String() string {
	switch ev {
	case NoEvent:
		return "no event"
	case Up, NoUp:
		return "up"
	case Down, NoDown:
		return "down"
	case Left, NoLeft:
		return "left"
	case Right, NoRight:
		return "right"
	case Fire, NoFire:
		return "fire"
	case PanelSelect, PanelNoSelect:
		return "select"
	case PanelReset, PanelNoReset:
		return "reset"
	case PanelToggleColor:
		return "color"
	}
	return fmt.Sprintf("event #%d", int(ev))
}

// joystick direction bits of port A, player 0. active low. player 1 uses
// the same pattern in the low nibble
const (
	portAUp    = uint8(0x10)
	portADown  = uint8(0x20)
	portALeft  = uint8(0x40)
	portARight = uint8(0x80)
)

// console switch bits of port B. the switches are hardwired to input
// regardless of the data direction register
const (
	portBReset  = uint8(0x01)
	portBSelect = uint8(0x02)
	portBColor  = uint8(0x08)
)

// InputWriter is implemented by the TIA, which owns the INPTx registers the
// fire buttons are wired to.
type InputWriter interface {
	UpdateInput(port addresses.ChipRegister, pressed bool)
}

// Ports implements the IO part of the 6532: port A, wired to the two
// joysticks, and port B, wired to the console panel switches.
type Ports struct {
	mem bus.ChipBus
	inp InputWriter

	// the values written to the ports by the CPU and the data direction
	// registers that decide whether those values drive the pins
	swcha  uint8
	swacnt uint8
	swchb  uint8
	swbcnt uint8

	// the pin state presented by the attached peripherals. direction and
	// switch bits are active low
	portA uint8
	portB uint8
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts(mem bus.ChipBus, inp InputWriter) *Ports {
	pts := &Ports{
		mem: mem,
		inp: inp,

		// nothing pressed; color television; both difficulty switches on
		// advanced
		portA: 0xff,
		portB: 0xc0 | portBColor | portBSelect | portBReset,
	}
	pts.commit()
	return pts
}

func (pts Ports) String() string {
	return fmt.Sprintf("SWCHA=%#02x SWCHB=%#02x", pts.portA, pts.portB)
}

// commit presents the port values to the CPU. A bit whose data direction is
// set to output reads back the value the CPU wrote; an input bit reads the
// pin state.
func (pts *Ports) commit() {
	pts.mem.ChipWrite(addresses.SWCHA, (pts.swcha&pts.swacnt)|(pts.portA&^pts.swacnt))
	pts.mem.ChipWrite(addresses.SWACNT, pts.swacnt)
	pts.mem.ChipWrite(addresses.SWCHB, (pts.swchb&pts.swbcnt)|(pts.portB&^pts.swbcnt))
	pts.mem.ChipWrite(addresses.SWBCNT, pts.swbcnt)
}

// ReadMemory checks whether the changed register applies to the IO ports
// and services it if so. Returns true if the write was serviced.
func (pts *Ports) ReadMemory(reg bus.ChangedRegister) bool {
	switch reg.Register {
	case "SWCHA":
		pts.swcha = reg.Value
	case "SWACNT":
		pts.swacnt = reg.Value
	case "SWCHB":
		pts.swchb = reg.Value
	case "SWBCNT":
		pts.swbcnt = reg.Value
	default:
		return false
	}

	pts.commit()
	return true
}

// HandleEvent updates the port state in response to a peripheral event.
// player identifies the joystick (0 or 1) for the joystick events and is
// ignored for the panel events.
func (pts *Ports) HandleEvent(player int, event Event) error {
	if player != 0 && player != 1 {
		return errors.NewFormattedError(errors.UnknownPeriphEvent,
			fmt.Sprintf("player %d", player))
	}

	// player 1 directions are the same pattern shifted into the low nibble
	shift := uint(0)
	if player == 1 {
		shift = 4
	}

	switch event {
	case NoEvent:

	case Up:
		pts.portA &^= portAUp >> shift
	case NoUp:
		pts.portA |= portAUp >> shift
	case Down:
		pts.portA &^= portADown >> shift
	case NoDown:
		pts.portA |= portADown >> shift
	case Left:
		pts.portA &^= portALeft >> shift
	case NoLeft:
		pts.portA |= portALeft >> shift
	case Right:
		pts.portA &^= portARight >> shift
	case NoRight:
		pts.portA |= portARight >> shift

	case Fire, NoFire:
		port := addresses.INPT4
		if player == 1 {
			port = addresses.INPT5
		}
		pts.inp.UpdateInput(port, event == Fire)

	case PanelSelect:
		pts.portB &^= portBSelect
	case PanelNoSelect:
		pts.portB |= portBSelect
	case PanelReset:
		pts.portB &^= portBReset
	case PanelNoReset:
		pts.portB |= portBReset
	case PanelToggleColor:
		pts.portB ^= portBColor

	default:
		return errors.NewFormattedError(errors.UnknownPeriphEvent, event)
	}

	pts.commit()
	return nil
}
