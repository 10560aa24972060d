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

package tia

import (
	"fmt"

	"github.com/ltriant/atari2600/hardware/memory/addresses"
	"github.com/ltriant/atari2600/hardware/memory/bus"
	"github.com/ltriant/atari2600/hardware/tia/counter"
	"github.com/ltriant/atari2600/hardware/tia/video"
	"github.com/ltriant/atari2600/logger"
	"github.com/ltriant/atari2600/television"
)

// decodes of the hsync counter. the counter counts 57 values of four color
// clocks each, for a 228 clock scanline
const (
	// set hsync
	shs = 4

	// reset hsync
	rhs = 8

	// color burst
	rcb = 12

	// reset hblank
	rhb = 16

	// late reset hblank, used when an HMOVE is in flight
	lrhb = 18

	// center of the visible scanline
	cnt = 36

	// start hblank. the counter wraps to zero four clocks later
	shb = 56
)

// TIA is the television interface adaptor. It runs at color clock frequency,
// three times the CPU clock, and is responsible for everything the viewer
// sees.
type TIA struct {
	tv  television.Television
	mem bus.ChipBus

	hsync *counter.Counter

	Video *video.Video

	// register state controlled by the CPU. vblank is the raw register
	// value; bits 6 and 7 control the input ports
	vsync  bool
	vblank uint8
	wsync  bool

	// an HMOVE strobe extends the upcoming hblank period, blanking the
	// first eight clocks of the visible scanline
	lateResetHBlank bool
}

// NewTIA is the preferred method of initialisation for the TIA type. mem
// is the TIA's chip memory.
func NewTIA(tv television.Television, mem bus.ChipBus) *TIA {
	tia := &TIA{
		tv:  tv,
		mem: mem,
	}
	tia.hsync = counter.NewCounter(57, 0)
	tia.Video = video.NewVideo(mem)
	return tia
}

// MachineInfoTerse returns the TIA information in terse format.
func (tia TIA) MachineInfoTerse() string {
	return fmt.Sprintf("TIA: hsync=%s wsync=%v", tia.hsync, tia.wsync)
}

// MachineInfo returns the TIA information in verbose format.
func (tia TIA) MachineInfo() string {
	return fmt.Sprintf("hsync: %s\nvsync: %v\nvblank: %#02x\nwsync: %v\n%v\n%v\n%v\n%v\n%v\n%v",
		tia.hsync, tia.vsync, tia.vblank, tia.wsync,
		tia.Video.Playfield, tia.Video.Player0, tia.Video.Player1,
		tia.Video.Missile0, tia.Video.Missile1, tia.Video.Ball)
}

// map String to MachineInfo.
func (tia TIA) String() string {
	return tia.MachineInfo()
}

// Reset returns the TIA to its power-on state.
func (tia *TIA) Reset() {
	tia.hsync.Reset()
	tia.vsync = false
	tia.vblank = 0
	tia.wsync = false
	tia.lateResetHBlank = false
}

// visibleCycle returns true when the hsync counter is outside the horizontal
// blanking period. sprite circuits are clocked only on visible cycles.
func (tia TIA) visibleCycle() bool {
	v := tia.hsync.Value()
	return v > rhb && v <= shb
}

// renderCycle returns true when a pixel is to be sent to the television.
// the same as visibleCycle except when an HMOVE has extended the blanking
// period.
func (tia TIA) renderCycle() bool {
	reset := rhb
	if tia.lateResetHBlank {
		reset = lrhb
	}

	v := tia.hsync.Value()
	return v > reset && v <= shb
}

// ReadMemory checks for side effects in the TIA sub-system. Called by the
// console on every CPU cycle, before the TIA is stepped.
func (tia *TIA) ReadMemory() {
	reg, ok := tia.mem.ChipHasChanged()
	if !ok {
		return
	}

	switch reg.Register {
	case "VSYNC":
		tia.vsync = reg.Value&0x02 == 0x02

	case "VBLANK":
		tia.vblank = reg.Value

		// dumping the input latches returns INPT4 and INPT5 to the
		// unpressed state
		if reg.Value&0x80 == 0x80 {
			tia.mem.ChipWrite(addresses.INPT4, 0x80)
			tia.mem.ChipWrite(addresses.INPT5, 0x80)
		}

	case "WSYNC":
		tia.wsync = true

	case "RSYNC":
		tia.hsync.Reset()

	case "HMOVE":
		tia.Video.StartHMove()
		tia.lateResetHBlank = true

	case "AUDC0", "AUDC1", "AUDF0", "AUDF1", "AUDV0", "AUDV1":
		// TODO: audio synthesis
		logger.Logf("TIA", "audio register %s=%#02x ignored", reg.Register, reg.Value)

	default:
		if !tia.Video.ReadVideoMemory(reg.Register, reg.Value) {
			logger.Logf("TIA", "ineffective write to TIA (%s=%#02x)", reg.Register, reg.Value)
		}
	}
}

// UpdateInput sets the state of one of the TIA input ports, INPT4 or INPT5.
// In latched mode (bit 6 of VBLANK) a port stays low once grounded, until
// the latches are dumped.
func (tia *TIA) UpdateInput(port addresses.ChipRegister, pressed bool) {
	if pressed {
		tia.mem.ChipWrite(port, 0x00)
		return
	}

	if tia.vblank&0x40 != 0x40 {
		tia.mem.ChipWrite(port, 0x80)
	}
}

// Step moves the state of the TIA forward one color clock. Returns the
// state to be put on the CPU's RDY pin: false while a WSYNC is pending.
func (tia *TIA) Step() (bool, error) {
	clocked := tia.hsync.Clock()

	frontPorch := false
	if clocked {
		switch tia.hsync.Value() {
		case 0:
			// the counter has wrapped around: start of a new scanline.
			// a pending WSYNC is released and any HMOVE induced blanking
			// ends with the line that caused it
			frontPorch = true
			tia.wsync = false
			tia.lateResetHBlank = false

		default:
			// an in-flight HMOVE feeds stuffed clocks into the sprite
			// counters during the blanking period, at one opportunity per
			// count of the hsync counter
			if !tia.visibleCycle() {
				tia.Video.TickHMove()
			}
		}
	}

	if tia.visibleCycle() {
		tia.Video.TickPlayfield()
	}

	// the sprite clocks are gated during the extended blank of an HMOVE;
	// the sprites miss eight clocks, balancing the eight unconditional
	// stuffed clocks of the strobe
	if tia.renderCycle() {
		tia.Video.TickSprites()
	}

	pixel := television.VideoBlack
	if tia.renderCycle() {
		pixel = television.ColorSignal(tia.Video.Pixel())
	}

	v := tia.hsync.Value()
	sig := television.SignalAttributes{
		VSync:      tia.vsync,
		VBlank:     tia.vblank&0x02 == 0x02,
		FrontPorch: frontPorch,
		HSync:      v > shs && v <= rhs,
		CBurst:     v > rcb && v <= rhb,
		Pixel:      pixel,
	}

	if err := tia.tv.Signal(sig); err != nil {
		return !tia.wsync, err
	}

	return !tia.wsync, nil
}
