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

package hardware

import (
	"github.com/ltriant/atari2600/cartridgeloader"
	"github.com/ltriant/atari2600/hardware/cpu"
	"github.com/ltriant/atari2600/hardware/memory"
	"github.com/ltriant/atari2600/hardware/memory/addresses"
	"github.com/ltriant/atari2600/hardware/riot"
	"github.com/ltriant/atari2600/hardware/tia"
	"github.com/ltriant/atari2600/television"
)

// VCS is the main container for the emulated components of the console.
type VCS struct {
	CPU  *cpu.CPU
	Mem  *memory.VCSMemory
	TIA  *tia.TIA
	RIOT *riot.RIOT

	// tv is not part of the VCS but is attached to it
	TV television.Television
}

// NewVCS creates a new VCS and everything associated with the hardware. It is
// used for all aspects of emulation: debugging sessions and regular play.
func NewVCS(tv television.Television) (*VCS, error) {
	vcs := &VCS{TV: tv}

	vcs.Mem = memory.NewVCSMemory()
	vcs.CPU = cpu.NewCPU(vcs.Mem)

	// the fire buttons are wired to the TIA, so the RIOT needs a reference
	// to it
	vcs.TIA = tia.NewTIA(vcs.TV, vcs.Mem.TIA)
	vcs.RIOT = riot.NewRIOT(vcs.Mem.RIOT, vcs.TIA)

	return vcs, nil
}

// AttachCartridge inserts the cartridge described by the Loader into the
// console and resets the hardware, imitating the effect of switching the
// console off and on with the new cartridge in place.
func (vcs *VCS) AttachCartridge(cartload cartridgeloader.Loader) error {
	if cartload.Filename == "" && len(cartload.Data) == 0 {
		vcs.Mem.Cart.Eject()
	} else {
		if err := cartload.Load(); err != nil {
			return err
		}
		if err := vcs.Mem.Cart.Attach(cartload.Mapping, cartload.Data); err != nil {
			return err
		}
	}

	return vcs.Reset()
}

// Reset the console to its power-on state. Attached cartridge data survives
// the reset.
func (vcs *VCS) Reset() error {
	vcs.CPU.Reset()
	vcs.Mem.Reset()

	// neither chip carries state worth preserving across a reset so they
	// are simply built anew
	vcs.TIA = tia.NewTIA(vcs.TV, vcs.Mem.TIA)
	vcs.RIOT = riot.NewRIOT(vcs.Mem.RIOT, vcs.TIA)

	if err := vcs.TV.Reset(); err != nil {
		return err
	}

	return vcs.CPU.LoadPCIndirect(addresses.Reset)
}

// videoCycle defines the order of operation for the rest of the console for
// every CPU cycle. The CPU calls it after every cycle of every instruction.
//
// The TIA runs at three times the frequency of the CPU. From the "TIA 1A"
// document: "if the read-write line is low, the data [...] will be written
// into the addressed write location when the Q2 clock goes from high to
// low". In terms of this function that moment falls after the first of the
// three TIA color clocks.
func (vcs *VCS) videoCycle() error {
	vcs.RIOT.ReadMemory()
	vcs.RIOT.Step()

	rdy, err := vcs.TIA.Step()
	if err != nil {
		return err
	}

	vcs.TIA.ReadMemory()

	rdy, err = vcs.TIA.Step()
	if err != nil {
		return err
	}

	rdy, err = vcs.TIA.Step()
	if err != nil {
		return err
	}

	vcs.CPU.RdyFlg = rdy

	return nil
}

// Step the console forward one CPU instruction. Putting this function in a
// loop gives an effective debugging loop.
func (vcs *VCS) Step() error {
	if err := vcs.CPU.ExecuteInstruction(vcs.videoCycle); err != nil {
		return err
	}

	// the CPU may have been left in the unready state by a WSYNC request.
	// keep cycling the rest of the hardware until the TIA releases the RDY
	// pin at the start of the next scanline
	for !vcs.CPU.RdyFlg {
		if err := vcs.videoCycle(); err != nil {
			return err
		}
	}

	return nil
}

// Run sets the emulation running as quickly as possible. continueCheck()
// is called after every CPU instruction and should return false when an
// external event (eg. a GUI event) indicates that the emulation should stop.
func (vcs *VCS) Run(continueCheck func() (bool, error)) error {
	cont := true

	for cont {
		if err := vcs.CPU.ExecuteInstruction(vcs.videoCycle); err != nil {
			return err
		}

		var err error
		cont, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets the emulation running for the specified number of
// frames. Useful for fps measurement and regression tests; the debugger
// prefers traps, which are more flexible.
func (vcs *VCS) RunForFrameCount(numFrames int) error {
	fn, err := vcs.TV.GetState(television.ReqFramenum)
	if err != nil {
		return err
	}

	targetFrame := fn + numFrames

	for fn != targetFrame {
		if err := vcs.Step(); err != nil {
			return err
		}

		fn, err = vcs.TV.GetState(television.ReqFramenum)
		if err != nil {
			return err
		}
	}

	return nil
}
