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
	"github.com/ltriant/atari2600/hardware/memory/bus"
)

// Video is the video sub-system of the TIA: the playfield, the five sprites,
// the color registers and the collision latches.
type Video struct {
	Colors *Colors

	Playfield *Playfield
	Player0   *Player
	Player1   *Player
	Missile0  *Missile
	Missile1  *Missile
	Ball      *Ball

	Collisions *Collisions
}

// NewVideo is the preferred method of initialisation for the Video
// sub-system. mem is the TIA's chip memory, needed so that collision results
// can be made visible to the CPU.
func NewVideo(mem bus.ChipBus) *Video {
	vd := &Video{}

	vd.Colors = &Colors{}
	vd.Playfield = newPlayfield(vd.Colors)
	vd.Player0 = newPlayer("P0", 0, vd.Colors)
	vd.Player1 = newPlayer("P1", 1, vd.Colors)
	vd.Missile0 = newMissile("M0", 0, vd.Colors)
	vd.Missile1 = newMissile("M1", 1, vd.Colors)
	vd.Ball = newBall(vd.Colors)
	vd.Collisions = newCollisions(mem)

	return vd
}

// TickPlayfield advances the playfield by one color clock. Called by the
// TIA for every clock outside of horizontal blank. The playfield is driven
// directly by the hsync circuit so it ticks even when an HMOVE has gated the
// sprite clocks.
func (vd *Video) TickPlayfield() {
	vd.Playfield.clock()
}

// TickSprites advances the five sprites by one color clock. Called by the
// TIA for every clock outside of horizontal blank, except during the
// extended blank of an HMOVE. The eight clocks withheld there are what
// balance the eight unconditional clocks of StartHMove(), making a motion
// register value of zero mean no movement.
func (vd *Video) TickSprites() {
	vd.Player0.clock()
	vd.Player1.clock()
	vd.Missile0.clock()
	vd.Missile1.clock()
	vd.Ball.clock()

	// a missile locked to its player adopts the player's position for as
	// long as the RESMPx bit is set
	if vd.Missile0.lockedToPlayer {
		vd.Missile0.resetToPlayer(vd.Player0)
	}
	if vd.Missile1.lockedToPlayer {
		vd.Missile1.resetToPlayer(vd.Player1)
	}
}

// StartHMove latches the motion registers into every sprite. Called by the
// TIA on the HMOVE strobe.
func (vd *Video) StartHMove() {
	vd.Player0.startHMove()
	vd.Player1.startHMove()
	vd.Missile0.startHMove()
	vd.Missile1.startHMove()
	vd.Ball.startHMove()
}

// TickHMove gives every sprite the opportunity to consume one stuffed clock
// from an in-flight horizontal move. Called by the TIA during horizontal
// blank, once for every count of the hsync counter.
func (vd *Video) TickHMove() {
	vd.Player0.applyHMove()
	vd.Player1.applyHMove()
	vd.Missile0.applyHMove()
	vd.Missile1.applyHMove()
	vd.Ball.applyHMove()
}

// Pixel resolves the priorities of all the video elements and returns the
// color to be sent to the television. Collision latches are set as a side
// effect.
func (vd *Video) Pixel() uint8 {
	p0, col0 := vd.Player0.Pixel()
	p1, col1 := vd.Player1.Pixel()
	m0, colm0 := vd.Missile0.Pixel()
	m1, colm1 := vd.Missile1.Pixel()
	bl, colbl := vd.Ball.Pixel()
	pf, colpf := vd.Playfield.Pixel()

	vd.Collisions.tally(p0, m0, p1, m1, bl, pf)

	if vd.Playfield.Priority {
		// the score bit is ignored when the playfield has priority
		switch {
		case pf:
			return vd.Colors.COLUPF
		case bl:
			return colbl
		case p0:
			return col0
		case m0:
			return colm0
		case p1:
			return col1
		case m1:
			return colm1
		}
	} else {
		switch {
		case p0:
			return col0
		case m0:
			return colm0
		case p1:
			return col1
		case m1:
			return colm1
		case bl:
			return colbl
		case pf:
			return colpf
		}
	}

	return vd.Colors.COLUBK
}

// ReadVideoMemory checks the register name against the video sub-system's
// registers and services the write if it applies. Returns true if the write
// was serviced.
func (vd *Video) ReadVideoMemory(register string, value uint8) bool {
	switch register {
	case "NUSIZ0":
		vd.Player0.nusiz = value & 0x07
		vd.Missile0.nusiz = value & 0x07
		vd.Missile0.size = 1 << ((value & 0x30) >> 4)
	case "NUSIZ1":
		vd.Player1.nusiz = value & 0x07
		vd.Missile1.nusiz = value & 0x07
		vd.Missile1.size = 1 << ((value & 0x30) >> 4)
	case "COLUP0":
		vd.Colors.COLUP0 = value & 0xfe
	case "COLUP1":
		vd.Colors.COLUP1 = value & 0xfe
	case "COLUPF":
		vd.Colors.COLUPF = value & 0xfe
	case "COLUBK":
		vd.Colors.COLUBK = value & 0xfe
	case "CTRLPF":
		vd.Playfield.SetControl(value)
		vd.Ball.size = 1 << ((value & 0x30) >> 4)
	case "REFP0":
		vd.Player0.reflect = value&0x08 != 0
	case "REFP1":
		vd.Player1.reflect = value&0x08 != 0
	case "PF0":
		vd.Playfield.SetPF0(value)
	case "PF1":
		vd.Playfield.SetPF1(value)
	case "PF2":
		vd.Playfield.SetPF2(value)
	case "RESP0":
		vd.Player0.resp()
	case "RESP1":
		vd.Player1.resp()
	case "RESM0":
		vd.Missile0.resm()
	case "RESM1":
		vd.Missile1.resm()
	case "RESBL":
		vd.Ball.resbl()
	case "GRP0":
		vd.Player0.graphic = value
		// writing GRP0 latches the delayed copy of the other player's
		// graphic
		vd.Player1.oldGraphic = vd.Player1.graphic
	case "GRP1":
		vd.Player1.graphic = value
		vd.Player0.oldGraphic = vd.Player0.graphic
		vd.Ball.oldEnabled = vd.Ball.enabled
	case "ENAM0":
		vd.Missile0.enabled = value&0x02 != 0
	case "ENAM1":
		vd.Missile1.enabled = value&0x02 != 0
	case "ENABL":
		vd.Ball.enabled = value&0x02 != 0
	case "HMP0":
		vd.Player0.hmove = value
	case "HMP1":
		vd.Player1.hmove = value
	case "HMM0":
		vd.Missile0.hmove = value
	case "HMM1":
		vd.Missile1.hmove = value
	case "HMBL":
		vd.Ball.hmove = value
	case "VDELP0":
		vd.Player0.vdel = value&0x01 != 0
	case "VDELP1":
		vd.Player1.vdel = value&0x01 != 0
	case "VDELBL":
		vd.Ball.vdel = value&0x01 != 0
	case "RESMP0":
		vd.Missile0.lockedToPlayer = value&0x02 != 0
		if vd.Missile0.lockedToPlayer {
			vd.Missile0.resetToPlayer(vd.Player0)
		}
	case "RESMP1":
		vd.Missile1.lockedToPlayer = value&0x02 != 0
		if vd.Missile1.lockedToPlayer {
			vd.Missile1.resetToPlayer(vd.Player1)
		}
	case "HMCLR":
		vd.Player0.hmove = 0
		vd.Player1.hmove = 0
		vd.Missile0.hmove = 0
		vd.Missile1.hmove = 0
		vd.Ball.hmove = 0
	case "CXCLR":
		vd.Collisions.Clear()
	default:
		return false
	}

	return true
}
