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

package television

import (
	"fmt"
	"strings"

	"github.com/ltriant/atari2600/errors"
	"github.com/ltriant/atari2600/logger"
)

// BasicTelevision is the reference implementation of the Television
// interface. It converts the per-clock signal stream from the TIA into
// frames, streaming pixels to any attached Renderers and handing the
// completed raster to any attached RasterReceivers.
//
// BasicTelevision has no display of its own. Frontends attach to it.
type BasicTelevision struct {
	spec *Spec

	// the current horizontal position, relative to the start of the visible
	// portion of the scanline. the leftmost visible clock is zero; positions
	// during HBLANK are negative
	horizPos int

	frameNum int
	scanline int

	// record of the signal attributes from the previous call to Signal()
	prevSignal SignalAttributes

	// vsyncCount records the number of consecutive color clocks the VSYNC
	// signal has been sustained for
	vsyncCount int

	// if the signal stream does not match the television protocol the
	// television carries on regardless but notes the fact
	outOfSpec bool

	renderers []Renderer
	receivers []RasterReceiver

	// the television double-buffers its rasters. drawFrame is the raster
	// currently being assembled; showFrame is the completed raster most
	// recently handed to the RasterReceivers. the two are swapped at the end
	// of every frame, meaning a handed-off raster is never touched until the
	// end of the frame that follows it
	drawFrame *Frame
	showFrame *Frame
}

// NewTelevision creates a new instance of BasicTelevision for the
// specification identified by tvType.
func NewTelevision(tvType string) (*BasicTelevision, error) {
	btv := &BasicTelevision{}

	switch strings.ToUpper(tvType) {
	case "NTSC", "AUTO":
		btv.spec = SpecNTSC
	default:
		return nil, errors.NewFormattedError(errors.UnknownTelevisionRequest, tvType)
	}

	btv.renderers = make([]Renderer, 0)
	btv.receivers = make([]RasterReceiver, 0)
	btv.drawFrame = NewFrame(btv.spec)
	btv.showFrame = NewFrame(btv.spec)

	btv.Reset()

	return btv, nil
}

// MachineInfoTerse returns the television information in terse format.
func (btv BasicTelevision) MachineInfoTerse() string {
	specExclaim := ""
	if btv.outOfSpec {
		specExclaim = " !!"
	}
	return fmt.Sprintf("FR=%d SL=%d HP=%d%s", btv.frameNum, btv.scanline, btv.horizPos, specExclaim)
}

// MachineInfo returns the television information in verbose format.
func (btv BasicTelevision) MachineInfo() string {
	s := strings.Builder{}
	outOfSpec := ""
	if btv.outOfSpec {
		outOfSpec = " !!"
	}
	s.WriteString(fmt.Sprintf("TV (%s)%s:\n", btv.spec.ID, outOfSpec))
	s.WriteString(fmt.Sprintf("   Frame: %d\n", btv.frameNum))
	s.WriteString(fmt.Sprintf("   Scanline: %d\n", btv.scanline))
	s.WriteString(fmt.Sprintf("   Horiz Pos: %d", btv.horizPos))
	return s.String()
}

// map String to MachineInfo.
func (btv BasicTelevision) String() string {
	return btv.MachineInfo()
}

// Spec implements the Television interface.
func (btv *BasicTelevision) Spec() *Spec {
	return btv.spec
}

// AddRenderer implements the Television interface.
func (btv *BasicTelevision) AddRenderer(r Renderer) {
	btv.renderers = append(btv.renderers, r)
}

// AddRasterReceiver implements the Television interface.
func (btv *BasicTelevision) AddRasterReceiver(r RasterReceiver) {
	btv.receivers = append(btv.receivers, r)
}

// Raster returns the most recently completed frame. The returned Frame is
// read-only and remains valid until the end of the frame currently being
// assembled.
func (btv *BasicTelevision) Raster() *Frame {
	return btv.showFrame
}

// Reset implements the Television interface.
func (btv *BasicTelevision) Reset() error {
	btv.horizPos = -btv.spec.ClocksPerHblank
	btv.frameNum = 0
	btv.scanline = 0
	btv.vsyncCount = 0
	btv.prevSignal = SignalAttributes{}
	btv.outOfSpec = false
	btv.drawFrame.clear()
	btv.showFrame.clear()
	return nil
}

// End implements the Television interface.
func (btv *BasicTelevision) End() error {
	var err error
	for f := range btv.renderers {
		err = btv.renderers[f].EndRendering()
	}
	return err
}

// GetState implements the Television interface.
func (btv *BasicTelevision) GetState(request StateReq) (int, error) {
	switch request {
	case ReqFramenum:
		return btv.frameNum, nil
	case ReqScanline:
		return btv.scanline, nil
	case ReqHorizPos:
		return btv.horizPos, nil
	}
	return 0, errors.NewFormattedError(errors.UnknownTelevisionRequest, request)
}

// Signal implements the Television interface. It is called by the TIA on
// every color clock.
func (btv *BasicTelevision) Signal(sig SignalAttributes) error {
	// vsync is counted in clocks, not scanlines. a new frame begins when a
	// sustained vsync signal ends
	if sig.VSync {
		btv.vsyncCount++
	} else if btv.prevSignal.VSync {
		if btv.vsyncCount >= btv.spec.VsyncClocks {
			if err := btv.newFrame(); err != nil {
				return err
			}
		} else {
			btv.outOfSpec = true
			logger.Logf("television", "vsync too short (%d clocks)", btv.vsyncCount)
		}
		btv.vsyncCount = 0
	}

	if sig.FrontPorch {
		// start a new scanline
		btv.horizPos = -btv.spec.ClocksPerHblank
		btv.scanline++

		if btv.scanline > btv.spec.ScanlinesTotal {
			// we've not yet received a vsync signal. continue on the last
			// scanline until we do
			btv.outOfSpec = true
			btv.scanline--
		}

		for f := range btv.renderers {
			if err := btv.renderers[f].NewScanline(btv.scanline); err != nil {
				return err
			}
		}
	} else {
		btv.horizPos++

		if btv.horizPos > btv.spec.ClocksPerVisible {
			// the TIA guarantees a front porch signal every 228 clocks. if we
			// get here the emulation is broken, not the program being run
			return errors.NewFormattedError(errors.OutOfSpec,
				fmt.Sprintf("no front porch signal (scanline %d)", btv.scanline))
		}
	}

	// assemble raster and stream pixels
	x := btv.horizPos
	y := btv.scanline - btv.spec.IdealTop
	if x >= 0 && x < btv.spec.ClocksPerVisible && y >= 0 && y < btv.spec.ScanlinesPerVisible {
		col := GetColor(sig.Pixel)
		if sig.VBlank {
			col = videoBlack
		}

		btv.drawFrame.setPixel(x, y, col)

		for f := range btv.renderers {
			err := btv.renderers[f].SetPixel(x, y, col.Red, col.Green, col.Blue, sig.VBlank)
			if err != nil {
				return err
			}
		}
	}

	btv.prevSignal = sig

	return nil
}

// newFrame concludes the raster being assembled and swaps in the other
// buffer, which the receivers released at the end of the previous frame.
func (btv *BasicTelevision) newFrame() error {
	btv.frameNum++

	// the vsync sequence that has just ended occupied the first scanlines of
	// the frame now beginning
	btv.scanline = btv.spec.ScanlinesPerVSync - 1

	btv.drawFrame.Num = btv.frameNum - 1
	btv.drawFrame, btv.showFrame = btv.showFrame, btv.drawFrame

	for f := range btv.receivers {
		if err := btv.receivers[f].NewRaster(btv.showFrame); err != nil {
			return err
		}
	}

	for f := range btv.renderers {
		if err := btv.renderers[f].NewFrame(btv.frameNum); err != nil {
			return err
		}
	}

	btv.drawFrame.clear()

	return nil
}
