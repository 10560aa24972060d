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

// ColorSignal is the color information sent by the TIA for a single clock. It
// is the value of the applicable TIA color register (bit 0 is not used by the
// hardware).
type ColorSignal int

// VideoBlack is the ColorSignal value that indicates no pixel is being sent.
const VideoBlack ColorSignal = -1

// SignalAttributes represents the composite signal sent from the TIA to the
// television on every color clock.
type SignalAttributes struct {
	VSync      bool
	VBlank     bool
	FrontPorch bool
	HSync      bool
	CBurst     bool
	Pixel      ColorSignal
}

// StateReq is used to identify which television attribute is being asked
// for with the GetState() function.
type StateReq int

// List of valid state requests.
const (
	ReqFramenum StateReq = iota
	ReqScanline
	ReqHorizPos
)

// Television defines the operations that the TIA needs in order to display
// (or otherwise process) the video signal.
type Television interface {
	// Signal updates the television state on receipt of one color clock's
	// worth of signal from the TIA
	Signal(SignalAttributes) error

	// GetState returns the value for the requested state attribute
	GetState(StateReq) (int, error)

	// Spec returns the television specification in use
	Spec() *Spec

	// AddRenderer registers an implementation of Renderer for per-pixel
	// streaming
	AddRenderer(Renderer)

	// AddRasterReceiver registers an implementation of RasterReceiver for
	// whole-frame handoff
	AddRasterReceiver(RasterReceiver)

	// Reset the television to an initial state
	Reset() error

	// End gently closes down all attached renderers and receivers
	End() error
}

// Renderer implementations display, or otherwise work with, pixels streamed
// from a television as they arrive.
type Renderer interface {
	// NewFrame and NewScanline are called at the start of the frame/scanline
	NewFrame(frameNum int) error
	NewScanline(scanline int) error

	// SetPixel is called for every visible clock of every visible scanline.
	// x and y are measured from the top-left of the visible screen. pixels
	// inside the VBLANK period are sent as video black with the vblank flag
	// raised.
	SetPixel(x, y int, red, green, blue byte, vblank bool) error

	// some renderers may need to conclude and/or dispose of resources
	// gently. the Renderer should be considered unusable after
	// EndRendering() has been called
	EndRendering() error
}

// RasterReceiver implementations accept the completed raster at the end of
// every frame. The received raster must be treated as read-only; it remains
// valid until the end of the following frame, at which point the television
// will begin overwriting it (the television double-buffers its rasters).
type RasterReceiver interface {
	NewRaster(raster *Frame) error
}
