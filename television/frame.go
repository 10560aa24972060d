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

// Frame is the raster of one complete television frame. Only the visible
// portion of the frame is stored; HBLANK and VBLANK/overscan scanlines have
// no pixels by definition.
//
// A Frame received through the RasterReceiver interface must be treated as
// read-only.
type Frame struct {
	// the frame number, counted from the start of emulation
	Num int

	pixels [][]RGB
}

// NewFrame is the preferred method of initialisation for the Frame type.
func NewFrame(spec *Spec) *Frame {
	frame := &Frame{}

	frame.pixels = make([][]RGB, spec.ScanlinesPerVisible)
	for i := range frame.pixels {
		frame.pixels[i] = make([]RGB, spec.ClocksPerVisible)
	}

	return frame
}

// Width returns the number of pixels in every row of the frame.
func (frame *Frame) Width() int {
	if len(frame.pixels) == 0 {
		return 0
	}
	return len(frame.pixels[0])
}

// Height returns the number of rows in the frame.
func (frame *Frame) Height() int {
	return len(frame.pixels)
}

// Pixel returns the color of the pixel at the specified coordinates,
// measured from the top-left of the visible screen.
func (frame *Frame) Pixel(x, y int) RGB {
	return frame.pixels[y][x]
}

// setPixel is used by the television as the frame is assembled. out of range
// coordinates are the television's fault and we want to know about it loudly.
func (frame *Frame) setPixel(x, y int, col RGB) {
	frame.pixels[y][x] = col
}

// clear the frame to video black.
func (frame *Frame) clear() {
	for y := range frame.pixels {
		for x := range frame.pixels[y] {
			frame.pixels[y][x] = videoBlack
		}
	}
}
