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

package sdl

import (
	"time"

	"github.com/ltriant/atari2600/errors"
	"github.com/ltriant/atari2600/gui"
	"github.com/ltriant/atari2600/television"
	"github.com/veandco/go-sdl2/sdl"
)

// the number of bytes per pixel in the texture (RGBA)
const pixelDepth = 4

// a television pixel is two color clocks wide on a real screen
const pixelWidth = 2

// GUI is the SDL2 implementation of a windowed display for the console. It
// attaches itself to the supplied television as a Renderer.
type GUI struct {
	tv   television.Television
	spec *television.Spec

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// the pixels of the frame being assembled, copied to the texture on
	// every NewFrame()
	pixels      []byte
	horizPixels int
	scanlines   int

	// regulates how often the screen is updated
	lmtr *time.Ticker

	handler gui.EventHandler
	running bool
}

// NewGUI is the preferred method of initialisation for the sdl.GUI type.
// The scale argument is the window size as a multiple of the 160x192 pixel
// visible screen (television pixels are two color clocks wide, which the
// window width accounts for).
func NewGUI(tv television.Television, scale float32) (*GUI, error) {
	gtv := &GUI{
		tv:      tv,
		spec:    tv.Spec(),
		running: true,
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, errors.NewFormattedError(errors.SDL, err)
	}

	gtv.horizPixels = gtv.spec.ClocksPerVisible
	gtv.scanlines = gtv.spec.ScanlinesPerVisible

	var err error

	gtv.window, err = sdl.CreateWindow("atari2600",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(float32(gtv.horizPixels*pixelWidth)*scale),
		int32(float32(gtv.scanlines)*scale),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, errors.NewFormattedError(errors.SDL, err)
	}

	gtv.renderer, err = sdl.CreateRenderer(gtv.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, errors.NewFormattedError(errors.SDL, err)
	}

	// the texture is the size of the pixel array. the renderer scales it to
	// the window
	gtv.texture, err = gtv.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(gtv.horizPixels), int32(gtv.scanlines))
	if err != nil {
		return nil, errors.NewFormattedError(errors.SDL, err)
	}

	gtv.pixels = make([]byte, gtv.horizPixels*gtv.scanlines*pixelDepth)

	// preset alpha channel. we never change the value of this channel
	for i := pixelDepth - 1; i < len(gtv.pixels); i += pixelDepth {
		gtv.pixels[i] = 255
	}

	gtv.lmtr = time.NewTicker(time.Duration(float32(time.Second) / gtv.spec.FramesPerSecond))

	tv.AddRenderer(gtv)

	return gtv, nil
}

// SetEventHandler implements the gui.GUI interface.
func (gtv *GUI) SetEventHandler(handler gui.EventHandler) {
	gtv.handler = handler
}

// IsRunning implements the gui.GUI interface.
func (gtv *GUI) IsRunning() bool {
	return gtv.running
}

// NewFrame implements the television.Renderer interface. The completed
// frame is presented and the SDL event queue serviced.
func (gtv *GUI) NewFrame(frameNum int) error {
	if err := gtv.serviceEvents(); err != nil {
		return err
	}

	err := gtv.texture.Update(nil, gtv.pixels, gtv.horizPixels*pixelDepth)
	if err != nil {
		return errors.NewFormattedError(errors.SDL, err)
	}
	if err := gtv.renderer.Copy(gtv.texture, nil, nil); err != nil {
		return errors.NewFormattedError(errors.SDL, err)
	}
	gtv.renderer.Present()

	// throttle to the frame rate of the television specification
	<-gtv.lmtr.C

	return nil
}

// NewScanline implements the television.Renderer interface.
func (gtv *GUI) NewScanline(scanline int) error {
	return nil
}

// SetPixel implements the television.Renderer interface.
func (gtv *GUI) SetPixel(x, y int, red, green, blue byte, vblank bool) error {
	if vblank {
		red, green, blue = 0, 0, 0
	}

	o := (y*gtv.horizPixels + x) * pixelDepth
	if o < 0 || o+pixelDepth > len(gtv.pixels) {
		return nil
	}

	gtv.pixels[o] = red
	gtv.pixels[o+1] = green
	gtv.pixels[o+2] = blue

	return nil
}

// EndRendering implements the television.Renderer interface.
func (gtv *GUI) EndRendering() error {
	gtv.running = false
	gtv.lmtr.Stop()

	gtv.texture.Destroy()
	gtv.renderer.Destroy()
	gtv.window.Destroy()
	sdl.Quit()

	return nil
}
