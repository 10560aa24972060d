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

package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/ltriant/atari2600/errors"
	"github.com/ltriant/atari2600/gui"
	"github.com/ltriant/atari2600/television"
)

// GUI renders the television frame into a terminal with tcell. Two
// scanlines share one character cell through the half-block rune, so the
// 160x192 visible screen needs a 160x96 cell area.
type GUI struct {
	tv   television.Television
	spec *television.Spec

	screen tcell.Screen

	// the frame being assembled. row-major, one RGB value per visible
	// pixel
	pixels []television.RGB
	width  int
	height int

	lmtr *time.Ticker

	handler gui.EventHandler
	running bool

	// terminals report key presses but not key releases, so releases are
	// synthesized when a key has not repeated for a timeout period
	held map[heldKey]time.Time
}

// NewGUI is the preferred method of initialisation for the terminal.GUI
// type.
func NewGUI(tv television.Television) (*GUI, error) {
	gtv := &GUI{
		tv:      tv,
		spec:    tv.Spec(),
		running: true,
		held:    make(map[heldKey]time.Time),
	}

	gtv.width = gtv.spec.ClocksPerVisible
	gtv.height = gtv.spec.ScanlinesPerVisible
	gtv.pixels = make([]television.RGB, gtv.width*gtv.height)

	var err error

	gtv.screen, err = tcell.NewScreen()
	if err != nil {
		return nil, errors.NewFormattedError(errors.TerminalRenderer, err)
	}
	if err := gtv.screen.Init(); err != nil {
		return nil, errors.NewFormattedError(errors.TerminalRenderer, err)
	}

	gtv.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	gtv.screen.Clear()

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

// NewFrame implements the television.Renderer interface.
func (gtv *GUI) NewFrame(frameNum int) error {
	if err := gtv.serviceEvents(); err != nil {
		return err
	}

	gtv.draw()
	gtv.screen.Show()

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
	if x < 0 || x >= gtv.width || y < 0 || y >= gtv.height {
		return nil
	}
	gtv.pixels[y*gtv.width+x] = television.RGB{Red: red, Green: green, Blue: blue}
	return nil
}

// EndRendering implements the television.Renderer interface.
func (gtv *GUI) EndRendering() error {
	gtv.running = false
	gtv.lmtr.Stop()
	gtv.screen.Fini()
	return nil
}

// draw the frame with the upper-half-block rune: the foreground color is
// the upper of the two scanlines in the cell, the background the lower.
func (gtv *GUI) draw() {
	for y := 0; y < gtv.height; y += 2 {
		for x := 0; x < gtv.width; x++ {
			top := gtv.pixels[y*gtv.width+x]
			bot := gtv.pixels[(y+1)*gtv.width+x]

			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.Red), int32(top.Green), int32(top.Blue))).
				Background(tcell.NewRGBColor(int32(bot.Red), int32(bot.Green), int32(bot.Blue)))

			gtv.screen.SetContent(x, y/2, '▀', nil, style)
		}
	}
}
