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
	"github.com/ltriant/atari2600/hardware/riot/ports"
	"github.com/veandco/go-sdl2/sdl"
)

// serviceEvents drains the SDL event queue, translating keyboard events
// into port events for the registered handler. Called once per frame, from
// NewFrame().
//
// Player 0 is on the cursor keys or WASD with space for the fire button.
// F1 and F2 are the game select and reset switches, F3 toggles the color
// switch and ESC closes the window.
func (gtv *GUI) serviceEvents() error {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			gtv.running = false

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			down := ev.Type == sdl.KEYDOWN
			if err := gtv.serviceKeyboard(ev.Keysym.Sym, down); err != nil {
				return err
			}
		}
	}

	return nil
}

func (gtv *GUI) serviceKeyboard(key sdl.Keycode, down bool) error {
	if key == sdl.K_ESCAPE && down {
		gtv.running = false
		return nil
	}

	if gtv.handler == nil {
		return nil
	}

	var event ports.Event

	switch key {
	case sdl.K_UP, sdl.K_w:
		event = choose(down, ports.Up, ports.NoUp)
	case sdl.K_DOWN, sdl.K_s:
		event = choose(down, ports.Down, ports.NoDown)
	case sdl.K_LEFT, sdl.K_a:
		event = choose(down, ports.Left, ports.NoLeft)
	case sdl.K_RIGHT, sdl.K_d:
		event = choose(down, ports.Right, ports.NoRight)
	case sdl.K_SPACE:
		event = choose(down, ports.Fire, ports.NoFire)
	case sdl.K_F1:
		event = choose(down, ports.PanelSelect, ports.PanelNoSelect)
	case sdl.K_F2:
		event = choose(down, ports.PanelReset, ports.PanelNoReset)
	case sdl.K_F3:
		if !down {
			return nil
		}
		event = ports.PanelToggleColor
	default:
		return nil
	}

	return gtv.handler(0, event)
}

func choose(down bool, press, release ports.Event) ports.Event {
	if down {
		return press
	}
	return release
}
