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
	"github.com/ltriant/atari2600/hardware/riot/ports"
)

// heldKey couples a press event with its release counterpart.
type heldKey struct {
	press   ports.Event
	release ports.Event
}

// how long a key is considered held after its last press or auto-repeat.
// slightly longer than a typical terminal repeat interval
const keyTimeout = 150 * time.Millisecond

// serviceEvents drains the tcell event queue and synthesizes press/release
// pairs for the registered handler. Called once per frame, from NewFrame().
//
// Player 0 is on the cursor keys or WASD with space for the fire button.
// F1 and F2 are the game select and reset switches, F3 toggles the color
// switch and ESC or ctrl-c closes the frontend.
func (gtv *GUI) serviceEvents() error {
	now := time.Now()

	for gtv.screen.HasPendingEvent() {
		ev := gtv.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			gtv.screen.Sync()

		case *tcell.EventKey:
			if err := gtv.serviceKey(ev, now); err != nil {
				return err
			}
		}
	}

	// expire keys that have stopped repeating
	for hk, lastSeen := range gtv.held {
		if now.Sub(lastSeen) >= keyTimeout {
			delete(gtv.held, hk)
			if gtv.handler != nil {
				if err := gtv.handler(0, hk.release); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (gtv *GUI) serviceKey(ev *tcell.EventKey, now time.Time) error {
	var hk heldKey

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		gtv.running = false
		return nil
	case tcell.KeyUp:
		hk = heldKey{ports.Up, ports.NoUp}
	case tcell.KeyDown:
		hk = heldKey{ports.Down, ports.NoDown}
	case tcell.KeyLeft:
		hk = heldKey{ports.Left, ports.NoLeft}
	case tcell.KeyRight:
		hk = heldKey{ports.Right, ports.NoRight}
	case tcell.KeyF1:
		hk = heldKey{ports.PanelSelect, ports.PanelNoSelect}
	case tcell.KeyF2:
		hk = heldKey{ports.PanelReset, ports.PanelNoReset}
	case tcell.KeyF3:
		if gtv.handler == nil {
			return nil
		}
		return gtv.handler(0, ports.PanelToggleColor)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w':
			hk = heldKey{ports.Up, ports.NoUp}
		case 's':
			hk = heldKey{ports.Down, ports.NoDown}
		case 'a':
			hk = heldKey{ports.Left, ports.NoLeft}
		case 'd':
			hk = heldKey{ports.Right, ports.NoRight}
		case ' ':
			hk = heldKey{ports.Fire, ports.NoFire}
		default:
			return nil
		}
	default:
		return nil
	}

	if _, held := gtv.held[hk]; !held && gtv.handler != nil {
		if err := gtv.handler(0, hk.press); err != nil {
			return err
		}
	}
	gtv.held[hk] = now

	return nil
}
