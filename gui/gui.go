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

// Package gui defines the contract between the emulation and a display
// frontend. A frontend attaches itself to the television as a Renderer to
// receive pixels; input travels the other way, from the frontend to the
// console ports, through the EventHandler registered with the frontend.
package gui

import (
	"github.com/ltriant/atari2600/hardware/riot/ports"
)

// EventHandler receives the input events decoded by a frontend. The usual
// implementation forwards them to the HandleEvent() function of the console
// ports.
type EventHandler func(player int, event ports.Event) error

// GUI is implemented by the display frontends.
type GUI interface {
	// SetEventHandler registers the function that receives decoded input
	// events. without a handler the frontend discards input, except for the
	// quit request
	SetEventHandler(EventHandler)

	// IsRunning returns false once the user has asked to close the
	// frontend. suitable for use as the continueCheck of hardware.Run()
	IsRunning() bool
}
