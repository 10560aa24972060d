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

// Package sdl is the SDL2 frontend: a window showing the visible portion of
// the television frame, updated once per frame and throttled to the frame
// rate of the television specification. Keyboard input is decoded into port
// events for the console.
//
// Everything runs on the goroutine that calls into the emulation; the SDL
// event queue is serviced from the NewFrame() callback.
package sdl
