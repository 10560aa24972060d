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

// Package terminal is a frontend that renders the television frame inside
// the terminal, for machines without SDL or a display server. Each
// character cell carries two scanlines through the half-block rune, with
// the cell's foreground and background colors carrying the pixel colors.
//
// Terminals report key presses but not releases, so the joystick is
// released when its key stops auto-repeating. Play is consequently a
// little stiffer than under the sdl frontend.
package terminal
