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

// Package ports implements the IO part of the 6532: the two eight-bit
// ports exposed through the SWCHA and SWCHB registers. On the VCS, port A
// carries the joystick directions and port B the console panel switches
// (game select, game reset, the color/b&w switch and the two difficulty
// switches).
//
// The fire buttons are not wired to the 6532 at all but to the INPT4 and
// INPT5 pins of the TIA; the Ports type forwards fire events there through
// the InputWriter interface.
package ports
