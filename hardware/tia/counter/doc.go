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

// Package counter implements the polynomial counter circuit that the TIA
// uses for both the hsync generator and the five sprites. The counter is
// clocked at color clock frequency but counts at one quarter of that; the
// decode circuits attached to the counter look at the divided value.
//
// The counter is also the entry point for the HMOVE mechanism. A horizontal
// move works by feeding extra clocks into a sprite's counter while the rest
// of the TIA is in horizontal blank; the sprite is never really "moved", it
// just starts its scan early or late relative to the previous scanline.
package counter
