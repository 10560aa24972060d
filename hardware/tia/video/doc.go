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

// Package video implements the video sub-system of the TIA. The TIA has no
// framebuffer and no notion of horizontal position; each video element is a
// small serial circuit that is clocked along with the rest of the chip and
// decides, on every color clock, whether it is outputting a pixel.
//
// Sprite positioning is therefore nothing like the x/y coordinates of later
// systems. A sprite's position counter free-runs with a period of one
// scanline; the RESxx strobes reset the counter, so a sprite is "positioned"
// by racing the beam and strobing the register at the right moment. Fine
// positioning is done with the HMxx registers and the HMOVE strobe, which
// feed extra clocks into the position counters during horizontal blank.
//
// The Pixel() function resolves the elements' outputs into a single color
// according to the priority ordering of the chip, and records any collisions
// between elements in the collision latches.
package video
