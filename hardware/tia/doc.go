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

// Package tia implements the custom video chip of the VCS. The TIA is
// clocked at color clock frequency, three times faster than the CPU, and is
// stepped three times for every CPU cycle.
//
// The TIA knows nothing about frames or even scanlines; it generates a
// composite video signal one color clock at a time and the television at the
// other end of the cable makes what sense of it it can. The only vertical
// structure comes from the VSYNC and VBLANK registers, which the program is
// responsible for strobing at the right time.
//
// Horizontally, the chip counts 228 color clocks per scanline with its hsync
// counter: 68 clocks of horizontal blank followed by 160 clocks of visible
// pixels. The WSYNC register ties the CPU's RDY pin to this counter, letting
// the program sleep until the start of the next scanline; the return value
// of Step() carries the pin state.
package tia
