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

package video

// Colors stores the four color registers of the TIA. The registers are
// shared: COLUP0 colors both player 0 and missile 0, COLUPF colors both the
// playfield and the ball. The values are the raw register values; bit 0 is
// not connected in the hardware and is masked on write.
type Colors struct {
	COLUP0 uint8
	COLUP1 uint8
	COLUPF uint8
	COLUBK uint8
}
