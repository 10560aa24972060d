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

// Package riot represents the RIOT, the 6532 chip of the VCS. The name
// stands for RAM, IO, Timer; the RAM part lives with the rest of the memory
// system so this package is concerned with the interval timer and the IO
// ports. Unlike the TIA the RIOT is clocked at the same rate as the CPU.
package riot
