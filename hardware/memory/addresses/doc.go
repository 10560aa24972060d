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

// Package addresses names the individual addresses of the VCS.
//
// The ReadSymbols and WriteSymbols tables give the canonical names of the
// chip registers, as they appear in the Stella Programmer's Guide. The same
// address frequently has a different meaning depending on the direction of
// the access, which is why there are two tables.
//
// The ChipRegister enumerations are used on the other side of the chip
// memory areas; when the TIA or RIOT needs to place a value where the CPU
// can read it.
package addresses
