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

// Package memorymap understands the address space of the VCS as the 6507
// sees it.
//
// The console decodes addresses with a minimal amount of logic, so every
// memory area appears many times over in the address space. The MapAddress()
// function normalises any address to the primary address of the area it
// falls in. For example, the TIA chip is most naturally addressed at the
// bottom of memory:
//
//	ma, area := memorymap.MapAddress(0x6105, false)
//
// The mapped address, ma, will be 0x05 and the area will be memorymap.TIA.
//
// Reads and writes map differently for the chip areas. A read of address
// 0x02 is a read of collision register CXP0FB whereas a write to the same
// address strobes WSYNC. MapAddress() is therefore told which of the two is
// intended.
package memorymap
