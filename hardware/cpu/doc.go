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

// Package cpu emulates the 6507 microprocessor. The CPU works at the
// granularity of whole instructions but maintains cycle accuracy through the
// cycleCallback argument to ExecuteInstruction(): the callback runs after
// every CPU cycle, including the phantom reads and writes that leak onto the
// address bus, and the rest of the console runs inside it.
//
// The 6507 is a 6502 with a cut-down address bus and no interrupt lines. The
// interrupt instructions (BRK, RTI) are implemented all the same; a cartridge
// is free to use them even though nothing external can trigger an interrupt.
//
// The RdyFlg field mirrors pin 3 of the package. When the TIA pulls it low
// (a WSYNC request) ExecuteInstruction() ticks the rest of the console but
// leaves the CPU state untouched.
package cpu
