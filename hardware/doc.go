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

// Package hardware assembles the components of the console: the 6507 CPU,
// the TIA, the RIOT and the memory that binds them, along with an attached
// television.
//
// The VCS type is also the conductor of the emulation's clocks. The CPU is
// the slowest component; for every one of its cycles the TIA receives three
// color clocks and the RIOT one tick. Rather than run each component in its
// own goroutine and synchronise endlessly, the CPU is given a callback
// function that it calls after every cycle of every instruction. The
// callback steps the rest of the console, meaning the whole machine advances
// in lockstep with the component at the top of the hierarchy.
//
// The memory system mediates between the chips. The CPU addresses the TIA
// and RIOT registers through the memory map while the chips themselves see
// their registers directly. A write to a chip register leaves a note in the
// chip memory, which the chip picks up and services on its next cycle.
package hardware
