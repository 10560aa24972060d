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

// Package timer implements the interval timer of the 6532. The timer is the
// console's only general purpose time-keeping device and VCS programs lean
// on it heavily, most commonly to count out the vertical blank and overscan
// periods without having to chain WSYNCs.
//
// Writing to one of the four timer registers loads the timer value and
// selects how many CPU cycles pass between decrements. When the value
// decrements below zero the TIMINT flags are raised and the timer free-runs
// at one decrement per cycle, so a program that reads INTIM late can tell
// how late it was.
package timer
