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

// Package logger is used for the recording of non-fatal oddities during
// emulation. The hardware packages use it for events that a real console
// would shrug off but that are interesting during development: unserviced
// chip writes, out-of-spec television signals, writes to the unimplemented
// audio registers, and so on.
//
// Entries are accumulated in a central log and written out on demand with
// Write() or Tail(). The SetEcho() function directs new entries to an
// io.Writer as they arrive, which is useful for command line modes.
//
// Adjacent duplicate entries are collapsed into a single entry with a repeat
// count. Emulation loops produce the same log entry many thousands of times
// per second and the log would be useless without this.
package logger
