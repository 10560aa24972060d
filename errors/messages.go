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

package errors

var messages = map[Errno]string{
	// sentinal
	FatalError: "fatal: %v",

	// general
	VCSError: "console: %v",

	// CPU
	UnimplementedInstruction:       "unimplemented instruction (%#02x) at (%#04x)",
	KilledInstruction:              "KIL instruction (%#02x) at (%#04x)",
	InvalidOperationMidInstruction: "invalid operation mid-instruction (%s)",
	ProgramCounterCycled:           "program counter cycled back to 0x0000",

	// memory
	UnservicedChipWrite: "chip write signal has not been serviced since previous write (%s)",
	UnreadableAddress:   "memory location is not readable (%#04x)",
	UnwritableAddress:   "memory location is not writable (%#04x)",
	UnrecognisedAddress: "address decode anomaly (%#04x)",

	// cartridges
	CartridgeFileError:   "error reading cartridge file (%v)",
	CartridgeInvalidSize: "cartridge size is not recognised (%d bytes)",
	CartridgeUnsupported: "cartridge mapping is not supported (%s)",
	CartridgeEjected:     "no cartridge attached",

	// peripherals
	UnknownPeriphEvent: "peripheral cannot handle event (%v)",

	// television
	OutOfSpec:                "television signal is out of spec (%s)",
	UnknownTelevisionRequest: "television does not support %v request",

	// frontends
	SDL:              "sdl: %v",
	TerminalRenderer: "terminal renderer: %v",

	// debugger
	DebuggerError: "debugger: %v",
	TerminalError: "debugger terminal: %v",

	// performance
	PerformanceError: "performance: %v",
}
