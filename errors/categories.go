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

// list of error numbers for the whole emulation. a message for every Errno is
// defined in messages.go
const (
	// sentinal
	FatalError Errno = iota

	// general
	VCSError

	// CPU
	UnimplementedInstruction
	KilledInstruction
	InvalidOperationMidInstruction
	ProgramCounterCycled

	// memory
	UnservicedChipWrite
	UnreadableAddress
	UnwritableAddress
	UnrecognisedAddress

	// cartridges
	CartridgeFileError
	CartridgeInvalidSize
	CartridgeUnsupported
	CartridgeEjected

	// peripherals
	UnknownPeriphEvent

	// television
	OutOfSpec
	UnknownTelevisionRequest

	// frontends
	SDL
	TerminalRenderer

	// debugger
	DebuggerError
	TerminalError

	// performance
	PerformanceError
)
