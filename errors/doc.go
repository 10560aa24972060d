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

// Package errors is a curated collection of error messages for the emulation.
// Errors are created with a reference to a predefined Errno rather than a
// free-form string:
//
//	errors.NewFormattedError(errors.CartridgeInvalidSize, numBytes)
//
// Callers that need to react to a specific condition can test for it with the
// Is() and Has() functions, rather than comparing message strings.
//
// The emulation is a closed deterministic simulation so most errors are of
// the "refuse at load" or "programming defect" kind. In particular the memory
// errors indicate a fault in the address decode logic and are fatal; there is
// no safe way to resume a cycle-exact system mid-frame.
package errors
