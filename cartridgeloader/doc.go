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

// Package cartridgeloader is the gateway through which ROM files enter the
// emulation. A Loader value couples the filename with the cartridge mapping
// and, once loaded, the file contents and their hash. Keeping the file
// handling here means the memory package deals only with bytes.
package cartridgeloader
