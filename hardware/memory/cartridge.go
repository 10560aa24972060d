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

package memory

import (
	"strings"

	"github.com/ltriant/atari2600/errors"
	"github.com/ltriant/atari2600/hardware/memory/memorymap"
)

// cartMapper is implemented by the different cartridge formats. Addresses
// passed to read() and write() have been reduced to the cartridge bits; the
// mapper never sees a mirror.
type cartMapper interface {
	String() string

	read(addr uint16) (uint8, error)
	write(addr uint16, data uint8) error

	numBanks() int
	getBank() int
	initialise()
}

// Cartridge defines the information and operations for a VCS cartridge.
type Cartridge struct {
	origin uint16
	memtop uint16

	mapper cartMapper
}

// newCartridge is the preferred method of initialisation for the cartridge
// memory area. The area is created with no cartridge attached.
func newCartridge() *Cartridge {
	cart := &Cartridge{
		origin: memorymap.OriginCart,
		memtop: memorymap.MemtopCart,
	}
	cart.Eject()
	return cart
}

func (cart Cartridge) String() string {
	return cart.mapper.String()
}

// Eject removes memory from cartridge space, imitating a console without a
// cartridge plugged in.
func (cart *Cartridge) Eject() {
	cart.mapper = newEjected()
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	_, ok := cart.mapper.(*ejected)
	return ok
}

// Attach loads cartridge data into the area, selecting the format
// implementation from the mapping argument. A mapping of "AUTO" selects by
// file size, which is correct for almost every ROM in circulation.
func (cart *Cartridge) Attach(mapping string, data []uint8) error {
	var err error

	switch strings.ToUpper(mapping) {
	case "AUTO":
		err = cart.fingerprint(data)
	case "2K":
		cart.mapper, err = newAtari2k(data)
	case "4K":
		cart.mapper, err = newAtari4k(data)
	case "F8":
		cart.mapper, err = newAtari8k(data)
	case "F6":
		cart.mapper, err = newAtari16k(data)
	case "F4":
		cart.mapper, err = newAtari32k(data)
	default:
		err = errors.NewFormattedError(errors.CartridgeUnsupported, mapping)
	}

	if err != nil {
		cart.Eject()
		return err
	}

	cart.mapper.initialise()

	return nil
}

// fingerprint selects the mapper implied by the size of the data.
func (cart *Cartridge) fingerprint(data []uint8) error {
	var err error

	switch len(data) {
	case 2048:
		cart.mapper, err = newAtari2k(data)
	case 4096:
		cart.mapper, err = newAtari4k(data)
	case 8192:
		cart.mapper, err = newAtari8k(data)
	case 16384:
		cart.mapper, err = newAtari16k(data)
	case 32768:
		cart.mapper, err = newAtari32k(data)
	default:
		err = errors.NewFormattedError(errors.CartridgeInvalidSize, len(data))
	}

	return err
}

// Initialise returns the cartridge to its power-on state. Attached data is
// unaffected.
func (cart *Cartridge) Initialise() {
	cart.mapper.initialise()
}

// NumBanks returns the number of 4k banks in the attached cartridge.
func (cart Cartridge) NumBanks() int {
	return cart.mapper.numBanks()
}

// GetBank returns the currently selected bank.
func (cart Cartridge) GetBank() int {
	return cart.mapper.getBank()
}

// Read is an implementation of bus.CPUBus. The address must be normalised.
func (cart *Cartridge) Read(address uint16) (uint8, error) {
	return cart.mapper.read(address & memorymap.CartridgeBits)
}

// Write is an implementation of bus.CPUBus. The address must be normalised.
//
// ROM is not writable but the access is still visible to the cartridge; the
// bank switching formats all watch for addresses of this kind.
func (cart *Cartridge) Write(address uint16, data uint8) error {
	return cart.mapper.write(address&memorymap.CartridgeBits, data)
}

// Peek is an implementation of bus.DebugBus.
func (cart *Cartridge) Peek(address uint16) (uint8, error) {
	return cart.mapper.read(address & memorymap.CartridgeBits)
}

// Poke is an implementation of bus.DebugBus. Cartridges are ROM.
func (cart *Cartridge) Poke(address uint16, data uint8) error {
	return errors.NewFormattedError(errors.UnwritableAddress, address)
}

// ejected is the mapper when there is no cartridge in the console.
type ejected struct{}

func newEjected() *ejected {
	return &ejected{}
}

func (cart ejected) String() string {
	return "ejected"
}

func (cart *ejected) read(addr uint16) (uint8, error) {
	return 0, errors.NewFormattedError(errors.CartridgeEjected)
}

func (cart *ejected) write(addr uint16, data uint8) error {
	return errors.NewFormattedError(errors.CartridgeEjected)
}

func (cart *ejected) numBanks() int {
	return 0
}

func (cart *ejected) getBank() int {
	return 0
}

func (cart *ejected) initialise() {
}
