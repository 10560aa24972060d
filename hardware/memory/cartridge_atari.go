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
	"fmt"

	"github.com/ltriant/atari2600/errors"
)

// the standard Atari cartridge formats. from bankswitch_sizes.txt:
//
// 2K:
//
// - These carts are not bankswitched, however the data repeats twice in the
// 4K address space.
//
// 4K:
//
// - These images are not bankswitched.
//
// 8K:
//
// - F8: This is the 'standard' method to implement 8K carts. There are two
// addresses which select between two unique 4K sections. They are 1FF8 and
// 1FF9. Any access to either one of these locations switches banks.
//
// 16K:
//
// - F6: The 'standard' method for implementing 16K of data. It is identical
// to the F8 method above, except there are 4 4K banks, selected by accessing
// 1FF6, 1FF7, 1FF8 and 1FF9.
//
// 32K:
//
// - F4: The 'standard' method for implementing 32K. Like the F6 method,
// however there are 8 4K banks, selected through 1FF4 to 1FFB.

// atari is the base for all the standard Atari formats.
type atari struct {
	method string

	// the bank switching addresses, in ascending bank order. empty for the
	// unswitched formats
	hotspots []uint16

	// atari formats apart from 2k and 4k are divided into banks. 2k and 4k
	// ROMs conceptually have one bank
	banks [][]uint8

	// identifies the currently selected bank
	bank int
}

func (cart atari) String() string {
	if len(cart.banks) == 1 {
		return cart.method
	}
	return fmt.Sprintf("%s bank: %d", cart.method, cart.bank)
}

func (cart *atari) initialise() {
	// the last bank is the one in place at power-on. all the standard
	// formats keep their reset vector in the last bank so this works
	// whichever bank the program expects
	cart.bank = len(cart.banks) - 1
}

func (cart *atari) numBanks() int {
	return len(cart.banks)
}

func (cart *atari) getBank() int {
	return cart.bank
}

// bankswitch checks the address against the format's hot-spots. Returns true
// if the access selected a new bank.
func (cart *atari) bankswitch(addr uint16) bool {
	for b, hotspot := range cart.hotspots {
		if addr == hotspot {
			cart.bank = b
			return true
		}
	}
	return false
}

func (cart *atari) read(addr uint16) (uint8, error) {
	cart.bankswitch(addr)
	return cart.banks[cart.bank][addr], nil
}

func (cart *atari) write(addr uint16, data uint8) error {
	// the write itself goes nowhere; there is no write line to the
	// cartridge. the address still appears on the bus though, so the
	// hot-spots fire as normal
	cart.bankswitch(addr)
	return nil
}

// splitBanks cuts the data into 4k banks.
func (cart *atari) splitBanks(data []uint8) {
	const bankSize = 4096

	cart.banks = make([][]uint8, len(data)/bankSize)
	for k := range cart.banks {
		cart.banks[k] = data[k*bankSize : (k+1)*bankSize]
	}
}

// atari2k is the unbankswitched 2k format. The data repeats in both halves
// of the 4k address space.
type atari2k struct {
	atari
}

func newAtari2k(data []uint8) (*atari2k, error) {
	if len(data) != 2048 {
		return nil, errors.NewFormattedError(errors.CartridgeInvalidSize, len(data))
	}

	cart := &atari2k{}
	cart.method = "atari 2k"

	doubled := make([]uint8, 4096)
	copy(doubled, data)
	copy(doubled[2048:], data)
	cart.splitBanks(doubled)

	return cart, nil
}

// atari4k is the unbankswitched 4k format.
type atari4k struct {
	atari
}

func newAtari4k(data []uint8) (*atari4k, error) {
	if len(data) != 4096 {
		return nil, errors.NewFormattedError(errors.CartridgeInvalidSize, len(data))
	}

	cart := &atari4k{}
	cart.method = "atari 4k"
	cart.splitBanks(data)

	return cart, nil
}

// atari8k is the F8 format.
type atari8k struct {
	atari
}

func newAtari8k(data []uint8) (*atari8k, error) {
	if len(data) != 8192 {
		return nil, errors.NewFormattedError(errors.CartridgeInvalidSize, len(data))
	}

	cart := &atari8k{}
	cart.method = "atari 8k (F8)"
	cart.hotspots = []uint16{0x0ff8, 0x0ff9}
	cart.splitBanks(data)

	return cart, nil
}

// atari16k is the F6 format.
type atari16k struct {
	atari
}

func newAtari16k(data []uint8) (*atari16k, error) {
	if len(data) != 16384 {
		return nil, errors.NewFormattedError(errors.CartridgeInvalidSize, len(data))
	}

	cart := &atari16k{}
	cart.method = "atari 16k (F6)"
	cart.hotspots = []uint16{0x0ff6, 0x0ff7, 0x0ff8, 0x0ff9}
	cart.splitBanks(data)

	return cart, nil
}

// atari32k is the F4 format.
type atari32k struct {
	atari
}

func newAtari32k(data []uint8) (*atari32k, error) {
	if len(data) != 32768 {
		return nil, errors.NewFormattedError(errors.CartridgeInvalidSize, len(data))
	}

	cart := &atari32k{}
	cart.method = "atari 32k (F4)"
	cart.hotspots = []uint16{0x0ff4, 0x0ff5, 0x0ff6, 0x0ff7, 0x0ff8, 0x0ff9, 0x0ffa, 0x0ffb}
	cart.splitBanks(data)

	return cart, nil
}
