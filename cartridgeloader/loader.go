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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ltriant/atari2600/errors"
)

// FileExtensions is the list of file extensions recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".BIN", ".ROM", ".A26", ".2K", ".4K", ".F8", ".F6", ".F4"}

// Loader specifies the cartridge to attach to the console. It also permits
// the caller to specify the mapping of the cartridge, although the automatic
// fingerprinting is good enough for almost every ROM in circulation.
type Loader struct {
	// filename of the cartridge to load
	Filename string

	// "AUTO" indicates automatic fingerprinting by the cartridge itself
	Mapping string

	// expected sha1 hash of the loaded cartridge. the empty string
	// indicates that the hash is unknown and need not be validated. after a
	// load operation the field holds the hash of the loaded data
	Hash string

	// copy of the file contents after a call to Load()
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The mapping argument is used to set the Mapping field, unless it is
// "AUTO" or the empty string, in which case the file extension is used. The
// extensions ".BIN", ".ROM" and ".A26" leave the mapping on automatic
// fingerprinting; extensions like ".F8" name the mapper directly.
func NewLoader(filename string, mapping string) Loader {
	ld := Loader{
		Filename: filename,
		Mapping:  "AUTO",
	}

	mapping = strings.TrimSpace(strings.ToUpper(mapping))
	if mapping != "" && mapping != "AUTO" {
		ld.Mapping = mapping
		return ld
	}

	switch strings.ToUpper(filepath.Ext(filename)) {
	case ".BIN", ".ROM", ".A26", "":
		ld.Mapping = "AUTO"
	case ".2K":
		ld.Mapping = "2K"
	case ".4K":
		ld.Mapping = "4K"
	case ".F8":
		ld.Mapping = "F8"
	case ".F6":
		ld.Mapping = "F6"
	case ".F4":
		ld.Mapping = "F4"
	default:
		ld.Mapping = "AUTO"
	}

	return ld
}

// Load the cartridge data from the file system. The data is kept in the Data
// field, meaning later calls are serviced without touching the disk again.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	data, err := os.ReadFile(ld.Filename)
	if err != nil {
		return errors.NewFormattedError(errors.CartridgeFileError, err)
	}
	ld.Data = data

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		return errors.NewFormattedError(errors.CartridgeFileError,
			fmt.Sprintf("%s: hash mismatch", ld.Filename))
	}
	ld.Hash = hash

	return nil
}

// ShortName returns a shortened version of the cartridge filename, suitable
// for window titles and log messages.
func (ld Loader) ShortName() string {
	shortCartName := filepath.Base(ld.Filename)
	return strings.TrimSuffix(shortCartName, filepath.Ext(ld.Filename))
}
