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

package cartridgeloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ltriant/atari2600/cartridgeloader"
	"github.com/stretchr/testify/require"
)

func TestMappingFromExtension(t *testing.T) {
	ld := cartridgeloader.NewLoader("roms/pitfall.bin", "")
	require.Equal(t, "AUTO", ld.Mapping)

	ld = cartridgeloader.NewLoader("roms/pitfall.a26", "AUTO")
	require.Equal(t, "AUTO", ld.Mapping)

	ld = cartridgeloader.NewLoader("roms/smurf.f8", "")
	require.Equal(t, "F8", ld.Mapping)

	// an explicit mapping wins over the extension
	ld = cartridgeloader.NewLoader("roms/smurf.f8", "4k")
	require.Equal(t, "4K", ld.Mapping)
}

func TestLoad(t *testing.T) {
	rom := make([]byte, 4096)
	for i := range rom {
		rom[i] = byte(i)
	}

	fn := filepath.Join(t.TempDir(), "test.bin")
	require.NoError(t, os.WriteFile(fn, rom, 0644))

	ld := cartridgeloader.NewLoader(fn, "")
	require.NoError(t, ld.Load())
	require.Equal(t, rom, ld.Data)
	require.NotEmpty(t, ld.Hash)
	require.Equal(t, "test", ld.ShortName())

	// a second load is serviced from the copy already in memory
	require.NoError(t, os.Remove(fn))
	require.NoError(t, ld.Load())
}

func TestHashValidation(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.bin")
	require.NoError(t, os.WriteFile(fn, make([]byte, 2048), 0644))

	ld := cartridgeloader.NewLoader(fn, "")
	ld.Hash = "0000000000000000000000000000000000000000"
	require.Error(t, ld.Load())
}
