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

package performance_test

import (
	"testing"

	"github.com/ltriant/atari2600/performance"
	"github.com/ltriant/atari2600/television"
)

func TestCalcFPS(t *testing.T) {
	tv, err := television.NewTelevision("NTSC")
	if err != nil {
		t.Fatal(err)
	}

	// two seconds of perfect NTSC
	fps, accuracy := performance.CalcFPS(tv, 120, 2.0)
	if fps != 60.0 {
		t.Errorf("fps: %f", fps)
	}
	if accuracy != 100.0 {
		t.Errorf("accuracy: %f", accuracy)
	}

	// half speed
	fps, accuracy = performance.CalcFPS(tv, 60, 2.0)
	if fps != 30.0 {
		t.Errorf("fps: %f", fps)
	}
	if accuracy != 50.0 {
		t.Errorf("accuracy: %f", accuracy)
	}
}
