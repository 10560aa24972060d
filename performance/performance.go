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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/ltriant/atari2600/cartridgeloader"
	"github.com/ltriant/atari2600/errors"
	"github.com/ltriant/atari2600/gui/sdl"
	"github.com/ltriant/atari2600/hardware"
	"github.com/ltriant/atari2600/television"
)

// leadTime is how long the emulation runs before measurement begins. it
// gives the framerate a chance to settle down
const leadTime = 2 * time.Second

// Check is a rough and ready measurement of the emulator's performance. The
// supplied cartridge is run for the given duration and the achieved
// framerate is written to output, along with how it compares to the
// television specification.
//
// With display set, the frames are pushed to an SDL window while the
// measurement runs. Note that the display's frame limiter will then cap the
// measured rate at the specification's ideal.
func Check(output io.Writer, profile bool, cartload cartridgeloader.Loader, display bool, scale float32, runTime string) error {
	tv, err := television.NewTelevision("NTSC")
	if err != nil {
		return errors.NewFormattedError(errors.PerformanceError, err)
	}
	defer tv.End()

	if display {
		_, err = sdl.NewGUI(tv, scale)
		if err != nil {
			return errors.NewFormattedError(errors.PerformanceError, err)
		}
	}

	vcs, err := hardware.NewVCS(tv)
	if err != nil {
		return errors.NewFormattedError(errors.PerformanceError, err)
	}

	err = vcs.AttachCartridge(cartload)
	if err != nil {
		return errors.NewFormattedError(errors.PerformanceError, err)
	}

	duration, err := time.ParseDuration(runTime)
	if err != nil {
		return errors.NewFormattedError(errors.PerformanceError, err)
	}

	startFrame, err := tv.GetState(television.ReqFramenum)
	if err != nil {
		return errors.NewFormattedError(errors.PerformanceError, err)
	}

	err = cpuProfile(profile, "cpu.profile", func() error {
		// timesUp receives once the measurement period is over
		timesUp := make(chan bool)

		// restart the clock, and re-read the start frame, once the leadtime
		// has elapsed
		time.AfterFunc(leadTime, func() {
			startFrame, _ = tv.GetState(television.ReqFramenum)
			time.AfterFunc(duration, func() {
				timesUp <- true
			})
		})

		return vcs.Run(func() (bool, error) {
			select {
			case v := <-timesUp:
				return !v, nil
			default:
				return true, nil
			}
		})
	})
	if err != nil {
		return errors.NewFormattedError(errors.PerformanceError, err)
	}

	endFrame, err := tv.GetState(television.ReqFramenum)
	if err != nil {
		return errors.NewFormattedError(errors.PerformanceError, err)
	}

	numFrames := endFrame - startFrame
	fps, accuracy := CalcFPS(tv, numFrames, duration.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, duration.Seconds(), accuracy)

	return memProfile(profile, "mem.profile")
}
