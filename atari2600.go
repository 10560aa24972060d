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

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/ltriant/atari2600/cartridgeloader"
	"github.com/ltriant/atari2600/debugger"
	"github.com/ltriant/atari2600/debugger/rawterm"
	"github.com/ltriant/atari2600/gui"
	"github.com/ltriant/atari2600/gui/sdl"
	"github.com/ltriant/atari2600/gui/terminal"
	"github.com/ltriant/atari2600/hardware"
	"github.com/ltriant/atari2600/logger"
	"github.com/ltriant/atari2600/performance"
	"github.com/ltriant/atari2600/statsview"
	"github.com/ltriant/atari2600/television"
)

func main() {
	app := cli.NewApp()
	app.Name = "atari2600"
	app.Usage = "an emulator for the Atari 2600"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "log",
			Usage: "echo log entries to stderr as they happen",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "run a cartridge",
			ArgsUsage: "<cartridge file>",
			Flags: append(cartridgeFlags(),
				cli.StringFlag{
					Name:  "display",
					Value: "sdl",
					Usage: "display frontend to use (sdl or terminal)",
				},
				cli.Float64Flag{
					Name:  "scale",
					Value: 3.0,
					Usage: "scaling of the SDL window",
				},
			),
			Action: play,
		},
		{
			Name:      "debug",
			Usage:     "run a cartridge under the line debugger",
			ArgsUsage: "<cartridge file>",
			Flags:     cartridgeFlags(),
			Action:    debug,
		},
		{
			Name:      "performance",
			Usage:     "measure the framerate the emulation achieves",
			ArgsUsage: "<cartridge file>",
			Flags: append(cartridgeFlags(),
				cli.StringFlag{
					Name:  "duration",
					Value: "5s",
					Usage: "how long to measure for",
				},
				cli.BoolFlag{
					Name:  "profile",
					Usage: "write cpu.profile and mem.profile files",
				},
				cli.BoolFlag{
					Name:  "display",
					Usage: "display the frames as they are measured",
				},
				cli.Float64Flag{
					Name:  "scale",
					Value: 3.0,
					Usage: "scaling of the SDL window",
				},
			),
			Action: perform,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(1)
	}
}

// flags common to every command that takes a cartridge file.
func cartridgeFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "mapping",
			Value: "AUTO",
			Usage: "force the cartridge mapping (2K, 4K, F8, F6, F4)",
		},
	}
}

// loader builds the cartridge loader from the command line, taking the
// cartridge file from the first argument.
func loader(c *cli.Context) (cartridgeloader.Loader, error) {
	if c.NArg() != 1 {
		return cartridgeloader.Loader{}, fmt.Errorf("no cartridge file specified")
	}
	if c.GlobalBool("log") {
		logger.SetEcho(os.Stderr)
	}
	return cartridgeloader.NewLoader(c.Args().Get(0), c.String("mapping")), nil
}

func play(c *cli.Context) error {
	cartload, err := loader(c)
	if err != nil {
		return err
	}

	tv, err := television.NewTelevision("NTSC")
	if err != nil {
		return err
	}
	defer tv.End()

	var scr gui.GUI

	switch c.String("display") {
	case "sdl":
		scr, err = sdl.NewGUI(tv, float32(c.Float64("scale")))
	case "terminal":
		scr, err = terminal.NewGUI(tv)
	default:
		err = fmt.Errorf("unknown display type (%s)", c.String("display"))
	}
	if err != nil {
		return err
	}

	vcs, err := hardware.NewVCS(tv)
	if err != nil {
		return err
	}

	scr.SetEventHandler(vcs.RIOT.Ports.HandleEvent)

	err = vcs.AttachCartridge(cartload)
	if err != nil {
		return err
	}

	return vcs.Run(func() (bool, error) {
		return scr.IsRunning(), nil
	})
}

func debug(c *cli.Context) error {
	cartload, err := loader(c)
	if err != nil {
		return err
	}

	tv, err := television.NewTelevision("NTSC")
	if err != nil {
		return err
	}
	defer tv.End()

	vcs, err := hardware.NewVCS(tv)
	if err != nil {
		return err
	}

	err = vcs.AttachCartridge(cartload)
	if err != nil {
		return err
	}

	term, err := rawterm.NewRawTerminal()
	if err != nil {
		return err
	}
	defer term.CleanUp()

	return debugger.NewDebugger(vcs, tv, term).Start()
}

func perform(c *cli.Context) error {
	cartload, err := loader(c)
	if err != nil {
		return err
	}

	if statsview.Available() {
		statsview.Launch(os.Stdout)
	}

	return performance.Check(os.Stdout, c.Bool("profile"), cartload,
		c.Bool("display"), float32(c.Float64("scale")), c.String("duration"))
}
