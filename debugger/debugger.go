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

package debugger

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ltriant/atari2600/errors"
	"github.com/ltriant/atari2600/hardware"
	"github.com/ltriant/atari2600/television"
)

// Debugger is a terminal front-end for stepping through a program running
// on the emulated console.
type Debugger struct {
	vcs *hardware.VCS
	tv  television.Television

	term Terminal

	// addresses the RUN command will stop at
	breakpoints map[uint16]bool

	// the empty command repeats the previous one, which makes single
	// stepping pleasant
	lastCommand string

	running bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(vcs *hardware.VCS, tv television.Television, term Terminal) *Debugger {
	return &Debugger{
		vcs:         vcs,
		tv:          tv,
		term:        term,
		breakpoints: make(map[uint16]bool),
	}
}

// Start the debugging loop. Returns when the user quits or when the
// terminal input is exhausted.
func (dbg *Debugger) Start() error {
	dbg.running = true
	dbg.term.UserPrint("atari2600 debugger. HELP for the command list\n")

	input := make([]byte, 255)

	for dbg.running {
		prompt := dbg.prompt()

		n, err := dbg.term.UserRead(input, prompt)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.NewFormattedError(errors.DebuggerError, err)
		}

		command := strings.TrimSpace(string(input[:n]))
		if command == "" {
			command = dbg.lastCommand
		}

		if err := dbg.parseCommand(command); err != nil {
			dbg.term.UserPrint("* %v\n", err)
		}

		dbg.lastCommand = command
	}

	return nil
}

// prompt summarises where the emulation is.
func (dbg *Debugger) prompt() string {
	fr, _ := dbg.tv.GetState(television.ReqFramenum)
	sl, _ := dbg.tv.GetState(television.ReqScanline)
	return fmt.Sprintf("[fr=%d sl=%d] %s > ", fr, sl, dbg.vcs.CPU.PC)
}

func (dbg *Debugger) parseCommand(command string) error {
	fields := strings.Fields(strings.ToUpper(command))
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "HELP", "H":
		dbg.term.UserPrint("STEP (S)       step one CPU instruction\n")
		dbg.term.UserPrint("FRAME (F)      run to the end of the current frame\n")
		dbg.term.UserPrint("REGISTERS (R)  show the CPU state\n")
		dbg.term.UserPrint("PEEK <addr>    show the contents of a memory address\n")
		dbg.term.UserPrint("BREAK <addr>   break on the PC reaching an address\n")
		dbg.term.UserPrint("CLEAR          forget all breakpoints\n")
		dbg.term.UserPrint("RUN (C)        run until a breakpoint\n")
		dbg.term.UserPrint("QUIT (Q)       leave the debugger\n")

	case "STEP", "S":
		if err := dbg.vcs.Step(); err != nil {
			return err
		}
		dbg.term.UserPrint("%s\n", dbg.vcs.CPU.LastResult)

	case "FRAME", "F":
		if err := dbg.vcs.RunForFrameCount(1); err != nil {
			return err
		}
		dbg.term.UserPrint("%s\n", dbg.vcs.TIA.MachineInfoTerse())

	case "REGISTERS", "R":
		dbg.term.UserPrint("%s\n", dbg.vcs.CPU.MachineInfo())
		dbg.term.UserPrint("%s\n", dbg.vcs.TIA.MachineInfoTerse())
		dbg.term.UserPrint("%s\n", dbg.vcs.RIOT.MachineInfoTerse())

	case "PEEK":
		if len(fields) != 2 {
			return errors.NewFormattedError(errors.DebuggerError, "PEEK requires an address")
		}
		address, err := parseAddress(fields[1])
		if err != nil {
			return err
		}
		v, err := dbg.vcs.Mem.Peek(address)
		if err != nil {
			return err
		}
		dbg.term.UserPrint("%#04x = %#02x\n", address, v)

	case "BREAK", "B":
		if len(fields) != 2 {
			return errors.NewFormattedError(errors.DebuggerError, "BREAK requires an address")
		}
		address, err := parseAddress(fields[1])
		if err != nil {
			return err
		}
		dbg.breakpoints[address] = true
		dbg.term.UserPrint("breakpoint at %#04x\n", address)

	case "CLEAR":
		dbg.breakpoints = make(map[uint16]bool)

	case "RUN", "C":
		if len(dbg.breakpoints) == 0 {
			return errors.NewFormattedError(errors.DebuggerError, "RUN requires at least one breakpoint")
		}
		for {
			if err := dbg.vcs.Step(); err != nil {
				return err
			}
			if dbg.breakpoints[dbg.vcs.CPU.PC.Address()] {
				break
			}
		}
		dbg.term.UserPrint("%s\n", dbg.vcs.CPU.MachineInfoTerse())

	case "QUIT", "Q":
		dbg.running = false

	default:
		return errors.NewFormattedError(errors.DebuggerError,
			fmt.Sprintf("unrecognised command (%s)", fields[0]))
	}

	return nil
}

// parseAddress converts a hexadecimal address, with or without a leading
// "0X" prefix.
func parseAddress(s string) (uint16, error) {
	s = strings.TrimPrefix(s, "0X")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, errors.NewFormattedError(errors.DebuggerError,
			fmt.Sprintf("not an address (%s)", s))
	}
	return uint16(v), nil
}
