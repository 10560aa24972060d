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

package cpu

import (
	"fmt"
	"strings"

	"github.com/ltriant/atari2600/errors"
	"github.com/ltriant/atari2600/hardware/cpu/instructions"
	"github.com/ltriant/atari2600/hardware/cpu/registers"
	"github.com/ltriant/atari2600/hardware/memory/addresses"
	"github.com/ltriant/atari2600/hardware/memory/bus"
	"github.com/ltriant/atari2600/logger"
)

// CPU implements the 6507 found in the Atari 2600. Register logic is
// implemented by the types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8  registers.Register
	acc16 registers.ProgramCounter

	mem          bus.CPUBus
	instructions []*instructions.Definition

	// cycleCallback is called after every CPU cycle. this is how the rest of
	// the console hardware gets to run
	cycleCallback func() error

	// controls whether the cpu executes a cycle when it receives a clock tick
	// (pin 3 of the 6507). the TIA holds this low while it is servicing a
	// WSYNC request
	RdyFlg bool

	// the progress of the most recent instruction
	LastResult Result

	// the cpu has encountered a KIL instruction. requires a Reset()
	Killed bool
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem bus.CPUBus) *CPU {
	mc := &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0xff),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
		acc16:        registers.NewProgramCounter(0),
		instructions: instructions.GetDefinitions(),
	}
	mc.Reset()
	return mc
}

// MachineInfoTerse returns the cpu information in terse format.
func (mc *CPU) MachineInfoTerse() string {
	return mc.String()
}

// MachineInfo returns the cpu information in verbose format.
func (mc *CPU) MachineInfo() string {
	s := strings.Builder{}
	s.WriteString("CPU:\n")
	s.WriteString(fmt.Sprintf("   %s: %s\n", mc.PC.Label(), mc.PC))
	s.WriteString(fmt.Sprintf("   %s: %s\n", mc.A.Label(), mc.A))
	s.WriteString(fmt.Sprintf("   %s: %s\n", mc.X.Label(), mc.X))
	s.WriteString(fmt.Sprintf("   %s: %s\n", mc.Y.Label(), mc.Y))
	s.WriteString(fmt.Sprintf("   %s: %s\n", mc.SP.Label(), mc.SP))
	s.WriteString(fmt.Sprintf("   %s: %s", mc.Status.Label(), mc.Status))
	return s.String()
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers. Does not load the PC with the reset
// vector; use LoadPCIndirect(addresses.Reset) when appropriate.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Killed = false

	mc.PC.Load(0)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()

	mc.Status.Zero = mc.A.IsZero()
	mc.Status.Sign = mc.A.IsNegative()
	mc.RdyFlg = true
	mc.cycleCallback = nil
}

// midInstruction is true when a previous call to ExecuteInstruction() did not
// run to completion.
func (mc *CPU) midInstruction() bool {
	return mc.LastResult.Defn != nil && !mc.LastResult.Final
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	if mc.midInstruction() {
		return errors.NewFormattedError(errors.InvalidOperationMidInstruction, "load PC")
	}

	// read 16 bit address from the specified indirect address

	lo, err := mc.mem.Read(indirectAddress)
	if err != nil {
		return err
	}

	hi, err := mc.mem.Read(indirectAddress + 1)
	if err != nil {
		return err
	}

	mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	return nil
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) error {
	if mc.midInstruction() {
		return errors.NewFormattedError(errors.InvalidOperationMidInstruction, "load PC")
	}

	mc.PC.Load(directAddress)

	return nil
}

// read8Bit returns an 8 bit value from the specified address
//
// side-effects:
//   - calls cycleCallback after the memory read
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	val, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}

	// +1 cycle
	mc.LastResult.Cycles++
	err = mc.cycleCallback()
	if err != nil {
		return 0, err
	}

	return val, nil
}

// write8Bit writes 8 bits to the specified address. there are no side-effects
// on the state of the CPU, which means that cycleCallback must be called by
// the calling function as appropriate.
func (mc *CPU) write8Bit(address uint16, value uint8) error {
	return mc.mem.Write(address, value)
}

// read16Bit returns a 16 bit value from the specified address
//
// side-effects:
//   - calls cycleCallback after each 8 bit read
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}

	// +1 cycle
	mc.LastResult.Cycles++
	err = mc.cycleCallback()
	if err != nil {
		return 0, err
	}

	hi, err := mc.mem.Read(address + 1)
	if err != nil {
		return 0, err
	}

	// +1 cycle
	mc.LastResult.Cycles++
	err = mc.cycleCallback()
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// reading 8 bits from the PC location has a variety of additional
// side-effects depending on context.
type read8BitPCeffect int

const (
	brk read8BitPCeffect = iota
	newOpcode
	loNibble
	hiNibble
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates the program counter
//   - calls cycleCallback at the end of the function
//   - updates LastResult.ByteCount
//   - the additional side-effect updates LastResult as appropriate
func (mc *CPU) read8BitPC(effect read8BitPCeffect) error {
	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return err
	}

	if mc.PC.Add(1) {
		return errors.NewFormattedError(errors.ProgramCounterCycled)
	}

	// bump the number of bytes read during instruction decode
	mc.LastResult.ByteCount++

	switch effect {
	case brk:
		// the BRK instruction causes the PC to advance by two but in that
		// case we don't want to record that the additional byte has been read
		mc.LastResult.ByteCount--

	case newOpcode:
		mc.LastResult.Defn = mc.instructions[v]
		if mc.LastResult.Defn == nil {
			return errors.NewFormattedError(errors.UnimplementedInstruction, v, mc.PC.Address()-1)
		}

	case loNibble:
		mc.LastResult.InstructionData = uint16(v)

	case hiNibble:
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
	}

	// +1 cycle
	mc.LastResult.Cycles++
	return mc.cycleCallback()
}

// read16BitPC reads 16 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates the program counter
//   - calls cycleCallback after each 8 bit read
//   - updates LastResult.ByteCount
//   - updates LastResult.InstructionData, once before each callback
func (mc *CPU) read16BitPC() error {
	err := mc.read8BitPC(loNibble)
	if err != nil {
		return err
	}

	return mc.read8BitPC(hiNibble)
}

func (mc *CPU) branch(flag bool, address uint16) error {
	// in the case of branching (relative addressing) we've read an 8 bit
	// value rather than a 16 bit value to use as the "address". because we'll
	// sometimes be doing subtractions with this value we need to make sure
	// the sign bit of the 8 bit value has been propagated into the
	// most-significant bits of the 16 bit value.
	if address&0x0080 == 0x0080 {
		address |= 0xff00
	}

	// note branching result
	mc.LastResult.BranchSuccess = flag

	if flag {
		// note current PC for reference
		oldPC := mc.PC.Address()

		// phantom read
		// +1 cycle
		_, err := mc.read8Bit(mc.PC.Address())
		if err != nil {
			return err
		}

		// add LSB to PC:
		//  o add the full (sign extended) 16 bit address to the PC
		//  o note whether a page fault has occurred
		//  o restore the MSB of the PC using the MSB of the old PC value
		mc.PC.Add(address)
		mc.LastResult.PageFault = oldPC&0xff00 != mc.PC.Address()&0xff00
		mc.PC.Load(oldPC&0xff00 | mc.PC.Address()&0x00ff)

		if mc.LastResult.PageFault {
			// phantom read
			// +1 cycle
			_, err := mc.read8Bit(mc.PC.Address())
			if err != nil {
				return err
			}

			// correct program counter
			if address&0xff00 == 0xff00 {
				mc.PC.Add(0xff00)
			} else {
				mc.PC.Add(0x0100)
			}
		}
	}

	return nil
}

// NilCycleCallback can be provided as an argument to ExecuteInstruction(). It
// is a convenient do-nothing function.
func NilCycleCallback() error {
	return nil
}

// ExecuteInstruction steps the CPU forward one instruction. The basic process
// when executing an instruction is this:
//
//  1. read the opcode and look up the instruction definition
//  2. read the operands (if any) according to the addressing mode
//  3. using the mnemonic as a guide, perform the instruction on the data
//
// All instructions take at least 2 cycles. After each cycle the cycleCallback
// function is run, thereby allowing the rest of the console hardware to
// operate.
//
// The cycleCallback argument should never be nil. Use the NilCycleCallback()
// function in this package if you want a nil effect.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	// a KIL instruction has been encountered. only a Reset() can clear this
	// condition
	if mc.Killed {
		return errors.NewFormattedError(errors.KilledInstruction,
			mc.LastResult.Defn.OpCode, mc.LastResult.Address)
	}

	// a previous call to ExecuteInstruction() has not yet completed. it is
	// impossible to begin a new instruction
	if mc.midInstruction() {
		return errors.NewFormattedError(errors.InvalidOperationMidInstruction, "execute")
	}

	// do nothing and return nothing if the ready flag is false. the TIA is
	// holding the RDY pin low because of a WSYNC request
	if !mc.RdyFlg {
		return cycleCallback()
	}

	// update cycle callback
	mc.cycleCallback = cycleCallback

	// prepare a new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// read the next opcode
	// +1 cycle
	err := mc.read8BitPC(newOpcode)
	if err != nil {
		// the number of bytes read is by definition one
		mc.LastResult.ByteCount = 1

		// this is the final byte of the instruction
		mc.LastResult.Final = true

		return err
	}
	defn := mc.LastResult.Defn

	// address is the actual address to use to access memory (after any
	// indexing has taken place)
	var address uint16

	// value is not used by implied mode instructions and is read from the
	// program for immediate mode. all other modes read the value from
	// non-program memory. for read-modify-write instructions the value
	// changes during execution and is written back to memory
	var value uint8

	// get the address to use when reading/writing from/to memory (note that
	// in the case of immediate addressing we are actually getting the value
	// to use in the instruction, not the address)
	switch defn.AddressingMode {
	case instructions.Implied:
		// implied mode does not use any additional bytes. however, the next
		// instruction is read but the PC is not incremented

		if defn.Mnemonic == "BRK" {
			// BRK is unusual in that it increases the PC by two bytes
			// despite being an implied addressing instruction
			// +1 cycle
			err = mc.read8BitPC(brk)
			if err != nil {
				return err
			}
		} else {
			// phantom read
			// +1 cycle
			_, err = mc.read8Bit(mc.PC.Address())
			if err != nil {
				return err
			}
		}

	case instructions.Immediate:
		// for immediate mode the value is the next byte in the program, so
		// we don't set the address and read the value through the PC

		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		value = uint8(mc.LastResult.InstructionData)

	case instructions.Relative:
		// relative addressing is only used for branch instructions. the
		// address is an offset from the current PC position. most of the
		// cycles for this mode are consumed in the branch() function

		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		address = mc.LastResult.InstructionData

	case instructions.Absolute:
		if defn.Effect != instructions.Subroutine {
			// +2 cycles
			err = mc.read16BitPC()
			if err != nil {
				return err
			}
			address = mc.LastResult.InstructionData
		}

		// else... for JSR the address is read slightly differently so we
		// defer that to the mnemonic switch below

	case instructions.ZeroPage:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		address = mc.LastResult.InstructionData

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for JMP

		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return err
		}
		indirectAddress := mc.LastResult.InstructionData

		if indirectAddress&0x00ff == 0x00ff {
			// in this bug path the low byte of the indirect address is on a
			// page boundary. the high byte of the JMP address is read from
			// the zero byte of the same page rather than the zero byte of
			// the next page
			mc.LastResult.CPUBug = "indirect addressing bug (JMP bug)"

			var lo, hi uint8

			// +1 cycle
			lo, err = mc.read8Bit(indirectAddress)
			if err != nil {
				return err
			}

			// +1 cycle
			hi, err = mc.read8Bit(indirectAddress & 0xff00)
			if err != nil {
				return err
			}

			address = (uint16(hi) << 8) | uint16(lo)
		} else {
			// +2 cycles
			address, err = mc.read16Bit(indirectAddress)
			if err != nil {
				return err
			}
		}

	case instructions.IndexedIndirect: // x indexing
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		indirectAddress := uint8(mc.LastResult.InstructionData)

		// phantom read before adjusting the index
		// +1 cycle
		_, err = mc.read8Bit(uint16(indirectAddress))
		if err != nil {
			return err
		}

		// using 8 bit addition; the indexed address never extends past the
		// zero page
		mc.acc8.Load(mc.X.Value())
		mc.acc8.Add(indirectAddress, false)

		// +2 cycles
		address, err = mc.read16Bit(mc.acc8.Address())
		if err != nil {
			return err
		}

		// never a page fault with pre-index indirect addressing

	case instructions.IndirectIndexed: // y indexing
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		indirectAddress := mc.LastResult.InstructionData

		// +2 cycles
		var indexedAddress uint16
		indexedAddress, err = mc.read16Bit(indirectAddress)
		if err != nil {
			return err
		}

		// add index to the LSB of the address
		mc.acc16.Load(mc.Y.Address())
		mc.acc16.Add(indexedAddress & 0x00ff)
		address = mc.acc16.Address()

		// check for page fault
		if defn.PageSensitive && (address&0xff00 == 0x0100) {
			mc.LastResult.PageFault = true
		}

		if mc.LastResult.PageFault || defn.Effect == instructions.Write || defn.Effect == instructions.RMW {
			// phantom read (always happens for Write and RMW)
			// +1 cycle
			_, err = mc.read8Bit((indexedAddress & 0xff00) | (address & 0x00ff))
			if err != nil {
				return err
			}
		}

		// fix the MSB of the address
		mc.acc16.Add(indexedAddress & 0xff00)
		address = mc.acc16.Address()

	case instructions.AbsoluteIndexedX:
		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return err
		}
		indirectAddress := mc.LastResult.InstructionData

		// add index to the LSB of the address
		mc.acc16.Load(mc.X.Address())
		mc.acc16.Add(indirectAddress & 0x00ff)
		address = mc.acc16.Address()

		// check for page fault
		mc.LastResult.PageFault = defn.PageSensitive && (address&0xff00 == 0x0100)
		if mc.LastResult.PageFault || defn.Effect == instructions.Write || defn.Effect == instructions.RMW {
			// phantom read (always happens for Write and RMW)
			// +1 cycle
			_, err = mc.read8Bit((indirectAddress & 0xff00) | (address & 0x00ff))
			if err != nil {
				return err
			}
		}

		// fix the MSB of the address
		mc.acc16.Add(indirectAddress & 0xff00)
		address = mc.acc16.Address()

	case instructions.AbsoluteIndexedY:
		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return err
		}
		indirectAddress := mc.LastResult.InstructionData

		// add index to the LSB of the address
		mc.acc16.Load(mc.Y.Address())
		mc.acc16.Add(indirectAddress & 0x00ff)
		address = mc.acc16.Address()

		// check for page fault
		mc.LastResult.PageFault = defn.PageSensitive && (address&0xff00 == 0x0100)
		if mc.LastResult.PageFault || defn.Effect == instructions.Write || defn.Effect == instructions.RMW {
			// phantom read (always happens for Write and RMW)
			// +1 cycle
			_, err = mc.read8Bit((indirectAddress & 0xff00) | (address & 0x00ff))
			if err != nil {
				return err
			}
		}

		// fix the MSB of the address
		mc.acc16.Add(indirectAddress & 0xff00)
		address = mc.acc16.Address()

	case instructions.ZeroPageIndexedX:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}

		// phantom read from the base address before index adjustment
		// +1 cycle
		_, err = mc.read8Bit(mc.LastResult.InstructionData)
		if err != nil {
			return err
		}

		// the indexed address wraps around inside the zero page
		mc.acc8.Load(uint8(mc.LastResult.InstructionData))
		mc.acc8.Add(mc.X.Value(), false)
		address = mc.acc8.Address()

	case instructions.ZeroPageIndexedY:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}

		// phantom read from the base address before index adjustment
		// +1 cycle
		_, err = mc.read8Bit(mc.LastResult.InstructionData)
		if err != nil {
			return err
		}

		// the indexed address wraps around inside the zero page
		mc.acc8.Load(uint8(mc.LastResult.InstructionData))
		mc.acc8.Add(mc.Y.Value(), false)
		address = mc.acc8.Address()

	default:
		return errors.NewFormattedError(errors.FatalError,
			fmt.Sprintf("cpu: unknown addressing mode for %s", defn.Mnemonic))
	}

	// read the value from memory using the address found above, but only
	// when the addressing mode implies an address and the instruction
	// actually reads memory. write instructions only use the address to
	// write a value we already have and flow instructions use the address in
	// very specific ways
	if !(defn.AddressingMode == instructions.Implied || defn.AddressingMode == instructions.Immediate) {
		if defn.Effect == instructions.Read {
			// +1 cycle
			value, err = mc.read8Bit(address)
			if err != nil {
				return err
			}
		} else if defn.Effect == instructions.RMW {
			// +1 cycle
			value, err = mc.read8Bit(address)
			if err != nil {
				return err
			}

			// phantom write of the unmodified value
			// +1 cycle
			err = mc.write8Bit(address, value)
			if err != nil {
				return err
			}

			mc.LastResult.Cycles++
			err = mc.cycleCallback()
			if err != nil {
				return err
			}
		}
	}

	// actually perform the instruction
	switch defn.Mnemonic {
	case "NOP", "nop", "skb", "skw":
		// does nothing. in the case of skb and skw the operand has already
		// been read and discarded

	case "CLI":
		mc.Status.InterruptDisable = false

	case "SEI":
		mc.Status.InterruptDisable = true

	case "CLC":
		mc.Status.Carry = false

	case "SEC":
		mc.Status.Carry = true

	case "CLD":
		mc.Status.DecimalMode = false

	case "SED":
		mc.Status.DecimalMode = true

	case "CLV":
		mc.Status.Overflow = false

	case "PHA":
		// +1 cycle
		err = mc.write8Bit(mc.SP.Address(), mc.A.Value())
		if err != nil {
			return err
		}
		mc.SP.Add(0xff)
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

	case "PLA":
		// +1 cycle
		mc.SP.Add(1)
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

		// +1 cycle
		value, err = mc.read8Bit(mc.SP.Address())
		if err != nil {
			return err
		}
		mc.A.Load(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case "PHP":
		// +1 cycle
		err = mc.write8Bit(mc.SP.Address(), mc.Status.Value())
		if err != nil {
			return err
		}
		mc.SP.Add(0xff)
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

	case "PLP":
		// +1 cycle
		mc.SP.Add(1)
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

		// +1 cycle
		value, err = mc.read8Bit(mc.SP.Address())
		if err != nil {
			return err
		}
		mc.Status.Load(value)

	case "TXA":
		mc.A.Load(mc.X.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case "TAX":
		mc.X.Load(mc.A.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case "TAY":
		mc.Y.Load(mc.A.Value())
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case "TYA":
		mc.A.Load(mc.Y.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case "TSX":
		mc.X.Load(mc.SP.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case "TXS":
		mc.SP.Load(mc.X.Value())
		// does not affect the status register

	case "EOR":
		mc.A.EOR(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case "ORA":
		mc.A.ORA(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case "AND":
		mc.A.AND(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case "LDA":
		mc.A.Load(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case "LDX":
		mc.X.Load(value)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case "LDY":
		mc.Y.Load(value)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case "STA":
		// +1 cycle
		err = mc.write8Bit(address, mc.A.Value())
		if err != nil {
			return err
		}
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

	case "STX":
		// +1 cycle
		err = mc.write8Bit(address, mc.X.Value())
		if err != nil {
			return err
		}
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

	case "STY":
		// +1 cycle
		err = mc.write8Bit(address, mc.Y.Value())
		if err != nil {
			return err
		}
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

	case "INX":
		mc.X.Add(1, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case "INY":
		mc.Y.Add(1, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case "DEX":
		mc.X.Add(0xff, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case "DEY":
		mc.Y.Add(0xff, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case "ASL":
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.ASL()
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case "LSR":
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.LSR()
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case "ROL":
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case "ROR":
		var r *registers.Register
		if defn.Effect == instructions.RMW {
			r = &mc.acc8
			r.Load(value)
		} else {
			r = &mc.A
		}
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case "ADC":
		if mc.Status.DecimalMode {
			mc.Status.Carry,
				mc.Status.Zero,
				mc.Status.Overflow,
				mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case "SBC", "sbc":
		if mc.Status.DecimalMode {
			mc.Status.Carry,
				mc.Status.Zero,
				mc.Status.Overflow,
				mc.Status.Sign = mc.A.SubtractDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case "INC":
		r := mc.acc8
		r.Load(value)
		r.Add(1, false)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case "DEC":
		r := mc.acc8
		r.Load(value)
		r.Add(0xff, false)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		value = r.Value()

	case "CMP":
		r := mc.acc8
		r.Load(mc.A.Value())

		// maybe surprisingly, CMP is implemented with binary subtract even
		// when decimal mode is active (the meaning is the same)
		mc.Status.Carry, _ = r.Subtract(value, true)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()

	case "CPX":
		r := mc.acc8
		r.Load(mc.X.Value())
		mc.Status.Carry, _ = r.Subtract(value, true)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()

	case "CPY":
		r := mc.acc8
		r.Load(mc.Y.Value())
		mc.Status.Carry, _ = r.Subtract(value, true)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()

	case "BIT":
		r := mc.acc8
		r.Load(value)
		mc.Status.Sign = r.IsNegative()
		mc.Status.Overflow = r.IsBitV()
		r.AND(mc.A.Value())
		mc.Status.Zero = r.IsZero()

	case "JMP":
		mc.PC.Load(address)

	case "BCC":
		err = mc.branch(!mc.Status.Carry, address)
		if err != nil {
			return err
		}

	case "BCS":
		err = mc.branch(mc.Status.Carry, address)
		if err != nil {
			return err
		}

	case "BEQ":
		err = mc.branch(mc.Status.Zero, address)
		if err != nil {
			return err
		}

	case "BMI":
		err = mc.branch(mc.Status.Sign, address)
		if err != nil {
			return err
		}

	case "BNE":
		err = mc.branch(!mc.Status.Zero, address)
		if err != nil {
			return err
		}

	case "BPL":
		err = mc.branch(!mc.Status.Sign, address)
		if err != nil {
			return err
		}

	case "BVC":
		err = mc.branch(!mc.Status.Overflow, address)
		if err != nil {
			return err
		}

	case "BVS":
		err = mc.branch(mc.Status.Overflow, address)
		if err != nil {
			return err
		}

	case "JSR":
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}

		// the current value of the PC is now correct, even though we've only
		// read one byte of the address so far. remember, RTS increments the
		// PC when read from the stack, meaning that the PC will be correct
		// at that point

		// with that in mind, we're not sure what this extra cycle is for
		// +1 cycle
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

		// push MSB of PC onto the stack and decrement SP
		// +1 cycle
		err = mc.write8Bit(mc.SP.Address(), uint8(mc.PC.Address()>>8))
		if err != nil {
			return err
		}
		mc.SP.Add(0xff)
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

		// push LSB of PC onto the stack and decrement SP
		// +1 cycle
		err = mc.write8Bit(mc.SP.Address(), uint8(mc.PC.Address()))
		if err != nil {
			return err
		}
		mc.SP.Add(0xff)
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

		// read the MSB of the target address and perform the jump
		// +1 cycle
		err = mc.read8BitPC(hiNibble)
		if err != nil {
			return err
		}

		// the address has been built by the read8BitPC effects. we would
		// normally do this in the addressing mode switch above but JSR
		// interleaves the stack pushes with the operand reads
		mc.PC.Load(mc.LastResult.InstructionData)

	case "RTS":
		// +1 cycle
		mc.SP.Add(1)
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

		// +2 cycles
		var rtsAddress uint16
		rtsAddress, err = mc.read16Bit(mc.SP.Address())
		if err != nil {
			return err
		}
		mc.SP.Add(1)

		// load and correct the PC
		mc.PC.Load(rtsAddress)
		mc.PC.Add(1)

		// +1 cycle
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

	case "BRK":
		// push the PC onto the stack (same effect as JSR)
		// +1 cycle
		err = mc.write8Bit(mc.SP.Address(), uint8(mc.PC.Address()>>8))
		if err != nil {
			return err
		}
		mc.SP.Add(0xff)
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

		// +1 cycle
		err = mc.write8Bit(mc.SP.Address(), uint8(mc.PC.Address()))
		if err != nil {
			return err
		}
		mc.SP.Add(0xff)
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

		// push the status register (same effect as PHP)
		// +1 cycle
		err = mc.write8Bit(mc.SP.Address(), mc.Status.Value())
		if err != nil {
			return err
		}
		mc.SP.Add(0xff)
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

		// set the break flag
		mc.Status.Break = true

		// perform the jump through the interrupt vector
		// +2 cycles
		var brkAddress uint16
		brkAddress, err = mc.read16Bit(addresses.IRQ)
		if err != nil {
			return err
		}
		mc.PC.Load(brkAddress)

	case "RTI":
		// pull the status register (same effect as PLP)
		mc.SP.Add(1)

		// +1 cycle
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}

		// +1 cycle
		value, err = mc.read8Bit(mc.SP.Address())
		if err != nil {
			return err
		}
		mc.Status.Load(value)

		// pull the program counter (same effect as RTS but without the
		// adjustment by one)
		mc.SP.Add(1)

		// +2 cycles
		var rtiAddress uint16
		rtiAddress, err = mc.read16Bit(mc.SP.Address())
		if err != nil {
			return err
		}
		mc.SP.Add(1)
		mc.PC.Load(rtiAddress)

	// undocumented instructions

	case "lax":
		mc.A.Load(value)
		mc.X.Load(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case "dcp":
		// decrement the value...
		r := mc.acc8
		r.Load(value)
		r.Add(0xff, false)
		value = r.Value()

		// ... and compare with the A register
		r.Load(mc.A.Value())
		mc.Status.Carry, _ = r.Subtract(value, true)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()

	case "kil":
		mc.Killed = true
		logger.Logf("CPU", "KIL instruction (%#02x) at (%#04x)", defn.OpCode, mc.LastResult.Address)

	default:
		return errors.NewFormattedError(errors.FatalError,
			fmt.Sprintf("cpu: unknown mnemonic (%s)", defn.Mnemonic))
	}

	// for RMW instructions: write the altered value back to memory
	if defn.Effect == instructions.RMW {
		// +1 cycle
		err = mc.write8Bit(address, value)
		if err != nil {
			return err
		}
		mc.LastResult.Cycles++
		err = mc.cycleCallback()
		if err != nil {
			return err
		}
	}

	// finalise result
	mc.LastResult.Final = true

	return nil
}
