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

	"github.com/ltriant/atari2600/hardware/cpu/instructions"
)

// Result records the progress of the instruction currently being executed (or
// the last instruction executed if Final is true). It accumulates as the
// instruction proceeds; the Cycles field in particular is valid at every video
// cycle boundary, which is what the rest of the console keys off.
type Result struct {
	// the address the opcode was read from
	Address uint16

	// the instruction definition looked up from the opcode. nil when the CPU
	// has been reset and no instruction has run yet
	Defn *instructions.Definition

	// the operand bytes gathered so far, low byte first
	InstructionData uint16

	// the number of bytes read during decoding. not necessarily the same as
	// Defn.Bytes until the instruction has completed
	ByteCount int

	// the number of cycles consumed so far
	Cycles int

	// whether the instruction has completed
	Final bool

	// whether indexing crossed a page boundary, costing a cycle
	PageFault bool

	// for branch instructions, whether the branch was taken
	BranchSuccess bool

	// a note of any (documented) quirk of the silicon the instruction
	// tripped over
	CPUBug string
}

// Reset prepares the Result for a new instruction.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.InstructionData = 0
	r.ByteCount = 0
	r.Cycles = 0
	r.Final = false
	r.PageFault = false
	r.BranchSuccess = false
	r.CPUBug = ""
}

// String returns a disassembly of the executed instruction.
func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%#04x (no instruction)", r.Address)
	}

	var operand string

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		operand = ""
	case instructions.Immediate:
		operand = fmt.Sprintf(" #$%02x", r.InstructionData)
	case instructions.Relative:
		operand = fmt.Sprintf(" $%02x", r.InstructionData)
	case instructions.Absolute:
		operand = fmt.Sprintf(" $%04x", r.InstructionData)
	case instructions.ZeroPage:
		operand = fmt.Sprintf(" $%02x", r.InstructionData)
	case instructions.Indirect:
		operand = fmt.Sprintf(" ($%04x)", r.InstructionData)
	case instructions.IndexedIndirect:
		operand = fmt.Sprintf(" ($%02x,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		operand = fmt.Sprintf(" ($%02x),Y", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		operand = fmt.Sprintf(" $%04x,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		operand = fmt.Sprintf(" $%04x,Y", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		operand = fmt.Sprintf(" $%02x,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		operand = fmt.Sprintf(" $%02x,Y", r.InstructionData)
	}

	return fmt.Sprintf("%#04x %s%s [%d]", r.Address, r.Defn.Mnemonic, operand, r.Cycles)
}

// IsValid checks that a completed Result agrees with the instruction
// definition. Useful when checking the correctness of the emulation.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("cpu result: not checking an unfinished instruction")
	}

	if r.ByteCount != r.Defn.Bytes {
		return fmt.Errorf("cpu result: unexpected number of bytes read (%d instead of %d) for %s",
			r.ByteCount, r.Defn.Bytes, r.Defn.Mnemonic)
	}

	expected := r.Defn.Cycles
	if r.BranchSuccess {
		expected++
	}
	if r.PageFault {
		expected++
	}
	if r.Cycles != expected {
		return fmt.Errorf("cpu result: unexpected number of cycles (%d instead of %d) for %s",
			r.Cycles, expected, r.Defn.Mnemonic)
	}

	return nil
}
