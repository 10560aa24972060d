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

package cpu_test

import (
	"testing"

	"github.com/ltriant/atari2600/errors"
	"github.com/ltriant/atari2600/hardware/cpu"
	"github.com/ltriant/atari2600/test"
)

// flat 64k of memory. no mirroring, no chip registers; just what the CPU
// needs for instruction testing.
type testMem struct {
	internal []uint8

	// a log of every write, phantom writes included
	writes []writeEvent
}

type writeEvent struct {
	address uint16
	value   uint8
}

func newTestMem() *testMem {
	return &testMem{internal: make([]uint8, 0x10000)}
}

func (mem *testMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *testMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *testMem) Write(address uint16, data uint8) error {
	mem.writes = append(mem.writes, writeEvent{address: address, value: data})
	mem.internal[address] = data
	return nil
}

// step executes one instruction and checks the result against the
// instruction definition.
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()

	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		t.Fatalf("error during execution: %v", err)
	}

	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatalf("%v", err)
	}
}

func TestLoadAndStore(t *testing.T) {
	mem := newTestMem()
	mc := cpu.NewCPU(mem)

	mem.putInstructions(0x1000,
		0xa9, 0x0f, // LDA #$0f
		0x85, 0x40, // STA $40
	)
	mc.LoadPC(0x1000)

	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x0f)
	test.Equate(t, mc.LastResult.Cycles, 2)

	step(t, mc)
	test.Equate(t, mem.internal[0x0040], 0x0f)
	test.Equate(t, mc.LastResult.Cycles, 3)
}

func TestCycleCounts(t *testing.T) {
	mem := newTestMem()
	mc := cpu.NewCPU(mem)

	// data for the various addressing modes to find
	mem.internal[0x0040] = 0x01
	mem.internal[0x0041] = 0x02
	mem.internal[0x1100] = 0x03

	mem.putInstructions(0x1000,
		0xa2, 0x01, // LDX #$01       2 cycles
		0xa5, 0x40, // LDA $40        3 cycles
		0xb5, 0x40, // LDA $40,X      4 cycles
		0xad, 0x00, 0x11, // LDA $1100      4 cycles
		0xbd, 0xff, 0x10, // LDA $10ff,X    5 cycles (page fault)
		0xbd, 0x00, 0x11, // LDA $1100,X    4 cycles
		0x9d, 0x00, 0x11, // STA $1100,X    5 cycles
	)
	mc.LoadPC(0x1000)

	step(t, mc) // LDX
	test.Equate(t, mc.LastResult.Cycles, 2)

	step(t, mc) // LDA zero page
	test.Equate(t, mc.LastResult.Cycles, 3)
	test.Equate(t, mc.A.Value(), 0x01)

	step(t, mc) // LDA zero page,X
	test.Equate(t, mc.LastResult.Cycles, 4)
	test.Equate(t, mc.A.Value(), 0x02)

	step(t, mc) // LDA absolute
	test.Equate(t, mc.LastResult.Cycles, 4)
	test.Equate(t, mc.A.Value(), 0x03)

	step(t, mc) // LDA absolute,X crossing a page
	test.Equate(t, mc.LastResult.Cycles, 5)
	test.Equate(t, mc.LastResult.PageFault, true)
	test.Equate(t, mc.A.Value(), 0x03)

	step(t, mc) // LDA absolute,X without crossing
	test.Equate(t, mc.LastResult.Cycles, 4)
	test.Equate(t, mc.LastResult.PageFault, false)

	step(t, mc) // STA absolute,X is always 5 cycles
	test.Equate(t, mc.LastResult.Cycles, 5)
	test.Equate(t, mc.LastResult.PageFault, false)
	test.Equate(t, mem.internal[0x1101], mc.A.Value())
}

func TestIndirectIndexed(t *testing.T) {
	mem := newTestMem()
	mc := cpu.NewCPU(mem)

	// pointer at $80 pointing to $10f0
	mem.internal[0x0080] = 0xf0
	mem.internal[0x0081] = 0x10
	mem.internal[0x10f5] = 0xaa
	mem.internal[0x1101] = 0xbb

	mem.putInstructions(0x1000,
		0xa0, 0x05, // LDY #$05
		0xb1, 0x80, // LDA ($80),Y    5 cycles
		0xa0, 0x11, // LDY #$11
		0xb1, 0x80, // LDA ($80),Y    6 cycles (page fault)
	)
	mc.LoadPC(0x1000)

	step(t, mc) // LDY
	step(t, mc) // LDA (ind),Y
	test.Equate(t, mc.LastResult.Cycles, 5)
	test.Equate(t, mc.A.Value(), 0xaa)

	step(t, mc) // LDY
	step(t, mc) // LDA (ind),Y crossing a page
	test.Equate(t, mc.LastResult.Cycles, 6)
	test.Equate(t, mc.LastResult.PageFault, true)
	test.Equate(t, mc.A.Value(), 0xbb)
}

func TestBranches(t *testing.T) {
	mem := newTestMem()
	mc := cpu.NewCPU(mem)

	mem.putInstructions(0x1000,
		0xa9, 0x00, // LDA #$00 (set zero flag)
		0xd0, 0x10, // BNE +16 (not taken)
		0xa9, 0x01, // LDA #$01 (clear zero flag)
		0xd0, 0x02, // BNE +2 (taken)
	)
	mc.LoadPC(0x1000)

	step(t, mc) // LDA

	step(t, mc) // BNE not taken
	test.Equate(t, mc.LastResult.Cycles, 2)
	test.Equate(t, mc.LastResult.BranchSuccess, false)
	test.Equate(t, int(mc.PC.Address()), 0x1004)

	step(t, mc) // LDA

	step(t, mc) // BNE taken
	test.Equate(t, mc.LastResult.Cycles, 3)
	test.Equate(t, mc.LastResult.BranchSuccess, true)
	test.Equate(t, int(mc.PC.Address()), 0x100a)
}

func TestBranchPageFault(t *testing.T) {
	mem := newTestMem()
	mc := cpu.NewCPU(mem)

	mem.putInstructions(0x0200,
		0xa9, 0x01, // LDA #$01 (clear zero flag)
		0xd0, 0x80, // BNE -128 (taken, crosses page)
	)
	mc.LoadPC(0x0200)

	step(t, mc) // LDA

	step(t, mc) // BNE
	test.Equate(t, mc.LastResult.Cycles, 4)
	test.Equate(t, mc.LastResult.BranchSuccess, true)
	test.Equate(t, mc.LastResult.PageFault, true)
	test.Equate(t, int(mc.PC.Address()), 0x0184)
}

func TestReadModifyWrite(t *testing.T) {
	mem := newTestMem()
	mc := cpu.NewCPU(mem)

	mem.internal[0x0080] = 0x41
	mem.putInstructions(0x1000,
		0xe6, 0x80, // INC $80
	)
	mc.LoadPC(0x1000)

	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 5)
	test.Equate(t, mem.internal[0x0080], 0x42)

	// RMW instructions write twice; first the unmodified value, then the
	// result
	test.Equate(t, len(mem.writes), 2)
	test.Equate(t, int(mem.writes[0].address), 0x0080)
	test.Equate(t, mem.writes[0].value, 0x41)
	test.Equate(t, int(mem.writes[1].address), 0x0080)
	test.Equate(t, mem.writes[1].value, 0x42)
}

func TestSubroutines(t *testing.T) {
	mem := newTestMem()
	mc := cpu.NewCPU(mem)

	mem.putInstructions(0x1000,
		0x20, 0x00, 0x11, // JSR $1100
		0xea, // NOP
	)
	mem.putInstructions(0x1100,
		0x60, // RTS
	)
	mc.LoadPC(0x1000)

	step(t, mc) // JSR
	test.Equate(t, mc.LastResult.Cycles, 6)
	test.Equate(t, int(mc.PC.Address()), 0x1100)
	test.Equate(t, mc.SP.Value(), 0xfd)

	step(t, mc) // RTS
	test.Equate(t, mc.LastResult.Cycles, 6)
	test.Equate(t, int(mc.PC.Address()), 0x1003)
	test.Equate(t, mc.SP.Value(), 0xff)
}

func TestJMPIndirectBug(t *testing.T) {
	mem := newTestMem()
	mc := cpu.NewCPU(mem)

	// the target address straddles a page boundary. the high byte is read
	// from the zero byte of the same page, not the following page
	mem.internal[0x10ff] = 0x34
	mem.internal[0x1100] = 0x56
	mem.internal[0x1000] = 0x12

	mem.putInstructions(0x2000,
		0x6c, 0xff, 0x10, // JMP ($10ff)
	)
	mc.LoadPC(0x2000)

	step(t, mc)
	test.Equate(t, mc.LastResult.Cycles, 5)
	test.Equate(t, int(mc.PC.Address()), 0x1234)
	test.Equate(t, mc.LastResult.CPUBug != "", true)
}

func TestRdyFlg(t *testing.T) {
	mem := newTestMem()
	mc := cpu.NewCPU(mem)

	mem.putInstructions(0x1000,
		0xa9, 0x0f, // LDA #$0f
	)
	mc.LoadPC(0x1000)

	// with the ready flag low the CPU does nothing except tick the rest of
	// the console once
	mc.RdyFlg = false

	ticks := 0
	err := mc.ExecuteInstruction(func() error {
		ticks++
		return nil
	})
	if err != nil {
		t.Fatalf("error during execution: %v", err)
	}
	test.Equate(t, ticks, 1)
	test.Equate(t, int(mc.PC.Address()), 0x1000)
	test.Equate(t, mc.A.Value(), 0)

	mc.RdyFlg = true
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x0f)
}

func TestKIL(t *testing.T) {
	mem := newTestMem()
	mc := cpu.NewCPU(mem)

	mem.putInstructions(0x1000,
		0x02, // kil
	)
	mc.LoadPC(0x1000)

	step(t, mc)
	test.Equate(t, mc.Killed, true)

	// the CPU stays dead until a reset
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	test.Equate(t, errors.Is(err, errors.KilledInstruction), true)

	mc.Reset()
	test.Equate(t, mc.Killed, false)
}

func TestUndocumentedInstructions(t *testing.T) {
	mem := newTestMem()
	mc := cpu.NewCPU(mem)

	mem.internal[0x0080] = 0xc8
	mem.internal[0x0081] = 0x05

	mem.putInstructions(0x1000,
		0xa7, 0x80, // lax $80
		0xa9, 0x04, // LDA #$04
		0xc7, 0x81, // dcp $81
		0x04, 0x40, // skb
		0x0c, 0x00, 0x11, // skw
	)
	mc.LoadPC(0x1000)

	step(t, mc) // lax
	test.Equate(t, mc.LastResult.Cycles, 3)
	test.Equate(t, mc.A.Value(), 0xc8)
	test.Equate(t, mc.X.Value(), 0xc8)
	test.Equate(t, mc.Status.Sign, true)

	step(t, mc) // LDA

	step(t, mc) // dcp decrements memory and compares with A
	test.Equate(t, mc.LastResult.Cycles, 5)
	test.Equate(t, mem.internal[0x0081], 0x04)
	test.Equate(t, mc.Status.Zero, true)
	test.Equate(t, mc.Status.Carry, true)

	step(t, mc) // skb
	test.Equate(t, mc.LastResult.Cycles, 3)

	step(t, mc) // skw
	test.Equate(t, mc.LastResult.Cycles, 4)

	// none of the skips touched the registers
	test.Equate(t, mc.A.Value(), 0x04)
}

func TestStatusThroughStack(t *testing.T) {
	mem := newTestMem()
	mc := cpu.NewCPU(mem)

	mem.putInstructions(0x1000,
		0x38, // SEC
		0x08, // PHP
		0x18, // CLC
		0x28, // PLP
	)
	mc.LoadPC(0x1000)

	step(t, mc) // SEC
	test.Equate(t, mc.Status.Carry, true)

	step(t, mc) // PHP
	test.Equate(t, mc.LastResult.Cycles, 3)

	step(t, mc) // CLC
	test.Equate(t, mc.Status.Carry, false)

	step(t, mc) // PLP
	test.Equate(t, mc.LastResult.Cycles, 4)
	test.Equate(t, mc.Status.Carry, true)
}
