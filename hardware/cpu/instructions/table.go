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

package instructions

// the table of instruction definitions, indexed by opcode. undefined
// opcodes are nil; executing one is an error the CPU reports.
//
// cycle counts are from the MOS 6500 family programming manual. for page
// sensitive opcodes the count is the minimum; the CPU adds the penalty
// cycle when the indexing crosses a page.
//
// undocumented opcodes have lower-case mnemonics. only the undocumented
// instructions in actual use by the commercial game library are defined;
// the remainder stay nil.
//
// fields: OpCode, Mnemonic, Bytes, Cycles, AddressingMode, PageSensitive, Effect.
var definitions = [256]*Definition{
	// ADC
	0x69: {0x69, "ADC", 2, 2, Immediate, false, Read},
	0x65: {0x65, "ADC", 2, 3, ZeroPage, false, Read},
	0x75: {0x75, "ADC", 2, 4, ZeroPageIndexedX, false, Read},
	0x6d: {0x6d, "ADC", 3, 4, Absolute, false, Read},
	0x7d: {0x7d, "ADC", 3, 4, AbsoluteIndexedX, true, Read},
	0x79: {0x79, "ADC", 3, 4, AbsoluteIndexedY, true, Read},
	0x61: {0x61, "ADC", 2, 6, IndexedIndirect, false, Read},
	0x71: {0x71, "ADC", 2, 5, IndirectIndexed, true, Read},

	// AND
	0x29: {0x29, "AND", 2, 2, Immediate, false, Read},
	0x25: {0x25, "AND", 2, 3, ZeroPage, false, Read},
	0x35: {0x35, "AND", 2, 4, ZeroPageIndexedX, false, Read},
	0x2d: {0x2d, "AND", 3, 4, Absolute, false, Read},
	0x3d: {0x3d, "AND", 3, 4, AbsoluteIndexedX, true, Read},
	0x39: {0x39, "AND", 3, 4, AbsoluteIndexedY, true, Read},
	0x21: {0x21, "AND", 2, 6, IndexedIndirect, false, Read},
	0x31: {0x31, "AND", 2, 5, IndirectIndexed, true, Read},

	// ASL. opcode 0x0a works on the accumulator; distinguished by the
	// addressing mode
	0x0a: {0x0a, "ASL", 1, 2, Implied, false, Read},
	0x06: {0x06, "ASL", 2, 5, ZeroPage, false, RMW},
	0x16: {0x16, "ASL", 2, 6, ZeroPageIndexedX, false, RMW},
	0x0e: {0x0e, "ASL", 3, 6, Absolute, false, RMW},
	0x1e: {0x1e, "ASL", 3, 7, AbsoluteIndexedX, false, RMW},

	// branches
	0x90: {0x90, "BCC", 2, 2, Relative, true, Flow},
	0xb0: {0xb0, "BCS", 2, 2, Relative, true, Flow},
	0xf0: {0xf0, "BEQ", 2, 2, Relative, true, Flow},
	0x30: {0x30, "BMI", 2, 2, Relative, true, Flow},
	0xd0: {0xd0, "BNE", 2, 2, Relative, true, Flow},
	0x10: {0x10, "BPL", 2, 2, Relative, true, Flow},
	0x50: {0x50, "BVC", 2, 2, Relative, true, Flow},
	0x70: {0x70, "BVS", 2, 2, Relative, true, Flow},

	// BIT
	0x24: {0x24, "BIT", 2, 3, ZeroPage, false, Read},
	0x2c: {0x2c, "BIT", 3, 4, Absolute, false, Read},

	// BRK
	0x00: {0x00, "BRK", 1, 7, Implied, false, Interrupt},

	// flag instructions
	0x18: {0x18, "CLC", 1, 2, Implied, false, Read},
	0xd8: {0xd8, "CLD", 1, 2, Implied, false, Read},
	0x58: {0x58, "CLI", 1, 2, Implied, false, Read},
	0xb8: {0xb8, "CLV", 1, 2, Implied, false, Read},
	0x38: {0x38, "SEC", 1, 2, Implied, false, Read},
	0xf8: {0xf8, "SED", 1, 2, Implied, false, Read},
	0x78: {0x78, "SEI", 1, 2, Implied, false, Read},

	// CMP
	0xc9: {0xc9, "CMP", 2, 2, Immediate, false, Read},
	0xc5: {0xc5, "CMP", 2, 3, ZeroPage, false, Read},
	0xd5: {0xd5, "CMP", 2, 4, ZeroPageIndexedX, false, Read},
	0xcd: {0xcd, "CMP", 3, 4, Absolute, false, Read},
	0xdd: {0xdd, "CMP", 3, 4, AbsoluteIndexedX, true, Read},
	0xd9: {0xd9, "CMP", 3, 4, AbsoluteIndexedY, true, Read},
	0xc1: {0xc1, "CMP", 2, 6, IndexedIndirect, false, Read},
	0xd1: {0xd1, "CMP", 2, 5, IndirectIndexed, true, Read},

	// CPX
	0xe0: {0xe0, "CPX", 2, 2, Immediate, false, Read},
	0xe4: {0xe4, "CPX", 2, 3, ZeroPage, false, Read},
	0xec: {0xec, "CPX", 3, 4, Absolute, false, Read},

	// CPY
	0xc0: {0xc0, "CPY", 2, 2, Immediate, false, Read},
	0xc4: {0xc4, "CPY", 2, 3, ZeroPage, false, Read},
	0xcc: {0xcc, "CPY", 3, 4, Absolute, false, Read},

	// DEC
	0xc6: {0xc6, "DEC", 2, 5, ZeroPage, false, RMW},
	0xd6: {0xd6, "DEC", 2, 6, ZeroPageIndexedX, false, RMW},
	0xce: {0xce, "DEC", 3, 6, Absolute, false, RMW},
	0xde: {0xde, "DEC", 3, 7, AbsoluteIndexedX, false, RMW},

	// register increment/decrement
	0xca: {0xca, "DEX", 1, 2, Implied, false, Read},
	0x88: {0x88, "DEY", 1, 2, Implied, false, Read},
	0xe8: {0xe8, "INX", 1, 2, Implied, false, Read},
	0xc8: {0xc8, "INY", 1, 2, Implied, false, Read},

	// EOR
	0x49: {0x49, "EOR", 2, 2, Immediate, false, Read},
	0x45: {0x45, "EOR", 2, 3, ZeroPage, false, Read},
	0x55: {0x55, "EOR", 2, 4, ZeroPageIndexedX, false, Read},
	0x4d: {0x4d, "EOR", 3, 4, Absolute, false, Read},
	0x5d: {0x5d, "EOR", 3, 4, AbsoluteIndexedX, true, Read},
	0x59: {0x59, "EOR", 3, 4, AbsoluteIndexedY, true, Read},
	0x41: {0x41, "EOR", 2, 6, IndexedIndirect, false, Read},
	0x51: {0x51, "EOR", 2, 5, IndirectIndexed, true, Read},

	// INC
	0xe6: {0xe6, "INC", 2, 5, ZeroPage, false, RMW},
	0xf6: {0xf6, "INC", 2, 6, ZeroPageIndexedX, false, RMW},
	0xee: {0xee, "INC", 3, 6, Absolute, false, RMW},
	0xfe: {0xfe, "INC", 3, 7, AbsoluteIndexedX, false, RMW},

	// JMP
	0x4c: {0x4c, "JMP", 3, 3, Absolute, false, Flow},
	0x6c: {0x6c, "JMP", 3, 5, Indirect, false, Flow},

	// subroutines
	0x20: {0x20, "JSR", 3, 6, Absolute, false, Subroutine},
	0x60: {0x60, "RTS", 1, 6, Implied, false, Subroutine},
	0x40: {0x40, "RTI", 1, 6, Implied, false, Interrupt},

	// LDA
	0xa9: {0xa9, "LDA", 2, 2, Immediate, false, Read},
	0xa5: {0xa5, "LDA", 2, 3, ZeroPage, false, Read},
	0xb5: {0xb5, "LDA", 2, 4, ZeroPageIndexedX, false, Read},
	0xad: {0xad, "LDA", 3, 4, Absolute, false, Read},
	0xbd: {0xbd, "LDA", 3, 4, AbsoluteIndexedX, true, Read},
	0xb9: {0xb9, "LDA", 3, 4, AbsoluteIndexedY, true, Read},
	0xa1: {0xa1, "LDA", 2, 6, IndexedIndirect, false, Read},
	0xb1: {0xb1, "LDA", 2, 5, IndirectIndexed, true, Read},

	// LDX
	0xa2: {0xa2, "LDX", 2, 2, Immediate, false, Read},
	0xa6: {0xa6, "LDX", 2, 3, ZeroPage, false, Read},
	0xb6: {0xb6, "LDX", 2, 4, ZeroPageIndexedY, false, Read},
	0xae: {0xae, "LDX", 3, 4, Absolute, false, Read},
	0xbe: {0xbe, "LDX", 3, 4, AbsoluteIndexedY, true, Read},

	// LDY
	0xa0: {0xa0, "LDY", 2, 2, Immediate, false, Read},
	0xa4: {0xa4, "LDY", 2, 3, ZeroPage, false, Read},
	0xb4: {0xb4, "LDY", 2, 4, ZeroPageIndexedX, false, Read},
	0xac: {0xac, "LDY", 3, 4, Absolute, false, Read},
	0xbc: {0xbc, "LDY", 3, 4, AbsoluteIndexedX, true, Read},

	// LSR
	0x4a: {0x4a, "LSR", 1, 2, Implied, false, Read},
	0x46: {0x46, "LSR", 2, 5, ZeroPage, false, RMW},
	0x56: {0x56, "LSR", 2, 6, ZeroPageIndexedX, false, RMW},
	0x4e: {0x4e, "LSR", 3, 6, Absolute, false, RMW},
	0x5e: {0x5e, "LSR", 3, 7, AbsoluteIndexedX, false, RMW},

	// NOP
	0xea: {0xea, "NOP", 1, 2, Implied, false, Read},

	// ORA
	0x09: {0x09, "ORA", 2, 2, Immediate, false, Read},
	0x05: {0x05, "ORA", 2, 3, ZeroPage, false, Read},
	0x15: {0x15, "ORA", 2, 4, ZeroPageIndexedX, false, Read},
	0x0d: {0x0d, "ORA", 3, 4, Absolute, false, Read},
	0x1d: {0x1d, "ORA", 3, 4, AbsoluteIndexedX, true, Read},
	0x19: {0x19, "ORA", 3, 4, AbsoluteIndexedY, true, Read},
	0x01: {0x01, "ORA", 2, 6, IndexedIndirect, false, Read},
	0x11: {0x11, "ORA", 2, 5, IndirectIndexed, true, Read},

	// stack instructions
	0x48: {0x48, "PHA", 1, 3, Implied, false, Write},
	0x08: {0x08, "PHP", 1, 3, Implied, false, Write},
	0x68: {0x68, "PLA", 1, 4, Implied, false, Read},
	0x28: {0x28, "PLP", 1, 4, Implied, false, Read},

	// ROL
	0x2a: {0x2a, "ROL", 1, 2, Implied, false, Read},
	0x26: {0x26, "ROL", 2, 5, ZeroPage, false, RMW},
	0x36: {0x36, "ROL", 2, 6, ZeroPageIndexedX, false, RMW},
	0x2e: {0x2e, "ROL", 3, 6, Absolute, false, RMW},
	0x3e: {0x3e, "ROL", 3, 7, AbsoluteIndexedX, false, RMW},

	// ROR
	0x6a: {0x6a, "ROR", 1, 2, Implied, false, Read},
	0x66: {0x66, "ROR", 2, 5, ZeroPage, false, RMW},
	0x76: {0x76, "ROR", 2, 6, ZeroPageIndexedX, false, RMW},
	0x6e: {0x6e, "ROR", 3, 6, Absolute, false, RMW},
	0x7e: {0x7e, "ROR", 3, 7, AbsoluteIndexedX, false, RMW},

	// SBC
	0xe9: {0xe9, "SBC", 2, 2, Immediate, false, Read},
	0xe5: {0xe5, "SBC", 2, 3, ZeroPage, false, Read},
	0xf5: {0xf5, "SBC", 2, 4, ZeroPageIndexedX, false, Read},
	0xed: {0xed, "SBC", 3, 4, Absolute, false, Read},
	0xfd: {0xfd, "SBC", 3, 4, AbsoluteIndexedX, true, Read},
	0xf9: {0xf9, "SBC", 3, 4, AbsoluteIndexedY, true, Read},
	0xe1: {0xe1, "SBC", 2, 6, IndexedIndirect, false, Read},
	0xf1: {0xf1, "SBC", 2, 5, IndirectIndexed, true, Read},

	// STA
	0x85: {0x85, "STA", 2, 3, ZeroPage, false, Write},
	0x95: {0x95, "STA", 2, 4, ZeroPageIndexedX, false, Write},
	0x8d: {0x8d, "STA", 3, 4, Absolute, false, Write},
	0x9d: {0x9d, "STA", 3, 5, AbsoluteIndexedX, false, Write},
	0x99: {0x99, "STA", 3, 5, AbsoluteIndexedY, false, Write},
	0x81: {0x81, "STA", 2, 6, IndexedIndirect, false, Write},
	0x91: {0x91, "STA", 2, 6, IndirectIndexed, false, Write},

	// STX
	0x86: {0x86, "STX", 2, 3, ZeroPage, false, Write},
	0x96: {0x96, "STX", 2, 4, ZeroPageIndexedY, false, Write},
	0x8e: {0x8e, "STX", 3, 4, Absolute, false, Write},

	// STY
	0x84: {0x84, "STY", 2, 3, ZeroPage, false, Write},
	0x94: {0x94, "STY", 2, 4, ZeroPageIndexedX, false, Write},
	0x8c: {0x8c, "STY", 3, 4, Absolute, false, Write},

	// register transfers
	0xaa: {0xaa, "TAX", 1, 2, Implied, false, Read},
	0xa8: {0xa8, "TAY", 1, 2, Implied, false, Read},
	0xba: {0xba, "TSX", 1, 2, Implied, false, Read},
	0x8a: {0x8a, "TXA", 1, 2, Implied, false, Read},
	0x9a: {0x9a, "TXS", 1, 2, Implied, false, Read},
	0x98: {0x98, "TYA", 1, 2, Implied, false, Read},

	// undocumented: single byte nop
	0x1a: {0x1a, "nop", 1, 2, Implied, false, Read},
	0x3a: {0x3a, "nop", 1, 2, Implied, false, Read},
	0x5a: {0x5a, "nop", 1, 2, Implied, false, Read},
	0x7a: {0x7a, "nop", 1, 2, Implied, false, Read},
	0xda: {0xda, "nop", 1, 2, Implied, false, Read},
	0xfa: {0xfa, "nop", 1, 2, Implied, false, Read},

	// undocumented: two byte nop (sometimes called dop)
	0x80: {0x80, "skb", 2, 2, Immediate, false, Read},
	0x82: {0x82, "skb", 2, 2, Immediate, false, Read},
	0x89: {0x89, "skb", 2, 2, Immediate, false, Read},
	0xc2: {0xc2, "skb", 2, 2, Immediate, false, Read},
	0xe2: {0xe2, "skb", 2, 2, Immediate, false, Read},
	0x04: {0x04, "skb", 2, 3, ZeroPage, false, Read},
	0x44: {0x44, "skb", 2, 3, ZeroPage, false, Read},
	0x64: {0x64, "skb", 2, 3, ZeroPage, false, Read},
	0x14: {0x14, "skb", 2, 4, ZeroPageIndexedX, false, Read},
	0x34: {0x34, "skb", 2, 4, ZeroPageIndexedX, false, Read},
	0x54: {0x54, "skb", 2, 4, ZeroPageIndexedX, false, Read},
	0x74: {0x74, "skb", 2, 4, ZeroPageIndexedX, false, Read},
	0xd4: {0xd4, "skb", 2, 4, ZeroPageIndexedX, false, Read},
	0xf4: {0xf4, "skb", 2, 4, ZeroPageIndexedX, false, Read},

	// undocumented: three byte nop (sometimes called top)
	0x0c: {0x0c, "skw", 3, 4, Absolute, false, Read},
	0x1c: {0x1c, "skw", 3, 4, AbsoluteIndexedX, true, Read},
	0x3c: {0x3c, "skw", 3, 4, AbsoluteIndexedX, true, Read},
	0x5c: {0x5c, "skw", 3, 4, AbsoluteIndexedX, true, Read},
	0x7c: {0x7c, "skw", 3, 4, AbsoluteIndexedX, true, Read},
	0xdc: {0xdc, "skw", 3, 4, AbsoluteIndexedX, true, Read},
	0xfc: {0xfc, "skw", 3, 4, AbsoluteIndexedX, true, Read},

	// undocumented: lax (LDA then TAX)
	0xa7: {0xa7, "lax", 2, 3, ZeroPage, false, Read},
	0xb7: {0xb7, "lax", 2, 4, ZeroPageIndexedY, false, Read},
	0xaf: {0xaf, "lax", 3, 4, Absolute, false, Read},
	0xbf: {0xbf, "lax", 3, 4, AbsoluteIndexedY, true, Read},
	0xa3: {0xa3, "lax", 2, 6, IndexedIndirect, false, Read},
	0xb3: {0xb3, "lax", 2, 5, IndirectIndexed, true, Read},

	// undocumented: dcp (DEC then CMP)
	0xc7: {0xc7, "dcp", 2, 5, ZeroPage, false, RMW},
	0xd7: {0xd7, "dcp", 2, 6, ZeroPageIndexedX, false, RMW},
	0xcf: {0xcf, "dcp", 3, 6, Absolute, false, RMW},
	0xdf: {0xdf, "dcp", 3, 7, AbsoluteIndexedX, false, RMW},
	0xdb: {0xdb, "dcp", 3, 7, AbsoluteIndexedY, false, RMW},
	0xc3: {0xc3, "dcp", 2, 8, IndexedIndirect, false, RMW},
	0xd3: {0xd3, "dcp", 2, 8, IndirectIndexed, false, RMW},

	// undocumented: sbc mirror
	0xeb: {0xeb, "sbc", 2, 2, Immediate, false, Read},

	// undocumented: kil. halts the processor until a hardware reset
	0x02: {0x02, "kil", 1, 2, Implied, false, Read},
	0x12: {0x12, "kil", 1, 2, Implied, false, Read},
	0x22: {0x22, "kil", 1, 2, Implied, false, Read},
	0x32: {0x32, "kil", 1, 2, Implied, false, Read},
	0x42: {0x42, "kil", 1, 2, Implied, false, Read},
	0x52: {0x52, "kil", 1, 2, Implied, false, Read},
	0x62: {0x62, "kil", 1, 2, Implied, false, Read},
	0x72: {0x72, "kil", 1, 2, Implied, false, Read},
	0x92: {0x92, "kil", 1, 2, Implied, false, Read},
	0xb2: {0xb2, "kil", 1, 2, Implied, false, Read},
	0xd2: {0xd2, "kil", 1, 2, Implied, false, Read},
	0xf2: {0xf2, "kil", 1, 2, Implied, false, Read},
}

// GetDefinitions returns the table of instruction definitions for the 6507,
// indexed by opcode.
func GetDefinitions() []*Definition {
	return definitions[:]
}
