package disassemble

// Mode is one of the 13 6502 addressing modes, plus the sentinel XXX used
// for opcodes that have no legal encoding on an NMOS 6502. This is the
// single source of truth for per-opcode shape: the cpu package's dispatch
// table and this package's lookahead formatter both key off OpcodeTable so
// executed behavior and displayed text can never disagree about what an
// opcode byte means.
type Mode int

const (
	ACC   Mode = iota // Accumulator: operand is A itself.
	IMM               // Immediate: operand follows the opcode byte.
	IMP               // Implied: no operand byte.
	ZERO              // Zero page.
	ZEROX             // Zero page, X-indexed.
	ZEROY             // Zero page, Y-indexed.
	ABS               // Absolute.
	ABSX              // Absolute, X-indexed.
	ABSY              // Absolute, Y-indexed.
	IND               // Indirect (JMP only).
	INDX              // Indexed indirect ((zp,X)).
	INDY              // Indirect indexed ((zp),Y).
	REL               // Relative (branches).
	XXX               // No legal opcode here; core jams on fetch.
)

// Info is the per-opcode (mnemonic, mode) pair the fixed 256-entry
// dispatch table is built from. It carries no behavior.
type Info struct {
	Mnemonic string
	Mode     Mode
}

// OpcodeTable is the canonical NMOS 6502 opcode matrix: 151 legal
// encodings across 56 documented mnemonics. Every other byte value is
// "???"/XXX and jams the core per the illegal-opcode non-goal.
var OpcodeTable = [256]Info{
	0x00: {"BRK", IMP}, 0x01: {"ORA", INDX}, 0x02: {"???", XXX}, 0x03: {"???", XXX},
	0x04: {"???", XXX}, 0x05: {"ORA", ZERO}, 0x06: {"ASL", ZERO}, 0x07: {"???", XXX},
	0x08: {"PHP", IMP}, 0x09: {"ORA", IMM}, 0x0A: {"ASL", ACC}, 0x0B: {"???", XXX},
	0x0C: {"???", XXX}, 0x0D: {"ORA", ABS}, 0x0E: {"ASL", ABS}, 0x0F: {"???", XXX},

	0x10: {"BPL", REL}, 0x11: {"ORA", INDY}, 0x12: {"???", XXX}, 0x13: {"???", XXX},
	0x14: {"???", XXX}, 0x15: {"ORA", ZEROX}, 0x16: {"ASL", ZEROX}, 0x17: {"???", XXX},
	0x18: {"CLC", IMP}, 0x19: {"ORA", ABSY}, 0x1A: {"???", XXX}, 0x1B: {"???", XXX},
	0x1C: {"???", XXX}, 0x1D: {"ORA", ABSX}, 0x1E: {"ASL", ABSX}, 0x1F: {"???", XXX},

	0x20: {"JSR", ABS}, 0x21: {"AND", INDX}, 0x22: {"???", XXX}, 0x23: {"???", XXX},
	0x24: {"BIT", ZERO}, 0x25: {"AND", ZERO}, 0x26: {"ROL", ZERO}, 0x27: {"???", XXX},
	0x28: {"PLP", IMP}, 0x29: {"AND", IMM}, 0x2A: {"ROL", ACC}, 0x2B: {"???", XXX},
	0x2C: {"BIT", ABS}, 0x2D: {"AND", ABS}, 0x2E: {"ROL", ABS}, 0x2F: {"???", XXX},

	0x30: {"BMI", REL}, 0x31: {"AND", INDY}, 0x32: {"???", XXX}, 0x33: {"???", XXX},
	0x34: {"???", XXX}, 0x35: {"AND", ZEROX}, 0x36: {"ROL", ZEROX}, 0x37: {"???", XXX},
	0x38: {"SEC", IMP}, 0x39: {"AND", ABSY}, 0x3A: {"???", XXX}, 0x3B: {"???", XXX},
	0x3C: {"???", XXX}, 0x3D: {"AND", ABSX}, 0x3E: {"ROL", ABSX}, 0x3F: {"???", XXX},

	0x40: {"RTI", IMP}, 0x41: {"EOR", INDX}, 0x42: {"???", XXX}, 0x43: {"???", XXX},
	0x44: {"???", XXX}, 0x45: {"EOR", ZERO}, 0x46: {"LSR", ZERO}, 0x47: {"???", XXX},
	0x48: {"PHA", IMP}, 0x49: {"EOR", IMM}, 0x4A: {"LSR", ACC}, 0x4B: {"???", XXX},
	0x4C: {"JMP", ABS}, 0x4D: {"EOR", ABS}, 0x4E: {"LSR", ABS}, 0x4F: {"???", XXX},

	0x50: {"BVC", REL}, 0x51: {"EOR", INDY}, 0x52: {"???", XXX}, 0x53: {"???", XXX},
	0x54: {"???", XXX}, 0x55: {"EOR", ZEROX}, 0x56: {"LSR", ZEROX}, 0x57: {"???", XXX},
	0x58: {"CLI", IMP}, 0x59: {"EOR", ABSY}, 0x5A: {"???", XXX}, 0x5B: {"???", XXX},
	0x5C: {"???", XXX}, 0x5D: {"EOR", ABSX}, 0x5E: {"LSR", ABSX}, 0x5F: {"???", XXX},

	0x60: {"RTS", IMP}, 0x61: {"ADC", INDX}, 0x62: {"???", XXX}, 0x63: {"???", XXX},
	0x64: {"???", XXX}, 0x65: {"ADC", ZERO}, 0x66: {"ROR", ZERO}, 0x67: {"???", XXX},
	0x68: {"PLA", IMP}, 0x69: {"ADC", IMM}, 0x6A: {"ROR", ACC}, 0x6B: {"???", XXX},
	0x6C: {"JMP", IND}, 0x6D: {"ADC", ABS}, 0x6E: {"ROR", ABS}, 0x6F: {"???", XXX},

	0x70: {"BVS", REL}, 0x71: {"ADC", INDY}, 0x72: {"???", XXX}, 0x73: {"???", XXX},
	0x74: {"???", XXX}, 0x75: {"ADC", ZEROX}, 0x76: {"ROR", ZEROX}, 0x77: {"???", XXX},
	0x78: {"SEI", IMP}, 0x79: {"ADC", ABSY}, 0x7A: {"???", XXX}, 0x7B: {"???", XXX},
	0x7C: {"???", XXX}, 0x7D: {"ADC", ABSX}, 0x7E: {"ROR", ABSX}, 0x7F: {"???", XXX},

	0x80: {"???", XXX}, 0x81: {"STA", INDX}, 0x82: {"???", XXX}, 0x83: {"???", XXX},
	0x84: {"STY", ZERO}, 0x85: {"STA", ZERO}, 0x86: {"STX", ZERO}, 0x87: {"???", XXX},
	0x88: {"DEY", IMP}, 0x89: {"???", XXX}, 0x8A: {"TXA", IMP}, 0x8B: {"???", XXX},
	0x8C: {"STY", ABS}, 0x8D: {"STA", ABS}, 0x8E: {"STX", ABS}, 0x8F: {"???", XXX},

	0x90: {"BCC", REL}, 0x91: {"STA", INDY}, 0x92: {"???", XXX}, 0x93: {"???", XXX},
	0x94: {"STY", ZEROX}, 0x95: {"STA", ZEROX}, 0x96: {"STX", ZEROY}, 0x97: {"???", XXX},
	0x98: {"TYA", IMP}, 0x99: {"STA", ABSY}, 0x9A: {"TXS", IMP}, 0x9B: {"???", XXX},
	0x9C: {"???", XXX}, 0x9D: {"STA", ABSX}, 0x9E: {"???", XXX}, 0x9F: {"???", XXX},

	0xA0: {"LDY", IMM}, 0xA1: {"LDA", INDX}, 0xA2: {"LDX", IMM}, 0xA3: {"???", XXX},
	0xA4: {"LDY", ZERO}, 0xA5: {"LDA", ZERO}, 0xA6: {"LDX", ZERO}, 0xA7: {"???", XXX},
	0xA8: {"TAY", IMP}, 0xA9: {"LDA", IMM}, 0xAA: {"TAX", IMP}, 0xAB: {"???", XXX},
	0xAC: {"LDY", ABS}, 0xAD: {"LDA", ABS}, 0xAE: {"LDX", ABS}, 0xAF: {"???", XXX},

	0xB0: {"BCS", REL}, 0xB1: {"LDA", INDY}, 0xB2: {"???", XXX}, 0xB3: {"???", XXX},
	0xB4: {"LDY", ZEROX}, 0xB5: {"LDA", ZEROX}, 0xB6: {"LDX", ZEROY}, 0xB7: {"???", XXX},
	0xB8: {"CLV", IMP}, 0xB9: {"LDA", ABSY}, 0xBA: {"TSX", IMP}, 0xBB: {"???", XXX},
	0xBC: {"LDY", ABSX}, 0xBD: {"LDA", ABSX}, 0xBE: {"LDX", ABSY}, 0xBF: {"???", XXX},

	0xC0: {"CPY", IMM}, 0xC1: {"CMP", INDX}, 0xC2: {"???", XXX}, 0xC3: {"???", XXX},
	0xC4: {"CPY", ZERO}, 0xC5: {"CMP", ZERO}, 0xC6: {"DEC", ZERO}, 0xC7: {"???", XXX},
	0xC8: {"INY", IMP}, 0xC9: {"CMP", IMM}, 0xCA: {"DEX", IMP}, 0xCB: {"???", XXX},
	0xCC: {"CPY", ABS}, 0xCD: {"CMP", ABS}, 0xCE: {"DEC", ABS}, 0xCF: {"???", XXX},

	0xD0: {"BNE", REL}, 0xD1: {"CMP", INDY}, 0xD2: {"???", XXX}, 0xD3: {"???", XXX},
	0xD4: {"???", XXX}, 0xD5: {"CMP", ZEROX}, 0xD6: {"DEC", ZEROX}, 0xD7: {"???", XXX},
	0xD8: {"CLD", IMP}, 0xD9: {"CMP", ABSY}, 0xDA: {"???", XXX}, 0xDB: {"???", XXX},
	0xDC: {"???", XXX}, 0xDD: {"CMP", ABSX}, 0xDE: {"DEC", ABSX}, 0xDF: {"???", XXX},

	0xE0: {"CPX", IMM}, 0xE1: {"SBC", INDX}, 0xE2: {"???", XXX}, 0xE3: {"???", XXX},
	0xE4: {"CPX", ZERO}, 0xE5: {"SBC", ZERO}, 0xE6: {"INC", ZERO}, 0xE7: {"???", XXX},
	0xE8: {"INX", IMP}, 0xE9: {"SBC", IMM}, 0xEA: {"NOP", IMP}, 0xEB: {"???", XXX},
	0xEC: {"CPX", ABS}, 0xED: {"SBC", ABS}, 0xEE: {"INC", ABS}, 0xEF: {"???", XXX},

	0xF0: {"BEQ", REL}, 0xF1: {"SBC", INDY}, 0xF2: {"???", XXX}, 0xF3: {"???", XXX},
	0xF4: {"???", XXX}, 0xF5: {"SBC", ZEROX}, 0xF6: {"INC", ZEROX}, 0xF7: {"???", XXX},
	0xF8: {"SED", IMP}, 0xF9: {"SBC", ABSY}, 0xFA: {"???", XXX}, 0xFB: {"???", XXX},
	0xFC: {"???", XXX}, 0xFD: {"SBC", ABSX}, 0xFE: {"INC", ABSX}, 0xFF: {"???", XXX},
}
