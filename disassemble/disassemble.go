// Package disassemble implements a read-only disassembler for the
// documented NMOS 6502 opcode set. It never mutates the memory.Bank it's
// given and has no notion of CPU state beyond the bytes it reads, so it's
// safe for a core to call from the middle of its own fetch cycle for
// lookahead display.
package disassemble

import (
	"fmt"

	"sixfive/memory"
)

// CodeLimit is the number of instructions the core's lookahead disassembly
// carries (spec: "CODE_LIMIT = 10").
const CodeLimit = 10

// Step disassembles the instruction at pc and returns its formatted text
// plus the number of bytes it occupies (1-3). It always reads the two bytes
// after pc, whatever the instruction's length, so callers must ensure those
// addresses are valid to read (RAM wraps, so they always are for a full 64K
// bank).
func Step(pc uint16, mem memory.Bank) (string, int) {
	op := mem.Read(pc)
	info := OpcodeTable[op]
	arg1 := mem.Read(pc + 1)
	arg2 := mem.Read(pc + 2)

	if info.Mode == XXX {
		return fmt.Sprintf("$%04X:\t???\t($%02X)", pc, op), 1
	}

	var operand string
	count := 1
	switch info.Mode {
	case ACC:
		operand = "A"
	case IMP:
		operand = ""
	case IMM:
		operand = fmt.Sprintf("#$%02X", arg1)
		count = 2
	case ZERO:
		operand = fmt.Sprintf("$%02X", arg1)
		count = 2
	case ZEROX:
		operand = fmt.Sprintf("$%02X,X", arg1)
		count = 2
	case ZEROY:
		operand = fmt.Sprintf("$%02X,Y", arg1)
		count = 2
	case INDX:
		operand = fmt.Sprintf("($%02X,X)", arg1)
		count = 2
	case INDY:
		operand = fmt.Sprintf("($%02X),Y", arg1)
		count = 2
	case REL:
		target := pc + 2 + uint16(int16(int8(arg1)))
		operand = fmt.Sprintf("$%02X ($%04X)", arg1, target)
		count = 2
	case ABS:
		operand = fmt.Sprintf("$%02X%02X", arg2, arg1)
		count = 3
	case ABSX:
		operand = fmt.Sprintf("$%02X%02X,X", arg2, arg1)
		count = 3
	case ABSY:
		operand = fmt.Sprintf("$%02X%02X,Y", arg2, arg1)
		count = 3
	case IND:
		ptr := uint16(arg2)<<8 | uint16(arg1)
		// Reproduce the page-wrap bug: if the pointer's low byte is 0xFF,
		// the high byte comes from the start of the *same* page.
		var hi uint16
		if arg1 == 0xFF {
			hi = ptr & 0xFF00
		} else {
			hi = ptr + 1
		}
		target := uint16(mem.Read(hi))<<8 | uint16(mem.Read(ptr))
		operand = fmt.Sprintf("($%02X%02X) = $%04X", arg2, arg1, target)
		count = 3
	}

	if operand == "" {
		return fmt.Sprintf("$%04X:\t%s", pc, info.Mnemonic), count
	}
	return fmt.Sprintf("$%04X:\t%s\t%s", pc, info.Mnemonic, operand), count
}

// Lookahead disassembles up to limit instructions starting at pc, returning
// one formatted line per instruction with the current one first. It never
// mutates mem (reads only) and never follows control flow (JMP/JSR/branch
// targets are displayed, not pursued) — straight-line decode exactly as
// spec's disassembler component requires.
func Lookahead(pc uint16, mem memory.Bank, limit int) []string {
	out := make([]string, 0, limit)
	cur := pc
	for i := 0; i < limit; i++ {
		line, n := Step(cur, mem)
		out = append(out, line)
		cur += uint16(n)
	}
	return out
}
