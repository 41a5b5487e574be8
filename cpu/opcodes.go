package cpu

import (
	"fmt"

	"sixfive/disassemble"
)

// dispatch runs one cycle of whichever instruction is currently in flight.
// t==0 is bookkeeping only (mnemonic/mode/cycle-count setup); the bus
// activity for that cycle was already performed by the opcode fetch that
// preceded this call.
func (c *Core) dispatch(op uint8) error {
	info := disassemble.OpcodeTable[op]

	if c.t == 0 {
		if info.Mode == XXX {
			return c.jam(op)
		}
		c.Instruction = info.Mnemonic
		c.mode = info.Mode
		c.AddrMode = modeName(info.Mode)
		c.cycles = baseCycles(info.Mnemonic, info.Mode)
		c.jump = false
		c.branch = false
		c.crossedPage = false
		c.OpcodeAction = "decode " + info.Mnemonic
		c.CycleAction = "fetch opcode"
		return nil
	}

	c.OpcodeAction = info.Mnemonic
	c.CycleAction = fmt.Sprintf("t%d of %s (%s)", c.t, info.Mnemonic, c.AddrMode)

	switch info.Mnemonic {
	case "JMP":
		return c.execJMP()
	case "JSR":
		return c.execJSR()
	case "RTS":
		return c.execRTS()
	case "RTI":
		return c.execRTI()
	case "BRK":
		return c.execBRKInstr()
	case "PHA", "PHP":
		return c.execPush(info.Mnemonic)
	case "PLA", "PLP":
		return c.execPull(info.Mnemonic)
	case "BCC", "BCS", "BEQ", "BMI", "BNE", "BPL", "BVC", "BVS":
		return c.execBranch(info.Mnemonic)
	case "ASL", "LSR", "ROL", "ROR":
		if c.mode == ACC {
			return c.execImplied(info.Mnemonic)
		}
		return c.execRMW(info.Mnemonic)
	case "INC", "DEC":
		return c.execRMW(info.Mnemonic)
	case "STA", "STX", "STY":
		return c.execStore(info.Mnemonic)
	case "CLC", "SEC", "CLI", "SEI", "CLD", "SED", "CLV",
		"DEX", "DEY", "INX", "INY", "TAX", "TAY", "TXA", "TYA", "TSX", "TXS", "NOP":
		return c.execImplied(info.Mnemonic)
	default:
		return c.execRead(info.Mnemonic)
	}
}
