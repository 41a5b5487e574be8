package cpu

// intKind distinguishes the four reasons the core can be running the
// unified 7-cycle sequence implemented below.
type intKind int

const (
	kReset intKind = iota
	kIRQ
	kNMI
	kBRK
)

// execBRKInstr is BRK dispatched as a normal opcode: its own opcode byte
// was already fetched by the ordinary instruction-boundary fetch, so t==0's
// bus activity is already spent; from t==1 on it's the same sequence an
// asynchronous IRQ/NMI runs.
func (c *Core) execBRKInstr() error {
	return c.interruptSeq(kBRK)
}

// interruptSeq runs one cycle of the 7-cycle sequence shared by cold
// RESET, IRQ, NMI and BRK. Differences between the four are: RESET drives
// every stack access as a discarded read instead of a real write (nothing
// meaningful is on the stack to protect), BRK increments PC past its
// signature byte and sets the pushed B flag, and the vector fetched at the
// end depends on which of the four this is.
func (c *Core) interruptSeq(kind intKind) (err error) {
	switch c.t {
	case 0:
		// Only reached for genuine asynchronous IRQ/NMI/RESET entry: BRK's
		// t==0 bus activity already happened as its normal opcode fetch.
		if kind != kBRK {
			c.discardedRead(c.PC)
		}
		c.Instruction = map[intKind]string{kReset: "RESET", kIRQ: "IRQ", kNMI: "NMI", kBRK: "BRK"}[kind]
		c.AddrMode = "implied"
		c.OpcodeAction = c.Instruction
		c.CycleAction = "begin interrupt sequence"
		return nil
	case 1:
		c.discardedRead(c.PC)
		if kind == kBRK {
			c.PC++
		}
		return nil
	case 2:
		if kind == kReset {
			c.discardedRead(c.SP)
			c.SP = 0x0100 | ((c.SP - 1) & 0xFF)
		} else {
			c.pushStack(uint8(c.PC >> 8))
		}
		return nil
	case 3:
		if kind == kReset {
			c.discardedRead(c.SP)
			c.SP = 0x0100 | ((c.SP - 1) & 0xFF)
		} else {
			c.pushStack(uint8(c.PC))
		}
		return nil
	case 4:
		if kind == kReset {
			c.discardedRead(c.SP)
			c.SP = 0x0100 | ((c.SP - 1) & 0xFF)
		} else {
			status := c.P | FlagU
			if kind == kBRK {
				status |= FlagB
			} else {
				status &^= FlagB
			}
			c.pushStack(status)
			c.P |= FlagI
		}
		return nil
	case 5:
		vec := c.vectorFor(kind)
		c.zpPtr = c.read(vec)
		return nil
	case 6:
		vec := c.vectorFor(kind) + 1
		hi := c.read(vec)
		c.PC = uint16(hi)<<8 | uint16(c.zpPtr)
		c.P |= FlagI
		if kind == kIRQ {
			c.irqLine.Ack()
		} else if kind == kNMI {
			c.nmiLine.Ack()
		}
		c.jump = true
		return nil
	}
	return InvalidCPUState{Reason: "interruptSeq: unexpected t"}
}

// vectorFor allows a late-arriving NMI to hijack a BRK's vector fetch, the
// same "NMI during BRK" quirk real hardware exhibits.
func (c *Core) vectorFor(kind intKind) uint16 {
	switch kind {
	case kReset:
		return ResetVector
	case kNMI:
		return NMIVector
	case kBRK:
		if c.nmiLine.Raised() {
			return NMIVector
		}
		return IRQVector
	default:
		return IRQVector
	}
}
