package cpu

import "sixfive/disassemble"

// Clock advances the core by one half-cycle. Real 6502 silicon does
// meaningful work on both the rising and falling edge of PHI2; this core's
// bus model only needs to settle once per full cycle, so the first call of
// a pair (phi1) is a no-op that exists purely so a host driving real clock
// edges can call Clock() at twice the instruction rate it would call
// Tick(). The second call (phi2) runs the actual cycle.
func (c *Core) Clock() error {
	c.halfCycle = !c.halfCycle
	if c.halfCycle {
		return c.lastErr
	}
	c.lastErr = c.step()
	return c.lastErr
}

// Tick runs one full CPU cycle (two Clock() half-cycles). Most hosts that
// don't care about half-cycle bus observability will drive the core with
// this instead.
func (c *Core) Tick() error {
	c.Clock()
	return c.Clock()
}

// step runs one full bus cycle: either the dispatch of whichever
// instruction is currently in flight, or (at an instruction boundary) the
// decision between fetching the next opcode and diverting into the
// interrupt sequence.
func (c *Core) step() error {
	if c.jammed {
		return JammedError{Opcode: c.jamOpcode}
	}

	if c.t == c.cycles && !c.runInt && !c.resetting {
		irqPending := c.irqSrc.Raised() && c.P&FlagI == 0
		nmiPending := c.nmiSrc.Raised()
		if irqPending || nmiPending {
			if c.jump || c.branch {
				c.PC--
			}
			c.runInt = true
			c.servicingNMI = nmiPending
			c.t = 0
			c.cycles = 7
		} else {
			op := c.read(c.PC)
			c.refreshDisassembly()
			c.PC++
			c.opcode = int(op)
			c.t = 0
		}
	}

	var err error
	switch {
	case c.resetting:
		err = c.interruptSeq(kReset)
		if c.t == 6 {
			c.resetting = false
		}
	case c.runInt:
		kind := kIRQ
		if c.servicingNMI {
			kind = kNMI
		}
		err = c.interruptSeq(kind)
		if c.t == 6 {
			c.runInt = false
			c.servicingNMI = false
		}
	default:
		err = c.dispatch(uint8(c.opcode))
	}

	if c.RW {
		c.LastReadAddr = OptAddr{true, c.AddrBus}
	} else {
		c.LastWriteAddr = OptAddr{true, c.AddrBus}
	}
	c.TotalCycles++
	c.t++
	return err
}

// refreshDisassembly rebuilds the lookahead disassembly window starting at
// the current PC. Called once per opcode fetch, before PC moves past the
// opcode (and by a warm Reset), never mid-instruction, since PC isn't a
// stable vantage point until an instruction completes.
func (c *Core) refreshDisassembly() {
	c.Code = disassemble.Lookahead(c.PC, c.Mem, disassemble.CodeLimit)
}

// LoadProgram writes prog into memory starting at addr. When
// setResetVector is true the reset vector is pointed at addr too, for a
// flat image meant to run standalone with no separate vector table;
// relocatable images (setResetVector=false) are expected to carry their
// own correct vectors already, written as part of prog.
func (c *Core) LoadProgram(addr uint16, prog []byte, setResetVector bool) {
	for i, b := range prog {
		c.Mem.Write(addr+uint16(i), b)
	}
	if setResetVector {
		c.Mem.Write(ResetVector, uint8(addr))
		c.Mem.Write(ResetVector+1, uint8(addr>>8))
	}
}
