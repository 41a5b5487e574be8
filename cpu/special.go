package cpu

// execJMP implements the two JMP addressing forms, including the
// well-known indirect page-wrap bug: when the pointer's low byte is 0xFF,
// the high byte of the target is fetched from the start of the same page
// rather than the next one.
func (c *Core) execJMP() error {
	switch c.mode {
	case ABS:
		switch c.t {
		case 1:
			c.effectiveAddr = uint16(c.read(c.PC))
			c.PC++
			return nil
		case 2:
			hi := c.read(c.PC)
			c.PC++
			c.PC = uint16(hi)<<8 | (c.effectiveAddr & 0xFF)
			c.jump = true
			return nil
		}
	case IND:
		switch c.t {
		case 1:
			c.effectiveAddr = uint16(c.read(c.PC))
			c.PC++
			return nil
		case 2:
			hi := c.read(c.PC)
			c.PC++
			c.effectiveAddr |= uint16(hi) << 8
			return nil
		case 3:
			c.opVal = c.read(c.effectiveAddr)
			return nil
		case 4:
			var hiAddr uint16
			if uint8(c.effectiveAddr) == 0xFF {
				hiAddr = c.effectiveAddr & 0xFF00
			} else {
				hiAddr = c.effectiveAddr + 1
			}
			hi := c.read(hiAddr)
			c.PC = uint16(hi)<<8 | uint16(c.opVal)
			c.jump = true
			return nil
		}
	}
	return InvalidCPUState{Reason: "execJMP: unexpected t for mode"}
}

// execJSR pushes the address of the last byte of the JSR instruction
// (target high-byte operand, one short of the true return address; RTS
// makes up the difference) then jumps.
func (c *Core) execJSR() error {
	switch c.t {
	case 1:
		c.zpPtr = c.read(c.PC)
		c.PC++
		return nil
	case 2:
		c.discardedRead(c.SP)
		return nil
	case 3:
		c.pushStack(uint8(c.PC >> 8))
		return nil
	case 4:
		c.pushStack(uint8(c.PC))
		return nil
	case 5:
		hi := c.read(c.PC)
		c.PC = uint16(hi)<<8 | uint16(c.zpPtr)
		c.jump = true
		return nil
	}
	return InvalidCPUState{Reason: "execJSR: unexpected t"}
}

func (c *Core) execRTS() error {
	switch c.t {
	case 1:
		c.discardedRead(c.PC)
		return nil
	case 2:
		c.discardedRead(c.SP)
		return nil
	case 3:
		c.zpPtr = c.pullStack()
		return nil
	case 4:
		hi := c.pullStack()
		c.PC = uint16(hi)<<8 | uint16(c.zpPtr)
		return nil
	case 5:
		c.discardedRead(c.PC)
		c.PC++
		c.jump = true
		return nil
	}
	return InvalidCPUState{Reason: "execRTS: unexpected t"}
}

func (c *Core) execRTI() error {
	switch c.t {
	case 1:
		c.discardedRead(c.PC)
		return nil
	case 2:
		c.discardedRead(c.SP)
		return nil
	case 3:
		p := c.pullStack()
		c.P = (p &^ FlagB) | FlagU
		return nil
	case 4:
		c.zpPtr = c.pullStack()
		return nil
	case 5:
		hi := c.pullStack()
		c.PC = uint16(hi)<<8 | uint16(c.zpPtr)
		c.jump = true
		return nil
	}
	return InvalidCPUState{Reason: "execRTI: unexpected t"}
}

func (c *Core) execPush(mnemonic string) error {
	switch c.t {
	case 1:
		c.discardedRead(c.PC)
		return nil
	case 2:
		if mnemonic == "PHP" {
			c.pushStack(c.P | FlagU | FlagB)
		} else {
			c.pushStack(c.A)
		}
		return nil
	}
	return InvalidCPUState{Reason: "execPush: unexpected t"}
}

func (c *Core) execPull(mnemonic string) error {
	switch c.t {
	case 1:
		c.discardedRead(c.PC)
		return nil
	case 2:
		c.discardedRead(c.SP)
		return nil
	case 3:
		v := c.pullStack()
		if mnemonic == "PLP" {
			c.P = (v &^ FlagB) | FlagU
		} else {
			c.A = v
			c.zeroCheck(c.A)
			c.negativeCheck(c.A)
		}
		return nil
	}
	return InvalidCPUState{Reason: "execPull: unexpected t"}
}

func (c *Core) branchTaken(mnemonic string) bool {
	switch mnemonic {
	case "BCC":
		return c.P&FlagC == 0
	case "BCS":
		return c.P&FlagC != 0
	case "BEQ":
		return c.P&FlagZ != 0
	case "BNE":
		return c.P&FlagZ == 0
	case "BMI":
		return c.P&FlagN != 0
	case "BPL":
		return c.P&FlagN == 0
	case "BVC":
		return c.P&FlagV == 0
	case "BVS":
		return c.P&FlagV != 0
	}
	return false
}

// execBranch implements BranchOp: the offset is always read, but the
// dummy cycles that follow only happen if the branch is taken, and a
// second dummy cycle is added again if the branch also crosses a page.
func (c *Core) execBranch(mnemonic string) error {
	switch c.t {
	case 1:
		offset := c.read(c.PC)
		c.PC++
		c.opVal = offset
		if !c.branchTaken(mnemonic) {
			return nil
		}
		c.branch = true
		c.cycles++
		return nil
	case 2:
		target := c.PC + uint16(int16(int8(c.opVal)))
		c.discardedRead(c.PC)
		if (c.PC & 0xFF00) != (target & 0xFF00) {
			c.crossedPage = true
			c.effectiveAddr = target
			c.cycles++
			return nil
		}
		c.PC = target
		c.jump = true
		return nil
	case 3:
		wrong := (c.PC & 0xFF00) | (c.effectiveAddr & 0xFF)
		c.discardedRead(wrong)
		c.PC = c.effectiveAddr
		c.jump = true
		return nil
	}
	return InvalidCPUState{Reason: "execBranch: unexpected t"}
}
