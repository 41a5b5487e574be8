package cpu

// execImplied runs the 2-cycle IMP/ACC shape shared by every register-only
// mnemonic and by the accumulator forms of ASL/LSR/ROL/ROR: t0 is the
// opcode fetch (handled by the dispatcher), t1 is a throwaway read of the
// next byte, on which the mutation is applied.
func (c *Core) execImplied(mnemonic string) error {
	switch c.t {
	case 1:
		c.discardedRead(c.PC)
		c.OpcodeAction = mnemonic
		c.CycleAction = "implied operation"
		return c.applyAccumulator(mnemonic)
	}
	return InvalidCPUState{Reason: "execImplied: unexpected t"}
}

// execRead implements MemOp: resolve the operand address for every
// addressing mode a load/arithmetic/compare/bit-test instruction can use,
// then apply the mnemonic's semantics once the operand byte lands.
func (c *Core) execRead(mnemonic string) error {
	switch c.mode {
	case IMM:
		if c.t == 1 {
			c.opVal = c.read(c.PC)
			c.PC++
			return c.applyRead(mnemonic)
		}
	case ZERO:
		switch c.t {
		case 1:
			c.effectiveAddr = uint16(c.read(c.PC))
			c.PC++
			return nil
		case 2:
			c.opVal = c.read(c.effectiveAddr)
			return c.applyRead(mnemonic)
		}
	case ZEROX, ZEROY:
		switch c.t {
		case 1:
			c.effectiveAddr = uint16(c.read(c.PC))
			c.PC++
			return nil
		case 2:
			c.discardedRead(c.effectiveAddr)
			idx := c.X
			if c.mode == ZEROY {
				idx = c.Y
			}
			c.effectiveAddr = uint16(uint8(c.effectiveAddr) + idx)
			return nil
		case 3:
			c.opVal = c.read(c.effectiveAddr)
			return c.applyRead(mnemonic)
		}
	case ABS:
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
			return c.applyRead(mnemonic)
		}
	case ABSX, ABSY:
		return c.execReadIndexedAbs(mnemonic)
	case INDX:
		switch c.t {
		case 1:
			c.effectiveAddr = uint16(c.read(c.PC))
			c.PC++
			return nil
		case 2:
			c.discardedRead(c.effectiveAddr)
			return nil
		case 3:
			lo := c.read(uint16(uint8(c.effectiveAddr) + c.X))
			c.opVal = lo // stash low byte temporarily in opVal
			return nil
		case 4:
			hi := c.read(uint16(uint8(c.effectiveAddr+1) + c.X))
			c.effectiveAddr = uint16(hi)<<8 | uint16(c.opVal)
			return nil
		case 5:
			c.opVal = c.read(c.effectiveAddr)
			return c.applyRead(mnemonic)
		}
	case INDY:
		return c.execReadIndY(mnemonic)
	}
	return InvalidCPUState{Reason: "execRead: unexpected t for mode"}
}

func (c *Core) execReadIndexedAbs(mnemonic string) error {
	switch c.t {
	case 1:
		c.effectiveAddr = uint16(c.read(c.PC))
		c.PC++
		return nil
	case 2:
		hi := c.read(c.PC)
		c.PC++
		lo := uint8(c.effectiveAddr)
		base := uint16(hi)<<8 | uint16(lo)
		idx := c.X
		if c.mode == ABSY {
			idx = c.Y
		}
		full := base + uint16(idx)
		c.effectiveAddr = full
		c.crossedPage = (base & 0xFF00) != (full & 0xFF00)
		return nil
	case 3:
		v := c.read(c.effectiveAddr)
		if c.crossedPage {
			c.Discarded = true
			c.cycles++
			return nil
		}
		c.opVal = v
		return c.applyRead(mnemonic)
	case 4:
		c.opVal = c.read(c.effectiveAddr)
		return c.applyRead(mnemonic)
	}
	return InvalidCPUState{Reason: "execReadIndexedAbs: unexpected t"}
}

func (c *Core) execReadIndY(mnemonic string) error {
	switch c.t {
	case 1:
		c.zpPtr = c.read(c.PC)
		c.PC++
		return nil
	case 2:
		c.opVal = c.read(uint16(c.zpPtr))
		return nil
	case 3:
		hi := c.read(uint16(c.zpPtr + 1))
		base := uint16(hi)<<8 | uint16(c.opVal)
		full := base + uint16(c.Y)
		c.effectiveAddr = full
		c.crossedPage = (base & 0xFF00) != (full & 0xFF00)
		return nil
	case 4:
		v := c.read(c.effectiveAddr)
		if c.crossedPage {
			c.Discarded = true
			c.cycles++
			return nil
		}
		c.opVal = v
		return c.applyRead(mnemonic)
	case 5:
		c.opVal = c.read(c.effectiveAddr)
		return c.applyRead(mnemonic)
	}
	return InvalidCPUState{Reason: "execReadIndY: unexpected t"}
}

// execStore implements StoreOp: resolve the address exactly like execRead,
// but indexed modes always pay the dummy-read penalty (fixed cycle count,
// no page-cross shortcut) since the value to write doesn't depend on
// whether the index carried.
func (c *Core) execStore(mnemonic string) error {
	reg := func() uint8 {
		switch mnemonic {
		case "STX":
			return c.X
		case "STY":
			return c.Y
		default:
			return c.A
		}
	}
	switch c.mode {
	case ZERO:
		switch c.t {
		case 1:
			c.effectiveAddr = uint16(c.read(c.PC))
			c.PC++
			return nil
		case 2:
			c.write(c.effectiveAddr, reg())
			return nil
		}
	case ZEROX, ZEROY:
		switch c.t {
		case 1:
			c.effectiveAddr = uint16(c.read(c.PC))
			c.PC++
			return nil
		case 2:
			c.discardedRead(c.effectiveAddr)
			idx := c.X
			if c.mode == ZEROY {
				idx = c.Y
			}
			c.effectiveAddr = uint16(uint8(c.effectiveAddr) + idx)
			return nil
		case 3:
			c.write(c.effectiveAddr, reg())
			return nil
		}
	case ABS:
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
			c.write(c.effectiveAddr, reg())
			return nil
		}
	case ABSX, ABSY:
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
			idx := c.X
			if c.mode == ABSY {
				idx = c.Y
			}
			lo := uint8(c.effectiveAddr)
			base := c.effectiveAddr & 0xFF00
			wrong := base | uint16(lo+idx)
			c.discardedRead(wrong)
			c.effectiveAddr += uint16(idx)
			return nil
		case 4:
			c.write(c.effectiveAddr, reg())
			return nil
		}
	case INDX:
		switch c.t {
		case 1:
			c.effectiveAddr = uint16(c.read(c.PC))
			c.PC++
			return nil
		case 2:
			c.discardedRead(c.effectiveAddr)
			return nil
		case 3:
			lo := c.read(uint16(uint8(c.effectiveAddr) + c.X))
			c.opVal = lo
			return nil
		case 4:
			hi := c.read(uint16(uint8(c.effectiveAddr+1) + c.X))
			c.effectiveAddr = uint16(hi)<<8 | uint16(c.opVal)
			return nil
		case 5:
			c.write(c.effectiveAddr, reg())
			return nil
		}
	case INDY:
		switch c.t {
		case 1:
			c.zpPtr = c.read(c.PC)
			c.PC++
			return nil
		case 2:
			c.opVal = c.read(uint16(c.zpPtr))
			return nil
		case 3:
			hi := c.read(uint16(c.zpPtr + 1))
			base := uint16(hi)<<8 | uint16(c.opVal)
			c.effectiveAddr = base + uint16(c.Y)
			return nil
		case 4:
			c.discardedRead(c.effectiveAddr)
			return nil
		case 5:
			c.write(c.effectiveAddr, reg())
			return nil
		}
	}
	return InvalidCPUState{Reason: "execStore: unexpected t for mode"}
}

// execRMW implements RMWOp: identical address-computation prefix to
// execRead's non-indexed-optimized forms, followed by a dummy write-back of
// the unmodified value and then the real write of the mutated value.
func (c *Core) execRMW(mnemonic string) error {
	switch c.mode {
	case ZERO:
		switch c.t {
		case 1:
			c.effectiveAddr = uint16(c.read(c.PC))
			c.PC++
			return nil
		case 2:
			c.opVal = c.read(c.effectiveAddr)
			return nil
		case 3:
			c.write(c.effectiveAddr, c.opVal) // dummy write-back, unmodified
			return nil
		case 4:
			c.write(c.effectiveAddr, c.applyRMW(mnemonic, c.opVal))
			return nil
		}
	case ZEROX:
		switch c.t {
		case 1:
			c.effectiveAddr = uint16(c.read(c.PC))
			c.PC++
			return nil
		case 2:
			c.discardedRead(c.effectiveAddr)
			c.effectiveAddr = uint16(uint8(c.effectiveAddr) + c.X)
			return nil
		case 3:
			c.opVal = c.read(c.effectiveAddr)
			return nil
		case 4:
			c.write(c.effectiveAddr, c.opVal)
			return nil
		case 5:
			c.write(c.effectiveAddr, c.applyRMW(mnemonic, c.opVal))
			return nil
		}
	case ABS:
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
			c.write(c.effectiveAddr, c.opVal)
			return nil
		case 5:
			c.write(c.effectiveAddr, c.applyRMW(mnemonic, c.opVal))
			return nil
		}
	case ABSX:
		switch c.t {
		case 1:
			c.effectiveAddr = uint16(c.read(c.PC))
			c.PC++
			return nil
		case 2:
			hi := c.read(c.PC)
			c.PC++
			base := uint16(hi)<<8 | uint16(uint8(c.effectiveAddr))
			wrong := (base & 0xFF00) | uint16(uint8(c.effectiveAddr)+c.X)
			c.effectiveAddr = base + uint16(c.X)
			c.zpPtr = uint8(wrong) // reuse as scratch for the dummy address low byte
			c.opVal = uint8(wrong >> 8)
			return nil
		case 3:
			c.discardedRead(uint16(c.opVal)<<8 | uint16(c.zpPtr))
			return nil
		case 4:
			c.opVal = c.read(c.effectiveAddr)
			return nil
		case 5:
			c.write(c.effectiveAddr, c.opVal)
			return nil
		case 6:
			c.write(c.effectiveAddr, c.applyRMW(mnemonic, c.opVal))
			return nil
		}
	}
	return InvalidCPUState{Reason: "execRMW: unexpected t for mode"}
}
