package cpu

// read performs one bus read cycle: drives addrBus/dataBus, marks the
// transaction as a read, and returns the byte. discarded must be set by the
// caller afterward if this particular read's value is known to be thrown
// away (dummy reads in indexed/indirect addressing).
func (c *Core) read(addr uint16) uint8 {
	c.AddrBus = addr
	c.RW = true
	c.Discarded = false
	v := c.Mem.Read(addr)
	c.DataBus = v
	return v
}

// write performs one bus write cycle.
func (c *Core) write(addr uint16, val uint8) {
	c.AddrBus = addr
	c.RW = false
	c.Discarded = false
	c.DataBus = val
	c.Mem.Write(addr, val)
}

// discardedRead performs a bus read whose value is known to be unused this
// cycle (dummy reads the 6502 performs as part of indexed/indirect
// addressing and stack operations).
func (c *Core) discardedRead(addr uint16) uint8 {
	v := c.read(addr)
	c.Discarded = true
	return v
}

// pushStack writes val to the current stack location and decrements SP's
// low byte, wrapping within page 1.
func (c *Core) pushStack(val uint8) {
	c.write(c.SP, val)
	c.SP = 0x0100 | ((c.SP - 1) & 0xFF)
}

// pullStack increments SP's low byte (wrapping within page 1) and reads the
// new top of stack.
func (c *Core) pullStack() uint8 {
	c.SP = 0x0100 | ((c.SP + 1) & 0xFF)
	return c.read(c.SP)
}
