package cpu

import "testing"

func TestIRQServicedBetweenInstructions(t *testing.T) {
	c, b := newTestCore(t, 0x0200)
	b.ram[IRQVector] = 0x00
	b.ram[IRQVector+1] = 0xD0
	b.load(0x0200, []byte{0xEA}) // NOP
	c.P &^= FlagI
	c.TriggerInterrupt(IRQ)
	runCycles(t, c, 2+7) // NOP completes, then the 7-cycle IRQ sequence
	if c.PC != 0xD000 {
		t.Errorf("PC after IRQ = %#04x, want 0xD000", c.PC)
	}
	if c.P&FlagI == 0 {
		t.Errorf("P.I not set after entering IRQ handler")
	}
}

func TestIRQIgnoredWhenMasked(t *testing.T) {
	c, b := newTestCore(t, 0x0200)
	b.ram[IRQVector] = 0x00
	b.ram[IRQVector+1] = 0xD0
	b.load(0x0200, []byte{0xEA, 0xEA}) // NOP; NOP
	c.P |= FlagI
	c.TriggerInterrupt(IRQ)
	runCycles(t, c, 4)
	if c.PC != 0x0202 {
		t.Errorf("PC = %#04x, want 0x0202 (IRQ should stay masked)", c.PC)
	}
}

func TestNMIAlwaysServiced(t *testing.T) {
	c, b := newTestCore(t, 0x0200)
	b.ram[NMIVector] = 0x00
	b.ram[NMIVector+1] = 0xE0
	b.load(0x0200, []byte{0xEA})
	c.P |= FlagI // NMI ignores the mask
	runCycles(t, c, 1) // fetch the NOP before the NMI arrives
	c.TriggerInterrupt(NMI)
	runCycles(t, c, 1+7) // NOP completes, then the 7-cycle NMI sequence
	if c.PC != 0xE000 {
		t.Errorf("PC after NMI = %#04x, want 0xE000", c.PC)
	}
}

func TestBRKPushesPCPlusTwoAndSetsB(t *testing.T) {
	c, b := newTestCore(t, 0x0200)
	b.ram[IRQVector] = 0x00
	b.ram[IRQVector+1] = 0xD0
	b.load(0x0200, []byte{0x00, 0xFF}) // BRK; (signature byte, always skipped)
	runCycles(t, c, 7)
	if c.PC != 0xD000 {
		t.Errorf("PC after BRK = %#04x, want 0xD000", c.PC)
	}
	pushedP := b.ram[c.SP+1]
	if pushedP&FlagB == 0 {
		t.Errorf("pushed P = %#010b, want B set", pushedP)
	}
	pcl := b.ram[c.SP+2]
	pch := b.ram[c.SP+3]
	pushedPC := uint16(pch)<<8 | uint16(pcl)
	if pushedPC != 0x0202 {
		t.Errorf("pushed return address = %#04x, want 0x0202 (PC+2)", pushedPC)
	}
}
