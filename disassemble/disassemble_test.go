package disassemble

import (
	"strings"
	"testing"

	"sixfive/memory"
)

type testBank struct {
	ram        [65536]uint8
	databusVal uint8
}

func (b *testBank) Read(addr uint16) uint8 {
	v := b.ram[addr]
	b.databusVal = v
	return v
}
func (b *testBank) Write(addr uint16, v uint8) {
	b.databusVal = v
	b.ram[addr] = v
}
func (b *testBank) PowerOn()             {}
func (b *testBank) Parent() memory.Bank  { return nil }
func (b *testBank) DatabusVal() uint8    { return b.databusVal }

func TestStepImmediate(t *testing.T) {
	b := &testBank{}
	b.ram[0x0200] = 0xA9 // LDA #$42
	b.ram[0x0201] = 0x42
	text, n := Step(0x0200, b)
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
	if !strings.Contains(text, "LDA") || !strings.Contains(text, "#$42") {
		t.Errorf("text = %q, want it to mention LDA #$42", text)
	}
}

func TestStepIllegalOpcode(t *testing.T) {
	b := &testBank{}
	b.ram[0x0200] = 0x02
	text, n := Step(0x0200, b)
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
	if !strings.Contains(text, "???") {
		t.Errorf("text = %q, want it to flag the illegal opcode", text)
	}
}

func TestStepIndirectJMPPageWrap(t *testing.T) {
	b := &testBank{}
	b.ram[0x0100] = 0x6C // JMP ($02FF), instruction lives on a different page
	b.ram[0x0101] = 0xFF
	b.ram[0x0102] = 0x02
	b.ram[0x02FF] = 0x34 // target low byte
	b.ram[0x0200] = 0x12 // the RIGHT high byte source: start of pointer's own page
	b.ram[0x0300] = 0xFF // would be used if the bug weren't reproduced
	text, n := Step(0x0100, b)
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
	if !strings.Contains(text, "$1234") {
		t.Errorf("text = %q, want resolved target $1234 (high byte from same page)", text)
	}
}

func TestLookaheadRespectsLimit(t *testing.T) {
	b := &testBank{}
	for i := 0; i < 20; i++ {
		b.ram[0x0200+uint16(i)] = 0xEA // NOP, 1 byte each
	}
	lines := Lookahead(0x0200, b, CodeLimit)
	if len(lines) != CodeLimit {
		t.Errorf("len(lines) = %d, want %d", len(lines), CodeLimit)
	}
}
