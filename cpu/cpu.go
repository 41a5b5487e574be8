// Package cpu implements a cycle-accurate NMOS 6502: every bus transaction,
// every discarded fetch, and every cycle penalty for a page crossing is
// observable to a host driving Clock() one half-cycle at a time.
package cpu

import (
	"fmt"

	"sixfive/disassemble"
	"sixfive/irq"
	"sixfive/memory"
)

// Flag bit positions within P, per spec section 6.
const (
	FlagC uint8 = 1 << 0 // Carry
	FlagZ uint8 = 1 << 1 // Zero
	FlagI uint8 = 1 << 2 // Interrupt disable
	FlagD uint8 = 1 << 3 // Decimal mode
	FlagB uint8 = 1 << 4 // Break (only meaningful in the byte pushed to the stack)
	FlagU uint8 = 1 << 5 // Unused, always 1 when observed externally
	FlagV uint8 = 1 << 6 // Overflow
	FlagN uint8 = 1 << 7 // Negative
)

// Vector addresses, re-exported from memory for convenience.
const (
	NMIVector   = memory.NMIVector
	ResetVector = memory.ResetVector
	IRQVector   = memory.IRQVector
)

// InvalidCPUState represents an internal precondition failure: a t/cycles
// combination the core should never be able to reach. Seeing this means a
// bug in the micro-sequencer bookkeeping, not a guest program problem.
type InvalidCPUState struct {
	Reason string
}

func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// JammedError is returned (repeatedly) once the core has fetched an
// undocumented opcode. The core does not panic or stop ticking; it just
// keeps reporting this until the host gives up on it.
type JammedError struct {
	Opcode uint8
}

func (e JammedError) Error() string {
	return fmt.Sprintf("jammed on illegal opcode 0x%02X", e.Opcode)
}

// OptAddr is a nullable 16-bit bus address, used for LastReadAddr/
// LastWriteAddr which read as "never happened" before the first access of
// that kind.
type OptAddr struct {
	ok   bool
	addr uint16
}

// Valid reports whether a read/write of this kind has ever happened.
func (o OptAddr) Valid() bool { return o.ok }

// Addr returns the address; only meaningful when Valid() is true.
func (o OptAddr) Addr() uint16 { return o.addr }

// Config constructs a Core. Mirrors the teacher's ChipDef: explicit fields,
// no ambient globals.
type Config struct {
	// Mem backs the core's 64K address space. If nil, a flat internal
	// RAM bank is allocated.
	Mem memory.Bank
	// CoreTest selects warm-reset semantics (SP=0x1FF, vectors jumped to
	// directly) instead of running the full 7-cycle cold reset sequence.
	CoreTest bool
}

// Core is the entire processor: registers, bus state, and the
// micro-sequencer bookkeeping needed to resume mid-instruction. A Core IS
// the process-wide CPU state; host code reaches it through one owned
// pointer, never an ambient global.
type Core struct {
	// Registers.
	A, X, Y uint8
	P       uint8
	PC      uint16
	SP      uint16 // invariant: SP&0xFF00 == 0x0100

	Mem memory.Bank

	// Bus state, observable every full cycle.
	AddrBus       uint16
	DataBus       uint8
	RW            bool // true = read, false = write
	Discarded     bool
	LastReadAddr  OptAddr
	LastWriteAddr OptAddr

	// Diagnostic strings.
	Instruction  string
	AddrMode     string
	OpcodeAction string
	CycleAction  string
	Code         []string

	// Transient per-instruction state.
	opcode        int // -1 sentinel immediately after construction/reset
	mode          disassemble.Mode
	cycles        int
	t             int
	effectiveAddr uint16
	opVal         uint8
	zpPtr         uint8 // zero-page pointer byte, (indirect) modes
	crossedPage   bool
	jump          bool
	branch        bool
	resetting     bool
	runInt        bool

	jammed      bool
	jamOpcode   uint8
	TotalCycles uint64

	irqLine *irq.Latch
	nmiLine *irq.Latch
	irqSrc  irq.Sender
	nmiSrc  irq.Sender

	servicingNMI bool

	halfCycle bool // toggles each Clock() call; a full cycle is phi1 then phi2
	lastErr   error
}

// New constructs a Core with memory zero-filled and performs a cold or warm
// reset depending on cfg.CoreTest.
func New(cfg Config) *Core {
	mem := cfg.Mem
	if mem == nil {
		m, err := memory.New8BitRAMBank(1<<16, nil)
		if err != nil {
			panic(err) // 65536 is always a valid power of 2; unreachable.
		}
		mem = m
	}
	c := &Core{
		Mem:     mem,
		irqLine: &irq.Latch{},
		nmiLine: &irq.Latch{},
		opcode:  -1,
	}
	c.irqSrc = c.irqLine
	c.nmiSrc = c.nmiLine
	c.Mem.PowerOn()
	c.Reset(cfg.CoreTest)
	return c
}

// InterruptKind selects which line TriggerInterrupt pends.
type InterruptKind int

const (
	IRQ InterruptKind = iota
	NMI
)

// TriggerInterrupt pends an interrupt request on the given line. IRQ is
// ignored at service time if P.I is set or a reset is in progress; NMI is
// always eventually serviced. Both are modeled as edge-triggered requests
// per spec's explicit simplification.
func (c *Core) TriggerInterrupt(kind InterruptKind) {
	switch kind {
	case IRQ:
		c.irqLine.Raise()
	case NMI:
		c.nmiLine.Raise()
	}
}

// Reset primes the core for execution. coreTest=true jumps directly to the
// reset vector with SP=0x1FF (warm reset, used by functional-test harnesses
// that don't want to spend 7 cycles getting started); coreTest=false arms
// the normal 7-cycle RESET sequence that Clock() will run on its first
// calls, with SP starting at 0x0100 and ending at 0x01FD once the sequence
// completes (three phantom stack pushes).
func (c *Core) Reset(coreTest bool) {
	c.A, c.X, c.Y = 0, 0, 0
	c.P = FlagU | FlagI
	c.jammed = false
	c.jamOpcode = 0
	c.jump = false
	c.branch = false
	c.runInt = false
	c.t = 0
	c.cycles = 0
	c.opcode = -1
	c.LastReadAddr = OptAddr{}
	c.LastWriteAddr = OptAddr{}
	c.irqLine.Ack()
	c.nmiLine.Ack()

	if coreTest {
		c.SP = 0x01FF
		lo := c.Mem.Read(ResetVector)
		hi := c.Mem.Read(ResetVector + 1)
		c.PC = uint16(hi)<<8 | uint16(lo)
		c.resetting = false
		c.Instruction = ""
		c.AddrMode = ""
		c.refreshDisassembly()
		return
	}

	c.SP = 0x0100
	c.resetting = true
	c.cycles = 7
	c.t = 0
}

// jam marks the core as stuck on an undocumented opcode; every subsequent
// Clock() call returns the same JammedError without advancing PC.
func (c *Core) jam(op uint8) error {
	c.jammed = true
	c.jamOpcode = op
	c.Instruction = "???"
	c.AddrMode = "???"
	c.OpcodeAction = "jammed"
	c.CycleAction = "jammed"
	return JammedError{Opcode: op}
}

func (c *Core) setFlag(mask uint8, set bool) {
	if set {
		c.P |= mask
	} else {
		c.P &^= mask
	}
}

func (c *Core) zeroCheck(v uint8)     { c.setFlag(FlagZ, v == 0) }
func (c *Core) negativeCheck(v uint8) { c.setFlag(FlagN, v&0x80 != 0) }
