package nes

// CPU emulates the NES's 6502-family processor (RICOH 2A03, no decimal
// mode). Addressing, flag and interrupt semantics follow:
//
//	https://en.wikipedia.org/wiki/MOS_Technology_6502
//	http://www.6502.org/tutorials/6502opcodes.html
//	https://www.nesdev.org/wiki/CPU_unofficial_opcodes

const CPUFrequency = 1789773

// Processor status flags, layout N V - B D I Z C (bit 5 always reads 1).
const (
	flagC byte = 1 << 0
	flagZ byte = 1 << 1
	flagI byte = 1 << 2
	flagD byte = 1 << 3
	flagB byte = 1 << 4
	flagU byte = 1 << 5
	flagV byte = 1 << 6
	flagN byte = 1 << 7
)

// addrMode is the 6502 addressing mode of an opcode. modeNone is the
// catch-all for implied, relative, accumulator and the special indirect
// JMP, each of which fetches its own operand instead of going through
// addr().
type addrMode int

const (
	modeNone addrMode = iota
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirectX
	modeIndirectY
)

// CPU holds the 6502's architectural state. It reaches the rest of the
// console only through the bus.
type CPU struct {
	A, X, Y byte
	S       byte
	P       byte
	PC      uint16

	bus    *Bus
	halted bool

	branchCyclesAdj int  // extra cycles from a taken/page-crossed branch, set by branch(), consumed by Step
	pcWritten       bool // set by any instruction that assigns c.PC directly, consumed by Step

	lastPC     uint16 // PC at the start of the instruction just dispatched, for the tracer
	lastOpcode byte
}

// NewCPU constructs a CPU wired to bus and resets it.
func NewCPU(bus *Bus) *CPU {
	c := &CPU{bus: bus}
	c.Reset()
	return c
}

// Reset clears register state, sets S=$FD, P=0010_0100 and loads PC from
// the reset vector at $FFFC/$FFFD.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.S = 0xFD
	c.P = flagU | flagI
	c.PC = c.read16(0xFFFC)
	c.halted = false
}

// LoadProgram is a test helper: it writes program into the mapper's PRG
// backing store starting at addr (use NewTestBus, whose PRG is a plain
// mutable slice) and points PC at it, bypassing Reset's vector read.
func (c *CPU) LoadProgram(addr uint16, program []byte) {
	c.bus.loadTestProgram(addr, program)
	c.PC = addr
}

func (c *CPU) read(addr uint16) byte     { return c.bus.Read(addr) }
func (c *CPU) read16(addr uint16) uint16 { return uint16(c.read(addr)) | uint16(c.read(addr+1))<<8 }
func (c *CPU) write(addr uint16, v byte) { c.bus.Write(addr, v) }

func hiByte(addr uint16) byte { return byte(addr >> 8) }

// addr computes the effective address (and whether computing it crossed
// a page boundary) for the nine data-carrying addressing modes. c.PC
// must already point at the first operand byte.
func (c *CPU) addr(mode addrMode) (uint16, bool) {
	switch mode {
	case modeImmediate:
		return c.PC, false
	case modeZeroPage:
		return uint16(c.read(c.PC)), false
	case modeZeroPageX:
		return uint16(c.read(c.PC) + c.X), false
	case modeZeroPageY:
		return uint16(c.read(c.PC) + c.Y), false
	case modeAbsolute:
		return c.read16(c.PC), false
	case modeAbsoluteX:
		base := c.read16(c.PC)
		a := base + uint16(c.X)
		return a, hiByte(base) != hiByte(a)
	case modeAbsoluteY:
		base := c.read16(c.PC)
		a := base + uint16(c.Y)
		return a, hiByte(base) != hiByte(a)
	case modeIndirectX:
		ptr := c.read(c.PC) + c.X
		lo := uint16(c.read(uint16(ptr)))
		hi := uint16(c.read(uint16(ptr + 1)))
		return lo | hi<<8, false
	case modeIndirectY:
		ptr := c.read(c.PC)
		lo := uint16(c.read(uint16(ptr)))
		hi := uint16(c.read(uint16(ptr + 1)))
		base := lo | hi<<8
		a := base + uint16(c.Y)
		return a, hiByte(base) != hiByte(a)
	default:
		return 0, false
	}
}

func (c *CPU) setFlag(flag byte, on bool) {
	if on {
		c.P |= flag
	} else {
		c.P &^= flag
	}
}

func (c *CPU) setCarry(on bool)    { c.setFlag(flagC, on) }
func (c *CPU) setZero(on bool)     { c.setFlag(flagZ, on) }
func (c *CPU) setOverflow(on bool) { c.setFlag(flagV, on) }
func (c *CPU) setNegative(on bool) { c.setFlag(flagN, on) }

func (c *CPU) setZN(v byte) {
	c.setZero(v == 0)
	c.setNegative(v&0x80 != 0)
}

func (c *CPU) carryIn() byte {
	if c.P&flagC != 0 {
		return 1
	}
	return 0
}

func (c *CPU) push(v byte) {
	c.write(0x0100|uint16(c.S), v)
	c.S--
}

func (c *CPU) pull() byte {
	c.S++
	return c.read(0x0100 | uint16(c.S))
}

// nmi services a non-maskable interrupt: pushes PC high/low then a copy
// of P with B cleared and U set, sets I, and loads PC from $FFFA/$FFFB.
func (c *CPU) nmi() {
	c.push(byte(c.PC >> 8))
	c.push(byte(c.PC))
	c.push((c.P &^ flagB) | flagU)
	c.P |= flagI
	c.PC = c.read16(0xFFFA)
}

// Step executes one unit of CPU work: either an NMI service (if the bus
// has one pending) or one instruction. onStep, if non-nil, runs after the
// opcode is fetched but before it executes (used for tracing and for the
// host to poll input on a cadence independent of frame boundaries). It
// returns the cycles consumed, whether BRK halted the CPU, and any fatal
// bus error.
func (c *CPU) Step(onStep func(*CPU)) (cycles int, halted bool, err error) {
	if c.bus.TakeNMI() {
		c.nmi()
		c.bus.Tick(2) // documented simplification: the real hardware costs 7 cycles here
		return 2, false, c.bus.Fault()
	}

	c.lastPC = c.PC
	opByte := c.read(c.PC)
	c.lastOpcode = opByte
	entry := &opcodeTable[opByte]

	// onStep runs after the opcode/operand bytes are latched into
	// lastPC/lastOpcode (so a tracer can disassemble them) but before
	// PC advances or the instruction executes (so register state it
	// sees is the pre-execution snapshot nestest-style logs expect).
	if onStep != nil {
		onStep(c)
	}

	c.PC++

	crossed := false
	if entry.mode != modeNone {
		_, crossed = c.addr(entry.mode)
	}

	c.branchCyclesAdj = 0
	c.pcWritten = false
	entry.exec(c, entry.mode)
	if !c.pcWritten {
		c.PC += uint16(entry.length) - 1
	}

	cycles = int(entry.cycles) + c.branchCyclesAdj
	if entry.pageCrossExtra && crossed {
		cycles++
	}

	c.bus.Tick(cycles)

	if err := c.bus.Fault(); err != nil {
		return cycles, true, err
	}
	return cycles, c.halted, nil
}

// Run executes instructions until BRK halts the CPU or a fatal bus error
// occurs.
func (c *CPU) Run() error {
	return c.RunWithCallback(nil)
}

// RunWithCallback is Run with a per-step callback.
func (c *CPU) RunWithCallback(onStep func(*CPU)) error {
	for {
		_, halted, err := c.Step(onStep)
		if err != nil {
			return err
		}
		if halted {
			return nil
		}
	}
}

// branch evaluates a relative-addressed conditional branch. c.PC points
// at the one-byte signed offset. Taken branches cost +1 cycle, +1 more
// if the branch crosses a page.
func (c *CPU) branch(cond bool) {
	offset := int8(c.read(c.PC))
	target := c.PC + 1 + uint16(offset)
	if !cond {
		return
	}
	c.pcWritten = true
	c.branchCyclesAdj = 1
	if hiByte(c.PC+1) != hiByte(target) {
		c.branchCyclesAdj = 2
	}
	c.PC = target
}
