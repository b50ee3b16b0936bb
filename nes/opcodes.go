package nes

// This file holds every instruction body plus the 256-entry dispatch
// table, including the unofficial opcodes real cartridges occasionally
// rely on. Reference for the unofficial set:
//
//	https://www.nesdev.org/wiki/CPU_unofficial_opcodes
//	https://www.nesdev.org/6502_cpu.txt

type opcode struct {
	mnemonic       string
	length         byte
	cycles         byte
	mode           addrMode
	pageCrossExtra bool // +1 cycle if addr() crossed a page; only set for read-only instructions
	exec           func(c *CPU, mode addrMode)
}

// --- loads/stores ---

func (c *CPU) lda(mode addrMode) { addr, _ := c.addr(mode); c.A = c.read(addr); c.setZN(c.A) }
func (c *CPU) ldx(mode addrMode) { addr, _ := c.addr(mode); c.X = c.read(addr); c.setZN(c.X) }
func (c *CPU) ldy(mode addrMode) { addr, _ := c.addr(mode); c.Y = c.read(addr); c.setZN(c.Y) }
func (c *CPU) sta(mode addrMode) { addr, _ := c.addr(mode); c.write(addr, c.A) }
func (c *CPU) stx(mode addrMode) { addr, _ := c.addr(mode); c.write(addr, c.X) }
func (c *CPU) sty(mode addrMode) { addr, _ := c.addr(mode); c.write(addr, c.Y) }

// --- transfers ---

func (c *CPU) tax(addrMode) { c.X = c.A; c.setZN(c.X) }
func (c *CPU) tay(addrMode) { c.Y = c.A; c.setZN(c.Y) }
func (c *CPU) txa(addrMode) { c.A = c.X; c.setZN(c.A) }
func (c *CPU) tya(addrMode) { c.A = c.Y; c.setZN(c.A) }
func (c *CPU) tsx(addrMode) { c.X = c.S; c.setZN(c.X) }
func (c *CPU) txs(addrMode) { c.S = c.X }

// --- stack ---

func (c *CPU) pha(addrMode) { c.push(c.A) }
func (c *CPU) pla(addrMode) { c.A = c.pull(); c.setZN(c.A) }
func (c *CPU) php(addrMode) { c.push(c.P | flagB | flagU) }
func (c *CPU) plp(addrMode) { c.P = (c.pull() &^ flagB) | flagU }

// --- flags ---

func (c *CPU) clc(addrMode) { c.setCarry(false) }
func (c *CPU) sec(addrMode) { c.setCarry(true) }
func (c *CPU) cli(addrMode) { c.setFlag(flagI, false) }
func (c *CPU) sei(addrMode) { c.setFlag(flagI, true) }
func (c *CPU) clv(addrMode) { c.setOverflow(false) }
func (c *CPU) cld(addrMode) { c.setFlag(flagD, false) } // decimal mode is unused on the 2A03
func (c *CPU) sed(addrMode) { c.setFlag(flagD, true) }

// --- increments/decrements ---

func (c *CPU) inx(addrMode) { c.X++; c.setZN(c.X) }
func (c *CPU) iny(addrMode) { c.Y++; c.setZN(c.Y) }
func (c *CPU) dex(addrMode) { c.X--; c.setZN(c.X) }
func (c *CPU) dey(addrMode) { c.Y--; c.setZN(c.Y) }

func (c *CPU) inc(mode addrMode) {
	addr, _ := c.addr(mode)
	v := c.read(addr) + 1
	c.write(addr, v)
	c.setZN(v)
}

func (c *CPU) dec(mode addrMode) {
	addr, _ := c.addr(mode)
	v := c.read(addr) - 1
	c.write(addr, v)
	c.setZN(v)
}

// --- logic/arithmetic ---

func (c *CPU) and(mode addrMode) { addr, _ := c.addr(mode); c.A &= c.read(addr); c.setZN(c.A) }
func (c *CPU) ora(mode addrMode) { addr, _ := c.addr(mode); c.A |= c.read(addr); c.setZN(c.A) }
func (c *CPU) eor(mode addrMode) { addr, _ := c.addr(mode); c.A ^= c.read(addr); c.setZN(c.A) }

// adcValue is ADC's core: result = A+M+C mod 256, with standard carry
// and two's-complement overflow.
func (c *CPU) adcValue(m byte) {
	a := c.A
	sum := uint16(a) + uint16(m) + uint16(c.carryIn())
	result := byte(sum)
	c.setCarry(sum > 0xFF)
	c.setOverflow((m^result)&(a^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

// sbcValue is SBC expressed as ADC of the bitwise complement of M, the
// classic 6502 equivalence (carry doubles as "not borrow").
func (c *CPU) sbcValue(m byte) { c.adcValue(^m) }

func (c *CPU) adc(mode addrMode) { addr, _ := c.addr(mode); c.adcValue(c.read(addr)) }
func (c *CPU) sbc(mode addrMode) { addr, _ := c.addr(mode); c.sbcValue(c.read(addr)) }

func (c *CPU) compare(reg, operand byte) {
	c.setCarry(reg >= operand)
	c.setZN(reg - operand)
}

func (c *CPU) cmp(mode addrMode) { addr, _ := c.addr(mode); c.compare(c.A, c.read(addr)) }
func (c *CPU) cpx(mode addrMode) { addr, _ := c.addr(mode); c.compare(c.X, c.read(addr)) }
func (c *CPU) cpy(mode addrMode) { addr, _ := c.addr(mode); c.compare(c.Y, c.read(addr)) }

func (c *CPU) bit(mode addrMode) {
	addr, _ := c.addr(mode)
	v := c.read(addr)
	c.setZero(c.A&v == 0)
	c.setOverflow(v&0x40 != 0)
	c.setNegative(v&0x80 != 0)
}

// --- shifts/rotates (mode==modeNone means the accumulator form) ---

func (c *CPU) asl(mode addrMode) {
	if mode == modeNone {
		c.setCarry(c.A&0x80 != 0)
		c.A <<= 1
		c.setZN(c.A)
		return
	}
	addr, _ := c.addr(mode)
	v := c.read(addr)
	c.setCarry(v&0x80 != 0)
	v <<= 1
	c.write(addr, v)
	c.setZN(v)
}

func (c *CPU) lsr(mode addrMode) {
	if mode == modeNone {
		c.setCarry(c.A&1 != 0)
		c.A >>= 1
		c.setZN(c.A)
		return
	}
	addr, _ := c.addr(mode)
	v := c.read(addr)
	c.setCarry(v&1 != 0)
	v >>= 1
	c.write(addr, v)
	c.setZN(v)
}

func (c *CPU) rol(mode addrMode) {
	carry := c.carryIn()
	if mode == modeNone {
		c.setCarry(c.A&0x80 != 0)
		c.A = (c.A << 1) | carry
		c.setZN(c.A)
		return
	}
	addr, _ := c.addr(mode)
	v := c.read(addr)
	c.setCarry(v&0x80 != 0)
	v = (v << 1) | carry
	c.write(addr, v)
	c.setZN(v)
}

func (c *CPU) ror(mode addrMode) {
	carry := c.carryIn()
	if mode == modeNone {
		c.setCarry(c.A&1 != 0)
		c.A = (c.A >> 1) | (carry << 7)
		c.setZN(c.A)
		return
	}
	addr, _ := c.addr(mode)
	v := c.read(addr)
	c.setCarry(v&1 != 0)
	v = (v >> 1) | (carry << 7)
	c.write(addr, v)
	c.setZN(v)
}

// --- control flow ---

// jmp handles both absolute (mode passed through to addr()) and the
// special indirect form (mode==modeNone), which reproduces the famous
// page-wrap hardware bug: if the pointer's low byte is $FF, the high
// byte is fetched from the start of the same page instead of the next.
func (c *CPU) jmp(mode addrMode) {
	c.pcWritten = true
	if mode == modeNone {
		ptr := c.read16(c.PC)
		lo := c.read(ptr)
		hi := c.read((ptr & 0xFF00) | uint16(byte(ptr)+1))
		c.PC = uint16(hi)<<8 | uint16(lo)
		return
	}
	addr, _ := c.addr(mode)
	c.PC = addr
}

func (c *CPU) jsr(addrMode) {
	target := c.read16(c.PC)
	ret := c.PC + 1 // address of the operand's high byte; RTS pops and adds 1
	c.push(byte(ret >> 8))
	c.push(byte(ret))
	c.PC = target
	c.pcWritten = true
}

func (c *CPU) rts(addrMode) {
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	c.PC = (hi<<8 | lo) + 1
	c.pcWritten = true
}

func (c *CPU) rti(addrMode) {
	c.P = (c.pull() &^ flagB) | flagU
	lo := uint16(c.pull())
	hi := uint16(c.pull())
	c.PC = hi<<8 | lo
	c.pcWritten = true
}

// brk sets the B flag and halts the run loop; real hardware instead
// loads PC from $FFFE/$FFFF, which we also do for a consistent final
// state even though Step never resumes after this.
func (c *CPU) brk(addrMode) {
	ret := c.PC + 1
	c.push(byte(ret >> 8))
	c.push(byte(ret))
	c.push(c.P | flagB | flagU)
	c.P |= flagI
	c.PC = c.read16(0xFFFE)
	c.halted = true
	c.pcWritten = true
}

func (c *CPU) bcc(addrMode) { c.branch(c.P&flagC == 0) }
func (c *CPU) bcs(addrMode) { c.branch(c.P&flagC != 0) }
func (c *CPU) beq(addrMode) { c.branch(c.P&flagZ != 0) }
func (c *CPU) bne(addrMode) { c.branch(c.P&flagZ == 0) }
func (c *CPU) bmi(addrMode) { c.branch(c.P&flagN != 0) }
func (c *CPU) bpl(addrMode) { c.branch(c.P&flagN == 0) }
func (c *CPU) bvs(addrMode) { c.branch(c.P&flagV != 0) }
func (c *CPU) bvc(addrMode) { c.branch(c.P&flagV == 0) }

// nop covers both the official $EA and the unofficial multi-byte forms;
// the latter still perform their memory read (for bus-level fidelity)
// and are otherwise side-effect-free.
func (c *CPU) nopOp(mode addrMode) {
	if mode != modeNone {
		addr, _ := c.addr(mode)
		c.read(addr)
	}
}

// --- unofficial opcodes ---
// Each operates through the same addr()/read/write plumbing as the
// official instructions above, so immediate-mode variants (ANC, ALR,
// ARR, AXS) work unmodified.

func (c *CPU) lax(mode addrMode) {
	addr, _ := c.addr(mode)
	v := c.read(addr)
	c.A, c.X = v, v
	c.setZN(v)
}

func (c *CPU) sax(mode addrMode) {
	addr, _ := c.addr(mode)
	c.write(addr, c.A&c.X)
}

func (c *CPU) dcp(mode addrMode) {
	addr, _ := c.addr(mode)
	v := c.read(addr) - 1
	c.write(addr, v)
	c.compare(c.A, v)
}

func (c *CPU) isb(mode addrMode) {
	addr, _ := c.addr(mode)
	v := c.read(addr) + 1
	c.write(addr, v)
	c.sbcValue(v)
}

func (c *CPU) slo(mode addrMode) {
	addr, _ := c.addr(mode)
	v := c.read(addr)
	c.setCarry(v&0x80 != 0)
	v <<= 1
	c.write(addr, v)
	c.A |= v
	c.setZN(c.A)
}

func (c *CPU) rla(mode addrMode) {
	addr, _ := c.addr(mode)
	carry := c.carryIn()
	v := c.read(addr)
	c.setCarry(v&0x80 != 0)
	v = (v << 1) | carry
	c.write(addr, v)
	c.A &= v
	c.setZN(c.A)
}

func (c *CPU) sre(mode addrMode) {
	addr, _ := c.addr(mode)
	v := c.read(addr)
	c.setCarry(v&1 != 0)
	v >>= 1
	c.write(addr, v)
	c.A ^= v
	c.setZN(c.A)
}

func (c *CPU) rra(mode addrMode) {
	addr, _ := c.addr(mode)
	carry := c.carryIn()
	v := c.read(addr)
	c.setCarry(v&1 != 0)
	v = (v >> 1) | (carry << 7)
	c.write(addr, v)
	c.adcValue(v)
}

func (c *CPU) anc(mode addrMode) {
	addr, _ := c.addr(mode)
	c.A &= c.read(addr)
	c.setZN(c.A)
	c.setCarry(c.A&0x80 != 0)
}

func (c *CPU) alr(mode addrMode) {
	addr, _ := c.addr(mode)
	c.A &= c.read(addr)
	c.setCarry(c.A&1 != 0)
	c.A >>= 1
	c.setZN(c.A)
}

func (c *CPU) arr(mode addrMode) {
	addr, _ := c.addr(mode)
	c.A &= c.read(addr)
	carry := c.carryIn()
	c.A = (c.A >> 1) | (carry << 7)
	c.setZN(c.A)
	c.setCarry(c.A&0x40 != 0)
	c.setOverflow(((c.A>>6)^(c.A>>5))&1 != 0)
}

func (c *CPU) axs(mode addrMode) {
	addr, _ := c.addr(mode)
	v := c.read(addr)
	x := c.A & c.X
	c.setCarry(x >= v)
	c.X = x - v
	c.setZN(c.X)
}

// opcodeTable is indexed by opcode byte. Every one of the 256 entries is
// populated: official opcodes, documented unofficial opcodes, and the
// remaining undefined/KIL encodings map to nopOp so Step never needs an
// "unknown opcode" fault path.
var opcodeTable = buildOpcodeTable()

func op(mnemonic string, mode addrMode, length, cycles byte, pageCrossExtra bool, fn func(*CPU, addrMode)) opcode {
	return opcode{mnemonic: mnemonic, length: length, cycles: cycles, mode: mode, pageCrossExtra: pageCrossExtra, exec: fn}
}

func buildOpcodeTable() [256]opcode {
	var t [256]opcode
	nop1 := func() opcode { return op("NOP", modeNone, 1, 2, false, (*CPU).nopOp) }
	for i := range t {
		t[i] = nop1()
	}

	// ADC
	t[0x69] = op("ADC", modeImmediate, 2, 2, false, (*CPU).adc)
	t[0x65] = op("ADC", modeZeroPage, 2, 3, false, (*CPU).adc)
	t[0x75] = op("ADC", modeZeroPageX, 2, 4, false, (*CPU).adc)
	t[0x6D] = op("ADC", modeAbsolute, 3, 4, false, (*CPU).adc)
	t[0x7D] = op("ADC", modeAbsoluteX, 3, 4, true, (*CPU).adc)
	t[0x79] = op("ADC", modeAbsoluteY, 3, 4, true, (*CPU).adc)
	t[0x61] = op("ADC", modeIndirectX, 2, 6, false, (*CPU).adc)
	t[0x71] = op("ADC", modeIndirectY, 2, 5, true, (*CPU).adc)

	// AND
	t[0x29] = op("AND", modeImmediate, 2, 2, false, (*CPU).and)
	t[0x25] = op("AND", modeZeroPage, 2, 3, false, (*CPU).and)
	t[0x35] = op("AND", modeZeroPageX, 2, 4, false, (*CPU).and)
	t[0x2D] = op("AND", modeAbsolute, 3, 4, false, (*CPU).and)
	t[0x3D] = op("AND", modeAbsoluteX, 3, 4, true, (*CPU).and)
	t[0x39] = op("AND", modeAbsoluteY, 3, 4, true, (*CPU).and)
	t[0x21] = op("AND", modeIndirectX, 2, 6, false, (*CPU).and)
	t[0x31] = op("AND", modeIndirectY, 2, 5, true, (*CPU).and)

	// ASL
	t[0x0A] = op("ASL", modeNone, 1, 2, false, (*CPU).asl)
	t[0x06] = op("ASL", modeZeroPage, 2, 5, false, (*CPU).asl)
	t[0x16] = op("ASL", modeZeroPageX, 2, 6, false, (*CPU).asl)
	t[0x0E] = op("ASL", modeAbsolute, 3, 6, false, (*CPU).asl)
	t[0x1E] = op("ASL", modeAbsoluteX, 3, 7, false, (*CPU).asl)

	// branches
	t[0x90] = op("BCC", modeNone, 2, 2, false, (*CPU).bcc)
	t[0xB0] = op("BCS", modeNone, 2, 2, false, (*CPU).bcs)
	t[0xF0] = op("BEQ", modeNone, 2, 2, false, (*CPU).beq)
	t[0xD0] = op("BNE", modeNone, 2, 2, false, (*CPU).bne)
	t[0x30] = op("BMI", modeNone, 2, 2, false, (*CPU).bmi)
	t[0x10] = op("BPL", modeNone, 2, 2, false, (*CPU).bpl)
	t[0x50] = op("BVC", modeNone, 2, 2, false, (*CPU).bvc)
	t[0x70] = op("BVS", modeNone, 2, 2, false, (*CPU).bvs)

	// BIT
	t[0x24] = op("BIT", modeZeroPage, 2, 3, false, (*CPU).bit)
	t[0x2C] = op("BIT", modeAbsolute, 3, 4, false, (*CPU).bit)

	// BRK
	t[0x00] = op("BRK", modeNone, 1, 7, false, (*CPU).brk)

	// flags
	t[0x18] = op("CLC", modeNone, 1, 2, false, (*CPU).clc)
	t[0x38] = op("SEC", modeNone, 1, 2, false, (*CPU).sec)
	t[0x58] = op("CLI", modeNone, 1, 2, false, (*CPU).cli)
	t[0x78] = op("SEI", modeNone, 1, 2, false, (*CPU).sei)
	t[0xB8] = op("CLV", modeNone, 1, 2, false, (*CPU).clv)
	t[0xD8] = op("CLD", modeNone, 1, 2, false, (*CPU).cld)
	t[0xF8] = op("SED", modeNone, 1, 2, false, (*CPU).sed)

	// CMP/CPX/CPY
	t[0xC9] = op("CMP", modeImmediate, 2, 2, false, (*CPU).cmp)
	t[0xC5] = op("CMP", modeZeroPage, 2, 3, false, (*CPU).cmp)
	t[0xD5] = op("CMP", modeZeroPageX, 2, 4, false, (*CPU).cmp)
	t[0xCD] = op("CMP", modeAbsolute, 3, 4, false, (*CPU).cmp)
	t[0xDD] = op("CMP", modeAbsoluteX, 3, 4, true, (*CPU).cmp)
	t[0xD9] = op("CMP", modeAbsoluteY, 3, 4, true, (*CPU).cmp)
	t[0xC1] = op("CMP", modeIndirectX, 2, 6, false, (*CPU).cmp)
	t[0xD1] = op("CMP", modeIndirectY, 2, 5, true, (*CPU).cmp)
	t[0xE0] = op("CPX", modeImmediate, 2, 2, false, (*CPU).cpx)
	t[0xE4] = op("CPX", modeZeroPage, 2, 3, false, (*CPU).cpx)
	t[0xEC] = op("CPX", modeAbsolute, 3, 4, false, (*CPU).cpx)
	t[0xC0] = op("CPY", modeImmediate, 2, 2, false, (*CPU).cpy)
	t[0xC4] = op("CPY", modeZeroPage, 2, 3, false, (*CPU).cpy)
	t[0xCC] = op("CPY", modeAbsolute, 3, 4, false, (*CPU).cpy)

	// DEC/INC memory
	t[0xC6] = op("DEC", modeZeroPage, 2, 5, false, (*CPU).dec)
	t[0xD6] = op("DEC", modeZeroPageX, 2, 6, false, (*CPU).dec)
	t[0xCE] = op("DEC", modeAbsolute, 3, 6, false, (*CPU).dec)
	t[0xDE] = op("DEC", modeAbsoluteX, 3, 7, false, (*CPU).dec)
	t[0xE6] = op("INC", modeZeroPage, 2, 5, false, (*CPU).inc)
	t[0xF6] = op("INC", modeZeroPageX, 2, 6, false, (*CPU).inc)
	t[0xEE] = op("INC", modeAbsolute, 3, 6, false, (*CPU).inc)
	t[0xFE] = op("INC", modeAbsoluteX, 3, 7, false, (*CPU).inc)

	// register inc/dec
	t[0xE8] = op("INX", modeNone, 1, 2, false, (*CPU).inx)
	t[0xC8] = op("INY", modeNone, 1, 2, false, (*CPU).iny)
	t[0xCA] = op("DEX", modeNone, 1, 2, false, (*CPU).dex)
	t[0x88] = op("DEY", modeNone, 1, 2, false, (*CPU).dey)

	// EOR
	t[0x49] = op("EOR", modeImmediate, 2, 2, false, (*CPU).eor)
	t[0x45] = op("EOR", modeZeroPage, 2, 3, false, (*CPU).eor)
	t[0x55] = op("EOR", modeZeroPageX, 2, 4, false, (*CPU).eor)
	t[0x4D] = op("EOR", modeAbsolute, 3, 4, false, (*CPU).eor)
	t[0x5D] = op("EOR", modeAbsoluteX, 3, 4, true, (*CPU).eor)
	t[0x59] = op("EOR", modeAbsoluteY, 3, 4, true, (*CPU).eor)
	t[0x41] = op("EOR", modeIndirectX, 2, 6, false, (*CPU).eor)
	t[0x51] = op("EOR", modeIndirectY, 2, 5, true, (*CPU).eor)

	// JMP/JSR/RTS/RTI
	t[0x4C] = op("JMP", modeAbsolute, 3, 3, false, (*CPU).jmp)
	t[0x6C] = op("JMP", modeNone, 3, 5, false, (*CPU).jmp)
	t[0x20] = op("JSR", modeAbsolute, 3, 6, false, (*CPU).jsr)
	t[0x60] = op("RTS", modeNone, 1, 6, false, (*CPU).rts)
	t[0x40] = op("RTI", modeNone, 1, 6, false, (*CPU).rti)

	// LDA/LDX/LDY
	t[0xA9] = op("LDA", modeImmediate, 2, 2, false, (*CPU).lda)
	t[0xA5] = op("LDA", modeZeroPage, 2, 3, false, (*CPU).lda)
	t[0xB5] = op("LDA", modeZeroPageX, 2, 4, false, (*CPU).lda)
	t[0xAD] = op("LDA", modeAbsolute, 3, 4, false, (*CPU).lda)
	t[0xBD] = op("LDA", modeAbsoluteX, 3, 4, true, (*CPU).lda)
	t[0xB9] = op("LDA", modeAbsoluteY, 3, 4, true, (*CPU).lda)
	t[0xA1] = op("LDA", modeIndirectX, 2, 6, false, (*CPU).lda)
	t[0xB1] = op("LDA", modeIndirectY, 2, 5, true, (*CPU).lda)
	t[0xA2] = op("LDX", modeImmediate, 2, 2, false, (*CPU).ldx)
	t[0xA6] = op("LDX", modeZeroPage, 2, 3, false, (*CPU).ldx)
	t[0xB6] = op("LDX", modeZeroPageY, 2, 4, false, (*CPU).ldx)
	t[0xAE] = op("LDX", modeAbsolute, 3, 4, false, (*CPU).ldx)
	t[0xBE] = op("LDX", modeAbsoluteY, 3, 4, true, (*CPU).ldx)
	t[0xA0] = op("LDY", modeImmediate, 2, 2, false, (*CPU).ldy)
	t[0xA4] = op("LDY", modeZeroPage, 2, 3, false, (*CPU).ldy)
	t[0xB4] = op("LDY", modeZeroPageX, 2, 4, false, (*CPU).ldy)
	t[0xAC] = op("LDY", modeAbsolute, 3, 4, false, (*CPU).ldy)
	t[0xBC] = op("LDY", modeAbsoluteX, 3, 4, true, (*CPU).ldy)

	// LSR
	t[0x4A] = op("LSR", modeNone, 1, 2, false, (*CPU).lsr)
	t[0x46] = op("LSR", modeZeroPage, 2, 5, false, (*CPU).lsr)
	t[0x56] = op("LSR", modeZeroPageX, 2, 6, false, (*CPU).lsr)
	t[0x4E] = op("LSR", modeAbsolute, 3, 6, false, (*CPU).lsr)
	t[0x5E] = op("LSR", modeAbsoluteX, 3, 7, false, (*CPU).lsr)

	// NOP (official)
	t[0xEA] = op("NOP", modeNone, 1, 2, false, (*CPU).nopOp)

	// ORA
	t[0x09] = op("ORA", modeImmediate, 2, 2, false, (*CPU).ora)
	t[0x05] = op("ORA", modeZeroPage, 2, 3, false, (*CPU).ora)
	t[0x15] = op("ORA", modeZeroPageX, 2, 4, false, (*CPU).ora)
	t[0x0D] = op("ORA", modeAbsolute, 3, 4, false, (*CPU).ora)
	t[0x1D] = op("ORA", modeAbsoluteX, 3, 4, true, (*CPU).ora)
	t[0x19] = op("ORA", modeAbsoluteY, 3, 4, true, (*CPU).ora)
	t[0x01] = op("ORA", modeIndirectX, 2, 6, false, (*CPU).ora)
	t[0x11] = op("ORA", modeIndirectY, 2, 5, true, (*CPU).ora)

	// stack
	t[0x48] = op("PHA", modeNone, 1, 3, false, (*CPU).pha)
	t[0x68] = op("PLA", modeNone, 1, 4, false, (*CPU).pla)
	t[0x08] = op("PHP", modeNone, 1, 3, false, (*CPU).php)
	t[0x28] = op("PLP", modeNone, 1, 4, false, (*CPU).plp)

	// ROL/ROR
	t[0x2A] = op("ROL", modeNone, 1, 2, false, (*CPU).rol)
	t[0x26] = op("ROL", modeZeroPage, 2, 5, false, (*CPU).rol)
	t[0x36] = op("ROL", modeZeroPageX, 2, 6, false, (*CPU).rol)
	t[0x2E] = op("ROL", modeAbsolute, 3, 6, false, (*CPU).rol)
	t[0x3E] = op("ROL", modeAbsoluteX, 3, 7, false, (*CPU).rol)
	t[0x6A] = op("ROR", modeNone, 1, 2, false, (*CPU).ror)
	t[0x66] = op("ROR", modeZeroPage, 2, 5, false, (*CPU).ror)
	t[0x76] = op("ROR", modeZeroPageX, 2, 6, false, (*CPU).ror)
	t[0x6E] = op("ROR", modeAbsolute, 3, 6, false, (*CPU).ror)
	t[0x7E] = op("ROR", modeAbsoluteX, 3, 7, false, (*CPU).ror)

	// SBC (plus the unofficial doubled encoding $EB)
	t[0xE9] = op("SBC", modeImmediate, 2, 2, false, (*CPU).sbc)
	t[0xEB] = op("SBC", modeImmediate, 2, 2, false, (*CPU).sbc)
	t[0xE5] = op("SBC", modeZeroPage, 2, 3, false, (*CPU).sbc)
	t[0xF5] = op("SBC", modeZeroPageX, 2, 4, false, (*CPU).sbc)
	t[0xED] = op("SBC", modeAbsolute, 3, 4, false, (*CPU).sbc)
	t[0xFD] = op("SBC", modeAbsoluteX, 3, 4, true, (*CPU).sbc)
	t[0xF9] = op("SBC", modeAbsoluteY, 3, 4, true, (*CPU).sbc)
	t[0xE1] = op("SBC", modeIndirectX, 2, 6, false, (*CPU).sbc)
	t[0xF1] = op("SBC", modeIndirectY, 2, 5, true, (*CPU).sbc)

	// STA/STX/STY (never get the page-cross bonus)
	t[0x85] = op("STA", modeZeroPage, 2, 3, false, (*CPU).sta)
	t[0x95] = op("STA", modeZeroPageX, 2, 4, false, (*CPU).sta)
	t[0x8D] = op("STA", modeAbsolute, 3, 4, false, (*CPU).sta)
	t[0x9D] = op("STA", modeAbsoluteX, 3, 5, false, (*CPU).sta)
	t[0x99] = op("STA", modeAbsoluteY, 3, 5, false, (*CPU).sta)
	t[0x81] = op("STA", modeIndirectX, 2, 6, false, (*CPU).sta)
	t[0x91] = op("STA", modeIndirectY, 2, 6, false, (*CPU).sta)
	t[0x86] = op("STX", modeZeroPage, 2, 3, false, (*CPU).stx)
	t[0x96] = op("STX", modeZeroPageY, 2, 4, false, (*CPU).stx)
	t[0x8E] = op("STX", modeAbsolute, 3, 4, false, (*CPU).stx)
	t[0x84] = op("STY", modeZeroPage, 2, 3, false, (*CPU).sty)
	t[0x94] = op("STY", modeZeroPageX, 2, 4, false, (*CPU).sty)
	t[0x8C] = op("STY", modeAbsolute, 3, 4, false, (*CPU).sty)

	// transfers
	t[0xAA] = op("TAX", modeNone, 1, 2, false, (*CPU).tax)
	t[0xA8] = op("TAY", modeNone, 1, 2, false, (*CPU).tay)
	t[0x8A] = op("TXA", modeNone, 1, 2, false, (*CPU).txa)
	t[0x98] = op("TYA", modeNone, 1, 2, false, (*CPU).tya)
	t[0xBA] = op("TSX", modeNone, 1, 2, false, (*CPU).tsx)
	t[0x9A] = op("TXS", modeNone, 1, 2, false, (*CPU).txs)

	fillUnofficial(&t)
	return t
}

func fillUnofficial(t *[256]opcode) {
	// LAX
	t[0xA7] = op("LAX", modeZeroPage, 2, 3, false, (*CPU).lax)
	t[0xB7] = op("LAX", modeZeroPageY, 2, 4, false, (*CPU).lax)
	t[0xAF] = op("LAX", modeAbsolute, 3, 4, false, (*CPU).lax)
	t[0xBF] = op("LAX", modeAbsoluteY, 3, 4, true, (*CPU).lax)
	t[0xA3] = op("LAX", modeIndirectX, 2, 6, false, (*CPU).lax)
	t[0xB3] = op("LAX", modeIndirectY, 2, 5, true, (*CPU).lax)

	// SAX
	t[0x87] = op("SAX", modeZeroPage, 2, 3, false, (*CPU).sax)
	t[0x97] = op("SAX", modeZeroPageY, 2, 4, false, (*CPU).sax)
	t[0x8F] = op("SAX", modeAbsolute, 3, 4, false, (*CPU).sax)
	t[0x83] = op("SAX", modeIndirectX, 2, 6, false, (*CPU).sax)

	// DCP
	t[0xC7] = op("DCP", modeZeroPage, 2, 5, false, (*CPU).dcp)
	t[0xD7] = op("DCP", modeZeroPageX, 2, 6, false, (*CPU).dcp)
	t[0xCF] = op("DCP", modeAbsolute, 3, 6, false, (*CPU).dcp)
	t[0xDF] = op("DCP", modeAbsoluteX, 3, 7, false, (*CPU).dcp)
	t[0xDB] = op("DCP", modeAbsoluteY, 3, 7, false, (*CPU).dcp)
	t[0xC3] = op("DCP", modeIndirectX, 2, 8, false, (*CPU).dcp)
	t[0xD3] = op("DCP", modeIndirectY, 2, 8, false, (*CPU).dcp)

	// ISB/ISC
	t[0xE7] = op("ISB", modeZeroPage, 2, 5, false, (*CPU).isb)
	t[0xF7] = op("ISB", modeZeroPageX, 2, 6, false, (*CPU).isb)
	t[0xEF] = op("ISB", modeAbsolute, 3, 6, false, (*CPU).isb)
	t[0xFF] = op("ISB", modeAbsoluteX, 3, 7, false, (*CPU).isb)
	t[0xFB] = op("ISB", modeAbsoluteY, 3, 7, false, (*CPU).isb)
	t[0xE3] = op("ISB", modeIndirectX, 2, 8, false, (*CPU).isb)
	t[0xF3] = op("ISB", modeIndirectY, 2, 8, false, (*CPU).isb)

	// SLO
	t[0x07] = op("SLO", modeZeroPage, 2, 5, false, (*CPU).slo)
	t[0x17] = op("SLO", modeZeroPageX, 2, 6, false, (*CPU).slo)
	t[0x0F] = op("SLO", modeAbsolute, 3, 6, false, (*CPU).slo)
	t[0x1F] = op("SLO", modeAbsoluteX, 3, 7, false, (*CPU).slo)
	t[0x1B] = op("SLO", modeAbsoluteY, 3, 7, false, (*CPU).slo)
	t[0x03] = op("SLO", modeIndirectX, 2, 8, false, (*CPU).slo)
	t[0x13] = op("SLO", modeIndirectY, 2, 8, false, (*CPU).slo)

	// RLA
	t[0x27] = op("RLA", modeZeroPage, 2, 5, false, (*CPU).rla)
	t[0x37] = op("RLA", modeZeroPageX, 2, 6, false, (*CPU).rla)
	t[0x2F] = op("RLA", modeAbsolute, 3, 6, false, (*CPU).rla)
	t[0x3F] = op("RLA", modeAbsoluteX, 3, 7, false, (*CPU).rla)
	t[0x3B] = op("RLA", modeAbsoluteY, 3, 7, false, (*CPU).rla)
	t[0x23] = op("RLA", modeIndirectX, 2, 8, false, (*CPU).rla)
	t[0x33] = op("RLA", modeIndirectY, 2, 8, false, (*CPU).rla)

	// SRE
	t[0x47] = op("SRE", modeZeroPage, 2, 5, false, (*CPU).sre)
	t[0x57] = op("SRE", modeZeroPageX, 2, 6, false, (*CPU).sre)
	t[0x4F] = op("SRE", modeAbsolute, 3, 6, false, (*CPU).sre)
	t[0x5F] = op("SRE", modeAbsoluteX, 3, 7, false, (*CPU).sre)
	t[0x5B] = op("SRE", modeAbsoluteY, 3, 7, false, (*CPU).sre)
	t[0x43] = op("SRE", modeIndirectX, 2, 8, false, (*CPU).sre)
	t[0x53] = op("SRE", modeIndirectY, 2, 8, false, (*CPU).sre)

	// RRA
	t[0x67] = op("RRA", modeZeroPage, 2, 5, false, (*CPU).rra)
	t[0x77] = op("RRA", modeZeroPageX, 2, 6, false, (*CPU).rra)
	t[0x6F] = op("RRA", modeAbsolute, 3, 6, false, (*CPU).rra)
	t[0x7F] = op("RRA", modeAbsoluteX, 3, 7, false, (*CPU).rra)
	t[0x7B] = op("RRA", modeAbsoluteY, 3, 7, false, (*CPU).rra)
	t[0x63] = op("RRA", modeIndirectX, 2, 8, false, (*CPU).rra)
	t[0x73] = op("RRA", modeIndirectY, 2, 8, false, (*CPU).rra)

	// immediate-only combos
	t[0x0B] = op("ANC", modeImmediate, 2, 2, false, (*CPU).anc)
	t[0x2B] = op("ANC", modeImmediate, 2, 2, false, (*CPU).anc)
	t[0x4B] = op("ALR", modeImmediate, 2, 2, false, (*CPU).alr)
	t[0x6B] = op("ARR", modeImmediate, 2, 2, false, (*CPU).arr)
	t[0xCB] = op("AXS", modeImmediate, 2, 2, false, (*CPU).axs)

	// multi-byte unofficial NOPs ("DOP"/"TOP"); all side-effect-free
	// beyond the memory read nopOp already performs.
	for _, op8 := range []byte{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		t[op8] = op("NOP", modeNone, 1, 2, false, (*CPU).nopOp)
	}
	for _, op8 := range []byte{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		t[op8] = op("NOP", modeImmediate, 2, 2, false, (*CPU).nopOp)
	}
	for _, op8 := range []byte{0x04, 0x44, 0x64} {
		t[op8] = op("NOP", modeZeroPage, 2, 3, false, (*CPU).nopOp)
	}
	for _, op8 := range []byte{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		t[op8] = op("NOP", modeZeroPageX, 2, 4, false, (*CPU).nopOp)
	}
	t[0x0C] = op("NOP", modeAbsolute, 3, 4, false, (*CPU).nopOp)
	for _, op8 := range []byte{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		t[op8] = op("NOP", modeAbsoluteX, 3, 4, true, (*CPU).nopOp)
	}

	// single-byte KIL/JAM encodings: treated as NOP rather than halting
	// the CPU, a deliberate simplification for a simulator that should
	// never need to recover from a frozen bus.
	for _, op8 := range []byte{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2} {
		t[op8] = op("KIL", modeNone, 1, 2, false, (*CPU).nopOp)
	}
}
