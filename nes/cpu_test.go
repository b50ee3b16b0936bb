package nes

import "testing"

func newTestCPU() *CPU {
	return NewCPU(NewTestBus())
}

func TestLDAImmediateSetsFlags(t *testing.T) {
	cases := []struct {
		name      string
		operand   byte
		wantZ     bool
		wantN     bool
	}{
		{"positive", 0x42, false, false},
		{"zero", 0x00, true, false},
		{"negative", 0x80, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCPU()
			c.LoadProgram(0x8000, []byte{0xA9, tc.operand}) // LDA #operand
			if _, _, err := c.Step(nil); err != nil {
				t.Fatalf("Step: %v", err)
			}
			if c.A != tc.operand {
				t.Errorf("A = 0x%02x, want 0x%02x", c.A, tc.operand)
			}
			if got := c.P&flagZ != 0; got != tc.wantZ {
				t.Errorf("Z = %v, want %v", got, tc.wantZ)
			}
			if got := c.P&flagN != 0; got != tc.wantN {
				t.Errorf("N = %v, want %v", got, tc.wantN)
			}
		})
	}
}

func TestINXWraps(t *testing.T) {
	c := newTestCPU()
	c.LoadProgram(0x8000, []byte{0xE8}) // INX
	c.X = 0xFF
	if _, _, err := c.Step(nil); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.X != 0x00 {
		t.Fatalf("X = 0x%02x, want 0x00", c.X)
	}
	if c.P&flagZ == 0 {
		t.Error("Z flag not set after wraparound to zero")
	}
}

func TestJMPAbsolute(t *testing.T) {
	c := newTestCPU()
	// JMP $8007, loaded at $8000 so the operand bytes land correctly.
	c.LoadProgram(0x8000, []byte{0x4C, 0x07, 0x80})
	if _, _, err := c.Step(nil); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x8007 {
		t.Fatalf("PC = 0x%04x, want 0x8007", c.PC)
	}
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	c := newTestCPU()
	// Lay the whole page out in one LoadProgram call: writes to ROM
	// elsewhere on the bus are fatal, so the pointer bytes at $80FF and
	// the wrapped high byte at $8000 both have to go in up front.
	page := make([]byte, 0x100)
	page[0x10] = 0x6C // JMP ($80FF), instruction itself at $8010
	page[0x11] = 0xFF
	page[0x12] = 0x80
	page[0xFF] = 0x34 // low byte of the target, at $80FF
	page[0x00] = 0x12 // hardware bug: high byte comes from $8000, not $8100
	c.LoadProgram(0x8000, page)
	c.PC = 0x8010
	if _, _, err := c.Step(nil); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x1234 {
		t.Fatalf("PC = 0x%04x, want 0x1234", c.PC)
	}
}

func TestBNEBackwardsBranch(t *testing.T) {
	c := newTestCPU()
	// LDX #3; loop: DEX; BNE loop (offset -3); BRK
	c.LoadProgram(0x8000, []byte{0xA2, 0x03, 0xCA, 0xD0, 0xFD, 0x00})
	for i := 0; i < 10; i++ {
		_, halted, err := c.Step(nil)
		if err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
		if halted {
			break
		}
	}
	if c.X != 0 {
		t.Fatalf("X = 0x%02x, want 0x00 after loop", c.X)
	}
	if !c.halted {
		t.Fatal("BRK did not halt the CPU")
	}
}

// A taken branch with offset $FF (-1) lands exactly on the branch
// instruction's own operand byte, which used to alias the "did this
// instruction write PC" check (PC == beforePC) and silently behave as
// if the branch had not been taken.
func TestBranchTakenWithOffsetMinusOneDoesNotAliasNotTaken(t *testing.T) {
	c := newTestCPU()
	c.P |= flagZ // BEQ condition true
	c.LoadProgram(0x8000, []byte{0xF0, 0xFF}) // BEQ -1, at $8000-$8001
	if _, _, err := c.Step(nil); err != nil {
		t.Fatalf("Step: %v", err)
	}
	// Relative to the next instruction's address ($8002), -1 lands on
	// $8001 (the branch's own operand byte) -- the same address PC held
	// right before the branch ran, which is exactly what used to alias
	// the "instruction didn't touch PC" check.
	if c.PC != 0x8001 {
		t.Fatalf("PC = 0x%04x, want 0x8001", c.PC)
	}
}

func TestBIT(t *testing.T) {
	c := newTestCPU()
	c.A = 0xFF
	c.bus.Write(0x0010, 0xC0) // N and V bits set, rest clear
	c.LoadProgram(0x8000, []byte{0x24, 0x10}) // BIT $10
	if _, _, err := c.Step(nil); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0xFF {
		t.Errorf("A mutated by BIT: got 0x%02x", c.A)
	}
	if c.P&flagN == 0 {
		t.Error("N not set from memory bit 7")
	}
	if c.P&flagV == 0 {
		t.Error("V not set from memory bit 6")
	}
	if c.P&flagZ != 0 {
		t.Error("Z incorrectly set: A&M is nonzero")
	}
}

func TestADCCarryAndOverflow(t *testing.T) {
	c := newTestCPU()
	c.A = 0x50
	c.LoadProgram(0x8000, []byte{0x69, 0x50}) // ADC #$50
	if _, _, err := c.Step(nil); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0xA0 {
		t.Fatalf("A = 0x%02x, want 0xa0", c.A)
	}
	if c.P&flagV == 0 {
		t.Error("V not set: signed overflow 0x50+0x50")
	}
	if c.P&flagC != 0 {
		t.Error("C incorrectly set: no unsigned carry out")
	}
}

func TestSBCBorrow(t *testing.T) {
	c := newTestCPU()
	c.A = 0x00
	c.P |= flagC // no borrow going in
	c.LoadProgram(0x8000, []byte{0xE9, 0x01}) // SBC #$01
	if _, _, err := c.Step(nil); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0xFF {
		t.Fatalf("A = 0x%02x, want 0xff", c.A)
	}
	if c.P&flagC != 0 {
		t.Error("C incorrectly set: borrow occurred")
	}
}

func TestPHAandPLARoundTrip(t *testing.T) {
	c := newTestCPU()
	c.A = 0x77
	c.LoadProgram(0x8000, []byte{0x48, 0xA9, 0x00, 0x68}) // PHA; LDA #0; PLA
	for i := 0; i < 3; i++ {
		if _, _, err := c.Step(nil); err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
	}
	if c.A != 0x77 {
		t.Fatalf("A = 0x%02x, want 0x77 after PLA", c.A)
	}
}

func TestBRKHalts(t *testing.T) {
	c := newTestCPU()
	c.LoadProgram(0x8000, []byte{0x00}) // BRK
	_, halted, err := c.Step(nil)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !halted {
		t.Fatal("BRK did not report halted")
	}
}

func TestLAXUnofficialLoadsAAndX(t *testing.T) {
	c := newTestCPU()
	c.bus.Write(0x0010, 0x99)
	c.LoadProgram(0x8000, []byte{0xA7, 0x10}) // LAX $10 (zero page)
	if _, _, err := c.Step(nil); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0x99 || c.X != 0x99 {
		t.Fatalf("A=0x%02x X=0x%02x, want both 0x99", c.A, c.X)
	}
}

func TestZeroPageXWrapsWithinPage(t *testing.T) {
	c := newTestCPU()
	c.X = 0xFF
	c.bus.Write(0x007F, 0x55) // 0x80 + 0xFF wraps to 0x7F, not 0x017F
	c.LoadProgram(0x8000, []byte{0xB5, 0x80}) // LDA $80,X
	if _, _, err := c.Step(nil); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.A != 0x55 {
		t.Fatalf("A = 0x%02x, want 0x55 (zero-page-X must wrap within page 0)", c.A)
	}
}

func TestFatalROMWriteSurfacesAsError(t *testing.T) {
	c := newTestCPU()
	c.LoadProgram(0x8000, []byte{0x8D, 0x00, 0x90}) // STA $9000 (program ROM)
	_, _, err := c.Step(nil)
	if err == nil {
		t.Fatal("want error writing program ROM, got nil")
	}
}
