package nes

import (
	"bytes"
	"strings"
	"testing"
)

func TestTracerEmitsOpcodeBytesAndMnemonic(t *testing.T) {
	c := newTestCPU()
	c.LoadProgram(0x8000, []byte{0xA9, 0x05, 0x00}) // LDA #$05; BRK
	var buf bytes.Buffer
	tr := NewTracer(&buf)

	cycles, _, err := c.Step(tr.Step)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	tr.Advance(cycles)

	line := buf.String()
	if !strings.HasPrefix(line, "8000  ") {
		t.Fatalf("trace line missing PC prefix: %q", line)
	}
	if !strings.Contains(line, "A9 05") {
		t.Errorf("trace line missing opcode+operand bytes: %q", line)
	}
	if !strings.Contains(line, "LDA") {
		t.Errorf("trace line missing disassembled mnemonic: %q", line)
	}
	if !strings.Contains(line, "A:00 X:00 Y:00 P:24 SP:FD CYC:0") {
		t.Errorf("trace line missing pre-execution register snapshot: %q", line)
	}
}

func TestTracerAdvanceAccumulatesCycles(t *testing.T) {
	c := newTestCPU()
	c.LoadProgram(0x8000, []byte{0xEA, 0xEA, 0x00}) // NOP; NOP; BRK
	var buf bytes.Buffer
	tr := NewTracer(&buf)

	for i := 0; i < 2; i++ {
		cycles, _, err := c.Step(tr.Step)
		if err != nil {
			t.Fatalf("Step %d: %v", i, err)
		}
		tr.Advance(cycles)
	}
	if !strings.Contains(buf.String(), "CYC:2") {
		t.Errorf("second NOP's trace line should log CYC:2 (after one 2-cycle NOP), got %q", buf.String())
	}
}
