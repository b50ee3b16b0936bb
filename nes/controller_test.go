package nes

import "testing"

func TestControllerReadOrderAndLatch(t *testing.T) {
	c := NewController()
	c.SetButton(ButtonA, true)
	c.SetButton(ButtonSelect, true)

	c.write(1) // strobe high: every read reports button A
	for i := 0; i < 3; i++ {
		if got := c.read(); got != 1 {
			t.Fatalf("read %d while strobed: got=%d, want=1 (button A)", i, got)
		}
	}

	c.write(0) // strobe low: shift register now advances
	want := []byte{1, 0, 1, 0, 0, 0, 0, 0} // A, B, Select, Start, Up, Down, Left, Right
	for i, w := range want {
		if got := c.read(); got != w {
			t.Fatalf("read index %d: got=%d, want=%d", i, got, w)
		}
	}
	if got := c.read(); got != 1 {
		t.Errorf("read past index 7: got=%d, want=1", got)
	}
}

func TestControllerStrobeRisingEdgeResetsIndex(t *testing.T) {
	c := NewController()
	c.SetButton(ButtonRight, true)
	c.write(0)
	for i := 0; i < 7; i++ {
		c.read()
	}
	c.write(1)
	c.write(0)
	if got := c.read(); got != 0 {
		t.Fatalf("read after strobe rising edge: got=%d, want=0 (button A, unset)", got)
	}
}
