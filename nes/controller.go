package nes

// Reference:
//   https://www.nesdev.org/wiki/Controller_reading
//   https://www.nesdev.org/wiki/Controller_reading_code

// Button identifies one of the eight buttons on a standard controller.
// Bit layout LSB->MSB: A, B, Select, Start, Up, Down, Left, Right.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Controller is a strobe/shift-register standard controller: an 8-bit
// button mask, a strobe latch and a read index in [0,8].
type Controller struct {
	buttons [8]bool
	index   byte
	strobe  bool
}

// NewController creates a controller with no buttons pressed.
func NewController() *Controller {
	return &Controller{}
}

// SetButton sets or clears a single button. Host code calls this
// asynchronously; the CPU observes the change no earlier than the next
// $4016/$4017 read (spec.md §5).
func (c *Controller) SetButton(b Button, pressed bool) {
	c.buttons[b] = pressed
}

// read serves a $4016/$4017 read. When strobe is high the index never
// advances, so every read reports button A. Reads past index 7 return 1.
func (c *Controller) read() byte {
	if c.index > 7 {
		return 1
	}
	var ret byte
	if c.buttons[c.index] {
		ret = 1
	}
	if !c.strobe {
		c.index++
	}
	return ret
}

// write latches the strobe bit; a rising edge resets the read index.
func (c *Controller) write(data byte) {
	c.strobe = data&1 != 0
	if c.strobe {
		c.index = 0
	}
}
