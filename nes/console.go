package nes

// Console wires a cartridge's cpu, bus and PPU into the single unit the
// host shell drives: load a ROM, reset, and run, pulling a rendered
// frame and pushing controller input through the onFrame callback wired
// at construction.
type Console struct {
	Cart *Cartridge
	Bus  *Bus
	CPU  *CPU
}

// NewConsole parses an iNES image and builds the console around it.
// onFrame, if non-nil, is invoked once per vertical blank with the PPU
// (for Render) and both controllers (for SetButton); it is the host
// shell's hook, not part of the emulation model itself.
func NewConsole(rom []byte, onFrame func(*PPU, *Controller, *Controller)) (*Console, error) {
	cart, err := NewCartridge(rom)
	if err != nil {
		return nil, err
	}
	bus, err := NewBus(cart, onFrame)
	if err != nil {
		return nil, err
	}
	return &Console{
		Cart: cart,
		Bus:  bus,
		CPU:  NewCPU(bus),
	}, nil
}

// Reset puts the CPU back at the reset vector. Call this once before
// the first Run/Step.
func (c *Console) Reset() {
	c.CPU.Reset()
}

// Run drives the CPU until BRK halts it or a fatal bus error occurs.
// A ROM that never executes BRK runs forever, which is the common case;
// the host shell is expected to call Run in its own goroutine and read
// frames via the onFrame callback.
func (c *Console) Run() error {
	return c.CPU.Run()
}

// Step executes a single instruction (or NMI service) and reports the
// cycles it consumed.
func (c *Console) Step() (int, error) {
	cycles, _, err := c.CPU.Step(nil)
	return cycles, err
}

// Controller1 and Controller2 expose the two input ports for the host
// shell to set buttons on directly, outside the onFrame callback.
func (c *Console) Controller1() *Controller { return c.Bus.Controller1() }
func (c *Console) Controller2() *Controller { return c.Bus.Controller2() }
