package nes

import (
	"fmt"

	"github.com/golang/glog"
)

// Bus is the CPU's view of the console's address space. It owns work
// RAM, dispatches to the PPU and controllers, runs OAM DMA, clocks the
// PPU 3x per CPU cycle, and is the single point that turns a fatal
// condition (writing ROM, reading a write-only PPU register) into an
// error the run loop can surface.
//
// Reference for the address map: https://www.nesdev.org/wiki/CPU_memory_map
type Bus struct {
	wram        *RAM
	ppu         *PPU
	apu         *APU
	mapper      Mapper
	controller1 *Controller
	controller2 *Controller

	fault error

	onFrame func(*PPU, *Controller, *Controller)
}

// NewBus wires a cartridge's mapper, a fresh PPU and two controllers
// together. onFrame, if non-nil, is invoked exactly once per vertical
// blank, on the rising edge of the NMI latch; it is the host's hook for
// pulling a rendered frame and feeding back input.
func NewBus(cart *Cartridge, onFrame func(*PPU, *Controller, *Controller)) (*Bus, error) {
	mapper, err := NewMapper(cart)
	if err != nil {
		return nil, err
	}
	ppu, err := NewPPU(mapper, cart.MirrorMode())
	if err != nil {
		return nil, err
	}
	return &Bus{
		wram:        NewRAM(),
		ppu:         ppu,
		apu:         NewAPU(),
		mapper:      mapper,
		controller1: NewController(),
		controller2: NewController(),
		onFrame:     onFrame,
	}, nil
}

// NewTestBus builds a bus over a blank 32 KiB mapper-0 cartridge with
// horizontal mirroring, for CPU unit tests that need a writable PRG
// area (see CPU.LoadProgram).
func NewTestBus() *Bus {
	cart := &Cartridge{
		prgROM:    make([]byte, 0x8000),
		chrROM:    make([]byte, 0x2000),
		mapper:    0,
		mirroring: MirrorHorizontal,
	}
	b, err := NewBus(cart, nil)
	if err != nil {
		panic(err) // unreachable: mapper 0 / horizontal mirroring always succeed
	}
	return b
}

func (b *Bus) loadTestProgram(addr uint16, program []byte) {
	m, ok := b.mapper.(*mapper0)
	if !ok {
		panic("nes: LoadProgram requires a bus built with NewTestBus")
	}
	copy(m.prgROM[addr-0x8000:], program)
}

// Fault returns the first fatal error raised by Read/Write, if any.
func (b *Bus) Fault() error { return b.fault }

func (b *Bus) fail(err error) {
	if b.fault == nil {
		b.fault = err
	}
}

// Controller1 and Controller2 expose the input-side controllers for the
// host shell to set button state on.
func (b *Bus) Controller1() *Controller { return b.controller1 }
func (b *Bus) Controller2() *Controller { return b.controller2 }

// APU exposes the audio stub for the host shell to wire an output
// stream into.
func (b *Bus) APU() *APU { return b.apu }

// Read dispatches a CPU read. Reading a write-only PPU register ($2000,
// $2001, $2003, $2005, $2006) is a fatal condition; spec.md treats this
// as a programming-model violation worth stopping on rather than
// returning a meaningless value.
func (b *Bus) Read(address uint16) byte {
	switch {
	case address < 0x2000:
		return b.wram.read(address & 0x07FF)
	case address < 0x4000:
		switch address & 0x2007 {
		case 0x2002:
			return b.ppu.ReadSTATUS()
		case 0x2004:
			return b.ppu.ReadOAMDATA()
		case 0x2007:
			return b.ppu.ReadDATA()
		default:
			b.fail(fmt.Errorf("nes: fatal read of write-only PPU register at 0x%04x", address))
			return 0
		}
	case address == 0x4016:
		return b.controller1.read()
	case address == 0x4017:
		return b.controller2.read()
	case address < 0x4020:
		glog.V(2).Infof("nes: ignoring read of APU/IO register at 0x%04x", address)
		return 0
	case address < 0x8000:
		glog.V(2).Infof("nes: ignoring read of unmapped cartridge space at 0x%04x", address)
		return 0
	default:
		return b.mapper.ReadPRG(address)
	}
}

// Write dispatches a CPU write. Writing program ROM is fatal.
func (b *Bus) Write(address uint16, data byte) {
	switch {
	case address < 0x2000:
		b.wram.write(address&0x07FF, data)
	case address < 0x4000:
		switch address & 0x2007 {
		case 0x2000:
			b.ppu.WriteCTRL(data)
		case 0x2001:
			b.ppu.WriteMASK(data)
		case 0x2003:
			b.ppu.WriteOAMADDR(data)
		case 0x2004:
			b.ppu.WriteOAMDATA(data)
		case 0x2005:
			b.ppu.WriteSCROLL(data)
		case 0x2006:
			b.ppu.WriteADDR(data)
		case 0x2007:
			b.ppu.WriteDATA(data)
		}
	case address == 0x4014:
		b.oamDMA(data)
	case address == 0x4016:
		b.controller1.write(data)
		b.controller2.write(data)
	case address < 0x4020:
		glog.V(2).Infof("nes: ignoring write of APU/IO register at 0x%04x = 0x%02x", address, data)
	case address < 0x8000:
		glog.V(2).Infof("nes: ignoring write of unmapped cartridge space at 0x%04x = 0x%02x", address, data)
	default:
		if err := b.mapper.WritePRG(address, data); err != nil {
			b.fail(fmt.Errorf("nes: %w", err))
		}
	}
}

// oamDMA copies 256 bytes from page (data<<8) into OAM, as triggered by
// a $4014 write.
func (b *Bus) oamDMA(page byte) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.ppu.WriteOAMByte(b.Read(base + uint16(i)))
	}
}

// Tick clocks the PPU 3x per CPU cycle and fires the frame callback on
// the rising edge of the NMI latch (was-none, now-some).
func (b *Bus) Tick(cpuCycles int) {
	before := b.ppu.nmiPending
	b.ppu.Tick(cpuCycles * 3)
	for i := 0; i < cpuCycles; i++ {
		b.apu.Step()
	}
	after := b.ppu.nmiPending
	if !before && after && b.onFrame != nil {
		b.onFrame(b.ppu, b.controller1, b.controller2)
	}
}

// TakeNMI reports and consumes a pending NMI; the CPU polls this once
// before every fetch.
func (b *Bus) TakeNMI() bool {
	if b.ppu.nmiPending {
		b.ppu.nmiPending = false
		return true
	}
	return false
}
