package nes

import "fmt"

// mapper0 implements NROM: fixed 16 or 32 KiB PRG, fixed 8 KiB CHR (RAM
// when the cartridge ships no CHR-ROM), no bank switching.
//
// Reference: https://www.nesdev.org/wiki/NROM
type mapper0 struct {
	prgROM []byte
	chr    []byte // CHR-ROM if the cartridge supplied one, else 8 KiB of CHR-RAM
	chrRAM bool
}

func newMapper0(prgROM, chrROM []byte) *mapper0 {
	m := &mapper0{prgROM: prgROM}
	if len(chrROM) == 0 {
		m.chr = make([]byte, chrROMSizeUnit)
		m.chrRAM = true
	} else {
		m.chr = chrROM
	}
	return m
}

// ReadPRG reads program ROM at a CPU address in $8000-$FFFF. If PRG is
// only 16 KiB (NROM-128), the upper 16 KiB mirrors the lower.
func (m *mapper0) ReadPRG(address uint16) byte {
	return m.prgROM[int(address-0x8000)%len(m.prgROM)]
}

// WritePRG always fails: the cartridge's program ROM cannot be written.
func (m *mapper0) WritePRG(address uint16, data byte) error {
	return fmt.Errorf("nes: attempt to write program ROM at 0x%04x = 0x%02x", address, data)
}

// ReadCHR reads the pattern-table byte at a PPU address in $0000-$1FFF.
func (m *mapper0) ReadCHR(address uint16) byte {
	return m.chr[address]
}

// WriteCHR writes CHR-RAM when the cartridge has no CHR-ROM; writing a
// real CHR-ROM cartridge is a no-op per spec.md §4.3's PPUDATA contract.
func (m *mapper0) WriteCHR(address uint16, data byte) error {
	if m.chrRAM {
		m.chr[address] = data
	}
	return nil
}
