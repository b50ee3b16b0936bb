package nes

import "fmt"

// Mapper is the cartridge-side address decoder the bus and PPU read and
// write through. Only mapper 0 (NROM) is supported; spec.md's Non-goals
// exclude bank switching, so a cartridge with any other mapper id fails
// at construction rather than being silently misread.
type Mapper interface {
	ReadPRG(address uint16) byte
	WritePRG(address uint16, data byte) error
	ReadCHR(address uint16) byte
	WriteCHR(address uint16, data byte) error
}

// NewMapper builds the mapper for a cartridge, or fails if the
// cartridge's mapper id is not 0.
func NewMapper(c *Cartridge) (Mapper, error) {
	if c.Mapper() != 0 {
		return nil, fmt.Errorf("nes: unsupported mapper id %d (only mapper 0/NROM is implemented)", c.Mapper())
	}
	return newMapper0(c.prgROM, c.chrROM), nil
}
