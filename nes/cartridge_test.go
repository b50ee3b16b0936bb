package nes

import "testing"

func buildINES(prgBanks, chrBanks int, flags6, flags7 byte) []byte {
	data := []byte{'N', 'E', 'S', inesMSDOSEOF, byte(prgBanks), byte(chrBanks), flags6, flags7, 0, 0, 0, 0, 0, 0, 0, 0}
	data = append(data, make([]byte, prgBanks*prgROMSizeUnit)...)
	data = append(data, make([]byte, chrBanks*chrROMSizeUnit)...)
	return data
}

func TestNewCartridgeRejectsBadMagic(t *testing.T) {
	data := buildINES(1, 1, 0, 0)
	data[0] = 'X'
	if _, err := NewCartridge(data); err == nil {
		t.Fatal("want error for bad magic, got nil")
	}
}

func TestNewCartridgeRejectsNES2(t *testing.T) {
	data := buildINES(1, 1, 0, 0x08)
	if _, err := NewCartridge(data); err == nil {
		t.Fatal("want error for NES 2.0 container, got nil")
	}
}

func TestNewCartridgeRejectsTruncated(t *testing.T) {
	data := buildINES(2, 1, 0, 0)
	data = data[:len(data)-100]
	if _, err := NewCartridge(data); err == nil {
		t.Fatal("want error for truncated CHR-ROM, got nil")
	}
}

func TestNewCartridgeMirroring(t *testing.T) {
	cases := []struct {
		name   string
		flags6 byte
		want   Mirroring
	}{
		{"horizontal", 0x00, MirrorHorizontal},
		{"vertical", 0x01, MirrorVertical},
		{"four-screen", 0x08, MirrorFourScreen},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cart, err := NewCartridge(buildINES(1, 1, tc.flags6, 0))
			if err != nil {
				t.Fatalf("NewCartridge: %v", err)
			}
			if got := cart.MirrorMode(); got != tc.want {
				t.Errorf("MirrorMode() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNewCartridgeSkipsTrainer(t *testing.T) {
	header := []byte{'N', 'E', 'S', inesMSDOSEOF, 1, 1, 0x04, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	trainer := make([]byte, trainerSizeBytes)
	prg := make([]byte, prgROMSizeUnit)
	prg[0] = 0xEA
	chr := make([]byte, chrROMSizeUnit)
	data := append(append(append(header, trainer...), prg...), chr...)

	cart, err := NewCartridge(data)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if cart.prgROM[0] != 0xEA {
		t.Errorf("PRG-ROM not offset past trainer: got first byte 0x%02x, want 0xea", cart.prgROM[0])
	}
}

func TestCartridgeMapperID(t *testing.T) {
	cart, err := NewCartridge(buildINES(1, 1, 0x30, 0x20))
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if got := cart.Mapper(); got != 0x23 {
		t.Errorf("Mapper() = 0x%02x, want 0x23", got)
	}
}
