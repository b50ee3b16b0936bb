package nes

import "fmt"

// PPU renders a 256x240 frame once per vertical blank rather than
// dot-by-dot; visual fidelity trades off against a much simpler timing
// model (spec.md's stated Non-goal: no dot-exact rendering pipeline).
// Register semantics (the two-write latches, the buffered $2007 read,
// palette mirroring) are still modeled precisely, since those are
// address-space contracts games depend on regardless of rendering
// fidelity.
//
// References:
//
//	https://www.nesdev.org/wiki/PPU
//	https://www.nesdev.org/wiki/PPU_registers
//	https://www.nesdev.org/wiki/PPU_scrolling
const (
	screenWidth  = 256
	screenHeight = 240
)

type rgb struct{ R, G, B byte }

// Borrowed from the Famicom color palette used across the pack's NES
// emulators (https://emulation.gametechwiki.com/index.php/Famicom_color_palette).
var systemPalette = [64]rgb{
	{0x6D, 0x6D, 0x6D}, {0x00, 0x24, 0x92}, {0x00, 0x00, 0xDB}, {0x6D, 0x49, 0xDB},
	{0x92, 0x00, 0x6D}, {0xB6, 0x00, 0x6D}, {0xB6, 0x24, 0x00}, {0x92, 0x49, 0x00},
	{0x6D, 0x49, 0x00}, {0x24, 0x49, 0x00}, {0x00, 0x6D, 0x24}, {0x00, 0x92, 0x00},
	{0x00, 0x49, 0x49}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0xB6, 0xB6, 0xB6}, {0x00, 0x6D, 0xDB}, {0x00, 0x49, 0xFF}, {0x92, 0x00, 0xFF},
	{0xB6, 0x00, 0xFF}, {0xFF, 0x00, 0x92}, {0xFF, 0x00, 0x00}, {0xDB, 0x6D, 0x00},
	{0x92, 0x6D, 0x00}, {0x24, 0x92, 0x00}, {0x00, 0x92, 0x00}, {0x00, 0xB6, 0x6D},
	{0x00, 0x92, 0x92}, {0x24, 0x24, 0x24}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0xFF, 0xFF, 0xFF}, {0x6D, 0xB6, 0xFF}, {0x92, 0x92, 0xFF}, {0xDB, 0x6D, 0xFF},
	{0xFF, 0x00, 0xFF}, {0xFF, 0x6D, 0xFF}, {0xFF, 0x92, 0x00}, {0xFF, 0xB6, 0x00},
	{0xDB, 0xDB, 0x00}, {0x6D, 0xDB, 0x00}, {0x00, 0xFF, 0x00}, {0x49, 0xFF, 0xDB},
	{0x00, 0xFF, 0xFF}, {0x49, 0x49, 0x49}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0xFF, 0xFF, 0xFF}, {0xB6, 0xDB, 0xFF}, {0xDB, 0xB6, 0xFF}, {0xFF, 0xB6, 0xFF},
	{0xFF, 0x92, 0xFF}, {0xFF, 0xB6, 0xB6}, {0xFF, 0xDB, 0x92}, {0xFF, 0xFF, 0x49},
	{0xFF, 0xFF, 0x6D}, {0xB6, 0xFF, 0x49}, {0x92, 0xFF, 0x6D}, {0x49, 0xFF, 0xDB},
	{0x92, 0xDB, 0xFF}, {0x92, 0x92, 0x92}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
}

// PPU holds register and memory state. It reaches the cartridge only
// through a Mapper.
type PPU struct {
	mapper    Mapper
	mirroring Mirroring

	vram    [2048]byte
	palette [32]byte
	oam     [256]byte

	// $2000
	nmiEnable    bool
	spriteTable  byte // 0 or 1: pattern table half for sprites
	bgTable      byte // 0 or 1: pattern table half for background
	vramInc32    bool
	oamAddr      byte

	// $2001
	showBackground     bool
	showSprite         bool
	showLeftBackground bool
	showLeftSprite     bool

	// $2002
	vblank         bool
	spriteZeroHit  bool
	spriteOverflow bool

	// $2005/$2006 shared write latch
	v, t uint16
	x    byte
	w    bool

	// $2007 read buffer
	readBuffer byte

	nmiPending bool

	cycle    int
	scanline int
}

// NewPPU builds a PPU over mapper. Four-screen mirroring is rejected
// here rather than mid-execution: it needs a third physical nametable
// bank this bus doesn't model, so treating it the same way NewMapper
// treats an unsupported mapper id keeps the failure at startup.
func NewPPU(mapper Mapper, mirroring Mirroring) (*PPU, error) {
	if mirroring == MirrorFourScreen {
		return nil, fmt.Errorf("nes: four-screen name-table mirroring is not supported")
	}
	return &PPU{mapper: mapper, mirroring: mirroring, scanline: 261}, nil
}

// --- CPU-facing registers ($2000-$2007 and their mirrors) ---

func (p *PPU) WriteCTRL(data byte) {
	p.nmiEnable = data&0x80 != 0
	p.spriteTable = (data >> 3) & 1
	p.bgTable = (data >> 4) & 1
	p.vramInc32 = (data>>2)&1 != 0
	p.t = (p.t & 0xF3FF) | (uint16(data&0x03) << 10)
}

func (p *PPU) WriteMASK(data byte) {
	p.showLeftBackground = (data>>1)&1 != 0
	p.showLeftSprite = (data>>2)&1 != 0
	p.showBackground = (data>>3)&1 != 0
	p.showSprite = (data>>4)&1 != 0
}

func (p *PPU) ReadSTATUS() byte {
	var res byte
	if p.spriteOverflow {
		res |= 1 << 5
	}
	if p.spriteZeroHit {
		res |= 1 << 6
	}
	if p.vblank {
		res |= 1 << 7
	}
	p.vblank = false
	p.w = false
	return res
}

func (p *PPU) WriteOAMADDR(data byte) { p.oamAddr = data }

func (p *PPU) ReadOAMDATA() byte { return p.oam[p.oamAddr] }

func (p *PPU) WriteOAMDATA(data byte) {
	p.oam[p.oamAddr] = data
	p.oamAddr++
}

func (p *PPU) WriteSCROLL(data byte) {
	if !p.w {
		p.t = (p.t & 0xFFE0) | uint16(data>>3)
		p.x = data & 0x07
	} else {
		p.t = (p.t & 0x8FFF) | (uint16(data&0x07) << 12)
		p.t = (p.t & 0xFC1F) | (uint16(data&0xF8) << 2)
	}
	p.w = !p.w
}

func (p *PPU) WriteADDR(data byte) {
	if !p.w {
		p.t = (p.t & 0x00FF) | (uint16(data&0x3F) << 8)
	} else {
		p.t = (p.t & 0xFF00) | uint16(data)
		p.v = p.t
	}
	p.w = !p.w
}

func (p *PPU) incrementAddr() {
	if p.vramInc32 {
		p.v += 32
	} else {
		p.v++
	}
}

// ReadDATA serves $2007. Reads below the palette range return the
// previous buffer contents and latch the just-read byte for next time;
// palette reads return immediately but still refresh the buffer from
// the underlying name-table mirror, matching real hardware.
func (p *PPU) ReadDATA() byte {
	addr := p.v & 0x3FFF
	var result byte
	if addr < 0x3F00 {
		result = p.readBuffer
		p.readBuffer = p.vramRead(addr)
	} else {
		result = p.vramRead(addr)
		p.readBuffer = p.vramRead(addr - 0x1000)
	}
	p.incrementAddr()
	return result
}

func (p *PPU) WriteDATA(data byte) {
	p.vramWrite(p.v&0x3FFF, data)
	p.incrementAddr()
}

// WriteOAMByte is used by OAM DMA ($4014): it writes through the same
// auto-incrementing address OAMDATA writes use.
func (p *PPU) WriteOAMByte(data byte) {
	p.oam[p.oamAddr] = data
	p.oamAddr++
}

// --- internal address space ---

func (p *PPU) mirrorNametable(addr uint16) uint16 {
	addr = (addr - 0x2000) % 0x1000
	table := addr / 0x0400
	offset := addr % 0x0400
	var bank uint16
	switch p.mirroring {
	case MirrorVertical:
		bank = table % 2
	default: // MirrorHorizontal
		bank = table / 2
	}
	return bank*0x0400 + offset
}

func paletteIndex(addr uint16) uint16 {
	idx := (addr - 0x3F00) % 0x20
	switch idx {
	case 0x10, 0x14, 0x18, 0x1C:
		idx -= 0x10
	}
	return idx
}

func (p *PPU) vramRead(addr uint16) byte {
	switch {
	case addr < 0x2000:
		return p.mapper.ReadCHR(addr)
	case addr < 0x3F00:
		return p.vram[p.mirrorNametable(addr)]
	default:
		return p.palette[paletteIndex(addr)]
	}
}

func (p *PPU) vramWrite(addr uint16, v byte) {
	switch {
	case addr < 0x2000:
		p.mapper.WriteCHR(addr, v)
	case addr < 0x3F00:
		p.vram[p.mirrorNametable(addr)] = v
	default:
		p.palette[paletteIndex(addr)] = v
	}
}

// --- timing ---

// Tick advances the PPU by dots (3 per CPU cycle). It returns true
// exactly once per frame, on the 262-scanline wraparound, at which
// point vblank, the NMI latch, sprite-zero-hit and sprite-overflow are
// all cleared for the next frame.
func (p *PPU) Tick(dots int) bool {
	frameComplete := false
	for i := 0; i < dots; i++ {
		p.cycle++
		if p.cycle == 341 {
			p.cycle = 0
			p.scanline++
			if p.scanline == 262 {
				p.scanline = 0
				p.vblank = false
				p.nmiPending = false
				p.spriteZeroHit = false
				p.spriteOverflow = false
				frameComplete = true
			}
		}
		if p.scanline == 241 && p.cycle == 1 {
			p.vblank = true
			if p.nmiEnable {
				p.nmiPending = true
			}
		}
	}
	return frameComplete
}

// --- whole-frame rendering ---

func setPixel(buf []byte, x, y int, c rgb) {
	i := (y*screenWidth + x) * 3
	buf[i], buf[i+1], buf[i+2] = c.R, c.G, c.B
}

// Render produces a flat 256*240*3 RGB buffer for the frame that just
// completed. Scrolling is snapped to 8-pixel tile granularity (the sub-
// tile fine-scroll offset is not applied) and the 8-sprites-per-scanline
// hardware limit is not enforced — both are simplifications consistent
// with not modeling a dot-exact pipeline.
func (p *PPU) Render() []byte {
	buf := make([]byte, screenWidth*screenHeight*3)
	backdrop := systemPalette[p.palette[0]&0x3F]
	for y := 0; y < screenHeight; y++ {
		for x := 0; x < screenWidth; x++ {
			setPixel(buf, x, y, backdrop)
		}
	}
	bgOpaque := make([]bool, screenWidth*screenHeight)
	p.renderBackground(buf, bgOpaque)
	p.renderSprites(buf, bgOpaque)
	return buf
}

func (p *PPU) renderBackground(buf []byte, bgOpaque []bool) {
	if !p.showBackground {
		return
	}
	coarseX := int(p.t & 0x1F)
	coarseY := int((p.t >> 5) & 0x1F)
	ntSelect := int((p.t >> 10) & 0x3)
	baseH := ntSelect & 1
	baseV := (ntSelect >> 1) & 1
	patBase := uint16(p.bgTable) * 0x1000

	for ty := 0; ty < 30; ty++ {
		row := (ty + coarseY) % 30
		vToggle := 0
		if ty+coarseY >= 30 {
			vToggle = 1
		}
		for tx := 0; tx < 32; tx++ {
			col := (tx + coarseX) % 32
			hToggle := 0
			if tx+coarseX >= 32 {
				hToggle = 1
			}
			nth := baseH ^ hToggle
			ntv := baseV ^ vToggle
			ntBase := uint16(0x2000 + (ntv<<1|nth)*0x400)
			tile := p.vramRead(ntBase + uint16(row)*32 + uint16(col))
			attr := p.vramRead(ntBase + 0x3C0 + uint16(row/4)*8 + uint16(col/4))
			shift := (byte((row%4)/2)<<1 | byte((col%4)/2)) * 2
			palette := (attr >> shift) & 0x3

			for fy := 0; fy < 8; fy++ {
				py := ty*8 + fy
				if py >= screenHeight {
					continue
				}
				lo := p.vramRead(patBase + uint16(tile)*16 + uint16(fy))
				hi := p.vramRead(patBase + uint16(tile)*16 + uint16(fy) + 8)
				for fx := 0; fx < 8; fx++ {
					px := tx*8 + fx
					if px >= screenWidth || (px < 8 && !p.showLeftBackground) {
						continue
					}
					bit := 7 - fx
					val := (lo>>bit)&1 | (hi>>bit)&1<<1
					if val == 0 {
						continue
					}
					bgOpaque[py*screenWidth+px] = true
					c := systemPalette[p.palette[paletteIndex(0x3F00+uint16(palette)<<2+uint16(val))]&0x3F]
					setPixel(buf, px, py, c)
				}
			}
		}
	}
}

func (p *PPU) renderSprites(buf []byte, bgOpaque []bool) {
	if !p.showSprite {
		return
	}
	patBase := uint16(p.spriteTable) * 0x1000
	for i := 63; i >= 0; i-- {
		base := i * 4
		sy := int(p.oam[base]) + 1
		tile := p.oam[base+1]
		attr := p.oam[base+2]
		sx := int(p.oam[base+3])
		palette := attr & 0x3
		behind := attr&0x20 != 0
		flipH := attr&0x40 != 0
		flipV := attr&0x80 != 0

		for fy := 0; fy < 8; fy++ {
			row := fy
			if flipV {
				row = 7 - fy
			}
			py := sy + fy
			if py < 0 || py >= screenHeight {
				continue
			}
			lo := p.vramRead(patBase + uint16(tile)*16 + uint16(row))
			hi := p.vramRead(patBase + uint16(tile)*16 + uint16(row) + 8)
			for fx := 0; fx < 8; fx++ {
				col := fx
				if flipH {
					col = 7 - fx
				}
				px := sx + fx
				if px < 0 || px >= screenWidth || (px < 8 && !p.showLeftSprite) {
					continue
				}
				bit := 7 - col
				val := (lo>>bit)&1 | (hi>>bit)&1<<1
				if val == 0 {
					continue
				}
				opaque := bgOpaque[py*screenWidth+px]
				if i == 0 && opaque {
					p.spriteZeroHit = true
				}
				if behind && opaque {
					continue
				}
				c := systemPalette[p.palette[paletteIndex(0x3F10+uint16(palette)<<2+uint16(val))]&0x3F]
				setPixel(buf, px, py, c)
			}
		}
	}
}
