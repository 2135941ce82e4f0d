// Package cartridge implements a flat, unbanked DMG cartridge: a single ROM
// image mapped at 0x0000-0x7FFF with no bank switching. Bank-switching
// mapper chips (MBC1 and later) are an explicit non-goal; a cartridge larger
// than 32 KiB simply has its excess bytes unreachable.
package cartridge

// Cartridge holds the raw ROM image loaded from disk. Reads past the end of
// the image, and all reads of external cartridge RAM (unimplemented, since
// no mapper exposes any), return 0xFF, matching an open bus. Writes
// anywhere in cartridge space are absorbed; a flat ROM has no registers to
// receive them.
type Cartridge struct {
	rom []uint8
}

// New wraps rom as a Cartridge. A nil or empty rom is valid: every read
// then returns 0xFF.
func New(rom []uint8) *Cartridge {
	return &Cartridge{rom: rom}
}

// Read returns the ROM byte at addr, or 0xFF if addr lies outside the
// loaded image or inside the external-RAM window (0xA000-0xBFFF).
func (c *Cartridge) Read(addr uint16) uint8 {
	if addr >= 0xA000 {
		return 0xFF
	}
	if int(addr) >= len(c.rom) {
		return 0xFF
	}
	return c.rom[addr]
}

// Write absorbs any write to cartridge space. A flat ROM has no bank-select
// or RAM-enable registers to update.
func (c *Cartridge) Write(addr uint16, data uint8) {}

// Size returns the number of bytes in the loaded ROM image.
func (c *Cartridge) Size() int {
	return len(c.rom)
}
