package memory

import (
	"dmgcore/hardware/apu"
	"dmgcore/hardware/cartridge"
	"dmgcore/hardware/cpu"
	"dmgcore/hardware/ppu"
)

// Bus wires the full DMG address space together: cartridge ROM, PPU
// (VRAM/OAM/LCD registers), APU (sound registers), work RAM/high RAM, and
// the CPU's own IO register block. Address ranges are transcribed from the
// source implementation's Bus::read/write match arms; see DESIGN.md.
type Bus struct {
	cpu  *cpu.CPU
	ppu  *ppu.PPU
	apu  *apu.APU
	cart *cartridge.Cartridge
	wram *wram

	bootROM     [0x100]uint8
	bootPresent bool
	bootDisable uint8
}

// New constructs a Bus over an already-constructed CPU and a cartridge ROM
// image. isColorGBC selects whether the GBC-only undocumented WRAM
// registers at 0xFF72-0xFF75 behave as storage or read as 0xFF.
func New(c *cpu.CPU, cart *cartridge.Cartridge, isColorGBC bool) *Bus {
	return &Bus{
		cpu:  c,
		ppu:  ppu.New(),
		apu:  apu.New(),
		cart: cart,
		wram: newWRAM(isColorGBC),
	}
}

// SetBootROM installs a 256-byte boot ROM image to overlay 0x0000-0x00FF
// until a nonzero write to 0xFF50 disables it. A nil or short image leaves
// the boot ROM disabled, so reads fall straight through to the cartridge.
func (b *Bus) SetBootROM(image []uint8) {
	b.bootPresent = len(image) >= len(b.bootROM)
	if b.bootPresent {
		copy(b.bootROM[:], image)
	}
	b.bootDisable = 0
}

func (b *Bus) bootActive() bool {
	return b.bootPresent && b.bootDisable == 0
}

// PPU returns the bus's PPU, so callers driving the master clock can tick
// it alongside the CPU.
func (b *Bus) PPU() *ppu.PPU { return b.ppu }

// APU returns the bus's APU, for the same reason as PPU.
func (b *Bus) APU() *apu.APU { return b.apu }

// Read implements cpu.Bus.
func (b *Bus) Read(addr uint16) (uint8, error) {
	switch {
	case addr <= bootROMEnd && b.bootActive():
		return b.bootROM[addr], nil
	case addr <= 0x7FFF:
		return b.cart.Read(addr), nil
	case addr >= 0x8000 && addr <= 0x9FFF:
		return b.ppu.Read(addr), nil
	case addr >= 0xA000 && addr <= 0xBFFF:
		return b.cart.Read(addr), nil
	case addr >= 0xC000 && addr <= 0xFDFF:
		return b.wram.read(addr), nil
	case addr >= 0xFE00 && addr <= 0xFEFF:
		return b.ppu.Read(addr), nil
	case addr >= 0xFF00 && addr <= 0xFF02, addr >= 0xFF04 && addr <= 0xFF07:
		return b.readCPUIO(addr), nil
	case addr == 0xFF0F:
		return b.readCPUIO(addr), nil
	case addr >= 0xFF10 && addr <= 0xFF26, addr >= 0xFF30 && addr <= 0xFF3F:
		return b.apu.Read(addr), nil
	case addr >= 0xFF40 && addr <= 0xFF4B, addr == 0xFF4F:
		return b.ppu.Read(addr), nil
	case addr == bootDisable:
		return b.bootDisable, nil
	case addr >= 0xFF51 && addr <= 0xFF55, addr >= 0xFF68 && addr <= 0xFF6B:
		return b.ppu.Read(addr), nil
	case addr == wbankReg:
		return b.wram.read(addr), nil
	case addr >= undocStart && addr <= undocEnd:
		return b.wram.read(addr), nil
	case addr >= 0xFF76 && addr <= 0xFF77:
		return b.apu.Read(addr), nil
	case addr >= hramStart && addr <= hramEnd:
		return b.wram.read(addr), nil
	case addr == 0xFFFF:
		return b.readCPUIO(addr), nil
	}
	return 0, cpu.NewBusFault(addr)
}

// Write implements cpu.Bus.
func (b *Bus) Write(addr uint16, data uint8) error {
	switch {
	case addr <= bootROMEnd && b.bootActive():
		// Boot ROM is read-only.
		return nil
	case addr <= 0x7FFF:
		b.cart.Write(addr, data)
	case addr >= 0x8000 && addr <= 0x9FFF:
		b.ppu.Write(addr, data)
	case addr >= 0xA000 && addr <= 0xBFFF:
		b.cart.Write(addr, data)
	case addr >= 0xC000 && addr <= 0xFDFF:
		b.wram.write(addr, data)
	case addr >= 0xFE00 && addr <= 0xFEFF:
		b.ppu.Write(addr, data)
	case addr >= 0xFF00 && addr <= 0xFF02, addr >= 0xFF04 && addr <= 0xFF07:
		b.writeCPUIO(addr, data)
	case addr == 0xFF0F:
		b.writeCPUIO(addr, data)
	case addr >= 0xFF10 && addr <= 0xFF26, addr >= 0xFF30 && addr <= 0xFF3F:
		b.apu.Write(addr, data)
	case addr >= 0xFF40 && addr <= 0xFF4B, addr == 0xFF4F:
		b.ppu.Write(addr, data)
	case addr == bootDisable:
		b.bootDisable = data
	case addr >= 0xFF51 && addr <= 0xFF55, addr >= 0xFF68 && addr <= 0xFF6B:
		b.ppu.Write(addr, data)
	case addr == wbankReg:
		b.wram.write(addr, data)
	case addr >= undocStart && addr <= undocEnd:
		b.wram.write(addr, data)
	case addr >= 0xFF76 && addr <= 0xFF77:
		b.apu.Write(addr, data)
	case addr >= hramStart && addr <= hramEnd:
		b.wram.write(addr, data)
	case addr == 0xFFFF:
		b.writeCPUIO(addr, data)
	default:
		return cpu.NewBusFault(addr)
	}
	return nil
}

func (b *Bus) readCPUIO(addr uint16) uint8 {
	v, _ := b.cpu.ReadIO(addr)
	return v
}

func (b *Bus) writeCPUIO(addr uint16, data uint8) {
	b.cpu.WriteIO(addr, data)
}
