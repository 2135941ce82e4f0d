package memory

import (
	"testing"

	"dmgcore/hardware/cartridge"
	"dmgcore/hardware/cpu"
)

func newTestConsoleBus(rom []uint8, isColorGBC bool) (*Bus, *cpu.CPU) {
	c := cpu.New(cpu.InitialState{})
	return New(c, cartridge.New(rom), isColorGBC), c
}

func TestBootROMOverlayThenDisable(t *testing.T) {
	rom := make([]uint8, 0x8000)
	rom[0x0000] = 0xAA
	boot := make([]uint8, 0x100)
	boot[0x0000] = 0xBB

	b, _ := newTestConsoleBus(rom, false)
	b.SetBootROM(boot)

	v, err := b.Read(0x0000)
	if err != nil || v != 0xBB {
		t.Fatalf("Read(0x0000) with boot ROM active = 0x%02X, %v, want 0xBB, nil", v, err)
	}

	if err := b.Write(0x0000, 0xCC); err != nil {
		t.Fatalf("Write to boot ROM region: %v", err)
	}
	v, _ = b.Read(0x0000)
	if v != 0xBB {
		t.Fatalf("boot ROM should be read-only, got 0x%02X after write", v)
	}

	if err := b.Write(bootDisable, 0x01); err != nil {
		t.Fatalf("Write(0xFF50): %v", err)
	}
	v, err = b.Read(0x0000)
	if err != nil || v != 0xAA {
		t.Fatalf("Read(0x0000) after boot ROM disabled = 0x%02X, %v, want cartridge byte 0xAA", v, err)
	}
}

func TestNoBootROMFallsThroughToCartridge(t *testing.T) {
	rom := make([]uint8, 0x8000)
	rom[0x0010] = 0x42
	b, _ := newTestConsoleBus(rom, false)

	v, err := b.Read(0x0010)
	if err != nil || v != 0x42 {
		t.Fatalf("Read(0x0010) without boot ROM = 0x%02X, %v, want 0x42", v, err)
	}
}

func TestWRAMRoutingAndEchoMirror(t *testing.T) {
	b, _ := newTestConsoleBus(make([]uint8, 0x8000), false)

	if err := b.Write(0xC010, 0x99); err != nil {
		t.Fatalf("Write(0xC010): %v", err)
	}
	v, err := b.Read(0xE010) // echo mirrors 0xC010
	if err != nil || v != 0x99 {
		t.Fatalf("Read(0xE010) = 0x%02X, %v, want 0x99 (echo of 0xC010)", v, err)
	}
}

func TestHRAMRouting(t *testing.T) {
	b, _ := newTestConsoleBus(make([]uint8, 0x8000), false)
	if err := b.Write(0xFF80, 0x7A); err != nil {
		t.Fatalf("Write(0xFF80): %v", err)
	}
	v, _ := b.Read(0xFF80)
	if v != 0x7A {
		t.Fatalf("Read(0xFF80) = 0x%02X, want 0x7A", v)
	}
}

func TestVRAMRoutesToPPU(t *testing.T) {
	b, _ := newTestConsoleBus(make([]uint8, 0x8000), false)
	if err := b.Write(0x8000, 0x11); err != nil {
		t.Fatalf("Write(0x8000): %v", err)
	}
	v, _ := b.Read(0x8000)
	if v != 0x11 {
		t.Fatalf("Read(0x8000) = 0x%02X, want 0x11", v)
	}
}

func TestUnmappedAddressIsFatal(t *testing.T) {
	b, _ := newTestConsoleBus(make([]uint8, 0x8000), false)
	if _, err := b.Read(0xFF03); err == nil {
		t.Fatalf("expected fault reading unmapped address 0xFF03")
	}
	if err := b.Write(0xFF08, 0x00); err == nil {
		t.Fatalf("expected fault writing unmapped address 0xFF08")
	}
}

func TestUndocRegistersGatedByMode(t *testing.T) {
	bDMG, _ := newTestConsoleBus(make([]uint8, 0x8000), false)
	if err := bDMG.Write(0xFF72, 0x55); err != nil {
		t.Fatalf("Write(0xFF72): %v", err)
	}
	if v, _ := bDMG.Read(0xFF72); v != 0xFF {
		t.Fatalf("Read(0xFF72) on non-GBC mode = 0x%02X, want 0xFF", v)
	}

	bGBC, _ := newTestConsoleBus(make([]uint8, 0x8000), true)
	if err := bGBC.Write(0xFF72, 0x55); err != nil {
		t.Fatalf("Write(0xFF72): %v", err)
	}
	if v, _ := bGBC.Read(0xFF72); v != 0x55 {
		t.Fatalf("Read(0xFF72) on GBC mode = 0x%02X, want 0x55", v)
	}
}
