package ppu

import "testing"

func TestVRAMReadWrite(t *testing.T) {
	p := New()
	p.Write(0x8000, 0x5A)
	if got := p.Read(0x8000); got != 0x5A {
		t.Fatalf("Read(0x8000) = 0x%02X, want 0x5A", got)
	}
}

func TestLYIsReadOnly(t *testing.T) {
	p := New()
	before := p.Read(0xFF44)
	p.Write(0xFF44, 0x42)
	if got := p.Read(0xFF44); got != before {
		t.Fatalf("LY changed after write: got 0x%02X, want unchanged 0x%02X", got, before)
	}
}

func TestOAMReadWrite(t *testing.T) {
	p := New()
	p.Write(0xFE10, 0x33)
	if got := p.Read(0xFE10); got != 0x33 {
		t.Fatalf("Read(0xFE10) = 0x%02X, want 0x33", got)
	}
}

func TestProhibitedRegionReadsFF(t *testing.T) {
	p := New()
	p.Write(0xFEA0, 0x11)
	if got := p.Read(0xFEA0); got != 0xFF {
		t.Fatalf("Read(0xFEA0) = 0x%02X, want 0xFF", got)
	}
}

func TestRegisterRoundTrip(t *testing.T) {
	p := New()
	regs := []uint16{0xFF40, 0xFF41, 0xFF42, 0xFF43, 0xFF45, 0xFF47, 0xFF48, 0xFF49, 0xFF4A, 0xFF4B, 0xFF68, 0xFF69, 0xFF6A, 0xFF6B}
	for i, addr := range regs {
		p.Write(addr, uint8(i+1))
	}
	for i, addr := range regs {
		if got := p.Read(addr); got != uint8(i+1) {
			t.Fatalf("Read(0x%04X) = 0x%02X, want 0x%02X", addr, got, i+1)
		}
	}
}
