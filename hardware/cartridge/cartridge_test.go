package cartridge

import "testing"

func TestReadWithinROM(t *testing.T) {
	c := New([]uint8{0x00, 0x11, 0x22, 0x33})
	if got := c.Read(0x0002); got != 0x22 {
		t.Fatalf("Read(0x0002) = 0x%02X, want 0x22", got)
	}
}

func TestReadPastROMReturnsOpenBus(t *testing.T) {
	c := New([]uint8{0x00, 0x11})
	if got := c.Read(0x7FFF); got != 0xFF {
		t.Fatalf("Read past end = 0x%02X, want 0xFF", got)
	}
}

func TestReadExternalRAMReturnsOpenBus(t *testing.T) {
	c := New(make([]uint8, 0x8000))
	if got := c.Read(0xA000); got != 0xFF {
		t.Fatalf("Read(0xA000) = 0x%02X, want 0xFF (no cartridge RAM)", got)
	}
}

func TestWriteIsAbsorbed(t *testing.T) {
	rom := []uint8{0x00, 0x11, 0x22}
	c := New(rom)
	c.Write(0x0001, 0xFF)
	if got := c.Read(0x0001); got != 0x11 {
		t.Fatalf("Read(0x0001) after write = 0x%02X, want unchanged 0x11", got)
	}
}

func TestEmptyCartridgeReadsOpenBus(t *testing.T) {
	c := New(nil)
	if got := c.Read(0x0000); got != 0xFF {
		t.Fatalf("Read(0x0000) on empty cartridge = 0x%02X, want 0xFF", got)
	}
}

func TestSize(t *testing.T) {
	c := New(make([]uint8, 0x4000))
	if c.Size() != 0x4000 {
		t.Fatalf("Size() = %d, want 0x4000", c.Size())
	}
}
