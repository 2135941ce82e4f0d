package memory

import "testing"

func TestWRAMBank0Fixed(t *testing.T) {
	w := newWRAM(false)
	w.write(0xC000, 0x11)
	w.wbank = 5
	if got := w.read(0xC000); got != 0x11 {
		t.Fatalf("0xC000 should stay on fixed bank 0 regardless of wbank, got 0x%02X", got)
	}
}

func TestWRAMBankSelectZeroTreatedAsOne(t *testing.T) {
	w := newWRAM(false)
	w.write(wbankReg, 0x00)
	w.write(0xD000, 0xAB)

	w.write(wbankReg, 0x01)
	if got := w.read(0xD000); got != 0xAB {
		t.Fatalf("bank select 0 should alias bank 1, got 0x%02X", got)
	}
}

func TestWRAMBankSelectSwitches(t *testing.T) {
	w := newWRAM(false)
	w.write(wbankReg, 0x02)
	w.write(0xD000, 0x22)

	w.write(wbankReg, 0x03)
	w.write(0xD000, 0x33)

	w.write(wbankReg, 0x02)
	if got := w.read(0xD000); got != 0x22 {
		t.Fatalf("bank 2 at 0xD000 = 0x%02X, want 0x22", got)
	}
	w.write(wbankReg, 0x03)
	if got := w.read(0xD000); got != 0x33 {
		t.Fatalf("bank 3 at 0xD000 = 0x%02X, want 0x33", got)
	}
}

func TestWRAMBankSelectMasksToThreeBits(t *testing.T) {
	w := newWRAM(false)
	w.write(wbankReg, 0xFF)
	if w.wbank != 0x07 {
		t.Fatalf("wbank after writing 0xFF = 0x%02X, want masked to 0x07", w.wbank)
	}
}

func TestWRAMEchoMirror(t *testing.T) {
	w := newWRAM(false)
	w.write(0xC123, 0x9A)
	if got := w.read(0xE123); got != 0x9A {
		t.Fatalf("echo read 0xE123 = 0x%02X, want 0x9A", got)
	}
	w.write(0xE456, 0x77)
	if got := w.read(0xC456); got != 0x77 {
		t.Fatalf("echo write 0xE456 -> 0xC456 = 0x%02X, want 0x77", got)
	}
}

func TestUndocOnlyOnGBC(t *testing.T) {
	nonGBC := newWRAM(false)
	nonGBC.write(0xFF75, 0x70)
	if got := nonGBC.read(0xFF75); got != 0xFF {
		t.Fatalf("non-GBC 0xFF75 read = 0x%02X, want 0xFF", got)
	}

	gbc := newWRAM(true)
	gbc.write(0xFF75, 0xFF)
	if got := gbc.read(0xFF75); got != 0x70 {
		t.Fatalf("GBC 0xFF75 should mask writes to bits 6-4, got 0x%02X, want 0x70", got)
	}
}

func TestHRAM(t *testing.T) {
	w := newWRAM(false)
	w.write(0xFFA0, 0x5C)
	if got := w.read(0xFFA0); got != 0x5C {
		t.Fatalf("HRAM read = 0x%02X, want 0x5C", got)
	}
}
