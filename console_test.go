package dmgcore

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempROM(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rom.gb")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing temp ROM: %v", err)
	}
	return path
}

func TestNewSetsInitialRegistersForMode(t *testing.T) {
	cons, err := New(SystemModeGameboy, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cons.CPU.Regs.A != 0x01 || cons.CPU.Regs.F != 0xB0 {
		t.Fatalf("AF = 0x%02X%02X, want 0x01B0", cons.CPU.Regs.A, cons.CPU.Regs.F)
	}
}

func TestNewRejectsSuperGameboy2(t *testing.T) {
	if _, err := New(SystemModeSuperGameboy2, nil); err == nil {
		t.Fatalf("expected error constructing SystemModeSuperGameboy2")
	}
}

func TestAttachCartridgeAndRunSimpleProgram(t *testing.T) {
	rom := make([]byte, 0x8000)
	// LD A,0x7B; LD (0xC000),A
	rom[0x0100] = 0x3E
	rom[0x0101] = 0x7B
	rom[0x0102] = 0xEA
	rom[0x0103] = 0x00
	rom[0x0104] = 0xC0

	cons, err := New(SystemModeGameboy, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := cons.AttachCartridge(writeTempROM(t, rom)); err != nil {
		t.Fatalf("AttachCartridge: %v", err)
	}
	cons.CPU.Regs.PC = 0x0100

	if err := cons.RunForTCycles(32); err != nil {
		t.Fatalf("RunForTCycles: %v", err)
	}

	v, err := cons.Bus.Read(0xC000)
	if err != nil || v != 0x7B {
		t.Fatalf("mem[0xC000] = 0x%02X, %v, want 0x7B", v, err)
	}
}

func TestRunStopsOnFault(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x0100] = 0xD3 // removed opcode

	cons, err := New(SystemModeGameboy, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := cons.AttachCartridge(writeTempROM(t, rom)); err != nil {
		t.Fatalf("AttachCartridge: %v", err)
	}
	cons.CPU.Regs.PC = 0x0100

	if err := cons.RunForTCycles(4); err == nil {
		t.Fatalf("expected fault running removed opcode")
	}
}

func TestResetRestoresPowerOnState(t *testing.T) {
	cons, err := New(SystemModeGameboy, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cons.CPU.Regs.PC = 0x1234
	cons.CPU.Regs.A = 0xFF

	if err := cons.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if cons.CPU.Regs.PC != 0x0000 || cons.CPU.Regs.A != 0x01 {
		t.Fatalf("after Reset: PC=0x%04X A=0x%02X, want PC=0x0000 A=0x01", cons.CPU.Regs.PC, cons.CPU.Regs.A)
	}
}
