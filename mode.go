package dmgcore

// SystemMode selects the hardware variant the Console emulates. Each mode
// determines the CPU's initial register tuple at power-on.
type SystemMode int

const (
	SystemModeGameboy SystemMode = iota
	SystemModeGameboyPocket
	SystemModeSuperGameboy
	SystemModeSuperGameboy2
	SystemModeGameboyColorDMG
	SystemModeGameboyColorGBC
)

func (m SystemMode) String() string {
	switch m {
	case SystemModeGameboy:
		return "Gameboy"
	case SystemModeGameboyPocket:
		return "GameboyPocket"
	case SystemModeSuperGameboy:
		return "SuperGameboy"
	case SystemModeSuperGameboy2:
		return "SuperGameboy2"
	case SystemModeGameboyColorDMG:
		return "GameboyColorDMG"
	case SystemModeGameboyColorGBC:
		return "GameboyColorGBC"
	default:
		return "Unknown"
	}
}

// isColorGBC reports whether the undocumented 0xFF72-0xFF75 registers are
// active for this mode. WRAM bank switching at 0xFF70 does not depend on it.
func (m SystemMode) isColorGBC() bool {
	return m == SystemModeGameboyColorGBC
}

// InitialRegisters is the power-on (A, F, B, C, D, E, H, L, SP, PC) tuple
// for a SystemMode. SP is always 0xFFFE and PC always 0x0000 so execution
// begins in the boot ROM; the remaining values vary by revision exactly as
// real hardware does.
type InitialRegisters struct {
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16
}

// initialRegisters returns the power-on register tuple for mode, or a Fault
// if mode has no implemented initial state (SystemModeSuperGameboy2).
func initialRegisters(mode SystemMode) (InitialRegisters, *Fault) {
	const (
		sp = 0xFFFE
		pc = 0x0000
	)
	switch mode {
	case SystemModeGameboy:
		return InitialRegisters{A: 0x01, F: 0xB0, B: 0x00, C: 0x13, D: 0x00, E: 0xD8, H: 0x01, L: 0x4D, SP: sp, PC: pc}, nil
	case SystemModeGameboyPocket:
		return InitialRegisters{A: 0xFF, F: 0xB0, B: 0x00, C: 0x13, D: 0x00, E: 0xD8, H: 0x01, L: 0x4D, SP: sp, PC: pc}, nil
	case SystemModeSuperGameboy:
		return InitialRegisters{A: 0x01, F: 0x00, B: 0x00, C: 0x14, D: 0x00, E: 0x00, H: 0xC0, L: 0x60, SP: sp, PC: pc}, nil
	case SystemModeGameboyColorDMG:
		return InitialRegisters{A: 0x11, F: 0x80, B: 0x00, C: 0x00, D: 0x00, E: 0x08, H: 0x00, L: 0x7C, SP: sp, PC: pc}, nil
	case SystemModeGameboyColorGBC:
		return InitialRegisters{A: 0x11, F: 0x80, B: 0x00, C: 0x00, D: 0xFF, E: 0x56, H: 0x00, L: 0x0D, SP: sp, PC: pc}, nil
	case SystemModeSuperGameboy2:
		return InitialRegisters{}, &Fault{Reason: "SystemModeSuperGameboy2 is unimplemented"}
	default:
		return InitialRegisters{}, &Fault{Reason: "unknown SystemMode"}
	}
}
