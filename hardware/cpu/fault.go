package cpu

import "fmt"

// Fault represents one of the core's fatal, program-terminating conditions:
// a removed/unimplemented opcode, an unmapped bus access, construction with
// SystemModeSuperGameboy2, or execution of STOP/HALT/RETI. The core never
// recovers from a Fault; it is returned up the call stack to the outer
// driver (console.Run in the top-level package), which is the only place
// that decides what to do with it.
type Fault struct {
	Reason  string
	Opcode  uint8
	Address uint16
	HasAddr bool
}

func (f *Fault) Error() string {
	if f.HasAddr {
		return fmt.Sprintf("dmgcore: fatal: %s (opcode=0x%02X address=0x%04X)", f.Reason, f.Opcode, f.Address)
	}
	return fmt.Sprintf("dmgcore: fatal: %s (opcode=0x%02X)", f.Reason, f.Opcode)
}

// NewOpcodeFault builds a Fault for a removed or unimplemented opcode.
func NewOpcodeFault(reason string, opcode uint8) *Fault {
	return &Fault{Reason: reason, Opcode: opcode}
}

// NewBusFault builds a Fault for an access to an address no subsystem claims.
func NewBusFault(addr uint16) *Fault {
	return &Fault{Reason: "unmapped bus access", Address: addr, HasAddr: true}
}
