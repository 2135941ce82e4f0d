package dmgcore

import "dmgcore/hardware/cpu"

// Fault is the core's fatal, program-terminating error type. See
// hardware/cpu.Fault for the full definition; it is aliased here so callers
// of the top-level Console API don't need to import the cpu package
// directly to type-switch on it.
type Fault = cpu.Fault

// NewBusFault builds a Fault for an access to an address no subsystem
// claims.
var NewBusFault = cpu.NewBusFault
