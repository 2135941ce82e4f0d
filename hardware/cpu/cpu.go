// Package cpu implements the DMG CPU's instruction pipeline: T-cycle/
// M-cycle stepping, opcode decode, the multi-cycle instruction procedures,
// register/flag semantics, and the CB-prefixed bit/rotate group.
package cpu

// CPU owns the register file, the interrupt-enable latches, the CPU-owned
// IO register bytes, and the in-flight instruction procedure, if any.
type CPU struct {
	Regs Registers

	IME bool
	io  ioRegs

	imePending bool
	imeCounter uint8

	tcount uint8
	proc   *procedure
}

// InitialState is the power-on (A, F, B, C, D, E, H, L, SP, PC) tuple a
// caller supplies when constructing a CPU; the top-level Console package
// derives it from the selected SystemMode.
type InitialState struct {
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16
}

// New constructs a CPU with the given initial register state. IME starts
// false, IE/IF start zero, and no procedure is in flight.
func New(init InitialState) *CPU {
	c := &CPU{}
	c.Reset(init)
	return c
}

// Reset reinitializes the CPU to init, discarding any in-flight procedure
// and the IME-enable latch.
func (c *CPU) Reset(init InitialState) {
	c.Regs = Registers{
		A: init.A, F: init.F & 0xF0, B: init.B, C: init.C,
		D: init.D, E: init.E, H: init.H, L: init.L,
		SP: init.SP, PC: init.PC,
	}
	c.IME = false
	c.io = ioRegs{}
	c.imePending = false
	c.imeCounter = 0
	c.tcount = 0
	c.proc = nil
}

// InFlight reports whether an instruction procedure is mid-execution. Used
// by tests to assert on T-cycle counts between instruction boundaries.
func (c *CPU) InFlight() bool {
	return c.proc != nil
}

// fetch reads the byte at PC and advances PC by one.
func (c *CPU) fetch(bus Bus) (uint8, error) {
	b, err := bus.Read(c.Regs.PC)
	if err != nil {
		return 0, err
	}
	c.Regs.PC++
	return b, nil
}

// push decrements SP (wrapping) then writes b to the new SP.
func (c *CPU) push(bus Bus, b uint8) error {
	c.Regs.SP--
	return bus.Write(c.Regs.SP, b)
}

// pop reads the byte at SP then increments SP (wrapping).
func (c *CPU) pop(bus Bus) (uint8, error) {
	b, err := bus.Read(c.Regs.SP)
	if err != nil {
		return 0, err
	}
	c.Regs.SP++
	return b, nil
}

// advanceIME advances the EI-delay latch. Called once per decode boundary,
// before the next opcode is fetched, per spec.md section 4.2 step 2(a).
func (c *CPU) advanceIME() {
	if !c.imePending {
		return
	}
	c.imeCounter++
	if c.imeCounter >= 2 {
		c.IME = true
		c.imePending = false
		c.imeCounter = 0
	}
}

// StepTCycle advances the CPU by exactly one master T-cycle, per spec.md
// section 4.2. It performs at most one bus transaction.
func (c *CPU) StepTCycle(bus Bus) error {
	if c.tcount != 0 {
		c.tcount = (c.tcount + 1) % 4
		return nil
	}

	if c.proc == nil {
		c.advanceIME()

		opcode, err := c.fetch(bus)
		if err != nil {
			return err
		}

		if opcode == 0xCB {
			c.proc = &procedure{step: stepCBPrefix, mcycle: 1, opcode: opcode}
		} else {
			step, fault := resolveStep(opcode)
			if fault != nil {
				return fault
			}
			x, y, z := decodeFields(opcode)
			c.proc = &procedure{
				step: step, mcycle: 1, opcode: opcode,
				x: x, y: y, z: z, p: y >> 1, q: y & 1,
			}
		}
	}

	if err := c.proc.step(c.proc, c, bus); err != nil {
		return err
	}
	c.proc.mcycle++
	if c.proc.done {
		c.proc = nil
	}

	c.tcount = (c.tcount + 1) % 4
	return nil
}
