package cpu

// stepLdU16SP implements LD (nn),SP (opcode 0x08). 5 M-cycles.
func stepLdU16SP(p *procedure, c *CPU, bus Bus) error {
	switch p.mcycle {
	case 2:
		b, err := c.fetch(bus)
		if err != nil {
			return err
		}
		p.tmp0 = b
	case 3:
		b, err := c.fetch(bus)
		if err != nil {
			return err
		}
		p.tmp1 = b
		p.tmpAddr = combine16(p.tmp1, p.tmp0)
	case 4:
		if err := bus.Write(p.tmpAddr, uint8(c.Regs.SP)); err != nil {
			return err
		}
	case 5:
		if err := bus.Write(p.tmpAddr+1, uint8(c.Regs.SP>>8)); err != nil {
			return err
		}
		p.done = true
	}
	return nil
}

// stepLdRPU16 implements LD rp,nn (x==0, z==1, q==0). 3 M-cycles.
func stepLdRPU16(p *procedure, c *CPU, bus Bus) error {
	switch p.mcycle {
	case 2:
		b, err := c.fetch(bus)
		if err != nil {
			return err
		}
		p.tmp0 = b
	case 3:
		b, err := c.fetch(bus)
		if err != nil {
			return err
		}
		p.tmp1 = b
		c.Regs.setRP(p.p, combine16(p.tmp1, p.tmp0))
		p.done = true
	}
	return nil
}

// indirectAddr returns the effective address for indirect[p] (LD A,(...)
// / LD (...),A) and applies HL+/HL- post-adjustment where relevant.
func indirectAddr(c *CPU, index uint8) uint16 {
	switch index {
	case 0:
		return c.Regs.BC()
	case 1:
		return c.Regs.DE()
	case 2:
		addr := c.Regs.HL()
		c.Regs.SetHL(addr + 1)
		return addr
	default: // 3
		addr := c.Regs.HL()
		c.Regs.SetHL(addr - 1)
		return addr
	}
}

// stepLdToIndirect implements LD (BC),A / LD (DE),A / LD (HL+),A / LD
// (HL-),A (x==0, z==2, q==0). 2 M-cycles.
func stepLdToIndirect(p *procedure, c *CPU, bus Bus) error {
	if p.mcycle == 2 {
		addr := indirectAddr(c, p.p)
		if err := bus.Write(addr, c.Regs.A); err != nil {
			return err
		}
		p.done = true
	}
	return nil
}

// stepLdFromIndirect implements LD A,(BC) / LD A,(DE) / LD A,(HL+) / LD
// A,(HL-) (x==0, z==2, q==1). 2 M-cycles.
func stepLdFromIndirect(p *procedure, c *CPU, bus Bus) error {
	if p.mcycle == 2 {
		addr := indirectAddr(c, p.p)
		val, err := bus.Read(addr)
		if err != nil {
			return err
		}
		c.Regs.A = val
		p.done = true
	}
	return nil
}

// stepLdRU8 implements LD r,n / LD (HL),n (x==0, z==6).
func stepLdRU8(p *procedure, c *CPU, bus Bus) error {
	if p.y != 6 {
		if p.mcycle == 2 {
			n, err := c.fetch(bus)
			if err != nil {
				return err
			}
			*c.Regs.r8(p.y) = n
			p.done = true
		}
		return nil
	}
	switch p.mcycle {
	case 2:
		n, err := c.fetch(bus)
		if err != nil {
			return err
		}
		p.tmp0 = n
	case 3:
		if err := bus.Write(c.Regs.HL(), p.tmp0); err != nil {
			return err
		}
		p.done = true
	}
	return nil
}

// stepLdRR implements LD r,r' (x==1). 1 M-cycle for register-register, 2
// if either operand is (HL).
func stepLdRR(p *procedure, c *CPU, bus Bus) error {
	if p.y != 6 && p.z != 6 {
		if p.mcycle == 1 {
			*c.Regs.r8(p.y) = *c.Regs.r8(p.z)
			p.done = true
		}
		return nil
	}
	if p.mcycle != 2 {
		return nil
	}
	if p.y == 6 {
		if err := bus.Write(c.Regs.HL(), *c.Regs.r8(p.z)); err != nil {
			return err
		}
	} else {
		val, err := bus.Read(c.Regs.HL())
		if err != nil {
			return err
		}
		*c.Regs.r8(p.y) = val
	}
	p.done = true
	return nil
}

// stepLdSPHL implements LD SP,HL (opcode 0xF9). 2 M-cycles.
func stepLdSPHL(p *procedure, c *CPU, bus Bus) error {
	if p.mcycle == 2 {
		c.Regs.SP = c.Regs.HL()
		p.done = true
	}
	return nil
}

// stepLdHLSPR8 implements LD HL,SP+r8 (opcode 0xF8). 3 M-cycles.
func stepLdHLSPR8(p *procedure, c *CPU, bus Bus) error {
	switch p.mcycle {
	case 2:
		n, err := c.fetch(bus)
		if err != nil {
			return err
		}
		p.tmp0 = n
	case 3:
		offset := int8(p.tmp0)
		h := c.Regs.SP&0x0F+uint16(p.tmp0)&0x0F > 0x0F
		cy := c.Regs.SP&0xFF+uint16(p.tmp0) > 0xFF
		c.Regs.SetHL(uint16(int32(c.Regs.SP) + int32(offset)))
		c.Regs.setFlags(false, false, h, cy)
		p.done = true
	}
	return nil
}

// stepAddSPR8 implements ADD SP,r8 (opcode 0xE8). 4 M-cycles. Flags are
// computed as if r8 were added as an unsigned byte to SP's low byte, the
// same quirk LD HL,SP+r8 uses.
func stepAddSPR8(p *procedure, c *CPU, bus Bus) error {
	switch p.mcycle {
	case 2:
		n, err := c.fetch(bus)
		if err != nil {
			return err
		}
		p.tmp0 = n
	case 4:
		offset := int8(p.tmp0)
		h := c.Regs.SP&0x0F+uint16(p.tmp0)&0x0F > 0x0F
		cy := c.Regs.SP&0xFF+uint16(p.tmp0) > 0xFF
		c.Regs.SP = uint16(int32(c.Regs.SP) + int32(offset))
		c.Regs.setFlags(false, false, h, cy)
		p.done = true
	}
	return nil
}

// stepLdhToA8 implements LDH (n),A (opcode 0xE0). 3 M-cycles.
func stepLdhToA8(p *procedure, c *CPU, bus Bus) error {
	switch p.mcycle {
	case 2:
		n, err := c.fetch(bus)
		if err != nil {
			return err
		}
		p.tmp0 = n
	case 3:
		if err := bus.Write(0xFF00+uint16(p.tmp0), c.Regs.A); err != nil {
			return err
		}
		p.done = true
	}
	return nil
}

// stepLdhFromA8 implements LDH A,(n) (opcode 0xF0). 3 M-cycles.
func stepLdhFromA8(p *procedure, c *CPU, bus Bus) error {
	switch p.mcycle {
	case 2:
		n, err := c.fetch(bus)
		if err != nil {
			return err
		}
		p.tmp0 = n
	case 3:
		val, err := bus.Read(0xFF00 + uint16(p.tmp0))
		if err != nil {
			return err
		}
		c.Regs.A = val
		p.done = true
	}
	return nil
}

// stepLdToIOC implements LD (C),A (opcode 0xE2). 2 M-cycles.
func stepLdToIOC(p *procedure, c *CPU, bus Bus) error {
	if p.mcycle == 2 {
		if err := bus.Write(0xFF00+uint16(c.Regs.C), c.Regs.A); err != nil {
			return err
		}
		p.done = true
	}
	return nil
}

// stepLdFromIOC implements LD A,(C) (opcode 0xF2). 2 M-cycles.
func stepLdFromIOC(p *procedure, c *CPU, bus Bus) error {
	if p.mcycle == 2 {
		val, err := bus.Read(0xFF00 + uint16(c.Regs.C))
		if err != nil {
			return err
		}
		c.Regs.A = val
		p.done = true
	}
	return nil
}

// stepLdU16A implements LD (nn),A (opcode 0xEA). 4 M-cycles.
func stepLdU16A(p *procedure, c *CPU, bus Bus) error {
	switch p.mcycle {
	case 2:
		b, err := c.fetch(bus)
		if err != nil {
			return err
		}
		p.tmp0 = b
	case 3:
		b, err := c.fetch(bus)
		if err != nil {
			return err
		}
		p.tmp1 = b
	case 4:
		if err := bus.Write(combine16(p.tmp1, p.tmp0), c.Regs.A); err != nil {
			return err
		}
		p.done = true
	}
	return nil
}

// stepLdAU16 implements LD A,(nn) (opcode 0xFA). 4 M-cycles.
func stepLdAU16(p *procedure, c *CPU, bus Bus) error {
	switch p.mcycle {
	case 2:
		b, err := c.fetch(bus)
		if err != nil {
			return err
		}
		p.tmp0 = b
	case 3:
		b, err := c.fetch(bus)
		if err != nil {
			return err
		}
		p.tmp1 = b
	case 4:
		val, err := bus.Read(combine16(p.tmp1, p.tmp0))
		if err != nil {
			return err
		}
		c.Regs.A = val
		p.done = true
	}
	return nil
}
