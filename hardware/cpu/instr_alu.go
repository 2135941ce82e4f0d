package cpu

// applyALU performs ALU op y (0=ADD 1=ADC 2=SUB 3=SBC 4=AND 5=XOR 6=OR
// 7=CP) against the accumulator and writes the flags; CP computes flags
// without storing the result, matching spec.md's "CP produces the same
// flags as SUB but does not modify A".
func applyALU(c *CPU, op uint8, operand uint8) {
	a := c.Regs.A
	carryIn := b2u8(c.Regs.flag(FlagC))

	var r aluResult
	switch op {
	case 0:
		r = add8(a, operand)
	case 1:
		r = adc8(a, operand, carryIn)
	case 2:
		r = sub8(a, operand)
	case 3:
		r = sbc8(a, operand, carryIn)
	case 4:
		r = and8(a, operand)
	case 5:
		r = xor8(a, operand)
	case 6:
		r = or8(a, operand)
	default: // 7 = CP
		r = sub8(a, operand)
	}

	c.Regs.setFlags(r.z, r.n, r.h, r.c)
	if op != 7 {
		c.Regs.A = r.result
	}
}

// stepAluR implements ADD/ADC/SUB/SBC/AND/XOR/OR/CP A,r[z] (x==2). 1
// M-cycle for a register operand, 2 for (HL).
func stepAluR(p *procedure, c *CPU, bus Bus) error {
	if p.z != 6 {
		if p.mcycle == 1 {
			applyALU(c, p.y, *c.Regs.r8(p.z))
			p.done = true
		}
		return nil
	}
	switch p.mcycle {
	case 2:
		val, err := bus.Read(c.Regs.HL())
		if err != nil {
			return err
		}
		applyALU(c, p.y, val)
		p.done = true
	}
	return nil
}

// stepAluU8 implements ADD/ADC/SUB/SBC/AND/XOR/OR/CP A,n (x==3, z==6).
func stepAluU8(p *procedure, c *CPU, bus Bus) error {
	switch p.mcycle {
	case 2:
		n, err := c.fetch(bus)
		if err != nil {
			return err
		}
		applyALU(c, p.y, n)
		p.done = true
	}
	return nil
}

// stepIncR implements INC r / INC (HL) (x==0, z==4). 1 M-cycle for a
// register, 3 for (HL).
func stepIncR(p *procedure, c *CPU, bus Bus) error {
	if p.y != 6 {
		if p.mcycle == 1 {
			reg := c.Regs.r8(p.y)
			result, z, h := inc8(*reg)
			*reg = result
			c.Regs.setFlag(FlagZ, z)
			c.Regs.setFlag(FlagN, false)
			c.Regs.setFlag(FlagH, h)
			p.done = true
		}
		return nil
	}
	switch p.mcycle {
	case 2:
		val, err := bus.Read(c.Regs.HL())
		if err != nil {
			return err
		}
		p.tmp0 = val
	case 3:
		result, z, h := inc8(p.tmp0)
		if err := bus.Write(c.Regs.HL(), result); err != nil {
			return err
		}
		c.Regs.setFlag(FlagZ, z)
		c.Regs.setFlag(FlagN, false)
		c.Regs.setFlag(FlagH, h)
		p.done = true
	}
	return nil
}

// stepDecR implements DEC r / DEC (HL) (x==0, z==5).
func stepDecR(p *procedure, c *CPU, bus Bus) error {
	if p.y != 6 {
		if p.mcycle == 1 {
			reg := c.Regs.r8(p.y)
			result, z, h := dec8(*reg)
			*reg = result
			c.Regs.setFlag(FlagZ, z)
			c.Regs.setFlag(FlagN, true)
			c.Regs.setFlag(FlagH, h)
			p.done = true
		}
		return nil
	}
	switch p.mcycle {
	case 2:
		val, err := bus.Read(c.Regs.HL())
		if err != nil {
			return err
		}
		p.tmp0 = val
	case 3:
		result, z, h := dec8(p.tmp0)
		if err := bus.Write(c.Regs.HL(), result); err != nil {
			return err
		}
		c.Regs.setFlag(FlagZ, z)
		c.Regs.setFlag(FlagN, true)
		c.Regs.setFlag(FlagH, h)
		p.done = true
	}
	return nil
}

// stepIncDecRP implements INC rp / DEC rp (x==0, z==3). Both directions
// share one code path indexed by p.q, so the source's dec_rp indexing bug
// (DESIGN.md Open Question 1) has no way to recur here.
func stepIncDecRP(p *procedure, c *CPU, bus Bus) error {
	if p.mcycle == 2 {
		v := c.Regs.rp(p.p)
		if p.q == 0 {
			v++
		} else {
			v--
		}
		c.Regs.setRP(p.p, v)
		p.done = true
	}
	return nil
}

// stepAddHLRP implements ADD HL,rp (x==0, z==1, q==1).
func stepAddHLRP(p *procedure, c *CPU, bus Bus) error {
	if p.mcycle == 2 {
		result, h, carry := add16(c.Regs.HL(), c.Regs.rp(p.p))
		c.Regs.SetHL(result)
		c.Regs.setFlag(FlagN, false)
		c.Regs.setFlag(FlagH, h)
		c.Regs.setFlag(FlagC, carry)
		p.done = true
	}
	return nil
}

// stepRotateA implements RLCA/RRCA/RLA/RRA (x==0, z==7, y==0..3). Unlike
// the CB-prefixed rotate group, these always clear Z regardless of the
// result.
func stepRotateA(p *procedure, c *CPU, bus Bus) error {
	if p.mcycle != 1 {
		return nil
	}
	carryIn := c.Regs.flag(FlagC)
	result, carryOut := rotateOp(p.y, c.Regs.A, carryIn)
	c.Regs.A = result
	c.Regs.setFlags(false, false, false, carryOut)
	p.done = true
	return nil
}

// stepDaaCplScfCcf implements DAA/CPL/SCF/CCF (x==0, z==7, y==4..7). The
// source stubs these fatal; spec.md section 9 requires real
// implementations, grounded on the standard textbook algorithm (see
// DESIGN.md Open Question 3).
func stepDaaCplScfCcf(p *procedure, c *CPU, bus Bus) error {
	if p.mcycle != 1 {
		return nil
	}
	switch p.y {
	case 4: // DAA
		result, z, carry := daa(c.Regs.A, c.Regs.flag(FlagN), c.Regs.flag(FlagH), c.Regs.flag(FlagC))
		c.Regs.A = result
		c.Regs.setFlag(FlagZ, z)
		c.Regs.setFlag(FlagH, false)
		c.Regs.setFlag(FlagC, carry)
	case 5: // CPL
		c.Regs.A = ^c.Regs.A
		c.Regs.setFlag(FlagN, true)
		c.Regs.setFlag(FlagH, true)
	case 6: // SCF
		c.Regs.setFlag(FlagN, false)
		c.Regs.setFlag(FlagH, false)
		c.Regs.setFlag(FlagC, true)
	case 7: // CCF
		c.Regs.setFlag(FlagN, false)
		c.Regs.setFlag(FlagH, false)
		c.Regs.setFlag(FlagC, !c.Regs.flag(FlagC))
	}
	p.done = true
	return nil
}

// daa implements the BCD-adjust-after-add/subtract algorithm: after an
// ADD, adjust nibbles that overflowed decimal; after a SUB, undo the
// adjustment the preceding SUB's borrow implies. H is always cleared
// afterward.
func daa(a uint8, n, h, c bool) (result uint8, zero, carry bool) {
	adjust := uint8(0)
	carry = c
	if h || (!n && a&0x0F > 0x09) {
		adjust |= 0x06
	}
	if c || (!n && a > 0x99) {
		adjust |= 0x60
		carry = true
	}
	if n {
		a -= adjust
	} else {
		a += adjust
	}
	return a, a == 0, carry
}
