package cpu

// rotateOp implements the eight CB-prefixed rotate/shift kinds selected by
// y: 0=RLC 1=RRC 2=RL 3=RR 4=SLA 5=SRA 6=SWAP 7=SRL.
func rotateOp(y uint8, val uint8, carryIn bool) (result uint8, carryOut bool) {
	switch y {
	case 0: // RLC
		carryOut = val&0x80 != 0
		result = val<<1 | b2u8(carryOut)
	case 1: // RRC
		carryOut = val&0x01 != 0
		result = val>>1 | b2u8(carryOut)<<7
	case 2: // RL
		carryOut = val&0x80 != 0
		result = val<<1 | b2u8(carryIn)
	case 3: // RR
		carryOut = val&0x01 != 0
		result = val>>1 | b2u8(carryIn)<<7
	case 4: // SLA
		carryOut = val&0x80 != 0
		result = val << 1
	case 5: // SRA
		carryOut = val&0x01 != 0
		result = val>>1 | val&0x80
	case 6: // SWAP
		result = val<<4 | val>>4
		carryOut = false
	default: // 7 = SRL
		carryOut = val&0x01 != 0
		result = val >> 1
	}
	return result, carryOut
}

// applyCBRegister performs the CB-group operation cached on p directly
// against register r[p.z] (p.z != 6).
func applyCBRegister(c *CPU, p *procedure) {
	reg := c.Regs.r8(p.z)
	switch p.cbKind {
	case cbKindRotate:
		carryIn := c.Regs.flag(FlagC)
		result, carryOut := rotateOp(p.y, *reg, carryIn)
		*reg = result
		c.Regs.setFlags(result == 0, false, false, carryOut)
	case cbKindBit:
		zFlag := *reg&(1<<p.y) == 0
		c.Regs.setFlag(FlagZ, zFlag)
		c.Regs.setFlag(FlagN, false)
		c.Regs.setFlag(FlagH, true)
	case cbKindRes:
		*reg &^= 1 << p.y
	case cbKindSet:
		*reg |= 1 << p.y
	}
}

// applyCBToValue performs a non-BIT CB-group operation against an (HL)
// byte, returning the new byte to write back. BIT is handled inline by the
// caller since it writes no value.
func applyCBToValue(c *CPU, p *procedure, val uint8) uint8 {
	switch p.cbKind {
	case cbKindRotate:
		carryIn := c.Regs.flag(FlagC)
		result, carryOut := rotateOp(p.y, val, carryIn)
		c.Regs.setFlags(result == 0, false, false, carryOut)
		return result
	case cbKindRes:
		return val &^ (1 << p.y)
	default: // cbKindSet
		return val | (1 << p.y)
	}
}

// stepCBPrefix implements the entire CB-prefixed group as one procedure
// installed when the main fetch sees opcode 0xCB. Per spec.md section 9's
// design note and DESIGN.md Open Question 4, the real CB opcode is fetched
// in its own M-cycle (mcycle 2) rather than in the same M-cycle as the
// 0xCB byte, so the source's "one M-cycle early" quirk does not recur.
//
// Timing: register operand = 2 M-cycles total, (HL) BIT = 3, (HL)
// rotate/RES/SET = 4.
func stepCBPrefix(p *procedure, c *CPU, bus Bus) error {
	switch p.mcycle {
	case 1:
		// This M-cycle held only the 0xCB fetch (done by the pipeline
		// before installing this procedure).
		return nil
	case 2:
		cbOpcode, err := c.fetch(bus)
		if err != nil {
			return err
		}
		x, y, z := decodeFields(cbOpcode)
		p.opcode = cbOpcode
		p.x, p.y, p.z = x, y, z
		p.cbKind = resolveCBKindFor(x)
		if z != 6 {
			applyCBRegister(c, p)
			p.done = true
			return nil
		}
		return nil
	case 3:
		val, err := bus.Read(c.Regs.HL())
		if err != nil {
			return err
		}
		if p.cbKind == cbKindBit {
			zFlag := val&(1<<p.y) == 0
			c.Regs.setFlag(FlagZ, zFlag)
			c.Regs.setFlag(FlagN, false)
			c.Regs.setFlag(FlagH, true)
			p.done = true
			return nil
		}
		p.tmp1 = applyCBToValue(c, p, val)
		return nil
	case 4:
		if err := bus.Write(c.Regs.HL(), p.tmp1); err != nil {
			return err
		}
		p.done = true
	}
	return nil
}
