package cpu

// ioRegs holds the CPU-owned register bytes in the 0xFF00-0xFF02,
// 0xFF04-0xFF07, 0xFF0F and 0xFFFF ranges of the bus address map. The
// covered core stores these bytes so the bus contract is total over that
// range, per spec.md section 4.1; it does not implement joypad matrix
// scanning, timer counting, or serial clocking (all explicit Non-goals).
type ioRegs struct {
	joyp, sb, sc       uint8
	div, tima, tma, tac uint8
	ifReg              uint8
	ie                 uint8
}

// ReadIO returns the byte at addr and true if addr is one of the CPU-owned
// IO registers. The second return is false for any other address.
func (c *CPU) ReadIO(addr uint16) (uint8, bool) {
	switch addr {
	case 0xFF00:
		return c.io.joyp, true
	case 0xFF01:
		return c.io.sb, true
	case 0xFF02:
		return c.io.sc, true
	case 0xFF04:
		return c.io.div, true
	case 0xFF05:
		return c.io.tima, true
	case 0xFF06:
		return c.io.tma, true
	case 0xFF07:
		return c.io.tac, true
	case 0xFF0F:
		return c.io.ifReg, true
	case 0xFFFF:
		return c.io.ie, true
	default:
		return 0, false
	}
}

// WriteIO writes data to addr if it is one of the CPU-owned IO registers
// and reports whether it claimed the address.
func (c *CPU) WriteIO(addr uint16, data uint8) bool {
	switch addr {
	case 0xFF00:
		c.io.joyp = data
	case 0xFF01:
		c.io.sb = data
	case 0xFF02:
		c.io.sc = data
	case 0xFF04:
		c.io.div = data
	case 0xFF05:
		c.io.tima = data
	case 0xFF06:
		c.io.tma = data
	case 0xFF07:
		c.io.tac = data
	case 0xFF0F:
		c.io.ifReg = data
	case 0xFFFF:
		c.io.ie = data
	default:
		return false
	}
	return true
}
