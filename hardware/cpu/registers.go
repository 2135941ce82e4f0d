package cpu

// Registers holds the eight 8-bit registers and two 16-bit registers of the
// DMG CPU. AF/BC/DE/HL are 16-bit views over register pairs; F's low nibble
// is always zero, so SetF and SetAF mask it on write.
type Registers struct {
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16
}

// SetF writes F, forcing the reserved low nibble to zero.
func (r *Registers) SetF(v uint8) {
	r.F = v & 0xF0
}

func (r *Registers) AF() uint16 { return uint16(r.A)<<8 | uint16(r.F) }
func (r *Registers) BC() uint16 { return uint16(r.B)<<8 | uint16(r.C) }
func (r *Registers) DE() uint16 { return uint16(r.D)<<8 | uint16(r.E) }
func (r *Registers) HL() uint16 { return uint16(r.H)<<8 | uint16(r.L) }

func (r *Registers) SetAF(v uint16) {
	r.A = uint8(v >> 8)
	r.SetF(uint8(v))
}

func (r *Registers) SetBC(v uint16) {
	r.B = uint8(v >> 8)
	r.C = uint8(v)
}

func (r *Registers) SetDE(v uint16) {
	r.D = uint8(v >> 8)
	r.E = uint8(v)
}

func (r *Registers) SetHL(v uint16) {
	r.H = uint8(v >> 8)
	r.L = uint8(v)
}

// r8 returns a pointer to the register named by the standard r[z] index:
// 0=B 1=C 2=D 3=E 4=H 5=L 7=A. Index 6 ((HL)) has no register backing and
// must be handled by the caller via bus access.
func (r *Registers) r8(index uint8) *uint8 {
	switch index {
	case 0:
		return &r.B
	case 1:
		return &r.C
	case 2:
		return &r.D
	case 3:
		return &r.E
	case 4:
		return &r.H
	case 5:
		return &r.L
	case 7:
		return &r.A
	default:
		return nil
	}
}

// rp returns the 16-bit register-pair value named by the standard rp[p]
// index: 0=BC 1=DE 2=HL 3=SP.
func (r *Registers) rp(index uint8) uint16 {
	switch index {
	case 0:
		return r.BC()
	case 1:
		return r.DE()
	case 2:
		return r.HL()
	default:
		return r.SP
	}
}

// setRP writes the 16-bit register pair named by rp[p].
func (r *Registers) setRP(index uint8, v uint16) {
	switch index {
	case 0:
		r.SetBC(v)
	case 1:
		r.SetDE(v)
	case 2:
		r.SetHL(v)
	default:
		r.SP = v
	}
}

// rp2 returns the 16-bit register-pair value named by the stack-pair index
// rp2[p]: 0=BC 1=DE 2=HL 3=AF.
func (r *Registers) rp2(index uint8) uint16 {
	if index == 3 {
		return r.AF()
	}
	return r.rp(index)
}

// setRP2 writes the 16-bit register pair named by rp2[p].
func (r *Registers) setRP2(index uint8, v uint16) {
	if index == 3 {
		r.SetAF(v)
		return
	}
	r.setRP(index, v)
}
