package cpu

// aluResult is the common output shape of an 8-bit ALU primitive: the
// result byte plus the four flag values the operation defines. Callers
// that don't care about a given flag (e.g. INC/DEC don't touch C) simply
// don't read that field.
type aluResult struct {
	result         uint8
	z, n, h, c     bool
}

// add8 computes a+b with no carry-in. H is carry out of bit 3, C is carry
// out of bit 7.
func add8(a, b uint8) aluResult {
	sum := uint16(a) + uint16(b)
	return aluResult{
		result: uint8(sum),
		z:      uint8(sum) == 0,
		n:      false,
		h:      (a&0x0F)+(b&0x0F) > 0x0F,
		c:      sum > 0xFF,
	}
}

// adc8 folds carryIn (0 or 1) into both the half-carry and full-carry
// computations, per the textbook definition spec.md section 4.4 describes
// (the source's overflowing_add-based formula does not do this correctly
// for every input; see DESIGN.md Open Question 5).
func adc8(a, b, carryIn uint8) aluResult {
	sum := uint16(a) + uint16(b) + uint16(carryIn)
	return aluResult{
		result: uint8(sum),
		z:      uint8(sum) == 0,
		n:      false,
		h:      (a&0x0F)+(b&0x0F)+carryIn > 0x0F,
		c:      sum > 0xFF,
	}
}

// sub8 computes a-b with no borrow-in. H is borrow out of bit 4, C is
// borrow out of bit 8 (a < b).
func sub8(a, b uint8) aluResult {
	diff := int16(a) - int16(b)
	return aluResult{
		result: uint8(diff),
		z:      uint8(diff) == 0,
		n:      true,
		h:      int16(a&0x0F)-int16(b&0x0F) < 0,
		c:      diff < 0,
	}
}

// sbc8 is sub8 with an extra borrow-in folded into H and C.
func sbc8(a, b, borrowIn uint8) aluResult {
	diff := int16(a) - int16(b) - int16(borrowIn)
	return aluResult{
		result: uint8(diff),
		z:      uint8(diff) == 0,
		n:      true,
		h:      int16(a&0x0F)-int16(b&0x0F)-int16(borrowIn) < 0,
		c:      diff < 0,
	}
}

func and8(a, b uint8) aluResult {
	r := a & b
	return aluResult{result: r, z: r == 0, n: false, h: true, c: false}
}

func or8(a, b uint8) aluResult {
	r := a | b
	return aluResult{result: r, z: r == 0, n: false, h: false, c: false}
}

func xor8(a, b uint8) aluResult {
	r := a ^ b
	return aluResult{result: r, z: r == 0, n: false, h: false, c: false}
}

// inc8 implements INC r: Z/H computed, N=0, C unaffected (caller preserves
// the prior C).
func inc8(a uint8) (result uint8, z, h bool) {
	result = a + 1
	return result, result == 0, a&0x0F == 0x0F
}

// dec8 implements DEC r: Z/H computed, N=1, C unaffected.
func dec8(a uint8) (result uint8, z, h bool) {
	result = a - 1
	return result, result == 0, a&0x0F == 0x00
}

// add16 implements ADD HL,rp: Z preserved by the caller, N=0, H is carry
// out of bit 11, C is carry out of bit 15.
func add16(a, b uint16) (result uint16, h, c bool) {
	sum := uint32(a) + uint32(b)
	return uint16(sum), (a&0x0FFF)+(b&0x0FFF) > 0x0FFF, sum > 0xFFFF
}
