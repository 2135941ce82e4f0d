package cpu

// decodeFields extracts the standard x/y/z bit fields from an opcode byte:
// x = bits 7-6, y = bits 5-3, z = bits 2-0.
func decodeFields(opcode uint8) (x, y, z uint8) {
	return opcode >> 6, (opcode >> 3) & 0x07, opcode & 0x07
}

// removedOpcodes are the opcodes with no defined instruction on this
// architecture: the 0xDD/0xED/0xFD prefix bytes and the unused slots in the
// x=3 rows. Executing any of them is fatal per spec.md section 4.2/7.
var removedOpcodes = map[uint8]bool{
	0xD3: true, 0xDB: true, 0xDD: true,
	0xE3: true, 0xE4: true, 0xEB: true, 0xEC: true, 0xED: true,
	0xF4: true, 0xFC: true, 0xFD: true,
}

// resolveStep maps a (non-CB, non-removed) opcode to its step function.
// The pipeline caches the decode fields that function needs when it
// installs the procedure.
func resolveStep(opcode uint8) (stepFunc, *Fault) {
	if removedOpcodes[opcode] {
		return nil, NewOpcodeFault("removed opcode", opcode)
	}
	switch opcode {
	case 0x10:
		return nil, NewOpcodeFault("execution of STOP", opcode)
	case 0x76:
		return nil, NewOpcodeFault("execution of HALT", opcode)
	case 0xD9:
		return nil, NewOpcodeFault("RETI is unimplemented", opcode)
	case 0xCB:
		// handled by the pipeline before resolveStep is reached.
		return nil, NewOpcodeFault("CB prefix reached resolveStep", opcode)
	}

	x, y, z := decodeFields(opcode)
	p, q := y>>1, y&1

	switch x {
	case 0:
		switch z {
		case 0:
			switch {
			case y == 0:
				return stepNop, nil
			case y == 1:
				return stepLdU16SP, nil
			case y == 3:
				return stepJrD, nil
			default: // y = 4..7
				return stepJrCond, nil
			}
		case 1:
			if q == 0 {
				return stepLdRPU16, nil
			}
			return stepAddHLRP, nil
		case 2:
			if q == 0 {
				return stepLdToIndirect, nil
			}
			return stepLdFromIndirect, nil
		case 3:
			return stepIncDecRP, nil
		case 4:
			return stepIncR, nil
		case 5:
			return stepDecR, nil
		case 6:
			return stepLdRU8, nil
		case 7:
			if y <= 3 {
				return stepRotateA, nil
			}
			return stepDaaCplScfCcf, nil
		}
	case 1:
		return stepLdRR, nil
	case 2:
		return stepAluR, nil
	case 3:
		switch z {
		case 0:
			switch {
			case y <= 3:
				return stepRetCond, nil
			case y == 4:
				return stepLdhToA8, nil
			case y == 5:
				return stepAddSPR8, nil
			case y == 6:
				return stepLdhFromA8, nil
			default: // y == 7
				return stepLdHLSPR8, nil
			}
		case 1:
			if q == 0 {
				return stepPop, nil
			}
			switch p {
			case 0:
				return stepRet, nil
			case 2:
				return stepJpHL, nil
			default: // p == 3
				return stepLdSPHL, nil
			}
		case 2:
			switch {
			case y <= 3:
				return stepJpCond, nil
			case y == 4:
				return stepLdToIOC, nil
			case y == 5:
				return stepLdU16A, nil
			case y == 6:
				return stepLdFromIOC, nil
			default: // y == 7
				return stepLdAU16, nil
			}
		case 3:
			switch y {
			case 0:
				return stepJpU16, nil
			case 6:
				return stepDI, nil
			case 7:
				return stepEI, nil
			}
		case 4:
			return stepCallCond, nil
		case 5:
			if q == 0 {
				return stepPush, nil
			}
			return stepCallU16, nil
		case 6:
			return stepAluU8, nil
		case 7:
			return stepRST, nil
		}
	}

	return nil, NewOpcodeFault("unimplemented opcode", opcode)
}

// cbKind constants for the CB-prefixed group (spec.md section 4.3).
const (
	cbKindRotate uint8 = iota
	cbKindBit
	cbKindRes
	cbKindSet
)

// resolveCBKindFor returns the cbKind for a CB opcode's x field: rotate/
// shift for x==0, BIT, RES and SET for x==1..3. The rotate sub-op is the
// opcode's y field, read by rotateOp.
func resolveCBKindFor(x uint8) uint8 {
	switch x {
	case 0:
		return cbKindRotate
	case 1:
		return cbKindBit
	case 2:
		return cbKindRes
	default:
		return cbKindSet
	}
}
