package cpu

// stepFunc is called once per M-cycle by CPU.StepTCycle. It receives the
// in-flight procedure, the owning CPU, and the bus, and may perform at most
// one bus transaction. Setting p.done marks the instruction retired; the
// CPU discards the procedure as soon as that step returns.
type stepFunc func(p *procedure, c *CPU, bus Bus) error

// procedure is the micro-procedure record described in spec.md section 4.3:
// a step function reference, an M-cycle index, a done flag, and scratch
// storage. Per spec.md section 9's design note, the operand indices (the
// opcode's x/y/z/p/q decode fields) are cached here at decode time instead
// of being re-derived from bus[pc-1] on every step.
type procedure struct {
	step   stepFunc
	mcycle int
	done   bool

	// Scratch slots used by individual step functions to carry data between
	// M-cycles (fetched operand bytes, intermediate ALU results, etc).
	tmp0    uint8
	tmp1    uint8
	tmpAddr uint16

	// Cached opcode and decode fields, set once at install time.
	opcode uint8
	x, y, z, p, q uint8

	// cbKind distinguishes the CB-group operation once decoded: 0=rotate,
	// 1=BIT, 2=RES, 3=SET. Only meaningful while step == stepCBPrefix,
	// from its second M-cycle on.
	cbKind uint8
}
