// Package inst holds the TRISK instruction catalog: the mnemonic table
// shared by the assembler's emitter and the emulator's decoder.
package inst

// Shape is the operand-layout tag for a mnemonic. Emission dispatches
// on it instead of per-mnemonic virtual calls; Decode classifies
// opcode bytes by their bit ranges.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeOneReg
	ShapeTwoReg
	ShapeRegImm
	ShapeByteLiteral
)

// NumRegisters is the register-file width. Indices >= NumRegisters are
// out of range; reads return 0, writes are dropped (see pkg/cpu).
const NumRegisters = 4
