// Package isa provides Z16 instruction definitions and decoding.
//
// This package implements decoding of Z16 machine code into structured
// instruction representations. Z16 instructions are fixed 16-bit words; the
// low 3 bits of every word select one of seven format classes:
//
//	R-type (opcode 0): register/register ALU and jump-via-register ops
//	I-type (opcode 1): register/immediate ALU ops and shift-immediates
//	B-type (opcode 2): PC-relative conditional branches
//	S-type (opcode 3): stores
//	L-type (opcode 4): loads
//	J-type (opcode 5): unconditional jump / jump-and-link
//	U-type (opcode 6): upper-immediate (lui/auipc)
//	SYS    (opcode 7): ecall
//
// Usage:
//
//	decoder := isa.NewDecoder()
//	inst := decoder.Decode(0xC1F1)
//	fmt.Println(inst.Format, isa.Disassemble(inst, 0))
package isa

// Format represents a Z16 instruction encoding format.
type Format uint8

// Z16 instruction formats, keyed by the 3-bit opcode field.
const (
	FormatUnknown Format = iota
	FormatR
	FormatI
	FormatB
	FormatS
	FormatL
	FormatJ
	FormatU
	FormatSys
)

// Instruction is the tagged decode record shared by the disassembler and the
// executor: the Decoder extracts raw fields only, it never sign-extends or
// otherwise interprets them, so both downstream consumers apply the same
// conventions independently of each other.
type Instruction struct {
	Raw    uint16 // the original 16-bit word, for trace output
	Opcode uint8  // bits [2:0], shared by every format
	Format Format

	// R-type fields.
	Funct4 uint8 // bits [15:12]
	Funct3 uint8 // bits [5:3] (shared with I/B/L/S-type)
	Rs2    uint8 // bits [11:9] (R/B/S-type) or base register (L-type)
	RdRs1  uint8 // bits [8:6]: destination/first-source register

	// I-type fields.
	Imm7 uint8 // bits [15:9], raw unsigned 7-bit immediate

	// B-type fields.
	BOffsetHi uint8 // bits [15:12]: imm[4:1]

	// S/L-type fields.
	Imm4 uint8 // bits [15:12], raw unsigned 4-bit immediate

	// J-type fields.
	JFlag   uint8 // bit [15]: 0 = j, 1 = jal
	JOffHi  uint8 // bits [14:9]: offset[9:4]
	JRd     uint8 // bits [8:6]
	JOffLo  uint8 // bits [5:3]: offset[3:1]

	// U-type fields.
	UFlag  uint8 // bit [15]: 0 = lui, 1 = auipc
	UImmHi uint8 // bits [14:10]
	URd    uint8 // bits [8:6]
	UImmLo uint8 // bits [5:3]

	// SYS-type fields.
	Service uint16 // bits [15:6], 10-bit ecall service number
}

// Decoder decodes Z16 machine code into instructions.
type Decoder struct{}

// NewDecoder creates a new Z16 instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 16-bit Z16 instruction word.
func (d *Decoder) Decode(word uint16) *Instruction {
	inst := &Instruction{Raw: word, Opcode: uint8(word & 0x7)}

	switch inst.Opcode {
	case 0x0:
		inst.Format = FormatR
		inst.Funct4 = uint8((word >> 12) & 0xF)
		inst.Rs2 = uint8((word >> 9) & 0x7)
		inst.RdRs1 = uint8((word >> 6) & 0x7)
		inst.Funct3 = uint8((word >> 3) & 0x7)
	case 0x1:
		inst.Format = FormatI
		inst.Imm7 = uint8((word >> 9) & 0x7F)
		inst.RdRs1 = uint8((word >> 6) & 0x7)
		inst.Funct3 = uint8((word >> 3) & 0x7)
	case 0x2:
		inst.Format = FormatB
		inst.BOffsetHi = uint8((word >> 12) & 0xF)
		inst.Rs2 = uint8((word >> 9) & 0x7)
		inst.RdRs1 = uint8((word >> 6) & 0x7) // rs1, reuses the RdRs1 slot
		inst.Funct3 = uint8((word >> 3) & 0x7)
	case 0x3:
		inst.Format = FormatS
		inst.Imm4 = uint8((word >> 12) & 0xF)
		inst.Rs2 = uint8((word >> 9) & 0x7)
		inst.RdRs1 = uint8((word >> 6) & 0x7) // rs1
		inst.Funct3 = uint8((word >> 3) & 0x7)
	case 0x4:
		inst.Format = FormatL
		inst.Imm4 = uint8((word >> 12) & 0xF)
		inst.Rs2 = uint8((word >> 9) & 0x7) // base register
		inst.RdRs1 = uint8((word >> 6) & 0x7) // rd
		inst.Funct3 = uint8((word >> 3) & 0x7)
	case 0x5:
		inst.Format = FormatJ
		inst.JFlag = uint8((word >> 15) & 0x1)
		inst.JOffHi = uint8((word >> 9) & 0x3F)
		inst.JRd = uint8((word >> 6) & 0x7)
		inst.JOffLo = uint8((word >> 3) & 0x7)
	case 0x6:
		inst.Format = FormatU
		inst.UFlag = uint8((word >> 15) & 0x1)
		inst.UImmHi = uint8((word >> 10) & 0x1F)
		inst.URd = uint8((word >> 6) & 0x7)
		inst.UImmLo = uint8((word >> 3) & 0x7)
	case 0x7:
		inst.Format = FormatSys
		inst.Service = (word >> 6) & 0x3FF
	default:
		inst.Format = FormatUnknown
	}

	return inst
}

// SignExtendImm7 sign-extends the 7-bit I-type immediate to int16, replicating
// bit 6.
func SignExtendImm7(imm7 uint8) int16 {
	if imm7&0x40 != 0 {
		return int16(imm7) | ^int16(0x7F)
	}
	return int16(imm7)
}

// BranchOffset reconstructs the signed byte offset of a B-type instruction
// from its raw imm[4:1] field: shift left 1, then sign-extend from bit 4.
func BranchOffset(bOffsetHi uint8) int16 {
	offset := int16(bOffsetHi) << 1
	if offset&0x10 != 0 {
		offset |= ^int16(0x1F)
	}
	return offset
}

// JumpOffset reconstructs the signed byte offset of a J-type instruction from
// its split offset[9:4]/offset[3:1] fields: concatenate, shift left 1, then
// sign-extend from bit 10.
func JumpOffset(offHi, offLo uint8) int16 {
	offset := int16((uint16(offHi)<<3)|uint16(offLo)) << 1
	if offset&0x400 != 0 {
		offset |= ^int16(0x7FF)
	}
	return offset
}

// UpperImm reconstructs the 16-bit U-type immediate from its split
// imm_hi[4:0]/imm_lo[2:0] fields: concatenate the 8 bits, then shift left 7.
// This is the executor's convention from the original source (5-bit high,
// shift-left-7); see SPEC_FULL.md §5.1.
func UpperImm(immHi, immLo uint8) uint16 {
	return (uint16(immHi)<<3 | uint16(immLo)) << 7
}

// ShiftImmFields splits an I-type imm7 whose funct3 selects the shift-op
// sub-encoding into its shift-type and shift-amount nibbles.
func ShiftImmFields(imm7 uint8) (shiftType, shamt uint8) {
	return (imm7 >> 4) & 0x7, imm7 & 0xF
}
