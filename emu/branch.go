package emu

// BranchUnit implements Z16 conditional branches and register jumps.
type BranchUnit struct {
	regFile *RegFile
}

// NewBranchUnit creates a new BranchUnit connected to the given register
// file.
func NewBranchUnit(regFile *RegFile) *BranchUnit {
	return &BranchUnit{regFile: regFile}
}

// Taken reports whether a B-type branch with the given funct3, rs1, and rs2
// is taken. rs2 is ignored by bz/bnz (it is present in the encoding and its
// register is read, but its value does not affect the result), per §4.2/§9.
func (b *BranchUnit) Taken(funct3, rs1, rs2 uint8) bool {
	lhs := b.regFile.ReadReg(rs1)
	rhs := b.regFile.ReadReg(rs2)

	switch funct3 {
	case 0x0: // beq
		return lhs == rhs
	case 0x1: // bne
		return lhs != rhs
	case 0x2: // bz
		return lhs == 0
	case 0x3: // bnz
		return lhs != 0
	case 0x4: // blt (signed)
		return int16(lhs) < int16(rhs)
	case 0x5: // bge (signed)
		return int16(lhs) >= int16(rhs)
	case 0x6: // bltu
		return lhs < rhs
	case 0x7: // bgeu
		return lhs >= rhs
	default:
		return false
	}
}

// Jr implements jr rs2: pc <- rs2.
func (b *BranchUnit) Jr(rs2 uint8) uint16 {
	return b.regFile.ReadReg(rs2)
}

// Jalr implements jalr rs2: tmp <- pc+2; pc <- rs2; rd <- tmp. rd is the
// R-type RdRs1 field, rs2 the jump target register.
func (b *BranchUnit) Jalr(rd, rs2 uint8, pc uint16) (newPC uint16) {
	target := b.regFile.ReadReg(rs2)
	b.regFile.WriteReg(rd, pc+2)
	return target
}
