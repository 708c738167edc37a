package emu

// ALU executes R-type and I-type arithmetic, comparison, shift, and logic
// instructions. All arithmetic is modulo 2^16, wrapping on overflow — Go's
// uint16 arithmetic already wraps, so no explicit masking is needed beyond
// the shift-amount masks the ISA specifies.
type ALU struct {
	regFile *RegFile
}

// NewALU creates a new ALU connected to the given register file.
func NewALU(regFile *RegFile) *ALU {
	return &ALU{regFile: regFile}
}

// Add implements R-type add: rd <- rd + rs2.
func (a *ALU) Add(rd, rs2 uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rd)+a.regFile.ReadReg(rs2))
}

// Sub implements R-type sub: rd <- rd - rs2.
func (a *ALU) Sub(rd, rs2 uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rd)-a.regFile.ReadReg(rs2))
}

// Slt implements signed set-less-than: rd <- (rd < rs2) ? 1 : 0.
func (a *ALU) Slt(rd, rs2 uint8) {
	lhs := int16(a.regFile.ReadReg(rd))
	rhs := int16(a.regFile.ReadReg(rs2))
	a.regFile.WriteReg(rd, boolToReg(lhs < rhs))
}

// Sltu implements unsigned set-less-than.
func (a *ALU) Sltu(rd, rs2 uint8) {
	lhs := a.regFile.ReadReg(rd)
	rhs := a.regFile.ReadReg(rs2)
	a.regFile.WriteReg(rd, boolToReg(lhs < rhs))
}

// Sll implements logical shift left: rd <- rd << (rs2 & 0xF).
func (a *ALU) Sll(rd, rs2 uint8) {
	shamt := a.regFile.ReadReg(rs2) & 0xF
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rd)<<shamt)
}

// Srl implements logical shift right.
func (a *ALU) Srl(rd, rs2 uint8) {
	shamt := a.regFile.ReadReg(rs2) & 0xF
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rd)>>shamt)
}

// Sra implements arithmetic shift right, replicating bit 15.
func (a *ALU) Sra(rd, rs2 uint8) {
	shamt := a.regFile.ReadReg(rs2) & 0xF
	val := int16(a.regFile.ReadReg(rd))
	a.regFile.WriteReg(rd, uint16(val>>shamt))
}

// Or implements bitwise or.
func (a *ALU) Or(rd, rs2 uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rd)|a.regFile.ReadReg(rs2))
}

// And implements bitwise and.
func (a *ALU) And(rd, rs2 uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rd)&a.regFile.ReadReg(rs2))
}

// Xor implements bitwise xor.
func (a *ALU) Xor(rd, rs2 uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rd)^a.regFile.ReadReg(rs2))
}

// Mv implements register move: rd <- rs2.
func (a *ALU) Mv(rd, rs2 uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rs2))
}

// AddImm implements addi: rd <- rd + simm.
func (a *ALU) AddImm(rd uint8, simm int16) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rd)+uint16(simm))
}

// SltImm implements slti: signed comparison against the sign-extended
// immediate.
func (a *ALU) SltImm(rd uint8, simm int16) {
	lhs := int16(a.regFile.ReadReg(rd))
	a.regFile.WriteReg(rd, boolToReg(lhs < simm))
}

// SltuImm implements sltui: the sign-extended immediate is reinterpreted as
// unsigned for the comparison, per §4.2.
func (a *ALU) SltuImm(rd uint8, simm int16) {
	lhs := a.regFile.ReadReg(rd)
	a.regFile.WriteReg(rd, boolToReg(lhs < uint16(simm)))
}

// Slli implements shift-left-immediate.
func (a *ALU) Slli(rd uint8, shamt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rd)<<shamt)
}

// Srli implements logical shift-right-immediate.
func (a *ALU) Srli(rd uint8, shamt uint8) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rd)>>shamt)
}

// Srai implements arithmetic shift-right-immediate.
func (a *ALU) Srai(rd uint8, shamt uint8) {
	val := int16(a.regFile.ReadReg(rd))
	a.regFile.WriteReg(rd, uint16(val>>shamt))
}

// OrImm implements ori.
func (a *ALU) OrImm(rd uint8, simm int16) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rd)|uint16(simm))
}

// AndImm implements andi.
func (a *ALU) AndImm(rd uint8, simm int16) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rd)&uint16(simm))
}

// XorImm implements xori.
func (a *ALU) XorImm(rd uint8, simm int16) {
	a.regFile.WriteReg(rd, a.regFile.ReadReg(rd)^uint16(simm))
}

// Li implements li: rd <- simm.
func (a *ALU) Li(rd uint8, simm int16) {
	a.regFile.WriteReg(rd, uint16(simm))
}

func boolToReg(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}
