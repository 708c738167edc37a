package emu

// LoadStoreUnit implements Z16 load and store operations. Immediates are
// unsigned 4-bit offsets, per §4.1/§4.2.
type LoadStoreUnit struct {
	regFile *RegFile
	memory  *Memory
}

// NewLoadStoreUnit creates a new LoadStoreUnit connected to the given
// register file and memory.
func NewLoadStoreUnit(regFile *RegFile, memory *Memory) *LoadStoreUnit {
	return &LoadStoreUnit{
		regFile: regFile,
		memory:  memory,
	}
}

// Lb implements lb rd, imm(rs2): sign-extend the loaded byte.
func (lsu *LoadStoreUnit) Lb(rd, base uint8, imm uint8) {
	addr := lsu.regFile.ReadReg(base) + uint16(imm)
	value := int16(int8(lsu.memory.Read8(addr)))
	lsu.regFile.WriteReg(rd, uint16(value))
}

// Lw implements lw rd, imm(rs2): little-endian 16-bit load.
func (lsu *LoadStoreUnit) Lw(rd, base uint8, imm uint8) {
	addr := lsu.regFile.ReadReg(base) + uint16(imm)
	lsu.regFile.WriteReg(rd, lsu.memory.Read16(addr))
}

// Lbu implements lbu rd, imm(rs2): zero-extend the loaded byte.
func (lsu *LoadStoreUnit) Lbu(rd, base uint8, imm uint8) {
	addr := lsu.regFile.ReadReg(base) + uint16(imm)
	lsu.regFile.WriteReg(rd, uint16(lsu.memory.Read8(addr)))
}

// Sb implements sb rs2, imm(rs1): memory[rs1+imm] <- rs2[7:0].
func (lsu *LoadStoreUnit) Sb(rs1, rs2 uint8, imm uint8) {
	addr := lsu.regFile.ReadReg(rs1) + uint16(imm)
	lsu.memory.Write8(addr, uint8(lsu.regFile.ReadReg(rs2)))
}

// Sw implements sw rs2, imm(rs1): write rs2 little-endian to rs1+imm and
// rs1+imm+1.
func (lsu *LoadStoreUnit) Sw(rs1, rs2 uint8, imm uint8) {
	addr := lsu.regFile.ReadReg(rs1) + uint16(imm)
	lsu.memory.Write16(addr, lsu.regFile.ReadReg(rs2))
}
