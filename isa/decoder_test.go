package isa_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/z16sim/z16sim/isa"
)

// encodeR builds an R-type word from its fields.
func encodeR(funct4, rs2, rdRs1, funct3 uint8) uint16 {
	return uint16(funct4)<<12 | uint16(rs2)<<9 | uint16(rdRs1)<<6 | uint16(funct3)<<3 | 0x0
}

// encodeI builds an I-type word from its fields.
func encodeI(imm7, rdRs1, funct3 uint8) uint16 {
	return uint16(imm7)<<9 | uint16(rdRs1)<<6 | uint16(funct3)<<3 | 0x1
}

// encodeB builds a B-type word from its fields.
func encodeB(bOffsetHi, rs2, rs1, funct3 uint8) uint16 {
	return uint16(bOffsetHi)<<12 | uint16(rs2)<<9 | uint16(rs1)<<6 | uint16(funct3)<<3 | 0x2
}

// encodeS builds an S-type word from its fields.
func encodeS(imm4, rs2, rs1, funct3 uint8) uint16 {
	return uint16(imm4)<<12 | uint16(rs2)<<9 | uint16(rs1)<<6 | uint16(funct3)<<3 | 0x3
}

// encodeL builds an L-type word from its fields.
func encodeL(imm4, base, rd, funct3 uint8) uint16 {
	return uint16(imm4)<<12 | uint16(base)<<9 | uint16(rd)<<6 | uint16(funct3)<<3 | 0x4
}

// encodeJ builds a J-type word from its fields.
func encodeJ(flag, offHi, rd, offLo uint8) uint16 {
	return uint16(flag)<<15 | uint16(offHi)<<9 | uint16(rd)<<6 | uint16(offLo)<<3 | 0x5
}

// encodeU builds a U-type word from its fields.
func encodeU(flag, immHi, rd, immLo uint8) uint16 {
	return uint16(flag)<<15 | uint16(immHi)<<10 | uint16(rd)<<6 | uint16(immLo)<<3 | 0x6
}

// encodeSys builds a SYS-type word from a service number.
func encodeSys(service uint16) uint16 {
	return service<<6 | 0x7
}

var _ = Describe("Decoder", func() {
	var decoder *isa.Decoder

	BeforeEach(func() {
		decoder = isa.NewDecoder()
	})

	It("decodes an R-type add", func() {
		word := encodeR(0x0, 6, 0, 0x0) // add t0, a0
		inst := decoder.Decode(word)

		Expect(inst.Format).To(Equal(isa.FormatR))
		Expect(inst.Funct4).To(Equal(uint8(0x0)))
		Expect(inst.Funct3).To(Equal(uint8(0x0)))
		Expect(inst.Rs2).To(Equal(uint8(6)))
		Expect(inst.RdRs1).To(Equal(uint8(0)))
	})

	It("decodes an I-type addi with a negative 7-bit immediate", func() {
		word := encodeI(0x7B, 6, 0x0) // addi a0, -5 (0x7B = 1111011, sign bit set)
		inst := decoder.Decode(word)

		Expect(inst.Format).To(Equal(isa.FormatI))
		Expect(inst.Imm7).To(Equal(uint8(0x7B)))
		Expect(inst.RdRs1).To(Equal(uint8(6)))
		Expect(isa.SignExtendImm7(inst.Imm7)).To(Equal(int16(-5)))
	})

	It("decodes a positive I-type immediate without sign extension", func() {
		word := encodeI(42, 6, 0x7) // li a0, 42
		inst := decoder.Decode(word)

		Expect(isa.SignExtendImm7(inst.Imm7)).To(Equal(int16(42)))
	})

	It("decodes a B-type branch and reconstructs the forward offset", func() {
		word := encodeB(2, 0, 0, 0x0) // beq t0, t0, +4
		inst := decoder.Decode(word)

		Expect(inst.Format).To(Equal(isa.FormatB))
		Expect(isa.BranchOffset(inst.BOffsetHi)).To(Equal(int16(4)))
	})

	It("decodes a B-type branch and reconstructs a negative offset", func() {
		// imm[4:1] = 0xF encodes -2 bytes after sign extension from bit 4.
		word := encodeB(0xF, 0, 0, 0x0)
		inst := decoder.Decode(word)

		Expect(isa.BranchOffset(inst.BOffsetHi)).To(Equal(int16(-2)))
	})

	It("decodes an S-type store", func() {
		word := encodeS(3, 6, 2, 0x0) // sb a0, 3(sp)
		inst := decoder.Decode(word)

		Expect(inst.Format).To(Equal(isa.FormatS))
		Expect(inst.Imm4).To(Equal(uint8(3)))
		Expect(inst.Rs2).To(Equal(uint8(6)))
		Expect(inst.RdRs1).To(Equal(uint8(2)))
	})

	It("decodes an L-type load with the base register in the rs2 slot", func() {
		word := encodeL(4, 2, 6, 0x1) // lw a0, 4(sp)
		inst := decoder.Decode(word)

		Expect(inst.Format).To(Equal(isa.FormatL))
		Expect(inst.Rs2).To(Equal(uint8(2)))
		Expect(inst.RdRs1).To(Equal(uint8(6)))
	})

	It("decodes a J-type unconditional jump", func() {
		word := encodeJ(0, 0, 0, 2) // j +4
		inst := decoder.Decode(word)

		Expect(inst.Format).To(Equal(isa.FormatJ))
		Expect(inst.JFlag).To(Equal(uint8(0)))
		Expect(isa.JumpOffset(inst.JOffHi, inst.JOffLo)).To(Equal(int16(4)))
	})

	It("decodes a J-type jal with the maximum forward offset", func() {
		// offset_hi/offset_lo together span only 9 bits, so the shifted
		// byte offset tops out at 1022 and the sign-extension branch (bit
		// 10) is unreachable, matching the original reference: jal/j
		// offsets are effectively unsigned forward jumps.
		word := encodeJ(1, 0x3F, 1, 0x7)
		inst := decoder.Decode(word)

		Expect(inst.JFlag).To(Equal(uint8(1)))
		Expect(isa.JumpOffset(inst.JOffHi, inst.JOffLo)).To(Equal(int16(1022)))
	})

	It("decodes a U-type lui using the executor's field convention", func() {
		word := encodeU(0, 0x00, 6, 0x2) // lui a0, 0x0100
		inst := decoder.Decode(word)

		Expect(inst.Format).To(Equal(isa.FormatU))
		Expect(inst.UFlag).To(Equal(uint8(0)))
		Expect(isa.UpperImm(inst.UImmHi, inst.UImmLo)).To(Equal(uint16(0x0100)))
	})

	It("decodes a SYS-type ecall", func() {
		word := encodeSys(1)
		inst := decoder.Decode(word)

		Expect(inst.Format).To(Equal(isa.FormatSys))
		Expect(inst.Service).To(Equal(uint16(1)))
	})

	It("splits shift-immediate sub-fields", func() {
		imm7 := uint8(0x1<<4 | 0x5) // slli, shamt=5
		shiftType, shamt := isa.ShiftImmFields(imm7)

		Expect(shiftType).To(Equal(uint8(0x1)))
		Expect(shamt).To(Equal(uint8(5)))
	})
})
