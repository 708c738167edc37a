package isa

import "fmt"

// RegNames are the ABI display names for the 8 Z16 registers, in index
// order (register 0 is NOT hardwired to zero — see spec.md §3).
var RegNames = [8]string{"t0", "ra", "sp", "s0", "s1", "t1", "a0", "a1"}

// Disassemble renders a decoded instruction as the human-readable mnemonic
// text defined by spec.md §4.3. pc is the address the instruction was
// fetched from, needed to compute absolute branch/jump targets.
func Disassemble(inst *Instruction, pc uint16) string {
	switch inst.Format {
	case FormatR:
		return disassembleR(inst)
	case FormatI:
		return disassembleI(inst)
	case FormatB:
		return disassembleB(inst, pc)
	case FormatS:
		return disassembleS(inst)
	case FormatL:
		return disassembleL(inst)
	case FormatJ:
		return disassembleJ(inst, pc)
	case FormatU:
		return disassembleU(inst)
	case FormatSys:
		return fmt.Sprintf("ecall %d", inst.Service)
	default:
		return fmt.Sprintf("Unknown opcode 0x%X", inst.Opcode)
	}
}

func disassembleR(inst *Instruction) string {
	rd := RegNames[inst.RdRs1]
	rs2 := RegNames[inst.Rs2]

	switch inst.Funct3 {
	case 0x0:
		switch inst.Funct4 {
		case 0x0:
			return fmt.Sprintf("add %s, %s", rd, rs2)
		case 0x1:
			return fmt.Sprintf("sub %s, %s", rd, rs2)
		case 0x4:
			return fmt.Sprintf("jr %s", rs2)
		case 0x8:
			return fmt.Sprintf("jalr %s", rs2)
		default:
			return "Unknown R-type"
		}
	case 0x1:
		return fmt.Sprintf("slt %s, %s", rd, rs2)
	case 0x2:
		return fmt.Sprintf("sltu %s, %s", rd, rs2)
	case 0x3:
		switch inst.Funct4 {
		case 0x2:
			return fmt.Sprintf("sll %s, %s", rd, rs2)
		case 0x4:
			return fmt.Sprintf("srl %s, %s", rd, rs2)
		case 0x8:
			return fmt.Sprintf("sra %s, %s", rd, rs2)
		default:
			return "Unknown shift"
		}
	case 0x4:
		return fmt.Sprintf("or %s, %s", rd, rs2)
	case 0x5:
		return fmt.Sprintf("and %s, %s", rd, rs2)
	case 0x6:
		return fmt.Sprintf("xor %s, %s", rd, rs2)
	case 0x7:
		return fmt.Sprintf("mv %s, %s", rd, rs2)
	default:
		return "Unknown R-type"
	}
}

func disassembleI(inst *Instruction) string {
	rd := RegNames[inst.RdRs1]
	simm := SignExtendImm7(inst.Imm7)

	switch inst.Funct3 {
	case 0x0:
		return fmt.Sprintf("addi %s, %d", rd, simm)
	case 0x1:
		return fmt.Sprintf("slti %s, %d", rd, simm)
	case 0x2:
		return fmt.Sprintf("sltui %s, %d", rd, simm)
	case 0x3:
		shiftType, shamt := ShiftImmFields(inst.Imm7)
		switch shiftType {
		case 0x1:
			return fmt.Sprintf("slli %s, %d", rd, shamt)
		case 0x2:
			return fmt.Sprintf("srli %s, %d", rd, shamt)
		case 0x4:
			return fmt.Sprintf("srai %s, %d", rd, shamt)
		default:
			return "Unknown shift immediate"
		}
	case 0x4:
		return fmt.Sprintf("ori %s, %d", rd, simm)
	case 0x5:
		return fmt.Sprintf("andi %s, %d", rd, simm)
	case 0x6:
		return fmt.Sprintf("xori %s, %d", rd, simm)
	case 0x7:
		return fmt.Sprintf("li %s, %d", rd, simm)
	default:
		return "Unknown I-type"
	}
}

func disassembleB(inst *Instruction, pc uint16) string {
	rs1 := RegNames[inst.RdRs1]
	rs2 := RegNames[inst.Rs2]
	target := pc + uint16(BranchOffset(inst.BOffsetHi))

	switch inst.Funct3 {
	case 0x0:
		return fmt.Sprintf("beq %s, %s, 0x%04X", rs1, rs2, target)
	case 0x1:
		return fmt.Sprintf("bne %s, %s, 0x%04X", rs1, rs2, target)
	case 0x2:
		return fmt.Sprintf("bz %s, 0x%04X", rs1, target)
	case 0x3:
		return fmt.Sprintf("bnz %s, 0x%04X", rs1, target)
	case 0x4:
		return fmt.Sprintf("blt %s, %s, 0x%04X", rs1, rs2, target)
	case 0x5:
		return fmt.Sprintf("bge %s, %s, 0x%04X", rs1, rs2, target)
	case 0x6:
		return fmt.Sprintf("bltu %s, %s, 0x%04X", rs1, rs2, target)
	case 0x7:
		return fmt.Sprintf("bgeu %s, %s, 0x%04X", rs1, rs2, target)
	default:
		return "Unknown B-type"
	}
}

func disassembleS(inst *Instruction) string {
	rs2 := RegNames[inst.Rs2]
	rs1 := RegNames[inst.RdRs1]

	switch inst.Funct3 {
	case 0x0:
		return fmt.Sprintf("sb %s, %d(%s)", rs2, inst.Imm4, rs1)
	case 0x1:
		return fmt.Sprintf("sw %s, %d(%s)", rs2, inst.Imm4, rs1)
	default:
		return "Unknown S-type"
	}
}

func disassembleL(inst *Instruction) string {
	rd := RegNames[inst.RdRs1]
	base := RegNames[inst.Rs2]

	switch inst.Funct3 {
	case 0x0:
		return fmt.Sprintf("lb %s, %d(%s)", rd, inst.Imm4, base)
	case 0x1:
		return fmt.Sprintf("lw %s, %d(%s)", rd, inst.Imm4, base)
	case 0x4:
		return fmt.Sprintf("lbu %s, %d(%s)", rd, inst.Imm4, base)
	default:
		return "Unknown L-type"
	}
}

func disassembleJ(inst *Instruction, pc uint16) string {
	target := pc + uint16(JumpOffset(inst.JOffHi, inst.JOffLo))
	if inst.JFlag == 0 {
		return fmt.Sprintf("j 0x%04X", target)
	}
	return fmt.Sprintf("jal %s, 0x%04X", RegNames[inst.JRd], target)
}

func disassembleU(inst *Instruction) string {
	imm := UpperImm(inst.UImmHi, inst.UImmLo)
	rd := RegNames[inst.URd]
	if inst.UFlag == 0 {
		return fmt.Sprintf("lui %s, 0x%04X", rd, imm)
	}
	return fmt.Sprintf("auipc %s, 0x%04X", rd, imm)
}
