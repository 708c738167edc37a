package emu

import (
	"fmt"
	"io"
	"os"

	"github.com/z16sim/z16sim/isa"
)

// MaxInstructions is the hard cap on retired instructions that guarantees
// the driver halts even on non-terminating guest code (§4.5, §5).
const MaxInstructions = 100000

// StepOutcome classifies how a Step call ended, for the driver loop to act
// on (§4.4).
type StepOutcome uint8

const (
	// OutcomeContinue means execution should keep going.
	OutcomeContinue StepOutcome = iota
	// OutcomeHalted means the guest requested termination via ecall 3.
	OutcomeHalted
	// OutcomeEndOfMemory means the fetch would read past MemSize.
	OutcomeEndOfMemory
	// OutcomeZeroInstruction means a zero instruction word was fetched
	// (the driver's halt sentinel, §9).
	OutcomeZeroInstruction
	// OutcomeInstructionCap means MaxInstructions was reached.
	OutcomeInstructionCap
)

// StepResult represents the result of executing a single instruction.
type StepResult struct {
	Outcome StepOutcome
	PC      uint16 // PC the instruction was fetched from
}

// Emulator executes Z16 instructions.
type Emulator struct {
	regFile *RegFile
	memory  *Memory
	decoder *isa.Decoder

	syscallHandler SyscallHandler

	alu        *ALU
	lsu        *LoadStoreUnit
	branchUnit *BranchUnit

	stdout io.Writer
	stderr io.Writer

	instructionCount uint64
	maxInstructions  uint64
	zeroHalt         bool
}

// EmulatorOption is a functional option for configuring the Emulator.
type EmulatorOption func(*Emulator)

// WithStdout sets a custom stdout writer.
func WithStdout(w io.Writer) EmulatorOption {
	return func(e *Emulator) {
		e.stdout = w
	}
}

// WithStderr sets a custom stderr writer.
func WithStderr(w io.Writer) EmulatorOption {
	return func(e *Emulator) {
		e.stderr = w
	}
}

// WithSyscallHandler sets a custom ecall handler.
func WithSyscallHandler(handler SyscallHandler) EmulatorOption {
	return func(e *Emulator) {
		e.syscallHandler = handler
	}
}

// WithMaxInstructions sets the maximum number of instructions to execute. A
// value of 0 means no limit; defaults to MaxInstructions.
func WithMaxInstructions(max uint64) EmulatorOption {
	return func(e *Emulator) {
		e.maxInstructions = max
	}
}

// WithZeroHalt toggles the zero-instruction-word halt sentinel. It defaults
// to enabled; a strict-ISA-conformance caller may disable it (§9).
func WithZeroHalt(enabled bool) EmulatorOption {
	return func(e *Emulator) {
		e.zeroHalt = enabled
	}
}

// NewEmulator creates a new Z16 emulator.
func NewEmulator(opts ...EmulatorOption) *Emulator {
	regFile := &RegFile{}
	memory := NewMemory()

	e := &Emulator{
		regFile:         regFile,
		memory:          memory,
		decoder:         isa.NewDecoder(),
		stdout:          os.Stdout,
		stderr:          os.Stderr,
		maxInstructions: MaxInstructions,
		zeroHalt:        true,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.alu = NewALU(regFile)
	e.lsu = NewLoadStoreUnit(regFile, memory)
	e.branchUnit = NewBranchUnit(regFile)

	if e.syscallHandler == nil {
		e.syscallHandler = NewDefaultSyscallHandler(regFile, memory, e.stdout)
	}

	return e
}

// RegFile returns the emulator's register file.
func (e *Emulator) RegFile() *RegFile {
	return e.regFile
}

// Memory returns the emulator's memory.
func (e *Emulator) Memory() *Memory {
	return e.memory
}

// InstructionCount returns the number of instructions executed so far.
func (e *Emulator) InstructionCount() uint64 {
	return e.instructionCount
}

// LoadProgram loads a raw binary image into memory starting at address 0
// and resets PC to 0 (§3, §4.5).
func (e *Emulator) LoadProgram(program []byte) int {
	n := e.memory.LoadProgram(program)
	e.regFile.PC = 0
	return n
}

// Step fetches, disassembles, and executes a single instruction, writing
// the trace line to stdout and any diagnostics to stderr. It implements one
// iteration of the driver loop in §4.5.
func (e *Emulator) Step() StepResult {
	pc := e.regFile.PC

	if uint32(pc)+1 >= MemSize {
		fmt.Fprintf(e.stderr, "Reached end of memory at 0x%04X\n", pc)
		return StepResult{Outcome: OutcomeEndOfMemory, PC: pc}
	}

	word := e.memory.Read16(pc)

	if word == 0 && e.zeroHalt {
		fmt.Fprintf(e.stderr, "Encountered zero instruction at 0x%04X\n", pc)
		return StepResult{Outcome: OutcomeZeroInstruction, PC: pc}
	}

	inst := e.decoder.Decode(word)
	text := isa.Disassemble(inst, pc)
	fmt.Fprintf(e.stdout, "0x%04X: %04X %s\n", pc, word, text)

	halted := e.execute(inst, pc)
	e.instructionCount++

	if halted {
		return StepResult{Outcome: OutcomeHalted, PC: pc}
	}
	return StepResult{Outcome: OutcomeContinue, PC: pc}
}

// execute applies a decoded instruction's semantics to architectural state,
// advancing PC, and returns true if the guest requested a halt (ecall 3). On
// a halt PC is left at the ecall's own address.
func (e *Emulator) execute(inst *isa.Instruction, pc uint16) bool {
	nextPC := pc + 2

	switch inst.Format {
	case isa.FormatR:
		nextPC = e.executeR(inst, pc, nextPC)
	case isa.FormatI:
		e.executeI(inst)
	case isa.FormatB:
		if e.branchUnit.Taken(inst.Funct3, inst.RdRs1, inst.Rs2) {
			nextPC = pc + uint16(isa.BranchOffset(inst.BOffsetHi))
		}
	case isa.FormatS:
		e.executeS(inst)
	case isa.FormatL:
		e.executeL(inst)
	case isa.FormatJ:
		nextPC = e.executeJ(inst, pc)
	case isa.FormatU:
		e.executeU(inst, pc)
	case isa.FormatSys:
		result := e.syscallHandler.Handle(inst.Service)
		if result.Halted {
			fmt.Fprintln(e.stdout, "Simulation terminated by ecall")
			return true
		}
	default:
		fmt.Fprintf(e.stderr, "Unknown opcode 0x%X at 0x%04X\n", inst.Opcode, pc)
	}

	e.regFile.PC = nextPC
	return false
}

func (e *Emulator) executeR(inst *isa.Instruction, pc, defaultPC uint16) uint16 {
	rd, rs2 := inst.RdRs1, inst.Rs2

	switch inst.Funct3 {
	case 0x0:
		switch inst.Funct4 {
		case 0x0:
			e.alu.Add(rd, rs2)
		case 0x1:
			e.alu.Sub(rd, rs2)
		case 0x4:
			return e.branchUnit.Jr(rs2)
		case 0x8:
			return e.branchUnit.Jalr(rd, rs2, pc)
		}
	case 0x1:
		e.alu.Slt(rd, rs2)
	case 0x2:
		e.alu.Sltu(rd, rs2)
	case 0x3:
		switch inst.Funct4 {
		case 0x2:
			e.alu.Sll(rd, rs2)
		case 0x4:
			e.alu.Srl(rd, rs2)
		case 0x8:
			e.alu.Sra(rd, rs2)
		}
	case 0x4:
		e.alu.Or(rd, rs2)
	case 0x5:
		e.alu.And(rd, rs2)
	case 0x6:
		e.alu.Xor(rd, rs2)
	case 0x7:
		e.alu.Mv(rd, rs2)
	}

	return defaultPC
}

func (e *Emulator) executeI(inst *isa.Instruction) {
	rd := inst.RdRs1
	simm := isa.SignExtendImm7(inst.Imm7)

	switch inst.Funct3 {
	case 0x0:
		e.alu.AddImm(rd, simm)
	case 0x1:
		e.alu.SltImm(rd, simm)
	case 0x2:
		e.alu.SltuImm(rd, simm)
	case 0x3:
		shiftType, shamt := isa.ShiftImmFields(inst.Imm7)
		switch shiftType {
		case 0x1:
			e.alu.Slli(rd, shamt)
		case 0x2:
			e.alu.Srli(rd, shamt)
		case 0x4:
			e.alu.Srai(rd, shamt)
		}
	case 0x4:
		e.alu.OrImm(rd, simm)
	case 0x5:
		e.alu.AndImm(rd, simm)
	case 0x6:
		e.alu.XorImm(rd, simm)
	case 0x7:
		e.alu.Li(rd, simm)
	}
}

func (e *Emulator) executeS(inst *isa.Instruction) {
	switch inst.Funct3 {
	case 0x0:
		e.lsu.Sb(inst.RdRs1, inst.Rs2, inst.Imm4)
	case 0x1:
		e.lsu.Sw(inst.RdRs1, inst.Rs2, inst.Imm4)
	}
}

func (e *Emulator) executeL(inst *isa.Instruction) {
	switch inst.Funct3 {
	case 0x0:
		e.lsu.Lb(inst.RdRs1, inst.Rs2, inst.Imm4)
	case 0x1:
		e.lsu.Lw(inst.RdRs1, inst.Rs2, inst.Imm4)
	case 0x4:
		e.lsu.Lbu(inst.RdRs1, inst.Rs2, inst.Imm4)
	}
}

func (e *Emulator) executeJ(inst *isa.Instruction, pc uint16) uint16 {
	offset := isa.JumpOffset(inst.JOffHi, inst.JOffLo)
	target := pc + uint16(offset)
	if inst.JFlag == 1 {
		e.regFile.WriteReg(inst.JRd, pc+2)
	}
	return target
}

func (e *Emulator) executeU(inst *isa.Instruction, pc uint16) {
	imm := isa.UpperImm(inst.UImmHi, inst.UImmLo)
	rd := inst.URd
	if inst.UFlag == 0 {
		e.regFile.WriteReg(rd, imm)
	} else {
		e.regFile.WriteReg(rd, pc+imm)
	}
}

// Run executes instructions until the program halts or a bounded-
// termination condition is reached (§4.5), then returns the outcome that
// ended the run: that of the final step, or OutcomeInstructionCap when the
// instruction cap is reached before another step.
func (e *Emulator) Run() StepOutcome {
	for {
		if e.maxInstructions > 0 && e.instructionCount >= e.maxInstructions {
			fmt.Fprintf(e.stderr, "Simulation terminated: Exceeded maximum instruction count (100000)\n")
			return OutcomeInstructionCap
		}

		result := e.Step()
		if result.Outcome != OutcomeContinue {
			return result.Outcome
		}
	}
}

// DumpRegisters writes the final register dump to stdout, per §4.5.
func (e *Emulator) DumpRegisters() {
	for i := 0; i < 8; i++ {
		val := e.regFile.X[i]
		fmt.Fprintf(e.stdout, "%s (x%d): 0x%04X (%d)\n", isa.RegNames[i], i, val, int16(val))
	}
	fmt.Fprintf(e.stdout, "PC: 0x%04X\n", e.regFile.PC)
}
