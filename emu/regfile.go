// Package emu provides functional Z16 emulation: architectural state,
// execution units, the ecall ABI, and the fetch-decode-execute driver loop.
package emu

import "github.com/z16sim/z16sim/isa"

// RegFile represents the Z16 register file: 8 general-purpose 16-bit
// registers, indexed by the 3-bit register field used throughout the
// encoding. Unlike many RISC conventions, register 0 is NOT hardwired to
// zero — every register is general-purpose and writable.
type RegFile struct {
	// X holds the 8 general-purpose registers, ABI names in index order:
	// t0, ra, sp, s0, s1, t1, a0, a1.
	X [8]uint16

	// PC is the program counter.
	PC uint16
}

// ABI register indices referenced by name elsewhere in the emulator.
const (
	RegA0 = 6
	RegA1 = 7
)

// ReadReg reads a register value.
func (r *RegFile) ReadReg(reg uint8) uint16 {
	return r.X[reg&0x7]
}

// WriteReg writes a value to a register.
func (r *RegFile) WriteReg(reg uint8, value uint16) {
	r.X[reg&0x7] = value
}

// Name returns the ABI display name of a register index.
func Name(reg uint8) string {
	return isa.RegNames[reg&0x7]
}
