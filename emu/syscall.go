package emu

import (
	"fmt"
	"io"
)

// Z16 ecall services (§4.4).
const (
	ServicePrintInt    uint16 = 1
	ServiceHalt        uint16 = 3
	ServicePrintString uint16 = 5
)

// SyscallResult represents the result of handling an ecall.
type SyscallResult struct {
	// Halted is true if the service requested simulation termination.
	Halted bool
}

// SyscallHandler is the interface for handling Z16 ecalls.
type SyscallHandler interface {
	// Handle services the ecall with the given service number.
	Handle(service uint16) SyscallResult
}

// DefaultSyscallHandler implements the three defined ecall services; any
// other service number is silently ignored (§4.4).
type DefaultSyscallHandler struct {
	regFile *RegFile
	memory  *Memory
	stdout  io.Writer
}

// NewDefaultSyscallHandler creates a default ecall handler.
func NewDefaultSyscallHandler(regFile *RegFile, memory *Memory, stdout io.Writer) *DefaultSyscallHandler {
	return &DefaultSyscallHandler{
		regFile: regFile,
		memory:  memory,
		stdout:  stdout,
	}
}

// Handle services the ecall with the given service number.
func (h *DefaultSyscallHandler) Handle(service uint16) SyscallResult {
	switch service {
	case ServicePrintInt:
		return h.handlePrintInt()
	case ServiceHalt:
		return SyscallResult{Halted: true}
	case ServicePrintString:
		return h.handlePrintString()
	default:
		return SyscallResult{}
	}
}

// handlePrintInt prints a0 as a signed 16-bit integer followed by newline.
func (h *DefaultSyscallHandler) handlePrintInt() SyscallResult {
	value := int16(h.regFile.ReadReg(RegA0))
	fmt.Fprintf(h.stdout, "%d\n", value)
	return SyscallResult{}
}

// handlePrintString prints the NUL-terminated string starting at a0,
// followed by newline. It stops at MemSize if no terminator is found
// (§4.4).
func (h *DefaultSyscallHandler) handlePrintString() SyscallResult {
	addr := h.regFile.ReadReg(RegA0)
	var sb []byte
	for i := uint32(addr); i < MemSize; i++ {
		b := h.memory.Read8(uint16(i))
		if b == 0 {
			break
		}
		sb = append(sb, b)
	}
	fmt.Fprintf(h.stdout, "%s\n", sb)
	return SyscallResult{}
}
