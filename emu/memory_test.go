package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/z16sim/z16sim/emu"
)

var _ = Describe("Memory", func() {
	It("round-trips little-endian 16-bit values", func() {
		memory := emu.NewMemory()
		memory.Write16(0x10, 0xBEEF)

		Expect(memory.Read8(0x10)).To(Equal(uint8(0xEF)))
		Expect(memory.Read8(0x11)).To(Equal(uint8(0xBE)))
		Expect(memory.Read16(0x10)).To(Equal(uint16(0xBEEF)))
	})

	It("loads a program at address 0 and zero-pads the rest", func() {
		memory := emu.NewMemory()
		n := memory.LoadProgram([]byte{0xF1, 0xC1})

		Expect(n).To(Equal(2))
		Expect(memory.Read16(0)).To(Equal(uint16(0xC1F1)))
		Expect(memory.Read8(2)).To(Equal(uint8(0)))
	})

	It("truncates an image larger than MemSize", func() {
		memory := emu.NewMemory()
		huge := make([]byte, emu.MemSize+10)
		n := memory.LoadProgram(huge)
		Expect(n).To(Equal(emu.MemSize))
	})
})
