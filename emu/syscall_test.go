package emu_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/z16sim/z16sim/emu"
)

var _ = Describe("DefaultSyscallHandler", func() {
	var (
		regFile *emu.RegFile
		memory  *emu.Memory
		stdout  *bytes.Buffer
		handler *emu.DefaultSyscallHandler
	)

	BeforeEach(func() {
		regFile = &emu.RegFile{}
		memory = emu.NewMemory()
		stdout = &bytes.Buffer{}
		handler = emu.NewDefaultSyscallHandler(regFile, memory, stdout)
	})

	It("prints a0 as a signed decimal integer followed by newline", func() {
		regFile.WriteReg(a0, 42)
		handler.Handle(emu.ServicePrintInt)
		Expect(stdout.String()).To(Equal("42\n"))
	})

	It("prints negative values using the signed interpretation of a0", func() {
		regFile.WriteReg(a0, 0xFFFF) // -1
		handler.Handle(emu.ServicePrintInt)
		Expect(stdout.String()).To(Equal("-1\n"))
	})

	It("signals halt for service 3 without writing output", func() {
		result := handler.Handle(emu.ServiceHalt)
		Expect(result.Halted).To(BeTrue())
		Expect(stdout.String()).To(BeEmpty())
	})

	It("prints a NUL-terminated string at a0 followed by newline", func() {
		msg := []byte("Hi\x00")
		for i, b := range msg {
			memory.Write8(0x0100+uint16(i), b)
		}
		regFile.WriteReg(a0, 0x0100)

		handler.Handle(emu.ServicePrintString)
		Expect(stdout.String()).To(Equal("Hi\n"))
	})

	It("silently ignores unknown service numbers", func() {
		result := handler.Handle(99)
		Expect(result.Halted).To(BeFalse())
		Expect(stdout.String()).To(BeEmpty())
	})
})
