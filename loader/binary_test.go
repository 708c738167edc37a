package loader_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/z16sim/z16sim/loader"
)

var _ = Describe("Load", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("reads a raw binary image starting at entry point 0", func() {
		path := filepath.Join(dir, "prog.bin")
		Expect(os.WriteFile(path, []byte{0xF1, 0xC1, 0x47, 0x00}, 0o644)).To(Succeed())

		prog, err := loader.Load(path)

		Expect(err).NotTo(HaveOccurred())
		Expect(prog.Data).To(Equal([]byte{0xF1, 0xC1, 0x47, 0x00}))
		Expect(prog.EntryPoint).To(Equal(uint16(0)))
	})

	It("truncates an image larger than the 64 KiB address space instead of rejecting it", func() {
		path := filepath.Join(dir, "huge.bin")
		huge := make([]byte, loader.MemSize+10)
		for i := range huge {
			huge[i] = 0xAA
		}
		Expect(os.WriteFile(path, huge, 0o644)).To(Succeed())

		prog, err := loader.Load(path)

		Expect(err).NotTo(HaveOccurred())
		Expect(prog.Data).To(HaveLen(loader.MemSize))
		Expect(prog.EntryPoint).To(Equal(uint16(0)))
	})

	It("surfaces an error for a missing file", func() {
		_, err := loader.Load(filepath.Join(dir, "does-not-exist.bin"))
		Expect(err).To(HaveOccurred())
	})
})
