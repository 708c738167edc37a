// Package loader provides raw binary image loading for Z16 programs.
package loader

import (
	"fmt"
	"os"
)

// MemSize is the Z16 addressable memory size.
const MemSize = 65536

// Program represents a loaded Z16 binary image ready for execution.
type Program struct {
	// Data is the raw image contents, to be loaded at address 0. Images
	// larger than MemSize are truncated to the first MemSize bytes, matching
	// z16sim.c's fread(memory, 1, MEM_SIZE, fp).
	Data []byte
	// EntryPoint is always 0 — Z16 images are headerless and execution
	// always starts at address 0 (§3, §6).
	EntryPoint uint16
}

// Load reads a headerless raw Z16 binary image from path. The image is
// loaded into memory starting at address 0, up to MemSize bytes (§6); bytes
// beyond MemSize are silently dropped rather than rejected.
func Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open binary file: %w", err)
	}

	if len(data) > MemSize {
		data = data[:MemSize]
	}

	return &Program{Data: data, EntryPoint: 0}, nil
}
