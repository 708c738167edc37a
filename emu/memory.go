package emu

// MemSize is the fixed size of Z16 addressable memory: 64 KiB.
const MemSize = 65536

// Memory represents the Z16 flat byte-addressable memory. Bounds-checking on
// fetch is the driver's concern (§4.5); individual Read8/Write8 calls wrap
// modulo MemSize so the Executor never traps on an in-range or wrapped
// access.
type Memory struct {
	bytes [MemSize]byte
}

// NewMemory creates a zeroed Z16 memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Read8 reads a single byte, wrapping the address modulo MemSize.
func (m *Memory) Read8(addr uint16) uint8 {
	return m.bytes[addr]
}

// Write8 writes a single byte, wrapping the address modulo MemSize.
func (m *Memory) Write8(addr uint16, value uint8) {
	m.bytes[addr] = value
}

// Read16 reads a little-endian 16-bit value at addr and addr+1.
func (m *Memory) Read16(addr uint16) uint16 {
	lo := uint16(m.bytes[addr])
	hi := uint16(m.bytes[addr+1])
	return lo | hi<<8
}

// Write16 writes a little-endian 16-bit value to addr and addr+1.
func (m *Memory) Write16(addr uint16, value uint16) {
	m.bytes[addr] = uint8(value)
	m.bytes[addr+1] = uint8(value >> 8)
}

// LoadProgram copies program into memory starting at address 0, truncating
// at MemSize. Memory beyond len(program) is left zeroed (the array starts
// zeroed, so this is implicit).
func (m *Memory) LoadProgram(program []byte) int {
	n := len(program)
	if n > MemSize {
		n = MemSize
	}
	copy(m.bytes[:n], program[:n])
	return n
}
