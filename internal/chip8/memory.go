package chip8

// CHIP-8 memory layout constants.
//
// Memory map (4KB total):
//
//	0x000-0x1FF: interpreter reserved area, holds the font glyph table
//	0x200-0xFFF: user program space (3584 bytes)
const (
	// MemorySize is the total addressable memory in bytes.
	MemorySize = 4096

	// MaxAddress is the highest valid memory address.
	MaxAddress = 0xFFF

	// ProgramStart is the address where programs are loaded and begin
	// execution.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program that fits into memory from
	// the load address onward.
	MaxProgramSize = MemorySize - ProgramStart
)

// Memory is the flat addressable byte store of the machine. All accesses
// are bounds checked; out of range addresses are an error condition, not
// silently wrapped.
type Memory struct {
	bytes [MemorySize]byte
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) (byte, error) {
	if address > MaxAddress {
		return 0, &OutOfBoundsError{Address: address}
	}
	return m.bytes[address], nil
}

// Write stores a byte at the given address.
func (m *Memory) Write(address uint16, value byte) error {
	if address > MaxAddress {
		return &OutOfBoundsError{Address: address}
	}
	m.bytes[address] = value
	return nil
}

// loadFont copies the font glyph table into the interpreter reserved area.
func (m *Memory) loadFont() {
	copy(m.bytes[fontAddress:], fontGlyphs[:])
}

// loadProgram copies program bytes into memory starting at ProgramStart.
func (m *Memory) loadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return &LoadError{Size: len(program)}
	}
	copy(m.bytes[ProgramStart:], program)
	return nil
}

// reset clears all memory and reloads the font table.
func (m *Memory) reset() {
	m.bytes = [MemorySize]byte{}
	m.loadFont()
}
