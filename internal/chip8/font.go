package chip8

const (
	// fontAddress is where the font glyph table lives, inside the
	// interpreter reserved area below ProgramStart. FX29 computes glyph
	// addresses as fontAddress + fontGlyphSize*digit.
	fontAddress = 0x014

	// fontGlyphSize is the size of one glyph in bytes, one byte per row.
	fontGlyphSize = 5
)

// fontGlyphs holds the 16 hexadecimal digit sprites, 4 pixels wide and
// 5 rows tall, packed into the high nibble of each row byte.
var fontGlyphs = [16 * fontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// FontGlyphAddress returns the memory address of the sprite for a
// hexadecimal digit. Only the low nibble of the digit is considered.
func FontGlyphAddress(digit uint8) uint16 {
	return fontAddress + fontGlyphSize*uint16(digit&0x0F)
}
