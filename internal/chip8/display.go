package chip8

import "strings"

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Frame is a snapshot of the monochrome pixel grid, indexed [row][column].
type Frame [DisplayHeight][DisplayWidth]bool

// Display is the monochrome framebuffer. It is mutated only by XOR-blitting
// sprite rows and by clearing.
type Display struct {
	pixels Frame
}

// Clear unsets every pixel.
func (d *Display) Clear() {
	d.pixels = Frame{}
}

// DrawSprite XOR-blits a sprite of up to 15 rows at the given coordinates
// and reports whether any pixel was unset by the blit (the collision
// condition). The start coordinates wrap modulo the display dimensions.
// Within the sprite, columns wrap around the right edge while rows
// exceeding the bottom edge are clipped.
func (d *Display) DrawSprite(x, y uint8, sprite []byte) bool {
	startX := int(x) % DisplayWidth
	startY := int(y) % DisplayHeight

	collision := false
	for i, rowBits := range sprite {
		row := startY + i
		if row >= DisplayHeight {
			break
		}
		for bit := 0; bit < 8; bit++ {
			if rowBits&(0x80>>bit) == 0 {
				continue
			}
			col := (startX + bit) % DisplayWidth
			if d.pixels[row][col] {
				collision = true
			}
			d.pixels[row][col] = !d.pixels[row][col]
		}
	}
	return collision
}

// Frame returns a copy of the current pixel grid.
func (d *Display) Frame() Frame {
	return d.pixels
}

// String renders the framebuffer as ASCII art, one character per pixel.
func (d *Display) String() string {
	var sb strings.Builder
	border := "+" + strings.Repeat("-", DisplayWidth) + "+\n"
	sb.WriteString(border)
	for _, row := range d.pixels {
		sb.WriteByte('|')
		for _, pixel := range row {
			if pixel {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}
