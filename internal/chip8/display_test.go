package chip8

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisplay_DrawSprite(t *testing.T) {
	var d Display

	collision := d.DrawSprite(0, 0, []byte{0b10100000})
	assert.False(t, collision)
	assert.True(t, d.pixels[0][0])
	assert.False(t, d.pixels[0][1])
	assert.True(t, d.pixels[0][2])
}

// Drawing the same sprite twice at the same location restores the
// previous buffer state exactly, and the second draw reports a collision
// wherever the first draw set a pixel.
func TestDisplay_DoubleDrawRestores(t *testing.T) {
	var d Display

	sprite := []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}
	collision := d.DrawSprite(10, 5, sprite)
	assert.False(t, collision)

	collision = d.DrawSprite(10, 5, sprite)
	assert.True(t, collision)
	assert.Equal(t, Frame{}, d.Frame())
}

func TestDisplay_StartCoordinatesWrap(t *testing.T) {
	var d Display

	d.DrawSprite(DisplayWidth+3, DisplayHeight+2, []byte{0x80})
	assert.True(t, d.pixels[2][3])
}

func TestDisplay_ColumnsWrap(t *testing.T) {
	var d Display

	// last two sprite columns wrap around to the left edge
	d.DrawSprite(DisplayWidth-6, 0, []byte{0xFF})
	for bit := 0; bit < 6; bit++ {
		assert.True(t, d.pixels[0][DisplayWidth-6+bit])
	}
	assert.True(t, d.pixels[0][0])
	assert.True(t, d.pixels[0][1])
}

func TestDisplay_RowsClipAtBottom(t *testing.T) {
	var d Display

	collision := d.DrawSprite(0, DisplayHeight-1, []byte{0x80, 0x80, 0x80})
	assert.False(t, collision)
	assert.True(t, d.pixels[DisplayHeight-1][0])
	// clipped rows must not wrap to the top
	assert.False(t, d.pixels[0][0])
	assert.False(t, d.pixels[1][0])
}

func TestDisplay_Clear(t *testing.T) {
	var d Display

	d.DrawSprite(0, 0, []byte{0xFF})
	d.Clear()
	assert.Equal(t, Frame{}, d.Frame())
}

func TestDisplay_String(t *testing.T) {
	var d Display
	d.DrawSprite(0, 0, []byte{0x80})

	dump := d.String()
	lines := strings.Split(dump, "\n")
	assert.Len(t, lines, DisplayHeight+3) // border, rows, border, trailing newline
	assert.True(t, strings.HasPrefix(lines[1], "|#"))
}
