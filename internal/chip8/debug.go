package chip8

import (
	"fmt"
	"strings"
)

// DumpRegisters returns a one-screen rendering of the register file,
// index register, program counter, stack depth and timers.
func (c *Chip8) DumpRegisters() string {
	var sb strings.Builder
	for i := range c.v {
		fmt.Fprintf(&sb, " V%X ", i)
	}
	sb.WriteByte('\n')
	for _, value := range c.v {
		fmt.Fprintf(&sb, " %02X ", value)
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "I: 0x%03X  PC: 0x%03X  stack: %d  DT: %d  ST: %d\n",
		c.index, c.pc, c.stack.Depth(), c.timers.Delay(), c.timers.sound)
	return sb.String()
}

// DumpMemory returns a hexdump of the full memory image, 32 bytes per line.
func (c *Chip8) DumpMemory() string {
	const bytesPerLine = 32

	var sb strings.Builder
	for line := 0; line < MemorySize/bytesPerLine; line++ {
		fmt.Fprintf(&sb, "%08x  ", line*bytesPerLine)
		for i := 0; i < bytesPerLine; i++ {
			fmt.Fprintf(&sb, "%02x ", c.memory.bytes[line*bytesPerLine+i])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DumpDisplay returns an ASCII rendering of the framebuffer.
func (c *Chip8) DumpDisplay() string {
	return c.display.String()
}
