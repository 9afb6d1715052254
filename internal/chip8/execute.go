package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// execute dispatches a decoded opcode to its handler. The program counter
// already points past the instruction. Families that share one mnemonic
// are disambiguated through the raw word, matching the decode rules of
// the canonical instruction table.
func (c *Chip8) execute(op Opcode) error {
	switch op.Instruction {
	case chip8.ClsInst:
		c.display.Clear()

	case chip8.RetInst:
		address, err := c.stack.Pop()
		if err != nil {
			return err
		}
		c.pc = address

	case chip8.JpInst:
		c.pc = op.NNN
		if op.Raw&0xF000 == 0xB000 {
			c.pc += uint16(c.v[0x0])
		}

	case chip8.CallInst:
		if err := c.stack.Push(c.pc); err != nil {
			return err
		}
		c.pc = op.NNN

	case chip8.SeInst:
		if op.Raw&0xF000 == 0x3000 {
			c.skipIf(c.v[op.X] == op.NN)
		} else {
			c.skipIf(c.v[op.X] == c.v[op.Y])
		}

	case chip8.SneInst:
		if op.Raw&0xF000 == 0x4000 {
			c.skipIf(c.v[op.X] != op.NN)
		} else {
			c.skipIf(c.v[op.X] != c.v[op.Y])
		}

	case chip8.LdInst:
		return c.executeLoad(op)

	case chip8.AddInst:
		c.executeAdd(op)

	case chip8.OrInst:
		c.v[op.X] |= c.v[op.Y]

	case chip8.AndInst:
		c.v[op.X] &= c.v[op.Y]

	case chip8.XorInst:
		c.v[op.X] ^= c.v[op.Y]

	case chip8.SubInst:
		x, y := c.v[op.X], c.v[op.Y]
		c.v[op.X] = x - y
		c.setFlag(x >= y) // VF = no borrow

	case chip8.SubnInst:
		x, y := c.v[op.X], c.v[op.Y]
		c.v[op.X] = y - x
		c.setFlag(y >= x)

	case chip8.ShrInst:
		source := c.shiftSource(op)
		c.v[op.X] = source >> 1
		c.setFlag(source&0x01 != 0)

	case chip8.ShlInst:
		source := c.shiftSource(op)
		c.v[op.X] = source << 1
		c.setFlag(source&0x80 != 0)

	case chip8.RndInst:
		c.v[op.X] = uint8(c.rand.Intn(256)) & op.NN

	case chip8.DrwInst:
		return c.executeDraw(op)

	case chip8.SkpInst:
		c.skipIf(c.keypad.Pressed(c.v[op.X] & 0x0F))

	case chip8.SknpInst:
		c.skipIf(!c.keypad.Pressed(c.v[op.X] & 0x0F))

	default:
		return &UnknownOpcodeError{Opcode: op.Raw, Address: c.pc - OpcodeSize}
	}
	return nil
}

// executeLoad handles the LD family: register immediates and moves, the
// index register, timers, key waiting, font lookup, BCD decomposition and
// the register file memory transfers.
func (c *Chip8) executeLoad(op Opcode) error {
	switch op.Raw & 0xF000 {
	case 0x6000:
		c.v[op.X] = op.NN
		return nil
	case 0x8000:
		c.v[op.X] = c.v[op.Y]
		return nil
	case 0xA000:
		c.index = op.NNN
		return nil
	}

	switch op.NN {
	case 0x07:
		c.v[op.X] = c.timers.Delay()

	case 0x0A:
		key, pressed := c.keypad.FirstPressed()
		if !pressed {
			// Keep re-executing this instruction until a key press
			// is observed, without halting the host.
			c.pc -= OpcodeSize
			return nil
		}
		c.v[op.X] = key

	case 0x15:
		c.timers.SetDelay(c.v[op.X])

	case 0x18:
		c.timers.SetSound(c.v[op.X])

	case 0x29:
		c.index = FontGlyphAddress(c.v[op.X])

	case 0x33:
		return c.storeBCD(c.v[op.X])

	case 0x55:
		return c.storeRegisters(op.X)

	case 0x65:
		return c.loadRegisters(op.X)
	}
	return nil
}

// executeAdd handles the ADD family: immediate add without flag, register
// add with carry flag, and the index register add.
func (c *Chip8) executeAdd(op Opcode) {
	switch op.Raw & 0xF000 {
	case 0x7000:
		c.v[op.X] += op.NN
	case 0x8000:
		sum := uint16(c.v[op.X]) + uint16(c.v[op.Y])
		c.v[op.X] = uint8(sum)
		c.setFlag(sum > 0xFF)
	default: // FX1E
		c.index += uint16(c.v[op.X])
	}
}

// executeDraw reads N sprite rows from memory at the index register and
// XOR-blits them at the coordinates held in VX and VY. VF is set to 1 if
// the blit unset any previously set pixel, else 0.
func (c *Chip8) executeDraw(op Opcode) error {
	sprite := make([]byte, op.N)
	for i := range sprite {
		value, err := c.memory.Read(c.index + uint16(i))
		if err != nil {
			return fmt.Errorf("reading sprite data: %w", err)
		}
		sprite[i] = value
	}

	collision := c.display.DrawSprite(c.v[op.X], c.v[op.Y], sprite)
	c.setFlag(collision)
	return nil
}

// storeBCD writes the three decimal digits of a value to memory at the
// index register: hundreds at I, tens at I+1, ones at I+2.
func (c *Chip8) storeBCD(value uint8) error {
	digits := [3]byte{value / 100, value / 10 % 10, value % 10}
	for i, digit := range digits {
		if err := c.memory.Write(c.index+uint16(i), digit); err != nil {
			return fmt.Errorf("storing BCD digit: %w", err)
		}
	}
	return nil
}

// storeRegisters copies V0 through VX inclusive to memory starting at the
// index register. Unless the KeepIndex quirk is set, I ends up pointing
// past the copied range.
func (c *Chip8) storeRegisters(x uint8) error {
	for i := uint16(0); i <= uint16(x); i++ {
		if err := c.memory.Write(c.index+i, c.v[i]); err != nil {
			return fmt.Errorf("storing register V%X: %w", i, err)
		}
	}
	if !c.quirks.KeepIndex {
		c.index += uint16(x) + 1
	}
	return nil
}

// loadRegisters fills V0 through VX inclusive from memory starting at the
// index register. Unless the KeepIndex quirk is set, I ends up pointing
// past the copied range.
func (c *Chip8) loadRegisters(x uint8) error {
	for i := uint16(0); i <= uint16(x); i++ {
		value, err := c.memory.Read(c.index + i)
		if err != nil {
			return fmt.Errorf("loading register V%X: %w", i, err)
		}
		c.v[i] = value
	}
	if !c.quirks.KeepIndex {
		c.index += uint16(x) + 1
	}
	return nil
}

// shiftSource returns the register value a shift instruction operates on:
// VY in the original behavior, VX with the ShiftInPlace quirk.
func (c *Chip8) shiftSource(op Opcode) uint8 {
	if c.quirks.ShiftInPlace {
		return c.v[op.X]
	}
	return c.v[op.Y]
}

// skipIf advances the program counter past the next instruction when the
// condition holds.
func (c *Chip8) skipIf(condition bool) {
	if condition {
		c.pc += OpcodeSize
	}
}

// setFlag writes the VF flag register as 0 or 1.
func (c *Chip8) setFlag(set bool) {
	if set {
		c.v[0xF] = 1
	} else {
		c.v[0xF] = 0
	}
}
