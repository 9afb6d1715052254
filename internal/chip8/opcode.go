package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// OpcodeSize is the size of CHIP-8 instructions in bytes.
const OpcodeSize = 2

// Opcode is a decoded instruction: the matched canonical instruction plus
// the fixed-format operand fields extracted from the raw word. Which
// fields are meaningful depends on the instruction family. An Opcode is a
// stateless descriptor consumed once per fetch cycle.
type Opcode struct {
	// Instruction identifies the matched instruction in retrogolib's
	// canonical table.
	Instruction *chip8.Instruction

	// Raw is the full 16-bit instruction word. Families sharing one
	// mnemonic (LD, ADD, SE, SNE, JP) are disambiguated through it.
	Raw uint16

	X   uint8  // register index, second nibble
	Y   uint8  // register index, third nibble
	N   uint8  // nibble operand, low nibble
	NN  uint8  // immediate byte operand, low byte
	NNN uint16 // address operand, low 12 bits
}

// DecodeOpcode matches a raw instruction word against the canonical
// instruction table and extracts its operand fields. It reports false for
// words that match no canonical instruction.
func DecodeOpcode(word uint16) (Opcode, bool) {
	firstNibble := (word & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&word == op.Info.Value {
			return Opcode{
				Instruction: op.Instruction,
				Raw:         word,
				X:           uint8((word & 0x0F00) >> 8),
				Y:           uint8((word & 0x00F0) >> 4),
				N:           uint8(word & 0x000F),
				NN:          uint8(word & 0x00FF),
				NNN:         word & 0x0FFF,
			}, true
		}
	}
	return Opcode{Raw: word}, false
}

// String formats the opcode as assembly, for trace logging and state dumps.
func (op Opcode) String() string {
	if op.Instruction == nil {
		return fmt.Sprintf(".word $%04X", op.Raw)
	}

	name := op.Instruction.Name
	if params := op.formatParams(); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// formatParams formats the operand fields of the instruction. The switch
// mirrors the decode disambiguation: families sharing a mnemonic are told
// apart by the high nibble or low byte of the raw word.
func (op Opcode) formatParams() string {
	switch op.Instruction {
	case chip8.JpInst:
		if op.Raw&0xF000 == 0xB000 {
			return fmt.Sprintf("V0, $%03X", op.NNN)
		}
		return fmt.Sprintf("$%03X", op.NNN)

	case chip8.CallInst:
		return fmt.Sprintf("$%03X", op.NNN)

	case chip8.SeInst, chip8.SneInst:
		if op.Raw&0xF000 == 0x3000 || op.Raw&0xF000 == 0x4000 {
			return fmt.Sprintf("V%X, $%02X", op.X, op.NN)
		}
		return fmt.Sprintf("V%X, V%X", op.X, op.Y)

	case chip8.LdInst:
		return op.formatLoadParams()

	case chip8.AddInst:
		switch op.Raw & 0xF000 {
		case 0x7000:
			return fmt.Sprintf("V%X, $%02X", op.X, op.NN)
		case 0x8000:
			return fmt.Sprintf("V%X, V%X", op.X, op.Y)
		default: // FX1E
			return fmt.Sprintf("I, V%X", op.X)
		}

	case chip8.OrInst, chip8.AndInst, chip8.XorInst, chip8.SubInst, chip8.SubnInst:
		return fmt.Sprintf("V%X, V%X", op.X, op.Y)

	case chip8.ShrInst, chip8.ShlInst:
		return fmt.Sprintf("V%X, V%X", op.X, op.Y)

	case chip8.RndInst:
		return fmt.Sprintf("V%X, $%02X", op.X, op.NN)

	case chip8.DrwInst:
		return fmt.Sprintf("V%X, V%X, $%X", op.X, op.Y, op.N)

	case chip8.SkpInst, chip8.SknpInst:
		return fmt.Sprintf("V%X", op.X)
	}
	return ""
}

// formatLoadParams formats the many LD variants.
func (op Opcode) formatLoadParams() string {
	switch op.Raw & 0xF000 {
	case 0x6000:
		return fmt.Sprintf("V%X, $%02X", op.X, op.NN)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", op.X, op.Y)
	case 0xA000:
		return fmt.Sprintf("I, $%03X", op.NNN)
	}

	switch op.NN {
	case 0x07:
		return fmt.Sprintf("V%X, DT", op.X)
	case 0x0A:
		return fmt.Sprintf("V%X, K", op.X)
	case 0x15:
		return fmt.Sprintf("DT, V%X", op.X)
	case 0x18:
		return fmt.Sprintf("ST, V%X", op.X)
	case 0x29:
		return fmt.Sprintf("F, V%X", op.X)
	case 0x33:
		return fmt.Sprintf("B, V%X", op.X)
	case 0x55:
		return fmt.Sprintf("[I], V%X", op.X)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", op.X)
	}
	return ""
}
