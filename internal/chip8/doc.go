// Package chip8 implements the CHIP-8 virtual machine core.
//
// # Machine Model
//
// A CHIP-8 machine consists of:
//   - 4KB of memory (0x000-0xFFF), the low 512 bytes reserved for the
//     interpreter and font data, programs loaded at 0x200
//   - 16 general-purpose 8-bit registers V0-VF, where VF doubles as the
//     carry/borrow/collision flag
//   - a 16-bit index register I and a 16-bit program counter
//   - a call stack of 16 return addresses
//   - two 8-bit timers (delay, sound) decremented at 60Hz
//   - a 64×32 monochrome display mutated by XOR-blitting sprites
//   - a 16-key keypad
//
// # Execution
//
// Chip8.Step performs one fetch-decode-execute cycle. Instructions are
// two bytes, big endian, matched against the canonical instruction table
// of retrogolib's arch/cpu/chip8 package. Words that match no canonical
// instruction stop execution with an UnknownOpcodeError rather than being
// skipped, since masking them would corrupt program semantics silently.
//
// Timers are not coupled to the instruction rate: the host calls
// Chip8.TickTimers on its own 60Hz schedule, independent of how many
// Step calls happened in between.
//
// All machine state is owned by a single Chip8 instance so that multiple
// independent sessions can coexist, for example in parallel tests.
//
// # Compatibility
//
// Historical CHIP-8 interpreters disagree on a few behaviors. The defaults
// here follow the original COSMAC VIP: 8XY6/8XYE shift VY into VX, and
// FX55/FX65 leave I pointing past the copied range. Both can be switched
// to the later variant behavior through Quirks. Sprite rows are clipped at
// the bottom display boundary while columns wrap, per the original
// technical reference.
package chip8
