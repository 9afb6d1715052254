package chip8

import "fmt"

// UnknownOpcodeError is returned when a fetched word matches no canonical
// CHIP-8 instruction. It carries the raw word and the address it was
// fetched from.
type UnknownOpcodeError struct {
	Opcode  uint16
	Address uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%04X at address 0x%03X", e.Opcode, e.Address)
}

// StackOverflowError is returned when a subroutine call exceeds the
// call stack capacity.
type StackOverflowError struct {
	Depth int
}

func (e *StackOverflowError) Error() string {
	return fmt.Sprintf("stack overflow: call exceeds maximum depth %d", e.Depth)
}

// StackUnderflowError is returned when a return instruction executes
// with an empty call stack.
type StackUnderflowError struct{}

func (e *StackUnderflowError) Error() string {
	return "stack underflow: return with empty call stack"
}

// OutOfBoundsError is returned when a computed address falls outside the
// valid memory range 0x000-0xFFF.
type OutOfBoundsError struct {
	Address uint16
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("memory access out of bounds: address 0x%04X", e.Address)
}

// LoadError is returned when a program does not fit into the memory
// available from the load address onward. It is reported at load time,
// before the first execution step.
type LoadError struct {
	Size int
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("program size %d exceeds available memory of %d bytes", e.Size, MaxProgramSize)
}
