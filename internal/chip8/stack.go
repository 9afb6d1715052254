package chip8

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// Stack is the bounded call stack holding return addresses. Pushing onto
// a full stack and popping from an empty stack are both error conditions.
type Stack struct {
	addresses [StackDepth]uint16
	pointer   int
}

// Push stores a return address on top of the stack.
func (s *Stack) Push(address uint16) error {
	if s.pointer == StackDepth {
		return &StackOverflowError{Depth: StackDepth}
	}
	s.addresses[s.pointer] = address
	s.pointer++
	return nil
}

// Pop removes and returns the topmost return address.
func (s *Stack) Pop() (uint16, error) {
	if s.pointer == 0 {
		return 0, &StackUnderflowError{}
	}
	s.pointer--
	return s.addresses[s.pointer], nil
}

// Depth returns the number of return addresses currently on the stack.
func (s *Stack) Depth() int {
	return s.pointer
}

func (s *Stack) reset() {
	s.addresses = [StackDepth]uint16{}
	s.pointer = 0
}
