package chip8

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// RegisterCount is the number of general-purpose registers V0-VF.
const RegisterCount = 16

// Quirks selects between historical interpreter behaviors that existing
// programs depend on. The zero value is the original COSMAC VIP behavior.
type Quirks struct {
	// ShiftInPlace makes 8XY6/8XYE shift VX in place, as later
	// interpreters do, instead of storing a shifted VY into VX.
	ShiftInPlace bool

	// KeepIndex leaves the index register unchanged after FX55/FX65
	// instead of advancing it past the copied range.
	KeepIndex bool
}

// Config configures a machine instance.
type Config struct {
	Quirks Quirks

	// Rand is the random source for the RND instruction. If nil a
	// time-seeded source is used.
	Rand *rand.Rand

	// Logger enables per-instruction trace logging at debug level.
	// If nil the core does not log.
	Logger *log.Logger
}

// Chip8 is one CHIP-8 machine instance. It owns all machine state
// exclusively; external collaborators read snapshots (Frame, SoundActive)
// or deliver discrete key events (KeyDown, KeyUp) but never mutate
// control state directly.
type Chip8 struct {
	memory  Memory
	v       [RegisterCount]uint8
	index   uint16
	pc      uint16
	stack   Stack
	timers  Timers
	display Display
	keypad  Keypad

	// program keeps a pristine copy of the loaded ROM so Reset can
	// restore the initial memory image.
	program []byte

	rand   *rand.Rand
	quirks Quirks
	logger *log.Logger
}

// New creates a machine with the font table loaded and the program
// counter at the program start address.
func New(cfg Config) *Chip8 {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	c := &Chip8{
		pc:     ProgramStart,
		rand:   rng,
		quirks: cfg.Quirks,
		logger: cfg.Logger,
	}
	c.memory.loadFont()
	return c
}

// LoadProgram copies program bytes into memory at the program start
// address and keeps a pristine copy for Reset. A program that does not
// fit returns a LoadError before any execution step.
func (c *Chip8) LoadProgram(program []byte) error {
	if err := c.memory.loadProgram(program); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	c.program = append([]byte(nil), program...)
	return nil
}

// Reset reinitializes all machine state and reloads the font table and
// the program loaded by LoadProgram.
func (c *Chip8) Reset() {
	c.memory.reset()
	c.v = [RegisterCount]uint8{}
	c.index = 0
	c.pc = ProgramStart
	c.stack.reset()
	c.timers.reset()
	c.display.Clear()
	c.keypad.reset()

	if c.program != nil {
		// cannot fail, the size was checked at load time
		_ = c.memory.loadProgram(c.program)
	}
}

// Step executes exactly one fetch-decode-execute cycle. The program
// counter advances by two unless the instruction replaces it (jump, call,
// return), adds an extra increment (skip taken) or rewinds it (waiting
// for a key press). Any error stops interpretation and is surfaced to the
// host unrecovered.
func (c *Chip8) Step() error {
	hi, err := c.memory.Read(c.pc)
	if err != nil {
		return fmt.Errorf("fetching instruction: %w", err)
	}
	lo, err := c.memory.Read(c.pc + 1)
	if err != nil {
		return fmt.Errorf("fetching instruction: %w", err)
	}

	word := uint16(hi)<<8 | uint16(lo)
	op, ok := DecodeOpcode(word)
	if !ok {
		return &UnknownOpcodeError{Opcode: word, Address: c.pc}
	}

	if c.logger != nil {
		c.logger.Debug("Executing",
			log.Uint16("pc", c.pc),
			log.Stringer("opcode", op),
		)
	}

	c.pc += OpcodeSize
	if err := c.execute(op); err != nil {
		return fmt.Errorf("executing %s: %w", op, err)
	}
	return nil
}

// TickTimers decrements both timers once. The host calls this on the
// fixed 60Hz schedule, decoupled from the instruction rate.
func (c *Chip8) TickTimers() {
	c.timers.Tick()
}

// Frame returns a snapshot of the display buffer.
func (c *Chip8) Frame() Frame {
	return c.display.Frame()
}

// SoundActive reports whether the sound timer is nonzero.
func (c *Chip8) SoundActive() bool {
	return c.timers.SoundActive()
}

// KeyDown records a key press event from the input collaborator.
func (c *Chip8) KeyDown(key uint8) {
	c.keypad.SetKey(key, true)
}

// KeyUp records a key release event from the input collaborator.
func (c *Chip8) KeyUp(key uint8) {
	c.keypad.SetKey(key, false)
}

// PC returns the current program counter.
func (c *Chip8) PC() uint16 {
	return c.pc
}
