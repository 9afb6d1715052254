// Package emulator drives the fetch-decode-execute loop of a CHIP-8
// machine at a configurable instruction rate while ticking the timers on
// their own fixed 60Hz schedule.
package emulator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrogolib/log"
)

// DefaultInstructionRate is the default number of instructions executed
// per second, a common speed for CHIP-8 games.
const DefaultInstructionRate = 700

// framePeriod is the duration of one 60Hz frame, the cadence of timer
// ticks and display refreshes.
const framePeriod = time.Second / chip8.TimerRate

// errQuit stops the loop on a frontend quit request.
var errQuit = errors.New("quit requested")

// Beeper is the audio collaborator. It observes the sound timer state
// once per frame and emits a tone while it is active.
type Beeper interface {
	SetActive(active bool)
}

// Emulator owns one machine instance and orchestrates instruction
// execution, timer ticks, rendering, audio and input application. All
// state transitions happen between instruction steps, never mid
// instruction.
type Emulator struct {
	logger  *log.Logger
	machine *chip8.Chip8
	front   frontend.Frontend
	beeper  Beeper

	stepsPerFrame int
	paused        bool
}

// New creates an emulator running the given machine at instructionRate
// instructions per second. The beeper may be nil when audio is
// unavailable.
func New(logger *log.Logger, machine *chip8.Chip8, front frontend.Frontend,
	beeper Beeper, instructionRate int) *Emulator {

	if instructionRate <= 0 {
		instructionRate = DefaultInstructionRate
	}
	stepsPerFrame := instructionRate / chip8.TimerRate
	if stepsPerFrame < 1 {
		stepsPerFrame = 1
	}

	return &Emulator{
		logger:        logger,
		machine:       machine,
		front:         front,
		beeper:        beeper,
		stepsPerFrame: stepsPerFrame,
	}
}

// Run executes frames at 60Hz until the context is canceled, the
// frontend requests a quit or a fatal interpreter error occurs. A quit
// request returns nil.
func (e *Emulator) Run(ctx context.Context) error {
	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if err := e.runFrame(); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}
}

// runFrame applies pending input events, executes the instructions of
// one frame, ticks the timers once and refreshes display and audio.
func (e *Emulator) runFrame() error {
	for _, event := range e.front.Poll() {
		if err := e.applyEvent(event); err != nil {
			return err
		}
	}

	if !e.paused {
		for i := 0; i < e.stepsPerFrame; i++ {
			if err := e.machine.Step(); err != nil {
				return fmt.Errorf("executing instruction: %w", err)
			}
		}
	}

	e.machine.TickTimers()

	if e.beeper != nil {
		e.beeper.SetActive(e.machine.SoundActive())
	}

	if err := e.front.Render(e.machine.Frame()); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	return nil
}

// applyEvent applies one input event to the machine or the loop state.
func (e *Emulator) applyEvent(event frontend.Event) error {
	switch ev := event.(type) {
	case frontend.KeyEvent:
		if ev.Pressed {
			e.machine.KeyDown(ev.Key)
		} else {
			e.machine.KeyUp(ev.Key)
		}

	case frontend.ControlEvent:
		return e.applyControl(ev)
	}
	return nil
}

// applyControl handles an emulator control request.
func (e *Emulator) applyControl(control frontend.ControlEvent) error {
	switch control {
	case frontend.ControlQuit:
		return errQuit

	case frontend.ControlTogglePause:
		e.paused = !e.paused
		if e.paused {
			e.logger.Info("Paused")
		} else {
			e.logger.Info("Resumed")
		}

	case frontend.ControlStep:
		// single stepping is only meaningful while paused, otherwise it
		// would double-step the running machine
		if !e.paused {
			return nil
		}
		if err := e.machine.Step(); err != nil {
			return fmt.Errorf("executing single step: %w", err)
		}
		e.logger.Info("Stepped", log.Uint16("pc", e.machine.PC()))

	case frontend.ControlReset:
		e.machine.Reset()
		e.paused = false
		e.logger.Info("Reset")

	case frontend.ControlDumpState:
		e.logger.Info("Machine state",
			log.String("registers", e.machine.DumpRegisters()),
			log.String("display", e.machine.DumpDisplay()),
		)
		e.logger.Debug("Memory", log.String("dump", e.machine.DumpMemory()))
	}
	return nil
}
