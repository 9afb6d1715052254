package emulator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// newTestEmulator returns an emulator running a machine loaded with an
// endless loop program, at 120 instructions per second (2 per frame).
func newTestEmulator(t *testing.T) (*Emulator, *mockFrontend, *mockBeeper) {
	t.Helper()

	machine := chip8.New(chip8.Config{})
	assert.NoError(t, machine.LoadProgram([]byte{0x12, 0x00})) // JP $200

	front := &mockFrontend{}
	beeper := &mockBeeper{}
	emu := New(log.NewTestLogger(t), machine, front, beeper, 120)
	return emu, front, beeper
}

func TestNew_StepsPerFrame(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		expected int
	}{
		{"default on zero", 0, DefaultInstructionRate / chip8.TimerRate},
		{"common rate", 700, 11},
		{"below frame rate", 30, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emu := New(log.NewTestLogger(t), chip8.New(chip8.Config{}), &mockFrontend{}, nil, tt.rate)
			assert.Equal(t, tt.expected, emu.stepsPerFrame)
		})
	}
}

func TestEmulator_RunFrame(t *testing.T) {
	emu, front, _ := newTestEmulator(t)

	assert.NoError(t, emu.runFrame())

	// one frame was rendered
	assert.Len(t, front.frames, 1)
	// the endless loop kept the program counter in place
	assert.Equal(t, 0x200, emu.machine.PC())
}

func TestEmulator_RunFrameTicksTimers(t *testing.T) {
	machine := chip8.New(chip8.Config{})
	// set the sound timer to 2 and spin
	assert.NoError(t, machine.LoadProgram([]byte{0x60, 0x02, 0xF0, 0x18, 0x12, 0x04}))

	front := &mockFrontend{}
	beeper := &mockBeeper{}
	emu := New(log.NewTestLogger(t), machine, front, beeper, 120)

	assert.NoError(t, emu.runFrame())
	assert.True(t, beeper.active)

	assert.NoError(t, emu.runFrame())
	// the second tick expired the sound timer
	assert.False(t, beeper.active)
}

func TestEmulator_PauseGatesExecution(t *testing.T) {
	emu, front, _ := newTestEmulator(t)

	front.events = []frontend.Event{frontend.ControlTogglePause}
	assert.NoError(t, emu.runFrame())
	assert.True(t, emu.paused)

	// key events still apply and frames still render while paused
	front.events = []frontend.Event{frontend.KeyEvent{Key: 0x5, Pressed: true}}
	assert.NoError(t, emu.runFrame())
	assert.Len(t, front.frames, 2)

	front.events = []frontend.Event{frontend.ControlTogglePause}
	assert.NoError(t, emu.runFrame())
	assert.False(t, emu.paused)
}

func TestEmulator_SingleStep(t *testing.T) {
	emu, front, _ := newTestEmulator(t)

	// a step request while running is ignored
	front.events = []frontend.Event{frontend.ControlStep}
	assert.NoError(t, emu.runFrame())

	front.events = []frontend.Event{frontend.ControlTogglePause, frontend.ControlStep}
	assert.NoError(t, emu.runFrame())
	assert.Equal(t, 0x200, emu.machine.PC())
}

func TestEmulator_Reset(t *testing.T) {
	emu, front, _ := newTestEmulator(t)
	assert.NoError(t, emu.runFrame())

	front.events = []frontend.Event{frontend.ControlTogglePause, frontend.ControlReset}
	assert.NoError(t, emu.runFrame())

	assert.False(t, emu.paused)
	assert.Equal(t, 0x200, emu.machine.PC())
}

func TestEmulator_RunQuit(t *testing.T) {
	emu, front, _ := newTestEmulator(t)
	front.events = []frontend.Event{frontend.ControlQuit}

	err := emu.Run(context.Background())
	assert.NoError(t, err)
}

func TestEmulator_RunCancellation(t *testing.T) {
	emu, _, _ := newTestEmulator(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := emu.Run(ctx)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestEmulator_RunFatalError(t *testing.T) {
	machine := chip8.New(chip8.Config{})
	// 0x0000 matches no canonical instruction
	assert.NoError(t, machine.LoadProgram([]byte{0x00, 0x00}))

	emu := New(log.NewTestLogger(t), machine, &mockFrontend{}, nil, 120)

	err := emu.runFrame()
	assert.Error(t, err)

	var unknownErr *chip8.UnknownOpcodeError
	assert.True(t, errors.As(err, &unknownErr))
}

func TestEmulator_RunStopsAfterQuitEvent(t *testing.T) {
	emu, front, _ := newTestEmulator(t)
	front.events = []frontend.Event{frontend.ControlQuit}

	done := make(chan error, 1)
	go func() {
		done <- emu.Run(context.Background())
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("emulator did not stop on quit event")
	}
}
