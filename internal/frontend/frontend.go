// Package frontend defines the host-side interface between the emulator
// loop and the renderer/input backends.
package frontend

import "github.com/retroenv/retrochip8/internal/chip8"

// Frontend is a renderer and input backend. The emulator loop polls it
// once per frame for buffered events and pushes it a display snapshot
// once per frame; Poll and Render are always called from the same
// goroutine, between instruction steps.
type Frontend interface {
	// Poll returns the input events that arrived since the last call.
	Poll() []Event

	// Render displays a snapshot of the framebuffer.
	Render(frame chip8.Frame) error

	// Close releases the backend resources.
	Close() error
}

// Event is an input event delivered to the emulator between instruction
// steps, either a keypad key transition or an emulator control request.
type Event interface {
	isEvent()
}

// KeyEvent is a key-down or key-up transition of one of the 16 keypad keys.
type KeyEvent struct {
	Key     uint8
	Pressed bool
}

func (KeyEvent) isEvent() {}

// ControlEvent requests an emulator control action.
type ControlEvent uint8

func (ControlEvent) isEvent() {}

// Control requests understood by the emulator loop.
const (
	// ControlQuit stops emulation.
	ControlQuit ControlEvent = iota
	// ControlTogglePause pauses or resumes execution.
	ControlTogglePause
	// ControlStep executes a single instruction while paused.
	ControlStep
	// ControlReset reinitializes the machine and reloads the program.
	ControlReset
	// ControlDumpState logs the register file, memory and display.
	ControlDumpState
)

// Keymap is the conventional mapping of the left side of a QWERTY
// keyboard onto the hexadecimal keypad:
//
//	1 2 3 4        1 2 3 C
//	q w e r   ->   4 5 6 D
//	a s d f        7 8 9 E
//	z x c v        A 0 B F
var Keymap = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}
