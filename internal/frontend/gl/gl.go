// Package gl implements a windowed frontend using GLFW and legacy
// OpenGL. Every display pixel becomes a filled quad scaled to the
// window size.
package gl

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.2/glfw"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
)

const (
	windowWidth  = 640
	windowHeight = 320
	windowTitle  = "retrochip8"
)

// keypadKeys maps GLFW keys onto keypad keys, following the
// conventional QWERTY layout.
var keypadKeys = map[glfw.Key]uint8{
	glfw.Key1: 0x1, glfw.Key2: 0x2, glfw.Key3: 0x3, glfw.Key4: 0xC,
	glfw.KeyQ: 0x4, glfw.KeyW: 0x5, glfw.KeyE: 0x6, glfw.KeyR: 0xD,
	glfw.KeyA: 0x7, glfw.KeyS: 0x8, glfw.KeyD: 0x9, glfw.KeyF: 0xE,
	glfw.KeyZ: 0xA, glfw.KeyX: 0x0, glfw.KeyC: 0xB, glfw.KeyV: 0xF,
}

// controlKeys maps GLFW keys onto emulator control requests, triggered
// on the press edge.
var controlKeys = map[glfw.Key]frontend.ControlEvent{
	glfw.KeyEscape: frontend.ControlQuit,
	glfw.KeySpace:  frontend.ControlTogglePause,
	glfw.KeyTab:    frontend.ControlStep,
	glfw.KeyF5:     frontend.ControlReset,
	glfw.KeyF1:     frontend.ControlDumpState,
}

// Window renders the display into a GLFW window and reads keyboard
// input by diffing key states once per frame. All methods must be
// called from the main OS thread.
type Window struct {
	window *glfw.Window

	keypadState  [chip8.KeyCount]bool
	controlState map[glfw.Key]bool
}

// New initializes GLFW and OpenGL and opens the emulator window.
func New() (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initializing glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("creating window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("initializing opengl: %w", err)
	}

	// map the framebuffer coordinates directly onto the viewport
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0, chip8.DisplayWidth, chip8.DisplayHeight, 0, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)

	return &Window{
		window:       window,
		controlState: make(map[glfw.Key]bool),
	}, nil
}

// Poll processes window events and returns the key transitions since
// the last call.
func (w *Window) Poll() []frontend.Event {
	glfw.PollEvents()

	var events []frontend.Event
	if w.window.ShouldClose() {
		events = append(events, frontend.ControlQuit)
	}

	for key, control := range controlKeys {
		pressed := w.window.GetKey(key) == glfw.Press
		if pressed && !w.controlState[key] {
			events = append(events, control)
		}
		w.controlState[key] = pressed
	}

	for key, keypadKey := range keypadKeys {
		pressed := w.window.GetKey(key) == glfw.Press
		if pressed == w.keypadState[keypadKey] {
			continue
		}
		w.keypadState[keypadKey] = pressed
		events = append(events, frontend.KeyEvent{Key: keypadKey, Pressed: pressed})
	}
	return events
}

// Render draws the framebuffer snapshot and swaps the buffers.
func (w *Window) Render(frame chip8.Frame) error {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.Color3f(1, 1, 1)
	gl.Begin(gl.QUADS)
	for y, row := range frame {
		for x, pixel := range row {
			if !pixel {
				continue
			}
			gl.Vertex2f(float32(x), float32(y))
			gl.Vertex2f(float32(x+1), float32(y))
			gl.Vertex2f(float32(x+1), float32(y+1))
			gl.Vertex2f(float32(x), float32(y+1))
		}
	}
	gl.End()

	w.window.SwapBuffers()
	return nil
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() error {
	w.window.Destroy()
	glfw.Terminate()
	return nil
}
