package emulator

import (
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
)

// mockFrontend queues events for one Poll call and records rendered
// frames.
type mockFrontend struct {
	events []frontend.Event
	frames []chip8.Frame
	closed bool
}

func (m *mockFrontend) Poll() []frontend.Event {
	events := m.events
	m.events = nil
	return events
}

func (m *mockFrontend) Render(frame chip8.Frame) error {
	m.frames = append(m.frames, frame)
	return nil
}

func (m *mockFrontend) Close() error {
	m.closed = true
	return nil
}

// mockBeeper records the last observed sound timer state.
type mockBeeper struct {
	active bool
}

func (m *mockBeeper) SetActive(active bool) {
	m.active = active
}
