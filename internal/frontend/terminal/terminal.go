// Package terminal implements a terminal frontend using termbox.
// Each display pixel is rendered as two character cells to keep the
// aspect ratio roughly square.
package terminal

import (
	"fmt"

	"github.com/nsf/termbox-go"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/frontend"
)

// keyHoldFrames is how many frames a key stays pressed after its
// terminal event. Terminals only report key presses, never releases, so
// releases are synthesized after a short hold.
const keyHoldFrames = 6

// Terminal renders the display into the terminal and reads keyboard
// input from termbox events.
type Terminal struct {
	events chan termbox.Event

	// heldKeys counts the remaining hold frames per keypad key, zero
	// meaning released.
	heldKeys [chip8.KeyCount]int
}

// New initializes the terminal and starts the event reader.
func New() (*Terminal, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("initializing termbox: %w", err)
	}

	t := &Terminal{
		events: make(chan termbox.Event, 64),
	}
	go t.readEvents()
	return t, nil
}

// readEvents forwards termbox events to the poll channel until the
// terminal is closed.
func (t *Terminal) readEvents() {
	for {
		event := termbox.PollEvent()
		if event.Type == termbox.EventInterrupt {
			return
		}
		t.events <- event
	}
}

// Poll drains buffered terminal events and synthesizes key releases for
// keys whose hold frames expired.
func (t *Terminal) Poll() []frontend.Event {
	var events []frontend.Event

	for {
		select {
		case event := <-t.events:
			if mapped := t.mapEvent(event); mapped != nil {
				events = append(events, mapped)
			}
		default:
			return append(events, t.expireHeldKeys()...)
		}
	}
}

// mapEvent translates one termbox event into an emulator event and
// tracks key hold state. Unmapped keys return nil.
func (t *Terminal) mapEvent(event termbox.Event) frontend.Event {
	if event.Type != termbox.EventKey {
		return nil
	}

	switch event.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return frontend.ControlQuit
	case termbox.KeySpace:
		return frontend.ControlTogglePause
	case termbox.KeyTab:
		return frontend.ControlStep
	case termbox.KeyF5:
		return frontend.ControlReset
	case termbox.KeyF1:
		return frontend.ControlDumpState
	}

	key, ok := frontend.Keymap[event.Ch]
	if !ok {
		return nil
	}

	held := t.heldKeys[key] > 0
	t.heldKeys[key] = keyHoldFrames
	if held {
		// already pressed, just extend the hold
		return nil
	}
	return frontend.KeyEvent{Key: key, Pressed: true}
}

// expireHeldKeys counts down key holds and emits release events for keys
// that expired this frame.
func (t *Terminal) expireHeldKeys() []frontend.Event {
	var events []frontend.Event
	for key := range t.heldKeys {
		if t.heldKeys[key] == 0 {
			continue
		}
		t.heldKeys[key]--
		if t.heldKeys[key] == 0 {
			events = append(events, frontend.KeyEvent{Key: uint8(key), Pressed: false})
		}
	}
	return events
}

// Render draws the framebuffer snapshot into the terminal.
func (t *Terminal) Render(frame chip8.Frame) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return fmt.Errorf("clearing terminal: %w", err)
	}

	for y, row := range frame {
		for x, pixel := range row {
			if !pixel {
				continue
			}
			termbox.SetCell(x*2, y, ' ', termbox.ColorDefault, termbox.ColorWhite)
			termbox.SetCell(x*2+1, y, ' ', termbox.ColorDefault, termbox.ColorWhite)
		}
	}

	if err := termbox.Flush(); err != nil {
		return fmt.Errorf("flushing terminal: %w", err)
	}
	return nil
}

// Close shuts down the event reader and restores the terminal.
func (t *Terminal) Close() error {
	termbox.Interrupt()
	termbox.Close()
	return nil
}
