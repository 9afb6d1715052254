// Package beeper emits the monotone buzz of the sound timer through
// PortAudio. The tone is a square wave that plays while the timer is
// nonzero.
package beeper

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/gordonklaus/portaudio"
)

const toneFrequency = 440.0

// Beeper generates a square wave on the default output device. The
// active flag is read from the audio callback goroutine, so it is
// accessed atomically.
type Beeper struct {
	stream *portaudio.Stream

	sampleRate float64
	phase      float64
	active     atomic.Bool
}

// New initializes PortAudio and starts a silent output stream on the
// default device.
func New() (*Beeper, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initializing portaudio: %w", err)
	}

	host, err := portaudio.DefaultHostApi()
	if err != nil {
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("querying default host api: %w", err)
	}

	parameters := portaudio.HighLatencyParameters(nil, host.DefaultOutputDevice)
	b := &Beeper{
		sampleRate: parameters.SampleRate,
	}

	stream, err := portaudio.OpenStream(parameters, b.callback)
	if err != nil {
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("opening audio stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		_ = stream.Close()
		_ = portaudio.Terminate()
		return nil, fmt.Errorf("starting audio stream: %w", err)
	}

	b.stream = stream
	return b, nil
}

// SetActive switches the tone on or off.
func (b *Beeper) SetActive(active bool) {
	b.active.Store(active)
}

// callback fills the output buffer with either the square wave or
// silence, keeping the phase running so the tone resumes without a
// click.
func (b *Beeper) callback(out []float32) {
	step := toneFrequency / b.sampleRate
	active := b.active.Load()

	for i := range out {
		b.phase = math.Mod(b.phase+step, 1)
		if !active {
			out[i] = 0
			continue
		}
		if b.phase < 0.5 {
			out[i] = 0.3
		} else {
			out[i] = -0.3
		}
	}
}

// Close stops the stream and shuts down PortAudio.
func (b *Beeper) Close() error {
	b.active.Store(false)
	if err := b.stream.Close(); err != nil {
		return fmt.Errorf("closing audio stream: %w", err)
	}
	if err := portaudio.Terminate(); err != nil {
		return fmt.Errorf("terminating portaudio: %w", err)
	}
	return nil
}
