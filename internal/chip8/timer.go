package chip8

// TimerRate is the fixed cadence in Hz at which both timers count down,
// independent of the instruction rate.
const TimerRate = 60

// Timers holds the delay and sound timer counters. Each timer is either
// zero (idle) or nonzero (counting down). Opcodes set timers from register
// values and read the delay timer; only Tick decrements them.
type Timers struct {
	delay uint8
	sound uint8
}

// Tick decrements each nonzero timer by one, clamping at zero. It is
// called by the host on the 60Hz schedule.
func (t *Timers) Tick() {
	if t.delay > 0 {
		t.delay--
	}
	if t.sound > 0 {
		t.sound--
	}
}

// Delay returns the current delay timer value.
func (t *Timers) Delay() uint8 {
	return t.delay
}

// SetDelay sets the delay timer.
func (t *Timers) SetDelay(value uint8) {
	t.delay = value
}

// SetSound sets the sound timer.
func (t *Timers) SetSound(value uint8) {
	t.sound = value
}

// SoundActive reports whether the sound timer is nonzero. It is the sole
// signal the audio collaborator uses to decide whether to emit a tone.
func (t *Timers) SoundActive() bool {
	return t.sound > 0
}

func (t *Timers) reset() {
	t.delay = 0
	t.sound = 0
}
