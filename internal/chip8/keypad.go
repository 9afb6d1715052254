package chip8

// KeyCount is the number of keys on the hexadecimal keypad.
const KeyCount = 16

// Keypad holds the current pressed state of the 16 logical keys. The host
// input collaborator sets key states through discrete down/up events; the
// interpreter only queries the current state.
type Keypad struct {
	keys [KeyCount]bool
}

// SetKey records a key press or release. Keys outside 0-15 are ignored.
func (k *Keypad) SetKey(key uint8, pressed bool) {
	if key >= KeyCount {
		return
	}
	k.keys[key] = pressed
}

// Pressed reports whether the given key is currently down.
func (k *Keypad) Pressed(key uint8) bool {
	if key >= KeyCount {
		return false
	}
	return k.keys[key]
}

// FirstPressed returns the lowest-numbered key currently down, used by
// the wait-for-key instruction.
func (k *Keypad) FirstPressed() (uint8, bool) {
	for key, pressed := range k.keys {
		if pressed {
			return uint8(key), true
		}
	}
	return 0, false
}

func (k *Keypad) reset() {
	k.keys = [KeyCount]bool{}
}
