// Package input defines a platform-neutral snapshot of keyboard and mouse state.
// Window backends fill a Snapshot once per frame; game code only reads it.
package input

// Key identifies a key the demo reacts to. Backends translate their own key
// codes into these values.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyA
	KeyC
	KeyD
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyO
	KeyP
	KeyS
	KeyT
	KeyU
	KeyW
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	KeyLeftBracket
	KeyRightBracket
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEscape
	KeyF12
	KeyLeftShift
	KeyRightShift

	keyCount
)

// Keys lists every key a backend should poll.
func Keys() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := KeyA; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// Button identifies a mouse button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
)

// Snapshot is the polled input state for a single frame.
type Snapshot struct {
	keys    [keyCount]bool
	buttons [2]bool

	// Cursor position in window pixels.
	CursorX, CursorY float64
}

// Set records whether k is held.
func (s *Snapshot) Set(k Key, down bool) {
	if k < keyCount {
		s.keys[k] = down
	}
}

// SetButton records whether b is held.
func (s *Snapshot) SetButton(b Button, down bool) {
	if int(b) < len(s.buttons) {
		s.buttons[b] = down
	}
}

// Down reports whether k is held.
func (s Snapshot) Down(k Key) bool {
	return k < keyCount && s.keys[k]
}

// ButtonDown reports whether b is held.
func (s Snapshot) ButtonDown(b Button) bool {
	return int(b) < len(s.buttons) && s.buttons[b]
}

// Shift reports whether the left shift modifier is held. Right shift is a
// separate speed modifier and does not count.
func (s Snapshot) Shift() bool {
	return s.Down(KeyLeftShift)
}

// With returns a copy of s with the given keys held. Useful for building
// scripted input.
func (s Snapshot) With(keys ...Key) Snapshot {
	for _, k := range keys {
		s.Set(k, true)
	}
	return s
}

// At returns a copy of s with the cursor moved.
func (s Snapshot) At(x, y float64) Snapshot {
	s.CursorX, s.CursorY = x, y
	return s
}

// Holding returns a copy of s with the given mouse buttons held.
func (s Snapshot) Holding(buttons ...Button) Snapshot {
	for _, b := range buttons {
		s.SetButton(b, true)
	}
	return s
}
