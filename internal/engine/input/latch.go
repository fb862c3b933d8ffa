package input

// LatchState is the phase of a debounced key.
type LatchState uint8

const (
	Idle     LatchState = iota // key up, armed
	Pressed                    // first frame down; the action fires here
	Held                       // still down after firing
	Released                   // first frame up after a press
)

func (s LatchState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pressed:
		return "pressed"
	case Held:
		return "held"
	case Released:
		return "released"
	default:
		return "unknown"
	}
}

// Latch turns a polled key level into a single press event, so a discrete
// action fires exactly once per physical press no matter how many frames the
// key stays down.
type Latch struct {
	state LatchState
}

// Update advances the latch with this frame's key level and reports whether
// the key was pressed this frame.
func (l *Latch) Update(down bool) bool {
	switch l.state {
	case Idle, Released:
		if down {
			l.state = Pressed
			return true
		}
		l.state = Idle
	case Pressed, Held:
		if down {
			l.state = Held
		} else {
			l.state = Released
		}
	}
	return false
}

// State returns the current phase.
func (l *Latch) State() LatchState {
	return l.state
}
