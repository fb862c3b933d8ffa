package input

import "testing"

func TestLatchFiresOncePerPress(t *testing.T) {
	var l Latch

	// Key held for ten frames, released for two, held again for five.
	levels := []bool{
		true, true, true, true, true, true, true, true, true, true,
		false, false,
		true, true, true, true, true,
	}

	fired := 0
	for _, down := range levels {
		if l.Update(down) {
			fired++
		}
	}
	if fired != 2 {
		t.Errorf("expected 2 presses, got %d", fired)
	}
}

func TestLatchStates(t *testing.T) {
	var l Latch
	steps := []struct {
		down  bool
		fired bool
		state LatchState
	}{
		{false, false, Idle},
		{true, true, Pressed},
		{true, false, Held},
		{true, false, Held},
		{false, false, Released},
		{false, false, Idle},
		{true, true, Pressed},
		{false, false, Released},
		{true, true, Pressed},
	}

	for i, s := range steps {
		fired := l.Update(s.down)
		if fired != s.fired {
			t.Errorf("step %d: fired = %v, want %v", i, fired, s.fired)
		}
		if l.State() != s.state {
			t.Errorf("step %d: state = %v, want %v", i, l.State(), s.state)
		}
	}
}

func TestSnapshot(t *testing.T) {
	s := Snapshot{}.With(KeyA, KeyLeftShift).At(12, 34).Holding(ButtonRight)

	if !s.Down(KeyA) || !s.Shift() {
		t.Error("expected A and left shift down")
	}
	if s.Down(KeyD) {
		t.Error("D should not be down")
	}
	if s.CursorX != 12 || s.CursorY != 34 {
		t.Errorf("cursor = (%v, %v), want (12, 34)", s.CursorX, s.CursorY)
	}
	if !s.ButtonDown(ButtonRight) || s.ButtonDown(ButtonLeft) {
		t.Error("expected only the right button held")
	}

	// Right shift is not the edit modifier.
	if (Snapshot{}).With(KeyRightShift).Shift() {
		t.Error("right shift must not count as Shift")
	}
	// Out-of-range keys are ignored rather than panicking.
	var z Snapshot
	z.Set(Key(200), true)
	if z.Down(Key(200)) {
		t.Error("unknown key should never report down")
	}
}

func TestKeysCoversAll(t *testing.T) {
	keys := Keys()
	if len(keys) != int(keyCount)-1 {
		t.Fatalf("Keys() returned %d keys, want %d", len(keys), keyCount-1)
	}
	for _, k := range keys {
		if k == KeyUnknown {
			t.Error("Keys() must not include KeyUnknown")
		}
	}
}
