package input

import "time"

const (
	// DefaultDebounce is the minimum gap between two manual shots.
	DefaultDebounce = 50 * time.Millisecond
	// DefaultRepeat is the auto-fire cadence while rapid fire is active.
	DefaultRepeat = 100 * time.Millisecond
)

// Trigger converts pointer presses into shots. Presses closer together than
// Debounce are dropped unless rapid fire is active, in which case a held
// pointer also fires every Repeat.
type Trigger struct {
	Debounce time.Duration
	Repeat   time.Duration

	down       bool
	x, y       float64
	lastShot   time.Time
	nextRepeat time.Time
}

func NewTrigger() *Trigger {
	return &Trigger{Debounce: DefaultDebounce, Repeat: DefaultRepeat}
}

// Press records a pointer down at (x, y) and reports whether it fires.
func (t *Trigger) Press(now time.Time, x, y float64, rapid bool) bool {
	t.down = true
	t.x, t.y = x, y
	if rapid {
		t.nextRepeat = now.Add(t.Repeat)
	}
	return t.fire(now, rapid)
}

// Move updates the aim of a held pointer.
func (t *Trigger) Move(x, y float64) {
	if t.down {
		t.x, t.y = x, y
	}
}

// Release lifts the pointer and stops any auto repeat.
func (t *Trigger) Release() {
	t.down = false
	t.nextRepeat = time.Time{}
}

// Poll fires the auto repeat when it is due. The repeat only runs while the
// pointer stays down and rapid fire stays active; it stops otherwise. Rapid
// fire gained while the pointer is held starts the repeat one Repeat later.
func (t *Trigger) Poll(now time.Time, rapid bool) (x, y float64, fire bool) {
	if !t.down || !rapid {
		t.nextRepeat = time.Time{}
		return 0, 0, false
	}
	if t.nextRepeat.IsZero() {
		t.nextRepeat = now.Add(t.Repeat)
		return 0, 0, false
	}
	if now.Before(t.nextRepeat) {
		return 0, 0, false
	}
	t.nextRepeat = t.nextRepeat.Add(t.Repeat)
	if t.nextRepeat.Before(now) {
		t.nextRepeat = now.Add(t.Repeat)
	}
	return t.x, t.y, t.fire(now, rapid)
}

func (t *Trigger) fire(now time.Time, rapid bool) bool {
	if !rapid && !t.lastShot.IsZero() && now.Sub(t.lastShot) < t.Debounce {
		return false
	}
	t.lastShot = now
	return true
}
