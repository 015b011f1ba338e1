// Package powerup implements the timed buff state machine.
package powerup

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Kind identifies a power-up type.
type Kind int

const (
	RapidFire Kind = iota
	MultiShot
	TimeFreeze

	kindCount
)

// Kinds lists every power-up kind in declaration order.
var Kinds = [kindCount]Kind{RapidFire, MultiShot, TimeFreeze}

// Properties holds the fixed presentation and timing data of a kind.
type Properties struct {
	Name     string
	Symbol   rune
	Color    colorful.Color
	Duration time.Duration
}

var properties = [kindCount]Properties{
	RapidFire: {
		Name:     "RAPID FIRE",
		Symbol:   'R',
		Color:    mustHex("#ff0080"),
		Duration: 5 * time.Second,
	},
	MultiShot: {
		Name:     "MULTI SHOT",
		Symbol:   'M',
		Color:    mustHex("#00ff00"),
		Duration: 8 * time.Second,
	},
	TimeFreeze: {
		Name:     "TIME FREEZE",
		Symbol:   'F',
		Color:    mustHex("#00ffff"),
		Duration: 3 * time.Second,
	},
}

// Props returns the properties of k.
func (k Kind) Props() Properties {
	return properties[k]
}

// String returns the display name of k.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "UNKNOWN"
	}
	return properties[k].Name
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// State is the runtime state of one kind.
type State struct {
	Active    bool
	Remaining time.Duration
	Duration  time.Duration
}

// States tracks every kind for a single session.
type States struct {
	states [kindCount]State
}

// NewStates returns all kinds inactive with their fixed durations.
func NewStates() *States {
	s := &States{}
	s.Reset()
	return s
}

// Reset deactivates every kind.
func (s *States) Reset() {
	for _, k := range Kinds {
		s.states[k] = State{Duration: properties[k].Duration}
	}
}

// Activate turns k on for its full duration. Re-activation refreshes the timer.
func (s *States) Activate(k Kind) {
	if !k.Valid() {
		return
	}
	st := &s.states[k]
	st.Active = true
	st.Remaining = st.Duration
}

// Tick advances all active timers and returns the kinds that expired during this tick.
func (s *States) Tick(dt time.Duration) []Kind {
	var expired []Kind
	for _, k := range Kinds {
		st := &s.states[k]
		if !st.Active {
			continue
		}
		st.Remaining -= dt
		if st.Remaining <= 0 {
			st.Remaining = 0
			st.Active = false
			expired = append(expired, k)
		}
	}
	return expired
}

// Active reports whether k is currently active.
func (s *States) Active(k Kind) bool {
	return k.Valid() && s.states[k].Active
}

// Remaining returns the time left on k.
func (s *States) Remaining(k Kind) time.Duration {
	if !k.Valid() {
		return 0
	}
	return s.states[k].Remaining
}

// Fraction returns remaining/duration for k, 0 when inactive.
func (s *States) Fraction(k Kind) float64 {
	if !s.Active(k) {
		return 0
	}
	st := s.states[k]
	return float64(st.Remaining) / float64(st.Duration)
}

// Get returns a copy of the state of k.
func (s *States) Get(k Kind) State {
	if !k.Valid() {
		return State{}
	}
	return s.states[k]
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
