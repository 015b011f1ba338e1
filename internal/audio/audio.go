// Package audio defines the sound cues the game emits and the players that
// turn them into sound.
package audio

import (
	"math"
	"sync/atomic"
	"time"
)

// Cue is a closed set of game sound events.
type Cue int

const (
	Shoot Cue = iota
	RapidFire
	Hit
	Powerup
	GameOver
	HighScore
	Start

	cueCount
)

// Cues lists every cue in declaration order.
var Cues = [cueCount]Cue{Shoot, RapidFire, Hit, Powerup, GameOver, HighScore, Start}

var cueNames = [cueCount]string{
	Shoot:     "shoot",
	RapidFire: "rapidFire",
	Hit:       "hit",
	Powerup:   "powerup",
	GameOver:  "gameOver",
	HighScore: "highScore",
	Start:     "start",
}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// Voice describes how a cue sounds. Wave returns the sample at t seconds
// into the sound, already shaped by its envelope, in [-1, 1].
type Voice struct {
	Duration time.Duration
	// Freq is the base pitch, used by simple beep renderers.
	Freq float64
	Wave func(t float64) float64
}

var voices = [cueCount]Voice{
	Shoot: {
		Duration: 100 * time.Millisecond,
		Freq:     800,
		Wave: func(t float64) float64 {
			freq := 800 - t*600
			return math.Sin(2*math.Pi*freq*t) * math.Exp(-t*10) * 0.3
		},
	},
	RapidFire: {
		Duration: 80 * time.Millisecond,
		Freq:     900,
		Wave: func(t float64) float64 {
			freq := 900 - t*400
			return math.Sin(2*math.Pi*freq*t) * math.Exp(-t*15) * 0.25
		},
	},
	Hit: {
		Duration: 150 * time.Millisecond,
		Freq:     1200,
		Wave: func(t float64) float64 {
			env := math.Exp(-t * 8)
			h1 := math.Sin(2 * math.Pi * 1200 * t)
			h2 := math.Sin(2*math.Pi*1800*t) * 0.5
			return (h1 + h2) * env * 0.4
		},
	},
	Powerup: {
		Duration: 300 * time.Millisecond,
		Freq:     1500,
		Wave: func(t float64) float64 {
			freq := 1500 + t*500
			env := math.Exp(-t*3) * math.Sin(t*20)
			harmonic := math.Sin(2*math.Pi*freq*2*t) * 0.3
			return (math.Sin(2*math.Pi*freq*t) + harmonic) * env * 0.4
		},
	},
	GameOver: {
		Duration: 800 * time.Millisecond,
		Freq:     300,
		Wave: func(t float64) float64 {
			freq := 300 * math.Exp(-t*2)
			return math.Sin(2*math.Pi*freq*t) * math.Exp(-t*1.5) * 0.5
		},
	},
	HighScore: {
		Duration: 500 * time.Millisecond,
		Freq:     2000,
		Wave: func(t float64) float64 {
			melody := math.Sin(2*math.Pi*2000*t) +
				math.Sin(2*math.Pi*2500*t)*0.7 +
				math.Sin(2*math.Pi*3000*t)*0.5
			return melody * math.Exp(-t*4) * 0.3
		},
	},
	Start: {
		Duration: 400 * time.Millisecond,
		Freq:     1000,
		Wave: func(t float64) float64 {
			freq := 1000 + math.Sin(t*10)*200
			return math.Sin(2*math.Pi*freq*t) * math.Exp(-t*2.5) * 0.4
		},
	},
}

// Voice returns the synthesis recipe for c.
func (c Cue) Voice() Voice {
	if c < 0 || c >= cueCount {
		return Voice{}
	}
	return voices[c]
}

// Player plays cues. Implementations must not block the caller.
type Player interface {
	Play(c Cue)
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(Cue) {}

// Switch wraps a Player with a mute toggle that is safe to flip from any goroutine.
type Switch struct {
	player Player
	muted  atomic.Bool
}

func NewSwitch(p Player) *Switch {
	if p == nil {
		p = Nop{}
	}
	return &Switch{player: p}
}

func (s *Switch) Play(c Cue) {
	if s.muted.Load() {
		return
	}
	s.player.Play(c)
}

// Toggle flips the mute state and returns the new value.
func (s *Switch) Toggle() bool {
	for {
		old := s.muted.Load()
		if s.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (s *Switch) SetMuted(m bool) { s.muted.Store(m) }
func (s *Switch) Muted() bool     { return s.muted.Load() }
