package loop

import (
	"time"

	"github.com/tomz197/target-blaster/internal/loop/config"
	"github.com/tomz197/target-blaster/internal/powerup"
)

// Phase is the session phase of a Game.
type Phase int

const (
	PhaseLoading  Phase = iota // Collaborators not ready yet
	PhaseMenu                  // Title and difficulty selection
	PhasePlaying               // Simulation running
	PhasePaused                // Simulation held, state retained
	PhaseGameOver              // Time ran out
)

var phaseNames = [...]string{
	PhaseLoading:  "loading",
	PhaseMenu:     "menu",
	PhasePlaying:  "playing",
	PhasePaused:   "paused",
	PhaseGameOver: "game-over",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// PowerupTimer is the HUD view of one buff.
type PowerupTimer struct {
	Kind      powerup.Kind
	Active    bool
	Remaining time.Duration
	// Fraction of the duration still left, in [0, 1].
	Fraction float64
}

// Snapshot is a read-only copy of everything a UI shows.
type Snapshot struct {
	Phase      Phase
	Difficulty config.Difficulty

	Score        int
	Pending      int
	HighScore    int
	NewHighScore bool
	TimeLeft     int // seconds
	Accuracy     int // percent
	Multiplier   float64
	Shots        int
	Hits         int
	Streak       int

	Powerups [len(powerup.Kinds)]PowerupTimer

	// Screen shake offset in logical pixels.
	ShakeX, ShakeY float64

	// Last amount moved from pending into score, shown while PopupAlpha > 0.
	Popup      int
	PopupAlpha float64

	Targets     int
	Items       int
	Particles   int
	Projectiles int

	RewardPending bool
}
