// Package config centralizes all tunable game parameters.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Logical canvas - game objects use these coordinates.
// Actual rendering scales to fit terminal size.
const (
	LogicalWidth  = 800
	LogicalHeight = 600
)

// Max render resolution in terminal cells. Larger terminals get a centered
// render area with a border.
const (
	MaxTermWidth  = 200
	MaxTermHeight = 60
)

// Where score particles fly to: the score readout in the top-left HUD.
const (
	ScoreAnchorX = 70
	ScoreAnchorY = 25
)

// Pool ceilings
const (
	TargetPoolSize     = 50
	ParticlePoolSize   = 50
	ProjectilePoolSize = 100
)

// Spawning
const (
	MinSpawnInterval  = 500 * time.Millisecond
	SpawnAcceleration = 0.1 // ms of interval lost per ms of play
	PowerupSpawnDelay = 10 * time.Second
	PowerupInset      = 30
	TargetSpeedScale  = 100 // px/s per unit of profile speed
)

// Effects
const (
	ShakeIntensity = 3.0
	ShakeDuration  = 200 * time.Millisecond
	PopupDuration  = time.Second
)

// RewardBonus is the time granted by a completed rewarded video.
const RewardBonus = 30 * time.Second

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
	// MaxFrameDelta caps the simulated time of one frame after a stall.
	MaxFrameDelta = 100 * time.Millisecond
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity (SSH sessions), defaults for client.ClientOptions
const (
	InactivityWarn       = 90 * time.Second
	InactivityDisconnect = 120 * time.Second
)

// Difficulty selects a Profile.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard

	difficultyCount
)

// Difficulties lists every level in menu order.
var Difficulties = [difficultyCount]Difficulty{Easy, Medium, Hard}

// Profile is the tuning of one difficulty level.
type Profile struct {
	Name          string
	TargetSpeed   float64
	SpawnRate     time.Duration
	TimeLimit     time.Duration
	TargetSize    float64
	PowerupChance float64
}

var profiles = [difficultyCount]Profile{
	Easy:   {Name: "easy", TargetSpeed: 0.5, SpawnRate: 2000 * time.Millisecond, TimeLimit: 90 * time.Second, TargetSize: 40, PowerupChance: 0.3},
	Medium: {Name: "medium", TargetSpeed: 1.0, SpawnRate: 1500 * time.Millisecond, TimeLimit: 60 * time.Second, TargetSize: 35, PowerupChance: 0.2},
	Hard:   {Name: "hard", TargetSpeed: 1.8, SpawnRate: 1000 * time.Millisecond, TimeLimit: 45 * time.Second, TargetSize: 25, PowerupChance: 0.15},
}

// Profile returns the tuning for d. Unknown values fall back to Medium.
func (d Difficulty) Profile() Profile {
	if !d.Valid() {
		return profiles[Medium]
	}
	return profiles[d]
}

func (d Difficulty) Valid() bool {
	return d >= 0 && d < difficultyCount
}

func (d Difficulty) String() string {
	return d.Profile().Name
}

// ParseDifficulty accepts a level name, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Difficulties {
		if profiles[d].Name == name {
			return d, nil
		}
	}
	return Medium, fmt.Errorf("unknown difficulty %q", s)
}

// DifficultyFromKey maps the menu keys 1-3 to a level.
func DifficultyFromKey(n int) (Difficulty, bool) {
	d := Difficulty(n - 1)
	return d, d.Valid()
}
