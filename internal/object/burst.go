package object

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Burst describes a radial spray of explosion particles. Speed and Life are
// drawn uniformly from [Min, Min+Jitter).
type Burst struct {
	Count       int
	Color       colorful.Color
	SpeedMin    float64
	SpeedJitter float64
	LifeMin     time.Duration
	LifeJitter  time.Duration
}

var (
	missGrey    = mustHex("#666666")
	pickupGold  = mustHex("#ffff00")
	arrivalLime = mustHex("#00ff00")
)

// HitBurst is sprayed where a target is destroyed, in its tier color.
func HitBurst(c colorful.Color) Burst {
	return Burst{Count: 15, Color: c, SpeedMin: 100, SpeedJitter: 300, LifeMin: 500 * time.Millisecond, LifeJitter: 1000 * time.Millisecond}
}

// MissBurst marks a shot that hit nothing.
func MissBurst() Burst {
	return Burst{Count: 8, Color: missGrey, SpeedMin: 50, SpeedJitter: 150, LifeMin: 300 * time.Millisecond, LifeJitter: 800 * time.Millisecond}
}

// PickupBurst celebrates a collected power-up.
func PickupBurst() Burst {
	return Burst{Count: 20, Color: pickupGold, SpeedMin: 200, SpeedJitter: 400, LifeMin: 800 * time.Millisecond, LifeJitter: 1200 * time.Millisecond}
}

// ArrivalBurst flashes at the score display when a score particle lands.
func ArrivalBurst() Burst {
	return Burst{Count: 5, Color: arrivalLime, SpeedMin: 50, SpeedJitter: 100, LifeMin: 500 * time.Millisecond}
}

// Emit initialises Count particles at (x, y). next supplies each particle; it
// may return nil to stop early.
func (b Burst) Emit(rng *rand.Rand, x, y float64, next func() *Particle) {
	for range b.Count {
		p := next()
		if p == nil {
			return
		}
		angle := rng.Float64() * 2 * math.Pi
		speed := rng.Float64()*b.SpeedJitter + b.SpeedMin
		life := b.LifeMin + time.Duration(rng.Float64()*float64(b.LifeJitter))
		p.InitExplosion(rng, x, y, math.Cos(angle)*speed, math.Sin(angle)*speed, b.Color, life)
	}
}

// ScoreParticleCount is min(floor(points/5), 8).
func ScoreParticleCount(points int) int {
	return max(0, min(points/5, 8))
}

// EmitScore initialises the score particles for a hit worth points, spread
// ±10 px around (x, y) and flying to (tx, ty).
func EmitScore(rng *rand.Rand, x, y, tx, ty float64, c colorful.Color, points int, next func() *Particle) {
	for range ScoreParticleCount(points) {
		p := next()
		if p == nil {
			return
		}
		sx := (rng.Float64() - 0.5) * 20
		sy := (rng.Float64() - 0.5) * 20
		p.InitScore(rng, x+sx, y+sy, tx, ty, c, ScoreParticleLife)
	}
}
