package object

import (
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/target-blaster/internal/draw"
	"github.com/tomz197/target-blaster/internal/physics"
)

// Tier is the value class of a target, drawn at spawn.
type Tier int

const (
	TierStandard Tier = iota
	TierFast
	TierRare
	TierUltra

	tierCount
)

// TierInfo describes a tier.
type TierInfo struct {
	Points      int
	Color       colorful.Color
	Probability float64
}

var tiers = [tierCount]TierInfo{
	TierStandard: {Points: 10, Color: mustHex("#ff0080"), Probability: 0.5},
	TierFast:     {Points: 20, Color: mustHex("#00ff00"), Probability: 0.3},
	TierRare:     {Points: 30, Color: mustHex("#ffff00"), Probability: 0.15},
	TierUltra:    {Points: 50, Color: mustHex("#00ffff"), Probability: 0.05},
}

// Info returns the fixed properties of t.
func (t Tier) Info() TierInfo {
	return tiers[t]
}

// PickTier maps a uniform draw r in [0,1) onto the cumulative tier weights.
func PickTier(r float64) Tier {
	cum := 0.0
	for t := TierStandard; t < tierCount; t++ {
		cum += tiers[t].Probability
		if r <= cum {
			return t
		}
	}
	return tierCount - 1
}

const (
	targetMinLife    = 3000 * time.Millisecond
	targetLifeJitter = 2000 // ms
	// Below this share of its max life a target starts fading.
	targetFadeShare = 0.3
)

// Target is a drifting bullseye the player shoots for points.
type Target struct {
	X, Y   float64
	VX, VY float64 // px/s
	Size   float64 // hit radius

	Life    time.Duration
	MaxLife time.Duration

	Rotation      float64
	RotationSpeed float64 // rad/ms
	PulsePhase    float64

	Tier   Tier
	Active bool
}

// Init places the target and draws its tier, lifetime and spin. Velocity is
// scaled by the tier: points/10, and tiers above 20 points shrink by 0.8 and
// speed up by 1.3.
func (t *Target) Init(rng *rand.Rand, x, y, size, vx, vy float64) {
	t.X, t.Y = x, y
	t.Size = size
	t.VX, t.VY = vx, vy
	t.Life = targetMinLife + time.Duration(rng.Float64()*targetLifeJitter*float64(time.Millisecond))
	t.MaxLife = t.Life
	t.Active = true

	t.Rotation = rng.Float64() * 2 * math.Pi
	t.RotationSpeed = (rng.Float64() - 0.5) * 0.01
	t.PulsePhase = rng.Float64() * 2 * math.Pi

	t.Tier = PickTier(rng.Float64())
	points := float64(t.Points())
	t.VX *= points / 10
	t.VY *= points / 10
	if t.Points() > 20 {
		t.Size *= 0.8
		t.VX *= 1.3
		t.VY *= 1.3
	}
}

// Update advances the target by dt and reports whether it expired. While
// frozen the target holds its position; spin, pulse and lifetime continue.
func (t *Target) Update(dt time.Duration, frozen bool) (remove bool) {
	if !t.Active {
		return true
	}
	ms := millis(dt)
	if !frozen {
		t.X += t.VX * dt.Seconds()
		t.Y += t.VY * dt.Seconds()
	}
	t.Rotation += t.RotationSpeed * ms
	t.PulsePhase += ms * 0.005

	t.Life -= dt
	if t.Life <= 0 {
		t.Active = false
		return true
	}
	return false
}

// CheckHit reports whether (px, py) lies within the target radius.
func (t *Target) CheckHit(px, py float64) bool {
	return t.Active && physics.PointInCircle(px, py, t.X, t.Y, t.Size)
}

// Points returns the base score of the target's tier.
func (t *Target) Points() int {
	return tiers[t.Tier].Points
}

// Color returns the tier color.
func (t *Target) Color() colorful.Color {
	return tiers[t.Tier].Color
}

// Alpha is 1 until the last 30% of the lifetime, then fades linearly to 0.
func (t *Target) Alpha() float64 {
	return math.Min(1, lifeRatio(t.Life, t.MaxLife)/targetFadeShare)
}

// Pulse is the glow intensity in [0,1].
func (t *Target) Pulse() float64 {
	return 0.5 + 0.5*math.Sin(t.PulsePhase)
}

// Reset makes the target inert for the pool.
func (t *Target) Reset() {
	*t = Target{}
}

// Draw renders the bullseye with a pulsing glow ring.
func (t *Target) Draw(ctx DrawContext) {
	if !t.Active {
		return
	}
	alpha := t.Alpha()
	c := t.Color()
	p := ctx.point(t.X, t.Y)

	glow := t.Size + t.Pulse()*10
	ctx.Canvas.DrawCircle(p.X, p.Y, glow, t.Rotation, draw.Fade(c, 0.25*alpha), false)

	faded := draw.Fade(c, alpha)
	ctx.Canvas.DrawCircle(p.X, p.Y, t.Size, t.Rotation, faded, false)
	ctx.Canvas.DrawCircle(p.X, p.Y, t.Size*0.6, t.Rotation, faded, false)
	ctx.Canvas.DrawCircle(p.X, p.Y, t.Size*0.3, t.Rotation, faded, false)
	ctx.Canvas.DrawCircle(p.X, p.Y, t.Size*0.1, 0, faded, true)

	if t.Points() > 10 {
		ctx.text(t.X, t.Y+t.Size*1.5, draw.Foreground(faded), strconv.Itoa(t.Points()))
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
