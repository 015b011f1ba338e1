package object

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween/ease"

	"github.com/tomz197/target-blaster/internal/draw"
	"github.com/tomz197/target-blaster/internal/physics"
)

// ParticleMode selects how a particle moves.
type ParticleMode int

const (
	// Explosion particles fly ballistically under gravity and drag.
	Explosion ParticleMode = iota
	// Score particles ease from their origin to the score display.
	Score
)

const (
	particleGravity = 300.0 // px/s²
	particleDrag    = 0.98  // per update
	explosionTrail  = 5
	scoreTrail      = 8

	// ScoreParticleSpeed is the nominal travel speed toward the score display.
	ScoreParticleSpeed = 800.0
	// ScoreParticleLife only drives the fade of score particles.
	ScoreParticleLife = 1500 * time.Millisecond
	scoreArc          = 30.0
)

// Particle is a pooled visual effect. Score particles also carry score to
// the display: reaching it pushes an Arrival.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Color   colorful.Color
	Life    time.Duration
	MaxLife time.Duration
	Size    float64
	Mode    ParticleMode
	Trail   Trail

	OriginX, OriginY float64
	TargetX, TargetY float64
	Progress         float64
	Speed            float64
	PulsePhase       float64

	Active bool
}

// InitExplosion prepares a ballistic particle.
func (p *Particle) InitExplosion(rng *rand.Rand, x, y, vx, vy float64, c colorful.Color, life time.Duration) {
	*p = Particle{
		X: x, Y: y,
		VX: vx, VY: vy,
		Color:   c,
		Life:    life,
		MaxLife: life,
		Size:    rng.Float64()*3 + 2,
		Mode:    Explosion,
		Active:  true,
	}
	p.Trail.SetLimit(explosionTrail)
}

// InitScore prepares a particle that flies from (x, y) to (tx, ty).
func (p *Particle) InitScore(rng *rand.Rand, x, y, tx, ty float64, c colorful.Color, life time.Duration) {
	*p = Particle{
		X: x, Y: y,
		Color:   c,
		Life:    life,
		MaxLife: life,
		Size:    rng.Float64()*2 + 3,
		Mode:    Score,
		OriginX: x, OriginY: y,
		TargetX: tx, TargetY: ty,
		Speed:      ScoreParticleSpeed,
		PulsePhase: rng.Float64() * 2 * math.Pi,
		Active:     true,
	}
	p.Trail.SetLimit(scoreTrail)
}

// Update advances the particle and reports whether it is finished. A score
// particle that reaches its target pushes exactly one Arrival onto arrivals.
func (p *Particle) Update(dt time.Duration, arrivals *ArrivalQueue) (remove bool) {
	if !p.Active {
		return true
	}
	p.Trail.Push(draw.Point{X: p.X, Y: p.Y})

	if p.Mode == Score {
		return p.updateScore(dt, arrivals)
	}

	sec := dt.Seconds()
	p.X += p.VX * sec
	p.Y += p.VY * sec
	p.VY += particleGravity * sec
	p.VX *= particleDrag
	p.VY *= particleDrag

	p.Life -= dt
	if p.Life <= 0 {
		p.Active = false
		return true
	}
	return false
}

func (p *Particle) updateScore(dt time.Duration, arrivals *ArrivalQueue) bool {
	dist := physics.Distance(p.OriginX, p.OriginY, p.TargetX, p.TargetY)
	if dist == 0 {
		p.Progress = 1
	} else {
		p.Progress = math.Min(1, p.Progress+p.Speed*dt.Seconds()/dist)
	}

	eased := float64(ease.InOutCubic(float32(p.Progress), 0, 1, 1))
	p.X = p.OriginX + (p.TargetX-p.OriginX)*eased
	p.Y = p.OriginY + (p.TargetY-p.OriginY)*eased - math.Sin(p.Progress*math.Pi)*scoreArc
	p.PulsePhase += millis(dt) * 0.01

	// Lifetime only fades a score particle; it never ends it early.
	p.Life = max(0, p.Life-dt)

	if p.Progress >= 1 {
		p.X, p.Y = p.TargetX, p.TargetY
		p.Active = false
		if arrivals != nil {
			arrivals.Push(Arrival{X: p.TargetX, Y: p.TargetY})
		}
		return true
	}
	return false
}

// Alpha is the remaining life share. Score particles stay brighter longer.
func (p *Particle) Alpha() float64 {
	a := lifeRatio(p.Life, p.MaxLife)
	if p.Mode == Score {
		return math.Min(1, a*1.5)
	}
	return a
}

// Reset makes the particle inert for the pool.
func (p *Particle) Reset() {
	*p = Particle{}
}

// Draw renders the trail and the particle body.
func (p *Particle) Draw(ctx DrawContext) {
	if !p.Active {
		return
	}
	alpha := p.Alpha()
	head := draw.Point{X: p.X, Y: p.Y}
	at := ctx.point(p.X, p.Y)

	if p.Mode == Score {
		p.Trail.stroke(ctx, head, p.Color, alpha*0.8)
		size := p.Size * (1 + 0.3*math.Sin(p.PulsePhase))
		ctx.Canvas.DrawRegular(at.X, at.Y, size, p.PulsePhase, 4, draw.Fade(p.Color, alpha), true)
		ctx.Canvas.Set(at.X, at.Y, draw.Fade(colorful.Color{R: 1, G: 1, B: 1}, alpha*0.9))
		return
	}

	p.Trail.stroke(ctx, head, p.Color, alpha*0.4)
	ctx.Canvas.DrawCircle(at.X, at.Y, p.Size*alpha, 0, draw.Fade(p.Color, alpha), true)
}
