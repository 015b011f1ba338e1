package object

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/target-blaster/internal/draw"
)

const (
	ProjectileSpeed  = 800.0
	ProjectileLife   = 2000 * time.Millisecond
	projectileSize   = 2.0
	projectileTrail  = 8
	projectileMargin = 10.0
	// SpreadAngle separates the projectiles of a multi-shot.
	SpreadAngle = 0.2
)

var projectileColor = mustHex("#00ffff")

// Projectile is a purely visual tracer fired with every shot.
type Projectile struct {
	X, Y   float64
	VX, VY float64
	Life   time.Duration
	Size   float64
	Color  colorful.Color
	Trail  Trail
	Active bool
}

// Init launches the projectile from (x, y) with velocity (vx, vy).
func (p *Projectile) Init(x, y, vx, vy float64) {
	*p = Projectile{
		X: x, Y: y,
		VX: vx, VY: vy,
		Life:   ProjectileLife,
		Size:   projectileSize,
		Color:  projectileColor,
		Active: true,
	}
	p.Trail.SetLimit(projectileTrail)
}

// SpreadVelocity returns the velocity of projectile i out of n fired together.
func SpreadVelocity(i, n int) (vx, vy float64) {
	angle := (float64(i) - float64(n-1)/2) * SpreadAngle
	return math.Cos(angle) * ProjectileSpeed, math.Sin(angle) * ProjectileSpeed
}

// Update moves the projectile in a straight line.
func (p *Projectile) Update(dt time.Duration) {
	if !p.Active {
		return
	}
	p.Trail.Push(draw.Point{X: p.X, Y: p.Y})
	sec := dt.Seconds()
	p.X += p.VX * sec
	p.Y += p.VY * sec

	p.Life -= dt
	if p.Life <= 0 {
		p.Active = false
	}
}

// ShouldRemove reports whether the projectile is spent or has left the
// w×h canvas by more than the margin.
func (p *Projectile) ShouldRemove(w, h float64) bool {
	if !p.Active {
		return true
	}
	return p.X < -projectileMargin || p.X > w+projectileMargin ||
		p.Y < -projectileMargin || p.Y > h+projectileMargin
}

// Reset makes the projectile inert for the pool.
func (p *Projectile) Reset() {
	*p = Projectile{}
}

func (p *Projectile) Draw(ctx DrawContext) {
	if !p.Active {
		return
	}
	p.Trail.stroke(ctx, draw.Point{X: p.X, Y: p.Y}, p.Color, 0.5)
	at := ctx.point(p.X, p.Y)
	ctx.Canvas.DrawCircle(at.X, at.Y, p.Size*3, 0, draw.Fade(p.Color, 0.3), false)
	ctx.Canvas.DrawCircle(at.X, at.Y, p.Size, 0, p.Color, true)
}
