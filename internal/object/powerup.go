package object

import (
	"math"
	"time"

	"github.com/tomz197/target-blaster/internal/draw"
	"github.com/tomz197/target-blaster/internal/physics"
	"github.com/tomz197/target-blaster/internal/powerup"
)

const (
	PowerupSize     = 25.0
	PowerupLife     = 8000 * time.Millisecond
	powerupFadeTime = 2000 * time.Millisecond
	powerupLabel    = 3000 * time.Millisecond
	powerupBob      = 5.0
)

// Powerup is a collectible that activates a timed buff when shot.
type Powerup struct {
	X, Y  float64
	BaseY float64
	Size  float64
	Kind  powerup.Kind

	Life    time.Duration
	MaxLife time.Duration

	Rotation   float64
	PulsePhase float64
	BobPhase   float64

	Active bool
}

// NewPowerup creates an active power-up of the given kind at (x, y).
func NewPowerup(x, y float64, kind powerup.Kind) *Powerup {
	return &Powerup{
		X:       x,
		Y:       y,
		BaseY:   y,
		Size:    PowerupSize,
		Kind:    kind,
		Life:    PowerupLife,
		MaxLife: PowerupLife,
		Active:  true,
	}
}

// Update spins, pulses and bobs the power-up and reports whether its
// collection window has closed.
func (p *Powerup) Update(dt time.Duration) (remove bool) {
	if !p.Active {
		return true
	}
	ms := millis(dt)
	p.Rotation += 0.005 * ms
	p.PulsePhase += 0.008 * ms
	p.BobPhase += 0.003 * ms
	p.Y = p.BaseY + math.Sin(p.BobPhase)*powerupBob

	p.Life -= dt
	if p.Life <= 0 {
		p.Active = false
		return true
	}
	return false
}

// CheckHit reports whether (px, py) lies within the power-up radius.
func (p *Powerup) CheckHit(px, py float64) bool {
	return p.Active && physics.PointInCircle(px, py, p.X, p.Y, p.Size)
}

// Alpha fades out over the last two seconds.
func (p *Powerup) Alpha() float64 {
	if p.Life >= powerupFadeTime {
		return 1
	}
	return math.Max(0, float64(p.Life)/float64(powerupFadeTime))
}

// Draw renders a rotating double hexagon with the kind's symbol.
func (p *Powerup) Draw(ctx DrawContext) {
	if !p.Active {
		return
	}
	props := p.Kind.Props()
	alpha := p.Alpha()
	c := draw.Fade(props.Color, alpha)
	at := ctx.point(p.X, p.Y)

	pulse := 0.5 + 0.5*math.Sin(p.PulsePhase)
	ctx.Canvas.DrawCircle(at.X, at.Y, p.Size+pulse*15, 0, draw.Fade(props.Color, 0.3*alpha), false)
	ctx.Canvas.DrawRegular(at.X, at.Y, p.Size, p.Rotation, 6, c, false)
	ctx.Canvas.DrawRegular(at.X, at.Y, p.Size*0.6, p.Rotation, 6, c, false)

	sgr := draw.Foreground(c)
	ctx.text(p.X, p.Y, sgr, string(props.Symbol))
	if p.Life < powerupLabel {
		ctx.text(p.X, p.Y-p.Size*1.8, sgr, props.Name)
	}
}
