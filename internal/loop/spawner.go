package loop

import (
	"time"

	"github.com/tomz197/target-blaster/internal/loop/config"
	"github.com/tomz197/target-blaster/internal/object"
	"github.com/tomz197/target-blaster/internal/powerup"
)

// Edge is a canvas side a target enters from.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// SpawnInterval is the gap between target spawns after elapsed play time.
// It shrinks by config.SpawnAcceleration per millisecond down to the floor.
func SpawnInterval(rate, elapsed time.Duration) time.Duration {
	ms := float64(rate)/float64(time.Millisecond) - config.SpawnAcceleration*float64(elapsed)/float64(time.Millisecond)
	return max(config.MinSpawnInterval, time.Duration(ms*float64(time.Millisecond)))
}

func (g *Game) spawnTargets(dt time.Duration) {
	g.spawnTimer += dt
	if g.spawnTimer <= SpawnInterval(g.difficulty.Profile().SpawnRate, g.elapsed) {
		return
	}
	g.spawnTarget(Edge(g.rng.IntN(4)))
	g.spawnTimer = 0
}

// spawnTarget places a target one size outside edge, heading inward.
func (g *Game) spawnTarget(edge Edge) *object.Target {
	p := g.difficulty.Profile()
	speed := p.TargetSpeed * config.TargetSpeedScale
	drift := (g.rng.Float64() - 0.5) * speed

	var x, y, vx, vy float64
	switch edge {
	case EdgeTop:
		x, y = g.rng.Float64()*g.width, -p.TargetSize
		vx, vy = drift, speed
	case EdgeRight:
		x, y = g.width+p.TargetSize, g.rng.Float64()*g.height
		vx, vy = -speed, drift
	case EdgeBottom:
		x, y = g.rng.Float64()*g.width, g.height+p.TargetSize
		vx, vy = drift, -speed
	default:
		x, y = -p.TargetSize, g.rng.Float64()*g.height
		vx, vy = speed, drift
	}

	t := g.targetPool.Acquire()
	t.Init(g.rng, x, y, p.TargetSize, vx, vy)
	g.targets = append(g.targets, t)
	return t
}

func (g *Game) spawnPowerups(dt time.Duration) {
	g.powerupTimer += dt
	if g.powerupTimer <= config.PowerupSpawnDelay {
		return
	}
	if g.rng.Float64() >= g.difficulty.Profile().PowerupChance {
		return
	}
	kind := powerup.Kinds[g.rng.IntN(len(powerup.Kinds))]
	g.spawnPowerup(kind)
	g.powerupTimer = 0
}

func (g *Game) spawnPowerup(kind powerup.Kind) *object.Powerup {
	inset := float64(config.PowerupInset)
	x := g.rng.Float64()*(g.width-2*inset) + inset
	y := g.rng.Float64()*(g.height-2*inset) + inset
	it := object.NewPowerup(x, y, kind)
	g.items = append(g.items, it)
	g.logger.Debug("powerup spawned", "kind", kind)
	return it
}
