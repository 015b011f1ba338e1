package loop

import (
	"slices"
	"time"

	"github.com/tomz197/target-blaster/internal/audio"
	"github.com/tomz197/target-blaster/internal/object"
	"github.com/tomz197/target-blaster/internal/powerup"
)

// resolveShots applies every shot queued since the last tick, in order.
func (g *Game) resolveShots() {
	for _, s := range g.shots {
		g.resolveShot(s.x, s.y)
	}
	g.shots = g.shots[:0]
}

// resolveShot fires tracers from (x, y) and hit-tests the newest target
// first, then the newest power-up. Only one thing is hit per shot.
func (g *Game) resolveShot(x, y float64) {
	g.board.RecordShot()

	n := 1
	if g.powerups.Active(powerup.MultiShot) {
		n = 3
	}
	for i := range n {
		p := g.projectilePool.Acquire()
		vx, vy := object.SpreadVelocity(i, n)
		p.Init(x, y, vx, vy)
		g.projectiles = append(g.projectiles, p)
	}

	if !g.hitTarget(x, y) && !g.hitItem(x, y) {
		object.MissBurst().Emit(g.rng, x, y, g.nextParticle)
		g.board.RecordMiss()
	}

	if g.RapidFire() {
		g.audio.Play(audio.RapidFire)
	} else {
		g.audio.Play(audio.Shoot)
	}
}

func (g *Game) hitTarget(x, y float64) bool {
	for i := len(g.targets) - 1; i >= 0; i-- {
		t := g.targets[i]
		if !t.CheckHit(x, y) {
			continue
		}
		points := g.board.RecordHit(t.Points())
		c := t.Color()
		object.HitBurst(c).Emit(g.rng, x, y, g.nextParticle)
		object.EmitScore(g.rng, x, y, g.anchorX, g.anchorY, c, points, g.nextParticle)

		g.targets = slices.Delete(g.targets, i, i+1)
		g.targetPool.Release(t)
		g.audio.Play(audio.Hit)
		return true
	}
	return false
}

func (g *Game) hitItem(x, y float64) bool {
	for i := len(g.items) - 1; i >= 0; i-- {
		it := g.items[i]
		if !it.CheckHit(x, y) {
			continue
		}
		g.powerups.Activate(it.Kind)
		object.PickupBurst().Emit(g.rng, it.X, it.Y, g.nextParticle)
		g.items = slices.Delete(g.items, i, i+1)
		g.audio.Play(audio.Powerup)
		g.logger.Debug("powerup collected", "kind", it.Kind)
		return true
	}
	return false
}

// onArrival moves pending score into the score when a score particle lands.
func (g *Game) onArrival(a object.Arrival) {
	added, shake := g.board.ApplyArrival()
	if added == 0 {
		return
	}
	object.ArrivalBurst().Emit(g.rng, a.X, a.Y, g.nextParticle)
	g.showPopup(added)
	g.audio.Play(audio.Hit)
	if shake {
		g.startShake()
	}
}

// nextParticle hands out a pooled particle already owned by the collection.
func (g *Game) nextParticle() *object.Particle {
	p := g.particlePool.Acquire()
	g.particles = append(g.particles, p)
	return p
}

// Expired targets cost the streak and part of the multiplier.
func (g *Game) updateTargets(dt time.Duration) {
	frozen := g.powerups.Active(powerup.TimeFreeze)
	kept := g.targets[:0]
	for _, t := range g.targets {
		if t.Update(dt, frozen) {
			g.targetPool.Release(t)
			g.board.ExpirePenalty()
			continue
		}
		kept = append(kept, t)
	}
	clear(g.targets[len(kept):])
	g.targets = kept
}

func (g *Game) updateItems(dt time.Duration) {
	kept := g.items[:0]
	for _, it := range g.items {
		if !it.Update(dt) {
			kept = append(kept, it)
		}
	}
	clear(g.items[len(kept):])
	g.items = kept
}

func (g *Game) updateParticles(dt time.Duration) {
	kept := g.particles[:0]
	for _, p := range g.particles {
		if p.Update(dt, &g.arrivals) {
			g.particlePool.Release(p)
			continue
		}
		kept = append(kept, p)
	}
	clear(g.particles[len(kept):])
	g.particles = kept
}

func (g *Game) updateProjectiles(dt time.Duration) {
	kept := g.projectiles[:0]
	for _, p := range g.projectiles {
		p.Update(dt)
		if p.ShouldRemove(g.width, g.height) {
			g.projectilePool.Release(p)
			continue
		}
		kept = append(kept, p)
	}
	clear(g.projectiles[len(kept):])
	g.projectiles = kept
}
