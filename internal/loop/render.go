package loop

import "github.com/tomz197/target-blaster/internal/object"

// Draw renders every live entity, shaken by the current screen-shake offset.
// It only reads state.
func (g *Game) Draw(ctx object.DrawContext) {
	ctx.OffsetX += g.shakeX
	ctx.OffsetY += g.shakeY

	for _, t := range g.targets {
		t.Draw(ctx)
	}
	for _, it := range g.items {
		it.Draw(ctx)
	}
	for _, p := range g.projectiles {
		p.Draw(ctx)
	}
	for _, p := range g.particles {
		p.Draw(ctx)
	}
}
