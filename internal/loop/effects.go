package loop

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/tomz197/target-blaster/internal/loop/config"
)

func (g *Game) startShake() {
	g.shakeLeft = config.ShakeDuration
}

// showPopup displays "+added" fading out over config.PopupDuration.
func (g *Game) showPopup(added int) {
	g.popup = added
	g.popupAlpha = 1
	g.popupTween = gween.New(1, 0, float32(config.PopupDuration.Seconds()), ease.OutQuad)
}

func (g *Game) updateEffects(dt time.Duration) {
	if g.shakeLeft > 0 {
		g.shakeLeft -= dt
		if g.shakeLeft <= 0 {
			g.shakeLeft = 0
			g.shakeX, g.shakeY = 0, 0
		} else {
			g.shakeX = (g.rng.Float64() - 0.5) * config.ShakeIntensity
			g.shakeY = (g.rng.Float64() - 0.5) * config.ShakeIntensity
		}
	}

	if g.popupTween != nil {
		a, done := g.popupTween.Update(float32(dt.Seconds()))
		g.popupAlpha = float64(a)
		if done {
			g.popupTween = nil
			g.popupAlpha = 0
		}
	}
}
