// Package object holds the game entities: targets, power-ups, particles and
// projectiles. Entities are plain structs owned by the game loop; pooled ones
// are reinitialised in place with Init and cleared with Reset.
package object

import (
	"time"

	"github.com/tomz197/target-blaster/internal/draw"
)

// DrawContext provides drawing resources for entities.
type DrawContext struct {
	Canvas *draw.Canvas      // Colored half-block canvas in logical coordinates
	Text   *draw.ChunkWriter // Text overlay, may be nil
	// Screen shake offset in logical pixels, added to every position.
	OffsetX, OffsetY float64
}

func (ctx DrawContext) point(x, y float64) draw.Point {
	return draw.Point{X: x + ctx.OffsetX, Y: y + ctx.OffsetY}
}

// text writes s centred on the logical point (x, y) when a text overlay is present.
func (ctx DrawContext) text(x, y float64, sgr, s string) {
	if ctx.Text == nil || s == "" {
		return
	}
	col, row := ctx.Canvas.LogicalToTerminal(x+ctx.OffsetX, y+ctx.OffsetY)
	col -= len([]rune(s)) / 2
	if col < 1 || row < 1 || row > ctx.Canvas.TerminalHeight() {
		return
	}
	ctx.Text.WriteColorAt(col, row, sgr, s)
}

// Drawable is anything that renders itself onto a DrawContext.
type Drawable interface {
	Draw(ctx DrawContext)
}

func millis(dt time.Duration) float64 {
	return float64(dt) / float64(time.Millisecond)
}

func lifeRatio(life, max time.Duration) float64 {
	if max <= 0 {
		return 0
	}
	return float64(life) / float64(max)
}
