package object

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/target-blaster/internal/draw"
)

// MaxTrail is the longest trail any entity keeps.
const MaxTrail = 8

// Trail is a bounded sliding window of recent positions, oldest first.
type Trail struct {
	points [MaxTrail]draw.Point
	n      int
	limit  int
}

// SetLimit empties the trail and bounds it to n points (at most MaxTrail).
func (t *Trail) SetLimit(n int) {
	t.limit = max(0, min(n, MaxTrail))
	t.n = 0
}

// Push appends p, dropping the oldest point when full.
func (t *Trail) Push(p draw.Point) {
	if t.limit == 0 {
		return
	}
	if t.n == t.limit {
		copy(t.points[:t.n-1], t.points[1:t.n])
		t.n--
	}
	t.points[t.n] = p
	t.n++
}

// Len returns the number of stored points.
func (t *Trail) Len() int { return t.n }

// Limit returns the configured capacity.
func (t *Trail) Limit() int { return t.limit }

// Reset empties the trail and removes its limit.
func (t *Trail) Reset() {
	*t = Trail{}
}

// stroke draws the trail from oldest to newest and on to head. Older
// segments fade out.
func (t *Trail) stroke(ctx DrawContext, head draw.Point, c colorful.Color, alpha float64) {
	if t.n == 0 {
		return
	}
	for i := 0; i < t.n; i++ {
		next := head
		if i+1 < t.n {
			next = t.points[i+1]
		}
		f := float64(i+1) / float64(t.n+1) * alpha
		p := t.points[i]
		ctx.Canvas.DrawLine(ctx.point(p.X, p.Y), ctx.point(next.X, next.Y), draw.Fade(c, f))
	}
}
