package object

import (
	"bytes"
	"testing"
	"time"

	"github.com/tomz197/target-blaster/internal/draw"
	"github.com/tomz197/target-blaster/internal/powerup"
)

func TestTrailSlidingWindow(t *testing.T) {
	var tr Trail
	tr.SetLimit(3)
	for i := range 5 {
		tr.Push(draw.Point{X: float64(i)})
	}
	if tr.Len() != 3 {
		t.Fatalf("len = %d, want 3", tr.Len())
	}
	for i := range 3 {
		if got := tr.points[i].X; got != float64(i+2) {
			t.Errorf("point %d X = %v, want %v", i, got, i+2)
		}
	}
}

func TestTrailLimitCapped(t *testing.T) {
	var tr Trail
	tr.SetLimit(100)
	if tr.Limit() != MaxTrail {
		t.Errorf("limit = %d, want %d", tr.Limit(), MaxTrail)
	}
	var zero Trail
	zero.Push(draw.Point{})
	if zero.Len() != 0 {
		t.Error("unlimited zero trail stored a point")
	}
}

func TestArrivalQueueFIFO(t *testing.T) {
	var q ArrivalQueue
	for i := range 4 {
		q.Push(Arrival{X: float64(i)})
	}
	var got []float64
	q.Drain(func(a Arrival) { got = append(got, a.X) })
	for i, x := range got {
		if x != float64(i) {
			t.Errorf("drain order %v, want ascending", got)
			break
		}
	}
	if len(got) != 4 || q.Len() != 0 {
		t.Errorf("drained %d, %d left", len(got), q.Len())
	}
}

func TestDrawEntities(t *testing.T) {
	c := draw.NewScaledCanvas(80, 24, 800, 600)
	var out bytes.Buffer
	text := draw.NewChunkWriter(&out, 0, 0)
	ctx := DrawContext{Canvas: c, Text: text, OffsetX: 1.5, OffsetY: -1}

	var tg Target
	tg.Init(newRand(), 400, 300, 35, 0, 0)
	tg.Tier = TierUltra
	var pr Projectile
	pr.Init(100, 100, 800, 0)
	pr.Update(10 * time.Millisecond)
	var ex, sc Particle
	ex.InitExplosion(newRand(), 200, 200, 10, 10, white, time.Second)
	sc.InitScore(newRand(), 300, 300, 0, 0, white, time.Second)
	sc.Update(10*time.Millisecond, nil)

	for _, d := range []Drawable{&tg, NewPowerup(600, 400, powerup.TimeFreeze), &pr, &ex, &sc} {
		d.Draw(ctx)
	}
	var frame bytes.Buffer
	c.Render(&frame)
	if frame.Len() == 0 {
		t.Error("drawing entities left the canvas empty")
	}
	if err := text.Flush(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(out.Bytes(), []byte("50")) {
		t.Error("ultra target label missing from text overlay")
	}
}
