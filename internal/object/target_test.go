package object

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestPickTier(t *testing.T) {
	tests := []struct {
		r    float64
		want Tier
	}{
		{0, TierStandard},
		{0.5, TierStandard},
		{0.51, TierFast},
		{0.8, TierFast},
		{0.81, TierRare},
		{0.95, TierRare},
		{0.96, TierUltra},
		{0.999, TierUltra},
		{1, TierUltra},
	}
	for _, tt := range tests {
		if got := PickTier(tt.r); got != tt.want {
			t.Errorf("PickTier(%v) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestTierDistribution(t *testing.T) {
	rng := newRand()
	var counts [tierCount]int
	const n = 20000
	for range n {
		counts[PickTier(rng.Float64())]++
	}
	for tier, c := range counts {
		got := float64(c) / n
		want := tiers[tier].Probability
		if math.Abs(got-want) > 0.02 {
			t.Errorf("tier %d frequency = %.3f, want ~%.2f", tier, got, want)
		}
	}
}

func TestTargetInitScalesByTier(t *testing.T) {
	rng := newRand()
	seen := map[Tier]bool{}
	for range 500 {
		var tg Target
		tg.Init(rng, 10, 20, 35, 100, -50)
		seen[tg.Tier] = true

		scale := float64(tg.Points()) / 10
		size := 35.0
		if tg.Points() > 20 {
			scale *= 1.3
			size *= 0.8
		}
		if math.Abs(tg.VX-100*scale) > 1e-9 || math.Abs(tg.VY+50*scale) > 1e-9 {
			t.Fatalf("tier %d velocity = (%f, %f), want scale %f", tg.Tier, tg.VX, tg.VY, scale)
		}
		if math.Abs(tg.Size-size) > 1e-9 {
			t.Fatalf("tier %d size = %f, want %f", tg.Tier, tg.Size, size)
		}
		if tg.MaxLife < 3000*time.Millisecond || tg.MaxLife > 5000*time.Millisecond {
			t.Fatalf("max life = %v, want within [3s, 5s]", tg.MaxLife)
		}
		if !tg.Active || tg.Life != tg.MaxLife {
			t.Fatal("fresh target should be active with full life")
		}
	}
	if len(seen) != int(tierCount) {
		t.Errorf("saw %d tiers in 500 spawns, want %d", len(seen), tierCount)
	}
}

func TestTargetCheckHit(t *testing.T) {
	tg := Target{X: 100, Y: 100, Size: 20, Active: true}
	tests := []struct {
		x, y float64
		want bool
	}{
		{100, 100, true},
		{120, 100, true},
		{100, 79.9, false},
		{114, 114, true},
		{115, 115, false},
	}
	for _, tt := range tests {
		if got := tg.CheckHit(tt.x, tt.y); got != tt.want {
			t.Errorf("CheckHit(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	tg.Active = false
	if tg.CheckHit(100, 100) {
		t.Error("inactive target reported a hit")
	}
}

func TestTargetUpdateMovesAndExpires(t *testing.T) {
	tg := Target{X: 0, Y: 0, VX: 100, VY: 50, Size: 10, Life: time.Second, MaxLife: time.Second, Active: true}
	if tg.Update(500*time.Millisecond, false) {
		t.Fatal("target expired early")
	}
	if math.Abs(tg.X-50) > 1e-9 || math.Abs(tg.Y-25) > 1e-9 {
		t.Errorf("position = (%f, %f), want (50, 25)", tg.X, tg.Y)
	}
	if !tg.Update(500*time.Millisecond, false) {
		t.Error("target should expire when its life runs out")
	}
	if tg.Active {
		t.Error("expired target still active")
	}
}

func TestTargetFrozenHoldsPosition(t *testing.T) {
	tg := Target{X: 10, Y: 10, VX: 300, VY: 300, RotationSpeed: 0.01, Life: 4 * time.Second, MaxLife: 4 * time.Second, Active: true}
	tg.Update(time.Second, true)
	if tg.X != 10 || tg.Y != 10 {
		t.Errorf("frozen target moved to (%f, %f)", tg.X, tg.Y)
	}
	if tg.Life != 3*time.Second {
		t.Errorf("life = %v, want 3s: lifetime keeps running while frozen", tg.Life)
	}
	if math.Abs(tg.Rotation-10) > 1e-9 {
		t.Errorf("rotation = %f, want 10", tg.Rotation)
	}
	if math.Abs(tg.PulsePhase-5) > 1e-9 {
		t.Errorf("pulse phase = %f, want 5", tg.PulsePhase)
	}
}

func TestTargetAlpha(t *testing.T) {
	tg := Target{Life: 4 * time.Second, MaxLife: 4 * time.Second}
	if tg.Alpha() != 1 {
		t.Errorf("alpha at full life = %f, want 1", tg.Alpha())
	}
	tg.Life = 600 * time.Millisecond
	if math.Abs(tg.Alpha()-0.5) > 1e-9 {
		t.Errorf("alpha at 15%% life = %f, want 0.5", tg.Alpha())
	}
	tg.Life = 0
	if tg.Alpha() != 0 {
		t.Errorf("alpha at zero life = %f, want 0", tg.Alpha())
	}
}

func TestTargetPulseRange(t *testing.T) {
	var tg Target
	for phase := 0.0; phase < 10; phase += 0.1 {
		tg.PulsePhase = phase
		if p := tg.Pulse(); p < 0 || p > 1 {
			t.Fatalf("Pulse() = %f at phase %f", p, phase)
		}
	}
}

func TestTargetReset(t *testing.T) {
	var tg Target
	tg.Init(newRand(), 1, 2, 30, 4, 5)
	tg.Reset()
	if tg.Active || tg.Life != 0 || tg.CheckHit(1, 2) {
		t.Errorf("reset target not inert: %+v", tg)
	}
}
