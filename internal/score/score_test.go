package score

import (
	"testing"
	"time"
)

func TestRecordHitAppliesMultiplier(t *testing.T) {
	b := NewBoard()
	tests := []struct {
		base int
		want int
	}{
		{10, 10}, // x1.0
		{10, 11}, // x1.1
		{10, 12}, // x1.2
		{50, 65}, // x1.3
		{20, 28}, // x1.4
	}
	for i, tt := range tests {
		if got := b.RecordHit(tt.base); got != tt.want {
			t.Errorf("hit %d: points = %d, want %d", i, got, tt.want)
		}
	}
	if b.Pending != 10+11+12+65+28 {
		t.Errorf("pending = %d, want %d", b.Pending, 10+11+12+65+28)
	}
	if b.Score != 0 {
		t.Errorf("score = %d before any arrival, want 0", b.Score)
	}
	if b.Streak != 5 || b.Hits != 5 {
		t.Errorf("streak = %d hits = %d, want 5 and 5", b.Streak, b.Hits)
	}
}

func TestRecordHitFloorsExactProduct(t *testing.T) {
	b := NewBoard()
	// 1.3 reached through float steps lands just below 1.3.
	b.Multiplier = 1.2999999999999998
	if got := b.RecordHit(10); got != 12 {
		t.Errorf("points = %d, want 12", got)
	}
}

func TestMultiplierStaysInRange(t *testing.T) {
	b := NewBoard()
	for range 200 {
		b.RecordHit(10)
		if b.Multiplier < MinMultiplier || b.Multiplier > MaxMultiplier {
			t.Fatalf("multiplier = %f out of range", b.Multiplier)
		}
	}
	if b.Multiplier != MaxMultiplier {
		t.Errorf("multiplier = %f after 200 hits, want %f", b.Multiplier, MaxMultiplier)
	}
	for range 200 {
		b.RecordMiss()
		if b.Multiplier < MinMultiplier {
			t.Fatalf("multiplier = %f below floor", b.Multiplier)
		}
	}
	if b.Multiplier != MinMultiplier {
		t.Errorf("multiplier = %f after 200 misses, want %f", b.Multiplier, MinMultiplier)
	}
}

func TestMissResetsStreak(t *testing.T) {
	b := NewBoard()
	b.RecordHit(10)
	b.RecordHit(10)
	b.RecordMiss()
	if b.Streak != 0 {
		t.Errorf("streak = %d after miss, want 0", b.Streak)
	}
	want := 1.2 * 0.9
	if diff := b.Multiplier - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("multiplier = %f, want %f", b.Multiplier, want)
	}
}

func TestExpirePenalty(t *testing.T) {
	b := NewBoard()
	for range 10 {
		b.RecordHit(10)
	}
	b.ExpirePenalty()
	if b.Streak != 0 {
		t.Errorf("streak = %d, want 0", b.Streak)
	}
	if diff := b.Multiplier - 2.0*0.8; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("multiplier = %f, want 1.6", b.Multiplier)
	}
}

func TestAccuracy(t *testing.T) {
	b := NewBoard()
	if b.Accuracy() != 0 {
		t.Errorf("accuracy with no shots = %d, want 0", b.Accuracy())
	}
	for i := range 3 {
		b.RecordShot()
		if i < 2 {
			b.RecordHit(10)
		} else {
			b.RecordMiss()
		}
	}
	if got := b.Accuracy(); got != 66 {
		t.Errorf("accuracy = %d, want 66", got)
	}
}

func TestAccuracyBounds(t *testing.T) {
	b := NewBoard()
	for i := range 50 {
		b.RecordShot()
		if i%3 == 0 {
			b.RecordHit(10)
		}
		a := b.Accuracy()
		if a < 0 || a > 100 {
			t.Fatalf("accuracy = %d out of [0,100]", a)
		}
		if b.Hits > b.Shots {
			t.Fatalf("hits %d > shots %d", b.Hits, b.Shots)
		}
	}
}

func TestDecay(t *testing.T) {
	b := NewBoard()
	b.RecordHit(10)
	b.RecordHit(10)
	before := b.Multiplier
	b.Decay(time.Second)
	if b.Multiplier != before {
		t.Errorf("multiplier decayed during a streak: %f -> %f", before, b.Multiplier)
	}

	b.RecordMiss() // 1.2 * 0.9 = 1.08
	b.Decay(50 * time.Millisecond)
	if diff := b.Multiplier - 1.03; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("multiplier = %f after 50ms decay, want 1.03", b.Multiplier)
	}
	b.Decay(time.Second)
	if b.Multiplier != MinMultiplier {
		t.Errorf("multiplier = %f, want floor %f", b.Multiplier, MinMultiplier)
	}
}

func TestApplyArrival(t *testing.T) {
	b := NewBoard()
	b.Pending = 35

	added, shake := b.ApplyArrival()
	if added != 10 || !shake {
		t.Errorf("first arrival = (%d, %v), want (10, true)", added, shake)
	}
	added, shake = b.ApplyArrival()
	if added != 10 || shake {
		t.Errorf("second arrival = (%d, %v), want (10, false)", added, shake)
	}
	b.ApplyArrival()
	added, _ = b.ApplyArrival()
	if added != 5 {
		t.Errorf("fourth arrival added %d, want 5", added)
	}
	added, shake = b.ApplyArrival()
	if added != 0 || shake {
		t.Errorf("arrival with nothing pending = (%d, %v), want (0, false)", added, shake)
	}
	if b.Score != 35 || b.Pending != 0 {
		t.Errorf("score = %d pending = %d, want 35 and 0", b.Score, b.Pending)
	}
}

func TestTotalConserved(t *testing.T) {
	b := NewBoard()
	credited := 0
	for i := range 40 {
		credited += b.RecordHit(10 + i%4*10)
		if i%2 == 0 {
			b.ApplyArrival()
		}
		if b.Total() != credited {
			t.Fatalf("total = %d, want %d", b.Total(), credited)
		}
	}
	for b.Pending > 0 {
		b.ApplyArrival()
	}
	if b.Score != credited {
		t.Errorf("score = %d after draining, want %d", b.Score, credited)
	}
}

func TestReset(t *testing.T) {
	b := NewBoard()
	b.RecordShot()
	b.RecordHit(50)
	b.ApplyArrival()
	b.Reset()
	if *b != (Board{Multiplier: MinMultiplier}) {
		t.Errorf("board after Reset = %+v", *b)
	}
}
