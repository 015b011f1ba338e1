// Package score holds the per-session scoring ledger: credited points,
// the pending pool waiting for score particles, accuracy and the combo
// multiplier.
package score

import (
	"math"
	"time"
)

const (
	MinMultiplier = 1.0
	MaxMultiplier = 10.0

	hitMultiplierStep = 0.1
	missMultiplier    = 0.9
	expiryMultiplier  = 0.8
	decayPerMs        = 0.001

	// MaxArrival caps how much pending score one arrival moves into the score.
	MaxArrival = 10
	// ShakeThreshold is the pending score above which an arrival shakes the screen.
	ShakeThreshold = 20
)

// Board is the scoring state of one session. The zero value is not ready; use NewBoard.
type Board struct {
	Score      int
	Pending    int
	Shots      int
	Hits       int
	Streak     int
	Multiplier float64
}

func NewBoard() *Board {
	return &Board{Multiplier: MinMultiplier}
}

// Reset clears the board for a new session.
func (b *Board) Reset() {
	*b = Board{Multiplier: MinMultiplier}
}

// RecordShot counts one fired shot.
func (b *Board) RecordShot() {
	b.Shots++
}

// RecordHit credits a target hit worth base points and returns the points
// added to the pending pool.
func (b *Board) RecordHit(base int) int {
	b.Hits++
	b.Streak++
	points := int(math.Floor(float64(base) * b.Multiplier))
	b.Multiplier = math.Min(MaxMultiplier, b.Multiplier+hitMultiplierStep)
	b.Pending += points
	return points
}

// RecordMiss breaks the streak and shrinks the multiplier.
func (b *Board) RecordMiss() {
	b.Streak = 0
	b.Multiplier = math.Max(MinMultiplier, b.Multiplier*missMultiplier)
}

// ExpirePenalty is applied when a target leaves play without being hit.
func (b *Board) ExpirePenalty() {
	b.Streak = 0
	b.Multiplier = math.Max(MinMultiplier, b.Multiplier*expiryMultiplier)
}

// Decay bleeds the multiplier toward 1 while no streak is running.
func (b *Board) Decay(dt time.Duration) {
	if b.Streak != 0 || b.Multiplier <= MinMultiplier {
		return
	}
	ms := float64(dt) / float64(time.Millisecond)
	b.Multiplier = math.Max(MinMultiplier, b.Multiplier-decayPerMs*ms)
}

// ApplyArrival moves up to MaxArrival points from pending into score.
// shake reports whether more than ShakeThreshold points are still pending
// afterwards. Both results are zero when nothing was pending.
func (b *Board) ApplyArrival() (added int, shake bool) {
	added = min(b.Pending, MaxArrival)
	if added <= 0 {
		return 0, false
	}
	b.Score += added
	b.Pending -= added
	return added, b.Pending > ShakeThreshold
}

// Accuracy returns floor(hits/shots*100), or 0 before the first shot.
func (b *Board) Accuracy() int {
	if b.Shots == 0 {
		return 0
	}
	return b.Hits * 100 / b.Shots
}

// Total is every point credited so far, delivered or not.
func (b *Board) Total() int {
	return b.Score + b.Pending
}
