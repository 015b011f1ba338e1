// Package ads provides advertisement collaborators for the game loop.
// No real ad network is wired; Simulated reproduces the pacing rules
// (interstitial cooldown, rewarded video length) so the flow can be played.
package ads

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// InterstitialCooldown is the minimum gap between two interstitials.
	InterstitialCooldown = 60 * time.Second
	// RewardedLength is how long a simulated rewarded video runs.
	RewardedLength = 30 * time.Second
	// SkippableAfter is when a rewarded video may be skipped.
	SkippableAfter = 5 * time.Second
)

// Nop shows nothing and grants rewards at once.
type Nop struct{}

func (Nop) ShowInterstitial() {}

func (Nop) ShowRewardedVideo(onReward func()) {
	if onReward != nil {
		onReward()
	}
}

func (Nop) SkipRewardedVideo() bool { return false }
func (Nop) CancelRewardedVideo()    {}

// Simulated rate-limits interstitials and completes rewarded videos after a
// delay on a timer goroutine.
type Simulated struct {
	mu               sync.Mutex
	logger           *log.Logger
	now              func() time.Time
	after            func(time.Duration, func()) *time.Timer
	rewardLength     time.Duration
	lastInterstitial time.Time
	shown            int

	playing  *time.Timer
	started  time.Time
	onReward func()
}

// Option customizes a Simulated.
type Option func(*Simulated)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Simulated) { s.now = now }
}

// WithRewardLength overrides RewardedLength.
func WithRewardLength(d time.Duration) Option {
	return func(s *Simulated) { s.rewardLength = d }
}

func NewSimulated(logger *log.Logger, opts ...Option) *Simulated {
	s := &Simulated{
		logger:       logger,
		now:          time.Now,
		after:        time.AfterFunc,
		rewardLength: RewardedLength,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ShowInterstitial "shows" an interstitial unless one was shown within the
// cooldown.
func (s *Simulated) ShowInterstitial() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if !s.lastInterstitial.IsZero() && now.Sub(s.lastInterstitial) < InterstitialCooldown {
		return
	}
	s.lastInterstitial = now
	s.shown++
	if s.logger != nil {
		s.logger.Debug("interstitial shown", "count", s.shown)
	}
}

// Interstitials reports how many interstitials were shown.
func (s *Simulated) Interstitials() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shown
}

// ShowRewardedVideo calls onReward once when the video completes. A request
// while a video is already running is ignored.
func (s *Simulated) ShowRewardedVideo(onReward func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playing != nil {
		return
	}
	if s.logger != nil {
		s.logger.Debug("rewarded video started", "length", s.rewardLength)
	}
	var t *time.Timer
	t = s.after(s.rewardLength, func() {
		s.mu.Lock()
		if s.playing != t {
			s.mu.Unlock()
			return
		}
		reward := s.finish()
		s.mu.Unlock()
		if reward != nil {
			reward()
		}
	})
	s.playing = t
	s.started = s.now()
	s.onReward = onReward
}

// SkipRewardedVideo ends the running video early and grants its reward, once
// it has played for at least SkippableAfter. It reports whether it did.
func (s *Simulated) SkipRewardedVideo() bool {
	s.mu.Lock()
	if s.playing == nil || s.now().Sub(s.started) < SkippableAfter {
		s.mu.Unlock()
		return false
	}
	s.playing.Stop()
	reward := s.finish()
	s.mu.Unlock()
	if s.logger != nil {
		s.logger.Debug("rewarded video skipped")
	}
	if reward != nil {
		reward()
	}
	return true
}

// CancelRewardedVideo stops the running video without granting its reward.
func (s *Simulated) CancelRewardedVideo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playing == nil {
		return
	}
	s.playing.Stop()
	s.finish()
	if s.logger != nil {
		s.logger.Debug("rewarded video cancelled")
	}
}

// Close cancels a running rewarded video without granting the reward.
func (s *Simulated) Close() {
	s.CancelRewardedVideo()
}

// finish clears the running video and returns its callback. s.mu must be held.
func (s *Simulated) finish() func() {
	reward := s.onReward
	s.playing = nil
	s.started = time.Time{}
	s.onReward = nil
	return reward
}
