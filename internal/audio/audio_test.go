package audio

import (
	"math"
	"testing"
	"time"
)

func TestVoicesMatchCueTable(t *testing.T) {
	tests := []struct {
		cue  Cue
		name string
		freq float64
		dur  time.Duration
	}{
		{Shoot, "shoot", 800, 100 * time.Millisecond},
		{RapidFire, "rapidFire", 900, 80 * time.Millisecond},
		{Hit, "hit", 1200, 150 * time.Millisecond},
		{Powerup, "powerup", 1500, 300 * time.Millisecond},
		{GameOver, "gameOver", 300, 800 * time.Millisecond},
		{HighScore, "highScore", 2000, 500 * time.Millisecond},
		{Start, "start", 1000, 400 * time.Millisecond},
	}
	for _, tt := range tests {
		v := tt.cue.Voice()
		if tt.cue.String() != tt.name {
			t.Errorf("%d.String() = %q, want %q", tt.cue, tt.cue.String(), tt.name)
		}
		if v.Freq != tt.freq || v.Duration != tt.dur {
			t.Errorf("%s voice = %v Hz %v, want %v Hz %v", tt.name, v.Freq, v.Duration, tt.freq, tt.dur)
		}
	}
}

func TestVoiceSamplesInRange(t *testing.T) {
	for _, c := range Cues {
		v := c.Voice()
		for i := 0; i < 2000; i++ {
			s := v.Wave(v.Duration.Seconds() * float64(i) / 2000)
			if math.IsNaN(s) || s < -1 || s > 1 {
				t.Fatalf("%s sample %d = %f out of [-1, 1]", c, i, s)
			}
		}
	}
}

type recorder struct{ cues []Cue }

func (r *recorder) Play(c Cue) { r.cues = append(r.cues, c) }

func TestSwitchMutes(t *testing.T) {
	r := &recorder{}
	s := NewSwitch(r)
	s.Play(Shoot)
	if !s.Toggle() {
		t.Fatal("Toggle should report muted")
	}
	s.Play(Hit)
	s.SetMuted(false)
	s.Play(Start)
	if len(r.cues) != 2 || r.cues[0] != Shoot || r.cues[1] != Start {
		t.Errorf("played %v, want [shoot start]", r.cues)
	}
}

func TestUnknownCue(t *testing.T) {
	if Cue(42).String() != "unknown" || Cue(42).Voice().Wave != nil {
		t.Error("unknown cue should have no voice")
	}
}
