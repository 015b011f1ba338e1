package config

import (
	"testing"
	"time"
)

func TestProfiles(t *testing.T) {
	tests := []struct {
		d      Difficulty
		speed  float64
		spawn  time.Duration
		limit  time.Duration
		size   float64
		chance float64
	}{
		{Easy, 0.5, 2000 * time.Millisecond, 90 * time.Second, 40, 0.3},
		{Medium, 1.0, 1500 * time.Millisecond, 60 * time.Second, 35, 0.2},
		{Hard, 1.8, 1000 * time.Millisecond, 45 * time.Second, 25, 0.15},
	}
	for _, tt := range tests {
		p := tt.d.Profile()
		if p.TargetSpeed != tt.speed || p.SpawnRate != tt.spawn || p.TimeLimit != tt.limit ||
			p.TargetSize != tt.size || p.PowerupChance != tt.chance {
			t.Errorf("%s profile = %+v", tt.d, p)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	for in, want := range map[string]Difficulty{"easy": Easy, " Hard ": Hard, "MEDIUM": Medium} {
		got, err := ParseDifficulty(in)
		if err != nil || got != want {
			t.Errorf("ParseDifficulty(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestDifficultyFromKey(t *testing.T) {
	if d, ok := DifficultyFromKey(3); !ok || d != Hard {
		t.Errorf("key 3 = %v, %v", d, ok)
	}
	if _, ok := DifficultyFromKey(0); ok {
		t.Error("key 0 should not select a level")
	}
	if Difficulty(7).String() != "medium" {
		t.Error("invalid level should fall back to medium")
	}
}
