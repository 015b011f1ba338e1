package input

import (
	"testing"
	"time"
)

func TestTriggerDebounce(t *testing.T) {
	tr := NewTrigger()
	t0 := time.Unix(1000, 0)

	if !tr.Press(t0, 1, 1, false) {
		t.Fatal("first press should fire")
	}
	tr.Release()
	if tr.Press(t0.Add(30*time.Millisecond), 1, 1, false) {
		t.Error("press 30ms later should be debounced")
	}
	tr.Release()
	if !tr.Press(t0.Add(60*time.Millisecond), 1, 1, false) {
		t.Error("press 60ms later should fire")
	}
}

func TestTriggerNoRepeatWithoutRapidFire(t *testing.T) {
	tr := NewTrigger()
	t0 := time.Unix(1000, 0)
	tr.Press(t0, 5, 5, false)
	for ms := 0; ms <= 1000; ms += 16 {
		if _, _, fire := tr.Poll(t0.Add(time.Duration(ms)*time.Millisecond), false); fire {
			t.Fatalf("held pointer fired at %dms without rapid fire", ms)
		}
	}
}

func TestTriggerRapidFireCadence(t *testing.T) {
	tr := NewTrigger()
	t0 := time.Unix(1000, 0)
	if !tr.Press(t0, 5, 5, true) {
		t.Fatal("press should fire")
	}
	shots := 0
	for ms := 1; ms <= 1000; ms++ {
		now := t0.Add(time.Duration(ms) * time.Millisecond)
		if ms == 500 {
			tr.Move(9, 9)
		}
		if x, y, fire := tr.Poll(now, true); fire {
			shots++
			if ms != shots*100 {
				t.Errorf("shot %d at %dms, want %dms", shots, ms, shots*100)
			}
			if ms > 500 && (x != 9 || y != 9) {
				t.Errorf("repeat aimed at (%v, %v), want the moved pointer", x, y)
			}
		}
	}
	if shots != 10 {
		t.Errorf("auto repeat fired %d times in 1s, want 10", shots)
	}
}

func TestTriggerRapidFireIgnoresDebounce(t *testing.T) {
	tr := NewTrigger()
	t0 := time.Unix(1000, 0)
	tr.Press(t0, 0, 0, true)
	tr.Release()
	if !tr.Press(t0.Add(10*time.Millisecond), 0, 0, true) {
		t.Error("rapid fire press inside the debounce window should fire")
	}
}

func TestTriggerStopsOnRelease(t *testing.T) {
	tr := NewTrigger()
	t0 := time.Unix(1000, 0)
	tr.Press(t0, 0, 0, true)
	tr.Release()
	if _, _, fire := tr.Poll(t0.Add(200*time.Millisecond), true); fire {
		t.Error("released pointer kept firing")
	}
}

func TestTriggerStopsWhenRapidFireEnds(t *testing.T) {
	tr := NewTrigger()
	t0 := time.Unix(1000, 0)
	tr.Press(t0, 0, 0, true)
	if _, _, fire := tr.Poll(t0.Add(150*time.Millisecond), false); fire {
		t.Error("repeat fired after rapid fire expired")
	}
	if _, _, fire := tr.Poll(t0.Add(300*time.Millisecond), true); fire {
		t.Error("regained rapid fire fired without waiting a full repeat")
	}
}

func TestTriggerRapidFireGainedWhileHeld(t *testing.T) {
	tr := NewTrigger()
	t0 := time.Unix(1000, 0)
	if !tr.Press(t0, 3, 4, false) {
		t.Fatal("press should fire")
	}
	var fired []int
	for ms := 1; ms <= 400; ms++ {
		rapid := ms >= 20
		if x, y, fire := tr.Poll(t0.Add(time.Duration(ms)*time.Millisecond), rapid); fire {
			if x != 3 || y != 4 {
				t.Errorf("repeat aimed at (%v, %v), want (3, 4)", x, y)
			}
			fired = append(fired, ms)
		}
	}
	want := []int{120, 220, 320}
	if len(fired) != len(want) {
		t.Fatalf("repeat fired at %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("shot %d at %dms, want %dms", i, fired[i], want[i])
		}
	}
}
