package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileMissingIsZero(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "scores.yaml"))
	n, err := f.Load()
	if err != nil || n != 0 {
		t.Errorf("Load() = %d, %v; want 0, nil", n, err)
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.yaml")
	f := NewFile(path)
	if err := f.Save(1234); err != nil {
		t.Fatalf("Save: %v", err)
	}
	n, err := NewFile(path).Load()
	if err != nil || n != 1234 {
		t.Fatalf("Load() = %d, %v; want 1234, nil", n, err)
	}
	raw, _ := os.ReadFile(path)
	if !strings.Contains(string(raw), Key+": 1234") {
		t.Errorf("file content %q does not hold the key", raw)
	}
}

func TestFileKeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	if err := os.WriteFile(path, []byte("volume: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := NewFile(path).Save(7); err != nil {
		t.Fatal(err)
	}
	raw, _ := os.ReadFile(path)
	if !strings.Contains(string(raw), "volume: 3") {
		t.Errorf("other key lost: %q", raw)
	}
}

func TestFileBadContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	os.WriteFile(path, []byte(Key+": lots\n"), 0o644)
	if _, err := NewFile(path).Load(); err == nil {
		t.Error("expected an error for a non-integer score")
	}
}

func TestMemory(t *testing.T) {
	var m Memory
	m.Save(42)
	if n, _ := m.Load(); n != 42 {
		t.Errorf("Load() = %d, want 42", n)
	}
}

func TestMaxNeverLowers(t *testing.T) {
	m := NewMax(&Memory{})
	m.Save(600)
	m.Save(550)
	if n, _ := m.Load(); n != 600 {
		t.Errorf("Load() = %d, want 600", n)
	}
	m.Save(700)
	if n, _ := m.Load(); n != 700 {
		t.Errorf("Load() = %d, want 700", n)
	}
}
