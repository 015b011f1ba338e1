// Package store persists the single high-score value.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Key identifies the high score in every backend.
const Key = "targetBlasterHighScore"

// File keeps scores in a YAML mapping on disk. Other keys in the file are
// preserved.
type File struct {
	mu   sync.Mutex
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string { return f.path }

// Load returns the stored high score, or 0 when the file or key is missing.
func (f *File) Load() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.read()
	if err != nil {
		return 0, err
	}
	v, ok := data[Key]
	if !ok {
		return 0, nil
	}
	n, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("%s: %q is %T, not an integer", f.path, Key, v)
	}
	return n, nil
}

// Save writes score under Key.
func (f *File) Save(score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.read()
	if err != nil {
		return err
	}
	data[Key] = score

	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

func (f *File) read() (map[string]any, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	data := map[string]any{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.path, err)
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, nil
}

// Memory is an in-process store.
type Memory struct {
	mu    sync.Mutex
	score int
}

func (m *Memory) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

func (m *Memory) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	return nil
}

// Backend is any high-score store.
type Backend interface {
	Load() (int, error)
	Save(score int) error
}

// Max guards a Backend shared by several sessions: Save never lowers the
// stored score, even when the caller saw a stale value.
type Max struct {
	mu      sync.Mutex
	backend Backend
}

func NewMax(b Backend) *Max {
	return &Max{backend: b}
}

func (m *Max) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.backend.Load()
}

func (m *Max) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, err := m.backend.Load()
	if err != nil {
		return err
	}
	if score <= current {
		return nil
	}
	return m.backend.Save(score)
}
