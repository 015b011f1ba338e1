// Package server tracks the sessions of a multi-user host. Every session runs
// its own game; the hub only knows who is connected and tells them when the
// host goes down.
package server

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// EventType identifies a hub event.
type EventType int

const (
	EventShutdown EventType = iota
)

// Event is sent from the hub to a session.
type Event struct {
	Type EventType
}

// Handle is a session's registration.
type Handle struct {
	ID       uuid.UUID
	Username string
	Joined   time.Time
	Events   chan Event
}

// Hub is safe for concurrent use.
type Hub struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Handle
	logger   *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		sessions: make(map[uuid.UUID]*Handle),
		logger:   logger,
	}
}

// Register adds a session and returns its handle.
func (h *Hub) Register(username string) *Handle {
	handle := &Handle{
		ID:       uuid.New(),
		Username: username,
		Joined:   time.Now(),
		Events:   make(chan Event, 16),
	}
	h.mu.Lock()
	h.sessions[handle.ID] = handle
	n := len(h.sessions)
	h.mu.Unlock()

	h.logger.Info("session joined", "id", handle.ID, "user", username, "sessions", n)
	return handle
}

// Unregister removes a session and closes its event channel.
func (h *Hub) Unregister(id uuid.UUID) {
	h.mu.Lock()
	handle, ok := h.sessions[id]
	if ok {
		delete(h.sessions, id)
		close(handle.Events)
	}
	n := len(h.sessions)
	h.mu.Unlock()

	if ok {
		h.logger.Info("session left", "id", id, "user", handle.Username,
			"played", time.Since(handle.Joined).Round(time.Second), "sessions", n)
	}
}

// Sessions returns the number of connected sessions.
func (h *Hub) Sessions() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Broadcast sends ev to every session, dropping it for sessions whose queue is full.
func (h *Hub) Broadcast(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, handle := range h.sessions {
		select {
		case handle.Events <- ev:
		default:
		}
	}
}

// Shutdown notifies every session and waits until they have all left or
// the timeout passes.
func (h *Hub) Shutdown(timeout time.Duration) {
	h.Broadcast(Event{Type: EventShutdown})

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if h.Sessions() == 0 {
			return
		}
		select {
		case <-deadline:
			h.logger.Warn("sessions still connected at shutdown", "sessions", h.Sessions())
			return
		case <-ticker.C:
		}
	}
}
