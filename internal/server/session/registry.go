package session

import (
	"sync"

	"github.com/google/uuid"
)

// Registry maps session IDs to live sessions. Each interaction is itself a
// single blocking sequence, but the HTTP layer dispatches interactions
// concurrently, so the map is guarded.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Create registers a new empty session and returns it.
func (r *Registry) Create() *Session {
	s := New(uuid.NewString())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.id] = s
	return s
}

// Get returns the session for the given ID, or nil.
func (r *Registry) Get(id string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id]
}

// Drop destroys a session at interaction end.
func (r *Registry) Drop(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
