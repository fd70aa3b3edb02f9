// Package session holds the per-interaction mutable state: the
// authentication flags and the chat transcript. One session exists per
// active browser interaction; nothing here is ever persisted.
package session

import (
	"sync"

	"github.com/mkravets/promptease/internal/server/models"
)

// Session is the mutable container for one user interaction.
//
// Invariant: Authenticated is true iff Username and APIKey are both set.
// Messages is append-only and unbounded; callers treat entries as immutable
// once appended.
type Session struct {
	mu sync.Mutex

	id            string
	authenticated bool
	username      string
	apiKey        string
	messages      []models.Message
}

func New(id string) *Session {
	return &Session{id: id}
}

func (s *Session) ID() string { return s.id }

// Login marks the session authenticated with the given identity. The
// transcript is left untouched, so re-login keeps the prior conversation.
func (s *Session) Login(username, apiKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = true
	s.username = username
	s.apiKey = apiKey
}

// Logout clears the identity and leaves the transcript untouched.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
	s.username = ""
	s.apiKey = ""
}

func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

func (s *Session) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username
}

func (s *Session) APIKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiKey
}

// Append pushes a message to the end of the transcript.
func (s *Session) Append(msg models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// Messages returns a copy of the transcript in append order.
func (s *Session) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}
