package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/promptease/internal/server/models"
)

func TestSession_LoginLogout(t *testing.T) {
	s := New("s1")
	assert.False(t, s.Authenticated())

	s.Login("alice", "key-123")
	assert.True(t, s.Authenticated())
	assert.Equal(t, "alice", s.Username())
	assert.Equal(t, "key-123", s.APIKey())

	s.Logout()
	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Username())
	assert.Empty(t, s.APIKey())
}

// Authenticated must be true exactly when both identity fields are set.
func TestSession_AuthInvariant(t *testing.T) {
	s := New("s1")
	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Username())
	assert.Empty(t, s.APIKey())

	s.Login("alice", "key-123")
	assert.True(t, s.Authenticated())
	assert.NotEmpty(t, s.Username())
	assert.NotEmpty(t, s.APIKey())
}

func TestSession_LoginIdempotentOnMessages(t *testing.T) {
	s := New("s1")
	s.Append(models.Message{Role: models.RoleUser, Content: "hi"})
	s.Append(models.Message{Role: models.RoleAssistant, Content: "hello", Model: "ChatGPT"})

	before := s.Messages()

	s.Login("alice", "key-123")
	assert.Equal(t, before, s.Messages(), "login must not touch the transcript")

	s.Logout()
	s.Login("alice", "key-123")
	assert.Equal(t, before, s.Messages(), "re-login must keep the prior transcript")
}

func TestSession_LogoutThenLoginRestoresKey(t *testing.T) {
	s := New("s1")
	s.Login("alice", "key-123")
	s.Logout()
	s.Login("alice", "key-123")

	assert.True(t, s.Authenticated())
	assert.Equal(t, "key-123", s.APIKey())
}

// The transcript only grows; growth is unbounded and that is a documented
// limitation, not something this layer caps.
func TestSession_MessagesAppendOnly(t *testing.T) {
	s := New("s1")

	for i := 0; i < 100; i++ {
		n := len(s.Messages())
		s.Append(models.Message{Role: models.RoleUser, Content: "m"})
		require.Equal(t, n+1, len(s.Messages()))
	}
}

func TestSession_MessagesReturnsCopy(t *testing.T) {
	s := New("s1")
	s.Append(models.Message{Role: models.RoleUser, Content: "original"})

	got := s.Messages()
	got[0].Content = "mutated"

	assert.Equal(t, "original", s.Messages()[0].Content)
}
