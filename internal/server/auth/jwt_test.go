package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_RoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("sess-1", secret, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sid, err := SessionIDFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", sid)
}

func TestToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("sess-1", []byte("right"), time.Minute)
	require.NoError(t, err)

	_, err = SessionIDFromToken(token, []byte("wrong"))
	assert.Error(t, err)
}

func TestToken_Expired(t *testing.T) {
	token, err := GenerateToken("sess-1", []byte("s"), -time.Minute)
	require.NoError(t, err)

	_, err = SessionIDFromToken(token, []byte("s"))
	assert.Error(t, err)
}

func TestToken_Garbage(t *testing.T) {
	_, err := SessionIDFromToken("not.a.token", []byte("s"))
	assert.Error(t, err)
}
