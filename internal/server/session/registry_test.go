package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CreateGetDrop(t *testing.T) {
	r := NewRegistry()

	s := r.Create()
	require.NotEmpty(t, s.ID())
	assert.Same(t, s, r.Get(s.ID()))
	assert.Equal(t, 1, r.Len())

	r.Drop(s.ID())
	assert.Nil(t, r.Get(s.ID()))
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("missing"))
}

func TestRegistry_IDsAreUnique(t *testing.T) {
	r := NewRegistry()
	a := r.Create()
	b := r.Create()
	assert.NotEqual(t, a.ID(), b.ID())
}
