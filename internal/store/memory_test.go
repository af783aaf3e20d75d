package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Roundtrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Ready(ctx))

	r, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, r)

	require.NoError(t, s.Save(ctx, testRecord("ada@x.io")))

	r, err = s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "ada@x.io", r.Email)

	// loaded records do not alias the stored one
	r.Email = "mutated@x.io"
	again, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ada@x.io", again.Email)

	require.NoError(t, s.Clear(ctx))
	r, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, s.Ready(ctx))
	_, err := s.Load(ctx)
	require.Error(t, err)
	require.Error(t, s.Save(ctx, testRecord("a@x.io")))
	require.Error(t, s.Clear(ctx))
}
