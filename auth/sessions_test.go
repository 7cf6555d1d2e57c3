package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	sessions := InMemorySessionStore(time.Minute)

	token, err := sessions.Create(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uid, active, err := sessions.Resolve(ctx, token)
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, int64(42), uid)

	require.NoError(t, sessions.Destroy(ctx, token))
	_, active, err = sessions.Resolve(ctx, token)
	require.NoError(t, err)
	assert.False(t, active, "destroyed sessions must not resolve")

	// destroy is idempotent, unknown and already-destroyed tokens included
	assert.NoError(t, sessions.Destroy(ctx, token))
	assert.NoError(t, sessions.Destroy(ctx, "never-issued"))
}

func TestSessionTokensAreUnique(t *testing.T) {
	ctx := context.Background()
	sessions := InMemorySessionStore(time.Minute)

	first, err := sessions.Create(ctx, 1)
	require.NoError(t, err)
	second, err := sessions.Create(ctx, 1)
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "each login must mint a fresh token")

	// destroying one session must not touch the other
	require.NoError(t, sessions.Destroy(ctx, first))
	uid, active, err := sessions.Resolve(ctx, second)
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, int64(1), uid)
}

func TestResolveUnknownToken(t *testing.T) {
	ctx := context.Background()
	sessions := InMemorySessionStore(time.Minute)

	_, active, err := sessions.Resolve(ctx, "never-issued")
	require.NoError(t, err)
	assert.False(t, active)
}
