package services

import (
	"context"
	"strings"
	"testing"

	"github.com/jdjewellers/storefront-backend/repository"
	"github.com/stretchr/testify/assert"
)

func TestGetOrCreateMintsAndRecognizes(t *testing.T) {
	svc := NewSessionService(repository.NewMemorySessionStore())
	ctx := context.Background()

	first, err := svc.GetOrCreate(ctx, "")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(first, "session_"))

	// Presenting the issued id returns the same value.
	again, err := svc.GetOrCreate(ctx, first)
	assert.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestGetOrCreateReplacesUnknownID(t *testing.T) {
	svc := NewSessionService(repository.NewMemorySessionStore())
	ctx := context.Background()

	issued, err := svc.GetOrCreate(ctx, "session_123_forged")
	assert.NoError(t, err)
	assert.NotEqual(t, "session_123_forged", issued)
}

func TestIssuedIDsAreUnique(t *testing.T) {
	svc := NewSessionService(repository.NewMemorySessionStore())
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := svc.GetOrCreate(ctx, "")
		assert.NoError(t, err)
		assert.False(t, seen[id], "duplicate session id %s", id)
		seen[id] = true
	}
}
