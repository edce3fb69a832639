package grpcctx

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dkurganov/microblog/internal/model"
)

func TestManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewManager()
	identity := model.Identity{ID: uuid.New(), Username: "alice01"}

	ctx := m.SetIdentityToContext(context.Background(), identity)

	got, ok := m.GetIdentityFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, identity, got)
}

func TestManager_MissingIdentity(t *testing.T) {
	t.Parallel()

	m := NewManager()

	_, ok := m.GetIdentityFromContext(context.Background())
	assert.False(t, ok)
}
