package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dermaplan/engine/internal/domain"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemory()
	store.Put(domain.ProfileClassification{
		UserID: "u-1", SkinType: domain.SkinOily, Sensitivity: domain.SensitivityLow,
	})

	p, err := store.GetNormalizedProfile(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", p.UserID)

	// The store hands out copies, not shared state.
	p.SkinType = domain.SkinDry
	again, err := store.GetNormalizedProfile(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, domain.SkinOily, again.SkinType)
}

func TestMemoryStore_NotFound(t *testing.T) {
	store := NewMemory()
	_, err := store.GetNormalizedProfile(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
