// Package profile defines the normalized-profile boundary. Profiles arrive
// already normalized from the intake layer; the engine never re-derives
// canonical keys from raw survey answers.
package profile

import (
	"context"
	"errors"
	"sync"

	"github.com/dermaplan/engine/internal/domain"
)

// ErrNotFound is returned when no profile exists for a user.
var ErrNotFound = errors.New("profile not found")

// Store is the profile lookup contract.
type Store interface {
	// GetNormalizedProfile returns the canonical profile for a user.
	// Returns ErrNotFound if the user has no stored profile.
	GetNormalizedProfile(ctx context.Context, userID string) (*domain.ProfileClassification, error)
}

// Memory is an in-memory Store for tests and the dev harness.
type Memory struct {
	mu       sync.RWMutex
	profiles map[string]domain.ProfileClassification
}

// NewMemory creates an empty in-memory profile store.
func NewMemory() *Memory {
	return &Memory{profiles: make(map[string]domain.ProfileClassification)}
}

// Put stores a profile, keyed by its user id.
func (m *Memory) Put(p domain.ProfileClassification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.UserID] = p
}

// GetNormalizedProfile implements Store.
func (m *Memory) GetNormalizedProfile(_ context.Context, userID string) (*domain.ProfileClassification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := p
	return &cp, nil
}
