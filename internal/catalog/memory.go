package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/dermaplan/engine/internal/domain"
	"github.com/dermaplan/engine/internal/steps"
)

// Memory is an in-memory catalog for tests and the dev harness. Products are
// classified once at load time and bucketed by base step family.
type Memory struct {
	mu         sync.RWMutex
	byID       map[string]domain.CatalogProduct
	byStepType map[domain.StepType][]domain.CatalogProduct
}

// NewMemory builds an in-memory catalog. Unpublished products and inactive
// brands are filtered here so the lookup paths match the SQL contract.
// Malformed products surface ErrMalformedProduct.
func NewMemory(products []domain.CatalogProduct) (*Memory, error) {
	m := &Memory{
		byID:       make(map[string]domain.CatalogProduct),
		byStepType: make(map[domain.StepType][]domain.CatalogProduct),
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedProduct, err)
		}
		if !p.Published || !p.BrandActive {
			continue
		}
		m.byID[p.ID] = p

		seen := make(map[domain.StepType]bool)
		for _, cat := range steps.Classify(p.RawStep, p.RawCategory, "") {
			st := domain.StepTypeOf(cat)
			if !seen[st] {
				seen[st] = true
				m.byStepType[st] = append(m.byStepType[st], p)
			}
		}
	}
	for st := range m.byStepType {
		SortProducts(m.byStepType[st])
	}
	return m, nil
}

// FindByStepType implements Query.
func (m *Memory) FindByStepType(_ context.Context, stepType domain.StepType, skinType domain.SkinType) ([]domain.CatalogProduct, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bucket := m.byStepType[stepType]
	out := make([]domain.CatalogProduct, 0, len(bucket))
	for _, p := range bucket {
		if skinType != "" && !p.SuitsSkinType(skinType) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// FindByIDs implements Query.
func (m *Memory) FindByIDs(_ context.Context, ids []string) ([]domain.CatalogProduct, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.CatalogProduct, 0, len(ids))
	for _, id := range ids {
		if p, ok := m.byID[id]; ok {
			out = append(out, p)
		}
	}
	SortProducts(out)
	return out, nil
}

// Size returns the number of loaded (published, active-brand) products.
func (m *Memory) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID)
}
