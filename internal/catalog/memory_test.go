package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dermaplan/engine/internal/domain"
)

func memProduct(id, rawStep, rawCategory string) domain.CatalogProduct {
	return domain.CatalogProduct{
		ID: id, Name: id, RawStep: rawStep, RawCategory: rawCategory,
		Published: true, BrandActive: true,
		CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestMemory_FiltersUnpublished(t *testing.T) {
	hidden := memProduct("hidden", "serum", "niacinamide serum")
	hidden.Published = false
	inactive := memProduct("inactive", "serum", "niacinamide serum")
	inactive.BrandActive = false

	m, err := NewMemory([]domain.CatalogProduct{
		memProduct("visible", "serum", "niacinamide serum"),
		hidden, inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, m.Size())

	products, err := m.FindByStepType(context.Background(), domain.StepTypeSerum, "")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "visible", products[0].ID)
}

func TestMemory_MalformedProduct(t *testing.T) {
	_, err := NewMemory([]domain.CatalogProduct{{ID: "p1", Published: true, BrandActive: true}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedProduct)
}

func TestMemory_SkinTypeFilter(t *testing.T) {
	oily := memProduct("oily-gel", "moisturizer", "gel moisturizer")
	oily.SkinTypes = []domain.SkinType{domain.SkinOily}
	untagged := memProduct("any-cream", "moisturizer", "lightweight lotion")

	m, err := NewMemory([]domain.CatalogProduct{oily, untagged})
	require.NoError(t, err)

	dry, err := m.FindByStepType(context.Background(), domain.StepTypeMoisturizer, domain.SkinDry)
	require.NoError(t, err)
	require.Len(t, dry, 1)
	assert.Equal(t, "any-cream", dry[0].ID, "untagged products suit every skin type")

	all, err := m.FindByStepType(context.Background(), domain.StepTypeMoisturizer, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMemory_FindByIDs(t *testing.T) {
	m, err := NewMemory([]domain.CatalogProduct{
		memProduct("a", "serum", "hydrating serum"),
		memProduct("b", "toner", "hydrating toner"),
	})
	require.NoError(t, err)

	products, err := m.FindByIDs(context.Background(), []string{"b", "missing"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "b", products[0].ID)
}

func TestSortProducts(t *testing.T) {
	old := memProduct("old", "serum", "hydrating serum")
	old.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	hero := memProduct("hero", "serum", "hydrating serum")
	hero.Hero = true
	prio := memProduct("prio", "serum", "hydrating serum")
	prio.Priority = 10

	products := []domain.CatalogProduct{old, prio, hero}
	SortProducts(products)

	assert.Equal(t, "hero", products[0].ID, "hero products sort first")
	assert.Equal(t, "prio", products[1].ID, "then priority descending")
	assert.Equal(t, "old", products[2].ID)
}

func TestSortProducts_TieBreakByID(t *testing.T) {
	a := memProduct("a", "serum", "hydrating serum")
	b := memProduct("b", "serum", "hydrating serum")
	products := []domain.CatalogProduct{b, a}
	SortProducts(products)
	assert.Equal(t, "a", products[0].ID)
}
