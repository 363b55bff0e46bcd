// Package catalog defines the read-only product catalog boundary the engine
// depends on, plus the Postgres, Redis-cached, and in-memory implementations.
//
// Every implementation honors the same ordering contract: hero products
// first, then priority descending, then recency descending. Only published
// products from active brands are ever returned.
package catalog

import (
	"context"
	"errors"
	"sort"

	"github.com/dermaplan/engine/internal/domain"
)

// Sentinel errors for the catalog boundary.
var (
	// ErrMalformedProduct flags a catalog row that violates the input
	// contract (missing id or step metadata). This aborts generation,
	// unlike an empty result which the fallback hierarchy recovers.
	ErrMalformedProduct = errors.New("catalog returned malformed product")
)

// Query is the catalog lookup contract. Implementations must be safe for
// concurrent use and must only return published products from active brands.
type Query interface {
	// FindByStepType returns products whose raw step metadata classifies
	// under the given base family. skinType narrows by tag when non-empty;
	// pass "" to relax the filter.
	FindByStepType(ctx context.Context, stepType domain.StepType, skinType domain.SkinType) ([]domain.CatalogProduct, error)

	// FindByIDs returns the subset of ids that exist, same ordering contract.
	FindByIDs(ctx context.Context, ids []string) ([]domain.CatalogProduct, error)
}

// SortProducts applies the catalog ordering contract in place: hero desc,
// priority desc, recency desc, id asc as the final deterministic tiebreak.
func SortProducts(products []domain.CatalogProduct) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := &products[i], &products[j]
		if a.Hero != b.Hero {
			return a.Hero
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}
