package engine

import (
	"context"
	"log"

	"github.com/dermaplan/engine/internal/catalog"
	"github.com/dermaplan/engine/internal/domain"
	"github.com/dermaplan/engine/internal/steps"
)

// ClassifyFunc is the product step classifier the resolver depends on,
// injected so the resolver and assembler share one implementation.
type ClassifyFunc func(rawStep, rawCategory string, hint domain.SkinType) []domain.StepCategory

// Resolver guarantees that every structurally required step has candidate
// products, widening the search in a fixed hierarchy: exact category match,
// safe same-family substitute, batched catalog query per base family, and
// finally the same query with the skin-type filter relaxed.
type Resolver struct {
	catalog  catalog.Query
	classify ClassifyFunc
}

// NewResolver creates a fallback resolver over the given catalog.
func NewResolver(q catalog.Query, classify ClassifyFunc) *Resolver {
	if classify == nil {
		classify = steps.Classify
	}
	return &Resolver{catalog: q, classify: classify}
}

// EnsureCoverage returns candidate products for every required step. All
// catalog lookups for one resolution pass are issued as one batched query
// per distinct base family, never per individual step, so external I/O stays
// bounded no matter how many categories share a family. A step that remains
// empty after the full hierarchy maps to an empty slice, never a missing key.
//
// admissible filters every product before it enters the candidate index
// (nil admits everything). A rejected exact match therefore does not stop
// the hierarchy: the resolver keeps widening until it finds an admissible
// product or runs out of fallbacks.
func (r *Resolver) EnsureCoverage(ctx context.Context, required []domain.StepCategory, p *domain.ProfileClassification, candidates []domain.CatalogProduct, admissible func(domain.CatalogProduct) bool) (map[domain.StepCategory][]domain.CatalogProduct, error) {
	index := r.indexByCategory(candidates, p.SkinType, admissible)

	coverage := make(map[domain.StepCategory][]domain.CatalogProduct, len(required))
	for _, step := range required {
		coverage[step] = r.resolveLocal(step, index)
	}

	// Pass 3: one batched query per distinct base family still missing.
	missing := missingSteps(required, coverage)
	if len(missing) > 0 {
		if err := r.fetchFamilies(ctx, missing, p.SkinType, index, admissible); err != nil {
			return nil, err
		}
		for _, step := range missing {
			coverage[step] = r.resolveLocal(step, index)
		}
	}

	// Pass 4: relax the skin-type filter for whatever is left.
	missing = missingSteps(required, coverage)
	if len(missing) > 0 {
		if err := r.fetchFamilies(ctx, missing, "", index, admissible); err != nil {
			return nil, err
		}
		for _, step := range missing {
			coverage[step] = r.resolveLocal(step, index)
		}
	}

	for _, step := range missingSteps(required, coverage) {
		log.Printf("[Resolver] no product found for step %s after full fallback", step)
	}
	return coverage, nil
}

// resolveLocal tries the exact category, then the safe substitute list. The
// substitute table never crosses into a stronger active profile, so a
// hydrating serum request cannot silently become a vitamin-C serum.
func (r *Resolver) resolveLocal(step domain.StepCategory, index map[domain.StepCategory][]domain.CatalogProduct) []domain.CatalogProduct {
	if products := index[step]; len(products) > 0 {
		return products
	}
	for _, sub := range steps.SafeSubstitutes(step) {
		if products := index[sub]; len(products) > 0 {
			return products
		}
	}
	return nil
}

// fetchFamilies issues one catalog query per distinct base family of the
// given steps and merges the classified results into the index.
func (r *Resolver) fetchFamilies(ctx context.Context, missing []domain.StepCategory, skinType domain.SkinType, index map[domain.StepCategory][]domain.CatalogProduct, admissible func(domain.CatalogProduct) bool) error {
	families := make([]domain.StepType, 0, len(missing))
	seen := make(map[domain.StepType]bool)
	for _, step := range missing {
		st := domain.StepTypeOf(step)
		if !seen[st] {
			seen[st] = true
			families = append(families, st)
		}
	}

	for _, st := range families {
		products, err := r.catalog.FindByStepType(ctx, st, skinType)
		if err != nil {
			return err
		}
		r.mergeIndex(products, skinType, index, admissible)
	}
	return nil
}

func (r *Resolver) indexByCategory(products []domain.CatalogProduct, hint domain.SkinType, admissible func(domain.CatalogProduct) bool) map[domain.StepCategory][]domain.CatalogProduct {
	index := make(map[domain.StepCategory][]domain.CatalogProduct)
	r.mergeIndex(products, hint, index, admissible)
	return index
}

func (r *Resolver) mergeIndex(products []domain.CatalogProduct, hint domain.SkinType, index map[domain.StepCategory][]domain.CatalogProduct, admissible func(domain.CatalogProduct) bool) {
	for _, p := range products {
		if admissible != nil && !admissible(p) {
			continue
		}
		for _, cat := range r.classify(p.RawStep, p.RawCategory, hint) {
			if containsProduct(index[cat], p.ID) {
				continue
			}
			index[cat] = append(index[cat], p)
		}
	}
	for cat := range index {
		catalog.SortProducts(index[cat])
	}
}

func missingSteps(required []domain.StepCategory, coverage map[domain.StepCategory][]domain.CatalogProduct) []domain.StepCategory {
	var missing []domain.StepCategory
	for _, step := range required {
		if len(coverage[step]) == 0 {
			missing = append(missing, step)
		}
	}
	return missing
}

func containsProduct(products []domain.CatalogProduct, id string) bool {
	for i := range products {
		if products[i].ID == id {
			return true
		}
	}
	return false
}
