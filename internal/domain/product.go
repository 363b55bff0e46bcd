package domain

import (
	"fmt"
	"time"
)

// ProductStrength classifies how aggressive a product's actives are. The
// assembler prefers different strengths per plan phase.
type ProductStrength string

const (
	StrengthGentle   ProductStrength = "gentle"
	StrengthModerate ProductStrength = "moderate"
	StrengthStrong   ProductStrength = "strong"
)

// CatalogProduct is a read-only view of a catalog entry. The engine never
// mutates products; it only classifies and selects them.
type CatalogProduct struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	RawStep       string             `json:"raw_step"`
	RawCategory   string             `json:"raw_category"`
	SkinTypes     []SkinType         `json:"skin_types"`
	Ingredients   []ActiveIngredient `json:"ingredients"`
	Strength      ProductStrength    `json:"strength"`
	PriceTier     BudgetTier         `json:"price_tier"`
	Hero          bool               `json:"hero"`
	Priority      int                `json:"priority"`
	Published     bool               `json:"published"`
	BrandActive   bool               `json:"brand_active"`
	CreatedAt     time.Time          `json:"created_at"`
}

// Validate checks the catalog input contract. Malformed catalog rows are an
// input contract violation and abort generation, unlike empty lookups which
// are recovered by the fallback hierarchy.
func (p *CatalogProduct) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("catalog product missing id")
	}
	if p.RawStep == "" && p.RawCategory == "" {
		return fmt.Errorf("catalog product %s has no step or category metadata", p.ID)
	}
	return nil
}

// SuitsSkinType reports whether the product is tagged for the given skin type.
// Products with no skin-type tags suit everyone.
func (p *CatalogProduct) SuitsSkinType(st SkinType) bool {
	if len(p.SkinTypes) == 0 {
		return true
	}
	for _, t := range p.SkinTypes {
		if t == st {
			return true
		}
	}
	return false
}

// HasIngredient reports whether the product is tagged with the ingredient.
func (p *CatalogProduct) HasIngredient(ing ActiveIngredient) bool {
	for _, i := range p.Ingredients {
		if i == ing {
			return true
		}
	}
	return false
}
