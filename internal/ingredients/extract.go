package ingredients

import (
	"sort"
	"strings"

	"github.com/dermaplan/engine/internal/domain"
)

// keywordMap maps lowercase free-text fragments to canonical ingredients.
// More specific fragments must appear before generic ones is not required:
// extraction is containment-based and set-valued, so overlapping matches
// simply land in the same set.
var keywordMap = []struct {
	keyword    string
	ingredient domain.ActiveIngredient
}{
	{"tretinoin", domain.IngredientTretinoin},
	{"adapalene", domain.IngredientAdapalene},
	{"differin", domain.IngredientAdapalene},
	{"retinal", domain.IngredientRetinoid},
	{"retinoid", domain.IngredientRetinoid},
	{"retinol", domain.IngredientRetinol},
	{"ascorbic", domain.IngredientAscorbicAcid},
	{"ascorbyl", domain.IngredientAscorbicAcid},
	{"vitamin c", domain.IngredientVitaminC},
	{"vit c", domain.IngredientVitaminC},
	{"niacinamide", domain.IngredientNiacinamide},
	{"vitamin b3", domain.IngredientNiacinamide},
	{"salicylic", domain.IngredientSalicylicAcid},
	{"glycolic", domain.IngredientGlycolicAcid},
	{"lactic", domain.IngredientLacticAcid},
	{"mandelic", domain.IngredientAHA},
	{"gluconolactone", domain.IngredientPHA},
	{"azelaic", domain.IngredientAzelaicAcid},
	{"benzoyl", domain.IngredientBenzoylPeroxide},
	{"peptide", domain.IngredientPeptides},
	{"ceramide", domain.IngredientCeramides},
	{"hyaluron", domain.IngredientHyaluronicAcid},
	{"panthenol", domain.IngredientPanthenol},
	{"vitamin b5", domain.IngredientPanthenol},
	{"centella", domain.IngredientCentella},
	{"cica", domain.IngredientCentella},
	{"madecassoside", domain.IngredientCentella},
	{"zinc", domain.IngredientZinc},
	{"squalane", domain.IngredientSqualane},
	{"urea", domain.IngredientUrea},
	{"allantoin", domain.IngredientAllantoin},
	{"aha", domain.IngredientAHA},
	{"bha", domain.IngredientBHA},
	{"pha", domain.IngredientPHA},
}

// shortTokens are keywords that only count as whole tokens. "aha" inside
// "chamomile extract shahah" must not register.
var shortTokens = map[string]bool{"aha": true, "bha": true, "pha": true, "urea": true, "zinc": true, "cica": true, "vit c": false}

// Extract maps free-text product metadata onto the closed ingredient set.
// It is idempotent and order-independent: the result is a set, returned
// sorted for deterministic downstream behavior.
func Extract(texts ...string) []domain.ActiveIngredient {
	seen := make(map[domain.ActiveIngredient]bool)
	for _, text := range texts {
		if text == "" {
			continue
		}
		lower := strings.ToLower(text)
		for _, entry := range keywordMap {
			if seen[entry.ingredient] {
				continue
			}
			if shortTokens[entry.keyword] {
				if hasToken(lower, entry.keyword) {
					seen[entry.ingredient] = true
				}
				continue
			}
			if strings.Contains(lower, entry.keyword) {
				seen[entry.ingredient] = true
			}
		}
	}

	out := make([]domain.ActiveIngredient, 0, len(seen))
	for ing := range seen {
		out = append(out, ing)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// hasToken reports whether word appears in text delimited by non-letters.
func hasToken(text, word string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isLetter(text[start-1])
		afterOK := end == len(text) || !isLetter(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
