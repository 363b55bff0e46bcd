package ingredients

import "github.com/dermaplan/engine/internal/domain"

// RedundancyClass groups ingredients whose effects overlap enough that
// stacking them within one day adds irritation without benefit.
type RedundancyClass string

const (
	ClassRetinoids           RedundancyClass = "retinoids"
	ClassAcids               RedundancyClass = "acids"
	ClassVitaminCDerivatives RedundancyClass = "vitamin_c_derivatives"
)

var redundancyByIngredient = map[domain.ActiveIngredient]RedundancyClass{
	domain.IngredientRetinol:   ClassRetinoids,
	domain.IngredientRetinoid:  ClassRetinoids,
	domain.IngredientAdapalene: ClassRetinoids,
	domain.IngredientTretinoin: ClassRetinoids,

	domain.IngredientAHA:           ClassAcids,
	domain.IngredientBHA:           ClassAcids,
	domain.IngredientPHA:           ClassAcids,
	domain.IngredientSalicylicAcid: ClassAcids,
	domain.IngredientGlycolicAcid:  ClassAcids,
	domain.IngredientLacticAcid:    ClassAcids,

	domain.IngredientVitaminC:     ClassVitaminCDerivatives,
	domain.IngredientAscorbicAcid: ClassVitaminCDerivatives,
}

// RedundancyClassOf returns the class an ingredient belongs to, if any.
func RedundancyClassOf(ing domain.ActiveIngredient) (RedundancyClass, bool) {
	c, ok := redundancyByIngredient[ing]
	return c, ok
}

// RedundancyClasses returns the distinct classes covered by an ingredient
// set, in stable order.
func RedundancyClasses(ings []domain.ActiveIngredient) []RedundancyClass {
	seen := make(map[RedundancyClass]bool)
	var out []RedundancyClass
	for _, order := range []RedundancyClass{ClassRetinoids, ClassAcids, ClassVitaminCDerivatives} {
		for _, ing := range ings {
			if c, ok := redundancyByIngredient[ing]; ok && c == order && !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}
