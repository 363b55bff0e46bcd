package domain

// ActiveIngredient enumerates the active ingredients the engine reasons about.
// The set is closed: free-text product metadata is mapped onto these values by
// the ingredients package and anything outside the set is ignored.
type ActiveIngredient string

const (
	IngredientRetinol         ActiveIngredient = "retinol"
	IngredientRetinoid        ActiveIngredient = "retinoid"
	IngredientAdapalene       ActiveIngredient = "adapalene"
	IngredientTretinoin       ActiveIngredient = "tretinoin"
	IngredientVitaminC        ActiveIngredient = "vitamin_c"
	IngredientAscorbicAcid    ActiveIngredient = "ascorbic_acid"
	IngredientNiacinamide     ActiveIngredient = "niacinamide"
	IngredientAHA             ActiveIngredient = "aha"
	IngredientBHA             ActiveIngredient = "bha"
	IngredientPHA             ActiveIngredient = "pha"
	IngredientSalicylicAcid   ActiveIngredient = "salicylic_acid"
	IngredientGlycolicAcid    ActiveIngredient = "glycolic_acid"
	IngredientLacticAcid      ActiveIngredient = "lactic_acid"
	IngredientAzelaicAcid     ActiveIngredient = "azelaic_acid"
	IngredientBenzoylPeroxide ActiveIngredient = "benzoyl_peroxide"
	IngredientPeptides        ActiveIngredient = "peptides"
	IngredientCeramides       ActiveIngredient = "ceramides"
	IngredientHyaluronicAcid  ActiveIngredient = "hyaluronic_acid"
	IngredientPanthenol       ActiveIngredient = "panthenol"
	IngredientCentella        ActiveIngredient = "centella"
	IngredientZinc            ActiveIngredient = "zinc"
	IngredientSqualane        ActiveIngredient = "squalane"
	IngredientUrea            ActiveIngredient = "urea"
	IngredientAllantoin       ActiveIngredient = "allantoin"
)

// AllActiveIngredients lists every member of the closed set, in stable order.
var AllActiveIngredients = []ActiveIngredient{
	IngredientRetinol, IngredientRetinoid, IngredientAdapalene, IngredientTretinoin,
	IngredientVitaminC, IngredientAscorbicAcid, IngredientNiacinamide,
	IngredientAHA, IngredientBHA, IngredientPHA,
	IngredientSalicylicAcid, IngredientGlycolicAcid, IngredientLacticAcid,
	IngredientAzelaicAcid, IngredientBenzoylPeroxide,
	IngredientPeptides, IngredientCeramides, IngredientHyaluronicAcid,
	IngredientPanthenol, IngredientCentella, IngredientZinc,
	IngredientSqualane, IngredientUrea, IngredientAllantoin,
}

// IsValidIngredient reports whether s names a member of the closed set.
func IsValidIngredient(s string) bool {
	for _, ing := range AllActiveIngredients {
		if string(ing) == s {
			return true
		}
	}
	return false
}
