package ingredients

import "github.com/dermaplan/engine/internal/domain"

// TimeOfDay is the optimal application window for an ingredient class.
type TimeOfDay string

const (
	TimeMorning TimeOfDay = "morning"
	TimeEvening TimeOfDay = "evening"
	TimeAny     TimeOfDay = "any"
)

// eveningIngredients photosensitize or degrade in daylight.
var eveningIngredients = map[domain.ActiveIngredient]bool{
	domain.IngredientRetinol:         true,
	domain.IngredientRetinoid:        true,
	domain.IngredientAdapalene:       true,
	domain.IngredientTretinoin:       true,
	domain.IngredientAHA:             true,
	domain.IngredientBHA:             true,
	domain.IngredientPHA:             true,
	domain.IngredientSalicylicAcid:   true,
	domain.IngredientGlycolicAcid:    true,
	domain.IngredientLacticAcid:      true,
	domain.IngredientBenzoylPeroxide: true,
}

// morningIngredients work as daytime antioxidants.
var morningIngredients = map[domain.ActiveIngredient]bool{
	domain.IngredientVitaminC:     true,
	domain.IngredientAscorbicAcid: true,
	domain.IngredientNiacinamide:  true,
}

// OptimalTime returns the preferred application window for a single
// ingredient given the profile's sensitivity. Azelaic acid moves to the
// morning for high/very-high sensitivity so evenings stay free for barrier
// recovery; barrier and soothing actives are time-agnostic.
func OptimalTime(ing domain.ActiveIngredient, sensitivity domain.Sensitivity) TimeOfDay {
	if ing == domain.IngredientAzelaicAcid {
		if sensitivity.AtLeast(domain.SensitivityHigh) {
			return TimeMorning
		}
		return TimeAny
	}
	if eveningIngredients[ing] {
		return TimeEvening
	}
	if morningIngredients[ing] {
		return TimeMorning
	}
	return TimeAny
}

// OptimalProductTime aggregates per-ingredient windows for a whole product.
// Evening-bound actives dominate: a product with both a retinoid and
// niacinamide still belongs in the evening. A product with no directional
// actives is time-agnostic.
func OptimalProductTime(ings []domain.ActiveIngredient, sensitivity domain.Sensitivity) TimeOfDay {
	morning, evening := false, false
	for _, ing := range ings {
		switch OptimalTime(ing, sensitivity) {
		case TimeMorning:
			morning = true
		case TimeEvening:
			evening = true
		}
	}
	switch {
	case evening:
		return TimeEvening
	case morning:
		return TimeMorning
	default:
		return TimeAny
	}
}

// Covers reports whether the window admits application in the given slot.
// Weekly steps are not slot-bound, so every window covers them.
func (t TimeOfDay) Covers(slot domain.Slot) bool {
	switch slot {
	case domain.SlotMorning:
		return t == TimeMorning || t == TimeAny
	case domain.SlotEvening:
		return t == TimeEvening || t == TimeAny
	default:
		return true
	}
}
