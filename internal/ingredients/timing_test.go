package ingredients

import (
	"testing"

	"github.com/dermaplan/engine/internal/domain"
)

func TestOptimalTime(t *testing.T) {
	tests := []struct {
		ing         domain.ActiveIngredient
		sensitivity domain.Sensitivity
		want        TimeOfDay
	}{
		{domain.IngredientRetinol, domain.SensitivityLow, TimeEvening},
		{domain.IngredientTretinoin, domain.SensitivityLow, TimeEvening},
		{domain.IngredientGlycolicAcid, domain.SensitivityLow, TimeEvening},
		{domain.IngredientBenzoylPeroxide, domain.SensitivityLow, TimeEvening},
		{domain.IngredientVitaminC, domain.SensitivityLow, TimeMorning},
		{domain.IngredientNiacinamide, domain.SensitivityLow, TimeMorning},
		{domain.IngredientCeramides, domain.SensitivityLow, TimeAny},
		{domain.IngredientAzelaicAcid, domain.SensitivityLow, TimeAny},
		{domain.IngredientAzelaicAcid, domain.SensitivityHigh, TimeMorning},
		{domain.IngredientAzelaicAcid, domain.SensitivityVeryHigh, TimeMorning},
	}
	for _, tt := range tests {
		if got := OptimalTime(tt.ing, tt.sensitivity); got != tt.want {
			t.Errorf("OptimalTime(%s, %s) = %s, want %s", tt.ing, tt.sensitivity, got, tt.want)
		}
	}
}

func TestOptimalProductTime_EveningDominates(t *testing.T) {
	got := OptimalProductTime([]domain.ActiveIngredient{
		domain.IngredientNiacinamide, domain.IngredientRetinol,
	}, domain.SensitivityLow)
	if got != TimeEvening {
		t.Errorf("retinoid product must stay in the evening, got %s", got)
	}

	neutral := OptimalProductTime([]domain.ActiveIngredient{
		domain.IngredientSqualane, domain.IngredientCeramides,
	}, domain.SensitivityLow)
	if neutral != TimeAny {
		t.Errorf("barrier product should be time-agnostic, got %s", neutral)
	}
}

func TestCovers(t *testing.T) {
	tests := []struct {
		window TimeOfDay
		slot   domain.Slot
		want   bool
	}{
		{TimeMorning, domain.SlotMorning, true},
		{TimeMorning, domain.SlotEvening, false},
		{TimeEvening, domain.SlotEvening, true},
		{TimeEvening, domain.SlotMorning, false},
		{TimeAny, domain.SlotMorning, true},
		{TimeAny, domain.SlotEvening, true},
		{TimeEvening, domain.SlotWeekly, true},
	}
	for _, tt := range tests {
		if got := tt.window.Covers(tt.slot); got != tt.want {
			t.Errorf("%s.Covers(%s) = %v, want %v", tt.window, tt.slot, got, tt.want)
		}
	}
}
