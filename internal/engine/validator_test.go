package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dermaplan/engine/internal/domain"
	"github.com/dermaplan/engine/internal/ingredients"
)

func minimalPlan() domain.Plan28 {
	plan := domain.Plan28{ID: "plan-1", UserID: "u-1", Protocol: "normal"}
	for day := 1; day <= domain.PlanDays; day++ {
		plan.Days = append(plan.Days, domain.DayPlan{
			DayIndex: day,
			Phase:    domain.PhaseForDay(day),
			Morning: []domain.DayStep{
				{Step: domain.StepCleanserGentle, ProductID: "cl-1"},
				{Step: domain.StepMoisturizerLight, ProductID: "mo-1"},
				{Step: domain.StepSPFDaily, ProductID: "spf-1"},
			},
			Evening: []domain.DayStep{
				{Step: domain.StepCleanserGentle, ProductID: "cl-1"},
				{Step: domain.StepMoisturizerLight, ProductID: "mo-1"},
			},
		})
	}
	return plan
}

func minimalByID() map[string]domain.CatalogProduct {
	return map[string]domain.CatalogProduct{
		"cl-1":  product("cl-1"),
		"mo-1":  product("mo-1"),
		"spf-1": product("spf-1"),
	}
}

func TestValidator_CleanPlan(t *testing.T) {
	v := NewValidator(ingredients.MustMatrix())
	plan := minimalPlan()
	warnings := v.Validate(&plan, minimalByID())
	assert.Empty(t, warnings)
}

func TestValidator_MissingBaseStep(t *testing.T) {
	v := NewValidator(ingredients.MustMatrix())
	plan := minimalPlan()
	for i := range plan.Days {
		plan.Days[i].Morning = plan.Days[i].Morning[:1]
		plan.Days[i].Evening = plan.Days[i].Evening[:1]
	}

	warnings := v.Validate(&plan, minimalByID())
	codes := warningCodes(warnings)
	assert.Contains(t, codes, domain.WarnMissingBaseStep)
}

func TestValidator_EmptyDay(t *testing.T) {
	v := NewValidator(ingredients.MustMatrix())
	plan := minimalPlan()
	plan.Days[9].Morning = nil
	plan.Days[9].Evening = []domain.DayStep{{Step: domain.StepCleanserGentle}}

	warnings := v.Validate(&plan, minimalByID())
	found := false
	for _, w := range warnings {
		if w.Code == domain.WarnEmptyDay && w.DayIndex == 10 {
			found = true
		}
	}
	assert.True(t, found, "day 10 has step entries but no products at all")
}

func TestValidator_TrimsAlternatives(t *testing.T) {
	v := NewValidator(ingredients.MustMatrix())
	plan := minimalPlan()
	plan.Days[0].Morning[1].Alternatives = []string{"a", "b", "c", "d", "e"}

	warnings := v.Validate(&plan, minimalByID())
	codes := warningCodes(warnings)
	assert.Contains(t, codes, domain.WarnTooManyAlternatives)
	assert.Len(t, plan.Days[0].Morning[1].Alternatives, domain.MaxAlternatives)
}

func TestValidator_CrossFamilyReuse(t *testing.T) {
	v := NewValidator(ingredients.MustMatrix())
	plan := minimalPlan()
	// The moisturizer product also shows up as an evening treatment.
	plan.Days[0].Evening = append(plan.Days[0].Evening,
		domain.DayStep{Step: domain.StepTreatmentAzelaic, ProductID: "mo-1"})

	warnings := v.Validate(&plan, minimalByID())
	codes := warningCodes(warnings)
	assert.Contains(t, codes, domain.WarnCrossStepDuplicate)
}

func TestValidator_HighConflictRelabelsRecovery(t *testing.T) {
	v := NewValidator(ingredients.MustMatrix())
	plan := minimalPlan()

	byID := minimalByID()
	byID["ret-1"] = product("ret-1", domain.IngredientRetinol)
	byID["bp-1"] = product("bp-1", domain.IngredientBenzoylPeroxide)

	// Benzoyl peroxide and retinol share day 5: a replace-resolution high
	// severity pair that time separation cannot fix.
	plan.Days[4].Morning = append(plan.Days[4].Morning,
		domain.DayStep{Step: domain.StepTreatmentBenzoylPeroxide, ProductID: "bp-1"})
	plan.Days[4].Evening = append(plan.Days[4].Evening,
		domain.DayStep{Step: domain.StepSerumRetinol, ProductID: "ret-1"})

	warnings := v.Validate(&plan, byID)

	day := plan.Days[4]
	assert.True(t, day.Recovery, "day must be relabeled as recovery")
	assert.Equal(t, domain.PhaseSupport, day.Phase)

	stripped := day.Evening[len(day.Evening)-1]
	assert.Empty(t, stripped.ProductID, "the later assignment is stripped")
	assert.True(t, stripped.NeedsReview)
	require.NotEmpty(t, warnings)
	assert.Contains(t, warningCodes(warnings), domain.WarnIngredientConflict)
}

func TestValidator_SeparatedHighPairAcrossSlotsIsSanctioned(t *testing.T) {
	v := NewValidator(ingredients.MustMatrix())
	plan := minimalPlan()

	byID := minimalByID()
	byID["aha-1"] = product("aha-1", domain.IngredientGlycolicAcid)
	byID["ret-1"] = product("ret-1", domain.IngredientRetinol)

	// Acid in the morning, retinoid in the evening: the pair resolves by
	// separating time, which is exactly what this layout does.
	plan.Days[4].Morning = append(plan.Days[4].Morning,
		domain.DayStep{Step: domain.StepTreatmentExfoliantMild, ProductID: "aha-1"})
	plan.Days[4].Evening = append(plan.Days[4].Evening,
		domain.DayStep{Step: domain.StepSerumRetinol, ProductID: "ret-1"})

	v.Validate(&plan, byID)
	assert.False(t, plan.Days[4].Recovery)
	assert.Equal(t, "ret-1", plan.Days[4].Evening[len(plan.Days[4].Evening)-1].ProductID)
}

func TestValidator_StrippedAssignmentStripsNothingFurther(t *testing.T) {
	v := NewValidator(ingredients.MustMatrix())
	plan := minimalPlan()

	byID := minimalByID()
	byID["bp-1"] = product("bp-1", domain.IngredientBenzoylPeroxide)
	byID["ret-1"] = product("ret-1", domain.IngredientRetinol)
	byID["gly-1"] = product("gly-1", domain.IngredientGlycolicAcid)

	// Benzoyl peroxide strips the retinol first. The removed retinol must not
	// then count against the glycolic acid sharing its slot.
	plan.Days[4].Morning = append(plan.Days[4].Morning,
		domain.DayStep{Step: domain.StepTreatmentBenzoylPeroxide, ProductID: "bp-1"})
	plan.Days[4].Evening = append(plan.Days[4].Evening,
		domain.DayStep{Step: domain.StepSerumRetinol, ProductID: "ret-1"},
		domain.DayStep{Step: domain.StepTreatmentExfoliantMild, ProductID: "gly-1"})

	v.Validate(&plan, byID)

	day := plan.Days[4]
	assert.True(t, day.Recovery)
	assert.Empty(t, day.Evening[2].ProductID, "retinol is stripped by the benzoyl pair")
	assert.Equal(t, "gly-1", day.Evening[3].ProductID,
		"a stripped assignment must not strip a third product")
}

func warningCodes(warnings []domain.PlanWarning) []domain.WarningCode {
	out := make([]domain.WarningCode, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, w.Code)
	}
	return out
}
