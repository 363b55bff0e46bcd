package engine

import (
	"fmt"

	"github.com/dermaplan/engine/internal/domain"
	"github.com/dermaplan/engine/internal/ingredients"
)

// Validator runs structural and safety checks over an assembled plan. It
// repairs what it safely can (trimming alternatives, relabeling a day as
// recovery) and reports everything else; it never deletes a day or a step
// entry outright.
type Validator struct {
	matrix *ingredients.Matrix
}

// NewValidator creates a plan validator over the conflict matrix.
func NewValidator(matrix *ingredients.Matrix) *Validator {
	return &Validator{matrix: matrix}
}

// Validate checks the plan in place. byID maps product ids to their catalog
// records for ingredient lookups; ids missing from the map are skipped by
// ingredient checks but still count for structural ones.
func (v *Validator) Validate(plan *domain.Plan28, byID map[string]domain.CatalogProduct) []domain.PlanWarning {
	var warnings []domain.PlanWarning

	warnings = append(warnings, v.checkBaseSteps(plan)...)

	for i := range plan.Days {
		day := &plan.Days[i]
		warnings = append(warnings, v.checkDayNotEmpty(day)...)
		warnings = append(warnings, v.trimAlternatives(day)...)
		warnings = append(warnings, v.checkCrossFamilyReuse(day)...)
		warnings = append(warnings, v.checkConflicts(day, byID)...)
	}
	return warnings
}

// checkBaseSteps verifies a cleanser and a moisturizer appear somewhere in
// the plan. Their absence is reported, never repaired here; the assembler
// owns re-insertion.
func (v *Validator) checkBaseSteps(plan *domain.Plan28) []domain.PlanWarning {
	present := make(map[domain.StepType]bool)
	for i := range plan.Days {
		for _, ds := range allSteps(&plan.Days[i]) {
			present[domain.StepTypeOf(ds.Step)] = true
		}
	}

	var warnings []domain.PlanWarning
	for _, st := range []domain.StepType{domain.StepTypeCleanser, domain.StepTypeMoisturizer} {
		if !present[st] {
			warnings = append(warnings, domain.PlanWarning{
				Code:    domain.WarnMissingBaseStep,
				Message: fmt.Sprintf("plan %s contains no %s step on any day", plan.ID, st),
			})
		}
	}
	return warnings
}

func (v *Validator) checkDayNotEmpty(day *domain.DayPlan) []domain.PlanWarning {
	for _, ds := range allSteps(day) {
		if ds.ProductID != "" {
			return nil
		}
	}
	return []domain.PlanWarning{{
		Code:     domain.WarnEmptyDay,
		DayIndex: day.DayIndex,
		Message:  fmt.Sprintf("day %d has no product assigned in any slot", day.DayIndex),
	}}
}

// trimAlternatives enforces the alternatives cap in place.
func (v *Validator) trimAlternatives(day *domain.DayPlan) []domain.PlanWarning {
	var warnings []domain.PlanWarning
	fix := func(steps []domain.DayStep, slot domain.Slot) {
		for i := range steps {
			if len(steps[i].Alternatives) <= domain.MaxAlternatives {
				continue
			}
			warnings = append(warnings, domain.PlanWarning{
				Code: domain.WarnTooManyAlternatives, DayIndex: day.DayIndex, Slot: slot, Step: steps[i].Step,
				Message: fmt.Sprintf("day %d %s: step %s carried %d alternatives, trimmed to %d",
					day.DayIndex, slot, steps[i].Step, len(steps[i].Alternatives), domain.MaxAlternatives),
			})
			steps[i].Alternatives = steps[i].Alternatives[:domain.MaxAlternatives]
		}
	}
	fix(day.Morning, domain.SlotMorning)
	fix(day.Evening, domain.SlotEvening)
	fix(day.Weekly, domain.SlotWeekly)
	return warnings
}

// checkCrossFamilyReuse flags one product committed under two different base
// families within the same day.
func (v *Validator) checkCrossFamilyReuse(day *domain.DayPlan) []domain.PlanWarning {
	var warnings []domain.PlanWarning
	familyOf := make(map[string]domain.StepType)
	for _, ds := range allSteps(day) {
		if ds.ProductID == "" {
			continue
		}
		st := domain.StepTypeOf(ds.Step)
		if prev, ok := familyOf[ds.ProductID]; ok && prev != st {
			warnings = append(warnings, domain.PlanWarning{
				Code: domain.WarnCrossStepDuplicate, DayIndex: day.DayIndex, Step: ds.Step, ProductID: ds.ProductID,
				Message: fmt.Sprintf("day %d: product %s used as both %s and %s",
					day.DayIndex, ds.ProductID, prev, st),
			})
			continue
		}
		familyOf[ds.ProductID] = st
	}
	return warnings
}

// checkConflicts scans all committed product pairs for the day. A high
// severity pair within one slot, or a non-separable high pair across slots,
// relabels the day as recovery and strips the later assignment. Pairs whose
// resolution is to separate by time are sanctioned across slots; that is
// what the separation is for.
func (v *Validator) checkConflicts(day *domain.DayPlan, byID map[string]domain.CatalogProduct) []domain.PlanWarning {
	type placed struct {
		slot    domain.Slot
		steps   []domain.DayStep
		idx     int
		product domain.CatalogProduct
	}

	var committed []placed
	collect := func(steps []domain.DayStep, slot domain.Slot) {
		for i := range steps {
			if steps[i].ProductID == "" {
				continue
			}
			p, ok := byID[steps[i].ProductID]
			if !ok {
				continue
			}
			committed = append(committed, placed{slot: slot, steps: steps, idx: i, product: p})
		}
	}
	collect(day.Morning, domain.SlotMorning)
	collect(day.Evening, domain.SlotEvening)
	collect(day.Weekly, domain.SlotWeekly)

	var warnings []domain.PlanWarning
	for a := 0; a < len(committed); a++ {
		for b := a + 1; b < len(committed); b++ {
			first, second := committed[a], committed[b]
			// Either side may have been stripped by an earlier pair; a
			// removed assignment must not strip anything further.
			if first.steps[first.idx].ProductID == "" || second.steps[second.idx].ProductID == "" {
				continue
			}
			conflicts := v.matrix.Between(first.product.Ingredients, second.product.Ingredients)
			for _, conflict := range conflicts {
				if conflict.Severity != ingredients.SeverityHigh {
					continue
				}
				if first.slot != second.slot && conflict.Resolution == ingredients.ResolutionSeparateTime {
					continue
				}

				day.Recovery = true
				day.Phase = domain.PhaseSupport
				second.steps[second.idx].ProductID = ""
				second.steps[second.idx].Alternatives = nil
				second.steps[second.idx].NeedsReview = true
				second.steps[second.idx].Note = "removed by safety check"
				warnings = append(warnings, domain.PlanWarning{
					Code: domain.WarnIngredientConflict, DayIndex: day.DayIndex, Slot: second.slot,
					Step: second.steps[second.idx].Step, ProductID: second.product.ID,
					Message: fmt.Sprintf("day %d: %s conflicts with %s (%s); day relabeled as recovery",
						day.DayIndex, second.product.Name, first.product.Name, conflict.Reason),
				})
				break
			}
		}
	}
	return warnings
}

func allSteps(day *domain.DayPlan) []domain.DayStep {
	out := make([]domain.DayStep, 0, len(day.Morning)+len(day.Evening)+len(day.Weekly))
	out = append(out, day.Morning...)
	out = append(out, day.Evening...)
	out = append(out, day.Weekly...)
	return out
}
