package engine

import (
	"fmt"

	"github.com/dermaplan/engine/internal/domain"
	"github.com/dermaplan/engine/internal/ingredients"
)

// CompatAction is the compatibility filter's verdict for a candidate.
type CompatAction int

const (
	// ActionAdmit lets the candidate into the slot.
	ActionAdmit CompatAction = iota
	// ActionDefer rejects the candidate for this slot but recommends the
	// opposite time of day, where the conflict dissolves.
	ActionDefer
	// ActionReject is a hard no for this day: the pair must not coexist.
	ActionReject
)

// CompatVerdict carries the action plus diagnostics for warnings.
type CompatVerdict struct {
	Action         CompatAction
	Conflict       *ingredients.Conflict
	Recommendation string
	// Warnings holds low-severity findings that do not block admission.
	Warnings []string
}

// Compat decides whether a candidate product may join a time slot already
// holding other products, based on the pairwise conflict matrix and each
// product's optimal application window.
type Compat struct {
	matrix *ingredients.Matrix
}

// NewCompat creates the compatibility filter.
func NewCompat(matrix *ingredients.Matrix) *Compat {
	return &Compat{matrix: matrix}
}

// Check evaluates the candidate against every product committed to the slot.
// Conflicts are evaluated worst-first; the first blocking conflict decides.
func (c *Compat) Check(committed []domain.CatalogProduct, candidate domain.CatalogProduct, slot domain.Slot, sensitivity domain.Sensitivity) CompatVerdict {
	verdict := CompatVerdict{Action: ActionAdmit}

	for i := range committed {
		conflicts := c.matrix.Between(candidate.Ingredients, committed[i].Ingredients)
		for j := range conflicts {
			conflict := conflicts[j]
			switch conflict.Resolution {
			case ingredients.ResolutionReplace:
				// The pair must never be used together at all.
				return CompatVerdict{
					Action:         ActionReject,
					Conflict:       &conflict,
					Recommendation: conflict.Recommendation,
				}

			case ingredients.ResolutionSeparateTime:
				candWindow := ingredients.OptimalProductTime(candidate.Ingredients, sensitivity)
				commWindow := ingredients.OptimalProductTime(committed[i].Ingredients, sensitivity)
				if !candWindow.Covers(slot) || !commWindow.Covers(slot) {
					// The windows already separate the pair; nothing to do.
					continue
				}
				other := otherSlot(slot)
				if candWindow.Covers(other) {
					return CompatVerdict{
						Action:   ActionDefer,
						Conflict: &conflict,
						Recommendation: fmt.Sprintf("move %s to the %s routine: %s",
							candidate.Name, other, conflict.Recommendation),
					}
				}
				return CompatVerdict{
					Action:         ActionReject,
					Conflict:       &conflict,
					Recommendation: conflict.Recommendation,
				}

			case ingredients.ResolutionWarning:
				verdict.Warnings = append(verdict.Warnings,
					fmt.Sprintf("%s with %s: %s", candidate.Name, committed[i].Name, conflict.Reason))
			}
		}
	}
	return verdict
}

func otherSlot(slot domain.Slot) domain.Slot {
	if slot == domain.SlotMorning {
		return domain.SlotEvening
	}
	return domain.SlotMorning
}
