// Package protocol defines the dermatological safety protocols: per-condition
// ingredient/step envelopes, routine templates, weekly titration schedules,
// and cycling rules. The protocol table is a static, read-only registry built
// once at process start.
package protocol

import (
	"fmt"
	"time"

	"github.com/dermaplan/engine/internal/domain"
)

// Condition names a dermatological protocol.
type Condition string

const (
	ConditionAcne             Condition = "acne"
	ConditionRosacea          Condition = "rosacea"
	ConditionAtopicDermatitis Condition = "atopic_dermatitis"
	ConditionPigmentation     Condition = "pigmentation"
	ConditionNormal           Condition = "normal"
)

// FrequencyClass buckets how often a cycled ingredient may be applied.
type FrequencyClass string

const (
	FrequencyDaily         FrequencyClass = "daily"
	FrequencyAlternateDays FrequencyClass = "alternate_days"
	FrequencyTwiceWeekly   FrequencyClass = "twice_weekly"
	FrequencyWeekly        FrequencyClass = "weekly"
)

// Applications returns the weekly application count the class implies.
func (f FrequencyClass) Applications() int {
	switch f {
	case FrequencyDaily:
		return 7
	case FrequencyAlternateDays:
		return 4
	case FrequencyTwiceWeekly:
		return 2
	case FrequencyWeekly:
		return 1
	default:
		return 7
	}
}

// CyclingRule fixes an ingredient's weekly rhythm. An explicit weekday list
// is a stronger constraint than any numeric count and always wins.
type CyclingRule struct {
	Ingredient domain.ActiveIngredient
	Frequency  FrequencyClass
	Weekdays   []time.Weekday
}

// TitrationWeeks is the number of ramp-up weeks a titration schedule covers.
const TitrationWeeks = 4

// Titration maps an ingredient to its weekly application counts for weeks
// 1 through 4. Counts ramp up, never down, unless a cycling rule overrides.
type Titration map[domain.ActiveIngredient][TitrationWeeks]int

// RoutineTemplate is the ordered step skeleton a protocol prescribes.
type RoutineTemplate struct {
	Morning []domain.StepCategory
	Evening []domain.StepCategory
	Weekly  []domain.StepCategory
}

// Protocol is one safety-bounded ingredient/step envelope for a skin
// condition. Strict protocols (rosacea, atopic dermatitis) treat their
// allowlists as hard gates; the others use them for ranking only.
type Protocol struct {
	Condition            Condition
	Strict               bool
	AllowedIngredients   []domain.ActiveIngredient
	ForbiddenIngredients []domain.ActiveIngredient
	AllowedSteps         []domain.StepCategory
	ForbiddenSteps       []domain.StepCategory
	Template             RoutineTemplate
	Titration            Titration
	Cycling              []CyclingRule
	Warnings             []string
}

// Validate enforces the protocol invariants: the allow and forbid sets must
// be disjoint for both ingredients and steps, and titration must ramp up.
func (p *Protocol) Validate() error {
	forbiddenIng := make(map[domain.ActiveIngredient]bool, len(p.ForbiddenIngredients))
	for _, ing := range p.ForbiddenIngredients {
		forbiddenIng[ing] = true
	}
	for _, ing := range p.AllowedIngredients {
		if forbiddenIng[ing] {
			return fmt.Errorf("protocol %s: ingredient %s both allowed and forbidden", p.Condition, ing)
		}
	}

	forbiddenSteps := make(map[domain.StepCategory]bool, len(p.ForbiddenSteps))
	for _, s := range p.ForbiddenSteps {
		forbiddenSteps[s] = true
	}
	for _, s := range p.AllowedSteps {
		if forbiddenSteps[s] {
			return fmt.Errorf("protocol %s: step %s both allowed and forbidden", p.Condition, s)
		}
	}

	for ing, weeks := range p.Titration {
		if p.hasCyclingOverride(ing) {
			continue
		}
		if weeks[0] > weeks[TitrationWeeks-1] {
			return fmt.Errorf("protocol %s: titration for %s ramps down (%d -> %d)",
				p.Condition, ing, weeks[0], weeks[TitrationWeeks-1])
		}
	}
	return nil
}

func (p *Protocol) hasCyclingOverride(ing domain.ActiveIngredient) bool {
	for _, c := range p.Cycling {
		if c.Ingredient == ing {
			return true
		}
	}
	return false
}

// IngredientForbidden reports whether the protocol bans an ingredient.
func (p *Protocol) IngredientForbidden(ing domain.ActiveIngredient) bool {
	for _, f := range p.ForbiddenIngredients {
		if f == ing {
			return true
		}
	}
	return false
}

// IngredientAllowed reports whether an ingredient is on the allowlist. Only
// meaningful as a hard gate when the protocol is strict.
func (p *Protocol) IngredientAllowed(ing domain.ActiveIngredient) bool {
	for _, a := range p.AllowedIngredients {
		if a == ing {
			return true
		}
	}
	return false
}

// StepForbidden reports whether the protocol bans a step category.
func (p *Protocol) StepForbidden(step domain.StepCategory) bool {
	for _, f := range p.ForbiddenSteps {
		if f == step {
			return true
		}
	}
	return false
}

// StepAllowed reports whether a step category is on the allowlist.
func (p *Protocol) StepAllowed(step domain.StepCategory) bool {
	for _, a := range p.AllowedSteps {
		if a == step {
			return true
		}
	}
	return false
}

// CyclingFor returns the cycling rule for an ingredient, if any.
func (p *Protocol) CyclingFor(ing domain.ActiveIngredient) (CyclingRule, bool) {
	for _, c := range p.Cycling {
		if c.Ingredient == ing {
			return c, true
		}
	}
	return CyclingRule{}, false
}

// TitrationFor returns the weekly ramp for an ingredient, if scheduled.
func (p *Protocol) TitrationFor(ing domain.ActiveIngredient) ([TitrationWeeks]int, bool) {
	weeks, ok := p.Titration[ing]
	return weeks, ok
}
