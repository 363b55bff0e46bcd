package engine

import (
	"fmt"
	"strings"

	"github.com/dermaplan/engine/internal/domain"
	"github.com/dermaplan/engine/internal/protocol"
	"github.com/dermaplan/engine/internal/steps"
)

// Decision is the allowance gate's verdict for one step category.
type Decision struct {
	Allowed bool
	// Reason explains the first failing check when Allowed is false.
	Reason string
	// Warning is set when the step is admitted outside a non-strict
	// protocol's preferred step list (ranking-only allowlist).
	Warning string
}

// Gate is the step allowance predicate. It is stateless; the struct exists
// so the assembler receives it by injection rather than calling package
// functions directly.
type Gate struct{}

// NewGate creates the allowance gate.
func NewGate() *Gate { return &Gate{} }

// sensitiveOverrideApplies reports whether the profile qualifies for the
// "ignore skin type when sensitive/rosacea" rule override.
func sensitiveOverrideApplies(p *domain.ProfileClassification) bool {
	return p.Sensitivity.AtLeast(domain.SensitivityMedium) ||
		p.RosaceaRisk.AtLeast(domain.RosaceaRiskMedium) ||
		p.HasDiagnosis("rosacea")
}

// CanApply decides whether a step category may be used by this profile under
// the active protocol. The checks are independent AND-gates evaluated in a
// fixed order; the first failure rejects the step with a diagnostic reason.
func (g *Gate) CanApply(step domain.StepCategory, p *domain.ProfileClassification, proto *protocol.Protocol) Decision {
	// Protocol deny list is a hard gate for every protocol.
	if proto.StepForbidden(step) {
		return Decision{Reason: fmt.Sprintf("step %s is forbidden by the %s protocol", step, proto.Condition)}
	}

	rule := steps.RuleFor(step)

	// 1. Skin type, unless the soothing/barrier override applies.
	if len(rule.AllowedSkinTypes) > 0 {
		skip := rule.IgnoreSkinTypeWhenSensitive && sensitiveOverrideApplies(p)
		if !skip && !skinTypeAllowed(rule.AllowedSkinTypes, p.SkinType) {
			return Decision{Reason: fmt.Sprintf("step %s is not suited to skin type %s", step, p.SkinType)}
		}
	}

	// 2. Forbidden diagnoses.
	for _, diag := range rule.ForbiddenDiagnoses {
		if p.HasDiagnosis(diag) {
			return Decision{Reason: fmt.Sprintf("step %s is contraindicated for diagnosis %q", step, diag)}
		}
	}

	// 3. Profile contraindications. Pregnancy is an implicit contraindication
	// carried by the profile flag.
	for _, contra := range rule.ForbiddenContraindications {
		if contra == "pregnancy" && p.Pregnant {
			return Decision{Reason: fmt.Sprintf("step %s is contraindicated during pregnancy", step)}
		}
		for _, pc := range p.Contraindications {
			if pc == contra {
				return Decision{Reason: fmt.Sprintf("step %s is contraindicated: %s", step, contra)}
			}
		}
	}

	// 4. Sensitivity ceiling.
	for _, s := range rule.SensitivityCeiling {
		if p.Sensitivity == s {
			return Decision{Reason: fmt.Sprintf("step %s is too harsh for %s sensitivity", step, p.Sensitivity)}
		}
	}

	// Strict protocols treat the allowlist as a hard gate; non-strict ones
	// use it for ranking only and warn instead.
	if len(proto.AllowedSteps) > 0 && !proto.StepAllowed(step) {
		if proto.Strict {
			return Decision{Reason: fmt.Sprintf("step %s is outside the %s protocol's safe step list", step, proto.Condition)}
		}
		return Decision{
			Allowed: true,
			Warning: fmt.Sprintf("step %s is not among the %s protocol's preferred steps", step, proto.Condition),
		}
	}

	return Decision{Allowed: true}
}

// VetoProduct is the ingredient half of the gating contract: CanApply decides
// which step categories are permitted, VetoProduct decides which products may
// fill them based on their active-ingredient tags. It returns the first
// failing reason, or "" when the product is admissible.
func (g *Gate) VetoProduct(cand domain.CatalogProduct, p *domain.ProfileClassification, proto *protocol.Protocol) string {
	for _, ing := range cand.Ingredients {
		if proto.IngredientForbidden(ing) {
			return fmt.Sprintf("%s contains %s, forbidden by the %s protocol", cand.Name, ing, proto.Condition)
		}
		if proto.Strict && len(proto.AllowedIngredients) > 0 && !proto.IngredientAllowed(ing) {
			return fmt.Sprintf("%s contains %s, outside the %s protocol's safe ingredient list", cand.Name, ing, proto.Condition)
		}
		for _, excluded := range p.ExcludedIngredients {
			if ing == excluded {
				return fmt.Sprintf("%s contains %s, excluded by the user", cand.Name, ing)
			}
		}
	}

	for _, allergy := range p.Allergies {
		if matchesAllergy(cand, allergy) {
			return fmt.Sprintf("%s matches declared allergy %q", cand.Name, allergy)
		}
	}
	return ""
}

// matchesAllergy checks an allergy term against the product's free-text
// metadata and its mapped ingredient tags. Allergies arrive as free text, so
// the match is case-insensitive containment, like diagnosis keywords.
func matchesAllergy(cand domain.CatalogProduct, allergy string) bool {
	term := strings.ToLower(strings.TrimSpace(allergy))
	if term == "" {
		return false
	}
	for _, hay := range []string{cand.Name, cand.RawStep, cand.RawCategory} {
		if strings.Contains(strings.ToLower(hay), term) {
			return true
		}
	}
	for _, ing := range cand.Ingredients {
		if strings.Contains(string(ing), term) {
			return true
		}
	}
	return false
}

func skinTypeAllowed(allowed []domain.SkinType, st domain.SkinType) bool {
	for _, a := range allowed {
		if a == st {
			return true
		}
	}
	return false
}
