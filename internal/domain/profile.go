package domain

import "fmt"

// SkinType enumerates the canonical skin-type keys. Raw survey values such as
// "combo" or "sensitive" must be normalized upstream; the engine only ever
// sees these five.
type SkinType string

const (
	SkinDry              SkinType = "dry"
	SkinNormal           SkinType = "normal"
	SkinCombinationDry   SkinType = "combination_dry"
	SkinCombinationOily  SkinType = "combination_oily"
	SkinOily             SkinType = "oily"
)

// AllSkinTypes lists the canonical skin types in stable order.
var AllSkinTypes = []SkinType{
	SkinDry, SkinNormal, SkinCombinationDry, SkinCombinationOily, SkinOily,
}

// Sensitivity enumerates the canonical sensitivity levels, lowest first.
type Sensitivity string

const (
	SensitivityLow      Sensitivity = "low"
	SensitivityMedium   Sensitivity = "medium"
	SensitivityHigh     Sensitivity = "high"
	SensitivityVeryHigh Sensitivity = "very_high"
)

// sensitivityRank orders sensitivity levels for >= comparisons.
var sensitivityRank = map[Sensitivity]int{
	SensitivityLow:      0,
	SensitivityMedium:   1,
	SensitivityHigh:     2,
	SensitivityVeryHigh: 3,
}

// AtLeast reports whether s is at or above the given level.
func (s Sensitivity) AtLeast(level Sensitivity) bool {
	return sensitivityRank[s] >= sensitivityRank[level]
}

// RosaceaRisk enumerates the rosacea-risk levels, lowest first.
type RosaceaRisk string

const (
	RosaceaRiskLow      RosaceaRisk = "low"
	RosaceaRiskMedium   RosaceaRisk = "medium"
	RosaceaRiskHigh     RosaceaRisk = "high"
	RosaceaRiskCritical RosaceaRisk = "critical"
)

var rosaceaRiskRank = map[RosaceaRisk]int{
	RosaceaRiskLow:      0,
	RosaceaRiskMedium:   1,
	RosaceaRiskHigh:     2,
	RosaceaRiskCritical: 3,
}

// AtLeast reports whether r is at or above the given level.
func (r RosaceaRisk) AtLeast(level RosaceaRisk) bool {
	return rosaceaRiskRank[r] >= rosaceaRiskRank[level]
}

// BudgetTier enumerates the price tiers a user shops in.
type BudgetTier string

const (
	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"
)

// ProfileClassification is the normalized user profile consumed by every
// downstream component. It is constructed once at the boundary (by the intake
// layer, outside this module) and passed by reference through the pipeline;
// no component re-derives or re-normalizes its fields.
type ProfileClassification struct {
	UserID              string             `json:"user_id"`
	SkinType            SkinType           `json:"skin_type"`
	Sensitivity         Sensitivity        `json:"sensitivity"`
	Diagnoses           []string           `json:"diagnoses"`
	Concerns            []string           `json:"concerns"`
	Contraindications   []string           `json:"contraindications"`
	RosaceaRisk         RosaceaRisk        `json:"rosacea_risk"`
	Pregnant            bool               `json:"pregnant"`
	Budget              BudgetTier         `json:"budget"`
	ExcludedIngredients []ActiveIngredient `json:"excluded_ingredients"`
	Allergies           []string           `json:"allergies"`
	Goals               []string           `json:"goals"`
}

// Validate checks the input contract: required normalized fields must carry
// canonical values. A failure here is the caller's bug, not recoverable data
// incompleteness, and aborts plan generation for the affected user.
func (p *ProfileClassification) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("profile missing user id")
	}
	valid := false
	for _, st := range AllSkinTypes {
		if p.SkinType == st {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("profile has non-canonical skin type %q", p.SkinType)
	}
	if _, ok := sensitivityRank[p.Sensitivity]; !ok {
		return fmt.Errorf("profile has non-canonical sensitivity %q", p.Sensitivity)
	}
	if p.RosaceaRisk != "" {
		if _, ok := rosaceaRiskRank[p.RosaceaRisk]; !ok {
			return fmt.Errorf("profile has non-canonical rosacea risk %q", p.RosaceaRisk)
		}
	}
	return nil
}

// HasDiagnosis reports whether any diagnosis contains the given keyword
// (case-insensitive containment, matching how diagnoses arrive as free text).
func (p *ProfileClassification) HasDiagnosis(keyword string) bool {
	return containsKeyword(p.Diagnoses, keyword)
}

// HasConcern reports whether any concern contains the given keyword.
func (p *ProfileClassification) HasConcern(keyword string) bool {
	return containsKeyword(p.Concerns, keyword)
}

func containsKeyword(values []string, keyword string) bool {
	for _, v := range values {
		if containsFold(v, keyword) {
			return true
		}
	}
	return false
}

// containsFold is a case-insensitive substring check without allocating via
// strings.ToLower on the hot path for ASCII inputs.
func containsFold(s, substr string) bool {
	n := len(substr)
	if n == 0 {
		return true
	}
	for i := 0; i+n <= len(s); i++ {
		if equalFoldASCII(s[i:i+n], substr) {
			return true
		}
	}
	return false
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
