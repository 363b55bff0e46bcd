package protocol

import "github.com/dermaplan/engine/internal/domain"

// Keyword sets for matching free-text diagnoses and concerns. Matching is
// case-insensitive containment, the same way diagnoses arrive from intake.
var (
	rosaceaKeywords      = []string{"rosacea", "couperose"}
	atopicKeywords       = []string{"atopic", "eczema", "dermatitis"}
	acneKeywords         = []string{"acne", "breakout", "pimple", "comedone"}
	pigmentationKeywords = []string{"pigment", "melasma", "dark spot", "pih", "post-inflammatory"}
)

// Select maps a normalized profile to its dermatology protocol. Priority is
// safety-first, first match wins: conditions with the narrowest safe
// ingredient envelope (rosacea, atopic dermatitis) must never be shadowed by
// a looser match such as acne triggered by an unrelated concern.
func (r *Registry) Select(profile *domain.ProfileClassification) *Protocol {
	if matchesAny(profile.Diagnoses, rosaceaKeywords) ||
		profile.RosaceaRisk.AtLeast(domain.RosaceaRiskMedium) {
		return r.Get(ConditionRosacea)
	}
	if matchesAny(profile.Diagnoses, atopicKeywords) {
		return r.Get(ConditionAtopicDermatitis)
	}
	if matchesAny(profile.Diagnoses, acneKeywords) || matchesAny(profile.Concerns, acneKeywords) {
		return r.Get(ConditionAcne)
	}
	if matchesAny(profile.Diagnoses, pigmentationKeywords) || matchesAny(profile.Concerns, pigmentationKeywords) {
		return r.Get(ConditionPigmentation)
	}
	return r.Get(ConditionNormal)
}

func matchesAny(values, keywords []string) bool {
	for _, kw := range keywords {
		for _, v := range values {
			if containsFold(v, kw) {
				return true
			}
		}
	}
	return false
}

// containsFold is a case-insensitive ASCII substring check.
func containsFold(s, substr string) bool {
	n := len(substr)
	if n == 0 {
		return true
	}
	for i := 0; i+n <= len(s); i++ {
		if foldEqual(s[i:i+n], substr) {
			return true
		}
	}
	return false
}

func foldEqual(a, b string) bool {
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
