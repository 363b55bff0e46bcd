package steps

import (
	"strings"

	"github.com/dermaplan/engine/internal/domain"
)

// classifierRule is one ordered guard compiled from the declarative keyword
// table: if any keyword matches the combined raw text, the categories are
// added to the result set.
type classifierRule struct {
	keywords   []string
	categories []domain.StepCategory
}

// oilKeywords identify oil-based cleansers, including the localized spellings
// that survive in legacy catalog rows.
var oilKeywords = []string{"oil", "масло", "huile"}

// classifierRules is evaluated top to bottom; every matching rule
// contributes. Order matters only for the stable ordering of the output.
var classifierRules = []classifierRule{
	// Cleansers
	{[]string{"micellar"}, []domain.StepCategory{domain.StepCleanserMicellar}},
	{[]string{"gel cleanser", "cleansing gel", "gel wash"}, []domain.StepCategory{domain.StepCleanserGel}},
	{[]string{"foam", "mousse"}, []domain.StepCategory{domain.StepCleanserFoam}},
	{[]string{"cream cleanser", "milk cleanser", "cleansing milk", "cleansing cream"}, []domain.StepCategory{domain.StepCleanserCream}},
	{[]string{"deep clean", "pore clean", "charcoal"}, []domain.StepCategory{domain.StepCleanserDeep}},
	{[]string{"enzyme"}, []domain.StepCategory{domain.StepCleanserEnzyme}},
	{[]string{"gentle cleanser", "mild cleanser", "sensitive cleanser"}, []domain.StepCategory{domain.StepCleanserGentle}},

	// Toners
	{[]string{"exfoliating toner", "acid toner", "peeling toner"}, []domain.StepCategory{domain.StepTonerExfoliating}},
	{[]string{"soothing toner", "calming toner"}, []domain.StepCategory{domain.StepTonerSoothing}},
	{[]string{"hydrating toner", "moisture toner"}, []domain.StepCategory{domain.StepTonerHydrating}},
	{[]string{"balancing toner", "ph toner", "sebum toner"}, []domain.StepCategory{domain.StepTonerBalancing}},
	{[]string{"essence"}, []domain.StepCategory{domain.StepTonerEssence}},

	// Serums
	{[]string{"vitamin c", "vit c", "ascorb"}, []domain.StepCategory{domain.StepSerumVitaminC}},
	{[]string{"niacinamide"}, []domain.StepCategory{domain.StepSerumNiacinamide}},
	{[]string{"retinol serum", "retinal serum", "retinoid serum"}, []domain.StepCategory{domain.StepSerumRetinol}},
	{[]string{"peptide"}, []domain.StepCategory{domain.StepSerumPeptide}},
	{[]string{"soothing serum", "calming serum", "cica serum", "centella serum"}, []domain.StepCategory{domain.StepSerumSoothing}},
	{[]string{"brightening serum", "glow serum", "radiance serum"}, []domain.StepCategory{domain.StepSerumBrightening}},
	{[]string{"anti-aging serum", "anti aging serum", "firming serum", "wrinkle serum"}, []domain.StepCategory{domain.StepSerumAntiAging}},
	{[]string{"hydrating serum", "hyaluronic serum", "moisture serum"}, []domain.StepCategory{domain.StepSerumHydrating}},

	// Treatments
	{[]string{"benzoyl"}, []domain.StepCategory{domain.StepTreatmentBenzoylPeroxide}},
	{[]string{"azelaic"}, []domain.StepCategory{domain.StepTreatmentAzelaic}},
	{[]string{"adapalene", "tretinoin", "retinoid treatment", "retinol treatment", "retinol cream"}, []domain.StepCategory{domain.StepTreatmentRetinoid}},
	{[]string{"strong peel", "peel 10", "peel 20", "aha 10", "glycolic 10"}, []domain.StepCategory{domain.StepTreatmentExfoliantStrong}},
	{[]string{"peel", "exfoliant", "exfoliating treatment", "aha", "bha", "pha", "salicylic", "glycolic", "lactic"}, []domain.StepCategory{domain.StepTreatmentExfoliantMild}},
	{[]string{"acne treatment", "anti-acne", "blemish treatment", "anti blemish"}, []domain.StepCategory{domain.StepTreatmentAcne}},
	{[]string{"brightening treatment", "dark spot", "pigment"}, []domain.StepCategory{domain.StepTreatmentBrightening}},

	// Moisturizers
	{[]string{"gel cream", "gel moisturizer", "aqua cream", "water cream"}, []domain.StepCategory{domain.StepMoisturizerGel}},
	{[]string{"rich cream", "nourishing cream", "intensive cream"}, []domain.StepCategory{domain.StepMoisturizerRich}},
	{[]string{"light cream", "lightweight", "lotion"}, []domain.StepCategory{domain.StepMoisturizerLight}},
	{[]string{"barrier cream", "barrier repair", "ceramide cream"}, []domain.StepCategory{domain.StepMoisturizerBarrier}},
	{[]string{"soothing cream", "calming cream", "cica cream"}, []domain.StepCategory{domain.StepMoisturizerSoothing}},
	{[]string{"mattifying", "oil control", "oil-free moisturizer"}, []domain.StepCategory{domain.StepMoisturizerMattifying}},

	// Eye creams
	{[]string{"eye cream", "eye gel", "eye serum", "under eye", "under-eye"}, []domain.StepCategory{domain.StepEyeCreamHydrating}},
	{[]string{"anti-aging eye", "wrinkle eye", "firming eye"}, []domain.StepCategory{domain.StepEyeCreamAntiAging}},
	{[]string{"brightening eye", "dark circle"}, []domain.StepCategory{domain.StepEyeCreamBrightening}},

	// SPF
	{[]string{"mineral spf", "mineral sunscreen", "zinc sunscreen", "physical sunscreen"}, []domain.StepCategory{domain.StepSPFMineral}},
	{[]string{"spf 50", "spf50", "spf 100"}, []domain.StepCategory{domain.StepSPFHighProtection}},
	{[]string{"spf", "sunscreen", "sun cream", "uv protect"}, []domain.StepCategory{domain.StepSPFDaily}},

	// Masks
	{[]string{"clay mask", "mud mask"}, []domain.StepCategory{domain.StepMaskClay}},
	{[]string{"exfoliating mask", "peel mask", "peeling mask"}, []domain.StepCategory{domain.StepMaskExfoliating}},
	{[]string{"soothing mask", "calming mask"}, []domain.StepCategory{domain.StepMaskSoothing}},
	{[]string{"sleeping mask", "overnight mask", "night mask"}, []domain.StepCategory{domain.StepMaskSleeping}},
	{[]string{"hydrating mask", "sheet mask", "moisture mask"}, []domain.StepCategory{domain.StepMaskHydrating}},

	// Extras
	{[]string{"spot", "pimple patch"}, []domain.StepCategory{domain.StepSpotTreatment}},
	{[]string{"lip"}, []domain.StepCategory{domain.StepLipCare}},
	{[]string{"balm", "repair balm", "recovery balm"}, []domain.StepCategory{domain.StepBalmBarrierRepair}},
}

// ambiguousExpansions maps an unqualified family word to its most common
// sub-variants. Ambiguous legacy rows expand to several plausible categories
// rather than guessing one.
var ambiguousExpansions = map[string][]domain.StepCategory{
	"toner":       {domain.StepTonerHydrating, domain.StepTonerSoothing},
	"serum":       {domain.StepSerumHydrating, domain.StepSerumNiacinamide, domain.StepSerumSoothing},
	"moisturizer": {domain.StepMoisturizerLight, domain.StepMoisturizerBarrier},
	"cream":       {domain.StepMoisturizerLight, domain.StepMoisturizerBarrier},
	"cleanser":    {domain.StepCleanserGentle, domain.StepCleanserGel},
	"mask":        {domain.StepMaskHydrating, domain.StepMaskSoothing},
}

// familyFallbacks is the hard keyword fallback to the nearest base family,
// applied when no rule matched. A classified product is never silently
// dropped.
var familyFallbacks = []struct {
	keywords []string
	category domain.StepCategory
}{
	{[]string{"clean", "wash"}, domain.StepCleanserGentle},
	{[]string{"ton"}, domain.StepTonerHydrating},
	{[]string{"serum", "ampoule", "booster"}, domain.StepSerumHydrating},
	{[]string{"treat", "active"}, domain.StepTreatmentAzelaic},
	{[]string{"moistur", "cream", "emulsion"}, domain.StepMoisturizerLight},
	{[]string{"eye"}, domain.StepEyeCreamHydrating},
	{[]string{"sun", "spf", "uv"}, domain.StepSPFDaily},
	{[]string{"mask"}, domain.StepMaskHydrating},
}

// Classify maps a raw (step, category) pair from a catalog entry into the
// canonical step categories it plausibly belongs to. The function is pure and
// total: identical input yields identical output, and any non-empty input
// yields at least one category via the family fallback.
func Classify(rawStep, rawCategory string, hint domain.SkinType) []domain.StepCategory {
	text := strings.ToLower(strings.TrimSpace(rawStep + " " + rawCategory))
	if text == "" {
		return nil
	}

	var out []domain.StepCategory
	seen := make(map[domain.StepCategory]bool)
	add := func(cats ...domain.StepCategory) {
		for _, c := range cats {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}

	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				add(rule.categories...)
				break
			}
		}
	}

	// Oil-based cleansers double as a generic gentle cleanser.
	if isCleanserText(text) && containsAny(text, oilKeywords) {
		add(domain.StepCleanserOil, domain.StepCleanserGentle)
	}

	// A vitamin-C serum must never collapse into the hydrating bucket, even
	// when the label also advertises hydration.
	if seen[domain.StepSerumVitaminC] {
		out = remove(out, domain.StepSerumHydrating)
		delete(seen, domain.StepSerumHydrating)
	}

	// Unqualified family words expand to the common sub-variants.
	if len(out) == 0 {
		for word, cats := range ambiguousExpansions {
			if text == word || text == word+"s" {
				add(cats...)
				break
			}
		}
	}

	// Hard fallback to the nearest base family; never drop a product.
	if len(out) == 0 {
		for _, fb := range familyFallbacks {
			if containsAny(text, fb.keywords) {
				add(fb.category)
				break
			}
		}
	}
	if len(out) == 0 {
		if hint == domain.SkinDry || hint == domain.SkinCombinationDry {
			add(domain.StepMoisturizerRich)
		} else {
			add(domain.StepMoisturizerLight)
		}
	}

	return out
}

func isCleanserText(text string) bool {
	return strings.Contains(text, "clean") || strings.Contains(text, "wash")
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func remove(cats []domain.StepCategory, target domain.StepCategory) []domain.StepCategory {
	out := cats[:0]
	for _, c := range cats {
		if c != target {
			out = append(out, c)
		}
	}
	return out
}
