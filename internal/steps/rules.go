package steps

import "github.com/dermaplan/engine/internal/domain"

// CategoryRule is the eligibility rule for one step category.
//
// AllowedSkinTypes empty means any skin type. SensitivityCeiling lists the
// sensitivity levels at which the step is forbidden. GoalAffinities are
// non-binding and used for ranking only. IgnoreSkinTypeWhenSensitive marks
// soothing/barrier steps whose skin-type restriction is waived for sensitive
// or rosacea-prone profiles.
type CategoryRule struct {
	Category                    domain.StepCategory
	AllowedSkinTypes            []domain.SkinType
	SensitivityCeiling          []domain.Sensitivity
	ForbiddenContraindications  []string
	ForbiddenDiagnoses          []string
	GoalAffinities              []string
	IgnoreSkinTypeWhenSensitive bool
}

// Skin-type shorthands used by the rule table.
var (
	oilySkin    = []domain.SkinType{domain.SkinOily, domain.SkinCombinationOily}
	oilyNormal  = []domain.SkinType{domain.SkinOily, domain.SkinCombinationOily, domain.SkinNormal}
	drySkin     = []domain.SkinType{domain.SkinDry, domain.SkinCombinationDry}
	dryNormal   = []domain.SkinType{domain.SkinDry, domain.SkinCombinationDry, domain.SkinNormal}
	anySkin     []domain.SkinType
)

// Sensitivity ceilings: acids and exfoliants are forbidden at high
// and very_high; deep-cleansing and clay steps only at very_high.
var (
	exfoliantCeiling = []domain.Sensitivity{domain.SensitivityHigh, domain.SensitivityVeryHigh}
	deepCeiling      = []domain.Sensitivity{domain.SensitivityVeryHigh}
)

const (
	diagRosacea = "rosacea"
	diagAtopic  = "atopic"
	diagEczema  = "eczema"

	contraPregnancy = "pregnancy"
	contraRetinoid  = "retinoid_intolerance"
	contraExfoliant = "exfoliant_intolerance"
	contraFragrance = "fragrance_allergy"
)

var categoryRules = map[domain.StepCategory]CategoryRule{
	// --- Cleansers ---
	domain.StepCleanserGel:      {AllowedSkinTypes: oilyNormal},
	domain.StepCleanserFoam:     {AllowedSkinTypes: oilySkin, SensitivityCeiling: deepCeiling},
	domain.StepCleanserCream:    {AllowedSkinTypes: dryNormal},
	domain.StepCleanserOil:      {AllowedSkinTypes: anySkin},
	domain.StepCleanserMicellar: {AllowedSkinTypes: anySkin, IgnoreSkinTypeWhenSensitive: true},
	domain.StepCleanserGentle:   {AllowedSkinTypes: anySkin, IgnoreSkinTypeWhenSensitive: true},
	domain.StepCleanserDeep: {
		AllowedSkinTypes:   oilySkin,
		SensitivityCeiling: deepCeiling,
		ForbiddenDiagnoses: []string{diagRosacea, diagAtopic, diagEczema},
	},
	domain.StepCleanserEnzyme: {
		SensitivityCeiling: exfoliantCeiling,
		ForbiddenDiagnoses: []string{diagRosacea},
	},

	// --- Toners ---
	domain.StepTonerHydrating: {GoalAffinities: []string{"hydration"}},
	domain.StepTonerSoothing:  {IgnoreSkinTypeWhenSensitive: true, GoalAffinities: []string{"soothing"}},
	domain.StepTonerExfoliating: {
		SensitivityCeiling:         exfoliantCeiling,
		ForbiddenDiagnoses:         []string{diagRosacea, diagAtopic, diagEczema},
		ForbiddenContraindications: []string{contraExfoliant},
		GoalAffinities:             []string{"texture", "pores"},
	},
	domain.StepTonerBalancing: {AllowedSkinTypes: oilySkin, GoalAffinities: []string{"pores"}},
	domain.StepTonerEssence:   {},

	// --- Serums ---
	domain.StepSerumHydrating:   {GoalAffinities: []string{"hydration"}},
	domain.StepSerumNiacinamide: {GoalAffinities: []string{"pores", "brightening", "oil_control"}},
	domain.StepSerumVitaminC: {
		SensitivityCeiling: deepCeiling,
		GoalAffinities:     []string{"brightening", "anti_aging", "pigmentation"},
	},
	domain.StepSerumRetinol: {
		SensitivityCeiling:         exfoliantCeiling,
		ForbiddenDiagnoses:         []string{diagRosacea, diagAtopic, diagEczema},
		ForbiddenContraindications: []string{contraPregnancy, contraRetinoid},
		GoalAffinities:             []string{"anti_aging", "acne", "texture"},
	},
	domain.StepSerumPeptide:  {GoalAffinities: []string{"anti_aging", "firmness"}},
	domain.StepSerumSoothing: {IgnoreSkinTypeWhenSensitive: true, GoalAffinities: []string{"soothing"}},
	domain.StepSerumBrightening: {
		SensitivityCeiling: deepCeiling,
		GoalAffinities:     []string{"brightening", "pigmentation"},
	},
	domain.StepSerumAntiAging: {
		SensitivityCeiling: deepCeiling,
		GoalAffinities:     []string{"anti_aging"},
	},

	// --- Treatments ---
	domain.StepTreatmentAcne: {
		AllowedSkinTypes:   oilyNormal,
		SensitivityCeiling: deepCeiling,
		ForbiddenDiagnoses: []string{diagRosacea, diagAtopic, diagEczema},
		GoalAffinities:     []string{"acne"},
	},
	domain.StepTreatmentExfoliantMild: {
		SensitivityCeiling:         exfoliantCeiling,
		ForbiddenDiagnoses:         []string{diagRosacea, diagAtopic, diagEczema},
		ForbiddenContraindications: []string{contraExfoliant},
		GoalAffinities:             []string{"texture", "pores"},
	},
	domain.StepTreatmentExfoliantStrong: {
		SensitivityCeiling:         exfoliantCeiling,
		ForbiddenDiagnoses:         []string{diagRosacea, diagAtopic, diagEczema},
		ForbiddenContraindications: []string{contraExfoliant},
		GoalAffinities:             []string{"texture", "acne"},
	},
	domain.StepTreatmentRetinoid: {
		SensitivityCeiling:         exfoliantCeiling,
		ForbiddenDiagnoses:         []string{diagRosacea, diagAtopic, diagEczema},
		ForbiddenContraindications: []string{contraPregnancy, contraRetinoid},
		GoalAffinities:             []string{"anti_aging", "acne"},
	},
	domain.StepTreatmentAzelaic: {
		IgnoreSkinTypeWhenSensitive: true,
		GoalAffinities:              []string{"acne", "rosacea", "pigmentation"},
	},
	domain.StepTreatmentBenzoylPeroxide: {
		AllowedSkinTypes:   oilyNormal,
		SensitivityCeiling: exfoliantCeiling,
		ForbiddenDiagnoses: []string{diagRosacea, diagAtopic, diagEczema},
		GoalAffinities:     []string{"acne"},
	},
	domain.StepTreatmentBrightening: {
		SensitivityCeiling: deepCeiling,
		GoalAffinities:     []string{"brightening", "pigmentation"},
	},

	// --- Moisturizers ---
	domain.StepMoisturizerLight:    {AllowedSkinTypes: oilyNormal},
	domain.StepMoisturizerRich:     {AllowedSkinTypes: drySkin},
	domain.StepMoisturizerGel:      {AllowedSkinTypes: oilySkin},
	domain.StepMoisturizerBarrier:  {IgnoreSkinTypeWhenSensitive: true, GoalAffinities: []string{"barrier"}},
	domain.StepMoisturizerSoothing: {IgnoreSkinTypeWhenSensitive: true, GoalAffinities: []string{"soothing"}},
	domain.StepMoisturizerMattifying: {
		AllowedSkinTypes:   oilySkin,
		SensitivityCeiling: deepCeiling,
		GoalAffinities:     []string{"oil_control"},
	},

	// --- Eye creams ---
	domain.StepEyeCreamHydrating:   {GoalAffinities: []string{"hydration"}},
	domain.StepEyeCreamAntiAging:   {GoalAffinities: []string{"anti_aging"}},
	domain.StepEyeCreamBrightening: {GoalAffinities: []string{"brightening"}},

	// --- SPF ---
	domain.StepSPFDaily:          {},
	domain.StepSPFMineral:        {IgnoreSkinTypeWhenSensitive: true},
	domain.StepSPFHighProtection: {GoalAffinities: []string{"pigmentation"}},

	// --- Masks ---
	domain.StepMaskHydrating: {GoalAffinities: []string{"hydration"}},
	domain.StepMaskClay: {
		AllowedSkinTypes:   oilySkin,
		SensitivityCeiling: deepCeiling,
		ForbiddenDiagnoses: []string{diagAtopic, diagEczema},
		GoalAffinities:     []string{"pores", "oil_control"},
	},
	domain.StepMaskExfoliating: {
		SensitivityCeiling:         exfoliantCeiling,
		ForbiddenDiagnoses:         []string{diagRosacea, diagAtopic, diagEczema},
		ForbiddenContraindications: []string{contraExfoliant},
		GoalAffinities:             []string{"texture"},
	},
	domain.StepMaskSoothing: {IgnoreSkinTypeWhenSensitive: true, GoalAffinities: []string{"soothing"}},
	domain.StepMaskSleeping: {GoalAffinities: []string{"hydration"}},

	// --- Extras ---
	domain.StepSpotTreatment: {
		SensitivityCeiling: deepCeiling,
		GoalAffinities:     []string{"acne"},
	},
	domain.StepLipCare:           {},
	domain.StepBalmBarrierRepair: {IgnoreSkinTypeWhenSensitive: true, GoalAffinities: []string{"barrier", "soothing"}},
}

// RuleFor returns the eligibility rule for a category. Categories absent
// from the table get a permissive zero rule, so the gate stays total.
func RuleFor(c domain.StepCategory) CategoryRule {
	if r, ok := categoryRules[c]; ok {
		r.Category = c
		return r
	}
	return CategoryRule{Category: c}
}

// AllRules returns a copy of the rule table keyed by category.
func AllRules() map[domain.StepCategory]CategoryRule {
	out := make(map[domain.StepCategory]CategoryRule, len(categoryRules))
	for c := range categoryRules {
		out[c] = RuleFor(c)
	}
	return out
}
