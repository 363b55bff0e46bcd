package domain

// StepType is the base family a routine step belongs to. Every StepCategory
// maps to exactly one StepType via StepTypeOf.
type StepType string

const (
	StepTypeCleanser      StepType = "cleanser"
	StepTypeToner         StepType = "toner"
	StepTypeSerum         StepType = "serum"
	StepTypeTreatment     StepType = "treatment"
	StepTypeMoisturizer   StepType = "moisturizer"
	StepTypeEyeCream      StepType = "eye_cream"
	StepTypeSPF           StepType = "spf"
	StepTypeMask          StepType = "mask"
	StepTypeSpotTreatment StepType = "spot_treatment"
	StepTypeLipCare       StepType = "lip_care"
	StepTypeBalm          StepType = "balm"
)

// StepCategory is a canonical routine-step variant. The set is closed; raw
// catalog strings are mapped onto it by the steps package classifier.
type StepCategory string

const (
	// Cleansers
	StepCleanserGel      StepCategory = "cleanser_gel"
	StepCleanserFoam     StepCategory = "cleanser_foam"
	StepCleanserCream    StepCategory = "cleanser_cream"
	StepCleanserOil      StepCategory = "cleanser_oil"
	StepCleanserMicellar StepCategory = "cleanser_micellar"
	StepCleanserGentle   StepCategory = "cleanser_gentle"
	StepCleanserDeep     StepCategory = "cleanser_deep"
	StepCleanserEnzyme   StepCategory = "cleanser_enzyme"

	// Toners
	StepTonerHydrating   StepCategory = "toner_hydrating"
	StepTonerSoothing    StepCategory = "toner_soothing"
	StepTonerExfoliating StepCategory = "toner_exfoliating"
	StepTonerBalancing   StepCategory = "toner_balancing"
	StepTonerEssence     StepCategory = "toner_essence"

	// Serums
	StepSerumHydrating   StepCategory = "serum_hydrating"
	StepSerumNiacinamide StepCategory = "serum_niacinamide"
	StepSerumVitaminC    StepCategory = "serum_vitamin_c"
	StepSerumRetinol     StepCategory = "serum_retinol"
	StepSerumPeptide     StepCategory = "serum_peptide"
	StepSerumSoothing    StepCategory = "serum_soothing"
	StepSerumBrightening StepCategory = "serum_brightening"
	StepSerumAntiAging   StepCategory = "serum_anti_aging"

	// Treatments
	StepTreatmentAcne            StepCategory = "treatment_acne"
	StepTreatmentExfoliantMild   StepCategory = "treatment_exfoliant_mild"
	StepTreatmentExfoliantStrong StepCategory = "treatment_exfoliant_strong"
	StepTreatmentRetinoid        StepCategory = "treatment_retinoid"
	StepTreatmentAzelaic         StepCategory = "treatment_azelaic"
	StepTreatmentBenzoylPeroxide StepCategory = "treatment_benzoyl_peroxide"
	StepTreatmentBrightening     StepCategory = "treatment_brightening"

	// Moisturizers
	StepMoisturizerLight      StepCategory = "moisturizer_light"
	StepMoisturizerRich       StepCategory = "moisturizer_rich"
	StepMoisturizerGel        StepCategory = "moisturizer_gel"
	StepMoisturizerBarrier    StepCategory = "moisturizer_barrier"
	StepMoisturizerSoothing   StepCategory = "moisturizer_soothing"
	StepMoisturizerMattifying StepCategory = "moisturizer_mattifying"

	// Eye creams
	StepEyeCreamHydrating   StepCategory = "eye_cream_hydrating"
	StepEyeCreamAntiAging   StepCategory = "eye_cream_anti_aging"
	StepEyeCreamBrightening StepCategory = "eye_cream_brightening"

	// SPF
	StepSPFDaily          StepCategory = "spf_daily"
	StepSPFMineral        StepCategory = "spf_mineral"
	StepSPFHighProtection StepCategory = "spf_high_protection"

	// Masks
	StepMaskHydrating   StepCategory = "mask_hydrating"
	StepMaskClay        StepCategory = "mask_clay"
	StepMaskExfoliating StepCategory = "mask_exfoliating"
	StepMaskSoothing    StepCategory = "mask_soothing"
	StepMaskSleeping    StepCategory = "mask_sleeping"

	// Extras
	StepSpotTreatment     StepCategory = "spot_treatment"
	StepLipCare           StepCategory = "lip_care"
	StepBalmBarrierRepair StepCategory = "balm_barrier_repair"
)

// AllStepCategories lists every canonical step category, in stable order.
var AllStepCategories = []StepCategory{
	StepCleanserGel, StepCleanserFoam, StepCleanserCream, StepCleanserOil,
	StepCleanserMicellar, StepCleanserGentle, StepCleanserDeep, StepCleanserEnzyme,
	StepTonerHydrating, StepTonerSoothing, StepTonerExfoliating, StepTonerBalancing,
	StepTonerEssence,
	StepSerumHydrating, StepSerumNiacinamide, StepSerumVitaminC, StepSerumRetinol,
	StepSerumPeptide, StepSerumSoothing, StepSerumBrightening, StepSerumAntiAging,
	StepTreatmentAcne, StepTreatmentExfoliantMild, StepTreatmentExfoliantStrong,
	StepTreatmentRetinoid, StepTreatmentAzelaic, StepTreatmentBenzoylPeroxide,
	StepTreatmentBrightening,
	StepMoisturizerLight, StepMoisturizerRich, StepMoisturizerGel,
	StepMoisturizerBarrier, StepMoisturizerSoothing, StepMoisturizerMattifying,
	StepEyeCreamHydrating, StepEyeCreamAntiAging, StepEyeCreamBrightening,
	StepSPFDaily, StepSPFMineral, StepSPFHighProtection,
	StepMaskHydrating, StepMaskClay, StepMaskExfoliating, StepMaskSoothing,
	StepMaskSleeping,
	StepSpotTreatment, StepLipCare, StepBalmBarrierRepair,
}

// stepTypeByCategory is the total mapping from step category to base family.
var stepTypeByCategory = map[StepCategory]StepType{
	StepCleanserGel:      StepTypeCleanser,
	StepCleanserFoam:     StepTypeCleanser,
	StepCleanserCream:    StepTypeCleanser,
	StepCleanserOil:      StepTypeCleanser,
	StepCleanserMicellar: StepTypeCleanser,
	StepCleanserGentle:   StepTypeCleanser,
	StepCleanserDeep:     StepTypeCleanser,
	StepCleanserEnzyme:   StepTypeCleanser,

	StepTonerHydrating:   StepTypeToner,
	StepTonerSoothing:    StepTypeToner,
	StepTonerExfoliating: StepTypeToner,
	StepTonerBalancing:   StepTypeToner,
	StepTonerEssence:     StepTypeToner,

	StepSerumHydrating:   StepTypeSerum,
	StepSerumNiacinamide: StepTypeSerum,
	StepSerumVitaminC:    StepTypeSerum,
	StepSerumRetinol:     StepTypeSerum,
	StepSerumPeptide:     StepTypeSerum,
	StepSerumSoothing:    StepTypeSerum,
	StepSerumBrightening: StepTypeSerum,
	StepSerumAntiAging:   StepTypeSerum,

	StepTreatmentAcne:            StepTypeTreatment,
	StepTreatmentExfoliantMild:   StepTypeTreatment,
	StepTreatmentExfoliantStrong: StepTypeTreatment,
	StepTreatmentRetinoid:        StepTypeTreatment,
	StepTreatmentAzelaic:         StepTypeTreatment,
	StepTreatmentBenzoylPeroxide: StepTypeTreatment,
	StepTreatmentBrightening:     StepTypeTreatment,

	StepMoisturizerLight:      StepTypeMoisturizer,
	StepMoisturizerRich:       StepTypeMoisturizer,
	StepMoisturizerGel:        StepTypeMoisturizer,
	StepMoisturizerBarrier:    StepTypeMoisturizer,
	StepMoisturizerSoothing:   StepTypeMoisturizer,
	StepMoisturizerMattifying: StepTypeMoisturizer,

	StepEyeCreamHydrating:   StepTypeEyeCream,
	StepEyeCreamAntiAging:   StepTypeEyeCream,
	StepEyeCreamBrightening: StepTypeEyeCream,

	StepSPFDaily:          StepTypeSPF,
	StepSPFMineral:        StepTypeSPF,
	StepSPFHighProtection: StepTypeSPF,

	StepMaskHydrating:   StepTypeMask,
	StepMaskClay:        StepTypeMask,
	StepMaskExfoliating: StepTypeMask,
	StepMaskSoothing:    StepTypeMask,
	StepMaskSleeping:    StepTypeMask,

	StepSpotTreatment:     StepTypeSpotTreatment,
	StepLipCare:           StepTypeLipCare,
	StepBalmBarrierRepair: StepTypeBalm,
}

// StepTypeOf returns the base family for a step category. The mapping is total
// over AllStepCategories; unknown categories map to StepTypeTreatment so the
// function never returns an empty family for data that slipped past the
// classifier.
func StepTypeOf(c StepCategory) StepType {
	if t, ok := stepTypeByCategory[c]; ok {
		return t
	}
	return StepTypeTreatment
}
