package steps

import "github.com/dermaplan/engine/internal/domain"

// safeSubstitutes lists, per step category, the same-family variants that are
// safe to swap in when the exact category has no products. The lists are
// deliberately conservative for sensitive families: a hydrating serum request
// must never silently become a vitamin-C serum, because that changes the
// safety and time-of-day profile of the step.
var safeSubstitutes = map[domain.StepCategory][]domain.StepCategory{
	// Cleansers: any gentle variant covers any other cleanser.
	domain.StepCleanserGel:      {domain.StepCleanserGentle, domain.StepCleanserFoam, domain.StepCleanserMicellar},
	domain.StepCleanserFoam:     {domain.StepCleanserGel, domain.StepCleanserGentle, domain.StepCleanserMicellar},
	domain.StepCleanserCream:    {domain.StepCleanserGentle, domain.StepCleanserMicellar, domain.StepCleanserOil},
	domain.StepCleanserOil:      {domain.StepCleanserCream, domain.StepCleanserGentle},
	domain.StepCleanserMicellar: {domain.StepCleanserGentle, domain.StepCleanserCream},
	domain.StepCleanserGentle:   {domain.StepCleanserMicellar, domain.StepCleanserCream, domain.StepCleanserGel},
	domain.StepCleanserDeep:     {domain.StepCleanserGel, domain.StepCleanserFoam},
	domain.StepCleanserEnzyme:   {domain.StepCleanserGentle, domain.StepCleanserGel},

	// Toners: exfoliating never substitutes for the mild variants.
	domain.StepTonerHydrating:   {domain.StepTonerEssence, domain.StepTonerSoothing},
	domain.StepTonerSoothing:    {domain.StepTonerHydrating, domain.StepTonerEssence},
	domain.StepTonerExfoliating: {domain.StepTonerBalancing},
	domain.StepTonerBalancing:   {domain.StepTonerHydrating},
	domain.StepTonerEssence:     {domain.StepTonerHydrating},

	// Serums: actives only substitute within comparable safety envelopes.
	domain.StepSerumHydrating:   {domain.StepSerumSoothing, domain.StepSerumPeptide},
	domain.StepSerumNiacinamide: {domain.StepSerumBrightening, domain.StepSerumHydrating},
	domain.StepSerumVitaminC:    {domain.StepSerumBrightening},
	domain.StepSerumRetinol:     {domain.StepSerumAntiAging},
	domain.StepSerumPeptide:     {domain.StepSerumAntiAging, domain.StepSerumHydrating},
	domain.StepSerumSoothing:    {domain.StepSerumHydrating},
	domain.StepSerumBrightening: {domain.StepSerumNiacinamide},
	domain.StepSerumAntiAging:   {domain.StepSerumPeptide},

	// Treatments.
	domain.StepTreatmentAcne:            {domain.StepTreatmentAzelaic, domain.StepSpotTreatment},
	domain.StepTreatmentExfoliantMild:   {domain.StepTonerExfoliating},
	domain.StepTreatmentExfoliantStrong: {domain.StepTreatmentExfoliantMild},
	domain.StepTreatmentRetinoid:        {domain.StepSerumRetinol},
	domain.StepTreatmentAzelaic:         {domain.StepTreatmentAcne},
	domain.StepTreatmentBenzoylPeroxide: {domain.StepTreatmentAcne, domain.StepSpotTreatment},
	domain.StepTreatmentBrightening:     {domain.StepSerumBrightening},

	// Moisturizers.
	domain.StepMoisturizerLight:      {domain.StepMoisturizerGel, domain.StepMoisturizerBarrier},
	domain.StepMoisturizerRich:       {domain.StepMoisturizerBarrier, domain.StepMoisturizerSoothing},
	domain.StepMoisturizerGel:        {domain.StepMoisturizerLight},
	domain.StepMoisturizerBarrier:    {domain.StepMoisturizerSoothing, domain.StepMoisturizerRich},
	domain.StepMoisturizerSoothing:   {domain.StepMoisturizerBarrier},
	domain.StepMoisturizerMattifying: {domain.StepMoisturizerGel, domain.StepMoisturizerLight},

	// Eye creams.
	domain.StepEyeCreamHydrating:   {domain.StepEyeCreamBrightening},
	domain.StepEyeCreamAntiAging:   {domain.StepEyeCreamHydrating},
	domain.StepEyeCreamBrightening: {domain.StepEyeCreamHydrating},

	// SPF: any SPF covers any other.
	domain.StepSPFDaily:          {domain.StepSPFMineral, domain.StepSPFHighProtection},
	domain.StepSPFMineral:        {domain.StepSPFDaily, domain.StepSPFHighProtection},
	domain.StepSPFHighProtection: {domain.StepSPFDaily, domain.StepSPFMineral},

	// Masks.
	domain.StepMaskHydrating:   {domain.StepMaskSleeping, domain.StepMaskSoothing},
	domain.StepMaskClay:        {domain.StepMaskExfoliating},
	domain.StepMaskExfoliating: {domain.StepMaskClay},
	domain.StepMaskSoothing:    {domain.StepMaskHydrating},
	domain.StepMaskSleeping:    {domain.StepMaskHydrating},

	// Extras have no in-family substitutes.
	domain.StepSpotTreatment:     nil,
	domain.StepLipCare:           nil,
	domain.StepBalmBarrierRepair: {domain.StepMoisturizerBarrier},
}

// SafeSubstitutes returns the ordered substitute list for a category.
// The list never crosses into a variant with a stronger active profile.
func SafeSubstitutes(c domain.StepCategory) []domain.StepCategory {
	return safeSubstitutes[c]
}
