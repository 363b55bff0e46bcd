package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dermaplan/engine/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		rawStep     string
		rawCategory string
		want        []domain.StepCategory
	}{
		{
			name:    "micellar water",
			rawStep: "cleanser", rawCategory: "micellar water",
			want: []domain.StepCategory{domain.StepCleanserMicellar},
		},
		{
			name:    "foam cleanser",
			rawStep: "cleanser", rawCategory: "foam wash",
			want: []domain.StepCategory{domain.StepCleanserFoam},
		},
		{
			name:    "vitamin c serum",
			rawStep: "serum", rawCategory: "vitamin c 15%",
			want: []domain.StepCategory{domain.StepSerumVitaminC},
		},
		{
			name:    "exfoliating toner",
			rawStep: "toner", rawCategory: "acid toner",
			want: []domain.StepCategory{domain.StepTonerExfoliating},
		},
		{
			name:    "mineral spf",
			rawStep: "spf", rawCategory: "mineral sunscreen",
			want: []domain.StepCategory{domain.StepSPFMineral, domain.StepSPFDaily},
		},
		{
			name:    "azelaic treatment",
			rawStep: "treatment", rawCategory: "azelaic acid 10%",
			want: []domain.StepCategory{domain.StepTreatmentAzelaic},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.rawStep, tt.rawCategory, "")
			for _, want := range tt.want {
				assert.Contains(t, got, want, "Classify(%q, %q)", tt.rawStep, tt.rawCategory)
			}
		})
	}
}

func TestClassify_RealWorldCatalogSample(t *testing.T) {
	// A sample of raw (step, category) pairs lifted from production catalog
	// rows. Every pair must classify into at least one category, and the
	// expected category must be among them.
	tests := []struct {
		rawStep     string
		rawCategory string
		want        domain.StepCategory
	}{
		{"cleanser", "micellar water", domain.StepCleanserMicellar},
		{"cleanser", "foam cleanser", domain.StepCleanserFoam},
		{"cleanser", "gel cleanser", domain.StepCleanserGel},
		{"cleanser", "cream cleanser", domain.StepCleanserCream},
		{"cleanser", "charcoal deep clean", domain.StepCleanserDeep},
		{"cleanser", "enzyme powder wash", domain.StepCleanserEnzyme},
		{"cleanser", "mild cleanser", domain.StepCleanserGentle},
		{"cleanser", "cleansing oil", domain.StepCleanserOil},
		{"cleanser", "масло для умывания", domain.StepCleanserOil},
		{"toner", "acid toner", domain.StepTonerExfoliating},
		{"toner", "calming toner", domain.StepTonerSoothing},
		{"toner", "moisture toner", domain.StepTonerHydrating},
		{"toner", "ph balancing toner", domain.StepTonerBalancing},
		{"toner", "first treatment essence", domain.StepTonerEssence},
		{"toner", "", domain.StepTonerHydrating},
		{"serum", "vitamin c 15%", domain.StepSerumVitaminC},
		{"serum", "niacinamide 10% zinc", domain.StepSerumNiacinamide},
		{"serum", "retinol serum 0.3%", domain.StepSerumRetinol},
		{"serum", "copper peptide", domain.StepSerumPeptide},
		{"serum", "centella serum", domain.StepSerumSoothing},
		{"serum", "glow serum", domain.StepSerumBrightening},
		{"serum", "firming serum", domain.StepSerumAntiAging},
		{"serum", "hyaluronic serum", domain.StepSerumHydrating},
		{"ampoule", "hydration booster", domain.StepSerumHydrating},
		{"treatment", "benzoyl peroxide gel 2.5%", domain.StepTreatmentBenzoylPeroxide},
		{"treatment", "azelaic acid suspension 10%", domain.StepTreatmentAzelaic},
		{"treatment", "adapalene gel 0.1%", domain.StepTreatmentRetinoid},
		{"treatment", "glycolic 10 peel", domain.StepTreatmentExfoliantStrong},
		{"treatment", "bha liquid exfoliant 2%", domain.StepTreatmentExfoliantMild},
		{"treatment", "anti-acne gel", domain.StepTreatmentAcne},
		{"treatment", "dark spot corrector", domain.StepTreatmentBrightening},
		{"moisturizer", "water cream", domain.StepMoisturizerGel},
		{"moisturizer", "nourishing cream", domain.StepMoisturizerRich},
		{"moisturizer", "lightweight lotion", domain.StepMoisturizerLight},
		{"moisturizer", "ceramide cream", domain.StepMoisturizerBarrier},
		{"moisturizer", "cica cream", domain.StepMoisturizerSoothing},
		{"moisturizer", "oil control gel", domain.StepMoisturizerMattifying},
		{"moisturizer", "", domain.StepMoisturizerLight},
		{"eye cream", "hydrating eye gel", domain.StepEyeCreamHydrating},
		{"eye cream", "firming eye cream", domain.StepEyeCreamAntiAging},
		{"eye cream", "dark circle corrector", domain.StepEyeCreamBrightening},
		{"spf", "mineral sunscreen zinc oxide", domain.StepSPFMineral},
		{"spf", "sunscreen spf 50", domain.StepSPFHighProtection},
		{"sunscreen", "daily uv protect fluid", domain.StepSPFDaily},
		{"mask", "mud mask", domain.StepMaskClay},
		{"mask", "peeling mask", domain.StepMaskExfoliating},
		{"mask", "calming mask", domain.StepMaskSoothing},
		{"mask", "overnight mask", domain.StepMaskSleeping},
		{"mask", "sheet mask", domain.StepMaskHydrating},
		{"spot treatment", "pimple patch", domain.StepSpotTreatment},
		{"lip care", "lip balm", domain.StepLipCare},
		{"balm", "barrier repair balm", domain.StepBalmBarrierRepair},
	}

	covered := make(map[domain.StepType]bool)
	for _, tt := range tests {
		got := Classify(tt.rawStep, tt.rawCategory, "")
		require.NotEmpty(t, got, "Classify(%q, %q) must place the product somewhere", tt.rawStep, tt.rawCategory)
		assert.Contains(t, got, tt.want, "Classify(%q, %q)", tt.rawStep, tt.rawCategory)
		for _, c := range got {
			covered[domain.StepTypeOf(c)] = true
		}
	}

	families := []domain.StepType{
		domain.StepTypeCleanser, domain.StepTypeToner, domain.StepTypeSerum,
		domain.StepTypeTreatment, domain.StepTypeMoisturizer, domain.StepTypeEyeCream,
		domain.StepTypeSPF, domain.StepTypeMask, domain.StepTypeSpotTreatment,
		domain.StepTypeLipCare, domain.StepTypeBalm,
	}
	for _, family := range families {
		assert.True(t, covered[family], "sample never reached the %s family", family)
	}
}

func TestClassify_OilCleanserDoubleRegistration(t *testing.T) {
	got := Classify("cleanser", "cleansing oil", "")
	assert.Contains(t, got, domain.StepCleanserOil)
	assert.Contains(t, got, domain.StepCleanserGentle, "oil cleansers double as generic gentle cleansers")

	localized := Classify("очищение", "гидрофильное масло face wash", "")
	assert.Contains(t, localized, domain.StepCleanserOil, "localized oil spelling must register")
}

func TestClassify_VitaminCNeverHydrating(t *testing.T) {
	got := Classify("serum", "vitamin c hydrating serum", "")
	assert.Contains(t, got, domain.StepSerumVitaminC)
	assert.NotContains(t, got, domain.StepSerumHydrating,
		"vitamin C must not collapse into the hydrating bucket")
}

func TestClassify_AmbiguousExpansion(t *testing.T) {
	got := Classify("serum", "", "")
	require.NotEmpty(t, got)
	assert.Contains(t, got, domain.StepSerumHydrating)
	assert.Contains(t, got, domain.StepSerumNiacinamide)
}

func TestClassify_FallbackByHint(t *testing.T) {
	dry := Classify("daily staple", "", domain.SkinDry)
	assert.Equal(t, []domain.StepCategory{domain.StepMoisturizerRich}, dry)

	oily := Classify("daily staple", "", domain.SkinOily)
	assert.Equal(t, []domain.StepCategory{domain.StepMoisturizerLight}, oily)
}

func TestClassify_Empty(t *testing.T) {
	assert.Nil(t, Classify("", "", domain.SkinDry))
}

func TestClassify_Deterministic(t *testing.T) {
	for i := 0; i < 5; i++ {
		first := Classify("treatment", "glycolic peel", "")
		second := Classify("treatment", "glycolic peel", "")
		assert.Equal(t, first, second)
	}
}
