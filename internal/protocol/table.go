package protocol

import (
	"fmt"
	"time"

	"github.com/dermaplan/engine/internal/domain"
)

// Registry holds the validated protocol table. Immutable after construction.
type Registry struct {
	byCondition map[Condition]*Protocol
}

// NewRegistry builds and validates the protocol table.
func NewRegistry() (*Registry, error) {
	r := &Registry{byCondition: make(map[Condition]*Protocol)}
	for _, p := range []*Protocol{
		rosaceaProtocol(), atopicProtocol(), acneProtocol(),
		pigmentationProtocol(), normalProtocol(),
	} {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("protocol table: %w", err)
		}
		r.byCondition[p.Condition] = p
	}
	return r, nil
}

// MustRegistry builds the table and panics on a broken definition. The table
// is static data; a validation failure is a programmer error.
func MustRegistry() *Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the protocol for a condition, falling back to normal.
func (r *Registry) Get(c Condition) *Protocol {
	if p, ok := r.byCondition[c]; ok {
		return p
	}
	return r.byCondition[ConditionNormal]
}

// Conditions returns every registered condition, in stable order.
func (r *Registry) Conditions() []Condition {
	return []Condition{
		ConditionRosacea, ConditionAtopicDermatitis, ConditionAcne,
		ConditionPigmentation, ConditionNormal,
	}
}

func rosaceaProtocol() *Protocol {
	return &Protocol{
		Condition: ConditionRosacea,
		Strict:    true,
		AllowedIngredients: []domain.ActiveIngredient{
			domain.IngredientAzelaicAcid, domain.IngredientNiacinamide,
			domain.IngredientCeramides, domain.IngredientHyaluronicAcid,
			domain.IngredientPanthenol, domain.IngredientCentella,
			domain.IngredientZinc, domain.IngredientSqualane,
			domain.IngredientAllantoin,
		},
		ForbiddenIngredients: []domain.ActiveIngredient{
			domain.IngredientRetinol, domain.IngredientRetinoid,
			domain.IngredientAdapalene, domain.IngredientTretinoin,
			domain.IngredientAHA, domain.IngredientBHA,
			domain.IngredientSalicylicAcid, domain.IngredientGlycolicAcid,
			domain.IngredientBenzoylPeroxide, domain.IngredientAscorbicAcid,
		},
		AllowedSteps: []domain.StepCategory{
			domain.StepCleanserGentle, domain.StepCleanserMicellar,
			domain.StepCleanserCream,
			domain.StepTonerSoothing, domain.StepTonerHydrating,
			domain.StepSerumSoothing, domain.StepSerumHydrating,
			domain.StepSerumNiacinamide,
			domain.StepTreatmentAzelaic,
			domain.StepMoisturizerBarrier, domain.StepMoisturizerSoothing,
			domain.StepMoisturizerRich,
			domain.StepEyeCreamHydrating,
			domain.StepSPFMineral, domain.StepSPFDaily,
			domain.StepMaskSoothing, domain.StepMaskHydrating,
			domain.StepBalmBarrierRepair, domain.StepLipCare,
		},
		ForbiddenSteps: []domain.StepCategory{
			domain.StepCleanserDeep, domain.StepCleanserEnzyme,
			domain.StepTonerExfoliating,
			domain.StepTreatmentExfoliantMild, domain.StepTreatmentExfoliantStrong,
			domain.StepTreatmentRetinoid, domain.StepTreatmentBenzoylPeroxide,
			domain.StepSerumRetinol, domain.StepSerumVitaminC,
			domain.StepMaskClay, domain.StepMaskExfoliating,
		},
		Template: RoutineTemplate{
			Morning: []domain.StepCategory{
				domain.StepCleanserGentle, domain.StepTonerSoothing,
				domain.StepSerumSoothing, domain.StepMoisturizerBarrier,
				domain.StepSPFMineral,
			},
			Evening: []domain.StepCategory{
				domain.StepCleanserGentle, domain.StepTreatmentAzelaic,
				domain.StepMoisturizerSoothing, domain.StepBalmBarrierRepair,
			},
			Weekly: []domain.StepCategory{domain.StepMaskSoothing},
		},
		Titration: Titration{
			domain.IngredientAzelaicAcid: {2, 3, 4, 5},
		},
		Warnings: []string{
			"avoid hot water and physical scrubs",
			"introduce azelaic acid gradually and stop on persistent burning",
		},
	}
}

func atopicProtocol() *Protocol {
	return &Protocol{
		Condition: ConditionAtopicDermatitis,
		Strict:    true,
		AllowedIngredients: []domain.ActiveIngredient{
			domain.IngredientCeramides, domain.IngredientPanthenol,
			domain.IngredientSqualane, domain.IngredientUrea,
			domain.IngredientAllantoin, domain.IngredientHyaluronicAcid,
			domain.IngredientCentella, domain.IngredientNiacinamide,
		},
		ForbiddenIngredients: []domain.ActiveIngredient{
			domain.IngredientRetinol, domain.IngredientRetinoid,
			domain.IngredientAdapalene, domain.IngredientTretinoin,
			domain.IngredientAHA, domain.IngredientBHA, domain.IngredientPHA,
			domain.IngredientSalicylicAcid, domain.IngredientGlycolicAcid,
			domain.IngredientLacticAcid, domain.IngredientBenzoylPeroxide,
			domain.IngredientVitaminC, domain.IngredientAscorbicAcid,
		},
		AllowedSteps: []domain.StepCategory{
			domain.StepCleanserCream, domain.StepCleanserGentle,
			domain.StepCleanserOil, domain.StepCleanserMicellar,
			domain.StepTonerSoothing,
			domain.StepSerumSoothing, domain.StepSerumHydrating,
			domain.StepMoisturizerBarrier, domain.StepMoisturizerRich,
			domain.StepMoisturizerSoothing,
			domain.StepEyeCreamHydrating,
			domain.StepSPFMineral, domain.StepSPFDaily,
			domain.StepMaskHydrating, domain.StepMaskSoothing,
			domain.StepBalmBarrierRepair, domain.StepLipCare,
		},
		ForbiddenSteps: []domain.StepCategory{
			domain.StepCleanserDeep, domain.StepCleanserEnzyme,
			domain.StepCleanserFoam,
			domain.StepTonerExfoliating, domain.StepTonerBalancing,
			domain.StepTreatmentAcne, domain.StepTreatmentExfoliantMild,
			domain.StepTreatmentExfoliantStrong, domain.StepTreatmentRetinoid,
			domain.StepTreatmentBenzoylPeroxide,
			domain.StepSerumRetinol, domain.StepSerumVitaminC,
			domain.StepMaskClay, domain.StepMaskExfoliating,
			domain.StepMoisturizerMattifying,
		},
		Template: RoutineTemplate{
			Morning: []domain.StepCategory{
				domain.StepCleanserCream, domain.StepMoisturizerBarrier,
				domain.StepSPFMineral,
			},
			Evening: []domain.StepCategory{
				domain.StepCleanserGentle, domain.StepSerumSoothing,
				domain.StepMoisturizerRich, domain.StepBalmBarrierRepair,
			},
			Weekly: []domain.StepCategory{domain.StepMaskHydrating},
		},
		Titration: Titration{},
		Warnings: []string{
			"moisturize within three minutes of cleansing",
			"patch-test every new product on the inner forearm first",
		},
	}
}

func acneProtocol() *Protocol {
	return &Protocol{
		Condition: ConditionAcne,
		Strict:    false,
		AllowedIngredients: []domain.ActiveIngredient{
			domain.IngredientSalicylicAcid, domain.IngredientBHA,
			domain.IngredientNiacinamide, domain.IngredientAzelaicAcid,
			domain.IngredientBenzoylPeroxide, domain.IngredientRetinol,
			domain.IngredientAdapalene, domain.IngredientZinc,
			domain.IngredientHyaluronicAcid,
		},
		ForbiddenIngredients: []domain.ActiveIngredient{},
		AllowedSteps: []domain.StepCategory{
			domain.StepCleanserGel, domain.StepCleanserFoam,
			domain.StepTonerBalancing,
			domain.StepSerumNiacinamide,
			domain.StepTreatmentAcne, domain.StepTreatmentExfoliantMild,
			domain.StepTreatmentBenzoylPeroxide, domain.StepTreatmentRetinoid,
			domain.StepTreatmentAzelaic,
			domain.StepMoisturizerLight, domain.StepMoisturizerGel,
			domain.StepSPFDaily,
			domain.StepMaskClay, domain.StepSpotTreatment,
		},
		ForbiddenSteps: []domain.StepCategory{
			domain.StepCleanserOil, domain.StepMoisturizerRich,
		},
		Template: RoutineTemplate{
			Morning: []domain.StepCategory{
				domain.StepCleanserGel, domain.StepTonerBalancing,
				domain.StepSerumNiacinamide, domain.StepMoisturizerLight,
				domain.StepSPFDaily,
			},
			Evening: []domain.StepCategory{
				domain.StepCleanserGel, domain.StepTreatmentExfoliantMild,
				domain.StepSpotTreatment, domain.StepMoisturizerLight,
			},
			Weekly: []domain.StepCategory{domain.StepMaskClay},
		},
		Titration: Titration{
			domain.IngredientSalicylicAcid:   {2, 3, 4, 5},
			domain.IngredientRetinol:         {1, 2, 3, 3},
			domain.IngredientBenzoylPeroxide: {1, 2, 2, 3},
		},
		Cycling: []CyclingRule{
			{
				Ingredient: domain.IngredientBenzoylPeroxide,
				Frequency:  FrequencyTwiceWeekly,
				Weekdays:   []time.Weekday{time.Wednesday, time.Saturday},
			},
			{Ingredient: domain.IngredientRetinol, Frequency: FrequencyAlternateDays},
		},
		Warnings: []string{
			"do not layer benzoyl peroxide with retinoids in one routine",
		},
	}
}

func pigmentationProtocol() *Protocol {
	return &Protocol{
		Condition: ConditionPigmentation,
		Strict:    false,
		AllowedIngredients: []domain.ActiveIngredient{
			domain.IngredientVitaminC, domain.IngredientAscorbicAcid,
			domain.IngredientNiacinamide, domain.IngredientAzelaicAcid,
			domain.IngredientAHA, domain.IngredientGlycolicAcid,
			domain.IngredientLacticAcid, domain.IngredientRetinol,
		},
		ForbiddenIngredients: []domain.ActiveIngredient{
			domain.IngredientBenzoylPeroxide,
		},
		AllowedSteps: []domain.StepCategory{
			domain.StepCleanserGentle, domain.StepCleanserGel,
			domain.StepTonerExfoliating, domain.StepTonerHydrating,
			domain.StepSerumVitaminC, domain.StepSerumBrightening,
			domain.StepSerumNiacinamide, domain.StepSerumRetinol,
			domain.StepTreatmentBrightening, domain.StepTreatmentExfoliantMild,
			domain.StepTreatmentAzelaic,
			domain.StepMoisturizerLight, domain.StepMoisturizerBarrier,
			domain.StepEyeCreamBrightening,
			domain.StepSPFHighProtection,
			domain.StepMaskExfoliating,
		},
		ForbiddenSteps: []domain.StepCategory{
			domain.StepTreatmentBenzoylPeroxide,
		},
		Template: RoutineTemplate{
			Morning: []domain.StepCategory{
				domain.StepCleanserGentle, domain.StepSerumVitaminC,
				domain.StepMoisturizerLight, domain.StepSPFHighProtection,
			},
			Evening: []domain.StepCategory{
				domain.StepCleanserGentle, domain.StepTreatmentBrightening,
				domain.StepTreatmentExfoliantMild, domain.StepMoisturizerBarrier,
			},
			Weekly: []domain.StepCategory{domain.StepMaskExfoliating},
		},
		Titration: Titration{
			domain.IngredientGlycolicAcid: {1, 2, 2, 3},
			domain.IngredientRetinol:      {1, 1, 2, 2},
			domain.IngredientVitaminC:     {3, 5, 7, 7},
		},
		Cycling: []CyclingRule{
			{Ingredient: domain.IngredientGlycolicAcid, Frequency: FrequencyTwiceWeekly},
		},
		Warnings: []string{
			"daily high-protection SPF is mandatory while using brightening actives",
		},
	}
}

func normalProtocol() *Protocol {
	return &Protocol{
		Condition: ConditionNormal,
		Strict:    false,
		AllowedIngredients: []domain.ActiveIngredient{
			domain.IngredientNiacinamide, domain.IngredientHyaluronicAcid,
			domain.IngredientPeptides, domain.IngredientCeramides,
			domain.IngredientVitaminC, domain.IngredientPanthenol,
			domain.IngredientSqualane,
		},
		ForbiddenIngredients: []domain.ActiveIngredient{},
		AllowedSteps:         []domain.StepCategory{},
		ForbiddenSteps:       []domain.StepCategory{},
		Template: RoutineTemplate{
			Morning: []domain.StepCategory{
				domain.StepCleanserGel, domain.StepTonerHydrating,
				domain.StepSerumHydrating, domain.StepEyeCreamHydrating,
				domain.StepMoisturizerLight, domain.StepSPFDaily,
			},
			Evening: []domain.StepCategory{
				domain.StepCleanserGel, domain.StepTonerHydrating,
				domain.StepSerumNiacinamide, domain.StepMoisturizerLight,
				domain.StepLipCare,
			},
			Weekly: []domain.StepCategory{domain.StepMaskHydrating},
		},
		Titration: Titration{},
	}
}
