package domain

import "testing"

func TestStepTypeOf_Total(t *testing.T) {
	for _, c := range AllStepCategories {
		st := StepTypeOf(c)
		if st == "" {
			t.Errorf("StepTypeOf(%s) returned empty step type", c)
		}
	}
}

func TestStepTypeOf_UnknownFallsBackToTreatment(t *testing.T) {
	if got := StepTypeOf(StepCategory("made_up_step")); got != StepTypeTreatment {
		t.Errorf("unknown category mapped to %s, want %s", got, StepTypeTreatment)
	}
}

func TestStepTypeOf_Families(t *testing.T) {
	tests := []struct {
		category StepCategory
		want     StepType
	}{
		{StepCleanserOil, StepTypeCleanser},
		{StepTonerExfoliating, StepTypeToner},
		{StepSerumVitaminC, StepTypeSerum},
		{StepTreatmentAzelaic, StepTypeTreatment},
		{StepMoisturizerBarrier, StepTypeMoisturizer},
		{StepEyeCreamAntiAging, StepTypeEyeCream},
		{StepSPFMineral, StepTypeSPF},
		{StepMaskSleeping, StepTypeMask},
		{StepSpotTreatment, StepTypeSpotTreatment},
		{StepLipCare, StepTypeLipCare},
		{StepBalmBarrierRepair, StepTypeBalm},
	}
	for _, tt := range tests {
		if got := StepTypeOf(tt.category); got != tt.want {
			t.Errorf("StepTypeOf(%s) = %s, want %s", tt.category, got, tt.want)
		}
	}
}

func TestPhaseForDay(t *testing.T) {
	tests := []struct {
		day  int
		want Phase
	}{
		{1, PhaseAdaptation},
		{7, PhaseAdaptation},
		{8, PhaseActive},
		{21, PhaseActive},
		{22, PhaseSupport},
		{28, PhaseSupport},
	}
	for _, tt := range tests {
		if got := PhaseForDay(tt.day); got != tt.want {
			t.Errorf("PhaseForDay(%d) = %s, want %s", tt.day, got, tt.want)
		}
	}
}
