package ingredients

import (
	"reflect"
	"testing"

	"github.com/dermaplan/engine/internal/domain"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  []domain.ActiveIngredient
	}{
		{
			name:  "retinol serum",
			texts: []string{"Advanced Retinol 0.3% Night Serum"},
			want:  []domain.ActiveIngredient{domain.IngredientRetinol},
		},
		{
			name:  "vitamin c with hyaluronic",
			texts: []string{"Vitamin C Glow Serum", "with hyaluronic acid"},
			want:  []domain.ActiveIngredient{domain.IngredientHyaluronicAcid, domain.IngredientVitaminC},
		},
		{
			name:  "tretinoin is not plain retinol",
			texts: []string{"Tretinoin 0.025% cream"},
			want:  []domain.ActiveIngredient{domain.IngredientTretinoin},
		},
		{
			name:  "bha whole token only",
			texts: []string{"2% BHA liquid exfoliant"},
			want:  []domain.ActiveIngredient{domain.IngredientBHA},
		},
		{
			name:  "bha inside another word does not match",
			texts: []string{"shahbhanu extract toner"},
			want:  []domain.ActiveIngredient{},
		},
		{
			name:  "empty input",
			texts: []string{""},
			want:  []domain.ActiveIngredient{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.texts...)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%v) = %v, want %v", tt.texts, got, tt.want)
			}
		})
	}
}

func TestExtract_Idempotent(t *testing.T) {
	texts := []string{"Retinol + Glycolic Acid Resurfacing Treatment", "retinol again"}
	first := Extract(texts...)
	second := Extract(texts...)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("extraction is not deterministic: %v vs %v", first, second)
	}
	for i := 1; i < len(first); i++ {
		if first[i-1] >= first[i] {
			t.Fatalf("output not sorted: %v", first)
		}
	}
}
