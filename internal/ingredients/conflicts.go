package ingredients

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dermaplan/engine/internal/domain"
)

// Severity ranks how dangerous a conflicting pair is when layered.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Resolution is the strategy for handling a conflicting pair.
type Resolution string

const (
	// ResolutionReplace means the pair must never be used together at all;
	// one of the two products has to be swapped out.
	ResolutionReplace Resolution = "replace"
	// ResolutionSeparateTime means the pair is safe when split across
	// morning and evening.
	ResolutionSeparateTime Resolution = "separate_time"
	// ResolutionWarning means the pair is tolerated but worth flagging.
	ResolutionWarning Resolution = "warning"
)

// Conflict records one unordered conflicting ingredient pair.
type Conflict struct {
	Pair           [2]domain.ActiveIngredient
	Severity       Severity
	Resolution     Resolution
	Reason         string
	Recommendation string
}

// pairKey builds the canonical unordered key for two ingredients.
func pairKey(a, b domain.ActiveIngredient) string {
	if a > b {
		a, b = b, a
	}
	return string(a) + "|" + string(b)
}

// conflictTemplate declares a conflict between two ingredient groups. The
// matrix is compiled by expanding every cross-group member pair, which keeps
// the table declarative instead of enumerating dozens of literal pairs.
type conflictTemplate struct {
	groupA, groupB []domain.ActiveIngredient
	severity       Severity
	resolution     Resolution
	reason         string
	recommendation string
}

var (
	retinoidGroup = []domain.ActiveIngredient{
		domain.IngredientRetinol, domain.IngredientRetinoid,
		domain.IngredientAdapalene, domain.IngredientTretinoin,
	}
	acidGroup = []domain.ActiveIngredient{
		domain.IngredientAHA, domain.IngredientBHA, domain.IngredientPHA,
		domain.IngredientSalicylicAcid, domain.IngredientGlycolicAcid,
		domain.IngredientLacticAcid,
	}
	vitaminCGroup = []domain.ActiveIngredient{
		domain.IngredientVitaminC, domain.IngredientAscorbicAcid,
	}
	benzoylGroup = []domain.ActiveIngredient{domain.IngredientBenzoylPeroxide}
)

var conflictTemplates = []conflictTemplate{
	{
		groupA: retinoidGroup, groupB: acidGroup,
		severity: SeverityHigh, resolution: ResolutionSeparateTime,
		reason:         "retinoids layered with exfoliating acids compound irritation and barrier damage",
		recommendation: "use the acid in the morning routine and the retinoid in the evening, or alternate days",
	},
	{
		groupA: retinoidGroup, groupB: benzoylGroup,
		severity: SeverityHigh, resolution: ResolutionReplace,
		reason:         "benzoyl peroxide oxidizes retinol and the combination is highly irritating",
		recommendation: "keep only one of the two treatments in the plan",
	},
	{
		groupA: retinoidGroup, groupB: vitaminCGroup,
		severity: SeverityMedium, resolution: ResolutionSeparateTime,
		reason:         "vitamin C and retinoids compete for optimal pH and stack irritation",
		recommendation: "apply vitamin C in the morning and the retinoid in the evening",
	},
	{
		groupA: acidGroup, groupB: vitaminCGroup,
		severity: SeverityMedium, resolution: ResolutionSeparateTime,
		reason:         "low-pH acids destabilize vitamin C and increase sensitivity",
		recommendation: "split acids and vitamin C between evening and morning",
	},
	{
		groupA: benzoylGroup, groupB: vitaminCGroup,
		severity: SeverityHigh, resolution: ResolutionReplace,
		reason:         "benzoyl peroxide oxidizes ascorbic acid, cancelling both products",
		recommendation: "choose either the benzoyl peroxide treatment or the vitamin C serum",
	},
	{
		groupA: benzoylGroup, groupB: acidGroup,
		severity: SeverityMedium, resolution: ResolutionSeparateTime,
		reason:         "benzoyl peroxide with exfoliating acids over-dries the skin",
		recommendation: "separate benzoyl peroxide and acids by time of day",
	},
	{
		groupA: []domain.ActiveIngredient{domain.IngredientNiacinamide}, groupB: vitaminCGroup,
		severity: SeverityLow, resolution: ResolutionWarning,
		reason:         "niacinamide with pure vitamin C can flush very reactive skin",
		recommendation: "monitor for flushing; no change needed for most users",
	},
	{
		groupA: []domain.ActiveIngredient{domain.IngredientAzelaicAcid}, groupB: acidGroup,
		severity: SeverityLow, resolution: ResolutionWarning,
		reason:         "azelaic acid alongside exfoliating acids can sting sensitized skin",
		recommendation: "introduce one before the other if stinging occurs",
	},
}

// Matrix is the compiled pairwise conflict table. It is immutable after
// construction and safe for concurrent lookups.
type Matrix struct {
	byPair map[string]Conflict
}

// NewMatrix compiles the conflict templates into a pairwise matrix. It
// returns an error if two entries assert contradictory resolutions for the
// same unordered pair.
func NewMatrix() (*Matrix, error) {
	m := &Matrix{byPair: make(map[string]Conflict)}
	for _, tpl := range conflictTemplates {
		for _, a := range tpl.groupA {
			for _, b := range tpl.groupB {
				if a == b {
					continue
				}
				key := pairKey(a, b)
				c := Conflict{
					Pair:           orderedPair(a, b),
					Severity:       tpl.severity,
					Resolution:     tpl.resolution,
					Reason:         tpl.reason,
					Recommendation: tpl.recommendation,
				}
				if prev, ok := m.byPair[key]; ok && prev.Resolution != c.Resolution {
					return nil, fmt.Errorf("contradictory resolutions for pair %s: %s vs %s",
						key, prev.Resolution, c.Resolution)
				}
				m.byPair[key] = c
			}
		}
	}
	return m, nil
}

// MustMatrix builds the default matrix and panics on a broken table. The
// table is static data; a compile error here is a programmer error.
func MustMatrix() *Matrix {
	m, err := NewMatrix()
	if err != nil {
		panic(err)
	}
	return m
}

func orderedPair(a, b domain.ActiveIngredient) [2]domain.ActiveIngredient {
	if a > b {
		a, b = b, a
	}
	return [2]domain.ActiveIngredient{a, b}
}

// Lookup returns the conflict entry for an unordered pair, if any.
func (m *Matrix) Lookup(a, b domain.ActiveIngredient) (Conflict, bool) {
	c, ok := m.byPair[pairKey(a, b)]
	return c, ok
}

// Between returns every conflict between the two ingredient sets, sorted by
// severity (high first) then pair key for determinism.
func (m *Matrix) Between(a, b []domain.ActiveIngredient) []Conflict {
	var out []Conflict
	seen := make(map[string]bool)
	for _, ia := range a {
		for _, ib := range b {
			if ia == ib {
				continue
			}
			key := pairKey(ia, ib)
			if seen[key] {
				continue
			}
			if c, ok := m.byPair[key]; ok {
				seen[key] = true
				out = append(out, c)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Severity != out[j].Severity {
			return severityRank(out[i].Severity) > severityRank(out[j].Severity)
		}
		ki := pairKey(out[i].Pair[0], out[i].Pair[1])
		kj := pairKey(out[j].Pair[0], out[j].Pair[1])
		return ki < kj
	})
	return out
}

// Size returns the number of compiled pairs (for diagnostics).
func (m *Matrix) Size() int { return len(m.byPair) }

func severityRank(s Severity) int {
	switch s {
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	default:
		return 0
	}
}

// String renders a conflict for logs and warnings.
func (c Conflict) String() string {
	return fmt.Sprintf("%s x %s (%s, %s): %s",
		c.Pair[0], c.Pair[1], c.Severity, c.Resolution, c.Reason)
}

// Describe renders the pair compactly for warning messages.
func (c Conflict) Describe() string {
	return strings.Join([]string{string(c.Pair[0]), string(c.Pair[1])}, " + ")
}
