package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/dermaplan/engine/internal/catalog"
	"github.com/dermaplan/engine/internal/domain"
	"github.com/dermaplan/engine/internal/ingredients"
	"github.com/dermaplan/engine/internal/profile"
	"github.com/dermaplan/engine/internal/protocol"
)

// planNamespace seeds deterministic plan ids: the same user and protocol
// always produce the same id, which keeps generation byte-identical for a
// fixed catalog snapshot.
var planNamespace = uuid.MustParse("8f1d7a9e-4b3c-4c0a-9d2e-5a6b7c8d9e0f")

// Result is a generated plan plus the human-readable warnings collected
// along the way for observability and admin surfaces.
type Result struct {
	Plan     domain.Plan28        `json:"plan"`
	Warnings []domain.PlanWarning `json:"warnings,omitempty"`
}

// Generator drives the full pipeline: protocol selection, step gating,
// coverage resolution, per-day assembly, and validation. All collaborators
// are injected; the generator itself is stateless across calls.
type Generator struct {
	profiles  profile.Store
	catalog   catalog.Query
	protocols *protocol.Registry
	matrix    *ingredients.Matrix
	gate      *Gate
	compat    *Compat
	resolver  *Resolver
	validator *Validator
}

// NewGenerator wires a generator from its collaborators.
func NewGenerator(profiles profile.Store, cat catalog.Query, protocols *protocol.Registry, matrix *ingredients.Matrix) *Generator {
	return &Generator{
		profiles:  profiles,
		catalog:   cat,
		protocols: protocols,
		matrix:    matrix,
		gate:      NewGate(),
		compat:    NewCompat(matrix),
		resolver:  NewResolver(cat, nil),
		validator: NewValidator(matrix),
	}
}

// Generate produces the 28-day plan for a stored user profile.
func (g *Generator) Generate(ctx context.Context, userID string) (*Result, error) {
	p, err := g.profiles.GetNormalizedProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile %s: %w", userID, err)
	}
	return g.GenerateForProfile(ctx, p, nil)
}

// GenerateForProfile produces the plan for an already-loaded profile.
// candidates optionally carries an upstream-selected product set; the
// fallback resolver widens from it against the catalog as needed.
func (g *Generator) GenerateForProfile(ctx context.Context, p *domain.ProfileClassification, candidates []domain.CatalogProduct) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileIncomplete, err)
	}

	proto := g.protocols.Select(p)
	var warnings []domain.PlanWarning

	// Gate the routine template once: allowance does not depend on the day.
	morning := g.gateTemplate(proto.Template.Morning, p, proto, &warnings)
	evening := g.gateTemplate(proto.Template.Evening, p, proto, &warnings)
	weekly := g.gateTemplate(proto.Template.Weekly, p, proto, &warnings)

	// Cleansing and sun protection are structurally mandatory: re-insert
	// them whenever gating filtered them out.
	morning = ensureStepType(morning, domain.StepTypeCleanser, fallbackCleanser(p), true)
	morning = ensureStepType(morning, domain.StepTypeSPF, fallbackSPF(p), false)
	evening = ensureStepType(evening, domain.StepTypeCleanser, fallbackCleanser(p), true)

	// Ingredient-level gate: products carrying impermissible actives never
	// become candidates, so the resolver widens past them to an admissible
	// alternative instead of committing and repairing later.
	vetoed := make(map[string]bool)
	admissible := func(cand domain.CatalogProduct) bool {
		reason := g.gate.VetoProduct(cand, p, proto)
		if reason == "" {
			return true
		}
		if !vetoed[cand.ID] {
			vetoed[cand.ID] = true
			log.Printf("[Planner] dropping product %s: %s", cand.ID, reason)
			warnings = append(warnings, domain.PlanWarning{
				Code:      domain.WarnForbiddenIngredient,
				ProductID: cand.ID,
				Message:   reason,
			})
		}
		return false
	}

	required := unionSteps(morning, evening, weekly)
	coverage, err := g.resolver.EnsureCoverage(ctx, required, p, candidates, admissible)
	if err != nil {
		return nil, fmt.Errorf("resolve coverage: %w", err)
	}
	byID := make(map[string]domain.CatalogProduct)
	for _, products := range coverage {
		for _, prod := range products {
			byID[prod.ID] = prod
		}
	}

	plan := domain.Plan28{
		ID:        uuid.NewSHA1(planNamespace, []byte(p.UserID+"/"+string(proto.Condition))).String(),
		UserID:    p.UserID,
		Protocol:  string(proto.Condition),
		MainGoals: append([]string(nil), p.Goals...),
		Days:      make([]domain.DayPlan, 0, domain.PlanDays),
	}

	for day := 1; day <= domain.PlanDays; day++ {
		plan.Days = append(plan.Days, g.assembleDay(day, p, proto, morning, evening, weekly, coverage, &warnings))
	}

	warnings = append(warnings, g.validator.Validate(&plan, byID)...)

	log.Printf("[Planner] generated plan %s for user %s (%s protocol, %d warnings)",
		plan.ID, p.UserID, proto.Condition, len(warnings))
	return &Result{Plan: plan, Warnings: warnings}, nil
}

// gateTemplate runs the allowance gate over a template step list, dropping
// disallowed steps and recording ranking-only warnings.
func (g *Generator) gateTemplate(template []domain.StepCategory, p *domain.ProfileClassification, proto *protocol.Protocol, warnings *[]domain.PlanWarning) []domain.StepCategory {
	out := make([]domain.StepCategory, 0, len(template))
	for _, step := range template {
		decision := g.gate.CanApply(step, p, proto)
		if !decision.Allowed {
			log.Printf("[Planner] dropping step %s: %s", step, decision.Reason)
			continue
		}
		if decision.Warning != "" {
			*warnings = append(*warnings, domain.PlanWarning{
				Code:    domain.WarnStepNotPreferred,
				Step:    step,
				Message: decision.Warning,
			})
		}
		out = append(out, step)
	}
	return out
}

// assembleDay builds one DayPlan. The duplication/compatibility ledger is
// scoped to the day and never threads across days.
func (g *Generator) assembleDay(day int, p *domain.ProfileClassification, proto *protocol.Protocol, morning, evening, weekly []domain.StepCategory, coverage map[domain.StepCategory][]domain.CatalogProduct, warnings *[]domain.PlanWarning) domain.DayPlan {
	week := PlanWeek(day)
	weekday := PlanWeekday(day)

	dp := domain.DayPlan{
		DayIndex:    day,
		Phase:       domain.PhaseForDay(day),
		WeeklyFocus: day%7 == 0,
	}
	if g.isBarrierDay(proto, week, day) {
		dp.Phase = domain.PhaseAdaptation
	}

	ledger := newDayLedger()
	dp.Morning = g.assembleSlot(day, domain.SlotMorning, morning, dp.Phase, week, weekday, p, proto, coverage, ledger, warnings)
	dp.Evening = g.assembleSlot(day, domain.SlotEvening, evening, dp.Phase, week, weekday, p, proto, coverage, ledger, warnings)
	if dp.WeeklyFocus {
		dp.Weekly = g.assembleSlot(day, domain.SlotWeekly, weekly, dp.Phase, week, weekday, p, proto, coverage, ledger, warnings)
	}
	return dp
}

// isBarrierDay reports whether titration keeps this day in adaptation: the
// protocol's tightest week-1 titration entry allows at most two applications
// and the weekday falls outside that ingredient's allowed days.
func (g *Generator) isBarrierDay(proto *protocol.Protocol, week, day int) bool {
	ing, weeks, ok := tightestTitration(proto)
	if !ok || weeks[0] > 2 {
		return false
	}
	freq := FrequencyFor(ing, proto, week)
	return !freq.AllowsDay(PlanWeekday(day))
}

// tightestTitration returns the titration entry with the lowest week-1
// count, ties broken by ingredient name for determinism.
func tightestTitration(proto *protocol.Protocol) (domain.ActiveIngredient, [protocol.TitrationWeeks]int, bool) {
	var (
		best      domain.ActiveIngredient
		bestWeeks [protocol.TitrationWeeks]int
		found     bool
	)
	for _, ing := range domain.AllActiveIngredients {
		weeks, ok := proto.TitrationFor(ing)
		if !ok {
			continue
		}
		if !found || weeks[0] < bestWeeks[0] || (weeks[0] == bestWeeks[0] && ing < best) {
			best, bestWeeks, found = ing, weeks, true
		}
	}
	return best, bestWeeks, found
}

// assembleSlot fills one time slot, committing the first admissible product
// per step. Ties are already broken deterministically by the coverage
// ordering (hero desc, priority desc, id asc).
func (g *Generator) assembleSlot(day int, slot domain.Slot, stepList []domain.StepCategory, phase domain.Phase, week int, weekday time.Weekday, p *domain.ProfileClassification, proto *protocol.Protocol, coverage map[domain.StepCategory][]domain.CatalogProduct, ledger *dayLedger, warnings *[]domain.PlanWarning) []domain.DayStep {
	out := make([]domain.DayStep, 0, len(stepList))
	for _, step := range stepList {
		out = append(out, g.commitStep(day, slot, step, phase, week, weekday, p, proto, coverage[step], ledger, warnings))
	}
	return out
}

// commitStep selects a product for one step on one day.
func (g *Generator) commitStep(day int, slot domain.Slot, step domain.StepCategory, phase domain.Phase, week int, weekday time.Weekday, p *domain.ProfileClassification, proto *protocol.Protocol, candidates []domain.CatalogProduct, ledger *dayLedger, warnings *[]domain.PlanWarning) domain.DayStep {
	stepType := domain.StepTypeOf(step)
	ds := domain.DayStep{Step: step}

	if len(candidates) == 0 {
		// Total resolution failure: keep the step with a review marker,
		// never drop it.
		ds.NeedsReview = true
		ds.Note = "no suitable product found"
		*warnings = append(*warnings, domain.PlanWarning{
			Code: domain.WarnNeedsReview, DayIndex: day, Slot: slot, Step: step,
			Message: fmt.Sprintf("day %d: step %s has no product after full fallback", day, step),
		})
		return ds
	}

	ordered := orderByPhase(candidates, phase)
	titrationBlocked := false

	for i := range ordered {
		cand := ordered[i]
		if ledger.crossFamilyUse(cand.ID, stepType) {
			continue
		}
		if class, owner, dup := ledger.duplicateClass(cand); dup {
			*warnings = append(*warnings, domain.PlanWarning{
				Code: domain.WarnDuplicateActive, DayIndex: day, Slot: slot, Step: step, ProductID: cand.ID,
				Message: fmt.Sprintf("day %d: %s repeats the %s group already covered by %s; choose one",
					day, cand.Name, class, owner),
			})
			continue
		}
		if blockedByTitration(cand, proto, week, weekday) {
			titrationBlocked = true
			continue
		}

		verdict := g.compat.Check(ledger.committed(slot), cand, slot, p.Sensitivity)
		switch verdict.Action {
		case ActionReject:
			*warnings = append(*warnings, domain.PlanWarning{
				Code: domain.WarnIngredientConflict, DayIndex: day, Slot: slot, Step: step, ProductID: cand.ID,
				Message: fmt.Sprintf("day %d %s: %s rejected (%s)", day, slot, cand.Name, verdict.Conflict.Reason),
			})
			continue
		case ActionDefer:
			*warnings = append(*warnings, domain.PlanWarning{
				Code: domain.WarnIngredientConflict, DayIndex: day, Slot: slot, Step: step, ProductID: cand.ID,
				Message: fmt.Sprintf("day %d %s: %s", day, slot, verdict.Recommendation),
			})
			continue
		}

		for _, w := range verdict.Warnings {
			*warnings = append(*warnings, domain.PlanWarning{
				Code: domain.WarnIngredientConflict, DayIndex: day, Slot: slot, Step: step, ProductID: cand.ID,
				Message: fmt.Sprintf("day %d %s: %s", day, slot, w),
			})
		}

		ledger.register(cand, slot, stepType)
		ds.ProductID = cand.ID
		ds.Alternatives = pickAlternatives(ordered, cand.ID, ledger, stepType)
		return ds
	}

	if titrationBlocked {
		// Every remaining candidate carries an active that is off-schedule
		// today. That is a planned rest day, not a failure.
		ds.Note = "rest day for titrated actives"
		return ds
	}

	// Zero admissible after filtering: commit the first available product
	// anyway and flag it, never drop a templated step silently.
	first := ordered[0]
	ledger.register(first, slot, stepType)
	ds.ProductID = first.ID
	ds.NeedsReview = true
	ds.Note = "committed despite conflicts; needs manual review"
	*warnings = append(*warnings, domain.PlanWarning{
		Code: domain.WarnNeedsReview, DayIndex: day, Slot: slot, Step: step, ProductID: first.ID,
		Message: fmt.Sprintf("day %d %s: step %s committed %s despite filter rejections", day, slot, step, first.Name),
	})
	return ds
}

// blockedByTitration reports whether any of the product's actives is
// off-schedule for this week/weekday under the protocol.
func blockedByTitration(p domain.CatalogProduct, proto *protocol.Protocol, week int, weekday time.Weekday) bool {
	for _, ing := range p.Ingredients {
		freq := FrequencyFor(ing, proto, week)
		if freq.Unconstrained {
			continue
		}
		if !freq.AllowsDay(weekday) {
			return true
		}
	}
	return false
}

// orderByPhase orders candidates by strength preference per plan phase:
// adaptation prefers gentle and excludes strong actives entirely, active
// prefers strong then moderate, support prefers moderate then gentle. The
// sort is stable, so catalog priority breaks ties within a bucket.
func orderByPhase(candidates []domain.CatalogProduct, phase domain.Phase) []domain.CatalogProduct {
	rank := func(s domain.ProductStrength) int {
		switch phase {
		case domain.PhaseAdaptation:
			switch s {
			case domain.StrengthGentle:
				return 0
			case domain.StrengthModerate:
				return 1
			default:
				return -1 // excluded
			}
		case domain.PhaseActive:
			switch s {
			case domain.StrengthStrong:
				return 0
			case domain.StrengthModerate:
				return 1
			default:
				return 2
			}
		default: // support
			switch s {
			case domain.StrengthModerate:
				return 0
			case domain.StrengthGentle:
				return 1
			default:
				return 2
			}
		}
	}

	out := make([]domain.CatalogProduct, 0, len(candidates))
	for bucket := 0; bucket <= 2; bucket++ {
		for i := range candidates {
			if rank(candidates[i].Strength) == bucket {
				out = append(out, candidates[i])
			}
		}
	}
	if len(out) == 0 {
		// Adaptation excluded everything; fall back to the raw order rather
		// than leaving the step unservable.
		out = append(out, candidates...)
	}
	return out
}

// pickAlternatives returns up to MaxAlternatives further candidates that
// would not violate the cross-family invariant.
func pickAlternatives(ordered []domain.CatalogProduct, chosenID string, ledger *dayLedger, st domain.StepType) []string {
	var alts []string
	for i := range ordered {
		if len(alts) == domain.MaxAlternatives {
			break
		}
		if ordered[i].ID == chosenID || ledger.crossFamilyUse(ordered[i].ID, st) {
			continue
		}
		alts = append(alts, ordered[i].ID)
	}
	return alts
}

// ensureStepType guarantees a base family is present in a step list,
// prepending or appending the fallback category when gating removed it.
func ensureStepType(stepList []domain.StepCategory, st domain.StepType, fallback domain.StepCategory, prepend bool) []domain.StepCategory {
	for _, step := range stepList {
		if domain.StepTypeOf(step) == st {
			return stepList
		}
	}
	if prepend {
		return append([]domain.StepCategory{fallback}, stepList...)
	}
	return append(stepList, fallback)
}

// fallbackCleanser picks the safest cleanser for re-insertion.
func fallbackCleanser(p *domain.ProfileClassification) domain.StepCategory {
	return domain.StepCleanserGentle
}

// fallbackSPF picks the SPF variant for re-insertion: mineral filters for
// sensitive or rosacea-prone skin, the daily variant otherwise.
func fallbackSPF(p *domain.ProfileClassification) domain.StepCategory {
	if sensitiveOverrideApplies(p) {
		return domain.StepSPFMineral
	}
	return domain.StepSPFDaily
}

// unionSteps merges step lists preserving first-seen order.
func unionSteps(lists ...[]domain.StepCategory) []domain.StepCategory {
	seen := make(map[domain.StepCategory]bool)
	var out []domain.StepCategory
	for _, list := range lists {
		for _, step := range list {
			if !seen[step] {
				seen[step] = true
				out = append(out, step)
			}
		}
	}
	return out
}
