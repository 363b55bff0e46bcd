package domain

// Phase segments the 28-day plan. Adaptation ramps the skin in, active carries
// the strongest products, support tapers off.
type Phase string

const (
	PhaseAdaptation Phase = "adaptation"
	PhaseActive     Phase = "active"
	PhaseSupport    Phase = "support"
)

// PhaseForDay returns the phase a day index (1..28) falls into before any
// titration tightening: days 1-7 adaptation, 8-21 active, 22-28 support.
func PhaseForDay(dayIndex int) Phase {
	switch {
	case dayIndex <= 7:
		return PhaseAdaptation
	case dayIndex <= 21:
		return PhaseActive
	default:
		return PhaseSupport
	}
}

// Slot is a time-of-day routine bucket within a day.
type Slot string

const (
	SlotMorning Slot = "morning"
	SlotEvening Slot = "evening"
	SlotWeekly  Slot = "weekly"
)

// MaxAlternatives caps the alternative products attached to a step.
const MaxAlternatives = 3

// PlanDays is the fixed plan horizon.
const PlanDays = 28

// DayStep is one routine step on one day. ProductID may be empty: an
// unresolvable step is kept in the plan with NeedsReview set rather than
// dropped.
type DayStep struct {
	Step         StepCategory `json:"step"`
	ProductID    string       `json:"product_id,omitempty"`
	Alternatives []string     `json:"alternatives,omitempty"`
	NeedsReview  bool         `json:"needs_review,omitempty"`
	Note         string       `json:"note,omitempty"`
}

// DayPlan is one day of the 28-day plan.
type DayPlan struct {
	DayIndex    int       `json:"day_index"`
	Phase       Phase     `json:"phase"`
	WeeklyFocus bool      `json:"weekly_focus"`
	Recovery    bool      `json:"recovery,omitempty"`
	Morning     []DayStep `json:"morning"`
	Evening     []DayStep `json:"evening"`
	Weekly      []DayStep `json:"weekly,omitempty"`
}

// Steps returns the steps for a slot. Mutations through the returned slice
// are visible on the day.
func (d *DayPlan) Steps(slot Slot) []DayStep {
	switch slot {
	case SlotMorning:
		return d.Morning
	case SlotEvening:
		return d.Evening
	default:
		return d.Weekly
	}
}

// Plan28 is the assembled 28-day plan. It is produced once per (user,
// profile-version) pair and is immutable afterwards except for the
// validator's recovery pass.
type Plan28 struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Protocol  string    `json:"protocol"`
	MainGoals []string  `json:"main_goals,omitempty"`
	Days      []DayPlan `json:"days"`
}

// WarningCode identifies a class of validator/generation warning.
type WarningCode string

const (
	WarnMissingBaseStep     WarningCode = "missing_base_step"
	WarnCrossStepDuplicate  WarningCode = "cross_step_duplicate"
	WarnTooManyAlternatives WarningCode = "too_many_alternatives"
	WarnEmptyDay            WarningCode = "empty_day"
	WarnIngredientConflict  WarningCode = "ingredient_conflict"
	WarnNeedsReview         WarningCode = "needs_review"
	WarnStepNotPreferred    WarningCode = "step_not_preferred"
	WarnDuplicateActive     WarningCode = "duplicate_active"
	WarnForbiddenIngredient WarningCode = "forbidden_ingredient"
)

// PlanWarning is a human-readable, non-fatal finding attached to a generation
// result for observability and admin surfaces.
type PlanWarning struct {
	Code      WarningCode  `json:"code"`
	DayIndex  int          `json:"day_index,omitempty"`
	Slot      Slot         `json:"slot,omitempty"`
	Step      StepCategory `json:"step,omitempty"`
	ProductID string       `json:"product_id,omitempty"`
	Message   string       `json:"message"`
}
