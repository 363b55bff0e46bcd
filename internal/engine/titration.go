package engine

import (
	"time"

	"github.com/dermaplan/engine/internal/domain"
	"github.com/dermaplan/engine/internal/protocol"
)

// Frequency is the weekly application constraint for one ingredient in one
// week of the plan. Unconstrained means no rule exists at all; an explicit
// zero MaxPerWeek means the ingredient is not allowed this week, which is a
// different statement.
type Frequency struct {
	Unconstrained bool
	MaxPerWeek    int
	// Weekdays, when non-empty, is an explicit schedule that overrides any
	// count-derived spacing.
	Weekdays []time.Weekday
}

// FrequencyFor resolves the weekly constraint for an ingredient under a
// protocol. Precedence: an explicit weekday list from a cycling rule always
// wins over a numeric titration count; a numeric titration schedule maps
// week 1..4 to its ramp value, capped by a numeric cycling class when both
// exist; with neither, the ingredient is unconstrained.
func FrequencyFor(ing domain.ActiveIngredient, proto *protocol.Protocol, week int) Frequency {
	if week < 1 {
		week = 1
	}
	if week > protocol.TitrationWeeks {
		week = protocol.TitrationWeeks
	}

	cycling, hasCycling := proto.CyclingFor(ing)
	if hasCycling && len(cycling.Weekdays) > 0 {
		return Frequency{MaxPerWeek: len(cycling.Weekdays), Weekdays: cycling.Weekdays}
	}

	weeks, hasTitration := proto.TitrationFor(ing)
	switch {
	case hasTitration && hasCycling:
		count := weeks[week-1]
		if cap := cycling.Frequency.Applications(); cap < count {
			count = cap
		}
		return Frequency{MaxPerWeek: count}
	case hasTitration:
		return Frequency{MaxPerWeek: weeks[week-1]}
	case hasCycling:
		return Frequency{MaxPerWeek: cycling.Frequency.Applications()}
	default:
		return Frequency{Unconstrained: true}
	}
}

// AllowsDay reports whether the ingredient may be applied on the given
// weekday. Count-derived schedules space applications evenly across the week
// starting Monday.
func (f Frequency) AllowsDay(weekday time.Weekday) bool {
	if f.Unconstrained {
		return true
	}
	if len(f.Weekdays) > 0 {
		for _, wd := range f.Weekdays {
			if wd == weekday {
				return true
			}
		}
		return false
	}
	if f.MaxPerWeek <= 0 {
		return false
	}
	if f.MaxPerWeek >= 7 {
		return true
	}

	interval := 7 / f.MaxPerWeek
	offset := mondayOffset(weekday)
	if offset%interval != 0 {
		return false
	}
	return offset/interval < f.MaxPerWeek
}

// PlanWeekday maps a 1-based day index to its weekday; plans start Monday.
func PlanWeekday(dayIndex int) time.Weekday {
	return time.Weekday((int(time.Monday) + (dayIndex - 1)) % 7)
}

// PlanWeek maps a 1-based day index to its 1-based week.
func PlanWeek(dayIndex int) int {
	return (dayIndex-1)/7 + 1
}

// mondayOffset returns 0 for Monday through 6 for Sunday.
func mondayOffset(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
