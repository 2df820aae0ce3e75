package entity

import (
	"fmt"
	"strings"

	errorvalues "github.com/limbo/alimentify/internal/error_values"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

func ParseSex(s string) (Sex, error) {
	v := Sex(normalize(s))
	if !v.Valid() {
		return "", fmt.Errorf("%w: unknown sex %q", errorvalues.ErrInvalidProfile, s)
	}
	return v, nil
}

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	}
	return false
}

func ParseActivityLevel(s string) (ActivityLevel, error) {
	v := ActivityLevel(normalize(s))
	if !v.Valid() {
		return "", fmt.Errorf("%w: unknown activity level %q", errorvalues.ErrInvalidProfile, s)
	}
	return v, nil
}

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

func (g Goal) Valid() bool {
	return g == GoalLose || g == GoalMaintain || g == GoalGain
}

func ParseGoal(s string) (Goal, error) {
	v := Goal(normalize(s))
	if !v.Valid() {
		return "", fmt.Errorf("%w: unknown goal %q", errorvalues.ErrInvalidProfile, s)
	}
	return v, nil
}

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

func ParseMealType(s string) (MealType, error) {
	v := MealType(normalize(s))
	if !v.Valid() {
		return "", fmt.Errorf("%w: unknown meal type %q", errorvalues.ErrInvalidMeal, s)
	}
	return v, nil
}

// PeriodKind is the aggregation granularity of a stats query.
type PeriodKind string

const (
	PeriodDaily   PeriodKind = "daily"
	PeriodWeekly  PeriodKind = "weekly"
	PeriodMonthly PeriodKind = "monthly"
	PeriodYearly  PeriodKind = "yearly"
)

func (p PeriodKind) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

func ParsePeriodKind(s string) (PeriodKind, error) {
	v := PeriodKind(normalize(s))
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", errorvalues.ErrInvalidPeriod, s)
	}
	return v, nil
}

type ReportType string

const (
	ReportDaily   ReportType = "daily"
	ReportWeekly  ReportType = "weekly"
	ReportMonthly ReportType = "monthly"
)

func (r ReportType) Valid() bool {
	return r == ReportDaily || r == ReportWeekly || r == ReportMonthly
}

func ParseReportType(s string) (ReportType, error) {
	v := ReportType(normalize(s))
	if !v.Valid() {
		return "", fmt.Errorf("%w: %q", errorvalues.ErrInvalidReportType, s)
	}
	return v, nil
}

// PeriodKind maps a report type onto the aggregation granularity it summarizes.
func (r ReportType) PeriodKind() PeriodKind {
	switch r {
	case ReportWeekly:
		return PeriodWeekly
	case ReportMonthly:
		return PeriodMonthly
	default:
		return PeriodDaily
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
