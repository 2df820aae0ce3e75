package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/alimentify/internal/error_values"
	"github.com/limbo/alimentify/pkg/entity"
)

type AggregatorConfig struct {
	// Longest accepted range in days, both ends included
	MaxRangeDays int
}

func DefaultAggregatorConfig() AggregatorConfig {
	return AggregatorConfig{MaxRangeDays: 366}
}

// Aggregator turns a user's meal log into per-day and summary totals.
type Aggregator struct {
	meals MealReader
	cfg   AggregatorConfig
}

func NewAggregator(meals MealReader, cfg AggregatorConfig) *Aggregator {
	if meals == nil {
		log.Fatal("provided nil meal reader")
	}
	if cfg.MaxRangeDays <= 0 {
		cfg.MaxRangeDays = DefaultAggregatorConfig().MaxRangeDays
	}
	return &Aggregator{
		meals: meals,
		cfg:   cfg,
	}
}

func (a *Aggregator) Aggregate(ctx context.Context, uid uuid.UUID, kind entity.PeriodKind, start, end entity.Date) (*entity.PeriodStats, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", errorvalues.ErrInvalidPeriod, kind)
	}
	if err := ValidateRange(start, end, a.cfg.MaxRangeDays); err != nil {
		return nil, err
	}
	meals, err := a.meals.GetByUserAndDateRange(ctx, uid, start, end)
	if err != nil {
		return nil, asStoreError("reading meals", err)
	}
	days := dailyTotals(start, end, meals)
	return &entity.PeriodStats{
		Kind:      kind,
		StartDate: start,
		EndDate:   end,
		DailyData: days,
		Summary:   summarize(days),
	}, nil
}

func ValidateRange(start, end entity.Date, maxDays int) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: both start and end dates are required", errorvalues.ErrInvalidRange)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: %s < %s", errorvalues.ErrInvalidRange, end, start)
	}
	if days := entity.DaysInRange(start, end); days > maxDays {
		return fmt.Errorf("%w: %d days requested, at most %d allowed", errorvalues.ErrRangeTooLarge, days, maxDays)
	}
	return nil
}

// PeriodBounds returns the calendar-aligned period of the given kind that contains anchor.
// Weeks start on Monday.
func PeriodBounds(kind entity.PeriodKind, anchor entity.Date) (entity.Date, entity.Date) {
	switch kind {
	case entity.PeriodWeekly:
		start := anchor.StartOfWeek()
		return start, start.AddDays(6)
	case entity.PeriodMonthly:
		start := anchor.StartOfMonth()
		return start, entity.Date{Time: start.AddDate(0, 1, 0)}.AddDays(-1)
	case entity.PeriodYearly:
		start := anchor.StartOfYear()
		return start, entity.Date{Time: start.AddDate(1, 0, 0)}.AddDays(-1)
	default:
		return anchor, anchor
	}
}

// dailyTotals zero-fills every day in [start, end]. Entries outside the range are ignored.
func dailyTotals(start, end entity.Date, meals []entity.MealEntry) []entity.DayTotals {
	n := entity.DaysInRange(start, end)
	days := make([]entity.DayTotals, n)
	for i := range days {
		days[i].Date = start.AddDays(i)
	}
	for _, m := range meals {
		i := start.DaysUntil(m.Date)
		if i < 0 || i >= n {
			continue
		}
		days[i].MealCount++
		days[i].Add(m.Macros)
	}
	return days
}

// summarize averages over every day of the range, so unlogged days count as zero.
func summarize(days []entity.DayTotals) entity.PeriodSummary {
	var (
		summary entity.PeriodSummary
		streak  int
	)
	summary.TotalDays = len(days)
	for _, d := range days {
		summary.TotalMeals += d.MealCount
		summary.Totals.Add(d.Macros)
		if d.MealCount > 0 {
			summary.DaysLogged++
			streak++
			summary.LongestStreak = max(summary.LongestStreak, streak)
		} else {
			streak = 0
		}
	}
	if summary.TotalDays == 0 {
		return summary
	}
	n := float64(summary.TotalDays)
	summary.AvgCalories = math.Round(summary.Totals.Calories / n)
	summary.AvgProtein = roundTo(summary.Totals.ProteinG/n, 1)
	summary.AvgCarbs = roundTo(summary.Totals.CarbsG/n, 1)
	summary.AvgFat = roundTo(summary.Totals.FatG/n, 1)
	summary.AvgFiber = roundTo(summary.Totals.FiberG/n, 1)
	return summary
}

// asStoreError keeps ErrStoreUnavailable in the chain for any collaborator failure.
func asStoreError(op string, err error) error {
	if errors.Is(err, errorvalues.ErrStoreUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%w: %s: %v", errorvalues.ErrStoreUnavailable, op, err)
}
