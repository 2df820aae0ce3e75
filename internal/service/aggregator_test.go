package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/alimentify/internal/error_values"
	"github.com/limbo/alimentify/internal/service"
	"github.com/limbo/alimentify/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mealReaderMock struct {
	meals []entity.MealEntry
	err   error
	calls int
}

func (m *mealReaderMock) GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to entity.Date) ([]entity.MealEntry, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.meals, nil
}

func meal(date entity.Date, calories, protein, carbs, fat float64) entity.MealEntry {
	return entity.MealEntry{
		ID:       uuid.New(),
		UserID:   userID,
		MealType: entity.MealLunch,
		Date:     date,
		Macros: entity.Macros{
			Calories: calories,
			ProteinG: protein,
			CarbsG:   carbs,
			FatG:     fat,
		},
	}
}

var weekStart = entity.NewDate(2024, time.April, 1)

func TestAggregateWeekWithGaps(t *testing.T) {
	reader := &mealReaderMock{meals: []entity.MealEntry{
		meal(weekStart, 500, 30, 60, 10),
		meal(weekStart, 700, 40, 80, 20),
		meal(weekStart.AddDays(2), 2000, 100, 200, 70),
		meal(weekStart.AddDays(5), 1800, 90, 150, 60),
	}}
	agg := service.NewAggregator(reader, service.DefaultAggregatorConfig())
	stats, err := agg.Aggregate(context.Background(), userID, entity.PeriodWeekly, weekStart, weekStart.AddDays(6))
	require.NoError(t, err)

	require.Len(t, stats.DailyData, 7)
	for i, d := range stats.DailyData {
		assert.Equal(t, weekStart.AddDays(i), d.Date)
	}
	assert.Equal(t, 2, stats.DailyData[0].MealCount)
	assert.Equal(t, 1200.0, stats.DailyData[0].Calories)
	assert.Equal(t, 0, stats.DailyData[1].MealCount)
	assert.Equal(t, entity.Macros{}, stats.DailyData[1].Macros)

	// 5000 kcal over 7 days, not over the 3 logged days
	assert.Equal(t, 714.0, stats.Summary.AvgCalories)
	assert.Equal(t, 4, stats.Summary.TotalMeals)
	assert.Equal(t, 7, stats.Summary.TotalDays)
	assert.Equal(t, 3, stats.Summary.DaysLogged)
	assert.Equal(t, 37.1, stats.Summary.AvgProtein)
	assert.Equal(t, 70.0, stats.Summary.AvgCarbs)
	assert.Equal(t, 22.9, stats.Summary.AvgFat)
	assert.Equal(t, 5000.0, stats.Summary.Totals.Calories)
	assert.Equal(t, 1, stats.Summary.LongestStreak)
	assert.Equal(t, entity.PeriodWeekly, stats.Kind)
}

func TestAggregateSequenceLength(t *testing.T) {
	agg := service.NewAggregator(&mealReaderMock{}, service.DefaultAggregatorConfig())
	for _, days := range []int{1, 2, 28, 31, 365, 366} {
		end := weekStart.AddDays(days - 1)
		stats, err := agg.Aggregate(context.Background(), userID, entity.PeriodDaily, weekStart, end)
		require.NoError(t, err)
		assert.Len(t, stats.DailyData, weekStart.DaysUntil(end)+1)
		assert.Equal(t, 0.0, stats.Summary.AvgCalories)
	}
}

func TestAggregateStreakAndOutOfRange(t *testing.T) {
	reader := &mealReaderMock{meals: []entity.MealEntry{
		meal(weekStart.AddDays(-1), 999, 0, 0, 0),
		meal(weekStart, 100, 0, 0, 0),
		meal(weekStart.AddDays(1), 100, 0, 0, 0),
		meal(weekStart.AddDays(2), 100, 0, 0, 0),
		meal(weekStart.AddDays(4), 100, 0, 0, 0),
		meal(weekStart.AddDays(10), 999, 0, 0, 0),
	}}
	agg := service.NewAggregator(reader, service.DefaultAggregatorConfig())
	stats, err := agg.Aggregate(context.Background(), userID, entity.PeriodDaily, weekStart, weekStart.AddDays(4))
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Summary.LongestStreak)
	assert.Equal(t, 4, stats.Summary.TotalMeals)
	assert.Equal(t, 80.0, stats.Summary.AvgCalories)
}

func TestAggregateErrors(t *testing.T) {
	ctx := context.Background()
	t.Run("end before start", func(t *testing.T) {
		reader := &mealReaderMock{}
		agg := service.NewAggregator(reader, service.DefaultAggregatorConfig())
		_, err := agg.Aggregate(ctx, userID, entity.PeriodDaily, weekStart, weekStart.AddDays(-1))
		assert.ErrorIs(t, err, errorvalues.ErrInvalidRange)
		assert.Equal(t, 0, reader.calls)
	})
	t.Run("range too large", func(t *testing.T) {
		agg := service.NewAggregator(&mealReaderMock{}, service.AggregatorConfig{MaxRangeDays: 31})
		_, err := agg.Aggregate(ctx, userID, entity.PeriodMonthly, weekStart, weekStart.AddDays(31))
		assert.ErrorIs(t, err, errorvalues.ErrRangeTooLarge)
		_, err = agg.Aggregate(ctx, userID, entity.PeriodMonthly, weekStart, weekStart.AddDays(30))
		assert.NoError(t, err)
	})
	t.Run("missing date", func(t *testing.T) {
		agg := service.NewAggregator(&mealReaderMock{}, service.DefaultAggregatorConfig())
		_, err := agg.Aggregate(ctx, userID, entity.PeriodDaily, entity.Date{}, weekStart)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidRange)
	})
	t.Run("invalid period", func(t *testing.T) {
		agg := service.NewAggregator(&mealReaderMock{}, service.DefaultAggregatorConfig())
		_, err := agg.Aggregate(ctx, userID, "hourly", weekStart, weekStart)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidPeriod)
	})
	t.Run("store failure aborts aggregation", func(t *testing.T) {
		agg := service.NewAggregator(&mealReaderMock{err: errors.New("connection reset")}, service.DefaultAggregatorConfig())
		stats, err := agg.Aggregate(ctx, userID, entity.PeriodDaily, weekStart, weekStart.AddDays(3))
		assert.ErrorIs(t, err, errorvalues.ErrStoreUnavailable)
		assert.Nil(t, stats)
	})
}

func TestPeriodBounds(t *testing.T) {
	anchor := entity.NewDate(2024, time.February, 14)
	testCases := []struct {
		Kind  entity.PeriodKind
		Start entity.Date
		End   entity.Date
	}{
		{entity.PeriodDaily, anchor, anchor},
		{entity.PeriodWeekly, entity.NewDate(2024, time.February, 12), entity.NewDate(2024, time.February, 18)},
		{entity.PeriodMonthly, entity.NewDate(2024, time.February, 1), entity.NewDate(2024, time.February, 29)},
		{entity.PeriodYearly, entity.NewDate(2024, time.January, 1), entity.NewDate(2024, time.December, 31)},
	}
	for _, tc := range testCases {
		start, end := service.PeriodBounds(tc.Kind, anchor)
		assert.Equal(t, tc.Start, start, tc.Kind)
		assert.Equal(t, tc.End, end, tc.Kind)
	}
}
