package entity_test

import (
	"math"
	"testing"
	"time"

	errorvalues "github.com/limbo/alimentify/internal/error_values"
	"github.com/limbo/alimentify/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func validProfile() entity.HealthProfile {
	return entity.HealthProfile{
		Age:           30,
		WeightKg:      70,
		HeightCm:      175,
		Sex:           entity.SexMale,
		ActivityLevel: entity.ActivityModerate,
		Goal:          entity.GoalMaintain,
	}
}

func TestHealthProfileValidate(t *testing.T) {
	testCases := []struct {
		Name   string
		Mutate func(p *entity.HealthProfile)
		Valid  bool
	}{
		{Name: "valid", Mutate: func(p *entity.HealthProfile) {}, Valid: true},
		{Name: "zero age allowed", Mutate: func(p *entity.HealthProfile) { p.Age = 0 }, Valid: true},
		{Name: "negative age", Mutate: func(p *entity.HealthProfile) { p.Age = -1 }},
		{Name: "zero weight", Mutate: func(p *entity.HealthProfile) { p.WeightKg = 0 }},
		{Name: "NaN height", Mutate: func(p *entity.HealthProfile) { p.HeightCm = math.NaN() }},
		{Name: "unknown sex", Mutate: func(p *entity.HealthProfile) { p.Sex = "other" }},
		{Name: "unknown activity", Mutate: func(p *entity.HealthProfile) { p.ActivityLevel = "extreme" }},
		{Name: "unknown goal", Mutate: func(p *entity.HealthProfile) { p.Goal = "bulk" }},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			p := validProfile()
			tc.Mutate(&p)
			err := p.Validate()
			if tc.Valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errorvalues.ErrInvalidProfile)
			}
		})
	}
}

func TestMealEntryValidate(t *testing.T) {
	meal := entity.MealEntry{
		MealType: entity.MealLunch,
		Date:     entity.NewDate(2024, time.March, 1),
		Macros:   entity.Macros{Calories: 500, ProteinG: 30},
	}
	assert.NoError(t, meal.Validate())

	bad := meal
	bad.FatG = -1
	assert.ErrorIs(t, bad.Validate(), errorvalues.ErrInvalidMeal)

	bad = meal
	bad.MealType = "brunch"
	assert.ErrorIs(t, bad.Validate(), errorvalues.ErrInvalidMeal)

	bad = meal
	bad.Date = entity.Date{}
	assert.ErrorIs(t, bad.Validate(), errorvalues.ErrInvalidMeal)
}

func TestParseVariants(t *testing.T) {
	a, err := entity.ParseActivityLevel(" Very_Active ")
	assert.NoError(t, err)
	assert.Equal(t, entity.ActivityVeryActive, a)

	_, err = entity.ParseGoal("bulk")
	assert.ErrorIs(t, err, errorvalues.ErrInvalidProfile)

	_, err = entity.ParseMealType("brunch")
	assert.ErrorIs(t, err, errorvalues.ErrInvalidMeal)

	_, err = entity.ParsePeriodKind("hourly")
	assert.ErrorIs(t, err, errorvalues.ErrInvalidPeriod)

	_, err = entity.ParseReportType("yearly")
	assert.ErrorIs(t, err, errorvalues.ErrInvalidReportType)

	assert.Equal(t, entity.PeriodWeekly, entity.ReportWeekly.PeriodKind())
	assert.Equal(t, entity.PeriodMonthly, entity.ReportMonthly.PeriodKind())
	assert.Equal(t, entity.PeriodDaily, entity.ReportDaily.PeriodKind())
}
