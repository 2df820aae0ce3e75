package entity

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/alimentify/internal/error_values"
)

const maxAge = 150

type HealthProfile struct {
	UserID        uuid.UUID     `json:"uid"`
	Age           int           `json:"age"`
	WeightKg      float64       `json:"weight_kg"`
	HeightCm      float64       `json:"height_cm"`
	Sex           Sex           `json:"sex"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goal          Goal          `json:"goal"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Validate reports the first field outside its domain, wrapped in ErrInvalidProfile.
func (p *HealthProfile) Validate() error {
	switch {
	case p.Age < 0 || p.Age > maxAge:
		return fmt.Errorf("%w: age must be between 0 and %d", errorvalues.ErrInvalidProfile, maxAge)
	case !positive(p.WeightKg):
		return fmt.Errorf("%w: weight must be positive", errorvalues.ErrInvalidProfile)
	case !positive(p.HeightCm):
		return fmt.Errorf("%w: height must be positive", errorvalues.ErrInvalidProfile)
	case !p.Sex.Valid():
		return fmt.Errorf("%w: unknown sex %q", errorvalues.ErrInvalidProfile, p.Sex)
	case !p.ActivityLevel.Valid():
		return fmt.Errorf("%w: unknown activity level %q", errorvalues.ErrInvalidProfile, p.ActivityLevel)
	case !p.Goal.Valid():
		return fmt.Errorf("%w: unknown goal %q", errorvalues.ErrInvalidProfile, p.Goal)
	}
	return nil
}

type Macros struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
}

func (m *Macros) Add(other Macros) {
	m.Calories += other.Calories
	m.ProteinG += other.ProteinG
	m.CarbsG += other.CarbsG
	m.FatG += other.FatG
	m.FiberG += other.FiberG
}

func (m Macros) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"calories", m.Calories},
		{"protein", m.ProteinG},
		{"carbs", m.CarbsG},
		{"fat", m.FatG},
		{"fiber", m.FiberG},
	}
	for _, f := range fields {
		if f.value < 0 || math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be a non-negative number", errorvalues.ErrInvalidMeal, f.name)
		}
	}
	return nil
}

// MealEntry is one logged meal. Date is fixed at creation.
type MealEntry struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"uid"`
	MealType MealType  `json:"meal_type"`
	Date     Date      `json:"date"`
	FoodName string    `json:"food_name"`
	Macros
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *MealEntry) Validate() error {
	if !m.MealType.Valid() {
		return fmt.Errorf("%w: unknown meal type %q", errorvalues.ErrInvalidMeal, m.MealType)
	}
	if m.Date.IsZero() {
		return fmt.Errorf("%w: date is required", errorvalues.ErrInvalidMeal)
	}
	return m.Macros.Validate()
}

type Targets struct {
	BMI           float64 `json:"bmi"`
	BMICategory   string  `json:"bmi_category"`
	BMR           int     `json:"bmr"`
	TDEE          int     `json:"tdee"`
	DailyCalories int     `json:"daily_calories"`
	ProteinG      int     `json:"protein_g"`
	CarbsG        int     `json:"carbs_g"`
	FatG          int     `json:"fat_g"`
}

type DayTotals struct {
	Date      Date `json:"date"`
	MealCount int  `json:"meal_count"`
	Macros
}

type PeriodSummary struct {
	TotalMeals    int     `json:"total_meals"`
	TotalDays     int     `json:"total_days"`
	DaysLogged    int     `json:"days_logged"`
	AvgCalories   float64 `json:"avg_calories"`
	AvgProtein    float64 `json:"avg_protein"`
	AvgCarbs      float64 `json:"avg_carbs"`
	AvgFat        float64 `json:"avg_fat"`
	AvgFiber      float64 `json:"avg_fiber"`
	Totals        Macros  `json:"totals"`
	LongestStreak int     `json:"longest_streak"`
}

type PeriodStats struct {
	Kind      PeriodKind    `json:"period"`
	StartDate Date          `json:"start_date"`
	EndDate   Date          `json:"end_date"`
	DailyData []DayTotals   `json:"daily_data"`
	Summary   PeriodSummary `json:"summary"`
}

// Compliance compares a period's averages against the user's targets. The best
// day is the logged day with the highest mean macro compliance, nil when none scores.
type Compliance struct {
	Goal              Goal     `json:"goal"`
	CaloriesPercent   float64  `json:"calories_percent"`
	ProteinPercent    float64  `json:"protein_percent"`
	CarbsPercent      float64  `json:"carbs_percent"`
	FatPercent        float64  `json:"fat_percent"`
	DaysOnTarget      int      `json:"days_on_target"`
	GoalAchieved      bool     `json:"goal_achieved"`
	BestDayDate       *Date    `json:"best_day_date"`
	BestDayCompliance *float64 `json:"best_day_compliance"`
}

type Report struct {
	ID              uuid.UUID     `json:"id"`
	UserID          uuid.UUID     `json:"uid"`
	Type            ReportType    `json:"report_type"`
	StartDate       Date          `json:"start_date"`
	EndDate         Date          `json:"end_date"`
	Summary         PeriodSummary `json:"summary"`
	Compliance      *Compliance   `json:"compliance,omitempty"`
	AIInsights      *string       `json:"ai_insights"`
	Recommendations []string      `json:"recommendations"`
	CreatedAt       time.Time     `json:"created_at"`
}

// ReportSummary is what gets handed to delivery.
type ReportSummary struct {
	ReportID   uuid.UUID     `json:"report_id"`
	UserID     uuid.UUID     `json:"uid"`
	Type       ReportType    `json:"report_type"`
	StartDate  Date          `json:"start_date"`
	EndDate    Date          `json:"end_date"`
	Summary    PeriodSummary `json:"summary"`
	AIInsights *string       `json:"ai_insights"`
}

func (r *Report) DeliverySummary() ReportSummary {
	return ReportSummary{
		ReportID:   r.ID,
		UserID:     r.UserID,
		Type:       r.Type,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Summary:    r.Summary,
		AIInsights: r.AIInsights,
	}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
