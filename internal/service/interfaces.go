package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/alimentify/pkg/entity"
)

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UpsertProfileRequest struct {
	Age           int     `validate:"gte=0,lte=150"`
	WeightKg      float64 `validate:"gt=0,lte=700"`
	HeightCm      float64 `validate:"gt=0,lte=300"`
	Sex           string  `validate:"required,sex"`
	ActivityLevel string  `validate:"required,activity_level"`
	Goal          string  `validate:"required,goal"`
}

type LogMealRequest struct {
	MealType string `validate:"required,meal_type"`
	// Zero date means today
	Date     entity.Date
	FoodName string  `validate:"max=200"`
	Calories float64 `validate:"gte=0"`
	ProteinG float64 `validate:"gte=0"`
	CarbsG   float64 `validate:"gte=0"`
	FatG     float64 `validate:"gte=0"`
	FiberG   float64 `validate:"gte=0"`
	Notes    string  `validate:"max=1000"`
}

// UpdateMealRequest carries no date: a meal stays on the day it was logged.
type UpdateMealRequest struct {
	MealType string  `validate:"required,meal_type"`
	FoodName string  `validate:"max=200"`
	Calories float64 `validate:"gte=0"`
	ProteinG float64 `validate:"gte=0"`
	CarbsG   float64 `validate:"gte=0"`
	FatG     float64 `validate:"gte=0"`
	FiberG   float64 `validate:"gte=0"`
	Notes    string  `validate:"max=1000"`
}

// StatsQuery leaves Start/End zero to use the calendar period around today.
type StatsQuery struct {
	Period entity.PeriodKind
	Start  entity.Date
	End    entity.Date
}

type GenerateReportRequest struct {
	Type      entity.ReportType
	Start     entity.Date
	End       entity.Date
	SendEmail bool
}

type GenerateReportResult struct {
	Report                *entity.Report
	AIGenerationSucceeded bool
	// Filled when the report was produced without AI insights
	Warning string
}

// DayMeals is a single day's log with progress towards the daily targets.
type DayMeals struct {
	Date      entity.Date        `json:"date"`
	Meals     []entity.MealEntry `json:"meals"`
	Totals    entity.DayTotals   `json:"totals"`
	Targets   *entity.Targets    `json:"targets,omitempty"`
	Remaining *entity.Macros     `json:"remaining,omitempty"`
}

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

type AnalyticsServiceI interface {
	// Aggregates user's meals over the requested period
	PeriodStats(ctx context.Context, uid uuid.UUID, q StatsQuery) (*entity.PeriodStats, error)
}

type ReportsServiceI interface {
	// Aggregates, narrates and stores a report. Narrative failures only degrade the result
	Generate(ctx context.Context, uid uuid.UUID, req GenerateReportRequest) (*GenerateReportResult, error)
	ListReports(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Report, error)
	GetReport(ctx context.Context, reportID, uid uuid.UUID) (*entity.Report, error)
	DeleteReport(ctx context.Context, reportID, uid uuid.UUID) error
}

type ProfileServiceI interface {
	UpsertProfile(ctx context.Context, uid uuid.UUID, req *UpsertProfileRequest) (*entity.HealthProfile, *entity.Targets, error)
	GetProfile(ctx context.Context, uid uuid.UUID) (*entity.HealthProfile, error)
	// Recomputes targets from the currently stored profile
	GetTargets(ctx context.Context, uid uuid.UUID) (*entity.Targets, error)
}

type MealsServiceI interface {
	LogMeal(ctx context.Context, uid uuid.UUID, req *LogMealRequest) (*entity.MealEntry, error)
	GetDayMeals(ctx context.Context, uid uuid.UUID, date entity.Date) (*DayMeals, error)
	UpdateMeal(ctx context.Context, mealID, uid uuid.UUID, req *UpdateMealRequest) (*entity.MealEntry, error)
	DeleteMeal(ctx context.Context, mealID, uid uuid.UUID) error
}

// Collaborators consumed by the report service

type MealReader interface {
	GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to entity.Date) ([]entity.MealEntry, error)
}

type ProfileReader interface {
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.HealthProfile, error)
}

type PeriodAggregator interface {
	Aggregate(ctx context.Context, uid uuid.UUID, kind entity.PeriodKind, start, end entity.Date) (*entity.PeriodStats, error)
}

type NarrativeGenerator interface {
	// Returns ErrGenerationTimeout or ErrGenerationError on failure
	Generate(ctx context.Context, nc NarrativeContext) (*Narrative, error)
}

type Notifier interface {
	Notify(ctx context.Context, uid uuid.UUID, summary entity.ReportSummary) error
}
