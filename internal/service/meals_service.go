package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/alimentify/internal/error_values"
	"github.com/limbo/alimentify/internal/repository"
	"github.com/limbo/alimentify/pkg/entity"
)

type MealsService struct {
	repo     repository.MealsRepositoryI
	profiles ProfileReader
	targets  TargetsConfig
	logger   *slog.Logger
	now      func() time.Time
}

func NewMealsService(mealsRepo repository.MealsRepositoryI, profiles ProfileReader, targets TargetsConfig, logger *slog.Logger) *MealsService {
	if mealsRepo == nil {
		log.Fatal("provided nil mealsRepo")
	}
	if profiles == nil {
		log.Fatal("provided nil profile reader")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MealsService{
		repo:     mealsRepo,
		profiles: profiles,
		targets:  targetsOrDefault(targets),
		logger:   logger,
		now:      time.Now,
	}
}

func (ms *MealsService) LogMeal(ctx context.Context, uid uuid.UUID, req *LogMealRequest) (*entity.MealEntry, error) {
	if err := validateRequest(req, errorvalues.ErrInvalidMeal); err != nil {
		return nil, err
	}
	mealType, _ := entity.ParseMealType(req.MealType)
	date := req.Date
	if date.IsZero() {
		date = entity.DateOf(ms.now())
	}
	m := entity.MealEntry{
		UserID:   uid,
		MealType: mealType,
		Date:     date,
		FoodName: req.FoodName,
		Macros: entity.Macros{
			Calories: req.Calories,
			ProteinG: req.ProteinG,
			CarbsG:   req.CarbsG,
			FatG:     req.FatG,
			FiberG:   req.FiberG,
		},
		Notes: req.Notes,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	id, err := ms.repo.Create(ctx, &m)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidMeal) {
			return nil, err
		}
		return nil, asStoreError("creating meal", err)
	}
	meal, err := ms.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMealNotFound) {
			return nil, err
		}
		return nil, asStoreError("reading meal", err)
	}
	return meal, nil
}

// GetDayMeals adds targets and what is left of them when the user has a profile.
func (ms *MealsService) GetDayMeals(ctx context.Context, uid uuid.UUID, date entity.Date) (*DayMeals, error) {
	if date.IsZero() {
		date = entity.DateOf(ms.now())
	}
	meals, err := ms.repo.GetByUserAndDateRange(ctx, uid, date, date)
	if err != nil {
		return nil, asStoreError("reading meals", err)
	}
	if meals == nil {
		meals = []entity.MealEntry{}
	}
	day := &DayMeals{
		Date:   date,
		Meals:  meals,
		Totals: dailyTotals(date, date, meals)[0],
	}

	profile, err := ms.profiles.GetByUserID(ctx, uid)
	switch {
	case errors.Is(err, errorvalues.ErrProfileNotFound):
		return day, nil
	case err != nil:
		return nil, asStoreError("reading health profile", err)
	}
	targets, err := CalculateTargets(ms.targets, profile)
	if err != nil {
		ms.logger.Warn("stored health profile is invalid", slog.String("uid", uid.String()), slog.String("error", err.Error()))
		return day, nil
	}
	day.Targets = targets
	day.Remaining = &entity.Macros{
		Calories: max(0, float64(targets.DailyCalories)-day.Totals.Calories),
		ProteinG: max(0, float64(targets.ProteinG)-day.Totals.ProteinG),
		CarbsG:   max(0, float64(targets.CarbsG)-day.Totals.CarbsG),
		FatG:     max(0, float64(targets.FatG)-day.Totals.FatG),
	}
	return day, nil
}

func (ms *MealsService) UpdateMeal(ctx context.Context, mealID, uid uuid.UUID, req *UpdateMealRequest) (*entity.MealEntry, error) {
	if err := validateRequest(req, errorvalues.ErrInvalidMeal); err != nil {
		return nil, err
	}
	meal, err := ms.ownedMeal(ctx, mealID, uid)
	if err != nil {
		return nil, err
	}
	mealType, _ := entity.ParseMealType(req.MealType)
	meal.MealType = mealType
	meal.FoodName = req.FoodName
	meal.Macros = entity.Macros{
		Calories: req.Calories,
		ProteinG: req.ProteinG,
		CarbsG:   req.CarbsG,
		FatG:     req.FatG,
		FiberG:   req.FiberG,
	}
	meal.Notes = req.Notes
	if err = meal.Validate(); err != nil {
		return nil, err
	}
	if err = ms.repo.Update(ctx, meal); err != nil {
		if errors.Is(err, errorvalues.ErrMealNotFound) || errors.Is(err, errorvalues.ErrInvalidMeal) {
			return nil, err
		}
		return nil, asStoreError("updating meal", err)
	}
	return meal, nil
}

func (ms *MealsService) DeleteMeal(ctx context.Context, mealID, uid uuid.UUID) error {
	if _, err := ms.ownedMeal(ctx, mealID, uid); err != nil {
		return err
	}
	err := ms.repo.Delete(ctx, mealID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMealNotFound) {
			return err
		}
		return asStoreError("deleting meal", err)
	}
	return nil
}

func (ms *MealsService) ownedMeal(ctx context.Context, mealID, uid uuid.UUID) (*entity.MealEntry, error) {
	meal, err := ms.repo.GetByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMealNotFound) {
			return nil, err
		}
		return nil, asStoreError("reading meal", err)
	}
	if meal.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return meal, nil
}
