package service

import (
	"fmt"
	"math"

	errorvalues "github.com/limbo/alimentify/internal/error_values"
	"github.com/limbo/alimentify/pkg/entity"
)

type TargetsConfig struct {
	ActivityMultipliers map[entity.ActivityLevel]float64
	// Multiplier applied to TDEE per goal, e.g. 0.8 for a 20% deficit
	GoalFactors        map[entity.Goal]float64
	ProteinPerKg       float64
	FatShare           float64
	KcalPerGramProtein float64
	KcalPerGramCarbs   float64
	KcalPerGramFat     float64
}

func DefaultTargetsConfig() TargetsConfig {
	return TargetsConfig{
		ActivityMultipliers: map[entity.ActivityLevel]float64{
			entity.ActivitySedentary:  1.2,
			entity.ActivityLight:      1.375,
			entity.ActivityModerate:   1.55,
			entity.ActivityActive:     1.725,
			entity.ActivityVeryActive: 1.9,
		},
		GoalFactors: map[entity.Goal]float64{
			entity.GoalLose:     0.8,
			entity.GoalMaintain: 1.0,
			entity.GoalGain:     1.15,
		},
		ProteinPerKg:       1.6,
		FatShare:           0.30,
		KcalPerGramProtein: 4,
		KcalPerGramCarbs:   4,
		KcalPerGramFat:     9,
	}
}

const (
	BMIUnderweight = "Underweight"
	BMINormal      = "Normal weight"
	BMIOverweight  = "Overweight"
	BMIObese       = "Obese"
)

// CalculateTargets derives BMI and daily calorie/macro targets from a profile.
// Calories use Mifflin-St Jeor scaled by activity and goal, rounded once at the end.
func CalculateTargets(cfg TargetsConfig, p *entity.HealthProfile) (*entity.Targets, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: profile is missing", errorvalues.ErrInvalidProfile)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	multiplier, ok := cfg.ActivityMultipliers[p.ActivityLevel]
	if !ok {
		return nil, fmt.Errorf("%w: no multiplier for activity level %q", errorvalues.ErrInvalidProfile, p.ActivityLevel)
	}
	goalFactor, ok := cfg.GoalFactors[p.Goal]
	if !ok {
		return nil, fmt.Errorf("%w: no adjustment for goal %q", errorvalues.ErrInvalidProfile, p.Goal)
	}

	heightM := p.HeightCm / 100
	bmi := roundTo(p.WeightKg/(heightM*heightM), 2)

	bmr := basalMetabolicRate(p)
	tdee := bmr * multiplier
	calories := int(math.Round(tdee * goalFactor))

	protein := int(math.Round(cfg.ProteinPerKg * p.WeightKg))
	fat := int(math.Round(float64(calories) * cfg.FatShare / cfg.KcalPerGramFat))
	carbsKcal := float64(calories) - float64(protein)*cfg.KcalPerGramProtein - float64(fat)*cfg.KcalPerGramFat
	carbs := int(math.Round(math.Max(0, carbsKcal) / cfg.KcalPerGramCarbs))

	return &entity.Targets{
		BMI:           bmi,
		BMICategory:   BMICategory(bmi),
		BMR:           int(math.Round(bmr)),
		TDEE:          int(math.Round(tdee)),
		DailyCalories: calories,
		ProteinG:      protein,
		CarbsG:        carbs,
		FatG:          fat,
	}, nil
}

// BMICategory bands are closed on their lower bound.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

func basalMetabolicRate(p *entity.HealthProfile) float64 {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Sex == entity.SexMale {
		return bmr + 5
	}
	return bmr - 161
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

func targetsOrDefault(cfg TargetsConfig) TargetsConfig {
	if cfg.ActivityMultipliers == nil || cfg.GoalFactors == nil {
		return DefaultTargetsConfig()
	}
	return cfg
}
