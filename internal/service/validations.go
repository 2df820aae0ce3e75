package service

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/limbo/alimentify/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("sex", func(fl validator.FieldLevel) bool {
			_, err := entity.ParseSex(fl.Field().String())
			return err == nil
		})
		validate.RegisterValidation("activity_level", func(fl validator.FieldLevel) bool {
			_, err := entity.ParseActivityLevel(fl.Field().String())
			return err == nil
		})
		validate.RegisterValidation("goal", func(fl validator.FieldLevel) bool {
			_, err := entity.ParseGoal(fl.Field().String())
			return err == nil
		})
		validate.RegisterValidation("meal_type", func(fl validator.FieldLevel) bool {
			_, err := entity.ParseMealType(fl.Field().String())
			return err == nil
		})
	})
}

// validateRequest joins every field error onto kind so callers can errors.Is it.
func validateRequest(req any, kind error) error {
	InitValidator()
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = kind
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.Join(kind, errors.New("validation unexpected error: "+err.Error()))
}
