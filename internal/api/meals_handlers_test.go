package api_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/alimentify/internal/api"
	errorvalues "github.com/limbo/alimentify/internal/error_values"
	"github.com/limbo/alimentify/internal/service"
	"github.com/limbo/alimentify/internal/service/mocks"
	"github.com/limbo/alimentify/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogMeal(t *testing.T) {
	ctrl := gomock.NewController(t)
	mService := mocks.NewMockMealsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		MealsService: mService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.MealRequest{
		MealType: "lunch",
		Date:     "2024-04-01",
		FoodName: "salad",
		Calories: 420,
		ProteinG: 25,
	})
	require.NoError(t, err)
	expected := &service.LogMealRequest{
		MealType: "lunch",
		Date:     weekStart,
		FoodName: "salad",
		Calories: 420,
		ProteinG: 25,
	}
	t.Run("created", func(t *testing.T) {
		mService.EXPECT().LogMeal(gomock.Any(), userID, expected).Return(&entity.MealEntry{
			ID:       uuid.New(),
			UserID:   userID,
			MealType: entity.MealLunch,
			Date:     weekStart,
		}, nil)
		rr := httptest.NewRecorder()
		serv.LogMeal(rr, withUser(httptest.NewRequest(http.MethodPost, "/api/v1/meals", bytes.NewReader(body))))
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("invalid meal", func(t *testing.T) {
		mService.EXPECT().LogMeal(gomock.Any(), userID, expected).Return(nil, errorvalues.ErrInvalidMeal)
		rr := httptest.NewRecorder()
		serv.LogMeal(rr, withUser(httptest.NewRequest(http.MethodPost, "/api/v1/meals", bytes.NewReader(body))))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("bad date", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/meals", bytes.NewReader([]byte(`{"meal_type":"lunch","date":"yesterday"}`)))
		serv.LogMeal(rr, withUser(r))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestUpdateAndDeleteMeal(t *testing.T) {
	ctrl := gomock.NewController(t)
	mService := mocks.NewMockMealsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		MealsService: mService,
	})
	mealID := uuid.New()
	body := []byte(`{"meal_type":"dinner","date":"2030-01-01","calories":600}`)
	testCases := []struct {
		Name         string
		ServiceErr   error
		ExpectedCode int
	}{
		{"updated", nil, http.StatusOK},
		{"foreign meal", errorvalues.ErrWrongOwner, http.StatusNotFound},
		{"missing meal", errorvalues.ErrMealNotFound, http.StatusNotFound},
		{"service error", errors.New("service error"), http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var meal *entity.MealEntry
			if tc.ServiceErr == nil {
				meal = &entity.MealEntry{ID: mealID, UserID: userID, MealType: entity.MealDinner, Date: weekStart}
			}
			// the date in the body never reaches the service
			mService.EXPECT().UpdateMeal(gomock.Any(), mealID, userID, &service.UpdateMealRequest{
				MealType: "dinner",
				Calories: 600,
			}).Return(meal, tc.ServiceErr)
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPut, "/api/v1/meals/"+mealID.String(), bytes.NewReader(body))
			r.SetPathValue("id", mealID.String())
			serv.UpdateMeal(rr, withUser(r))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
	t.Run("delete foreign meal", func(t *testing.T) {
		mService.EXPECT().DeleteMeal(gomock.Any(), mealID, userID).Return(errorvalues.ErrWrongOwner)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/v1/meals/"+mealID.String(), nil)
		r.SetPathValue("id", mealID.String())
		serv.DeleteMeal(rr, withUser(r))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestGetDayMeals(t *testing.T) {
	ctrl := gomock.NewController(t)
	mService := mocks.NewMockMealsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		MealsService: mService,
	})
	mService.EXPECT().GetDayMeals(gomock.Any(), userID, weekStart).Return(&service.DayMeals{
		Date:      weekStart,
		Meals:     []entity.MealEntry{},
		Totals:    entity.DayTotals{Date: weekStart},
		Targets:   &entity.Targets{DailyCalories: 2044},
		Remaining: &entity.Macros{Calories: 2044},
	}, nil)
	rr := httptest.NewRecorder()
	serv.GetDayMeals(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/meals?date=2024-04-01", nil)))
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	result := make(map[string]any)
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result))
	remaining := result["remaining"].(map[string]any)
	assert.Equal(t, 2044.0, remaining["calories"])
}

func TestProfileHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	pService := mocks.NewMockProfileServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		ProfileService: pService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.UpsertProfileRequest{
		Age:           30,
		WeightKg:      70,
		HeightCm:      175,
		Sex:           "male",
		ActivityLevel: "moderate",
		Goal:          "lose",
	})
	require.NoError(t, err)
	expected := &service.UpsertProfileRequest{
		Age:           30,
		WeightKg:      70,
		HeightCm:      175,
		Sex:           "male",
		ActivityLevel: "moderate",
		Goal:          "lose",
	}
	t.Run("saved", func(t *testing.T) {
		pService.EXPECT().UpsertProfile(gomock.Any(), userID, expected).Return(
			&entity.HealthProfile{UserID: userID, Age: 30},
			&entity.Targets{DailyCalories: 2044, BMICategory: "Normal weight"},
			nil,
		)
		rr := httptest.NewRecorder()
		serv.UpsertProfile(rr, withUser(httptest.NewRequest(http.MethodPut, "/api/v1/profile", bytes.NewReader(body))))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.ProfileResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&resp))
		assert.Equal(t, 2044, resp.Targets.DailyCalories)
	})
	t.Run("invalid profile", func(t *testing.T) {
		pService.EXPECT().UpsertProfile(gomock.Any(), userID, expected).Return(nil, nil, errorvalues.ErrInvalidProfile)
		rr := httptest.NewRecorder()
		serv.UpsertProfile(rr, withUser(httptest.NewRequest(http.MethodPut, "/api/v1/profile", bytes.NewReader(body))))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("targets without profile", func(t *testing.T) {
		pService.EXPECT().GetTargets(gomock.Any(), userID).Return(nil, errorvalues.ErrProfileNotFound)
		rr := httptest.NewRecorder()
		serv.GetTargets(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/profile/targets", nil)))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("profile store unavailable", func(t *testing.T) {
		pService.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, errorvalues.ErrStoreUnavailable)
		rr := httptest.NewRecorder()
		serv.GetProfile(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)))
		assert.Equal(t, http.StatusServiceUnavailable, rr.Result().StatusCode)
	})
}
