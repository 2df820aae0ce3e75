package api

import (
	"context"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/alimentify/internal/service"
	"github.com/limbo/alimentify/pkg/httputil"
)

type MealRequest struct {
	MealType string  `json:"meal_type"`
	Date     string  `json:"date,omitempty"`
	FoodName string  `json:"food_name"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
	Notes    string  `json:"notes"`
}

func (s *Server) LogMeal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log meal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req MealRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("log meal error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := parseDateParam(req.Date, "date")
	if err != nil {
		writeServiceError(w, logger, "log meal", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	meal, err := s.mealsService.LogMeal(ctx, uid, &service.LogMealRequest{
		MealType: req.MealType,
		Date:     date,
		FoodName: req.FoodName,
		Calories: req.Calories,
		ProteinG: req.ProteinG,
		CarbsG:   req.CarbsG,
		FatG:     req.FatG,
		FiberG:   req.FiberG,
		Notes:    req.Notes,
	})
	if err != nil {
		writeServiceError(w, logger, "log meal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, meal)
	logger.Info("meal logged")
}

func (s *Server) GetDayMeals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get meals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := parseDateParam(r.URL.Query().Get("date"), "date")
	if err != nil {
		writeServiceError(w, logger, "get meals", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	day, err := s.mealsService.GetDayMeals(ctx, uid, date)
	if err != nil {
		writeServiceError(w, logger, "get meals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, day)
	logger.Info("meals provided")
}

// UpdateMeal ignores a date in the body. Meals stay on the day they were logged.
func (s *Server) UpdateMeal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update meal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update meal error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid meal id in path value", nil)
		return
	}
	var req MealRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update meal error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	meal, err := s.mealsService.UpdateMeal(ctx, id, uid, &service.UpdateMealRequest{
		MealType: req.MealType,
		FoodName: req.FoodName,
		Calories: req.Calories,
		ProteinG: req.ProteinG,
		CarbsG:   req.CarbsG,
		FatG:     req.FatG,
		FiberG:   req.FiberG,
		Notes:    req.Notes,
	})
	if err != nil {
		writeServiceError(w, logger, "update meal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, meal)
	logger.Info("meal updated")
}

func (s *Server) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("meal deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("meal deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid meal id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	if err = s.mealsService.DeleteMeal(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "meal deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("meal deleted")
}
