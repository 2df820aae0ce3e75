package api

import (
	"context"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/limbo/alimentify/internal/service"
	"github.com/limbo/alimentify/pkg/entity"
	"github.com/limbo/alimentify/pkg/httputil"
)

type UpsertProfileRequest struct {
	Age           int     `json:"age"`
	WeightKg      float64 `json:"weight_kg"`
	HeightCm      float64 `json:"height_cm"`
	Sex           string  `json:"sex"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
}

type ProfileResponse struct {
	Profile *entity.HealthProfile `json:"profile"`
	Targets *entity.Targets       `json:"targets"`
}

func (s *Server) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("upsert profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpsertProfileRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("upsert profile error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	profile, targets, err := s.profileService.UpsertProfile(ctx, uid, &service.UpsertProfileRequest{
		Age:           req.Age,
		WeightKg:      req.WeightKg,
		HeightCm:      req.HeightCm,
		Sex:           req.Sex,
		ActivityLevel: req.ActivityLevel,
		Goal:          req.Goal,
	})
	if err != nil {
		writeServiceError(w, logger, "upsert profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ProfileResponse{
		Profile: profile,
		Targets: targets,
	})
	logger.Info("profile saved")
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	profile, err := s.profileService.GetProfile(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
	logger.Info("profile provided")
}

func (s *Server) GetTargets(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get targets error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	targets, err := s.profileService.GetTargets(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get targets", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, targets)
	logger.Info("targets provided")
}
