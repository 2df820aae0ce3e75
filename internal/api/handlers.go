package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/alimentify/internal/error_values"
	"github.com/limbo/alimentify/internal/service"
	"github.com/limbo/alimentify/pkg/entity"
	"github.com/limbo/alimentify/pkg/httputil"
)

type GenerateReportRequest struct {
	ReportType string `json:"report_type"`
	StartDate  string `json:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"`
	SendEmail  bool   `json:"send_email"`
}

type GenerateReportResponse struct {
	Report                *entity.Report `json:"report"`
	AIGenerationSucceeded bool           `json:"ai_generation_succeeded"`
	Warning               string         `json:"warning,omitempty"`
}

type GetReportsResponse struct {
	UserID  string           `json:"uid"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
	Reports []*entity.Report `json:"reports"`
}

// Report generation waits for the narrative, so it gets more time than plain reads
const (
	readTimeout     = 10 * time.Second
	generateTimeout = 30 * time.Second
)

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	q := r.URL.Query()
	var period entity.PeriodKind
	if raw := q.Get("period"); raw != "" {
		period, err = entity.ParsePeriodKind(raw)
		if err != nil {
			writeServiceError(w, logger, "get stats", err)
			return
		}
	}
	start, err := parseDateParam(q.Get("start_date"), "start_date")
	if err != nil {
		writeServiceError(w, logger, "get stats", err)
		return
	}
	end, err := parseDateParam(q.Get("end_date"), "end_date")
	if err != nil {
		writeServiceError(w, logger, "get stats", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	stats, err := s.analyticsService.PeriodStats(ctx, uid, service.StatsQuery{
		Period: period,
		Start:  start,
		End:    end,
	})
	if err != nil {
		writeServiceError(w, logger, "get stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("stats provided")
}

func (s *Server) GenerateReport(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("generate report error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req GenerateReportRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("generate report error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	reportType, err := entity.ParseReportType(req.ReportType)
	if err != nil {
		writeServiceError(w, logger, "generate report", err)
		return
	}
	start, err := parseDateParam(req.StartDate, "start_date")
	if err != nil {
		writeServiceError(w, logger, "generate report", err)
		return
	}
	end, err := parseDateParam(req.EndDate, "end_date")
	if err != nil {
		writeServiceError(w, logger, "generate report", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
	defer cancel()
	result, err := s.reportsService.Generate(ctx, uid, service.GenerateReportRequest{
		Type:      reportType,
		Start:     start,
		End:       end,
		SendEmail: req.SendEmail,
	})
	if err != nil {
		writeServiceError(w, logger, "generate report", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, GenerateReportResponse{
		Report:                result.Report,
		AIGenerationSucceeded: result.AIGenerationSucceeded,
		Warning:               result.Warning,
	})
	logger.Info("report generated", slog.String("report_id", result.Report.ID.String()), slog.Bool("ai_generation_succeeded", result.AIGenerationSucceeded))
}

func (s *Server) GetReports(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get reports error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, page, offset := paginationFromQuery(r)
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	reports, err := s.reportsService.ListReports(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeServiceError(w, logger, "get reports", err)
		return
	}
	if reports == nil {
		reports = []*entity.Report{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetReportsResponse{
		UserID:  uid.String(),
		Page:    page,
		Limit:   limit,
		Reports: reports,
	})
	logger.Info("reports provided")
}

func (s *Server) GetReport(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get report error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get report error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid report id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	report, err := s.reportsService.GetReport(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "get report", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
	logger.Info("report provided")
}

func (s *Server) DeleteReport(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("report deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("report deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid report id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()
	if err = s.reportsService.DeleteReport(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "report deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("report deleted")
}

func parseDateParam(raw, name string) (entity.Date, error) {
	if raw == "" {
		return entity.Date{}, nil
	}
	d, err := entity.ParseDate(raw)
	if err != nil {
		return entity.Date{}, fmt.Errorf("%w: %s: %v", errorvalues.ErrInvalidRange, name, err)
	}
	return d, nil
}

func paginationFromQuery(r *http.Request) (limit, page, offset int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err = strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return limit, page, (page - 1) * limit
}
