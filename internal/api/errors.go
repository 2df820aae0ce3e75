package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/alimentify/internal/error_values"
	"github.com/limbo/alimentify/pkg/httputil"
)

var badRequestErrors = []error{
	errorvalues.ErrInvalidProfile,
	errorvalues.ErrInvalidMeal,
	errorvalues.ErrInvalidRange,
	errorvalues.ErrRangeTooLarge,
	errorvalues.ErrInvalidPeriod,
	errorvalues.ErrInvalidReportType,
}

// Foreign resources are reported as missing
var notFoundErrors = []error{
	errorvalues.ErrProfileNotFound,
	errorvalues.ErrMealNotFound,
	errorvalues.ErrReportNotFound,
	errorvalues.ErrWrongOwner,
}

func statusFor(err error) int {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound
		}
	}
	if errors.Is(err, errorvalues.ErrStoreUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err under op and answers with the mapped status.
// Only caller errors carry details back to the client.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	code := statusFor(err)
	switch code {
	case http.StatusBadRequest:
		logger.Error(op+" error: invalid input", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, code, "invalid request", err)
	case http.StatusNotFound:
		logger.Error(op+" error: not found", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, code, "resource doesn't exist", nil)
	case http.StatusServiceUnavailable:
		logger.Error(op+" error: store unavailable", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, code, "storage is temporarily unavailable", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, code, "internal error during "+op, nil)
	}
}
