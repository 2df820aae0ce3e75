package errorvalues

import "errors"

// Caller errors
var (
	ErrInvalidProfile    = errors.New("invalid health profile")
	ErrInvalidMeal       = errors.New("invalid meal entry")
	ErrInvalidRange      = errors.New("end date is before start date")
	ErrRangeTooLarge     = errors.New("date range exceeds allowed maximum")
	ErrInvalidPeriod     = errors.New("invalid period kind")
	ErrInvalidReportType = errors.New("invalid report type")
	ErrInvalidToken      = errors.New("invalid token")
)

// Lookup errors
var (
	ErrProfileNotFound = errors.New("health profile doesn't exist")
	ErrMealNotFound    = errors.New("meal doesn't exist")
	ErrReportNotFound  = errors.New("report doesn't exist")
	ErrWrongOwner      = errors.New("resource belongs to another user")
)

// Infrastructure errors. Generation errors never leave the report service.
var (
	ErrStoreUnavailable  = errors.New("store unavailable")
	ErrGenerationTimeout = errors.New("narrative generation timed out")
	ErrGenerationError   = errors.New("narrative generation failed")
)
