package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/alimentify/internal/error_values"
	"github.com/limbo/alimentify/pkg/entity"
)

type AnalyticsService struct {
	aggregator PeriodAggregator
	now        func() time.Time
}

func NewAnalyticsService(aggregator PeriodAggregator) *AnalyticsService {
	if aggregator == nil {
		log.Fatal("provided nil aggregator")
	}
	return &AnalyticsService{
		aggregator: aggregator,
		now:        time.Now,
	}
}

// PeriodStats uses the calendar period containing today when both dates are omitted.
func (as *AnalyticsService) PeriodStats(ctx context.Context, uid uuid.UUID, q StatsQuery) (*entity.PeriodStats, error) {
	if q.Period == "" {
		q.Period = entity.PeriodWeekly
	}
	if !q.Period.Valid() {
		return nil, fmt.Errorf("%w: %q", errorvalues.ErrInvalidPeriod, q.Period)
	}
	if q.Start.IsZero() && q.End.IsZero() {
		q.Start, q.End = PeriodBounds(q.Period, entity.DateOf(as.now()))
	}
	return as.aggregator.Aggregate(ctx, uid, q.Period, q.Start, q.End)
}
