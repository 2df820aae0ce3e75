package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/alimentify/internal/error_values"
	"github.com/limbo/alimentify/internal/repository"
	"github.com/limbo/alimentify/pkg/entity"
	"golang.org/x/sync/errgroup"
)

type ReportsConfig struct {
	GenerationTimeout  time.Duration
	NotifyTimeout      time.Duration
	MaxRecommendations int
	Targets            TargetsConfig
}

func DefaultReportsConfig() ReportsConfig {
	return ReportsConfig{
		GenerationTimeout:  10 * time.Second,
		NotifyTimeout:      5 * time.Second,
		MaxRecommendations: 10,
		Targets:            DefaultTargetsConfig(),
	}
}

type ReportsDeps struct {
	Reports    repository.ReportsRepositoryI
	Profiles   ProfileReader
	Aggregator PeriodAggregator
	Generator  NarrativeGenerator
	// Optional. Reports are still stored when delivery is not configured
	Notifier Notifier
	Logger   *slog.Logger
}

type ReportsService struct {
	reports    repository.ReportsRepositoryI
	profiles   ProfileReader
	aggregator PeriodAggregator
	generator  NarrativeGenerator
	notifier   Notifier
	logger     *slog.Logger
	cfg        ReportsConfig
	now        func() time.Time
}

func NewReportsService(deps ReportsDeps, cfg ReportsConfig) *ReportsService {
	switch {
	case deps.Reports == nil:
		log.Fatal("provided nil reports repository")
	case deps.Profiles == nil:
		log.Fatal("provided nil profile reader")
	case deps.Aggregator == nil:
		log.Fatal("provided nil aggregator")
	case deps.Generator == nil:
		log.Fatal("provided nil narrative generator")
	}
	defaults := DefaultReportsConfig()
	if cfg.GenerationTimeout <= 0 {
		cfg.GenerationTimeout = defaults.GenerationTimeout
	}
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = defaults.NotifyTimeout
	}
	if cfg.MaxRecommendations <= 0 {
		cfg.MaxRecommendations = defaults.MaxRecommendations
	}
	cfg.Targets = targetsOrDefault(cfg.Targets)
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportsService{
		reports:    deps.Reports,
		profiles:   deps.Profiles,
		aggregator: deps.Aggregator,
		generator:  deps.Generator,
		notifier:   deps.Notifier,
		logger:     logger,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (rs *ReportsService) Generate(ctx context.Context, uid uuid.UUID, req GenerateReportRequest) (*GenerateReportResult, error) {
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", errorvalues.ErrInvalidReportType, req.Type)
	}
	start, end := req.Start, req.End
	if start.IsZero() && end.IsZero() {
		start, end = PeriodBounds(req.Type.PeriodKind(), entity.DateOf(rs.now()))
	}
	logger := rs.logger.With(
		slog.String("uid", uid.String()),
		slog.String("report_type", string(req.Type)),
		slog.String("start_date", start.String()),
		slog.String("end_date", end.String()),
	)

	var (
		profile *entity.HealthProfile
		stats   *entity.PeriodStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := rs.profiles.GetByUserID(gctx, uid)
		if err != nil {
			if errors.Is(err, errorvalues.ErrProfileNotFound) {
				return nil
			}
			return asStoreError("reading health profile", err)
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		s, err := rs.aggregator.Aggregate(gctx, uid, req.Type.PeriodKind(), start, end)
		if err != nil {
			return err
		}
		stats = s
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var (
		targets    *entity.Targets
		compliance *entity.Compliance
	)
	if profile != nil {
		t, err := CalculateTargets(rs.cfg.Targets, profile)
		if err != nil {
			logger.Warn("stored health profile is invalid, generating report without targets", slog.String("error", err.Error()))
		} else {
			targets = t
			compliance = BuildCompliance(profile.Goal, stats, targets)
		}
	}

	outcome := rs.narrate(ctx, newNarrativeContext(req.Type, stats, targets, compliance))
	result := &GenerateReportResult{AIGenerationSucceeded: outcome.Available()}
	if !outcome.Available() {
		result.Warning = "AI insights are unavailable for this report"
		logger.Warn("report generated without AI insights", slog.String("reason", outcome.Reason().Error()))
	}

	report := &entity.Report{
		UserID:          uid,
		Type:            req.Type,
		StartDate:       start,
		EndDate:         end,
		Summary:         stats.Summary,
		Compliance:      compliance,
		AIInsights:      outcome.Insights(),
		Recommendations: outcome.Recommendations(rs.cfg.MaxRecommendations),
		CreatedAt:       rs.now().UTC().Truncate(time.Microsecond),
	}
	id, err := rs.reports.Create(ctx, report)
	if err != nil {
		return nil, asStoreError("storing report", err)
	}
	report.ID = id
	result.Report = report
	logger.Info("report stored", slog.String("report_id", id.String()), slog.Bool("ai_generation_succeeded", result.AIGenerationSucceeded))

	if req.SendEmail {
		rs.deliver(ctx, logger, report)
	}
	return result, nil
}

// narrate never fails: a generator that errors, stalls or returns nothing yields an unavailable outcome.
func (rs *ReportsService) narrate(ctx context.Context, nc NarrativeContext) NarrativeOutcome {
	ctx, cancel := context.WithTimeout(ctx, rs.cfg.GenerationTimeout)
	defer cancel()

	type generated struct {
		narrative *Narrative
		err       error
	}
	done := make(chan generated, 1)
	go func() {
		n, err := rs.generator.Generate(ctx, nc)
		done <- generated{narrative: n, err: err}
	}()

	select {
	case <-ctx.Done():
		return narrativeUnavailable(fmt.Errorf("%w: %v", errorvalues.ErrGenerationTimeout, ctx.Err()))
	case res := <-done:
		switch {
		case res.err != nil:
			if !errors.Is(res.err, errorvalues.ErrGenerationTimeout) && !errors.Is(res.err, errorvalues.ErrGenerationError) {
				res.err = fmt.Errorf("%w: %v", errorvalues.ErrGenerationError, res.err)
			}
			return narrativeUnavailable(res.err)
		case res.narrative == nil || res.narrative.Text == "":
			return narrativeUnavailable(fmt.Errorf("%w: empty narrative", errorvalues.ErrGenerationError))
		}
		return narrativeAvailable(res.narrative)
	}
}

// deliver is best-effort. The report is already stored when it runs.
func (rs *ReportsService) deliver(ctx context.Context, logger *slog.Logger, report *entity.Report) {
	if rs.notifier == nil {
		logger.Warn("report delivery requested but no notifier is configured")
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rs.cfg.NotifyTimeout)
	defer cancel()
	if err := rs.notifier.Notify(ctx, report.UserID, report.DeliverySummary()); err != nil {
		logger.Error("report delivery failed", slog.String("report_id", report.ID.String()), slog.String("error", err.Error()))
		return
	}
	logger.Info("report delivery queued", slog.String("report_id", report.ID.String()))
}

func (rs *ReportsService) ListReports(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Report, error) {
	reports, err := rs.reports.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, asStoreError("listing reports", err)
	}
	return reports, nil
}

func (rs *ReportsService) GetReport(ctx context.Context, reportID, uid uuid.UUID) (*entity.Report, error) {
	report, err := rs.reports.GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrReportNotFound) {
			return nil, err
		}
		return nil, asStoreError("reading report", err)
	}
	if report.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return report, nil
}

func (rs *ReportsService) DeleteReport(ctx context.Context, reportID, uid uuid.UUID) error {
	if _, err := rs.GetReport(ctx, reportID, uid); err != nil {
		return err
	}
	err := rs.reports.Delete(ctx, reportID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrReportNotFound) {
			return err
		}
		return asStoreError("deleting report", err)
	}
	return nil
}
