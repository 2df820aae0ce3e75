// @title Alimentify API
// @description Meal analytics and nutrition reports for the "Alimentify" app
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/alimentify/internal/api"
	"github.com/limbo/alimentify/internal/llm"
	"github.com/limbo/alimentify/internal/notify"
	"github.com/limbo/alimentify/internal/repository"
	"github.com/limbo/alimentify/internal/service"
	"github.com/limbo/alimentify/pkg/cleanup"
	"github.com/limbo/alimentify/pkg/config"
	jwtservice "github.com/limbo/alimentify/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	cfg := config.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.NewPool(&dbCfg)
	mealsRepo := repository.NewMealsRepoWithConn(pool)
	profilesRepo := repository.NewProfilesRepoWithConn(pool)
	reportsRepo := repository.NewReportsRepoWithConn(pool)

	targetsCfg := service.DefaultTargetsConfig()
	aggregator := service.NewAggregator(mealsRepo, service.AggregatorConfig{
		MaxRangeDays: cfg.GetInt("MAX_RANGE_DAYS", service.DefaultAggregatorConfig().MaxRangeDays),
	})
	reportsCfg := service.ReportsConfig{
		GenerationTimeout:  cfg.GetDuration("NARRATIVE_TIMEOUT", service.DefaultReportsConfig().GenerationTimeout),
		NotifyTimeout:      cfg.GetDuration("NOTIFY_TIMEOUT", service.DefaultReportsConfig().NotifyTimeout),
		MaxRecommendations: cfg.GetInt("MAX_RECOMMENDATIONS", service.DefaultReportsConfig().MaxRecommendations),
		Targets:            targetsCfg,
	}

	var generator service.NarrativeGenerator = llm.Disabled{}
	if key := cfg.GetString("GEMINI_API_KEY"); key != "" {
		gemini, err := llm.NewGemini(ctx, llm.GeminiConfig{
			APIKey:             key,
			Model:              cfg.GetString("GEMINI_MODEL"),
			Temperature:        float32(cfg.GetFloat("GEMINI_TEMPERATURE", 0)),
			MaxRecommendations: reportsCfg.MaxRecommendations,
		})
		if err != nil {
			log.Fatal("creating narrative generator error: " + err.Error())
		}
		generator = gemini
	} else {
		slog.Warn("GEMINI_API_KEY is not set, reports are generated without AI insights")
	}

	// A nil interface, not a typed nil, keeps delivery disabled
	var notifier service.Notifier
	if url := cfg.GetString("AMQP_URL"); url != "" {
		publisher, err := notify.NewPublisher(notify.AMQPConfig{
			URL:   url,
			Queue: cfg.GetStringOr("REPORT_DELIVERY_QUEUE", "report_delivery"),
		})
		if err != nil {
			log.Fatal("creating report publisher error: " + err.Error())
		}
		notifier = publisher
	} else {
		slog.Warn("AMQP_URL is not set, report delivery is disabled")
	}

	serv := api.New(&api.ServicesList{
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET")),
		AnalyticsService: service.NewAnalyticsService(aggregator),
		ReportsService: service.NewReportsService(service.ReportsDeps{
			Reports:    reportsRepo,
			Profiles:   profilesRepo,
			Aggregator: aggregator,
			Generator:  generator,
			Notifier:   notifier,
			Logger:     slog.Default().With(slog.String("component", "reports")),
		}, reportsCfg),
		ProfileService: service.NewProfileService(profilesRepo, targetsCfg),
		MealsService:   service.NewMealsService(mealsRepo, profilesRepo, targetsCfg, slog.Default().With(slog.String("component", "meals"))),
	})
	err := serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	if err = cleanup.CleanUp(); err != nil {
		slog.Error("cleanup finished with errors", slog.String("error", err.Error()))
	}
}
