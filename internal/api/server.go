package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/alimentify/internal/service"
)

type Server struct {
	mx               *chi.Mux
	jwtService       JWTServiceI
	analyticsService service.AnalyticsServiceI
	reportsService   service.ReportsServiceI
	profileService   service.ProfileServiceI
	mealsService     service.MealsServiceI
}

type ServicesList struct {
	JwtService       JWTServiceI
	AnalyticsService service.AnalyticsServiceI
	ReportsService   service.ReportsServiceI
	ProfileService   service.ProfileServiceI
	MealsService     service.MealsServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		jwtService:       servicesOptions.JwtService,
		analyticsService: servicesOptions.AnalyticsService,
		reportsService:   servicesOptions.ReportsService,
		profileService:   servicesOptions.ProfileService,
		mealsService:     servicesOptions.MealsService,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(middleware.Recoverer, s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
		r.Get("/analytics/stats", s.GetStats)

		r.Post("/reports/generate", s.GenerateReport)
		r.Get("/reports", s.GetReports)
		r.Get("/reports/{id}", s.GetReport)
		r.Delete("/reports/{id}", s.DeleteReport)

		r.Put("/profile", s.UpsertProfile)
		r.Get("/profile", s.GetProfile)
		r.Get("/profile/targets", s.GetTargets)

		r.Post("/meals", s.LogMeal)
		r.Get("/meals", s.GetDayMeals)
		r.Put("/meals/{id}", s.UpdateMeal)
		r.Delete("/meals/{id}", s.DeleteMeal)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", address))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
