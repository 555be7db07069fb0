package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/de-tools/astro-atlas/pkg/astro/fengshui"
	calchandlers "github.com/de-tools/astro-atlas/pkg/handlers/calc"
	profilehandlers "github.com/de-tools/astro-atlas/pkg/handlers/profiles"
	reporthandlers "github.com/de-tools/astro-atlas/pkg/handlers/reports"
	astromiddleware "github.com/de-tools/astro-atlas/pkg/server/middleware"
	"github.com/de-tools/astro-atlas/pkg/services/profiles"
	"github.com/de-tools/astro-atlas/pkg/services/report"
	"github.com/de-tools/astro-atlas/pkg/store/archive"
	"github.com/de-tools/astro-atlas/pkg/store/duckdb/reports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

// Dependencies of the API. Only Reports is required.
type Dependencies struct {
	Reports  *report.Service
	Store    reports.Store
	Archiver archive.Archiver
	Profiles profiles.Registry
	Now      func() time.Time
	Gender   fengshui.Gender
	Seed     uint64
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(astromiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	ConfigureRouter(router, config.Dependencies)

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: timeout,
	}
}

func ConfigureRouter(router chi.Router, deps Dependencies) {
	deps.Reports = orDefaultService(deps)

	calcHandler := calchandlers.NewHandler(deps.Now, deps.Gender, deps.Seed)
	reportHandler := reporthandlers.NewHandler(deps.Reports, deps.Store, deps.Archiver)
	profileHandler := profilehandlers.NewHandler(deps.Profiles)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/signs/{sign}", calcHandler.GetSign)
		r.Post("/pillars", calcHandler.GetPillars)
		r.Get("/kua", calcHandler.GetKua)
		r.Post("/timelords", calcHandler.GetTimeLords)
		r.Post("/lots", calcHandler.GetLots)
		r.Get("/dignity", calcHandler.GetDignity)
		r.Post("/nakshatras", calcHandler.GetNakshatras)

		r.Post("/reports", reportHandler.CreateReport)
		r.Get("/reports/{id}", reportHandler.GetReport)
		r.Post("/reports/{id}/archive", reportHandler.ArchiveReport)
		r.Get("/charts/{chart}/reports", reportHandler.ListChartReports)

		r.Get("/profiles", profileHandler.ListProfiles)
		r.Get("/profiles/{name}", profileHandler.GetProfile)
	})
}

func orDefaultService(deps Dependencies) *report.Service {
	if deps.Reports != nil {
		return deps.Reports
	}
	registry := report.NewDefaultRegistry(report.Options{Gender: deps.Gender, Seed: deps.Seed})
	return report.NewService(registry, deps.Now)
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
