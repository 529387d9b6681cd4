package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/de-tools/ecodent-simulator/pkg/display"
	handlers "github.com/de-tools/ecodent-simulator/pkg/handlers/scenario"
	"github.com/de-tools/ecodent-simulator/pkg/services/config"
	"github.com/de-tools/ecodent-simulator/pkg/services/preset"
	"github.com/de-tools/ecodent-simulator/pkg/services/scenario"
	"github.com/de-tools/ecodent-simulator/pkg/services/workflow"

	simmiddleware "github.com/de-tools/ecodent-simulator/pkg/server/middleware"
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

type Dependencies struct {
	Calculator *scenario.Calculator
	Presets    preset.Service
	Catalog    workflow.Catalog
	Profiles   config.Registry
	Formatter  *display.Formatter
	Logger     zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) *chi.Mux {
	deps := config.Dependencies
	h := handlers.NewHandler(deps.Calculator, deps.Presets, deps.Catalog, deps.Profiles, deps.Formatter)

	router := chi.NewRouter()

	router.Use(simmiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/presets", h.ListPresets)
		r.Get("/presets/{region}/{tier}", h.GetPreset)
		r.Get("/economics", h.GetEconomics)
		r.Get("/workflow", h.GetWorkflow)

		r.Get("/scenario", h.ComputeQuery)
		r.Post("/scenario", h.ComputeBody)
		r.Post("/scenario/events", h.ApplyEvents)

		r.Get("/profiles", h.ListProfiles)
		r.Get("/profiles/{profile}/scenario", h.ComputeProfile)
	})

	return router
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	config.Dependencies.Logger = logger
	router := ConfigureRouter(config)

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdownTimeout: timeout,
	}
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
