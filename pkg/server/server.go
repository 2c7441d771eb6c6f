package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/roi-atlas/pkg/handlers/report"
	"github.com/de-tools/roi-atlas/pkg/services/config"
	"github.com/de-tools/roi-atlas/pkg/services/report"

	roimiddleware "github.com/de-tools/roi-atlas/pkg/server/middleware"
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
	Store   *report.Store
	Creator handlers.Creator
	Presets config.Presets
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewRouter(logger zerolog.Logger, deps Dependencies) *chi.Mux {
	h := handlers.NewHandler(deps.Store, deps.Creator, deps.Presets)

	router := chi.NewRouter()

	router.Use(roimiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/report", func(r chi.Router) {
			r.Get("/", h.GetReport)
			r.Put("/", h.ReplaceReport)
			r.Patch("/", h.UpdateClientInfo)
			r.Patch("/settings", h.UpdateSettings)
			r.Post("/save", h.SaveReport)
			r.Get("/summary", h.GetSummary)
			r.Get("/results", h.GetResults)

			r.Post("/operations", h.AddOperation)
			r.Patch("/operations/{operation}", h.UpdateOperation)
			r.Delete("/operations/{operation}", h.RemoveOperation)
			r.Post("/operations/{operation}/duplicate", h.DuplicateOperation)
			r.Get("/operations/{operation}/roi", h.GetOperationROI)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", h.ListSavedReports)
			r.Post("/", h.CreateReport)
			r.Post("/{report}/load", h.LoadSavedReport)
			r.Delete("/{report}", h.DeleteSavedReport)
		})

		r.Get("/presets", h.ListPresets)
	})

	return router
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := NewRouter(logger, config.Dependencies)

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router:          router,
		logger:          &logger,
		shutdownTimeout: timeout,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
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
