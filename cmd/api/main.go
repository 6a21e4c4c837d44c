package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/denisok6893-rgb/date-outing-ai/internal/catalog"
	"github.com/denisok6893-rgb/date-outing-ai/internal/config"
	"github.com/denisok6893-rgb/date-outing-ai/internal/httpapi"
	"github.com/denisok6893-rgb/date-outing-ai/internal/logging"
	"github.com/denisok6893-rgb/date-outing-ai/internal/matching"
	"github.com/denisok6893-rgb/date-outing-ai/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logging.New("info", "console")
		fallback.Fatal().Err(err).Msg("load configuration")
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format)

	cat, err := buildCatalog(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("build catalog")
	}

	weights := matching.DefaultWeights()
	if cfg.Catalog.WeightsPath != "" {
		w, err := matching.LoadWeightsFromFile(cfg.Catalog.WeightsPath)
		if err != nil {
			logger.Warn().Err(err).Msg("use default weights")
		} else {
			weights = w
		}
	}

	engine, err := matching.NewEngine(cat, weights)
	if err != nil {
		logger.Fatal().Err(err).Msg("build engine")
	}

	srv := httpapi.NewServer(engine, cat, logger, cfg.Recommend.DefaultLimit, cfg.Recommend.MaxLimit)
	httpServer := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: srv.Routes(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("address", cfg.Server.Address).Int("experiences", cat.Len()).Msg("API listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
}

// buildCatalog uses the embedded curated data unless override files are
// configured. A configured file that simply does not exist falls back to the
// built-ins; a file that exists but cannot be parsed fails startup instead
// of silently serving the wrong catalog.
func buildCatalog(cfg *config.Config, logger zerolog.Logger) (*catalog.Catalog, error) {
	if cfg.Catalog.ExperiencesPath == "" && cfg.Catalog.DetailsPath == "" {
		return catalog.Builtin()
	}

	experiences := catalog.BuiltinExperiences()
	if cfg.Catalog.ExperiencesPath != "" {
		exps, err := storage.LoadExperiencesFromFile(cfg.Catalog.ExperiencesPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			logger.Warn().Str("path", cfg.Catalog.ExperiencesPath).Msg("experiences file missing, using built-in catalog")
		case err != nil:
			return nil, err
		default:
			logger.Info().Str("path", cfg.Catalog.ExperiencesPath).Int("count", len(exps)).Msg("experiences loaded from file")
			experiences = exps
		}
	}

	details := catalog.BuiltinDetails()
	if cfg.Catalog.DetailsPath != "" {
		d, err := storage.LoadDetailsFromFile(cfg.Catalog.DetailsPath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			logger.Warn().Str("path", cfg.Catalog.DetailsPath).Msg("details file missing, using built-in details")
		case err != nil:
			return nil, err
		default:
			details = d
		}
	}

	return catalog.New(experiences, catalog.BuiltinBands(), details)
}
