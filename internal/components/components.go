package components

import (
	"context"
	"os"
	"time"

	"log/slog"

	"eventscout/internal/api"
	"eventscout/internal/client"
	"eventscout/internal/config"
	"eventscout/internal/domain"
	"eventscout/internal/geolocation"
	"eventscout/internal/service"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Backend    *client.Backend
	Service    *service.Service
	Geo        geolocation.Provider
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing backend client", slog.String("base_url", cfg.Backend.BaseURL))
	backend := client.NewBackend(cfg.Backend, logger)

	svc := service.NewService(backend, logger)

	var geoProvider geolocation.Provider = geolocation.Unavailable{}
	if cfg.Geo.Enabled {
		geoProvider = geolocation.Static{
			Coord: domain.Coordinate{Lat: cfg.Geo.Lat, Lng: cfg.Geo.Lng},
		}
		logger.Info("static observer configured",
			slog.Float64("lat", cfg.Geo.Lat),
			slog.Float64("lng", cfg.Geo.Lng),
		)
	}

	httpServer := api.NewServer(cfg, logger, svc)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Backend:    backend,
		Service:    svc,
		Geo:        geoProvider,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("component shutdown started")

	// The backend client holds no connections beyond http.Client's pool;
	// nothing to close explicitly yet.

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}
