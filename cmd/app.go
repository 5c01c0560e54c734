package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"eventscout/internal/components"
	"eventscout/internal/config"
	"eventscout/internal/query"
	"eventscout/internal/service"
)

func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		components.SetupLogger("local").Error("load config failed", "err", err)
		return err
	}
	logger := components.SetupLogger(cfg.Env)

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	comps, err := components.InitComponents(appCtx, cfg, logger)
	if err != nil {
		logger.Error("could not init components", "err", err)
		return err
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := comps.HttpServer.Run(ctx); err != nil {
			logger.Error("http server failed", "err", err)
		}
		logger.Info("http server stopped")
	}()

	// Startup probe: resolve the observer once and run a single unfiltered
	// browse so a dead backend or broken geo config shows up in the logs
	// right away instead of on the first user request.
	watcher := service.NewBrowseWatcher(comps.Service, comps.Geo, cfg.Geo.Timeout, logger)
	wg.Add(1)
	go func() {
		defer wg.Done()
		watcher.Run(ctx)
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case res := <-watcher.Results():
				if res.Err != nil {
					logger.Warn("startup browse failed", "err", res.Err)
					continue
				}
				logger.Info("startup browse ok", "events", len(res.Events))
			}
		}
	}()
	watcher.Update(query.Filter{})

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChan

	stop()
	logger.Info("captured signal, initiating shutdown", "signal", sig.String())

	wg.Wait()

	comps.ShutdownAll()
	logger.Info("gracefully shut down")

	return nil
}
