package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vms-gateway/internal/adapters/fixtures"
	"vms-gateway/internal/adapters/storage/memory"
	"vms-gateway/internal/adapters/vms"
	"vms-gateway/internal/archive"
	cfgpkg "vms-gateway/internal/infrastructure/config"
	httpapi "vms-gateway/internal/infrastructure/httpapi"
	obs "vms-gateway/internal/infrastructure/observability"
	"vms-gateway/internal/usecase"
)

func main() {
	cfg := cfgpkg.FromEnv()

	logger := obs.NewLogger(cfg.LogLevel)
	logger.Info().Str("addr", cfg.Addr).Str("version", obs.Version).Msg("starting vms-gateway")

	metrics := obs.NewMetrics()

	registry := memory.NewRegistry(cfg.MaxPlayers, cfg.PlayerTTL())
	registry.OnEvict = func(p *archive.Player) {
		metrics.EvictionsTotal.Inc()
		metrics.ActivePlayers.Dec()
		logger.Info().Str("player", p.ID()).Str("camera", p.CameraID()).Msg("player evicted")
	}

	upstream := vms.NewClient(cfg, obs.Component(logger, "vms"))
	svc := usecase.NewService(registry, registry, upstream, fixtures.New(), cfg.DefaultVMSURL)

	deps := &httpapi.Deps{
		Cfg:     &cfg,
		Logger:  logger,
		Metrics: metrics,
		Svc:     svc,
		Monitor: httpapi.NewMonitorHub(),
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server error")
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// Release remote archive sessions and peer connections before the
	// listener goes away; the VMS will not clean them up for us.
	registry.CloseAll(ctx)
	registry.DisconnectAll()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server shutdown error")
	}
	logger.Info().Msg("vms-gateway stopped")
}
