package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"StrategyScope/internal/collector"
	"StrategyScope/internal/config"
	"StrategyScope/internal/notifier"
	"StrategyScope/internal/recorder"
	"StrategyScope/internal/scheduler"
	"StrategyScope/internal/server"
	"StrategyScope/internal/service"
	"StrategyScope/pkg/logger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the API server, watchlist scheduler and Telegram bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			return runServe(cfgPath)
		},
	}
}

func runServe(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	logger.SetGlobalLogger(log)
	log.Info().Str("config", cfgPath).Msg("StrategyScope starting")

	// Source: remote backtest service when configured, local documents otherwise
	var src collector.Source
	if cfg.Source.BaseURL != "" {
		src = collector.NewHTTPSource(cfg.Source.BaseURL, cfg.Source.APIKey, cfg.Proxy)
	} else {
		src = collector.NewFileSource(cfg.Source.Dir)
	}
	log.Info().Str("source", src.Name()).Msg("metric source ready")
	col := collector.NewCollector(src, log)

	rec := openRecorder(cfg, log)
	defer rec.Close()

	svc := service.New(col, rec, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var tn *notifier.TelegramNotifier
	var n scheduler.Notifier
	if cfg.NotifierEnabled() {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)
		n = tn
	} else {
		log.Warn().Msg("telegram not configured, notifications disabled")
	}

	sched := scheduler.NewScheduler(ctx, svc, n, cfg.Schedule.Watchlist, cfg.Schedule.Concurrency, log)
	if err := sched.RegisterAll(cfg.Schedule.AnalyzeCron); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Info().Msg("telegram polling started")
	}

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, analyzing watchlist now")
		go sched.RunNow()
	}

	srv := server.New(server.Config{Addr: cfg.Server.Addr, Log: log, Service: svc, DevMode: cfg.Server.DevMode})
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received, stopping")
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
		cancel()
		return err
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown")
	}
	log.Info().Msg("StrategyScope stopped")
	return nil
}

func openRecorder(cfg *config.Config, log zerolog.Logger) recorder.Recorder {
	if !cfg.PersistenceEnabled() {
		log.Info().Msg("persistence disabled")
		return recorder.NewNoopRecorder()
	}
	sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
	if err != nil {
		log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
		return recorder.NewNoopRecorder()
	}
	return sr
}
