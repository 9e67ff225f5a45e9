package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nguyentantai21042004/translate-flow/internal/logger"
	"github.com/nguyentantai21042004/translate-flow/internal/metrics"
	"github.com/nguyentantai21042004/translate-flow/internal/watcher"
	"github.com/spf13/cobra"
)

func newWatchCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the input folder and translate new documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd.Context(), *configPath)
		},
	}
}

func runWatch(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	log := logger.NewWithWriter(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Translation Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Provider: %s", cfg.Transform.Provider)
	log.Info(ctx, "Target language: %s, tone: %s", cfg.Translation.TargetLanguage, cfg.Translation.Tone)
	log.Info(ctx, "Chunk size: %d, concurrent chunks: %d", cfg.Translation.ChunkSize, cfg.Translation.Concurrency)
	log.Info(ctx, "Concurrent files: %d", cfg.Performance.MaxConcurrentFiles)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		return err
	}

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize: %v", err)
		return err
	}
	defer a.Close()

	w, err := watcher.New(watcher.Options{
		InputDir:      cfg.Paths.Input,
		Extensions:    cfg.Performance.Extensions,
		MaxConcurrent: cfg.Performance.MaxConcurrentFiles,
		SettleDelay:   cfg.Performance.SettleDelay,
		ScanExisting:  true,
	}, a.translator.Process, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		return err
	}
	defer w.Stop()

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watchDone := make(chan error, 1)
	go func() { watchDone <- w.Start(ctx) }()

	metricsErr := make(chan error, 1)
	if cfg.Metrics.Addr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.Addr, log); err != nil {
				metricsErr <- err
			}
		}()
	}

	log.Info(ctx, "========================================")
	log.Info(ctx, "Translation Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	var runErr error
	watching := true
	select {
	case <-ctx.Done():
		log.Info(context.Background(), "Shutdown signal received")
	case err := <-watchDone:
		watching = false
		if !errors.Is(err, context.Canceled) {
			runErr = err
			log.Error(ctx, "Watcher error: %v", err)
		}
	case runErr = <-metricsErr:
		log.Error(ctx, "Metrics server error: %v", runErr)
	}

	log.Info(context.Background(), "Shutting down gracefully...")
	stop()
	if watching {
		<-watchDone
	}
	log.Info(context.Background(), "Translation Pipeline stopped")
	return runErr
}
