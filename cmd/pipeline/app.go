package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/nguyentantai21042004/translate-flow/internal/cache"
	"github.com/nguyentantai21042004/translate-flow/internal/config"
	"github.com/nguyentantai21042004/translate-flow/internal/exporter"
	"github.com/nguyentantai21042004/translate-flow/internal/logger"
	"github.com/nguyentantai21042004/translate-flow/internal/prompt"
	"github.com/nguyentantai21042004/translate-flow/internal/transform"
	"github.com/nguyentantai21042004/translate-flow/internal/translator"
	"github.com/redis/go-redis/v9"
)

// app holds the wired dependencies shared by the commands.
type app struct {
	cfg        *config.Config
	log        logger.Logger
	exporter   exporter.Exporter
	translator translator.Translator
	closers    []io.Closer
}

func newApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}

	store := a.newStore(ctx)

	client, err := transform.NewFromConfig(ctx, cfg.Transform, store, log)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("create transform client: %w", err)
	}

	prompts := prompt.New(append(prompt.DefaultTones(), cfg.Translation.Tones...), cfg.Translation.TargetLanguage)

	a.exporter = exporter.New(exporter.Options{
		OutputDir: cfg.Paths.Output,
		Docx:      cfg.Export.Docx,
		Font:      cfg.Export.Font,
		FontSize:  uint64(cfg.Export.FontSize),
	}, log)

	a.translator, err = translator.New(client, prompts, a.exporter, translator.Options{
		ChunkSize:   cfg.Translation.ChunkSize,
		Tone:        cfg.Translation.Tone,
		ArchivedDir: cfg.Paths.Archived,
		Concurrency: cfg.Translation.Concurrency,
		ItemTimeout: cfg.Translation.ItemTimeout,
	}, log)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("create translator: %w", err)
	}

	return a, nil
}

// newStore returns nil when caching is disabled or Redis is unreachable.
func (a *app) newStore(ctx context.Context) cache.Store {
	if !a.cfg.Cache.Enabled {
		return nil
	}

	switch a.cfg.Cache.Backend {
	case config.CacheMemory:
		a.log.Info(ctx, "Using in-memory translation cache")
		return cache.NewMemoryStore()
	default:
		rs := cache.NewRedisStore(redis.NewClient(&redis.Options{
			Addr:     a.cfg.Cache.Addr,
			Password: a.cfg.Cache.Password,
			DB:       a.cfg.Cache.DB,
		}), a.cfg.Cache.TTL)

		if err := rs.Ping(ctx); err != nil {
			a.log.Warn(ctx, "Redis unavailable at %s, continuing without cache: %v", a.cfg.Cache.Addr, err)
			rs.Close()
			return nil
		}
		a.log.Info(ctx, "Connected to Redis at %s", a.cfg.Cache.Addr)
		a.closers = append(a.closers, rs)
		return rs
	}
}

func (a *app) Close() {
	for _, c := range a.closers {
		c.Close()
	}
	a.closers = nil
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
