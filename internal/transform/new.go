package transform

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/translate-flow/internal/cache"
	"github.com/nguyentantai21042004/translate-flow/internal/config"
	"github.com/nguyentantai21042004/translate-flow/internal/logger"
	"github.com/nguyentantai21042004/translate-flow/pkg/executor"
)

// NewFromConfig builds the configured provider, wrapped in Cached when store is non-nil.
func NewFromConfig(ctx context.Context, cfg config.TransformConfig, store cache.Store, log logger.Logger) (Client, error) {
	var client Client

	switch cfg.Provider {
	case config.ProviderGemini, "":
		g, err := NewGemini(ctx, GeminiOptions{
			APIKeys: cfg.Gemini.APIKeys,
			Model:   cfg.Gemini.Model,
			BaseURL: cfg.Gemini.BaseURL,
		}, log)
		if err != nil {
			return nil, err
		}
		client = g
	case config.ProviderCommand:
		exec := executor.New()
		if cfg.Command.Dir != "" {
			exec = executor.NewInDir(cfg.Command.Dir)
		}
		client = NewCommand(exec, cfg.Command.Name, cfg.Command.Args...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}

	if store != nil {
		client = NewCached(client, store, log)
	}
	return client, nil
}
