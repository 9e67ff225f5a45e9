package transform

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/nguyentantai21042004/translate-flow/internal/logger"
	"google.golang.org/genai"
)

// DefaultModel is used when GeminiOptions.Model is empty.
const DefaultModel = "gemini-2.5-flash"

type GeminiOptions struct {
	APIKeys []string
	Model   string
	// BaseURL overrides the API endpoint; empty uses the SDK default.
	BaseURL string
}

// Gemini sends each request to the Gemini API. Calls are spread across the
// configured keys round-robin, one client per key.
type Gemini struct {
	clients []*genai.Client
	model   string
	next    atomic.Uint64
	logger  logger.Logger
}

// NewGemini creates one genai client per key.
func NewGemini(ctx context.Context, opts GeminiOptions, log logger.Logger) (*Gemini, error) {
	if len(opts.APIKeys) == 0 {
		return nil, ErrNoAPIKeys
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if log == nil {
		log = logger.NewNop()
	}

	g := &Gemini{model: opts.Model, logger: log}
	for i, key := range opts.APIKeys {
		cfg := &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		}
		if opts.BaseURL != "" {
			cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
		}

		client, err := genai.NewClient(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("create client for key %d: %w", i+1, err)
		}
		g.clients = append(g.clients, client)
	}

	return g, nil
}

// Transform sends request as the prompt. payload is not used by the API call.
func (g *Gemini) Transform(ctx context.Context, _ string, request string) (string, error) {
	n := g.next.Add(1) - 1
	idx := int(n % uint64(len(g.clients)))

	result, err := g.clients[idx].Models.GenerateContent(ctx, g.model, genai.Text(request), nil)
	if err != nil {
		if isRateLimited(err) {
			g.logger.Warn(ctx, "Key %d rate limited", idx+1)
			return "", fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part != nil && part.Text != "" {
				text.WriteString(part.Text)
			}
		}
		if text.Len() > 0 {
			return text.String(), nil
		}
	}

	return "", ErrEmptyResponse
}

// Keys reports how many API keys calls are spread across.
func (g *Gemini) Keys() int { return len(g.clients) }

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
