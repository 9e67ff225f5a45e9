package translator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/translate-flow/internal/exporter"
)

// ErrNoExporter is returned by Process when the Translator was built without an Exporter
var ErrNoExporter = errors.New("translator: exporter is required to process files")

// Process handles one input file end to end
func (t *implTranslator) Process(ctx context.Context, path string) error {
	if t.exporter == nil {
		return ErrNoExporter
	}

	startTime := time.Now()
	filename := filepath.Base(path)
	ext := filepath.Ext(filename)

	t.logger.Info(ctx, "========================================")
	t.logger.Info(ctx, "Starting translation: %s", path)
	t.logger.Info(ctx, "========================================")

	// Step 1: Read source
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	// Step 2: Translate
	res, err := t.Translate(ctx, string(content))
	if err != nil {
		return fmt.Errorf("translate: %w", err)
	}
	if len(res.Failed) > 0 {
		t.logger.Warn(ctx, "%d of %d chunks failed: %v", len(res.Failed), res.Chunks, res.Failed)
	}

	// Step 3: Export
	paths, err := t.exporter.Export(ctx, exporter.Document{
		Name:     strings.TrimSuffix(filename, ext),
		Text:     res.Text,
		Markdown: strings.EqualFold(ext, ".md"),
	})
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	// Step 4: Move source to archived folder
	if err := t.moveToArchived(ctx, path); err != nil {
		t.logger.Warn(ctx, "Failed to move source to archived folder: %v", err)
	}

	t.logger.Info(ctx, "========================================")
	t.logger.Info(ctx, "Translation completed: %d chunks, %d failed", res.Chunks, len(res.Failed))
	for _, p := range paths {
		t.logger.Info(ctx, "Output: %s", p)
	}
	t.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	t.logger.Info(ctx, "========================================")

	return nil
}
