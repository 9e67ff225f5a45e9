package translator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// moveToArchived moves a processed source out of the input folder so it is not picked up again
func (t *implTranslator) moveToArchived(ctx context.Context, path string) error {
	if t.opts.ArchivedDir == "" {
		return nil
	}
	if err := os.MkdirAll(t.opts.ArchivedDir, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(t.opts.ArchivedDir, filepath.Base(path))
	t.logger.Info(ctx, "Moving to archived folder: %s -> %s", path, destPath)

	if err := os.Rename(path, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
