package exporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func (e *implExporter) Export(ctx context.Context, doc Document) ([]string, error) {
	if err := os.MkdirAll(e.opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	base := FileBase(doc.Name, e.now())

	txtPath := filepath.Join(e.opts.OutputDir, base+".txt")
	if err := os.WriteFile(txtPath, []byte(doc.Text), 0644); err != nil {
		return nil, fmt.Errorf("write text: %w", err)
	}
	paths := []string{txtPath}

	if e.opts.Docx {
		docxPath := filepath.Join(e.opts.OutputDir, base+".docx")
		title := doc.Name
		if title == "" {
			title = "Translation"
		}
		if err := e.writeDocx(title, doc.Text, doc.Markdown, docxPath); err != nil {
			return paths, fmt.Errorf("write docx: %w", err)
		}
		paths = append(paths, docxPath)
	}

	e.logger.Info(ctx, "Exported %s", strings.Join(paths, ", "))
	return paths, nil
}

// FileBase names an export: "<name>-translation-<timestamp>" with the UTC ISO-8601
// timestamp's ':' and '.' replaced by '-'.
func FileBase(name string, at time.Time) string {
	stamp := at.UTC().Format("2006-01-02T15:04:05.000Z")
	stamp = strings.NewReplacer(":", "-", ".", "-").Replace(stamp)

	if name == "" {
		return "translation-" + stamp
	}
	return name + "-translation-" + stamp
}
