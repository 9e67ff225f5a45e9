package exporter

import "context"

// Document is one translated text ready to be written out.
type Document struct {
	// Name prefixes the file names; empty yields plain "translation-<timestamp>".
	Name string
	Text string
	// Markdown renders headings, bullets and bold runs in the docx output.
	Markdown bool
}

// Exporter writes translated documents to the output directory.
type Exporter interface {
	// Export returns the paths it wrote, text file first.
	Export(ctx context.Context, doc Document) ([]string, error)
}
