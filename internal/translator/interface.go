package translator

import "context"

// Result is a translated document.
type Result struct {
	// Text is the chunk outputs joined by newlines, trimmed.
	Text string
	// Chunks is how many segments the input was split into.
	Chunks int
	// Failed lists the indices of chunks whose text is a failure marker.
	Failed []int
}

// Translator turns whole documents into translated text
type Translator interface {
	Translate(ctx context.Context, text string) (Result, error)
	// Process translates the file at path, exports the result and archives the source.
	Process(ctx context.Context, path string) error
}
