package translator

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/translate-flow/internal/scheduler"
)

// skipBlank returns whitespace-only payloads as they are. A file ending in a
// newline can yield an empty final chunk, which has nothing to translate.
type skipBlank struct {
	next scheduler.Transformer
}

func (s skipBlank) Transform(ctx context.Context, payload, request string) (string, error) {
	if strings.TrimSpace(payload) == "" {
		return payload, nil
	}
	return s.next.Transform(ctx, payload, request)
}
