package translator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/nguyentantai21042004/translate-flow/internal/chunker"
	"github.com/nguyentantai21042004/translate-flow/internal/exporter"
	"github.com/nguyentantai21042004/translate-flow/internal/prompt"
	"github.com/nguyentantai21042004/translate-flow/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoTransformer returns the segment upper-cased, or fails for segments containing "FAIL".
type echoTransformer struct {
	mu       sync.Mutex
	requests []string
}

func (e *echoTransformer) Transform(_ context.Context, payload, request string) (string, error) {
	e.mu.Lock()
	e.requests = append(e.requests, request)
	e.mu.Unlock()
	if strings.Contains(payload, "FAIL") {
		return "", errors.New("model refused")
	}
	return strings.ToUpper(payload), nil
}

type recordingExporter struct {
	docs []exporter.Document
	err  error
}

func (r *recordingExporter) Export(_ context.Context, doc exporter.Document) ([]string, error) {
	r.docs = append(r.docs, doc)
	if r.err != nil {
		return nil, r.err
	}
	return []string{"out/" + doc.Name + ".txt"}, nil
}

func newTestTranslator(t *testing.T, client scheduler.Transformer, exp exporter.Exporter, opts Options) *implTranslator {
	t.Helper()
	if opts.Concurrency == 0 {
		opts.Concurrency = 3
	}
	tr, err := New(client, prompt.New(prompt.DefaultTones(), ""), exp, opts, nil)
	require.NoError(t, err)
	return tr.(*implTranslator)
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	prompts := prompt.New(prompt.DefaultTones(), "")

	_, err := New(&echoTransformer{}, prompts, nil, Options{ChunkSize: 0, Concurrency: 1}, nil)
	assert.ErrorIs(t, err, chunker.ErrInvalidTargetSize)

	_, err = New(&echoTransformer{}, prompts, nil, Options{ChunkSize: 10, Concurrency: 0}, nil)
	assert.ErrorIs(t, err, scheduler.ErrInvalidConcurrency)

	_, err = New(nil, prompts, nil, Options{ChunkSize: 10, Concurrency: 1}, nil)
	assert.ErrorIs(t, err, scheduler.ErrNilTransformer)
}

func TestTranslate(t *testing.T) {
	client := &echoTransformer{}
	tr := newTestTranslator(t, client, nil, Options{ChunkSize: 3, Tone: "literal"})

	res, err := tr.Translate(context.Background(), "abc\ndef\ngh\n")
	require.NoError(t, err)

	// chunks: "abc", "def", "gh\n" (last holds the trailing empty line)
	assert.Equal(t, "ABC\nDEF\nGH", res.Text)
	assert.Equal(t, 3, res.Chunks)
	assert.Empty(t, res.Failed)

	require.Len(t, client.requests, 3)
	for _, req := range client.requests {
		assert.True(t, strings.HasPrefix(req, "Translate the text below into English. "), req)
	}
}

func TestTranslateKeepsFailureMarkersInPlace(t *testing.T) {
	tr := newTestTranslator(t, &echoTransformer{}, nil, Options{ChunkSize: 1})

	res, err := tr.Translate(context.Background(), "one\nFAIL\nthree")
	require.NoError(t, err)

	assert.Equal(t, "ONE\nError: Failed to translate chunk 1\nTHREE", res.Text)
	assert.Equal(t, []int{1}, res.Failed)
}

func TestTranslateTrailingNewlineSkipsEmptyChunk(t *testing.T) {
	// "abc\n" splits into "abc" and a final empty chunk.
	client := &echoTransformer{}
	tr := newTestTranslator(t, client, nil, Options{ChunkSize: 3})

	res, err := tr.Translate(context.Background(), "abc\n")
	require.NoError(t, err)

	assert.Equal(t, "ABC", res.Text)
	assert.Equal(t, 2, res.Chunks)
	assert.Empty(t, res.Failed)
	assert.Len(t, client.requests, 1, "blank chunk must not reach the provider")
}

func TestSkipBlank(t *testing.T) {
	client := &echoTransformer{}
	s := skipBlank{next: client}

	out, err := s.Transform(context.Background(), " \t", "request")
	require.NoError(t, err)
	assert.Equal(t, " \t", out)
	assert.Empty(t, client.requests)

	out, err = s.Transform(context.Background(), "x", "request")
	require.NoError(t, err)
	assert.Equal(t, "X", out)
}

func TestTranslateEmpty(t *testing.T) {
	client := &echoTransformer{}
	tr := newTestTranslator(t, client, nil, Options{ChunkSize: 10})

	res, err := tr.Translate(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
	assert.Empty(t, client.requests)
}

func TestTranslateUnknownToneSendsSegment(t *testing.T) {
	client := &echoTransformer{}
	tr := newTestTranslator(t, client, nil, Options{ChunkSize: 100, Tone: "pirate"})

	_, err := tr.Translate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, client.requests)
}

func TestProcess(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input", "notes.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(src), 0755))
	require.NoError(t, os.WriteFile(src, []byte("# title\nbody"), 0644))

	exp := &recordingExporter{}
	archived := filepath.Join(dir, "archived")
	tr := newTestTranslator(t, &echoTransformer{}, exp, Options{ChunkSize: 100, ArchivedDir: archived})

	require.NoError(t, tr.Process(context.Background(), src))

	require.Len(t, exp.docs, 1)
	assert.Equal(t, exporter.Document{Name: "notes", Text: "# TITLE\nBODY", Markdown: true}, exp.docs[0])

	_, err := os.Stat(src)
	assert.True(t, os.IsNotExist(err), "source should be moved")
	_, err = os.Stat(filepath.Join(archived, "notes.md"))
	assert.NoError(t, err)
}

func TestProcessExportFailureKeepsSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0644))

	exp := &recordingExporter{err: errors.New("disk full")}
	tr := newTestTranslator(t, &echoTransformer{}, exp, Options{ChunkSize: 10, ArchivedDir: filepath.Join(dir, "archived")})

	err := tr.Process(context.Background(), src)
	assert.Error(t, err)
	_, statErr := os.Stat(src)
	assert.NoError(t, statErr)
}

func TestProcessMissingFile(t *testing.T) {
	tr := newTestTranslator(t, &echoTransformer{}, &recordingExporter{}, Options{ChunkSize: 10})
	assert.Error(t, tr.Process(context.Background(), "does-not-exist.txt"))
}

func TestProcessWithoutExporter(t *testing.T) {
	tr := newTestTranslator(t, &echoTransformer{}, nil, Options{ChunkSize: 10})
	assert.ErrorIs(t, tr.Process(context.Background(), "x.txt"), ErrNoExporter)
}
