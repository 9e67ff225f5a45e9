package transform

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type geminiServer struct {
	mu      sync.Mutex
	keys    []string
	prompts []string
	status  int
	body    string
}

func (s *geminiServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var req struct {
		Contents []struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
	}
	_ = json.Unmarshal(raw, &req)

	s.mu.Lock()
	s.keys = append(s.keys, r.Header.Get("x-goog-api-key"))
	if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
		s.prompts = append(s.prompts, req.Contents[0].Parts[0].Text)
	}
	status, body := s.status, s.body
	s.mu.Unlock()

	if !strings.HasSuffix(r.URL.Path, ":generateContent") {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

const okBody = `{"candidates":[{"content":{"role":"model","parts":[{"text":"Hello "},{"text":"world"}]}}]}`

func newTestGemini(t *testing.T, srv *geminiServer, keys ...string) *Gemini {
	t.Helper()
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	g, err := NewGemini(context.Background(), GeminiOptions{
		APIKeys: keys,
		Model:   "gemini-test",
		BaseURL: ts.URL + "/",
	}, nil)
	require.NoError(t, err)
	return g
}

func TestNewGeminiRequiresKeys(t *testing.T) {
	_, err := NewGemini(context.Background(), GeminiOptions{}, nil)
	assert.ErrorIs(t, err, ErrNoAPIKeys)
}

func TestGeminiTransform(t *testing.T) {
	srv := &geminiServer{body: okBody}
	g := newTestGemini(t, srv, "key-1")

	out, err := g.Transform(context.Background(), "Xin chào", "Translate the text below into English.\n\nXin chào")
	require.NoError(t, err)
	assert.Equal(t, "Hello world", out)
	require.Len(t, srv.prompts, 1)
	assert.Equal(t, "Translate the text below into English.\n\nXin chào", srv.prompts[0])
}

func TestGeminiRoundRobinKeys(t *testing.T) {
	srv := &geminiServer{body: okBody}
	g := newTestGemini(t, srv, "key-1", "key-2", "key-3")
	assert.Equal(t, 3, g.Keys())

	for i := 0; i < 6; i++ {
		_, err := g.Transform(context.Background(), "p", "r")
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"key-1", "key-2", "key-3", "key-1", "key-2", "key-3"}, srv.keys)
}

func TestGeminiEmptyResponse(t *testing.T) {
	srv := &geminiServer{body: `{"candidates":[]}`}
	g := newTestGemini(t, srv, "key-1")

	_, err := g.Transform(context.Background(), "p", "r")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGeminiRequestError(t *testing.T) {
	srv := &geminiServer{
		status: http.StatusBadRequest,
		body:   `{"error":{"code":400,"message":"invalid argument","status":"INVALID_ARGUMENT"}}`,
	}
	g := newTestGemini(t, srv, "key-1")

	_, err := g.Transform(context.Background(), "p", "r")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimited)
}

func TestGeminiRateLimited(t *testing.T) {
	srv := &geminiServer{
		status: http.StatusTooManyRequests,
		body:   `{"error":{"code":429,"message":"Resource has been exhausted (e.g. check quota).","status":"RESOURCE_EXHAUSTED"}}`,
	}
	g := newTestGemini(t, srv, "key-1")

	_, err := g.Transform(context.Background(), "p", "r")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRateLimited), "got %v", err)
}

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"Error 429, Message: too many requests", true},
		{"Status: RESOURCE_EXHAUSTED", true},
		{"quota exceeded for project", true},
		{"Error 400, Message: invalid argument", false},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, isRateLimited(errString(tt.msg)))
		})
	}
}

type errString string

func (e errString) Error() string { return string(e) }
