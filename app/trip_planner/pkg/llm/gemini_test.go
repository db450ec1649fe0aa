package llm

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type geminiCall struct {
	path string
	body string
}

func newGeminiServer(t *testing.T, status int, reply string) (*httptest.Server, *[]geminiCall) {
	var calls []geminiCall
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		calls = append(calls, geminiCall{path: r.URL.Path, body: string(b)})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestGemini_GroundedRequest(t *testing.T) {
	srv, calls := newGeminiServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"decision\":"},{"text":"\"favourable\"}"}]}}]}`)

	g, err := NewGemini(context.Background(), srv.URL, "test-key", "gemini-test")
	require.NoError(t, err)

	out, err := g.Generate(context.Background(), "suggest alternates", true)
	require.NoError(t, err)
	assert.Equal(t, `{"decision":"favourable"}`, out)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.True(t, strings.HasSuffix(call.path, "gemini-test:generateContent"), call.path)
	assert.Contains(t, call.body, `"googleSearch"`)
	assert.Contains(t, call.body, "suggest alternates")
}

func TestGemini_UngroundedRequest(t *testing.T) {
	srv, calls := newGeminiServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"ok"}]}}]}`)

	g, err := NewGemini(context.Background(), srv.URL, "test-key", "gemini-test")
	require.NoError(t, err)

	out, err := g.Generate(context.Background(), "judge the weather", false)
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	require.Len(t, *calls, 1)
	assert.NotContains(t, (*calls)[0].body, "googleSearch")
}

func TestGemini_Errors(t *testing.T) {
	srv, _ := newGeminiServer(t, http.StatusOK, `{"candidates":[]}`)
	g, err := NewGemini(context.Background(), srv.URL, "test-key", "gemini-test")
	require.NoError(t, err)
	_, err = g.Generate(context.Background(), "p", false)
	assert.ErrorContains(t, err, "no content")

	srv, _ = newGeminiServer(t, http.StatusBadRequest,
		`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)
	g, err = NewGemini(context.Background(), srv.URL, "bad-key", "gemini-test")
	require.NoError(t, err)
	_, err = g.Generate(context.Background(), "p", false)
	assert.ErrorContains(t, err, "gemini generate")
}
