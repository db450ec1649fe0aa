package airport

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/llm"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/search"
)

type fakeSearcher struct {
	queries []string
	resp    *search.Response
	err     error
}

func (f *fakeSearcher) Search(_ context.Context, req *search.Request) (*search.Response, error) {
	f.queries = append(f.queries, req.Query)
	return f.resp, f.err
}

type fakeGenerator struct {
	prompts []string
	reply   string
	err     error
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string, _ bool) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

var _ llm.Generator = (*fakeGenerator)(nil)

func longSnippets() *search.Response {
	return &search.Response{Results: []search.Result{
		{URL: "https://example.com/del", Content: strings.Repeat("Indira Gandhi International Airport (DEL) serves Delhi. ", 5)},
	}}
}

func TestResolve(t *testing.T) {
	s := &fakeSearcher{resp: longSnippets()}
	g := &fakeGenerator{reply: " del\n"}
	r := NewResolver(s, g, time.Second, WithFetcher(nil))

	code, err := r.Resolve(context.Background(), "Delhi")
	require.NoError(t, err)
	assert.Equal(t, "DEL", code)
	assert.Equal(t, []string{"Delhi airport IATA code"}, s.queries)
	require.Len(t, g.prompts, 1)
	assert.Contains(t, g.prompts[0], `"Delhi"`)
	assert.Contains(t, g.prompts[0], "Indira Gandhi")
}

func TestResolve_InvalidCode(t *testing.T) {
	for _, reply := range []string{"DELHI", "D3L", "The code is DEL", ""} {
		t.Run(reply, func(t *testing.T) {
			r := NewResolver(&fakeSearcher{resp: longSnippets()}, &fakeGenerator{reply: reply}, time.Second, WithFetcher(nil))
			_, err := r.Resolve(context.Background(), "Delhi")
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrResolution))
		})
	}
}

func TestResolve_SearchFailure(t *testing.T) {
	s := &fakeSearcher{err: model.ErrLookup}
	g := &fakeGenerator{reply: "DEL"}
	r := NewResolver(s, g, time.Second)

	_, err := r.Resolve(context.Background(), "Delhi")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrLookup))
	assert.Empty(t, g.prompts)
}

func TestResolve_GeneratorFailure(t *testing.T) {
	r := NewResolver(&fakeSearcher{resp: longSnippets()}, &fakeGenerator{err: errors.New("quota")}, time.Second, WithFetcher(nil))
	_, err := r.Resolve(context.Background(), "Delhi")
	assert.True(t, errors.Is(err, model.ErrResolution))
}

func TestResolve_EnrichesThinSnippets(t *testing.T) {
	s := &fakeSearcher{resp: &search.Response{Results: []search.Result{
		{URL: "https://example.com/jai", Content: "Jaipur airport"},
	}}}
	g := &fakeGenerator{reply: "JAI"}

	var fetched string
	fetch := func(_ context.Context, url string) (string, error) {
		fetched = url
		return "Jaipur International Airport, IATA: JAI. " + strings.Repeat("x", maxContextLen), nil
	}
	r := NewResolver(s, g, time.Second, WithFetcher(fetch))

	code, err := r.Resolve(context.Background(), "Jaipur")
	require.NoError(t, err)
	assert.Equal(t, "JAI", code)
	assert.Equal(t, "https://example.com/jai", fetched)
	assert.Contains(t, g.prompts[0], "IATA: JAI")
	assert.Less(t, len(g.prompts[0]), maxContextLen+len(resolvePrompt)+10)
}

func TestResolve_FetchFailureKeepsSnippets(t *testing.T) {
	s := &fakeSearcher{resp: &search.Response{Results: []search.Result{{URL: "https://x", Content: "GOI"}}}}
	g := &fakeGenerator{reply: "GOI"}
	fetch := func(context.Context, string) (string, error) { return "", errors.New("403") }
	r := NewResolver(s, g, time.Second, WithFetcher(fetch))

	code, err := r.Resolve(context.Background(), "Goa")
	require.NoError(t, err)
	assert.Equal(t, "GOI", code)
}

func TestResolve_UsesCache(t *testing.T) {
	s := &fakeSearcher{resp: longSnippets()}
	g := &fakeGenerator{reply: "DEL"}
	r := NewResolver(s, g, time.Second, WithFetcher(nil), WithCache(NewMemoryCache(time.Hour)))

	for i := 0; i < 3; i++ {
		code, err := r.Resolve(context.Background(), " Delhi ")
		require.NoError(t, err)
		assert.Equal(t, "DEL", code)
	}
	assert.Len(t, s.queries, 1)
	assert.Len(t, g.prompts, 1)
}

func TestResolve_NoCacheByDefault(t *testing.T) {
	s := &fakeSearcher{resp: longSnippets()}
	g := &fakeGenerator{reply: "DEL"}
	r := NewResolver(s, g, time.Second, WithFetcher(nil))

	_, _ = r.Resolve(context.Background(), "Delhi")
	_, _ = r.Resolve(context.Background(), "Delhi")
	assert.Len(t, s.queries, 2)
}

func TestTruncate_RuneBoundary(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))

	// "é" 占两个字节，第 5 个字节落在字符中间
	s := "abcdé"
	got := truncate(s, 5)
	assert.Equal(t, "abcd", got)
	assert.True(t, utf8.ValidString(got))

	long := strings.Repeat("北京", 2000)
	got = truncate(long, maxContextLen)
	assert.LessOrEqual(t, len(got), maxContextLen)
	assert.True(t, utf8.ValidString(got))
}
