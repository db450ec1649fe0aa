package searxng

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/search"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "general", r.URL.Query().Get("categories"))
		_, _ = w.Write([]byte(`{"query":"q","results":[
			{"title":"a","url":"https://a","content":"one"},
			{"title":"b","url":"https://b","content":"two"},
			{"title":"c","url":"https://c","content":"three"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 1)
	resp, err := c.Search(context.Background(), &search.Request{Query: "q", MaxResults: 2})
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "one two", resp.Snippets())
}
