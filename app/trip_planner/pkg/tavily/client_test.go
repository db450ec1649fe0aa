package tavily

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/search"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tvly-key", r.Header.Get("Authorization"))

		var req SearchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Goa airport IATA code", req.Query)
		assert.Equal(t, "basic", req.SearchDepth)
		assert.Equal(t, "general", req.Topic)
		assert.Equal(t, 5, req.MaxResults)

		_, _ = w.Write([]byte(`{"query":"Goa airport IATA code","results":[{"title":"Dabolim","url":"https://x","content":"GOI","score":0.9}]}`))
	}))
	defer srv.Close()

	c := NewClient("tvly-key", time.Second).WithBaseURL(srv.URL)
	resp, err := c.Search(context.Background(), &search.Request{Query: "Goa airport IATA code"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "GOI", resp.Results[0].Content)
	assert.Equal(t, 0.9, resp.Results[0].Score)
}

func TestSearch_NonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("k", time.Second).WithBaseURL(srv.URL)
	_, err := c.Search(context.Background(), &search.Request{Query: "q"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrLookup))
}
