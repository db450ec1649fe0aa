package serpapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/search"
)

type googleResponse struct {
	OrganicResults []struct {
		Position int    `json:"position"`
		Title    string `json:"title"`
		Link     string `json:"link"`
		Snippet  string `json:"snippet"`
	} `json:"organic_results"`
}

// Ensure Client implements search.Searcher
var _ search.Searcher = (*Client)(nil)

// Search 谷歌网页搜索，返回 organic_results 的摘要
func (c *Client) Search(ctx context.Context, req *search.Request) (*search.Response, error) {
	params := url.Values{}
	params.Set("q", req.Query)
	if req.MaxResults > 0 {
		params.Set("num", strconv.Itoa(req.MaxResults))
	}

	var resp googleResponse
	if err := c.get(ctx, "google", params, &resp); err != nil {
		return nil, err
	}

	results := make([]search.Result, 0, len(resp.OrganicResults))
	for _, r := range resp.OrganicResults {
		results = append(results, search.Result{
			Title:   r.Title,
			URL:     r.Link,
			Content: r.Snippet,
		})
	}
	return &search.Response{Results: results}, nil
}
