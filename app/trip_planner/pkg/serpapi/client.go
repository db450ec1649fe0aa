// Package serpapi SerpApi 客户端：谷歌搜索、谷歌航班与谷歌酒店
package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
)

const defaultBaseURL = "https://serpapi.com/search"

// Options 请求公共参数
type Options struct {
	BaseURL  string
	Currency string
	Country  string
	Language string
	Timeout  time.Duration
}

// Client SerpApi 客户端
type Client struct {
	apiKey string
	opts   Options
	client *http.Client
}

// NewClient 创建 SerpApi 客户端
func NewClient(apiKey string, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Currency == "" {
		opts.Currency = "INR"
	}
	if opts.Language == "" {
		opts.Language = "en"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	return &Client{
		apiKey: apiKey,
		opts:   opts,
		client: &http.Client{Timeout: opts.Timeout},
	}
}

// get 以指定 engine 发起查询并把响应解码到 out
func (c *Client) get(ctx context.Context, engine string, params url.Values, out any) error {
	u, err := url.Parse(c.opts.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	params.Set("engine", engine)
	params.Set("api_key", c.apiKey)
	if params.Get("hl") == "" {
		params.Set("hl", c.opts.Language)
	}
	u.RawQuery = params.Encode()

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: serpapi %s: %v", model.ErrLookup, engine, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("%w: serpapi %s: read body: %v", model.ErrLookup, engine, err)
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: serpapi %s (status %d): %s", model.ErrLookup, engine, res.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: serpapi %s: unmarshal response: %v", model.ErrLookup, engine, err)
	}
	return nil
}
