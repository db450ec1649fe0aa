// Package airport 通过网页搜索与模型将城市名解析为 IATA 三字码
package airport

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-shiori/go-readability"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/llm"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/logger"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/model"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/search"
)

const (
	// 摘要少于该长度时抓取首条结果正文补充
	minSnippetLen = 200
	maxContextLen = 5000
)

var iataPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Fetcher 抓取网页正文
type Fetcher func(ctx context.Context, url string) (string, error)

// Resolver 机场代码解析器
type Resolver struct {
	searcher search.Searcher
	gen      llm.Generator
	cache    Cache
	fetch    Fetcher
}

// Option Resolver 可选项
type Option func(*Resolver)

// WithCache 启用机场代码缓存
func WithCache(c Cache) Option {
	return func(r *Resolver) { r.cache = c }
}

// WithFetcher 替换正文抓取实现，传 nil 关闭正文补充
func WithFetcher(f Fetcher) Option {
	return func(r *Resolver) { r.fetch = f }
}

// NewResolver 创建解析器，默认不缓存
func NewResolver(searcher search.Searcher, gen llm.Generator, timeout time.Duration, opts ...Option) *Resolver {
	r := &Resolver{
		searcher: searcher,
		gen:      gen,
		fetch:    readabilityFetcher(timeout),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func readabilityFetcher(timeout time.Duration) Fetcher {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return func(_ context.Context, url string) (string, error) {
		article, err := readability.FromURL(url, timeout)
		if err != nil {
			return "", err
		}
		return article.TextContent, nil
	}
}

// Resolve 将城市名解析为三字码，结果不合法时返回 model.ErrResolution
func (r *Resolver) Resolve(ctx context.Context, city string) (string, error) {
	key := cacheKey(city)
	if r.cache != nil {
		if code, ok := r.cache.Get(ctx, key); ok {
			logger.Log.Debugf("机场代码命中缓存 [%s]: %s", city, code)
			return code, nil
		}
	}

	resp, err := r.searcher.Search(ctx, &search.Request{
		Query:      fmt.Sprintf("%s airport IATA code", city),
		Topic:      "general",
		MaxResults: 5,
	})
	if err != nil {
		return "", fmt.Errorf("search airport for %s: %w", city, err)
	}

	snippets := r.enrich(ctx, resp)

	prompt := fmt.Sprintf(resolvePrompt, city, snippets)
	out, err := r.gen.Generate(ctx, prompt, false)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", model.ErrResolution, city, err)
	}

	code := normalizeCode(out)
	if !iataPattern.MatchString(code) {
		return "", fmt.Errorf("%w: could not determine IATA code for %s (got %q)", model.ErrResolution, city, out)
	}
	logger.Log.Infof("机场代码解析成功 [%s]: %s", city, code)

	if r.cache != nil {
		if err := r.cache.Set(ctx, key, code); err != nil {
			logger.Log.Warnf("写入机场代码缓存失败 [%s]: %v", city, err)
		}
	}
	return code, nil
}

// enrich 摘要过短时抓取首条结果正文补充上下文
func (r *Resolver) enrich(ctx context.Context, resp *search.Response) string {
	text := resp.Snippets()
	if len(text) >= minSnippetLen || r.fetch == nil {
		return text
	}
	u := resp.TopURL()
	if u == "" {
		return text
	}
	fetched, err := r.fetch(ctx, u)
	if err != nil {
		logger.Log.Warnf("抓取正文失败 [%s]: %v", u, err)
		return text
	}
	text = strings.TrimSpace(text + "\n" + strings.TrimSpace(fetched))
	return truncate(text, maxContextLen)
}

// truncate 截断到 n 字节以内，不切断多字节字符
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func normalizeCode(s string) string {
	return strings.ToUpper(strings.Trim(strings.TrimSpace(s), "`\"'. \n"))
}

func cacheKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

const resolvePrompt = `You are a travel assistant. Based on the following Google search result snippets,
identify the 3-letter IATA airport code for the city "%s".
If multiple airports exist, choose the main international one.
Just return the 3-letter code, nothing else.

Search snippets:
%s`
