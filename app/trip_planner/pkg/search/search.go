package search

import (
	"context"
	"strings"
)

// Searcher 定义通用的网页搜索接口，用于机场代码解析等场景
type Searcher interface {
	Search(ctx context.Context, req *Request) (*Response, error)
}

// Request 通用搜索请求
type Request struct {
	Query      string
	Topic      string // "news" or "general"
	MaxResults int
}

// Response 通用搜索响应
type Response struct {
	Results []Result
}

// Result 单条搜索结果
type Result struct {
	Title   string
	URL     string
	Content string
	Score   float64
}

// Snippets 拼接所有结果的摘要
func (r *Response) Snippets() string {
	if r == nil {
		return ""
	}
	parts := make([]string, 0, len(r.Results))
	for _, item := range r.Results {
		if s := strings.TrimSpace(item.Content); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// TopURL 第一条带链接的结果
func (r *Response) TopURL() string {
	if r == nil {
		return ""
	}
	for _, item := range r.Results {
		if item.URL != "" {
			return item.URL
		}
	}
	return ""
}
