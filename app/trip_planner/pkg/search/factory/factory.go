package factory

import (
	"fmt"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/config"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/search"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/searxng"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/serpapi"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/tavily"
)

// NewSearcher 根据配置创建搜索实例，serp 为已构建的 SerpApi 客户端
func NewSearcher(cfg *config.Config, serp *serpapi.Client) (search.Searcher, error) {
	switch cfg.Search.Provider {
	case "", "serpapi":
		if serp == nil {
			return nil, fmt.Errorf("serpapi client is missing")
		}
		return serp, nil

	case "tavily":
		if cfg.Search.Tavily.APIKey == "" {
			return nil, fmt.Errorf("tavily api key is missing")
		}
		return tavily.NewClient(cfg.Search.Tavily.APIKey, cfg.RemoteCallTimeout()), nil

	case "searxng":
		baseURL := cfg.Search.SearXNG.BaseURL
		if baseURL == "" {
			return nil, fmt.Errorf("searxng base url is missing")
		}
		return searxng.NewClient(baseURL, cfg.Search.SearXNG.Timeout), nil

	default:
		return nil, fmt.Errorf("unknown search provider: %s", cfg.Search.Provider)
	}
}
