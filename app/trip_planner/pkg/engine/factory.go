package engine

import (
	"context"
	"fmt"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/advisor"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/airport"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/config"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/flight"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/hotel"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/llm"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/logger"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/search/factory"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/serpapi"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/weather"
)

// NewEngine 根据配置构建所有外部客户端并创建引擎，客户端在启动时构建一次
func NewEngine(ctx context.Context, cfg *config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("配置错误: %w", err)
	}
	timeout := cfg.RemoteCallTimeout()

	// 初始化 LLM（含限流）
	gen, err := llm.NewGenerator(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}

	serp := serpapi.NewClient(cfg.SerpAPI.APIKey, serpapi.Options{
		BaseURL:  cfg.SerpAPI.BaseURL,
		Currency: cfg.Travel.Currency,
		Country:  cfg.Travel.Country,
		Language: cfg.Travel.Language,
		Timeout:  timeout,
	})

	// 初始化搜索客户端
	searcher, err := factory.NewSearcher(cfg, serp)
	if err != nil {
		return nil, fmt.Errorf("搜索客户端初始化失败: %w", err)
	}

	eng := &Engine{parallel: cfg.Concurrency.ParallelLookups}

	var resolverOpts []airport.Option
	if cfg.AirportCache.Enabled {
		if cfg.AirportCache.RedisAddr != "" {
			rdb := airport.NewRedisClient(cfg.AirportCache.RedisAddr, cfg.AirportCache.RedisPassword, cfg.AirportCache.RedisDB)
			eng.closers = append(eng.closers, rdb.Close)
			resolverOpts = append(resolverOpts, airport.WithCache(airport.NewRedisCache(rdb, cfg.CacheTTL())))
			logger.Log.Infof("机场代码缓存: redis %s", cfg.AirportCache.RedisAddr)
		} else {
			resolverOpts = append(resolverOpts, airport.WithCache(airport.NewMemoryCache(cfg.CacheTTL())))
			logger.Log.Info("机场代码缓存: memory")
		}
	}
	resolver := airport.NewResolver(searcher, gen, timeout, resolverOpts...)

	eng.stages = Stages{
		Weather: weather.NewClient(cfg.Weather.APIKey, cfg.Weather.BaseURL, timeout),
		Advisor: advisor.New(gen),
		Flights: flight.NewLookup(resolver, serp, cfg.Concurrency.ParallelLookups),
		Hotels:  hotel.NewLookup(serp, cfg.Travel.MaxHotels),
	}
	return eng, nil
}
