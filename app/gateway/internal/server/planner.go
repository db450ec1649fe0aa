package server

import (
	"context"
	"os"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/trip_planner/app/gateway/internal/conf"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/config"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/engine"
	tpLogger "github.com/iWorld-y/trip_planner/app/trip_planner/pkg/logger"
)

// PlannerConfig 将 internal/conf.Planner 转换为 pkg/config.Config，密钥支持 ${ENV} 占位符
func PlannerConfig(c *conf.Planner) *config.Config {
	cfg := &config.Config{}
	if c.Llm != nil {
		cfg.LLM = config.LLMConfig{
			Provider: c.Llm.Provider,
			BaseURL:  c.Llm.BaseUrl,
			APIKey:   os.ExpandEnv(c.Llm.ApiKey),
			Model:    c.Llm.Model,
		}
	}
	if c.Search != nil {
		cfg.Search.Provider = c.Search.Provider
		if c.Search.Tavily != nil {
			cfg.Search.Tavily.APIKey = os.ExpandEnv(c.Search.Tavily.ApiKey)
		}
		if c.Search.Searxng != nil {
			cfg.Search.SearXNG = config.SearXNGConfig{
				BaseURL: c.Search.Searxng.BaseUrl,
				Timeout: int(c.Search.Searxng.Timeout),
			}
		}
	}
	if c.Serpapi != nil {
		cfg.SerpAPI = config.SerpAPIConfig{APIKey: os.ExpandEnv(c.Serpapi.ApiKey), BaseURL: c.Serpapi.BaseUrl}
	}
	if c.Weather != nil {
		cfg.Weather = config.WeatherConfig{APIKey: os.ExpandEnv(c.Weather.ApiKey), BaseURL: c.Weather.BaseUrl}
	}
	if c.Travel != nil {
		cfg.Travel = config.TravelConfig{
			Currency:  c.Travel.Currency,
			Country:   c.Travel.Country,
			Language:  c.Travel.Language,
			MaxHotels: int(c.Travel.MaxHotels),
		}
	}
	if c.AirportCache != nil {
		cfg.AirportCache = config.AirportCacheConfig{
			Enabled:       c.AirportCache.Enabled,
			RedisAddr:     c.AirportCache.RedisAddr,
			RedisPassword: os.ExpandEnv(c.AirportCache.RedisPassword),
			RedisDB:       int(c.AirportCache.RedisDb),
			TTL:           c.AirportCache.Ttl,
		}
	}
	if c.Log != nil {
		cfg.Log = config.LogConfig{Level: c.Log.Level, File: c.Log.File}
	}
	if c.Concurrency != nil {
		cfg.Concurrency = config.ConcurrencyConfig{
			QPS:             int(c.Concurrency.Qps),
			RPM:             int(c.Concurrency.Rpm),
			ParallelLookups: c.Concurrency.ParallelLookups,
		}
	}
	if c.Timeouts != nil {
		cfg.Timeouts.RemoteCall = c.Timeouts.RemoteCall
	}
	cfg.ApplyDefaults()
	return cfg
}

// NewPlannerEngine 初始化行程规划引擎
func NewPlannerEngine(c *conf.Planner, logger log.Logger) (*engine.Engine, func(), error) {
	helper := log.NewHelper(logger)
	if c == nil {
		c = &conf.Planner{}
	}
	cfg := PlannerConfig(c)

	// 初始化日志
	if err := tpLogger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		helper.Errorf("Failed to init trip_planner logger: %v", err)
		_ = tpLogger.InitLogger("info", "") // 降级处理
	}

	// 初始化核心引擎
	eng, err := engine.NewEngine(context.Background(), cfg)
	if err != nil {
		helper.Errorf("Failed to init engine: %v", err)
		return nil, nil, err
	}

	cleanup := func() {
		helper.Info("Cleaning up trip_planner engine")
		if err := eng.Close(); err != nil {
			helper.Errorf("close engine: %v", err)
		}
	}
	return eng, cleanup, nil
}
