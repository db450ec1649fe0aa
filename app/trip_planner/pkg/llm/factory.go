package llm

import (
	"context"
	"fmt"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/config"
)

// NewGenerator 根据配置创建带限流的生成器
func NewGenerator(ctx context.Context, cfg *config.Config) (Generator, error) {
	var (
		base Generator
		err  error
	)
	switch cfg.LLM.Provider {
	case "", "gemini":
		base, err = NewGemini(ctx, cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model)
	case "openai":
		base, err = NewOpenAI(ctx, cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLM.Provider)
	}
	if err != nil {
		return nil, err
	}

	limiter := NewLimiter(cfg.Concurrency.RPM, cfg.Concurrency.QPS)
	return WithLimit(base, limiter, cfg.RemoteCallTimeout()), nil
}
