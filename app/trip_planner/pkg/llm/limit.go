package llm

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limited 为生成器加上限流与单次调用超时
type Limited struct {
	next    Generator
	limiter *rate.Limiter
	timeout time.Duration
}

// NewLimiter 按每分钟请求数与突发量创建限流器
func NewLimiter(rpm, burst int) *rate.Limiter {
	if burst <= 0 {
		burst = 1
	}
	if rpm <= 0 {
		return rate.NewLimiter(rate.Inf, burst)
	}
	return rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst)
}

// WithLimit 包装生成器，limiter 为 nil 时不限流，timeout 为 0 时不设超时
func WithLimit(next Generator, limiter *rate.Limiter, timeout time.Duration) *Limited {
	return &Limited{next: next, limiter: limiter, timeout: timeout}
}

var _ Generator = (*Limited)(nil)

// Generate implements Generator
func (l *Limited) Generate(ctx context.Context, prompt string, grounded bool) (string, error) {
	if l.limiter != nil {
		if err := l.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}
	return l.next.Generate(ctx, prompt, grounded)
}
