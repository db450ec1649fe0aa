// Package llm 封装文本生成能力，屏蔽具体模型后端
package llm

import "context"

// Generator 文本生成接口。grounded 为 true 时后端可借助联网搜索增强回答，
// 不支持的后端会忽略该参数。
type Generator interface {
	Generate(ctx context.Context, prompt string, grounded bool) (string, error)
}

// GeneratorFunc 将普通函数适配为 Generator
type GeneratorFunc func(ctx context.Context, prompt string, grounded bool) (string, error)

// Generate implements Generator
func (f GeneratorFunc) Generate(ctx context.Context, prompt string, grounded bool) (string, error) {
	return f(ctx, prompt, grounded)
}
