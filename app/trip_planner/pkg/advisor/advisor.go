// Package advisor 基于大模型的天气判断、行程、备选目的地与摘要生成。
// 模型输出一律视为可能不合规的自由文本：原文总是保留，结构化结果尽力提取。
package advisor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/llm"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/logger"
)

// Advisor 大模型顾问
type Advisor struct {
	gen llm.Generator
}

// New 创建顾问
func New(gen llm.Generator) *Advisor {
	return &Advisor{gen: gen}
}

// generate 调用模型，失败时返回带错误说明的文本而不是错误
func (a *Advisor) generate(ctx context.Context, stage, prompt string, grounded bool) string {
	out, err := a.gen.Generate(ctx, prompt, grounded)
	if err != nil {
		logger.Log.Errorf("[%s] 模型调用失败: %v", stage, err)
		return fmt.Sprintf("Error: Could not generate a response. Details: %v", err)
	}
	return out
}

// compact 序列化为紧凑 JSON 嵌入提示词
func compact(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
