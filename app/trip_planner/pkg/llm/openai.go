package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

const systemPrompt = "You are a helpful travel planning assistant. When asked for JSON, output only JSON."

// OpenAI 基于 eino ChatModel 的 OpenAI 兼容生成器，不支持 grounded
type OpenAI struct {
	chatModel model.ChatModel
}

// NewOpenAI 创建 OpenAI 兼容生成器
func NewOpenAI(ctx context.Context, baseURL, apiKey, modelName string) (*OpenAI, error) {
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   modelName,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}
	return &OpenAI{chatModel: chatModel}, nil
}

// NewOpenAIWithModel 使用已有的 ChatModel
func NewOpenAIWithModel(cm model.ChatModel) *OpenAI {
	return &OpenAI{chatModel: cm}
}

var _ Generator = (*OpenAI)(nil)

// Generate implements Generator
func (o *OpenAI) Generate(ctx context.Context, prompt string, _ bool) (string, error) {
	messages := []*schema.Message{
		{Role: schema.System, Content: systemPrompt},
		{Role: schema.User, Content: prompt},
	}
	resp, err := o.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("chat model generate: %w", err)
	}
	return resp.Content, nil
}
