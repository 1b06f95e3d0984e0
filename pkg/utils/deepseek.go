package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const deepSeekSystemPrompt = `You are a sustainable travel expert specializing in eco-friendly travel plans with real place names, coordinates, and descriptions.

When suggesting locations, always include:
1. Real place names (not generic placeholders)
2. Detailed descriptions of activities possible at that location
3. Estimated costs in the local currency
4. Duration information
5. Sustainable transportation options between locations

Focus on sustainable and eco-friendly options such as:
- Historical sites and cultural attractions
- Parks and green spaces
- Local markets and craft centers
- Sustainable restaurants and cafes
- Museums and educational sites
- Urban farms and sustainable initiatives`

// DeepSeekPlannerClient talks to the DeepSeek chat completion API, which is
// OpenAI-compatible, so the stock OpenAI client works with a swapped base URL.
type DeepSeekPlannerClient struct {
	client *openai.Client
	model  string
}

func NewDeepSeekPlannerClient(apiKey, baseURL, model string) *DeepSeekPlannerClient {
	if baseURL == "" {
		baseURL = "https://api.deepseek.com/v1"
	}
	if model == "" {
		model = "deepseek-chat"
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL

	return &DeepSeekPlannerClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *DeepSeekPlannerClient) GenerateTravelPlan(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: deepSeekSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: 2000,
	})
	if err != nil {
		return "", fmt.Errorf("deepseek: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("deepseek: no completion returned")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *DeepSeekPlannerClient) Close() error {
	return nil
}
