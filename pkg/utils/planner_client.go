package utils

import (
	"context"
	"fmt"
	"strings"
)

// PlannerClientInterface generates free-form itinerary text from a trip
// prompt. Implementations wrap a specific LLM provider; the returned text is
// parsed downstream, so providers are interchangeable.
type PlannerClientInterface interface {
	GenerateTravelPlan(ctx context.Context, prompt string) (string, error)
	Close() error
}

// NewPlannerClient creates the provider selected by config.
func NewPlannerClient(provider, apiKey, baseURL, model string) (PlannerClientInterface, error) {
	switch strings.ToLower(provider) {
	case "deepseek", "":
		return NewDeepSeekPlannerClient(apiKey, baseURL, model), nil
	case "gemini":
		return NewGeminiPlannerClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported planner provider: %s", provider)
	}
}
