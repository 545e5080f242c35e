package repository

import (
	"context"
	"fmt"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	GenerateMarketingStrategy(ctx context.Context, companyName, objective, targetSegment string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const marketingStrategyPrompt = `
You are a senior marketing strategist for digital agencies. The user will describe their agency's client, a growth objective, and a target segment. Produce a concrete marketing strategy with:

1. A one-paragraph positioning statement
2. Three channel recommendations, each with a rationale and an expected effort level (low/medium/high)
3. A 30/60/90 day action plan as a bulleted list
4. Two measurable KPIs per objective

Keep the whole answer under 500 words and avoid generic filler advice. Answer in the same language the user writes in.
`

func (h gptRepositoryHandler) GenerateMarketingStrategy(ctx context.Context, companyName, objective, targetSegment string) (string, error) {
	request := fmt.Sprintf("Company: %s\nObjective: %s\nTarget segment: %s", companyName, objective, targetSegment)

	response, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: marketingStrategyPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: request,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate marketing strategy: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("gpt returned no choices")
	}

	return response.Choices[0].Message.Content, nil
}
