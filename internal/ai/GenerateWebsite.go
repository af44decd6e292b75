package ai

import (
	"context"
	"log"
	"math/rand/v2"
	"time"

	"skyit_builder/internal/ai/prompts"
	"skyit_builder/internal/utils"

	openai "github.com/sashabaranov/go-openai"
)

// GenerateWebsite turns a natural-language request into an HTML document.
// A non-empty existingCode asks the model to modify that document instead of
// starting over.
func (g *Generator) GenerateWebsite(ctx context.Context, userPrompt, existingCode string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompts.WebsiteSystemPrompt(existingCode)},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens:   MaxOutputTokens,
		Temperature: Temperature,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)

	for attempt := 1; err != nil && attempt <= g.maxRetries && utils.ShouldRetry(err); attempt++ {
		delay := g.backoff*time.Duration(attempt) + time.Duration(rand.Int64N(int64(g.backoff)/2+1))
		log.Printf("Generation call failed, retry %d/%d in %s. Error: %v", attempt, g.maxRetries, delay, err)
		select {
		case <-ctx.Done():
			return "", classify(ctx.Err())
		case <-time.After(delay):
		}
		resp, err = g.client.CreateChatCompletion(ctx, req)
	}

	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		log.Printf("Backend usage for request without choices: %+v", resp.Usage)
		return "", &GenerationError{Kind: KindMalformedResponse, Err: ErrNoChoices}
	}

	return utils.ExtractHTML(resp.Choices[0].Message.Content), nil
}
