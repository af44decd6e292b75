package ai

import (
	"context"

	"skyit_builder/internal/ai/prompts"
)

// EditWebsite applies a follow-up instruction to a previously generated document.
func (g *Generator) EditWebsite(ctx context.Context, originalPrompt, changes, existingCode string) (string, error) {
	return g.GenerateWebsite(ctx, prompts.EditRequestPrompt(originalPrompt, changes), existingCode)
}
