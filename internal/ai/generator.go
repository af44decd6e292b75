package ai

import (
	"context"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Fixed decoding parameters for website generation.
const (
	MaxOutputTokens = 4000
	Temperature     = 0.7
)

// ChatCompleter is the slice of the OpenAI client the generator needs.
// *openai.Client satisfies it.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Options configures a Generator backed by an OpenAI-compatible API.
type Options struct {
	APIKey     string
	BaseURL    string        // empty uses the OpenAI default
	Model      string
	Timeout    time.Duration // 0 keeps the client default
	MaxRetries int           // 0 means a single backend call
}

type Generator struct {
	client     ChatCompleter
	model      string
	maxRetries int
	backoff    time.Duration
}

func NewGenerator(opts Options) *Generator {
	config := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		config.BaseURL = opts.BaseURL
	}
	if opts.Timeout > 0 {
		config.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}

	g := NewGeneratorWithClient(openai.NewClientWithConfig(config), opts.Model)
	g.maxRetries = opts.MaxRetries
	return g
}

// NewGeneratorWithClient builds a single-attempt Generator around an existing client.
func NewGeneratorWithClient(client ChatCompleter, model string) *Generator {
	return &Generator{
		client:  client,
		model:   model,
		backoff: 2 * time.Second,
	}
}

// Model reports the backend model identifier used for completions.
func (g *Generator) Model() string {
	return g.model
}
