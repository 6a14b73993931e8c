package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"member-qa/domain/qa"
	"member-qa/errors"
)

// Generator dispatches constrained prompts to an OpenAI-compatible chat
// completion backend. All generation parameters are injected; nothing is
// hard-coded. One backend call per Generate, no internal retries.
type Generator struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	log         *slog.Logger
}

// GeneratorOptions carries the injected backend parameters. BaseURL is
// optional and mainly serves tests, which point it at a local fake.
type GeneratorOptions struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
}

func NewGenerator(opts GeneratorOptions, log *slog.Logger) *Generator {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	return &Generator{
		client:      openai.NewClientWithConfig(cfg),
		model:       opts.Model,
		temperature: float32(opts.Temperature),
		maxTokens:   opts.MaxTokens,
		log:         log,
	}
}

// Generate sends the prompt and returns the backend's raw text. Any
// backend failure, including an empty choice list, wraps ErrGeneration;
// no response is ever fabricated.
func (g *Generator) Generate(ctx context.Context, prompt qa.Prompt) (string, error) {
	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.System},
			{Role: openai.ChatMessageRoleUser, Content: prompt.UserContent()},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrGeneration, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: backend returned no choices", errors.ErrGeneration)
	}

	g.log.Debug("Generation completed",
		"model", g.model,
		"latency_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
