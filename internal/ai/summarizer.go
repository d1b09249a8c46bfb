package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"ai-news-digest/internal/models"
)

const summarySystemPrompt = "You are a news editor. You write clear, concise, " +
	"professional summaries of AI-related news coverage suitable for reports. " +
	"Avoid repetition, keep a smooth narrative, and do not emit special characters " +
	"or escape sequences."

// Summarizer produces a short summary of an aggregated article corpus via
// an OpenAI-compatible chat-completions upstream.
type Summarizer struct {
	client    openai.Client
	model     string
	maxTokens int
}

// NewSummarizer creates a summarizer client. An empty baseURL selects the
// library default endpoint; an empty model falls back to gpt-4o-mini.
func NewSummarizer(apiKey, baseURL, model string) *Summarizer {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Summarizer{
		client:    openai.NewClient(opts...),
		model:     model,
		maxTokens: 2000,
	}
}

// Summarize returns a short natural-language summary of text. The input
// must be non-empty; an upstream error or empty completion fails with
// ErrSummarizationFailed.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty input corpus", models.ErrSummarizationFailed)
	}

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(summarySystemPrompt),
			openai.UserMessage("Summarize the following AI news coverage:\n\n" + text),
		},
		Temperature: openai.Float(0.2),
		MaxTokens:   openai.Int(int64(s.maxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrSummarizationFailed, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no completion returned", models.ErrSummarizationFailed)
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("%w: empty completion returned", models.ErrSummarizationFailed)
	}

	return summary, nil
}
