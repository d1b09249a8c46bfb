package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"ai-news-digest/internal/models"
)

// SourceLanguage is the canonical language summaries are produced in.
// Translation to it is an identity operation.
const SourceLanguage = "en"

// Translator translates digest summaries via an OpenAI-compatible
// chat-completions upstream.
type Translator struct {
	client    openai.Client
	model     string
	maxTokens int
}

// NewTranslator creates a translator client. An empty baseURL selects the
// library default endpoint; an empty model falls back to gpt-4o-mini.
func NewTranslator(apiKey, baseURL, model string) *Translator {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Translator{
		client:    openai.NewClient(opts...),
		model:     model,
		maxTokens: 2000,
	}
}

// Translate returns text rendered in the target language. Requesting the
// source language skips the upstream call and returns the input unchanged.
// Target language codes are passed through as-is; the upstream decides
// whether a code is usable.
func (t *Translator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if targetLanguage == SourceLanguage {
		return text, nil
	}

	prompt := fmt.Sprintf(
		"Translate the following text into the language with code %q. "+
			"Reply with the translation only, no commentary:\n\n%s",
		targetLanguage, text,
	)

	resp, err := t.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(t.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0.0),
		MaxTokens:   openai.Int(int64(t.maxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrTranslationFailed, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no completion returned", models.ErrTranslationFailed)
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", fmt.Errorf("%w: empty completion returned", models.ErrTranslationFailed)
	}

	return translated, nil
}
