package digest

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ai-news-digest/internal/cache"
	"ai-news-digest/internal/models"
)

// NoNewsSummary is returned when the window contains no articles.
const NoNewsSummary = "No AI news articles found for the requested period."

// maxCorpusBytes bounds the concatenated article corpus submitted for
// summarization. Articles past the budget are dropped whole; since
// upstream ordering is most-recent-first, the earliest articles are
// truncated first.
const maxCorpusBytes = 24000

// NewsSource returns articles published since a start date.
type NewsSource interface {
	FetchSince(ctx context.Context, start time.Time) ([]models.Article, error)
}

// Summarizer condenses an article corpus into a short summary.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Translator renders a summary in a target language.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// Pipeline orchestrates one digest computation: resolve the window
// boundary, fetch articles, summarize, translate, cache.
type Pipeline struct {
	news       NewsSource
	summarizer Summarizer
	translator Translator
	cache      *cache.ResultCache
	logger     *slog.Logger
	now        func() time.Time
}

// New assembles a pipeline from its collaborators.
func New(news NewsSource, summarizer Summarizer, translator Translator, results *cache.ResultCache, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		news:       news,
		summarizer: summarizer,
		translator: translator,
		cache:      results,
		logger:     logger,
		now:        time.Now,
	}
}

// Digest returns the digest for req, serving it from the result cache when
// a fresh entry exists for (window, language) and computing it otherwise.
func (p *Pipeline) Digest(ctx context.Context, req models.DigestRequest) (*models.DigestResult, error) {
	key := models.DigestKey{Window: req.Window, Language: req.Language}

	result, hit, err := p.cache.GetOrCompute(ctx, key, func(ctx context.Context) (*models.DigestResult, error) {
		return p.Run(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	if hit {
		p.logger.Debug("digest served from cache", "window", req.Window, "language", req.Language)
	}
	return result, nil
}

// Run computes a digest without consulting the cache.
func (p *Pipeline) Run(ctx context.Context, req models.DigestRequest) (*models.DigestResult, error) {
	now := p.now()
	boundary := req.Window.Boundary(now)

	articles, err := p.news.FetchSince(ctx, boundary)
	if err != nil {
		return nil, err
	}

	if len(articles) == 0 {
		p.logger.Info("no articles in window", "window", req.Window, "since", boundary)
		return &models.DigestResult{
			Summary:      NoNewsSummary,
			Language:     "en",
			ArticleCount: 0,
			GeneratedAt:  now,
		}, nil
	}

	p.logger.Info("summarizing articles", "window", req.Window, "count", len(articles))

	summary, err := p.summarizer.Summarize(ctx, buildCorpus(articles))
	if err != nil {
		return nil, err
	}

	result := &models.DigestResult{
		Summary:      summary,
		Language:     req.Language,
		ArticleCount: len(articles),
		GeneratedAt:  now,
	}

	// Summaries are produced in English; translating to it is a no-op.
	if req.Language == "en" {
		return result, nil
	}

	translated, err := p.translator.Translate(ctx, summary, req.Language)
	if err != nil {
		// Translation is best-effort: fall back to the untranslated summary.
		p.logger.Warn("translation failed, returning untranslated summary",
			"language", req.Language, "error", err)
		result.Language = "en"
		result.TranslationDegraded = true
		return result, nil
	}

	result.Summary = translated
	return result, nil
}

// buildCorpus concatenates article title, description and content in source
// order, dropping whole trailing articles once the byte budget is exceeded.
// At least the first article is always included, hard-cut if oversized.
func buildCorpus(articles []models.Article) string {
	var sb strings.Builder

	for i, a := range articles {
		var piece strings.Builder
		piece.WriteString(a.Title)
		if a.Description != "" {
			piece.WriteString("\n")
			piece.WriteString(a.Description)
		}
		if a.Content != "" {
			piece.WriteString("\n")
			piece.WriteString(a.Content)
		}
		piece.WriteString("\n\n")

		if sb.Len()+piece.Len() > maxCorpusBytes {
			if i == 0 {
				return piece.String()[:maxCorpusBytes]
			}
			break
		}
		sb.WriteString(piece.String())
	}

	return strings.TrimRight(sb.String(), "\n")
}
