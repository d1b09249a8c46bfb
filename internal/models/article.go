package models

import "time"

// Article is a single news item as returned by the news-search upstream.
// Articles live only for the duration of one pipeline run.
type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"published_at"`
}

// DigestRequest is the validated input to the digest pipeline.
type DigestRequest struct {
	Window   Window
	Language string
}

// DigestResult is the final digest payload. It is immutable once produced
// and is the unit stored in the result cache and returned to callers.
type DigestResult struct {
	Summary             string    `json:"summary"`
	Language            string    `json:"language"`
	ArticleCount        int       `json:"article_count"`
	GeneratedAt         time.Time `json:"generated_at"`
	TranslationDegraded bool      `json:"translation_degraded,omitempty"`
}

// DigestKey identifies one cacheable digest.
type DigestKey struct {
	Window   Window
	Language string
}
