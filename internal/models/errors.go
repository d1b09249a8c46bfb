package models

import "errors"

// Pipeline error taxonomy. Handlers map these onto HTTP status codes;
// nothing in the pipeline retries on them.
var (
	// ErrInvalidRequest marks malformed caller input. Surfaced as 400.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUpstreamUnavailable marks an unreachable upstream or a
	// non-success upstream response. Surfaced as 500.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// ErrUpstreamAuth marks a rejected upstream credential. Surfaced as 500.
	ErrUpstreamAuth = errors.New("upstream credential rejected")

	// ErrSummarizationFailed marks a summarization call that errored or
	// produced nothing usable. Fatal for the pipeline run.
	ErrSummarizationFailed = errors.New("summarization failed")

	// ErrTranslationFailed marks a failed translation call. Non-fatal:
	// the pipeline degrades to the untranslated summary.
	ErrTranslationFailed = errors.New("translation failed")
)
