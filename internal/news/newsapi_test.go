package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-news-digest/internal/models"
)

const sampleResponse = `{
	"status": "ok",
	"totalResults": 2,
	"articles": [
		{
			"source": {"id": null, "name": "Example"},
			"author": "A. Writer",
			"title": "New model released",
			"description": "A lab released a new model.",
			"url": "https://example.com/1",
			"publishedAt": "2026-08-29T10:00:00Z",
			"content": "Full content here."
		},
		{
			"source": {"id": null, "name": "Example"},
			"author": "B. Writer",
			"title": "Chips in demand",
			"description": "Accelerators remain scarce.",
			"url": "https://example.com/2",
			"publishedAt": "2026-08-28T09:00:00Z",
			"content": "More content."
		}
	]
}`

func TestFetchSince(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"q":        q.Get("q"),
			"from":     q.Get("from"),
			"sortBy":   q.Get("sortBy"),
			"pageSize": q.Get("pageSize"),
			"apiKey":   q.Get("apiKey"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)
	start := time.Now().AddDate(0, 0, -7)

	articles, err := client.FetchSince(context.Background(), start)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, "New model released", articles[0].Title)
	assert.Equal(t, "A lab released a new model.", articles[0].Description)
	assert.Equal(t, "Full content here.", articles[0].Content)
	assert.Equal(t, time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC), articles[0].PublishedAt)

	assert.Equal(t, "artificial intelligence", gotQuery["q"])
	assert.Equal(t, start.Format("2006-01-02"), gotQuery["from"])
	assert.Equal(t, "publishedAt", gotQuery["sortBy"])
	assert.Equal(t, "100", gotQuery["pageSize"])
	assert.Equal(t, "test-key", gotQuery["apiKey"])
}

func TestFetchSinceEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ok", "totalResults": 0, "articles": []}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)

	articles, err := client.FetchSince(context.Background(), time.Now().AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestFetchSinceAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status": "error", "code": "apiKeyInvalid", "message": "bad key"}`))
	}))
	defer srv.Close()

	client := NewClient("bad-key", srv.URL)

	_, err := client.FetchSince(context.Background(), time.Now().AddDate(0, 0, -1))
	assert.ErrorIs(t, err, models.ErrUpstreamAuth)
}

func TestFetchSinceServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)

	_, err := client.FetchSince(context.Background(), time.Now().AddDate(0, 0, -1))
	assert.ErrorIs(t, err, models.ErrUpstreamUnavailable)
}

func TestFetchSinceUpstreamErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "error", "code": "rateLimited", "message": "slow down"}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", srv.URL)

	_, err := client.FetchSince(context.Background(), time.Now().AddDate(0, 0, -1))
	assert.ErrorIs(t, err, models.ErrUpstreamUnavailable)
}

func TestFetchSinceUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	client := NewClient("test-key", srv.URL)

	_, err := client.FetchSince(context.Background(), time.Now().AddDate(0, 0, -1))
	assert.ErrorIs(t, err, models.ErrUpstreamUnavailable)
}

func TestFetchSinceFutureStartDate(t *testing.T) {
	client := NewClient("test-key", "")

	_, err := client.FetchSince(context.Background(), time.Now().Add(48*time.Hour))
	assert.ErrorIs(t, err, models.ErrInvalidRequest)
}
