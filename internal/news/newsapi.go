package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"ai-news-digest/internal/models"
)

const (
	defaultBaseURL = "https://newsapi.org/v2"

	// Upstream query shape: one page of AI-topic articles ordered by
	// publish time, newest first.
	topicQuery = "artificial intelligence"
	sortBy     = "publishedAt"
	pageSize   = 100
)

// Client fetches AI-related articles from the news-search API.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type apiResponse struct {
	Status       string `json:"status"`
	Code         string `json:"code"`
	Message      string `json:"message"`
	TotalResults int    `json:"totalResults"`
	Articles     []struct {
		Source struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"source"`
		Author      string    `json:"author"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		URL         string    `json:"url"`
		PublishedAt time.Time `json:"publishedAt"`
		Content     string    `json:"content"`
	} `json:"articles"`
}

// NewClient creates a news client. An empty baseURL selects the public
// NewsAPI endpoint.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchSince returns articles on the AI topic published since start, in
// upstream order (most recent first). An empty slice is a valid outcome.
// The start date must not be in the future.
func (c *Client) FetchSince(ctx context.Context, start time.Time) ([]models.Article, error) {
	if start.After(time.Now()) {
		return nil, fmt.Errorf("%w: start date %s is in the future", models.ErrInvalidRequest, start.Format("2006-01-02"))
	}

	q := url.Values{}
	q.Set("q", topicQuery)
	q.Set("from", start.Format("2006-01-02"))
	q.Set("sortBy", sortBy)
	q.Set("pageSize", fmt.Sprintf("%d", pageSize))
	q.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/everything?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: news api returned status %d", models.ErrUpstreamAuth, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: news api returned status %d", models.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: decoding news api response: %v", models.ErrUpstreamUnavailable, err)
	}

	if apiResp.Status != "ok" {
		if apiResp.Code == "apiKeyInvalid" || apiResp.Code == "apiKeyDisabled" || apiResp.Code == "apiKeyMissing" {
			return nil, fmt.Errorf("%w: news api error: %s", models.ErrUpstreamAuth, apiResp.Code)
		}
		return nil, fmt.Errorf("%w: news api error: %s", models.ErrUpstreamUnavailable, apiResp.Code)
	}

	articles := make([]models.Article, 0, len(apiResp.Articles))
	for _, a := range apiResp.Articles {
		articles = append(articles, models.Article{
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			PublishedAt: a.PublishedAt,
		})
	}

	return articles, nil
}
