package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/sporthub/webapp/internal/core/domain"
	"github.com/sporthub/webapp/internal/core/ports"
)

// SearchClient talks to the search service.
type SearchClient struct {
	c *client
}

func NewSearchClient(baseURL string, log zerolog.Logger) *SearchClient {
	return &SearchClient{c: newClient(baseURL, "search", log)}
}

// Search issues GET /search. Only parameters the caller explicitly set are
// included; a zero-value params struct produces an empty query string.
func (s *SearchClient) Search(ctx context.Context, params ports.SearchParams, token string) (*domain.SearchResult, error) {
	q := url.Values{}
	if params.Query != "" {
		q.Set("query", params.Query)
	}
	if params.Sport != "" {
		q.Set("sport", params.Sport)
	}
	if params.Site != "" {
		q.Set("site", params.Site)
	}
	if params.Date != "" {
		q.Set("date", params.Date)
	}
	if params.Sort != "" {
		q.Set("sort", params.Sort)
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Size > 0 {
		q.Set("size", strconv.Itoa(params.Size))
	}

	var out domain.SearchResult
	if err := s.c.do(ctx, "search", http.MethodGet, "/search", q, nil, &out, token); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SearchClient) Health(ctx context.Context) error {
	return s.c.health(ctx)
}
