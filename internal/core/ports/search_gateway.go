package ports

import (
	"context"

	"github.com/sporthub/webapp/internal/core/domain"
)

// SearchParams are the optional query parameters of the search endpoint.
// Zero values are treated as "not supplied" and never appear in the outgoing
// query string.
type SearchParams struct {
	Query string
	Sport string
	Site  string
	Date  string // yyyy-mm-dd
	Sort  string
	Page  int
	Size  int
}

// SearchGateway is the typed client for the search service.
type SearchGateway interface {
	Search(ctx context.Context, params SearchParams, token string) (*domain.SearchResult, error)
	Health(ctx context.Context) error
}
