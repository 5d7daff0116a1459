package ports

import (
	"context"

	"github.com/cosbuyai/shopping-api/internal/core/domain"
)

// SearchInput carries one shopping query. UserID is optional; when present
// the query is recorded in that user's search history.
type SearchInput struct {
	Query  string
	UserID string
}

// SearchResult is the completion produced for a query.
type SearchResult struct {
	Response string
	Cached   bool
}

type SearchService interface {
	Search(ctx context.Context, input SearchInput) (*SearchResult, error)
	History(ctx context.Context, userID string) ([]domain.SearchEntry, error)
}
