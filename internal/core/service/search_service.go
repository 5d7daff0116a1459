package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cosbuyai/shopping-api/internal/api/metrics"
	"github.com/cosbuyai/shopping-api/internal/core/domain"
	"github.com/cosbuyai/shopping-api/internal/core/ports"
)

// SearchService proxies shopping queries to the completion provider and
// maintains per-user search history.
type SearchService struct {
	repo       ports.UserRepository
	completion ports.CompletionClient
	cache      ports.CompletionCache
	cacheTTL   time.Duration
	logger     zerolog.Logger
}

func NewSearchService(repo ports.UserRepository, completion ports.CompletionClient, cache ports.CompletionCache, cacheTTL time.Duration, logger zerolog.Logger) *SearchService {
	return &SearchService{
		repo:       repo,
		completion: completion,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// Search records the query in the caller's history (when a user id was
// supplied) and returns the completion text.
//
// The history append happens first and is never rolled back: a query that
// subsequently fails upstream still counts as a search the user made. The
// append itself is best-effort — an unknown or malformed user id skips
// persistence without failing the request.
func (s *SearchService) Search(ctx context.Context, input ports.SearchInput) (*ports.SearchResult, error) {
	if input.UserID != "" {
		entry := domain.SearchEntry{Query: input.Query, Timestamp: time.Now().UTC()}
		if err := s.repo.AppendSearch(ctx, input.UserID, entry); err != nil {
			s.logger.Warn().Err(err).Str("user_id", input.UserID).Msg("history append failed")
		}
	}

	if s.cache != nil {
		if cached, ok, err := s.cache.Get(ctx, input.Query); err != nil {
			s.logger.Warn().Err(err).Msg("completion cache read failed")
		} else if ok {
			metrics.SearchesTotal.WithLabelValues("hit").Inc()
			return &ports.SearchResult{Response: cached, Cached: true}, nil
		}
	}

	start := time.Now()
	text, err := s.completion.Complete(ctx, input.Query)
	metrics.CompletionRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CompletionErrorsTotal.Inc()
		s.logger.Error().Err(err).Msg("completion request failed")
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, input.Query, text, s.cacheTTL); err != nil {
			s.logger.Warn().Err(err).Msg("completion cache write failed")
		}
	}

	metrics.SearchesTotal.WithLabelValues("miss").Inc()
	return &ports.SearchResult{Response: text}, nil
}

// History returns the user's full search history in insertion order.
func (s *SearchService) History(ctx context.Context, userID string) ([]domain.SearchEntry, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.SearchHistory, nil
}
