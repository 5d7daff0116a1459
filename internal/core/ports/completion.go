package ports

import (
	"context"
	"time"
)

// CompletionClient is the outbound interface to the chat-completion
// provider. Complete returns the assistant text for a single user query;
// any transport or provider failure surfaces as domain.ErrUpstream.
type CompletionClient interface {
	Complete(ctx context.Context, query string) (string, error)
}

// CompletionCache stores completion text keyed by query. The cache is
// advisory: implementations return ("", false, err) on backend failure and
// callers treat every error as a miss.
type CompletionCache interface {
	Get(ctx context.Context, query string) (string, bool, error)
	Set(ctx context.Context, query, response string, ttl time.Duration) error
}
