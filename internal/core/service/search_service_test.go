package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cosbuyai/shopping-api/internal/core/domain"
	"github.com/cosbuyai/shopping-api/internal/core/ports"
)

type stubCompletion struct {
	response string
	err      error
	calls    int
}

func (s *stubCompletion) Complete(_ context.Context, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

type stubCache struct {
	entries map[string]string
	getErr  error
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]string)}
}

func (s *stubCache) Get(_ context.Context, query string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	val, ok := s.entries[query]
	return val, ok, nil
}

func (s *stubCache) Set(_ context.Context, query, response string, _ time.Duration) error {
	s.entries[query] = response
	return nil
}

func seedUser(t *testing.T, repo *stubUserRepo) *domain.User {
	t.Helper()
	created, err := repo.Create(context.Background(), &domain.User{
		Phone:         "+1000",
		Email:         "a@x.com",
		PasswordHash:  "hash",
		SearchHistory: []domain.SearchEntry{},
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return created
}

func TestSearchService_Search_AppendsHistory(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo)
	completion := &stubCompletion{response: "1. Laptop X - $500"}
	svc := NewSearchService(repo, completion, newStubCache(), time.Hour, zerolog.Nop())

	result, err := svc.Search(context.Background(), ports.SearchInput{
		Query:  "best budget laptop",
		UserID: user.ID,
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if result.Response != "1. Laptop X - $500" {
		t.Fatalf("unexpected response: %q", result.Response)
	}

	entries, err := svc.History(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Query != "best budget laptop" {
		t.Fatalf("expected one history entry for the query, got %+v", entries)
	}
	if entries[0].Timestamp.IsZero() {
		t.Fatalf("expected a timestamp on the entry")
	}
}

func TestSearchService_Search_AppendSurvivesUpstreamFailure(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo)
	completion := &stubCompletion{err: fmt.Errorf("%w: status 503", domain.ErrUpstream)}
	svc := NewSearchService(repo, completion, newStubCache(), time.Hour, zerolog.Nop())

	_, err := svc.Search(context.Background(), ports.SearchInput{
		Query:  "best budget laptop",
		UserID: user.ID,
	})
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}

	// The append precedes the completion call and is not rolled back.
	entries, err := svc.History(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected the history entry to survive the upstream failure, got %d entries", len(entries))
	}
}

func TestSearchService_Search_AnonymousSkipsHistory(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo)
	completion := &stubCompletion{response: "some answer"}
	svc := NewSearchService(repo, completion, newStubCache(), time.Hour, zerolog.Nop())

	if _, err := svc.Search(context.Background(), ports.SearchInput{Query: "headphones"}); err != nil {
		t.Fatalf("search failed: %v", err)
	}

	entries, _ := svc.History(context.Background(), user.ID)
	if len(entries) != 0 {
		t.Fatalf("expected no history entries, got %d", len(entries))
	}
}

func TestSearchService_Search_UnknownUserIDDoesNotFail(t *testing.T) {
	repo := newStubUserRepo()
	completion := &stubCompletion{response: "some answer"}
	svc := NewSearchService(repo, completion, newStubCache(), time.Hour, zerolog.Nop())

	result, err := svc.Search(context.Background(), ports.SearchInput{
		Query:  "headphones",
		UserID: "no-such-user",
	})
	if err != nil {
		t.Fatalf("expected silent skip for unknown user id, got %v", err)
	}
	if result.Response != "some answer" {
		t.Fatalf("unexpected response: %q", result.Response)
	}
}

func TestSearchService_Search_CacheHitSkipsUpstream(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo)
	completion := &stubCompletion{response: "fresh answer"}
	cache := newStubCache()
	cache.entries["best budget laptop"] = "cached answer"
	svc := NewSearchService(repo, completion, cache, time.Hour, zerolog.Nop())

	result, err := svc.Search(context.Background(), ports.SearchInput{
		Query:  "best budget laptop",
		UserID: user.ID,
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !result.Cached || result.Response != "cached answer" {
		t.Fatalf("expected cached response, got %+v", result)
	}
	if completion.calls != 0 {
		t.Fatalf("expected no upstream call on cache hit, got %d", completion.calls)
	}

	// A cache hit is still a search the user made.
	entries, _ := svc.History(context.Background(), user.ID)
	if len(entries) != 1 {
		t.Fatalf("expected history append on cache hit, got %d entries", len(entries))
	}
}

func TestSearchService_Search_CacheErrorTreatedAsMiss(t *testing.T) {
	repo := newStubUserRepo()
	completion := &stubCompletion{response: "fresh answer"}
	cache := newStubCache()
	cache.getErr = errors.New("redis down")
	svc := NewSearchService(repo, completion, cache, time.Hour, zerolog.Nop())

	result, err := svc.Search(context.Background(), ports.SearchInput{Query: "headphones"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if result.Response != "fresh answer" {
		t.Fatalf("unexpected response: %q", result.Response)
	}
	if completion.calls != 1 {
		t.Fatalf("expected one upstream call, got %d", completion.calls)
	}
}

func TestSearchService_Search_StoresInCache(t *testing.T) {
	repo := newStubUserRepo()
	completion := &stubCompletion{response: "fresh answer"}
	cache := newStubCache()
	svc := NewSearchService(repo, completion, cache, time.Hour, zerolog.Nop())

	if _, err := svc.Search(context.Background(), ports.SearchInput{Query: "headphones"}); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if cache.entries["headphones"] != "fresh answer" {
		t.Fatalf("expected completion stored in cache, got %q", cache.entries["headphones"])
	}
}

func TestSearchService_History_Order(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo)
	completion := &stubCompletion{response: "answer"}
	svc := NewSearchService(repo, completion, newStubCache(), time.Hour, zerolog.Nop())

	queries := []string{"first", "second", "third"}
	for _, q := range queries {
		if _, err := svc.Search(context.Background(), ports.SearchInput{Query: q, UserID: user.ID}); err != nil {
			t.Fatalf("search %q failed: %v", q, err)
		}
	}

	entries, err := svc.History(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(entries) != len(queries) {
		t.Fatalf("expected %d entries, got %d", len(queries), len(entries))
	}
	for i, q := range queries {
		if entries[i].Query != q {
			t.Fatalf("expected entry %d to be %q, got %q", i, q, entries[i].Query)
		}
	}
}

func TestSearchService_History_UserNotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewSearchService(repo, &stubCompletion{}, newStubCache(), time.Hour, zerolog.Nop())

	if _, err := svc.History(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
