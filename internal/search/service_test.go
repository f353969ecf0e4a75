package search

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/docnav/docnav/model"
	"github.com/docnav/docnav/store"
)

// fakeFetcher serves canned content per route and counts fetch calls.
// Routes absent from the map fail, like a missing content file would.
type fakeFetcher struct {
	mu       sync.Mutex
	content  map[string]string
	failures map[string]bool
	calls    atomic.Int64
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		content:  make(map[string]string),
		failures: make(map[string]bool),
	}
}

func (f *fakeFetcher) Fetch(_ context.Context, route string) (string, error) {
	f.calls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures[route] {
		return "", fmt.Errorf("simulated fetch failure for %s", route)
	}
	content, ok := f.content[route]
	if !ok {
		return "", fmt.Errorf("no content for %s", route)
	}
	return content, nil
}

func newTestStore(items []*model.NavigationItem) *store.NavigationStore {
	return &store.NavigationStore{Items: items}
}

func leaf(label, route string) *model.NavigationItem {
	return &model.NavigationItem{Label: label, Route: route}
}

func setupTestSearchService(t *testing.T, items []*model.NavigationItem) (*Service, *fakeFetcher) {
	t.Helper()
	fetcher := newFakeFetcher()
	service, err := NewService(newTestStore(items), fetcher)
	if err != nil {
		t.Fatalf("Failed to create search service: %v", err)
	}
	return service, fetcher
}

func TestNewService(t *testing.T) {
	t.Run("valid initialization", func(t *testing.T) {
		_, err := NewService(newTestStore(nil), newFakeFetcher())
		if err != nil {
			t.Errorf("NewService() error = %v, wantErr nil", err)
		}
	})

	t.Run("nil store", func(t *testing.T) {
		_, err := NewService(nil, newFakeFetcher())
		if err == nil {
			t.Error("NewService() with nil store, wantErr, got nil")
		}
	})

	t.Run("nil fetcher", func(t *testing.T) {
		_, err := NewService(newTestStore(nil), nil)
		if err == nil {
			t.Error("NewService() with nil fetcher, wantErr, got nil")
		}
	})
}

func TestSearch_MinimumQueryLength(t *testing.T) {
	service, fetcher := setupTestSearchService(t, []*model.NavigationItem{
		leaf("Alpha", "alpha"),
	})

	for _, query := range []string{"", "a", " a ", "\t\n", "  "} {
		result, err := service.Search(context.Background(), query)
		if err != nil {
			t.Fatalf("Search(%q) error = %v, want nil", query, err)
		}
		if len(result.Hits) != 0 {
			t.Errorf("Search(%q) returned %d hits, want 0", query, len(result.Hits))
		}
	}

	if got := fetcher.calls.Load(); got != 0 {
		t.Errorf("short-circuited queries issued %d fetches, want 0", got)
	}
}

func TestSearch_MatchTypeClassification(t *testing.T) {
	items := []*model.NavigationItem{
		leaf("Kafka Basics", "kafka"),     // title only
		leaf("Messaging", "messaging"),    // content only
		leaf("Kafka Streams", "streams"),  // both
		leaf("Unrelated", "unrelated"),    // neither
	}
	service, fetcher := setupTestSearchService(t, items)
	fetcher.content["kafka"] = "nothing relevant here"
	fetcher.content["messaging"] = "brokers such as kafka move messages"
	fetcher.content["streams"] = "kafka streams api notes"
	fetcher.content["unrelated"] = "completely different topic"

	result, err := service.Search(context.Background(), "kafka")
	if err != nil {
		t.Fatalf("Search() error = %v, want nil", err)
	}

	byRoute := make(map[string]model.SearchHit)
	for _, hit := range result.Hits {
		byRoute[hit.Route] = hit
	}

	if len(result.Hits) != 3 {
		t.Fatalf("got %d hits, want 3: %+v", len(result.Hits), result.Hits)
	}
	if got := byRoute["kafka"].MatchType; got != model.MatchTypeTitle {
		t.Errorf("kafka match type = %q, want %q", got, model.MatchTypeTitle)
	}
	if got := byRoute["messaging"].MatchType; got != model.MatchTypeContent {
		t.Errorf("messaging match type = %q, want %q", got, model.MatchTypeContent)
	}
	if got := byRoute["streams"].MatchType; got != model.MatchTypeBoth {
		t.Errorf("streams match type = %q, want %q", got, model.MatchTypeBoth)
	}
	if _, ok := byRoute["unrelated"]; ok {
		t.Error("unrelated entry must not be included")
	}
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	service, fetcher := setupTestSearchService(t, []*model.NavigationItem{
		leaf("HTTP Caching", "caching"),
	})
	fetcher.content["caching"] = "no match in body"

	result, err := service.Search(context.Background(), "  CACH  ")
	if err != nil {
		t.Fatalf("Search() error = %v, want nil", err)
	}
	if len(result.Hits) != 1 {
		t.Fatalf("got %d hits, want 1 (case-insensitive substring on title)", len(result.Hits))
	}
	if result.Hits[0].MatchType != model.MatchTypeTitle {
		t.Errorf("match type = %q, want title", result.Hits[0].MatchType)
	}
}

func TestSearch_FetchFailureTolerance(t *testing.T) {
	items := []*model.NavigationItem{
		leaf("Redis Guide", "redis"),   // title match, fetch fails
		leaf("Postgres", "postgres"),   // no title match, fetch fails
	}
	service, fetcher := setupTestSearchService(t, items)
	fetcher.failures["redis"] = true
	fetcher.failures["postgres"] = true

	result, err := service.Search(context.Background(), "redis")
	if err != nil {
		t.Fatalf("Search() must not fail on fetch errors, got %v", err)
	}
	if len(result.Hits) != 1 {
		t.Fatalf("got %d hits, want 1 (title-only survivor)", len(result.Hits))
	}
	hit := result.Hits[0]
	if hit.Route != "redis" || hit.MatchType != model.MatchTypeTitle {
		t.Errorf("hit = %+v, want title match on 'redis'", hit)
	}
	if len(hit.ContentMatches) != 0 {
		t.Errorf("failed fetch must yield no content matches, got %v", hit.ContentMatches)
	}
	if len(result.FailedRoutes) != 2 {
		t.Errorf("failed routes = %v, want both routes reported", result.FailedRoutes)
	}
}

func TestSearch_RankingStableWithinTiers(t *testing.T) {
	// Flattened order: A(content), B(both), C(title), D(content).
	// Expected sorted order: B, C, A, D.
	items := []*model.NavigationItem{
		leaf("Alpha", "a"),
		leaf("Term Beta", "b"),
		leaf("Term Gamma", "c"),
		leaf("Delta", "d"),
	}
	service, fetcher := setupTestSearchService(t, items)
	fetcher.content["a"] = "term in content"
	fetcher.content["b"] = "term in content"
	fetcher.content["c"] = "no match here"
	fetcher.content["d"] = "term in content"

	result, err := service.Search(context.Background(), "term")
	if err != nil {
		t.Fatalf("Search() error = %v, want nil", err)
	}

	gotRoutes := make([]string, len(result.Hits))
	for i, hit := range result.Hits {
		gotRoutes[i] = hit.Route
	}
	wantRoutes := []string{"b", "c", "a", "d"}
	if len(gotRoutes) != len(wantRoutes) {
		t.Fatalf("got %d hits (%v), want %d", len(gotRoutes), gotRoutes, len(wantRoutes))
	}
	for i := range wantRoutes {
		if gotRoutes[i] != wantRoutes[i] {
			t.Errorf("position %d = %q, want %q (full order %v)", i, gotRoutes[i], wantRoutes[i], gotRoutes)
		}
	}
}

func TestSearch_SnippetCapPerDocument(t *testing.T) {
	service, fetcher := setupTestSearchService(t, []*model.NavigationItem{
		leaf("Notes", "notes"),
	})
	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, fmt.Sprintf("line %d mentions term", i))
	}
	fetcher.content["notes"] = strings.Join(lines, "\n")

	result, err := service.Search(context.Background(), "term")
	if err != nil {
		t.Fatalf("Search() error = %v, want nil", err)
	}
	if len(result.Hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(result.Hits))
	}
	if got := len(result.Hits[0].ContentMatches); got > 3 {
		t.Errorf("content matches = %d, want at most 3", got)
	}
}

func TestSearch_BreadcrumbsOnHits(t *testing.T) {
	items := []*model.NavigationItem{
		{
			Label: "Guides",
			Children: []*model.NavigationItem{
				leaf("Kafka", "guides/kafka"),
			},
		},
	}
	service, fetcher := setupTestSearchService(t, items)
	fetcher.content["guides/kafka"] = "broker notes"

	result, err := service.Search(context.Background(), "kafka")
	if err != nil {
		t.Fatalf("Search() error = %v, want nil", err)
	}
	if len(result.Hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(result.Hits))
	}
	if got, want := result.Hits[0].Breadcrumb, "Guides / Kafka"; got != want {
		t.Errorf("breadcrumb = %q, want %q", got, want)
	}
}

func TestSearch_EmptyTree(t *testing.T) {
	service, _ := setupTestSearchService(t, nil)

	result, err := service.Search(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Search() error = %v, want nil", err)
	}
	if len(result.Hits) != 0 {
		t.Errorf("got %d hits on an empty tree, want 0", len(result.Hits))
	}
	if result.QueryID == "" {
		t.Error("result must carry a query ID")
	}
}

func TestSearch_FlattenCacheInvalidation(t *testing.T) {
	navStore := newTestStore([]*model.NavigationItem{leaf("Alpha", "alpha")})
	fetcher := newFakeFetcher()
	fetcher.content["alpha"] = "body"
	fetcher.content["beta"] = "body"
	service, err := NewService(navStore, fetcher)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	result, err := service.Search(context.Background(), "alpha")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(result.Hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(result.Hits))
	}

	// Swap the tree under the store; without invalidation the stale
	// flattening keeps serving the old entries.
	navStore.Mu.Lock()
	navStore.Items = []*model.NavigationItem{leaf("Beta", "beta")}
	navStore.Mu.Unlock()

	result, err = service.Search(context.Background(), "alpha")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(result.Hits) != 1 {
		t.Fatalf("stale cache expected before invalidation, got %d hits", len(result.Hits))
	}

	service.InvalidateEntries()

	result, err = service.Search(context.Background(), "beta")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(result.Hits) != 1 || result.Hits[0].Route != "beta" {
		t.Errorf("after invalidation expected the new tree to be searched, got %+v", result.Hits)
	}
}

func TestSearch_RecorderReceivesEvents(t *testing.T) {
	recorder := &capturingRecorder{}
	navStore := newTestStore([]*model.NavigationItem{
		leaf("Alpha", "alpha"),
		leaf("Broken", "broken"),
	})
	fetcher := newFakeFetcher()
	fetcher.content["alpha"] = "alpha body"
	fetcher.failures["broken"] = true

	service, err := NewService(navStore, fetcher, WithRecorder(recorder))
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	if _, err := service.Search(context.Background(), "alpha"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	if len(recorder.events) != 1 {
		t.Fatalf("recorded %d search events, want 1", len(recorder.events))
	}
	if recorder.events[0].Query != "alpha" {
		t.Errorf("recorded query = %q, want normalized %q", recorder.events[0].Query, "alpha")
	}
	if len(recorder.failures) != 1 || recorder.failures[0] != "broken" {
		t.Errorf("recorded failures = %v, want [broken]", recorder.failures)
	}
}

type capturingRecorder struct {
	mu       sync.Mutex
	events   []model.SearchEvent
	failures []string
}

func (r *capturingRecorder) RecordSearch(event model.SearchEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *capturingRecorder) RecordFetchFailure(route string, _ error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, route)
}
