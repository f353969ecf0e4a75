// Package search implements the two-phase title/content search over the
// flattened navigation tree.
package search

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/docnav/docnav/internal/navigation"
	"github.com/docnav/docnav/model"
	"github.com/docnav/docnav/services"
	"github.com/docnav/docnav/store"
)

// minQueryLength gates searching: trimmed queries shorter than this return
// an empty result without flattening the tree or issuing a single fetch.
// One-character terms would match nearly every document.
const minQueryLength = 2

const defaultMaxConcurrentFetches = 8

// EventRecorder receives search events and swallowed fetch failures.
// The analytics service implements it; a nil recorder disables recording.
type EventRecorder interface {
	RecordSearch(event model.SearchEvent)
	RecordFetchFailure(route string, err error)
}

// Service implements services.Searcher over a navigation store and a
// document fetcher.
type Service struct {
	store    *store.NavigationStore
	fetcher  services.DocumentFetcher
	matcher  Matcher
	recorder EventRecorder

	maxConcurrentFetches int

	// Flattening the tree is deterministic until the manifest is reloaded,
	// so the result is cached across searches.
	mu           sync.Mutex
	entries      []model.FlattenedEntry
	entriesValid bool
}

// NewService creates a new search Service.
func NewService(navStore *store.NavigationStore, fetcher services.DocumentFetcher, opts ...Option) (*Service, error) {
	if navStore == nil {
		return nil, fmt.Errorf("navigation store cannot be nil")
	}
	if fetcher == nil {
		return nil, fmt.Errorf("document fetcher cannot be nil")
	}

	s := &Service{
		store:                navStore,
		fetcher:              fetcher,
		matcher:              SubstringMatcher{},
		maxConcurrentFetches: defaultMaxConcurrentFetches,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Option configures a Service.
type Option func(*Service)

// WithMatcher replaces the default substring matcher.
func WithMatcher(m Matcher) Option {
	return func(s *Service) {
		if m != nil {
			s.matcher = m
		}
	}
}

// WithRecorder attaches an analytics recorder.
func WithRecorder(r EventRecorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithMaxConcurrentFetches bounds the content-fetch fan-out per search.
func WithMaxConcurrentFetches(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxConcurrentFetches = n
		}
	}
}

// InvalidateEntries discards the cached flattening. Called after a
// manifest reload.
func (s *Service) InvalidateEntries() {
	s.mu.Lock()
	s.entriesValid = false
	s.entries = nil
	s.mu.Unlock()
}

// entryOutcome is the per-entry result of the content phase.
type entryOutcome struct {
	snippets []string
	fetchErr error
}

// Search evaluates query against every flattened entry and returns the
// classified, stable-sorted hits.
//
// Content fetches fan out concurrently but Search does not return until
// every fetch has settled; a failed fetch only removes that entry's content
// contribution and never fails the search. The final order is determined by
// the stable sort on match type (both < title < content) with flattened
// order as the implicit tiebreak, so fetch completion order is irrelevant.
//
// The only error paths are a flattening failure on a corrupt tree and
// cancellation of ctx itself.
func (s *Service) Search(ctx context.Context, query string) (services.SearchResult, error) {
	startTime := time.Now()

	term := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(term) < minQueryLength {
		return s.emptyResult(startTime), nil
	}

	entries, err := s.flattenedEntries()
	if err != nil {
		return services.SearchResult{}, err
	}

	outcomes := make([]entryOutcome, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrentFetches)
	for i := range entries {
		i := i
		route := entries[i].Route
		g.Go(func() error {
			content, err := s.fetcher.Fetch(gctx, route)
			if err != nil {
				outcomes[i].fetchErr = err
				return nil
			}
			outcomes[i].snippets = extractSnippets(content, term, s.matcher)
			return nil
		})
	}
	// The workers never return errors, so Wait only joins them.
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return services.SearchResult{}, err
	}

	hits := make([]model.SearchHit, 0, len(entries))
	var failedRoutes []string
	for i, entry := range entries {
		if outcomes[i].fetchErr != nil {
			failedRoutes = append(failedRoutes, entry.Route)
			if s.recorder != nil {
				s.recorder.RecordFetchFailure(entry.Route, outcomes[i].fetchErr)
			}
		}

		titleMatch := s.matcher.Matches(entry.Label, term)
		snippets := outcomes[i].snippets
		if !titleMatch && len(snippets) == 0 {
			continue
		}

		hits = append(hits, model.SearchHit{
			Label:          entry.Label,
			Route:          entry.Route,
			Breadcrumb:     entry.Breadcrumb,
			ContentMatches: snippets,
			MatchType:      model.ClassifyMatch(titleMatch, len(snippets)),
		})
	}

	// Stable: within a tier, flattened order is preserved.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].MatchType.Rank() < hits[j].MatchType.Rank()
	})

	took := time.Since(startTime)
	if s.recorder != nil {
		s.recorder.RecordSearch(model.SearchEvent{
			Query:        term,
			ResultCount:  len(hits),
			ResponseTime: took,
			FailedRoutes: failedRoutes,
			Timestamp:    time.Now(),
		})
	}

	return services.SearchResult{
		Hits:         hits,
		Total:        len(hits),
		Took:         took.Milliseconds(),
		QueryID:      uuid.New().String(),
		FailedRoutes: failedRoutes,
	}, nil
}

func (s *Service) emptyResult(startTime time.Time) services.SearchResult {
	return services.SearchResult{
		Hits:    []model.SearchHit{},
		Total:   0,
		Took:    time.Since(startTime).Milliseconds(),
		QueryID: uuid.New().String(),
	}
}

// flattenedEntries returns the cached flattening, rebuilding it under the
// store's read lock when invalid.
func (s *Service) flattenedEntries() ([]model.FlattenedEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entriesValid {
		return s.entries, nil
	}

	s.store.Mu.RLock()
	entries, err := navigation.Flatten(s.store.Items)
	s.store.Mu.RUnlock()
	if err != nil {
		return nil, err
	}

	s.entries = entries
	s.entriesValid = true
	return entries, nil
}
