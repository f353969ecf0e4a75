// Package analytics aggregates search activity and fetch-failure
// diagnostics. Search results never expose per-hit failure information;
// this service is the side channel that keeps swallowed errors observable.
package analytics

import (
	"sort"
	"sync"
	"time"

	"github.com/docnav/docnav/model"
)

const (
	// maxStoredEvents bounds the in-memory event log.
	maxStoredEvents = 1000

	// maxStoredFailures bounds the fetch-failure log.
	maxStoredFailures = 200

	// popularSearchLimit is how many aggregated queries the report lists.
	popularSearchLimit = 10

	// recentFailureLimit is how many failures the report lists.
	recentFailureLimit = 20
)

// Service collects search events and fetch failures in memory. Nothing is
// persisted; counters reset with the process.
type Service struct {
	mu           sync.Mutex
	events       []model.SearchEvent
	failures     []model.FetchFailure
	queryCounts  map[string]int
	totalFails   int
	trackedSince time.Time
}

// NewService creates an empty analytics service.
func NewService() *Service {
	return &Service{
		queryCounts:  make(map[string]int),
		trackedSince: time.Now(),
	}
}

// RecordSearch stores one executed search.
func (s *Service) RecordSearch(event model.SearchEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
	if len(s.events) > maxStoredEvents {
		s.events = s.events[len(s.events)-maxStoredEvents:]
	}
	s.queryCounts[event.Query]++
}

// RecordFetchFailure stores one swallowed document-fetch error.
func (s *Service) RecordFetchFailure(route string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalFails++
	s.failures = append(s.failures, model.FetchFailure{
		Route:     route,
		Reason:    err.Error(),
		Timestamp: time.Now(),
	})
	if len(s.failures) > maxStoredFailures {
		s.failures = s.failures[len(s.failures)-maxStoredFailures:]
	}
}

// Report builds the aggregate view served by the analytics endpoint.
func (s *Service) Report() model.AnalyticsReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := model.AnalyticsReport{
		TotalSearches:      len(s.events),
		TotalFetchFailures: s.totalFails,
		TrackedSince:       s.trackedSince,
	}

	if len(s.events) > 0 {
		var total time.Duration
		for _, event := range s.events {
			total += event.ResponseTime
		}
		report.AvgResponseTimeMs = (total / time.Duration(len(s.events))).Milliseconds()
	}

	popular := make([]model.PopularSearch, 0, len(s.queryCounts))
	for query, count := range s.queryCounts {
		popular = append(popular, model.PopularSearch{Query: query, SearchCount: count})
	}
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].SearchCount != popular[j].SearchCount {
			return popular[i].SearchCount > popular[j].SearchCount
		}
		return popular[i].Query < popular[j].Query
	})
	if len(popular) > popularSearchLimit {
		popular = popular[:popularSearchLimit]
	}
	report.PopularSearches = popular

	start := 0
	if len(s.failures) > recentFailureLimit {
		start = len(s.failures) - recentFailureLimit
	}
	report.RecentFetchFailures = append([]model.FetchFailure(nil), s.failures[start:]...)

	return report
}
