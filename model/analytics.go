package model

import "time"

// SearchEvent records a single executed search for analytics.
type SearchEvent struct {
	Query        string        `json:"query"`
	ResultCount  int           `json:"result_count"`
	ResponseTime time.Duration `json:"response_time"`
	FailedRoutes []string      `json:"failed_routes,omitempty"`
	Timestamp    time.Time     `json:"timestamp"`
}

// PopularSearch is an aggregated count for one normalized query term.
type PopularSearch struct {
	Query       string `json:"query"`
	SearchCount int    `json:"search_count"`
}

// FetchFailure records one swallowed document-fetch error. Search results
// never surface these per hit; this is the diagnostic side channel.
type FetchFailure struct {
	Route     string    `json:"route"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// AnalyticsReport is the aggregate view served by the analytics endpoint.
type AnalyticsReport struct {
	TotalSearches       int             `json:"total_searches"`
	AvgResponseTimeMs   int64           `json:"avg_response_time_ms"`
	PopularSearches     []PopularSearch `json:"popular_searches"`
	TotalFetchFailures  int             `json:"total_fetch_failures"`
	RecentFetchFailures []FetchFailure  `json:"recent_fetch_failures"`
	TrackedSince        time.Time       `json:"tracked_since"`
}
