package services

import (
	"context"

	"github.com/docnav/docnav/model"
)

// SearchResult is the envelope returned by a search. Hits are fully
// materialized and sorted before it is returned; FailedRoutes lists the
// routes whose content fetch failed during this search. A failed route is
// indistinguishable from "no content matched" at the hit level, the list
// exists purely as a diagnostic channel.
type SearchResult struct {
	Hits         []model.SearchHit `json:"hits"`
	Total        int               `json:"total"`
	Took         int64             `json:"took"` // milliseconds
	QueryID      string            `json:"query_id"`
	FailedRoutes []string          `json:"failed_routes,omitempty"`
}

// Searcher defines the query operation over the navigation corpus.
type Searcher interface {
	Search(ctx context.Context, query string) (SearchResult, error)
}

// DocumentFetcher retrieves the raw text of the document addressed by a
// logical route. Fetches are best-effort from the searcher's point of view:
// any error means "no content available" for that entry.
type DocumentFetcher interface {
	Fetch(ctx context.Context, route string) (string, error)
}

// Renderer converts raw markdown into display HTML.
type Renderer interface {
	Render(source []byte) (string, error)
}

// NavigationManager exposes the navigation tree and its UI state.
type NavigationManager interface {
	Navigation() []*model.NavigationItem
	Flattened() ([]model.FlattenedEntry, error)
	SetActiveRoute(route string) error
	ActiveRoute() (string, bool)
	IsRouteActive(route string) bool
	ToggleAt(path []string) error
}

// DocumentProvider serves raw and rendered document content.
type DocumentProvider interface {
	Document(ctx context.Context, route string) (string, error)
	RenderedDocument(ctx context.Context, route string) (string, error)
}

// AnalyticsProvider reports aggregated search and diagnostic data.
type AnalyticsProvider interface {
	Analytics() model.AnalyticsReport
}

// DocBrowser is the full surface the API layer depends on.
type DocBrowser interface {
	Searcher
	NavigationManager
	DocumentProvider
	AnalyticsProvider
}
