// Package engine wires the navigation store, tracker, fetcher, searcher,
// renderer and analytics into the single object the API layer talks to.
package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/docnav/docnav/config"
	"github.com/docnav/docnav/internal/analytics"
	internalErrors "github.com/docnav/docnav/internal/errors"
	"github.com/docnav/docnav/internal/fetch"
	"github.com/docnav/docnav/internal/navigation"
	"github.com/docnav/docnav/internal/render"
	"github.com/docnav/docnav/internal/search"
	"github.com/docnav/docnav/model"
	"github.com/docnav/docnav/services"
	"github.com/docnav/docnav/store"
)

// Engine implements services.DocBrowser.
type Engine struct {
	settings  config.Settings
	store     *store.NavigationStore
	tracker   *navigation.Tracker
	searcher  *search.Service
	fetcher   *fetch.FileFetcher
	renderer  *render.MarkdownRenderer
	analytics *analytics.Service
}

// NewEngine builds the full component graph from settings. A manifest that
// cannot be loaded is replaced by an empty tree: search and navigation then
// operate on zero entries instead of failing startup.
func NewEngine(settings config.Settings) (*Engine, error) {
	settings.ApplyDefaults()
	if problems := settings.Validate(); len(problems) > 0 {
		return nil, fmt.Errorf("invalid settings: %v", problems)
	}

	navStore, err := store.LoadManifest(settings.ManifestPath)
	if err != nil {
		log.Printf("Warning: %v. Starting with an empty navigation tree.", err)
		navStore = &store.NavigationStore{}
	}

	fetcher, err := fetch.NewFileFetcher(
		settings.ContentDir,
		settings.ContentFileSuffix,
		time.Duration(settings.FetchTimeoutMs)*time.Millisecond,
		settings.ContentCacheSize,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create document fetcher: %w", err)
	}

	analyticsService := analytics.NewService()

	searcher, err := search.NewService(navStore, fetcher,
		search.WithRecorder(analyticsService),
		search.WithMaxConcurrentFetches(settings.MaxConcurrentFetches),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create search service: %w", err)
	}

	return &Engine{
		settings:  settings,
		store:     navStore,
		tracker:   navigation.NewTracker(navStore),
		searcher:  searcher,
		fetcher:   fetcher,
		renderer:  render.NewMarkdownRenderer(settings.HighlightStyle),
		analytics: analyticsService,
	}, nil
}

// Search implements services.Searcher.
func (e *Engine) Search(ctx context.Context, query string) (services.SearchResult, error) {
	return e.searcher.Search(ctx, query)
}

// Navigation returns a snapshot of the tree, safe to marshal concurrently
// with expanded-state mutations.
func (e *Engine) Navigation() []*model.NavigationItem {
	return e.store.Snapshot()
}

// Flattened returns the breadcrumb-annotated leaf entries of the tree.
func (e *Engine) Flattened() ([]model.FlattenedEntry, error) {
	e.store.Mu.RLock()
	defer e.store.Mu.RUnlock()
	return navigation.Flatten(e.store.Items)
}

// SetActiveRoute records route as the current page and expands its
// ancestors. The tracker itself treats an unknown route as a silent no-op;
// at this level the miss is surfaced so the API can answer 404.
func (e *Engine) SetActiveRoute(route string) error {
	if e.store.FindByRoute(route) == nil {
		return internalErrors.NewRouteNotFoundError(route)
	}
	e.tracker.SetActiveRoute(route)
	return nil
}

// ActiveRoute implements services.NavigationManager.
func (e *Engine) ActiveRoute() (string, bool) {
	return e.tracker.ActiveRoute()
}

// IsRouteActive implements services.NavigationManager.
func (e *Engine) IsRouteActive(route string) bool {
	return e.tracker.IsRouteActive(route)
}

// ToggleAt flips the expanded state of the node addressed by a root-first
// label path.
func (e *Engine) ToggleAt(path []string) error {
	item := e.store.FindByPath(path)
	if item == nil {
		return internalErrors.NewNodeNotFoundError(path)
	}
	e.tracker.ToggleItem(item)
	return nil
}

// Document returns the raw markdown for route, requiring the route to be
// known to the navigation tree.
func (e *Engine) Document(ctx context.Context, route string) (string, error) {
	if e.store.FindByRoute(route) == nil {
		return "", internalErrors.NewRouteNotFoundError(route)
	}
	return e.fetcher.Fetch(ctx, route)
}

// RenderedDocument returns the document for route as highlighted HTML.
func (e *Engine) RenderedDocument(ctx context.Context, route string) (string, error) {
	content, err := e.Document(ctx, route)
	if err != nil {
		return "", err
	}
	return e.renderer.Render([]byte(content))
}

// Analytics implements services.AnalyticsProvider.
func (e *Engine) Analytics() model.AnalyticsReport {
	return e.analytics.Report()
}

// ReloadManifest re-reads the manifest and invalidates the cached
// flattening. The current tree is kept when the reload fails.
func (e *Engine) ReloadManifest() error {
	if err := e.store.Reload(e.settings.ManifestPath); err != nil {
		return err
	}
	e.searcher.InvalidateEntries()
	log.Printf("Navigation manifest reloaded from %s", e.settings.ManifestPath)
	return nil
}

// Tracker exposes the active-route tracker for embedding UIs that hold
// direct node references.
func (e *Engine) Tracker() *navigation.Tracker {
	return e.tracker
}
