package navigation

import (
	"sync"

	"github.com/docnav/docnav/model"
	"github.com/docnav/docnav/store"
)

// Tracker maintains the currently active route and the expand/collapse
// state of its ancestors. Tree mutations go through the store's lock;
// the active route itself has its own mutex so reads don't contend with
// tree walks.
type Tracker struct {
	store *store.NavigationStore

	mu        sync.RWMutex
	active    string
	hasActive bool
}

// NewTracker creates a tracker over the given store.
func NewTracker(navStore *store.NavigationStore) *Tracker {
	return &Tracker{store: navStore}
}

// SetActiveRoute records route as the current page and expands every
// ancestor of the first node whose own route equals it. The matched node
// itself and its siblings are left untouched. If no node matches, the tree
// is not mutated; the route is still recorded as active.
func (t *Tracker) SetActiveRoute(route string) {
	t.mu.Lock()
	t.active = route
	t.hasActive = true
	t.mu.Unlock()

	t.store.Mu.Lock()
	expandAncestors(t.store.Items, route)
	t.store.Mu.Unlock()
}

// ActiveRoute returns the tracked route and whether one has been set.
func (t *Tracker) ActiveRoute() (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active, t.hasActive
}

// IsRouteActive reports whether route equals the tracked active route.
// An empty route is never active.
func (t *Tracker) IsRouteActive(route string) bool {
	if route == "" {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.hasActive && t.active == route
}

// HasActiveChild reports whether any descendant of item, direct or
// transitive, carries the active route. Items without children never have
// an active child. Used to highlight ancestor categories of the current
// page.
func (t *Tracker) HasActiveChild(item *model.NavigationItem) bool {
	t.mu.RLock()
	active, ok := t.active, t.hasActive
	t.mu.RUnlock()
	if !ok || item == nil {
		return false
	}

	t.store.Mu.RLock()
	defer t.store.Mu.RUnlock()
	return subtreeHasRoute(item.Children, active)
}

// ToggleItem flips the item's expanded state in place.
func (t *Tracker) ToggleItem(item *model.NavigationItem) {
	if item == nil {
		return
	}
	t.store.Mu.Lock()
	item.Expanded = !item.Expanded
	t.store.Mu.Unlock()
}

// expandAncestors reports whether the target route lives in items' subtree.
// A node whose own route matches reports success without being expanded;
// each caller up the stack then expands its own node. The net effect is
// expansion of every strict ancestor of the match and nothing else.
func expandAncestors(items []*model.NavigationItem, route string) bool {
	for _, item := range items {
		if item.Route == route {
			return true
		}
		if expandAncestors(item.Children, route) {
			item.Expanded = true
			return true
		}
	}
	return false
}

func subtreeHasRoute(items []*model.NavigationItem, route string) bool {
	for _, item := range items {
		if item.Route == route {
			return true
		}
		if subtreeHasRoute(item.Children, route) {
			return true
		}
	}
	return false
}
