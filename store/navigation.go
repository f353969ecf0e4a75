package store

import (
	"sync"

	internalErrors "github.com/docnav/docnav/internal/errors"
	"github.com/docnav/docnav/internal/persistence"
	"github.com/docnav/docnav/model"
)

// NavigationStore owns the navigation tree for the lifetime of the process.
// The manifest is loaded once at startup; the only write paths afterwards
// are the Expanded flags (tracker expansion, toggles) and an explicit
// Reload. All access goes through Mu: the source environment relied on a
// single-threaded runtime, here the tree is shared between request handlers.
type NavigationStore struct {
	Mu    sync.RWMutex
	Items []*model.NavigationItem
}

// LoadManifest builds a store from the manifest JSON file at path.
// The manifest is an ordered array of NavigationItem records; order is
// display and flattening order and is preserved as-is.
func LoadManifest(path string) (*NavigationStore, error) {
	var items []*model.NavigationItem
	if err := persistence.LoadJSON(path, &items); err != nil {
		return nil, internalErrors.NewManifestLoadError(path, err)
	}
	return &NavigationStore{Items: items}, nil
}

// Reload replaces the tree with a fresh parse of the manifest at path.
// Expanded state is reset; a failed reload leaves the current tree intact.
func (s *NavigationStore) Reload(path string) error {
	var items []*model.NavigationItem
	if err := persistence.LoadJSON(path, &items); err != nil {
		return internalErrors.NewManifestLoadError(path, err)
	}
	s.Mu.Lock()
	s.Items = items
	s.Mu.Unlock()
	return nil
}

// FindByRoute returns the first node (pre-order) whose own route equals
// route, or nil. Empty routes never match.
func (s *NavigationStore) FindByRoute(route string) *model.NavigationItem {
	if route == "" {
		return nil
	}
	s.Mu.RLock()
	defer s.Mu.RUnlock()
	return findByRoute(s.Items, route)
}

func findByRoute(items []*model.NavigationItem, route string) *model.NavigationItem {
	for _, item := range items {
		if item.Route == route {
			return item
		}
		if found := findByRoute(item.Children, route); found != nil {
			return found
		}
	}
	return nil
}

// FindByPath resolves a chain of labels (root-first) to a node, or nil.
// Used to address category nodes, which may not carry a route.
func (s *NavigationStore) FindByPath(labels []string) *model.NavigationItem {
	if len(labels) == 0 {
		return nil
	}
	s.Mu.RLock()
	defer s.Mu.RUnlock()
	items := s.Items
	var node *model.NavigationItem
	for _, label := range labels {
		node = nil
		for _, item := range items {
			if item.Label == label {
				node = item
				break
			}
		}
		if node == nil {
			return nil
		}
		items = node.Children
	}
	return node
}

// Snapshot returns a deep copy of the tree. Handlers marshal the snapshot
// outside the lock, so concurrent Expanded mutations cannot race with
// JSON encoding.
func (s *NavigationStore) Snapshot() []*model.NavigationItem {
	s.Mu.RLock()
	defer s.Mu.RUnlock()
	return copyItems(s.Items)
}

func copyItems(items []*model.NavigationItem) []*model.NavigationItem {
	if items == nil {
		return nil
	}
	out := make([]*model.NavigationItem, len(items))
	for i, item := range items {
		out[i] = &model.NavigationItem{
			Label:    item.Label,
			Route:    item.Route,
			Expanded: item.Expanded,
			Children: copyItems(item.Children),
		}
	}
	return out
}
