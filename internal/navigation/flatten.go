// Package navigation implements the tree flattener and the active-route
// tracker over the shared navigation store.
package navigation

import (
	"github.com/docnav/docnav/internal/errors"
	"github.com/docnav/docnav/model"
)

// MaxDepth bounds the flattening recursion. A well-formed manifest is a
// shallow tree; hitting the bound means the tree is cyclic or corrupt, and
// the walk fails with ErrMaxDepthExceeded instead of recursing forever.
const MaxDepth = 64

// BreadcrumbSeparator joins ancestor labels into a breadcrumb.
const BreadcrumbSeparator = " / "

// Flatten walks items in pre-order and returns one FlattenedEntry per node
// that carries a route. Children are always recursed into, whether or not
// the node itself contributed an entry: a clickable category yields its own
// entry plus whatever its subtree yields. Order matches the pre-order
// traversal of the tree. An empty or nil items slice yields an empty result.
//
// Callers are responsible for holding the store's read lock if the tree is
// shared.
func Flatten(items []*model.NavigationItem) ([]model.FlattenedEntry, error) {
	return flatten(items, "", 0)
}

func flatten(items []*model.NavigationItem, prefix string, depth int) ([]model.FlattenedEntry, error) {
	if depth > MaxDepth {
		return nil, errors.NewMaxDepthExceededError(MaxDepth)
	}

	entries := make([]model.FlattenedEntry, 0, len(items))
	for _, item := range items {
		crumb := item.Label
		if prefix != "" {
			crumb = prefix + BreadcrumbSeparator + item.Label
		}

		if item.HasRoute() {
			entries = append(entries, model.FlattenedEntry{
				Label:      item.Label,
				Route:      item.Route,
				Breadcrumb: crumb,
			})
		}

		if len(item.Children) > 0 {
			childEntries, err := flatten(item.Children, crumb, depth+1)
			if err != nil {
				return nil, err
			}
			entries = append(entries, childEntries...)
		}
	}
	return entries, nil
}
