package model

// NavigationItem is a single node of the navigation tree. A node carries a
// Route when it addresses a document, Children when it groups other nodes,
// or both (a clickable category). Leaf-ness for search purposes depends only
// on Route being set, never on the absence of Children.
//
// Expanded is mutable UI state and not part of the node's identity. The tree
// is owned by store.NavigationStore and every Expanded mutation must happen
// under its lock.
type NavigationItem struct {
	Label    string            `json:"label"`
	Route    string            `json:"route,omitempty"`
	Children []*NavigationItem `json:"children,omitempty"`
	Expanded bool              `json:"expanded"`
}

// HasRoute reports whether this node addresses a document.
func (n *NavigationItem) HasRoute() bool {
	return n.Route != ""
}

// FlattenedEntry is a navigation leaf reduced to what search needs:
// its label, its route, and the " / "-joined chain of ancestor labels
// down to and including the label itself.
//
// Entries are rebuilt from the tree on demand and never persisted.
type FlattenedEntry struct {
	Label      string `json:"label"`
	Route      string `json:"route"`
	Breadcrumb string `json:"breadcrumb"`
}
