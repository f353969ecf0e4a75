package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrManifestLoad is returned when the navigation manifest cannot be loaded
	ErrManifestLoad = errors.New("manifest load failed")

	// ErrDocumentFetch is returned when a document's content cannot be fetched
	ErrDocumentFetch = errors.New("document fetch failed")

	// ErrRouteNotFound is returned when no navigation node carries a route
	ErrRouteNotFound = errors.New("route not found")

	// ErrNodeNotFound is returned when a breadcrumb path matches no node
	ErrNodeNotFound = errors.New("navigation node not found")

	// ErrMaxDepthExceeded is returned when a tree walk exceeds the depth bound
	ErrMaxDepthExceeded = errors.New("maximum tree depth exceeded")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// ManifestLoadError represents a manifest load failure with context.
type ManifestLoadError struct {
	Path string
	Err  error
}

func (e *ManifestLoadError) Error() string {
	return fmt.Sprintf("failed to load navigation manifest from '%s': %v", e.Path, e.Err)
}

func (e *ManifestLoadError) Is(target error) bool {
	return target == ErrManifestLoad
}

func (e *ManifestLoadError) Unwrap() error {
	return e.Err
}

// NewManifestLoadError creates a new ManifestLoadError
func NewManifestLoadError(path string, err error) *ManifestLoadError {
	return &ManifestLoadError{Path: path, Err: err}
}

// DocumentFetchError represents a failed content fetch for one route.
// Search swallows these per entry; they surface only through diagnostics.
type DocumentFetchError struct {
	Route string
	Err   error
}

func (e *DocumentFetchError) Error() string {
	return fmt.Sprintf("failed to fetch document for route '%s': %v", e.Route, e.Err)
}

func (e *DocumentFetchError) Is(target error) bool {
	return target == ErrDocumentFetch
}

func (e *DocumentFetchError) Unwrap() error {
	return e.Err
}

// NewDocumentFetchError creates a new DocumentFetchError
func NewDocumentFetchError(route string, err error) *DocumentFetchError {
	return &DocumentFetchError{Route: route, Err: err}
}

// RouteNotFoundError represents a route that matches no navigation node.
type RouteNotFoundError struct {
	Route string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("no navigation node carries route '%s'", e.Route)
}

func (e *RouteNotFoundError) Is(target error) bool {
	return target == ErrRouteNotFound
}

// NewRouteNotFoundError creates a new RouteNotFoundError
func NewRouteNotFoundError(route string) *RouteNotFoundError {
	return &RouteNotFoundError{Route: route}
}

// NodeNotFoundError represents a breadcrumb path that matches no node.
type NodeNotFoundError struct {
	Path []string
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("no navigation node matches path %v", e.Path)
}

func (e *NodeNotFoundError) Is(target error) bool {
	return target == ErrNodeNotFound
}

// NewNodeNotFoundError creates a new NodeNotFoundError
func NewNodeNotFoundError(path []string) *NodeNotFoundError {
	return &NodeNotFoundError{Path: path}
}

// MaxDepthExceededError converts a cyclic or absurdly deep manifest into a
// defined failure instead of unbounded recursion.
type MaxDepthExceededError struct {
	MaxDepth int
}

func (e *MaxDepthExceededError) Error() string {
	return fmt.Sprintf("navigation tree exceeds maximum depth of %d (cyclic manifest?)", e.MaxDepth)
}

func (e *MaxDepthExceededError) Is(target error) bool {
	return target == ErrMaxDepthExceeded
}

// NewMaxDepthExceededError creates a new MaxDepthExceededError
func NewMaxDepthExceededError(maxDepth int) *MaxDepthExceededError {
	return &MaxDepthExceededError{MaxDepth: maxDepth}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
