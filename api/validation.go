package api

import "strings"

const (
	maxRouteLength = 512
	maxQueryLength = 256
	maxPathDepth   = 64
)

// ValidationIssue describes a single invalid field.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult accumulates validation issues for a request.
type ValidationResult struct {
	Errors []ValidationIssue `json:"errors"`
}

// HasErrors reports whether any issue was recorded.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

func (r *ValidationResult) add(field, message string) {
	r.Errors = append(r.Errors, ValidationIssue{Field: field, Message: message})
}

// ValidateRoute checks a logical document route. Routes are opaque slash
// paths; traversal segments are rejected here so they never reach the
// fetcher.
func ValidateRoute(route string) *ValidationResult {
	result := &ValidationResult{}

	if strings.TrimSpace(route) == "" {
		result.add("route", "route cannot be empty")
		return result
	}
	if len(route) > maxRouteLength {
		result.add("route", "route is too long")
	}
	for _, segment := range strings.Split(route, "/") {
		if segment == "" {
			result.add("route", "route cannot contain empty segments")
			break
		}
		if segment == "." || segment == ".." {
			result.add("route", "route cannot contain traversal segments")
			break
		}
	}
	return result
}

// ValidateQuery checks a search query string. Note that short queries are
// not an error: the search service answers them with an empty result.
func ValidateQuery(query string) *ValidationResult {
	result := &ValidationResult{}
	if len(query) > maxQueryLength {
		result.add("query", "query is too long")
	}
	return result
}

// ValidateTogglePath checks a breadcrumb label path.
func ValidateTogglePath(path []string) *ValidationResult {
	result := &ValidationResult{}
	if len(path) == 0 {
		result.add("path", "path cannot be empty")
		return result
	}
	if len(path) > maxPathDepth {
		result.add("path", "path is too deep")
	}
	for _, label := range path {
		if strings.TrimSpace(label) == "" {
			result.add("path", "path labels cannot be empty")
			break
		}
	}
	return result
}
