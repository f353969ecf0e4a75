package api

import (
	"strings"
	"testing"
)

func TestValidateRoute(t *testing.T) {
	tests := []struct {
		name    string
		route   string
		wantErr bool
	}{
		{"simple route", "changelog", false},
		{"nested route", "guides/http/rest", false},
		{"route with spaces", "api reference/intro", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"empty segment", "guides//rest", true},
		{"dot segment", "guides/./rest", true},
		{"parent segment", "../etc", true},
		{"too long", strings.Repeat("a", maxRouteLength+1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateRoute(tt.route)
			if result.HasErrors() != tt.wantErr {
				t.Errorf("ValidateRoute(%q) errors = %v, wantErr %v", tt.route, result.Errors, tt.wantErr)
			}
		})
	}
}

func TestValidateQuery(t *testing.T) {
	// Short and empty queries are valid; the searcher answers them with an
	// empty result instead of an error.
	for _, query := range []string{"", "a", "kafka"} {
		if result := ValidateQuery(query); result.HasErrors() {
			t.Errorf("ValidateQuery(%q) errors = %v, want none", query, result.Errors)
		}
	}

	if result := ValidateQuery(strings.Repeat("q", maxQueryLength+1)); !result.HasErrors() {
		t.Error("ValidateQuery over the length limit should fail")
	}
}

func TestValidateTogglePath(t *testing.T) {
	tests := []struct {
		name    string
		path    []string
		wantErr bool
	}{
		{"single label", []string{"Guides"}, false},
		{"nested labels", []string{"Guides", "HTTP"}, false},
		{"empty path", nil, true},
		{"blank label", []string{"Guides", "  "}, true},
		{"too deep", make([]string, maxPathDepth+1), true},
	}
	for i := range tests[4].path {
		tests[4].path[i] = "x"
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateTogglePath(tt.path)
			if result.HasErrors() != tt.wantErr {
				t.Errorf("ValidateTogglePath(%v) errors = %v, wantErr %v", tt.path, result.Errors, tt.wantErr)
			}
		})
	}
}
