// Package config provides configuration structures for the documentation
// browser. It defines content locations, fetch behavior and API limits.
package config

import (
	"strings"
)

// Settings contains all runtime configuration for the service.
type Settings struct {
	ContentDir           string `json:"content_dir"`             // Root directory holding the markdown content tree
	ManifestPath         string `json:"manifest_path"`           // Path to the navigation manifest JSON file
	ContentFileSuffix    string `json:"content_file_suffix"`     // Suffix appended to encoded routes (e.g. ".md")
	FetchTimeoutMs       int    `json:"fetch_timeout_ms"`        // Per-document fetch timeout; a timed-out fetch counts as a failed fetch
	ContentCacheSize     int    `json:"content_cache_size"`      // Number of fetched documents kept in the LRU cache
	MaxConcurrentFetches int    `json:"max_concurrent_fetches"`  // Upper bound on in-flight content fetches per search
	MaxRequestBodyBytes  int64  `json:"max_request_body_bytes"`  // Request body size limit for the API
	HighlightStyle       string `json:"highlight_style"`         // Chroma style used for fenced code blocks
}

// Validate checks the settings for basic requirements and returns a list of
// human-readable problems. An empty slice means the settings are usable.
func (settings *Settings) Validate() []string {
	var problems []string

	if strings.TrimSpace(settings.ContentDir) == "" {
		problems = append(problems, "content_dir cannot be empty")
	}
	if strings.TrimSpace(settings.ManifestPath) == "" {
		problems = append(problems, "manifest_path cannot be empty")
	}
	if settings.ContentFileSuffix != "" && !strings.HasPrefix(settings.ContentFileSuffix, ".") {
		problems = append(problems, "content_file_suffix must start with '.' (e.g. \".md\")")
	}
	if settings.FetchTimeoutMs < 0 {
		problems = append(problems, "fetch_timeout_ms cannot be negative")
	}
	if settings.ContentCacheSize < 0 {
		problems = append(problems, "content_cache_size cannot be negative")
	}
	if settings.MaxConcurrentFetches < 0 {
		problems = append(problems, "max_concurrent_fetches cannot be negative")
	}
	if settings.MaxRequestBodyBytes < 0 {
		problems = append(problems, "max_request_body_bytes cannot be negative")
	}

	return problems
}

// ApplyDefaults fills zero-valued settings with their defaults.
func (settings *Settings) ApplyDefaults() {
	if settings.ContentFileSuffix == "" {
		settings.ContentFileSuffix = ".md"
	}
	if settings.FetchTimeoutMs == 0 {
		settings.FetchTimeoutMs = 2000
	}
	if settings.ContentCacheSize == 0 {
		settings.ContentCacheSize = 128
	}
	if settings.MaxConcurrentFetches == 0 {
		settings.MaxConcurrentFetches = 8
	}
	if settings.MaxRequestBodyBytes == 0 {
		settings.MaxRequestBodyBytes = 1 << 20 // 1 MiB
	}
	if settings.HighlightStyle == "" {
		settings.HighlightStyle = "github"
	}
}
