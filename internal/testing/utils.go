// Package testing provides utilities and helpers for testing the
// documentation browser.
package testing

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/docnav/docnav/config"
	"github.com/docnav/docnav/internal/persistence"
	"github.com/docnav/docnav/model"
)

// SampleTree builds a small navigation tree:
//
//	Guides            (category)
//	  HTTP            (category with route "guides/http")
//	    REST          (route "guides/http/rest")
//	  Testing         (route "guides/testing")
//	Changelog         (route "changelog")
func SampleTree() []*model.NavigationItem {
	return []*model.NavigationItem{
		{
			Label: "Guides",
			Children: []*model.NavigationItem{
				{
					Label: "HTTP",
					Route: "guides/http",
					Children: []*model.NavigationItem{
						{Label: "REST", Route: "guides/http/rest"},
					},
				},
				{Label: "Testing", Route: "guides/testing"},
			},
		},
		{Label: "Changelog", Route: "changelog"},
	}
}

// WriteManifest writes items as a manifest JSON file and returns its path.
func WriteManifest(t *testing.T, dir string, items []*model.NavigationItem) string {
	t.Helper()
	path := filepath.Join(dir, "navigation.json")
	require.NoError(t, persistence.SaveJSON(path, items), "Failed to write test manifest")
	return path
}

// WriteContentFile materializes a document for route under contentDir using
// the fetcher's path rule (percent-encoded segments + ".md").
func WriteContentFile(t *testing.T, contentDir, route, content string) {
	t.Helper()
	segments := strings.Split(route, "/")
	encoded := make([]string, len(segments))
	for i, segment := range segments {
		encoded[i] = url.PathEscape(segment)
	}
	path := filepath.Join(contentDir, filepath.FromSlash(strings.Join(encoded, "/"))) + ".md"
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "Failed to create content directory")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write content file")
}

// TestSettings returns settings rooted in a fresh temp directory, with the
// manifest already written.
func TestSettings(t *testing.T, items []*model.NavigationItem) config.Settings {
	t.Helper()
	dir := t.TempDir()
	manifest := WriteManifest(t, dir, items)
	settings := config.Settings{
		ContentDir:   dir,
		ManifestPath: manifest,
	}
	settings.ApplyDefaults()
	return settings
}
