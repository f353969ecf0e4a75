package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	internalErrors "github.com/docnav/docnav/internal/errors"
	"github.com/docnav/docnav/internal/persistence"
	"github.com/docnav/docnav/model"
)

func sampleItems() []*model.NavigationItem {
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

func writeManifest(t *testing.T, items []*model.NavigationItem) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "navigation.json")
	if err := persistence.SaveJSON(path, items); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, sampleItems())

	navStore, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v, want nil", err)
	}
	if len(navStore.Items) != 2 {
		t.Fatalf("loaded %d top-level items, want 2", len(navStore.Items))
	}
	if navStore.Items[0].Label != "Guides" || navStore.Items[1].Route != "changelog" {
		t.Errorf("manifest order not preserved: %+v", navStore.Items)
	}
}

func TestLoadManifest_MissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, internalErrors.ErrManifestLoad) {
		t.Errorf("LoadManifest() error = %v, want ErrManifestLoad", err)
	}
}

func TestLoadManifest_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navigation.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := LoadManifest(path)
	if !errors.Is(err, internalErrors.ErrManifestLoad) {
		t.Errorf("LoadManifest() error = %v, want ErrManifestLoad", err)
	}
}

func TestReload(t *testing.T) {
	path := writeManifest(t, sampleItems())
	navStore, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}

	// Expanded state does not survive a reload.
	navStore.Items[0].Expanded = true

	if err := persistence.SaveJSON(path, []*model.NavigationItem{
		{Label: "Only", Route: "only"},
	}); err != nil {
		t.Fatalf("Failed to rewrite manifest: %v", err)
	}
	if err := navStore.Reload(path); err != nil {
		t.Fatalf("Reload() error = %v, want nil", err)
	}
	if len(navStore.Items) != 1 || navStore.Items[0].Route != "only" {
		t.Errorf("Reload() left items = %+v, want the rewritten tree", navStore.Items)
	}
}

func TestReload_FailureKeepsCurrentTree(t *testing.T) {
	path := writeManifest(t, sampleItems())
	navStore, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}

	err = navStore.Reload(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, internalErrors.ErrManifestLoad) {
		t.Fatalf("Reload() error = %v, want ErrManifestLoad", err)
	}
	if len(navStore.Items) != 2 {
		t.Errorf("failed reload replaced the tree: %+v", navStore.Items)
	}
}

func TestFindByRoute(t *testing.T) {
	navStore := &NavigationStore{Items: sampleItems()}

	tests := []struct {
		name      string
		route     string
		wantLabel string
	}{
		{"nested leaf", "guides/http/rest", "REST"},
		{"routed category", "guides/http", "HTTP"},
		{"top-level leaf", "changelog", "Changelog"},
		{"unknown route", "nope", ""},
		{"empty route never matches", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := navStore.FindByRoute(tt.route)
			if tt.wantLabel == "" {
				if found != nil {
					t.Errorf("FindByRoute(%q) = %+v, want nil", tt.route, found)
				}
				return
			}
			if found == nil || found.Label != tt.wantLabel {
				t.Errorf("FindByRoute(%q) = %+v, want label %q", tt.route, found, tt.wantLabel)
			}
		})
	}
}

func TestFindByRoute_FirstPreOrderWins(t *testing.T) {
	navStore := &NavigationStore{Items: []*model.NavigationItem{
		{Label: "First", Route: "shared"},
		{Label: "Second", Route: "shared"},
	}}

	found := navStore.FindByRoute("shared")
	if found == nil || found.Label != "First" {
		t.Errorf("FindByRoute(shared) = %+v, want the first pre-order node", found)
	}
}

func TestFindByPath(t *testing.T) {
	navStore := &NavigationStore{Items: sampleItems()}

	tests := []struct {
		name      string
		labels    []string
		wantLabel string
	}{
		{"top-level category", []string{"Guides"}, "Guides"},
		{"nested category", []string{"Guides", "HTTP"}, "HTTP"},
		{"leaf", []string{"Guides", "HTTP", "REST"}, "REST"},
		{"wrong chain", []string{"Guides", "REST"}, ""},
		{"empty path", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := navStore.FindByPath(tt.labels)
			if tt.wantLabel == "" {
				if found != nil {
					t.Errorf("FindByPath(%v) = %+v, want nil", tt.labels, found)
				}
				return
			}
			if found == nil || found.Label != tt.wantLabel {
				t.Errorf("FindByPath(%v) = %+v, want label %q", tt.labels, found, tt.wantLabel)
			}
		})
	}
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	navStore := &NavigationStore{Items: sampleItems()}

	snapshot := navStore.Snapshot()
	if len(snapshot) != 2 {
		t.Fatalf("snapshot has %d items, want 2", len(snapshot))
	}

	snapshot[0].Expanded = true
	snapshot[0].Children[0].Label = "mutated"

	if navStore.Items[0].Expanded {
		t.Error("mutating the snapshot leaked into the store")
	}
	if navStore.Items[0].Children[0].Label != "HTTP" {
		t.Error("mutating a snapshot child leaked into the store")
	}
}
