package seedfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderLoad(t *testing.T) {
	tmpDir := t.TempDir()
	yamlPath := filepath.Join(tmpDir, "bookmarks.yaml")

	yamlContent := `---
folders:
  - title: Bookmarks bar
    children:
      - title: Example
        href: https://example.com/
      - title: Dev
        children:
          - title: Go blog
            href: https://go.dev/blog
`

	err := os.WriteFile(yamlPath, []byte(yamlContent), 0o644)
	if err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}

	loader := NewLoader(yamlPath)
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(config.Folders) != 1 {
		t.Fatalf("Load() folders = %d, want 1", len(config.Folders))
	}
	bar := config.Folders[0]
	if bar.Title != "Bookmarks bar" {
		t.Errorf("root title = %q, want %q", bar.Title, "Bookmarks bar")
	}
	if len(bar.Children) != 2 {
		t.Fatalf("root children = %d, want 2", len(bar.Children))
	}
	if bar.Children[0].Href != "https://example.com/" {
		t.Errorf("first child href = %q", bar.Children[0].Href)
	}
	if len(bar.Children[1].Children) != 1 {
		t.Errorf("Dev children = %d, want 1", len(bar.Children[1].Children))
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	loader := NewLoader("/nonexistent/path/bookmarks.yaml")
	_, err := loader.Load()
	if err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestLoaderLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	yamlPath := filepath.Join(tmpDir, "bookmarks.yaml")

	err := os.WriteFile(yamlPath, []byte("folders: [unclosed"), 0o644)
	if err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}

	loader := NewLoader(yamlPath)
	_, err = loader.Load()
	if err == nil {
		t.Error("Load() with invalid YAML should return error")
	}
}
