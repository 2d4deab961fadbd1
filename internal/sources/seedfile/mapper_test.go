package seedfile

import (
	"testing"
)

func testConfig() *Config {
	return &Config{
		Folders: []Entry{
			{
				Title: "Bookmarks bar",
				Children: []Entry{
					{Title: "Example", Href: "https://example.com/"},
					{
						Title: "Dev",
						Children: []Entry{
							{Title: "Go blog", Href: "https://go.dev/blog"},
						},
					},
				},
			},
			{Title: "Other bookmarks"},
		},
	}
}

func TestMapTree(t *testing.T) {
	mapper := NewMapper()
	roots, err := mapper.MapTree(testConfig())
	if err != nil {
		t.Fatalf("MapTree() error = %v", err)
	}

	if len(roots) != 2 {
		t.Fatalf("MapTree() roots = %d, want 2", len(roots))
	}

	bar := roots[0]
	if bar.Title != "Bookmarks bar" || !bar.IsFolder() {
		t.Errorf("first root = %+v, want folder %q", bar, "Bookmarks bar")
	}
	if len(bar.Children) != 2 {
		t.Fatalf("bar children = %d, want 2", len(bar.Children))
	}
	if bar.Children[0].URL != "https://example.com/" {
		t.Errorf("bookmark url = %q", bar.Children[0].URL)
	}

	dev := bar.Children[1]
	if !dev.IsFolder() || len(dev.Children) != 1 {
		t.Fatalf("Dev = %+v, want folder with 1 child", dev)
	}
	if dev.Children[0].Title != "Go blog" {
		t.Errorf("nested bookmark title = %q", dev.Children[0].Title)
	}
}

func TestMapTreeStableIDs(t *testing.T) {
	mapper := NewMapper()
	first, err := mapper.MapTree(testConfig())
	if err != nil {
		t.Fatalf("MapTree() error = %v", err)
	}
	second, err := mapper.MapTree(testConfig())
	if err != nil {
		t.Fatalf("MapTree() error = %v", err)
	}

	if first[0].ID == "" {
		t.Fatal("MapTree() assigned empty id")
	}
	if first[0].ID != second[0].ID {
		t.Errorf("root ids differ across runs: %q vs %q", first[0].ID, second[0].ID)
	}
	if first[0].Children[1].Children[0].ID != second[0].Children[1].Children[0].ID {
		t.Error("nested ids differ across runs")
	}
	if first[0].ID == second[1].ID {
		t.Error("distinct entries share an id")
	}
}

func TestMapTreeSkipsEmptyEntries(t *testing.T) {
	mapper := NewMapper()
	roots, err := mapper.MapTree(&Config{
		Folders: []Entry{
			{
				Title: "Bar",
				Children: []Entry{
					{},
					{Title: "Kept", Href: "https://example.com/"},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("MapTree() error = %v", err)
	}
	if len(roots[0].Children) != 1 {
		t.Errorf("children = %d, want 1 (empty entry dropped)", len(roots[0].Children))
	}
}

func TestMapTreeRejectsTopLevelBookmark(t *testing.T) {
	mapper := NewMapper()
	_, err := mapper.MapTree(&Config{
		Folders: []Entry{{Title: "Loose", Href: "https://example.com/"}},
	})
	if err == nil {
		t.Error("MapTree() with top-level bookmark should return error")
	}
}

func TestMapTreeEmptyConfig(t *testing.T) {
	mapper := NewMapper()
	if _, err := mapper.MapTree(&Config{}); err == nil {
		t.Error("MapTree() with no folders should return error")
	}
	if _, err := mapper.MapTree(nil); err == nil {
		t.Error("MapTree(nil) should return error")
	}
}
