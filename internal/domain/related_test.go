package domain

import "testing"

func TestFindRelated(t *testing.T) {
	records := []Record{
		{ID: "1", Title: "Home", URL: "https://example.com/"},
		{ID: "2", Title: "Deep", URL: "https://x.example.com/p"},
		{ID: "3", Title: "Other", URL: "https://other.org/"},
		{ID: "4", Title: "Broken", URL: "not a url"},
	}

	res := FindRelated(records, "https://www.example.com/q")

	if res.CurrentDomain != "example.com" {
		t.Errorf("CurrentDomain = %q, want %q", res.CurrentDomain, "example.com")
	}
	if res.CurrentURL != "https://www.example.com/q" {
		t.Errorf("CurrentURL = %q", res.CurrentURL)
	}

	wantIDs := []string{"1", "2"}
	if len(res.Bookmarks) != len(wantIDs) {
		t.Fatalf("got %d related bookmarks, want %d: %+v", len(res.Bookmarks), len(wantIDs), res.Bookmarks)
	}
	for i, id := range wantIDs {
		if res.Bookmarks[i].ID != id {
			t.Errorf("Bookmarks[%d].ID = %q, want %q", i, res.Bookmarks[i].ID, id)
		}
	}
}

// Two unclassifiable URLs both classify to "" but must not relate to each
// other; matching on empty would relate every broken URL to every other one.
func TestFindRelatedEmptyClassificationNeverMatches(t *testing.T) {
	records := []Record{
		{ID: "1", Title: "Broken A", URL: "::::"},
		{ID: "2", Title: "Broken B", URL: "not a url"},
	}

	res := FindRelated(records, "also not a url")

	if res.CurrentDomain != "" {
		t.Fatalf("CurrentDomain = %q, want empty", res.CurrentDomain)
	}
	if len(res.Bookmarks) != 0 {
		t.Errorf("unparseable URLs were related: %+v", res.Bookmarks)
	}
}

func TestFindRelatedHostIdentityFallback(t *testing.T) {
	// Same full hostname but a main-domain heuristic miss would still
	// relate through the host identity check.
	records := []Record{
		{ID: "1", URL: "https://app.example.co.uk/a"},
	}
	res := FindRelated(records, "https://app.example.co.uk/b")
	if len(res.Bookmarks) != 1 {
		t.Errorf("same-host bookmarks not related: %+v", res.Bookmarks)
	}
}

func TestAllSameFolder(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		want    bool
	}{
		{"empty set", nil, true},
		{"single record", []Record{{ID: "1", ParentID: "a"}}, true},
		{"same parent", []Record{{ParentID: "a"}, {ParentID: "a"}}, true},
		{"different parents", []Record{{ParentID: "a"}, {ParentID: "b"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllSameFolder(tt.records); got != tt.want {
				t.Errorf("AllSameFolder() = %v, want %v", got, tt.want)
			}
		})
	}
}
