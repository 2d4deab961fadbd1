package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/bookmarklab/corral/internal/logger"
	"github.com/bookmarklab/corral/internal/store"
)

// failingMoveStore wraps a store and fails Move for one specific id.
type failingMoveStore struct {
	store.Store
	failID string
}

func (s *failingMoveStore) Move(ctx context.Context, id, newParentID string) error {
	if id == s.failID {
		return errors.New("simulated move failure")
	}
	return s.Store.Move(ctx, id, newParentID)
}

func recordsFor(ids ...string) []Record {
	out := make([]Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, Record{ID: id})
	}
	return out
}

func TestAggregateDestinationPriority(t *testing.T) {
	ctx := context.Background()
	e, st := newTestEngine(t)

	// An explicit existing folder wins even when createNewFolder is set.
	res, err := e.Aggregate(ctx, AggregateRequest{
		Bookmarks:       recordsFor("b1"),
		Domain:          "example.com",
		FolderID:        "dev",
		CreateNewFolder: true,
		NewFolderName:   "should not exist",
	})
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if res.FolderID != "dev" || res.FolderTitle != "Dev" {
		t.Errorf("destination = (%q, %q), want (dev, Dev)", res.FolderID, res.FolderTitle)
	}

	tree, err := st.GetTree(ctx)
	if err != nil {
		t.Fatalf("GetTree failed: %v", err)
	}
	for _, f := range FlattenFolders(tree, "") {
		if f.Title == "should not exist" {
			t.Error("a new folder was created despite an explicit folderId")
		}
	}

	moved, err := st.Get(ctx, "b1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if moved.ParentID != "dev" {
		t.Errorf("bookmark parent = %q, want dev", moved.ParentID)
	}
}

func TestAggregateCreatesNewFolder(t *testing.T) {
	ctx := context.Background()
	e, st := newTestEngine(t)

	res, err := e.Aggregate(ctx, AggregateRequest{
		Bookmarks:       recordsFor("b1", "b2"),
		Domain:          "example.com",
		CreateNewFolder: true,
	})
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if res.FolderTitle != "Related bookmarks - example.com" {
		t.Errorf("generated title = %q", res.FolderTitle)
	}
	if res.Moved != 2 || len(res.Failed) != 0 {
		t.Errorf("moved=%d failed=%d, want 2/0", res.Moved, len(res.Failed))
	}

	folder, err := st.Get(ctx, res.FolderID)
	if err != nil {
		t.Fatalf("created folder not in store: %v", err)
	}
	if folder.ParentID != st.DefaultFolderID() {
		t.Errorf("new folder parent = %q, want default container %q",
			folder.ParentID, st.DefaultFolderID())
	}
}

func TestAggregateDefaultsToDefaultContainer(t *testing.T) {
	ctx := context.Background()
	e, st := newTestEngine(t)

	res, err := e.Aggregate(ctx, AggregateRequest{
		Bookmarks: recordsFor("b3"),
		Domain:    "example.com",
	})
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if res.FolderID != st.DefaultFolderID() {
		t.Errorf("destination = %q, want default container %q", res.FolderID, st.DefaultFolderID())
	}
	if res.FolderTitle != "Bookmarks bar" {
		t.Errorf("default container title = %q", res.FolderTitle)
	}
}

// One failed move must not abort the batch: the remaining items are still
// relocated and the failure shows up in the tally, not as an overall error.
func TestAggregateBestEffort(t *testing.T) {
	ctx := context.Background()
	_, st := newTestEngine(t)
	e := NewEngine(&failingMoveStore{Store: st, failID: "b2"}, logger.New("error", false), "")

	res, err := e.Aggregate(ctx, AggregateRequest{
		Bookmarks: recordsFor("b1", "b2", "b3"),
		Domain:    "example.com",
		FolderID:  "dev",
	})
	if err != nil {
		t.Fatalf("Aggregate failed outright: %v", err)
	}
	if res.Moved != 2 {
		t.Errorf("moved = %d, want 2", res.Moved)
	}
	if len(res.Failed) != 1 || res.Failed[0].ID != "b2" {
		t.Errorf("failed tally = %+v, want one entry for b2", res.Failed)
	}

	for _, id := range []string{"b1", "b3"} {
		n, err := st.Get(ctx, id)
		if err != nil {
			t.Fatalf("Get %s failed: %v", id, err)
		}
		if n.ParentID != "dev" {
			t.Errorf("bookmark %s parent = %q, want dev", id, n.ParentID)
		}
	}
}

// Moving a bookmark already inside the destination is a no-op, never an
// error or a corruption.
func TestAggregateIdempotentForResidentBookmarks(t *testing.T) {
	ctx := context.Background()
	e, st := newTestEngine(t)

	// b3 already lives in dev.
	res, err := e.Aggregate(ctx, AggregateRequest{
		Bookmarks: recordsFor("b3", "b1"),
		Domain:    "example.com",
		FolderID:  "dev",
	})
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if res.Moved != 2 || len(res.Failed) != 0 {
		t.Errorf("moved=%d failed=%d, want 2/0", res.Moved, len(res.Failed))
	}

	sub, err := st.GetSubtree(ctx, "dev")
	if err != nil {
		t.Fatalf("GetSubtree failed: %v", err)
	}
	count := 0
	for _, c := range sub.Children {
		if c.ID == "b3" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("b3 appears %d times in destination, want exactly once", count)
	}
}

func TestAggregateMissingDestinationTitleFallsBack(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)

	res, err := e.Aggregate(ctx, AggregateRequest{
		Bookmarks: recordsFor("b1"),
		Domain:    "example.com",
		FolderID:  "nope",
	})
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if res.FolderTitle != "Selected folder" {
		t.Errorf("fallback title = %q", res.FolderTitle)
	}
	// The move itself fails against the missing folder, best-effort style.
	if len(res.Failed) != 1 {
		t.Errorf("failed tally = %+v, want one entry", res.Failed)
	}
}
