package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/bookmarklab/corral/internal/store"
)

func seeded(t *testing.T) *Store {
	t.Helper()
	s := New()
	err := s.ReplaceTree(context.Background(), []*store.Node{
		{ID: "bar", Title: "Bookmarks bar", Children: []*store.Node{
			{ID: "b1", Title: "One", URL: "https://one.example.com/"},
			{ID: "dev", Title: "Dev", Children: []*store.Node{
				{ID: "b2", Title: "Two", URL: "https://two.example.com/"},
			}},
		}},
	})
	if err != nil {
		t.Fatalf("ReplaceTree failed: %v", err)
	}
	return s
}

func TestReplaceTreeRewritesParents(t *testing.T) {
	s := seeded(t)

	n, err := s.Get(context.Background(), "b2")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if n.ParentID != "dev" {
		t.Errorf("parent = %q, want dev", n.ParentID)
	}
	if s.DefaultFolderID() != "bar" {
		t.Errorf("default folder = %q, want bar", s.DefaultFolderID())
	}
}

// Trees handed out are snapshots: mutating them must not leak into the store.
func TestGetTreeReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	tree, err := s.GetTree(ctx)
	if err != nil {
		t.Fatalf("GetTree failed: %v", err)
	}
	tree[0].Title = "mutated"
	tree[0].Children = nil

	again, err := s.GetTree(ctx)
	if err != nil {
		t.Fatalf("GetTree failed: %v", err)
	}
	if again[0].Title != "Bookmarks bar" || len(again[0].Children) == 0 {
		t.Error("snapshot mutation leaked into the store")
	}
}

func TestCreateMoveRemove(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	folder, err := s.CreateFolder(ctx, "bar", "New")
	if err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}
	if folder.ID == "" || folder.ParentID != "bar" {
		t.Fatalf("unexpected folder %+v", folder)
	}

	if err := s.Move(ctx, "b2", folder.ID); err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	moved, _ := s.Get(ctx, "b2")
	if moved.ParentID != folder.ID {
		t.Errorf("parent after move = %q, want %q", moved.ParentID, folder.ID)
	}

	// Moving again into the same folder is a no-op.
	if err := s.Move(ctx, "b2", folder.ID); err != nil {
		t.Errorf("repeated move errored: %v", err)
	}

	if err := s.Remove(ctx, "b2"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := s.Get(ctx, "b2"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get after remove = %v, want ErrNotFound", err)
	}
}

func TestRemoveFolderDropsSubtree(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	if err := s.Remove(ctx, "dev"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := s.Get(ctx, "b2"); !errors.Is(err, store.ErrNotFound) {
		t.Error("descendant survived folder removal")
	}
}

func TestMoveRejectsLeafDestination(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	if err := s.Move(ctx, "b2", "b1"); err == nil {
		t.Error("moving into a leaf bookmark should fail")
	}
}

func TestUnknownIDs(t *testing.T) {
	ctx := context.Background()
	s := seeded(t)

	if _, err := s.Get(ctx, "nope"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get unknown = %v, want ErrNotFound", err)
	}
	if _, err := s.GetSubtree(ctx, "nope"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetSubtree unknown = %v, want ErrNotFound", err)
	}
	if err := s.Move(ctx, "nope", "bar"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Move unknown = %v, want ErrNotFound", err)
	}
	if _, err := s.CreateFolder(ctx, "nope", "x"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("CreateFolder under unknown = %v, want ErrNotFound", err)
	}
}
