package domain

import (
	"context"
	"fmt"

	"github.com/bookmarklab/corral/internal/logger"
	"github.com/bookmarklab/corral/internal/store"
)

// DefaultReservedFolder is the workspace-folder keyword excluded from folder
// listings and folder-scoped search.
const DefaultReservedFolder = "workspaces"

// Engine runs relation, search and aggregation over a bookmark store. It is
// stateless between calls: every operation re-reads the tree it needs, so
// no record held by the engine can go stale across store mutations.
type Engine struct {
	store    store.Store
	log      logger.Logger
	reserved string
}

// NewEngine wires an engine to a store. reservedFolder overrides the
// keyword for excluded workspace folders; empty keeps the default.
func NewEngine(st store.Store, log logger.Logger, reservedFolder string) *Engine {
	if reservedFolder == "" {
		reservedFolder = DefaultReservedFolder
	}
	return &Engine{store: st, log: log, reserved: reservedFolder}
}

// Related returns the bookmarks pointing at the same logical destination as
// refURL, in flattening order.
func (e *Engine) Related(ctx context.Context, refURL string) (*RelationResult, error) {
	tree, err := e.store.GetTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("read bookmark tree: %w", err)
	}
	res := FindRelated(FlattenBookmarks(tree), refURL)
	return &res, nil
}

// Folders lists every container except reserved workspace folders and their
// subtrees.
func (e *Engine) Folders(ctx context.Context) ([]Folder, error) {
	tree, err := e.store.GetTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("read bookmark tree: %w", err)
	}
	return FlattenFolders(tree, e.reserved), nil
}

// Delete removes a single bookmark from the store.
func (e *Engine) Delete(ctx context.Context, id string) error {
	if err := e.store.Remove(ctx, id); err != nil {
		return fmt.Errorf("remove bookmark %q: %w", id, err)
	}
	return nil
}
