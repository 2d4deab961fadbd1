package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a node id does not exist in the store.
var ErrNotFound = errors.New("node not found")

// Node is a single entry in the bookmark tree. A node with a URL is a leaf
// bookmark; a node without one is a folder. Nodes returned by a Store are
// value snapshots: mutating them never touches the store, and any structural
// mutation (create/move/remove) makes previously returned trees stale.
type Node struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	URL      string  `json:"url,omitempty"`
	ParentID string  `json:"parentId,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// IsFolder reports whether the node is a container.
func (n *Node) IsFolder() bool { return n.URL == "" }

// Store is the capability surface the engine consumes from a bookmark store.
//
// GetTree returns the top-level containers (the children of the synthetic
// store root), each with its full subtree attached. Ids are assigned by the
// store, never by callers.
type Store interface {
	GetTree(ctx context.Context) ([]*Node, error)
	GetSubtree(ctx context.Context, id string) (*Node, error)
	Get(ctx context.Context, id string) (*Node, error)
	CreateFolder(ctx context.Context, parentID, title string) (*Node, error)

	// Move re-parents a node. Moving a node into the folder it already
	// lives in is a no-op, not an error.
	Move(ctx context.Context, id, newParentID string) error
	Remove(ctx context.Context, id string) error

	// DefaultFolderID is the id of the store's default top-level container,
	// used as the fallback destination for aggregation.
	DefaultFolderID() string
}
