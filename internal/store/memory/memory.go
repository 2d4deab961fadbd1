package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/bookmarklab/corral/internal/store"
)

// Store is an in-memory bookmark tree. All reads hand out deep copies so
// callers can never reach into live nodes; all mutations are sequenced
// behind a single mutex.
type Store struct {
	mu        sync.RWMutex
	roots     []*store.Node
	byID      map[string]*store.Node
	defaultID string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{byID: make(map[string]*store.Node)}
}

// ReplaceTree swaps the whole tree for the given roots. Nodes without an id
// get a generated one, and parent ids are rewritten to match the actual
// structure. The first root becomes the default container.
func (s *Store) ReplaceTree(ctx context.Context, roots []*store.Node) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID = make(map[string]*store.Node)
	s.roots = cloneNodes(roots)
	for _, r := range s.roots {
		s.indexLocked(r, "")
	}
	s.defaultID = ""
	if len(s.roots) > 0 {
		s.defaultID = s.roots[0].ID
	}
	return nil
}

func (s *Store) indexLocked(n *store.Node, parentID string) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	n.ParentID = parentID
	s.byID[n.ID] = n
	for _, c := range n.Children {
		s.indexLocked(c, n.ID)
	}
}

// GetTree returns a snapshot of the top-level containers with subtrees.
func (s *Store) GetTree(ctx context.Context) ([]*store.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneNodes(s.roots), nil
}

// GetSubtree returns a snapshot of the node with the given id and everything
// beneath it.
func (s *Store) GetSubtree(ctx context.Context, id string) (*store.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("get subtree %q: %w", id, store.ErrNotFound)
	}
	return cloneNode(n), nil
}

// Get returns a snapshot of a single node without its children.
func (s *Store) Get(ctx context.Context, id string) (*store.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("get %q: %w", id, store.ErrNotFound)
	}
	c := *n
	c.Children = nil
	return &c, nil
}

// CreateFolder creates an empty folder under parentID and returns it.
func (s *Store) CreateFolder(ctx context.Context, parentID, title string) (*store.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	parent, ok := s.byID[parentID]
	if !ok {
		return nil, fmt.Errorf("create folder under %q: %w", parentID, store.ErrNotFound)
	}
	if !parent.IsFolder() {
		return nil, fmt.Errorf("create folder: parent %q is not a folder", parentID)
	}
	n := &store.Node{ID: uuid.NewString(), Title: title, ParentID: parentID}
	parent.Children = append(parent.Children, n)
	s.byID[n.ID] = n
	c := *n
	return &c, nil
}

// Move re-parents a node, appending it to the destination's children.
// Moving into the current parent is a no-op.
func (s *Store) Move(ctx context.Context, id, newParentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("move %q: %w", id, store.ErrNotFound)
	}
	if n.ParentID == newParentID {
		return nil
	}
	dest, ok := s.byID[newParentID]
	if !ok {
		return fmt.Errorf("move %q to %q: %w", id, newParentID, store.ErrNotFound)
	}
	if !dest.IsFolder() {
		return fmt.Errorf("move %q: destination %q is not a folder", id, newParentID)
	}
	s.detachLocked(n)
	n.ParentID = newParentID
	dest.Children = append(dest.Children, n)
	return nil
}

// Remove deletes a node and, for folders, its whole subtree.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("remove %q: %w", id, store.ErrNotFound)
	}
	s.detachLocked(n)
	s.dropLocked(n)
	return nil
}

// DefaultFolderID returns the id of the first root container, or "" for an
// empty store.
func (s *Store) DefaultFolderID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaultID
}

func (s *Store) detachLocked(n *store.Node) {
	if n.ParentID == "" {
		s.roots = removeByID(s.roots, n.ID)
		return
	}
	if p, ok := s.byID[n.ParentID]; ok {
		p.Children = removeByID(p.Children, n.ID)
	}
}

func (s *Store) dropLocked(n *store.Node) {
	delete(s.byID, n.ID)
	for _, c := range n.Children {
		s.dropLocked(c)
	}
}

func removeByID(nodes []*store.Node, id string) []*store.Node {
	out := nodes[:0]
	for _, n := range nodes {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}

func cloneNode(n *store.Node) *store.Node {
	c := *n
	c.Children = cloneNodes(n.Children)
	return &c
}

func cloneNodes(nodes []*store.Node) []*store.Node {
	if nodes == nil {
		return nil
	}
	out := make([]*store.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, cloneNode(n))
	}
	return out
}
