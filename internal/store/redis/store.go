package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/bookmarklab/corral/internal/store"
)

// flatNode is the JSON shape persisted per node. Children are kept in a
// separate ordered list so moves never rewrite siblings.
type flatNode struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url,omitempty"`
	ParentID string `json:"parentId,omitempty"`
}

// Store handles Redis operations for the bookmark tree
type Store struct {
	client *redis.Client

	mu        sync.RWMutex
	defaultID string
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) getFlat(ctx context.Context, id string) (*flatNode, error) {
	data, err := s.client.Get(ctx, NodeKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get node %s: %w", id, err)
	}

	var n flatNode
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("failed to unmarshal node %s: %w", id, err)
	}
	return &n, nil
}

func (s *Store) setFlat(ctx context.Context, n *flatNode) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal node %s: %w", n.ID, err)
	}
	if err := s.client.Set(ctx, NodeKey(n.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save node %s: %w", n.ID, err)
	}
	return nil
}

func (s *Store) childIDs(ctx context.Context, id string) ([]string, error) {
	ids, err := s.client.LRange(ctx, ChildrenKey(id), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get children of %s: %w", id, err)
	}
	return ids, nil
}

// buildSubtree loads a node and recursively attaches its children in
// stored order.
func (s *Store) buildSubtree(ctx context.Context, id string) (*store.Node, error) {
	flat, err := s.getFlat(ctx, id)
	if err != nil {
		return nil, err
	}

	n := &store.Node{
		ID:       flat.ID,
		Title:    flat.Title,
		URL:      flat.URL,
		ParentID: flat.ParentID,
	}
	if !n.IsFolder() {
		return n, nil
	}

	ids, err := s.childIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, childID := range ids {
		child, err := s.buildSubtree(ctx, childID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Dangling child reference, skip it.
				continue
			}
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

// GetTree returns the top-level containers with their full subtrees.
func (s *Store) GetTree(ctx context.Context) ([]*store.Node, error) {
	ids, err := s.client.LRange(ctx, RootsKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get roots: %w", err)
	}

	roots := make([]*store.Node, 0, len(ids))
	for _, id := range ids {
		root, err := s.buildSubtree(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}
		roots = append(roots, root)
	}
	return roots, nil
}

// GetSubtree returns the node with the given id and its full subtree.
func (s *Store) GetSubtree(ctx context.Context, id string) (*store.Node, error) {
	return s.buildSubtree(ctx, id)
}

// Get returns a single node without its children.
func (s *Store) Get(ctx context.Context, id string) (*store.Node, error) {
	flat, err := s.getFlat(ctx, id)
	if err != nil {
		return nil, err
	}
	return &store.Node{
		ID:       flat.ID,
		Title:    flat.Title,
		URL:      flat.URL,
		ParentID: flat.ParentID,
	}, nil
}

// CreateFolder creates an empty folder under parentID and returns it.
func (s *Store) CreateFolder(ctx context.Context, parentID, title string) (*store.Node, error) {
	parent, err := s.getFlat(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if parent.URL != "" {
		return nil, fmt.Errorf("parent %s is not a folder", parentID)
	}

	n := &flatNode{
		ID:       uuid.NewString(),
		Title:    title,
		ParentID: parentID,
	}
	if err := s.setFlat(ctx, n); err != nil {
		return nil, err
	}
	if err := s.client.RPush(ctx, ChildrenKey(parentID), n.ID).Err(); err != nil {
		return nil, fmt.Errorf("failed to attach folder %s: %w", n.ID, err)
	}

	return &store.Node{ID: n.ID, Title: n.Title, ParentID: n.ParentID}, nil
}

// Move re-parents a node. Moving a node into the folder it already lives
// in is a no-op.
func (s *Store) Move(ctx context.Context, id, newParentID string) error {
	n, err := s.getFlat(ctx, id)
	if err != nil {
		return err
	}
	if n.ParentID == newParentID {
		return nil
	}

	parent, err := s.getFlat(ctx, newParentID)
	if err != nil {
		return err
	}
	if parent.URL != "" {
		return fmt.Errorf("destination %s is not a folder", newParentID)
	}

	oldParent := n.ParentID
	n.ParentID = newParentID
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal node %s: %w", id, err)
	}

	pipe := s.client.TxPipeline()
	if oldParent == "" {
		pipe.LRem(ctx, RootsKey(), 0, id)
	} else {
		pipe.LRem(ctx, ChildrenKey(oldParent), 0, id)
	}
	pipe.RPush(ctx, ChildrenKey(newParentID), id)
	pipe.Set(ctx, NodeKey(id), data, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to move node %s: %w", id, err)
	}
	return nil
}

// Remove deletes a node and, when it is a folder, its entire subtree.
func (s *Store) Remove(ctx context.Context, id string) error {
	n, err := s.getFlat(ctx, id)
	if err != nil {
		return err
	}

	ids, err := s.collectSubtreeIDs(ctx, id)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	if n.ParentID == "" {
		pipe.LRem(ctx, RootsKey(), 0, id)
	} else {
		pipe.LRem(ctx, ChildrenKey(n.ParentID), 0, id)
	}
	for _, sid := range ids {
		pipe.Del(ctx, NodeKey(sid))
		pipe.Del(ctx, ChildrenKey(sid))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove node %s: %w", id, err)
	}
	return nil
}

// collectSubtreeIDs walks the subtree rooted at id and returns every node id
// in it, the root included.
func (s *Store) collectSubtreeIDs(ctx context.Context, id string) ([]string, error) {
	ids := []string{id}
	children, err := s.childIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, childID := range children {
		sub, err := s.collectSubtreeIDs(ctx, childID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, sub...)
	}
	return ids, nil
}

// ReplaceTree atomically swaps the whole tree for the given roots. Input
// nodes without an id get a fresh one. The first root becomes the default
// container.
func (s *Store) ReplaceTree(ctx context.Context, roots []*store.Node) error {
	oldRoots, err := s.client.LRange(ctx, RootsKey(), 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get roots: %w", err)
	}

	var stale []string
	for _, id := range oldRoots {
		ids, err := s.collectSubtreeIDs(ctx, id)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		stale = append(stale, ids...)
	}

	pipe := s.client.TxPipeline()
	for _, id := range stale {
		pipe.Del(ctx, NodeKey(id))
		pipe.Del(ctx, ChildrenKey(id))
	}
	pipe.Del(ctx, RootsKey())

	var defaultID string
	for _, root := range roots {
		id, err := writeSubtree(ctx, pipe, root, "")
		if err != nil {
			return err
		}
		pipe.RPush(ctx, RootsKey(), id)
		if defaultID == "" {
			defaultID = id
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to replace tree: %w", err)
	}

	s.mu.Lock()
	s.defaultID = defaultID
	s.mu.Unlock()
	return nil
}

// writeSubtree queues the writes for a subtree and returns the fresh id
// assigned to its root.
func writeSubtree(ctx context.Context, pipe redis.Pipeliner, n *store.Node, parentID string) (string, error) {
	id := n.ID
	if id == "" {
		id = uuid.NewString()
	}
	flat := &flatNode{
		ID:       id,
		Title:    n.Title,
		URL:      n.URL,
		ParentID: parentID,
	}
	data, err := json.Marshal(flat)
	if err != nil {
		return "", fmt.Errorf("failed to marshal node %q: %w", n.Title, err)
	}
	pipe.Set(ctx, NodeKey(flat.ID), data, 0)

	for _, child := range n.Children {
		childID, err := writeSubtree(ctx, pipe, child, flat.ID)
		if err != nil {
			return "", err
		}
		pipe.RPush(ctx, ChildrenKey(flat.ID), childID)
	}
	return flat.ID, nil
}

// DefaultFolderID is the id of the first top-level container. It is cached
// after the first lookup; ReplaceTree refreshes it.
func (s *Store) DefaultFolderID() string {
	s.mu.RLock()
	id := s.defaultID
	s.mu.RUnlock()
	if id != "" {
		return id
	}

	id, err := s.client.LIndex(context.Background(), RootsKey(), 0).Result()
	if err != nil {
		return ""
	}

	s.mu.Lock()
	s.defaultID = id
	s.mu.Unlock()
	return id
}
