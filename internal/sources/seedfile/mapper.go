package seedfile

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/bookmarklab/corral/internal/store"
)

// Mapper converts a seed config into store nodes
type Mapper struct{}

// NewMapper creates a new seed mapper
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapTree converts the seed config into top-level container nodes ready for
// a tree import. Entries with neither title nor href are dropped; a bookmark
// entry's children are ignored.
func (m *Mapper) MapTree(config *Config) ([]*store.Node, error) {
	if config == nil || len(config.Folders) == 0 {
		return nil, fmt.Errorf("no folders found in seed config")
	}

	roots := make([]*store.Node, 0, len(config.Folders))
	for _, entry := range config.Folders {
		if entry.Href != "" {
			return nil, fmt.Errorf("top-level entry %q is a bookmark, expected a folder", entry.Title)
		}
		roots = append(roots, mapEntry(entry, ""))
	}
	return roots, nil
}

func mapEntry(e Entry, path string) *store.Node {
	n := &store.Node{
		ID:    generateNodeID(path, e.Title, e.Href),
		Title: e.Title,
		URL:   e.Href,
	}
	if e.Href != "" {
		return n
	}

	childPath := path + "/" + e.Title
	for _, child := range e.Children {
		if child.Title == "" && child.Href == "" {
			continue
		}
		n.Children = append(n.Children, mapEntry(child, childPath))
	}
	return n
}

// generateNodeID creates a stable ID from an entry's position and content
// using a SHA-256 hash, so re-imports of an unchanged seed file keep the
// same ids.
func generateNodeID(path, title, href string) string {
	hash := sha256.Sum256([]byte(path + "\x00" + title + "\x00" + href))
	return hex.EncodeToString(hash[:])[:16]
}
