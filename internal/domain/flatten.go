package domain

import (
	"strings"

	"github.com/bookmarklab/corral/internal/store"
)

// PathSeparator joins ancestor titles in Record.FullPath.
const PathSeparator = " > "

// rootFolderTitle is synthesized for containers without a title.
const rootFolderTitle = "Root"

// FlattenBookmarks walks the tree depth-first in pre-order and returns every
// URL-bearing leaf as a Record, in insertion order. FullPath holds the
// ancestor titles joined by PathSeparator, excluding the first accumulated
// title (the top-level container the branch descends from). A childless,
// URL-less node yields nothing. Pure function of its input; safe to call
// repeatedly.
func FlattenBookmarks(nodes []*store.Node) []Record {
	out := make([]Record, 0, 16)
	flattenBookmarks(nodes, nil, &out)
	return out
}

func flattenBookmarks(nodes []*store.Node, path []string, out *[]Record) {
	for _, n := range nodes {
		if n.URL != "" {
			full := ""
			if len(path) > 1 {
				full = strings.Join(path[1:], PathSeparator)
			}
			*out = append(*out, Record{
				ID:       n.ID,
				Title:    n.Title,
				URL:      n.URL,
				ParentID: n.ParentID,
				FullPath: full,
			})
			continue
		}
		if len(n.Children) == 0 {
			continue
		}
		branch := path
		if n.Title != "" {
			// Fresh copy per branch so siblings never see each other's titles.
			branch = append(append(make([]string, 0, len(path)+1), path...), n.Title)
		}
		flattenBookmarks(n.Children, branch, out)
	}
}

// FlattenFolders returns every container of the tree, depth-first. A folder
// whose resolved title contains the reserved keyword (case-insensitive) is
// skipped together with its entire subtree at traversal time: neither the
// folder nor any descendant folder appears in the listing. Leaf bookmarks
// under such folders are unaffected; only FlattenBookmarks sees them.
func FlattenFolders(nodes []*store.Node, reserved string) []Folder {
	out := make([]Folder, 0, 8)
	flattenFolders(nodes, 0, strings.ToLower(reserved), &out)
	return out
}

func flattenFolders(nodes []*store.Node, level int, reserved string, out *[]Folder) {
	for _, n := range nodes {
		if n.URL != "" {
			continue
		}
		title := n.Title
		if title == "" {
			title = rootFolderTitle
		}
		if reserved != "" && strings.Contains(strings.ToLower(title), reserved) {
			continue
		}
		*out = append(*out, Folder{ID: n.ID, Title: title, Level: level, ParentID: n.ParentID})
		flattenFolders(n.Children, level+1, reserved, out)
	}
}
