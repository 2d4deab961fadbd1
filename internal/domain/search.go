package domain

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bookmarklab/corral/internal/logger"
	"github.com/bookmarklab/corral/internal/store"
)

// Search runs the multi-criterion matcher over the whole tree. An empty
// trimmed keyword or an all-false scope set matches nothing.
//
// Matching happens in two phases. The folder phase (when opts.Folder is set)
// walks the folder listing, matches folder titles by substring, and pulls in
// every leaf bookmark beneath a matched folder, tagged with FromFolder and
// the folder's id. The field phase then tests the remaining bookmarks
// against title, hostname and URL query in that order, short-circuiting on
// the first hit. Folder-phase results always come first and are never
// re-evaluated or duplicated by the field phase. No relevance ranking is
// applied.
func (e *Engine) Search(ctx context.Context, keyword string, opts SearchOptions) ([]Record, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" || !opts.AnyScope() {
		return []Record{}, nil
	}

	// Lower the keyword exactly once; compared fields are lowered per test.
	needle := keyword
	if !opts.CaseSensitive {
		needle = strings.ToLower(needle)
	}

	tree, err := e.store.GetTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("read bookmark tree: %w", err)
	}

	results := make([]Record, 0, 16)
	seen := make(map[string]struct{})

	if opts.Folder {
		for _, folder := range FlattenFolders(tree, e.reserved) {
			if !containsFold(folder.Title, needle, opts.CaseSensitive) {
				continue
			}
			// One subtree fetch per matched folder, sequentially.
			sub, err := e.store.GetSubtree(ctx, folder.ID)
			if err != nil {
				e.log.Warn("skipping unreadable folder subtree",
					logger.String("folder_id", folder.ID),
					logger.Error(err))
				continue
			}
			for _, rec := range FlattenBookmarks([]*store.Node{sub}) {
				if _, dup := seen[rec.ID]; dup {
					continue
				}
				rec.FromFolder = folder.Title
				rec.FolderID = folder.ID
				seen[rec.ID] = struct{}{}
				results = append(results, rec)
			}
		}
	}

	for _, rec := range FlattenBookmarks(tree) {
		if _, dup := seen[rec.ID]; dup {
			continue
		}
		if matchFields(rec, needle, opts) {
			seen[rec.ID] = struct{}{}
			results = append(results, rec)
		}
	}

	return results, nil
}

// matchFields tests one bookmark against the enabled field scopes, in fixed
// precedence: title, then hostname, then query string (with its leading "?").
func matchFields(rec Record, needle string, opts SearchOptions) bool {
	if opts.Title && containsFold(rec.Title, needle, opts.CaseSensitive) {
		return true
	}
	if !opts.Domain && !opts.URLQuery {
		return false
	}
	u, err := url.Parse(rec.URL)
	if err != nil {
		return false
	}
	if opts.Domain && containsFold(u.Hostname(), needle, opts.CaseSensitive) {
		return true
	}
	if opts.URLQuery && u.RawQuery != "" && containsFold("?"+u.RawQuery, needle, opts.CaseSensitive) {
		return true
	}
	return false
}

// containsFold is substring containment under the search case policy. The
// needle is expected to be pre-lowered when caseSensitive is false.
func containsFold(haystack, needle string, caseSensitive bool) bool {
	if !caseSensitive {
		haystack = strings.ToLower(haystack)
	}
	return strings.Contains(haystack, needle)
}
