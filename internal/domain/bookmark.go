package domain

// Record is a flattened leaf entry of the bookmark tree.
type Record struct {
	// ID is the opaque identifier assigned by the store.
	ID string `json:"id"`

	// Title is the display string; may be empty.
	Title string `json:"title"`

	// URL is the absolute URL of the bookmark.
	URL string `json:"url"`

	// ParentID is the id of the immediate containing folder. It goes stale
	// the moment any move or delete happens elsewhere in the store, so
	// callers re-flatten after structural changes instead of patching it.
	ParentID string `json:"parentId"`

	// FullPath is the ancestor-folder trail joined by PathSeparator,
	// computed during flattening and never persisted.
	FullPath string `json:"fullPath"`

	// FromFolder and FolderID are only set on folder-scoped search results:
	// FromFolder carries the matched folder's title, FolderID its id.
	FromFolder string `json:"fromFolder,omitempty"`
	FolderID   string `json:"folderId,omitempty"`
}

// Folder is a container node of the bookmark tree.
type Folder struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Level    int    `json:"level"` // 0 for direct children of the store root
	ParentID string `json:"parentId"`
}

// RelationResult is the outcome of partitioning the tree against a
// reference URL. CurrentDomain always equals MainDomain(CurrentURL).
type RelationResult struct {
	CurrentURL    string   `json:"currentUrl"`
	CurrentDomain string   `json:"currentDomain"`
	Bookmarks     []Record `json:"bookmarks"`
}

// SearchOptions selects the fields a search keyword is matched against.
type SearchOptions struct {
	Title         bool `json:"title"`
	Domain        bool `json:"domain"`
	URLQuery      bool `json:"urlQuery"`
	Folder        bool `json:"folder"`
	CaseSensitive bool `json:"caseSensitive"`
}

// AnyScope reports whether at least one search scope is enabled. A search
// with no scopes matches nothing.
func (o SearchOptions) AnyScope() bool {
	return o.Title || o.Domain || o.URLQuery || o.Folder
}

// AggregateRequest asks for a set of bookmarks to be moved into a single
// destination folder. Destination resolution picks exactly one path:
// FolderID when set, otherwise a new folder when CreateNewFolder is true,
// otherwise the store's default container.
type AggregateRequest struct {
	Bookmarks       []Record `json:"bookmarks"`
	Domain          string   `json:"domain"`
	FolderID        string   `json:"folderId,omitempty"`
	CreateNewFolder bool     `json:"createNewFolder,omitempty"`
	NewFolderName   string   `json:"newFolderName,omitempty"`
	ParentFolderID  string   `json:"parentFolderId,omitempty"`
}

// MoveFailure records one bookmark that could not be relocated.
type MoveFailure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// AggregateResult reports the resolved destination and the per-item outcome
// of the move loop.
type AggregateResult struct {
	FolderID    string        `json:"folderId"`
	FolderTitle string        `json:"folderTitle"`
	Moved       int           `json:"moved"`
	Failed      []MoveFailure `json:"failed,omitempty"`
}

// AllSameFolder reports whether every record shares the first record's
// parent folder. Empty and single-element sets count as same-folder, which
// is what makes aggregation pointless for them.
func AllSameFolder(records []Record) bool {
	if len(records) <= 1 {
		return true
	}
	first := records[0].ParentID
	for _, r := range records[1:] {
		if r.ParentID != first {
			return false
		}
	}
	return true
}
