package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/bookmarklab/corral/internal/logger"
)

const (
	// aggregateLabel prefixes generated destination-folder titles.
	aggregateLabel = "Related bookmarks"

	// defaultFolderTitle is the fixed display title for the store's
	// default top-level container.
	defaultFolderTitle = "Bookmarks bar"

	// unknownFolderTitle is reported when an existing destination cannot
	// be read back from the store.
	unknownFolderTitle = "Selected folder"
)

// Aggregate moves the requested bookmarks into a single destination folder.
//
// Destination resolution takes exactly one path, strictest first: an
// explicit existing FolderID wins over CreateNewFolder, which wins over the
// store's default container. A new folder is created under ParentFolderID
// (default container when empty) and titled NewFolderName, or
// "Related bookmarks - <domain>" when unnamed.
//
// Moves run sequentially, in list order, and are best-effort: a failed move
// is logged and recorded in the result tally, and the rest of the batch
// still runs. Moving a bookmark already inside the destination is a store
// no-op. Only destination resolution itself fails the whole call.
func (e *Engine) Aggregate(ctx context.Context, req AggregateRequest) (*AggregateResult, error) {
	folderID, folderTitle, err := e.resolveDestination(ctx, req)
	if err != nil {
		return nil, err
	}

	res := &AggregateResult{FolderID: folderID, FolderTitle: folderTitle}
	for _, rec := range req.Bookmarks {
		if err := e.store.Move(ctx, rec.ID, folderID); err != nil {
			e.log.Warn("failed to move bookmark",
				logger.String("bookmark_id", rec.ID),
				logger.String("folder_id", folderID),
				logger.Error(err))
			res.Failed = append(res.Failed, MoveFailure{ID: rec.ID, Error: err.Error()})
			continue
		}
		res.Moved++
	}

	e.log.Info("aggregated bookmarks",
		logger.String("folder_id", folderID),
		logger.String("folder_title", folderTitle),
		logger.Int("moved", res.Moved),
		logger.Int("failed", len(res.Failed)))

	return res, nil
}

func (e *Engine) resolveDestination(ctx context.Context, req AggregateRequest) (id, title string, err error) {
	switch {
	case req.FolderID != "":
		title = unknownFolderTitle
		if n, err := e.store.Get(ctx, req.FolderID); err == nil && n.Title != "" {
			title = n.Title
		}
		return req.FolderID, title, nil

	case req.CreateNewFolder:
		parent := req.ParentFolderID
		if parent == "" {
			parent = e.store.DefaultFolderID()
		}
		title = strings.TrimSpace(req.NewFolderName)
		if title == "" {
			title = fmt.Sprintf("%s - %s", aggregateLabel, req.Domain)
		}
		folder, err := e.store.CreateFolder(ctx, parent, title)
		if err != nil {
			return "", "", fmt.Errorf("create destination folder: %w", err)
		}
		return folder.ID, folder.Title, nil

	default:
		return e.store.DefaultFolderID(), defaultFolderTitle, nil
	}
}
