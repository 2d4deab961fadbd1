package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bookmarklab/corral/internal/domain"
	"github.com/bookmarklab/corral/internal/httpserver/deps"
	"github.com/bookmarklab/corral/internal/logger"
)

type aggregateResponse struct {
	Success     bool                 `json:"success"`
	FolderID    string               `json:"folderId"`
	FolderTitle string               `json:"folderTitle"`
	Moved       int                  `json:"moved"`
	Failed      []domain.MoveFailure `json:"failed,omitempty"`
}

// Aggregate moves the posted bookmark set into one destination folder.
// Individual move failures are reported in the failed tally; only
// destination resolution downgrades the whole call to a failure.
func Aggregate(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.AggregateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFailure(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		if len(req.Bookmarks) == 0 {
			writeFailure(w, http.StatusBadRequest, "no bookmarks to aggregate")
			return
		}

		res, err := d.Engine.Aggregate(r.Context(), req)
		if err != nil {
			d.Logger.Error("aggregation failed",
				logger.String("domain", req.Domain),
				logger.Error(err))
			writeFailure(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, aggregateResponse{
			Success:     true,
			FolderID:    res.FolderID,
			FolderTitle: res.FolderTitle,
			Moved:       res.Moved,
			Failed:      res.Failed,
		})
	}
}
