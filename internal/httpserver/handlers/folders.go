package handlers

import (
	"net/http"

	"github.com/bookmarklab/corral/internal/domain"
	"github.com/bookmarklab/corral/internal/httpserver/deps"
	"github.com/bookmarklab/corral/internal/logger"
)

type foldersResponse struct {
	Success bool            `json:"success"`
	Folders []domain.Folder `json:"folders"`
}

// Folders lists every container folder, depth-first, with nesting levels.
// Reserved workspace folders and their subtrees are absent.
func Folders(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		folders, err := d.Engine.Folders(r.Context())
		if err != nil {
			d.Logger.Error("folder listing failed", logger.Error(err))
			writeFailure(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, foldersResponse{Success: true, Folders: folders})
	}
}
