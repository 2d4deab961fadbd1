package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookmarklab/corral/internal/httpserver/deps"
	"github.com/bookmarklab/corral/internal/logger"
	"github.com/bookmarklab/corral/internal/store"
)

type deleteResponse struct {
	Success bool `json:"success"`
}

// DeleteBookmark removes one bookmark by id.
func DeleteBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			writeFailure(w, http.StatusBadRequest, "missing bookmark id")
			return
		}

		if err := d.Engine.Delete(r.Context(), id); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, store.ErrNotFound) {
				status = http.StatusNotFound
			}
			d.Logger.Warn("delete failed",
				logger.String("bookmark_id", id),
				logger.Error(err))
			writeFailure(w, status, err.Error())
			return
		}

		d.Logger.Info("bookmark deleted", logger.String("bookmark_id", id))
		writeJSON(w, http.StatusOK, deleteResponse{Success: true})
	}
}
