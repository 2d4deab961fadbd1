package handlers

import (
	"net/http"
	"strings"

	"github.com/bookmarklab/corral/internal/domain"
	"github.com/bookmarklab/corral/internal/httpserver/deps"
	"github.com/bookmarklab/corral/internal/logger"
)

type relatedResponse struct {
	Success       bool            `json:"success"`
	CurrentURL    string          `json:"currentUrl"`
	CurrentDomain string          `json:"currentDomain"`
	Bookmarks     []domain.Record `json:"bookmarks"`
}

// Related returns every bookmark pointing at the same logical destination
// as the url query parameter.
func Related(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawURL := strings.TrimSpace(r.URL.Query().Get("url"))
		if rawURL == "" {
			writeFailure(w, http.StatusBadRequest, "missing url parameter")
			return
		}

		res, err := d.Engine.Related(r.Context(), rawURL)
		if err != nil {
			d.Logger.Error("related lookup failed",
				logger.String("url", rawURL),
				logger.Error(err))
			writeFailure(w, http.StatusInternalServerError, err.Error())
			return
		}

		d.Logger.Info("related lookup",
			logger.String("domain", res.CurrentDomain),
			logger.Int("matches", len(res.Bookmarks)))

		writeJSON(w, http.StatusOK, relatedResponse{
			Success:       true,
			CurrentURL:    res.CurrentURL,
			CurrentDomain: res.CurrentDomain,
			Bookmarks:     res.Bookmarks,
		})
	}
}
