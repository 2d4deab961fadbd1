package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bookmarklab/corral/internal/domain"
	"github.com/bookmarklab/corral/internal/httpserver/deps"
	"github.com/bookmarklab/corral/internal/logger"
)

type searchResponse struct {
	Success   bool            `json:"success"`
	Bookmarks []domain.Record `json:"bookmarks"`
}

// Search runs the multi-criterion bookmark search. Scope flags arrive as
// boolean query parameters (title, domain, url_query, folder,
// case_sensitive); at least one scope must be enabled.
func Search(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keyword := strings.TrimSpace(r.URL.Query().Get("q"))
		if keyword == "" {
			writeFailure(w, http.StatusBadRequest, "search keyword is required")
			return
		}

		opts := domain.SearchOptions{
			Title:         boolParam(r, "title"),
			Domain:        boolParam(r, "domain"),
			URLQuery:      boolParam(r, "url_query"),
			Folder:        boolParam(r, "folder"),
			CaseSensitive: boolParam(r, "case_sensitive"),
		}
		if !opts.AnyScope() {
			writeFailure(w, http.StatusBadRequest, "select at least one search scope")
			return
		}

		bookmarks, err := d.Engine.Search(r.Context(), keyword, opts)
		if err != nil {
			d.Logger.Error("search failed",
				logger.String("keyword", keyword),
				logger.Error(err))
			writeFailure(w, http.StatusInternalServerError, err.Error())
			return
		}

		d.Logger.Info("search",
			logger.String("keyword", keyword),
			logger.Bool("case_sensitive", opts.CaseSensitive),
			logger.Int("matches", len(bookmarks)))

		writeJSON(w, http.StatusOK, searchResponse{Success: true, Bookmarks: bookmarks})
	}
}

// boolParam reads a boolean query parameter; absent or malformed means false.
func boolParam(r *http.Request, name string) bool {
	v := r.URL.Query().Get(name)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}
