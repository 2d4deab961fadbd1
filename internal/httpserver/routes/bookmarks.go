package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/bookmarklab/corral/internal/httpserver/deps"
	"github.com/bookmarklab/corral/internal/httpserver/handlers"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	r.Delete("/bookmarks/{id}", handlers.DeleteBookmark(d))
}
