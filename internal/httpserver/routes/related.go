package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/bookmarklab/corral/internal/httpserver/deps"
	"github.com/bookmarklab/corral/internal/httpserver/handlers"
)

func init() { Register(registerRelated) }

func registerRelated(r chi.Router, d deps.Deps) {
	r.Get("/related", handlers.Related(d))
}
