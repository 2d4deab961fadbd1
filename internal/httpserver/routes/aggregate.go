package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/bookmarklab/corral/internal/httpserver/deps"
	"github.com/bookmarklab/corral/internal/httpserver/handlers"
	"github.com/bookmarklab/corral/internal/httpserver/mw"
)

func init() { Register(registerAggregate) }

func registerAggregate(r chi.Router, d deps.Deps) {
	r.With(mw.RateLimit(mw.RateLimitConfig{
		Burst:             d.RateLimitBurst,
		RefillPerIPPerMin: d.RateLimitPerMin,
		TrustProxy:        d.TrustProxy,
	})).Post("/aggregate", handlers.Aggregate(d))
}
