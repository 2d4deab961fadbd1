package deps

import (
	"time"

	"github.com/bookmarklab/corral/internal/domain"
	"github.com/bookmarklab/corral/internal/logger"
	"github.com/bookmarklab/corral/internal/store"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	Store  store.Store    // bookmark tree backend
	Engine *domain.Engine // relation/search/aggregation engine

	AllowedHosts []string // Host headers allowed on admin endpoints
	AllowedCIDRS []string // IPs allowed on admin endpoints
	TrustProxy   bool     // true if running behind a trusted reverse proxy

	ReloadTrigger chan struct{} // manual seed re-import trigger (nil when no seed file)

	RateLimitBurst  int
	RateLimitPerMin int
}
