package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/moscowmix/sitesync/internal/engine"
	"github.com/moscowmix/sitesync/internal/logger"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Store          *engine.Store // snapshot engine, the one per process
	RedisClient    *redis.Client // Redis client connection, nil in some tests
	RefreshTrigger chan struct{} // channel to trigger a manual reconciliation
}
