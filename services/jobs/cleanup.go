package jobs

import (
	"time"

	"aarohan/logging"
	"aarohan/services"
	"aarohan/services/visitor"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CleanupSpec runs the cleanup at the top of every hour
const CleanupSpec = "0 * * * *"

// StartScheduler starts the background cleanup of expired sessions and idle visitors.
// The returned cron must be stopped on shutdown.
func StartScheduler(database *gorm.DB, visitors *visitor.Store, visitorIdle time.Duration) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(CleanupSpec, func() {
		RunCleanup(database, visitors, visitorIdle)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	logging.L().Info("[CRON] Cleanup scheduler started")
	return c, nil
}

// CleanupResult counts what one cleanup pass removed
type CleanupResult struct {
	Sessions int64
	Visitors int
}

// RunCleanup removes expired web sessions and prunes idle visitors, releasing their courtroom sessions
func RunCleanup(database *gorm.DB, visitors *visitor.Store, visitorIdle time.Duration) CleanupResult {
	var result CleanupResult

	n, err := services.CleanupExpiredSessions(database)
	if err != nil {
		logging.L().Errorw("[JOB] Error cleaning up expired sessions", "error", err)
	}
	result.Sessions = n

	if visitors != nil {
		result.Visitors = visitors.Prune(visitorIdle)
		if result.Visitors > 0 {
			logging.L().Infof("[JOB] Pruned %d idle visitors", result.Visitors)
		}
	}

	return result
}
