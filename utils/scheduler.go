package utils

import (
	"log"
	"time"

	"github.com/TrinhDucTiep/Knowledge-Sharing/store"

	"github.com/robfig/cron/v3"
)

// StartCleanupScheduler purges stale sessions and aged action-log rows every
// hour. Action logs only matter inside the rate-limit window; everything older
// than a day is dead weight.
func StartCleanupScheduler(stores *store.Stores) *cron.Cron {
	log.Println("[CLEANUP-SCHEDULER] Initializing cleanup scheduler...")

	c := cron.New()

	c.AddFunc("@hourly", func() {
		now := time.Now()
		if err := stores.Sessions.PurgeStale(now); err != nil {
			log.Printf("[CLEANUP-SCHEDULER] Error purging sessions: %v", err)
		}
		if err := stores.Actions.PurgeBefore(now.AddDate(0, 0, -1)); err != nil {
			log.Printf("[CLEANUP-SCHEDULER] Error purging action logs: %v", err)
		}
	})

	c.Start()
	log.Println("[CLEANUP-SCHEDULER] Cleanup scheduler started - runs hourly")
	return c
}
