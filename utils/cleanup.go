package utils

import (
	"time"

	"github.com/steadysteps/steadysteps/config"
	"github.com/steadysteps/steadysteps/models"
)

// StartInviteCleaner launches a background goroutine that periodically deletes
// expired pending buddy invites. It is best-effort and logs failures.
func StartInviteCleaner(interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	go func() {
		for {
			// Sleep first to avoid racing immediately at startup
			time.Sleep(interval)
			db := config.DB()
			if db == nil {
				continue
			}
			res := db.Where("status = ? AND expires_at <= ?", models.BuddyPending, time.Now()).
				Delete(&models.Buddy{})
			if res.Error != nil {
				Sugar.Warnf("invite cleaner delete failed: %v", res.Error)
				continue
			}
			if res.RowsAffected > 0 {
				Sugar.Infof("invite cleaner removed %d expired invites", res.RowsAffected)
			}
		}
	}()
}
