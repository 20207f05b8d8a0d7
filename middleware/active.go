package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/steadysteps/steadysteps/models"
	"github.com/steadysteps/steadysteps/utils"
)

// ActiveDayRecorder counts one daily-active hit per authenticated user per
// calendar day. The per-user dedupe lives in redis; the counter row is an
// atomic upsert so concurrent first-hits cannot produce duplicate key errors.
func ActiveDayRecorder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 400 {
			return
		}

		v, ok := c.Get(ContextUserIDKey)
		if !ok {
			return
		}
		userID, ok := v.(uint)
		if !ok {
			return
		}

		today := time.Now().In(time.Local).Format("2006-01-02")
		if !utils.OncePerDay(fmt.Sprintf("active:user:%d", userID), today) {
			return
		}

		_ = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + 1"), "updated_at": time.Now()}),
		}).Create(&models.ActiveDay{Date: today, Count: 1}).Error
	}
}
