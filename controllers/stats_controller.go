package controllers

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/steadysteps/steadysteps/models"
	"github.com/steadysteps/steadysteps/utils"
)

// StatsController exposes service-wide aggregates for the public landing page.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

const statsCacheKey = "cache:stats:community"

// GetStats returns community-level counters. Results are cached briefly since
// the landing page hits this unauthenticated.
func (s *StatsController) GetStats(ctx *gin.Context) {
	if b, ok := utils.CacheGetBytes(statsCacheKey); ok {
		var cached gin.H
		if err := json.Unmarshal(b, &cached); err == nil {
			utils.Success(ctx, cached)
			return
		}
	}

	var userCount int64
	var checkinCount int64
	var badgeCount int64
	var dailyActive int64

	if err := s.db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		// Fallback to 0 instead of failing the whole endpoint
		userCount = 0
	}

	if err := s.db.Model(&models.Checkin{}).Where("checkin_completed = ?", true).Count(&checkinCount).Error; err != nil {
		checkinCount = 0
	}

	if err := s.db.Model(&models.BadgeEarned{}).Count(&badgeCount).Error; err != nil {
		badgeCount = 0
	}

	// Use string date equality to avoid timezone/type mismatches with DATE column
	today := time.Now().In(time.Local).Format("2006-01-02")
	if err := s.db.Model(&models.ActiveDay{}).
		Where("date = ?", today).
		Select("COALESCE(SUM(count),0)").
		Scan(&dailyActive).Error; err != nil {
		dailyActive = 0
	}

	stats := gin.H{
		"user_count":         userCount,
		"checkin_count":      checkinCount,
		"badge_count":        badgeCount,
		"daily_active_count": dailyActive,
	}
	utils.CacheSetJSON(statsCacheKey, stats, 5*time.Minute)
	utils.Success(ctx, stats)
}
