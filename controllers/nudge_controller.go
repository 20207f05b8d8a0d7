package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/steadysteps/steadysteps/models"
	"github.com/steadysteps/steadysteps/nudge"
	"github.com/steadysteps/steadysteps/progression"
	"github.com/steadysteps/steadysteps/utils"
)

// NudgeController runs the nudge engine and the Not-Behind evaluator over the
// trailing 7-day check-in window. Both run on app foregrounding.
type NudgeController struct {
	db     *gorm.DB
	engine *nudge.Engine
}

// NewNudgeController creates a NudgeController with a time-seeded engine.
func NewNudgeController(db *gorm.DB) *NudgeController {
	return &NudgeController{db: db, engine: nudge.NewEngine(nil)}
}

// DailyMessage returns today's prioritized supportive message. Engine
// failures never surface; the worst case is the default encouragement.
func (n *NudgeController) DailyMessage(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40170, "unauthorized")
		return
	}

	date := today()
	window, err := n.loadWindow(userID, date)
	if err != nil {
		// Degrade to the default message rather than failing the screen.
		utils.Sugar.Warnf("nudge window load failed user=%d: %v", userID, err)
		window = nil
	}

	utils.Success(ctx, n.engine.Evaluate(window, date))
}

// EvaluateNotBehind recomputes Not-Behind mode and persists the flag on
// transition, stamping the activation time and clearing it on deactivation.
func (n *NudgeController) EvaluateNotBehind(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40171, "unauthorized")
		return
	}

	var profile models.Profile
	if err := n.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40471, "profile not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50074, "failed to load profile")
		return
	}

	window, err := n.loadWindow(userID, today())
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50075, "failed to load check-ins")
		return
	}

	active := nudge.EvaluateNotBehind(window, profile.CurrentStreak)
	changed := active != profile.NotBehindActive

	if changed {
		updates := map[string]interface{}{"not_behind_active": active}
		if active {
			now := time.Now()
			updates["not_behind_since"] = &now
		} else {
			updates["not_behind_since"] = nil
		}
		if err := n.db.Model(&models.Profile{}).Where("user_id = ?", userID).
			Updates(updates).Error; err != nil {
			utils.Error(ctx, http.StatusInternalServerError, 50076, "failed to persist mode change")
			return
		}
	}

	utils.Success(ctx, gin.H{"active": active, "changed": changed})
}

// loadWindow fetches the trailing 7 days of check-ins as nudge days, newest
// first.
func (n *NudgeController) loadWindow(userID uint, date string) ([]nudge.Day, error) {
	since, err := time.Parse(progression.DateLayout, date)
	if err != nil {
		return nil, err
	}
	floor := since.AddDate(0, 0, -6).Format(progression.DateLayout)

	var records []models.Checkin
	if err := n.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, floor, date).
		Order("date DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	window := make([]nudge.Day, 0, len(records))
	for _, r := range records {
		window = append(window, nudge.Day{
			Date:      r.Date,
			Completed: r.CheckinCompleted,
			Stress:    r.Stress,
			Sleep:     r.Sleep,
		})
	}
	return window, nil
}
