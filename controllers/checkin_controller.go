package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/steadysteps/steadysteps/models"
	"github.com/steadysteps/steadysteps/progression"
	"github.com/steadysteps/steadysteps/utils"
)

// CheckinController records daily and wellness check-ins. The daily check-in
// is the only writer of progression counters and runs inside one transaction
// with the profile row locked.
type CheckinController struct {
	db *gorm.DB
}

var errAnswersMismatch = errors.New("nutrition answers length mismatch")

// NewCheckinController creates a CheckinController.
func NewCheckinController(db *gorm.DB) *CheckinController {
	return &CheckinController{db: db}
}

type dailyCheckinRequest struct {
	ActivityCompleted bool                    `json:"activity_completed"`
	Nutrition         models.NutritionAnswers `json:"nutrition"`
	Mood              string                  `json:"mood"`
}

type checkinSummary struct {
	Date         string                `json:"date"`
	PointsEarned int                   `json:"points_earned"`
	NewStreak    int                   `json:"new_streak"`
	NewBadges    []string              `json:"new_badges"`
	Celebrate    bool                  `json:"celebrate"`
	Stage        string                `json:"stage"`
	Level        progression.LevelInfo `json:"level"`
	Resubmitted  bool                  `json:"resubmitted"`
}

// SubmitDaily records today's check-in: points, streak, counters and badge
// unlocks move together or not at all. A same-day resubmission overwrites the
// answers but never re-awards points or moves counters.
func (cc *CheckinController) SubmitDaily(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40150, "unauthorized")
		return
	}

	var req dailyCheckinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40050, "invalid check-in payload")
		return
	}
	if req.Mood != "" && !models.Moods[req.Mood] {
		utils.Error(ctx, http.StatusBadRequest, 40051, "unknown mood")
		return
	}

	date := today()
	var summary checkinSummary

	err := cc.db.Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).First(&profile).Error; err != nil {
			return err
		}

		if len(req.Nutrition) != profile.NutritionQuestions {
			return errAnswersMismatch
		}

		var existing models.Checkin
		haveRow, err := rowFound(tx.Where("user_id = ? AND date = ?", userID, date).
			First(&existing).Error)
		if err != nil {
			return err
		}

		if haveRow && existing.CheckinCompleted {
			// Upsert semantics: answers overwrite, points stay as computed
			// at creation, counters do not move twice.
			existing.ActivityCompleted = req.ActivityCompleted
			existing.Nutrition = req.Nutrition
			existing.Mood = req.Mood
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			summary = checkinSummary{
				Date:         date,
				PointsEarned: existing.PointsEarned,
				NewStreak:    profile.CurrentStreak,
				NewBadges:    []string{},
				Stage:        profile.CurrentStage,
				Level:        progression.DeriveLevel(profile.TotalPoints),
				Resubmitted:  true,
			}
			return nil
		}

		newStreak := progression.NextStreak(profile.LastCheckinDate, date, profile.CurrentStreak)
		points := progression.Points(req.ActivityCompleted, req.Nutrition, newStreak)

		counters := progression.Counters{
			TotalCheckins:            profile.TotalCheckins,
			TotalActivityCompletions: profile.TotalActivityCompletions,
			TotalNutritionHabits:     profile.TotalNutritionHabits,
			TotalPerfectDays:         profile.TotalPerfectDays,
		}
		facts := progression.DayFacts{
			ActivityCompleted: req.ActivityCompleted,
			NutritionYes:      req.Nutrition.YesCount(),
			PerfectDay:        progression.IsPerfectDay(req.ActivityCompleted, req.Nutrition),
			NewStreak:         newStreak,
			MoodProvided:      req.Mood != "",
			MissedDays:        progression.MissedDays(profile.LastCheckinDate, date),
			StageBefore:       progression.StageFor(profile.TotalCheckins),
			StageAfter:        progression.StageFor(profile.TotalCheckins + 1),
		}

		earned, err := earnedBadgeIDs(tx, userID)
		if err != nil {
			return err
		}
		newBadges := progression.EvaluateBadges(counters, facts, earned)

		now := time.Now()
		for _, b := range newBadges {
			// Insert-only unlock; a concurrent duplicate is a no-op.
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&models.BadgeEarned{UserID: userID, BadgeID: b.ID, EarnedAt: now}).Error; err != nil {
				return err
			}
		}

		record := models.Checkin{
			UserID:            userID,
			Date:              date,
			CheckinCompleted:  true,
			ActivityCompleted: req.ActivityCompleted,
			Nutrition:         req.Nutrition,
			Mood:              req.Mood,
			PointsEarned:      points,
		}
		if haveRow {
			// Wellness-only row exists for today: complete it in place so
			// stress/sleep/energy survive.
			record.AdoptWellness(&existing)
			if err := tx.Save(&record).Error; err != nil {
				return err
			}
		} else if err := tx.Create(&record).Error; err != nil {
			return err
		}

		level := progression.ApplyDaily(&profile, facts, points, date)

		if err := tx.Save(&profile).Error; err != nil {
			return err
		}

		names := make([]string, 0, len(newBadges))
		for _, b := range newBadges {
			names = append(names, b.Name)
		}
		summary = checkinSummary{
			Date:         date,
			PointsEarned: points,
			NewStreak:    newStreak,
			NewBadges:    names,
			Celebrate:    progression.Celebrate(len(newBadges), facts),
			Stage:        profile.CurrentStage,
			Level:        level,
		}
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, errAnswersMismatch):
			utils.Error(ctx, http.StatusBadRequest, 40052, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.Error(ctx, http.StatusNotFound, 40450, "profile not found, complete onboarding first")
		default:
			utils.Sugar.Errorf("daily check-in failed user=%d: %v", userID, err)
			utils.Error(ctx, http.StatusInternalServerError, 50050, "failed to record check-in")
		}
		return
	}

	utils.Success(ctx, summary)
}

// SubmitWellness upserts today's stress/sleep/energy ratings. It never
// touches points or counters; a row is created when the daily check-in has
// not happened yet.
func (cc *CheckinController) SubmitWellness(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40151, "unauthorized")
		return
	}

	type request struct {
		Stress *int `json:"stress"`
		Sleep  *int `json:"sleep"`
		Energy *int `json:"energy"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40053, "invalid wellness payload")
		return
	}
	for _, v := range []*int{req.Stress, req.Sleep, req.Energy} {
		if v != nil && (*v < 1 || *v > 5) {
			utils.Error(ctx, http.StatusBadRequest, 40054, "wellness ratings must be 1-5")
			return
		}
	}
	if req.Stress == nil && req.Sleep == nil && req.Energy == nil {
		utils.Error(ctx, http.StatusBadRequest, 40055, "at least one rating required")
		return
	}

	date := today()
	var record models.Checkin

	err := cc.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND date = ?", userID, date).First(&record).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			record = models.Checkin{UserID: userID, Date: date}
		}
		if req.Stress != nil {
			record.Stress = req.Stress
		}
		if req.Sleep != nil {
			record.Sleep = req.Sleep
		}
		if req.Energy != nil {
			record.Energy = req.Energy
		}
		return tx.Save(&record).Error
	})
	if err != nil {
		utils.Sugar.Errorf("wellness check-in failed user=%d: %v", userID, err)
		utils.Error(ctx, http.StatusInternalServerError, 50051, "failed to record wellness check-in")
		return
	}

	utils.Success(ctx, record)
}

// Today returns today's check-in record, if any.
func (cc *CheckinController) Today(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40152, "unauthorized")
		return
	}

	var record models.Checkin
	if err := cc.db.Where("user_id = ? AND date = ?", userID, today()).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Success(ctx, gin.H{"checked_in": false})
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50052, "failed to load check-in")
		return
	}

	utils.Success(ctx, gin.H{"checked_in": record.CheckinCompleted, "checkin": record})
}

// History returns the trailing N days of check-ins, newest first.
func (cc *CheckinController) History(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40153, "unauthorized")
		return
	}

	days := 7
	if v := ctx.Query("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 90 {
			days = n
		}
	}

	since := time.Now().In(time.Local).AddDate(0, 0, -(days - 1)).Format(progression.DateLayout)

	var records []models.Checkin
	if err := cc.db.Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC").Find(&records).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50053, "failed to load history")
		return
	}

	utils.Success(ctx, gin.H{"days": days, "items": records})
}

// earnedBadgeIDs loads the set of badge IDs the user has already unlocked.
func earnedBadgeIDs(tx *gorm.DB, userID uint) (map[string]bool, error) {
	var rows []models.BadgeEarned
	if err := tx.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	earned := make(map[string]bool, len(rows))
	for _, r := range rows {
		earned[r.BadgeID] = true
	}
	return earned, nil
}
