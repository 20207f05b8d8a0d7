package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/steadysteps/steadysteps/models"
	"github.com/steadysteps/steadysteps/progression"
	"github.com/steadysteps/steadysteps/utils"
)

// ProfileController manages the progression profile: onboarding creation,
// preference updates and the flexible-progress activity goal.
type ProfileController struct {
	db *gorm.DB
}

// NewProfileController creates a ProfileController.
func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{db: db}
}

type onboardingRequest struct {
	FirstName          string `json:"first_name"`
	Language           string `json:"language"`
	PrimaryGoal        string `json:"primary_goal" binding:"required"`
	ActivityLevel      string `json:"activity_level" binding:"required"`
	NutritionChallenge string `json:"nutrition_challenge"`
	TimeCommitment     string `json:"time_commitment"`
	DietPreference     string `json:"diet_preference"`
	BiggestObstacle    string `json:"biggest_obstacle"`
	Confidence         int    `json:"confidence" binding:"required,min=1,max=5"`
	MorningReminder    string `json:"morning_reminder"`
	EveningReminder    string `json:"evening_reminder"`
}

// CompleteOnboarding creates the profile with all counters at zero. A profile
// is created exactly once; repeat calls conflict.
func (p *ProfileController) CompleteOnboarding(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40140, "unauthorized")
		return
	}

	var req onboardingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40040, "invalid onboarding payload")
		return
	}

	var existing models.Profile
	if err := p.db.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		utils.Error(ctx, http.StatusConflict, 40940, "onboarding already completed")
		return
	}

	profile := models.Profile{
		UserID:              userID,
		FirstName:           utils.SanitizeText(strings.TrimSpace(req.FirstName)),
		Language:            strings.TrimSpace(req.Language),
		PrimaryGoal:         req.PrimaryGoal,
		ActivityLevel:       req.ActivityLevel,
		NutritionChallenge:  req.NutritionChallenge,
		TimeCommitment:      req.TimeCommitment,
		DietPreference:      req.DietPreference,
		BiggestObstacle:     req.BiggestObstacle,
		Confidence:          req.Confidence,
		NutritionQuestions:  3,
		MorningReminder:     req.MorningReminder,
		EveningReminder:     req.EveningReminder,
		CurrentStage:        string(progression.StageBeginner),
		CurrentLevel:        1,
		ActivityGoalMinutes: 15,
	}
	if profile.Language == "" {
		profile.Language = "en"
	}

	if err := p.db.Create(&profile).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to create profile")
		return
	}

	utils.Success(ctx, profile)
}

// GetProfile returns the full progression profile with derived level info.
func (p *ProfileController) GetProfile(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40141, "unauthorized")
		return
	}

	var profile models.Profile
	if err := p.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.Error(ctx, http.StatusNotFound, 40441, "profile not found, complete onboarding first")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50041, "failed to load profile")
		return
	}

	utils.Success(ctx, gin.H{
		"profile": profile,
		"level":   progression.DeriveLevel(profile.TotalPoints),
	})
}

// UpdateProfile patches preference fields only; counters are never writable here.
func (p *ProfileController) UpdateProfile(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40142, "unauthorized")
		return
	}

	type request struct {
		FirstName       *string `json:"first_name"`
		Language        *string `json:"language"`
		MorningReminder *string `json:"morning_reminder"`
		EveningReminder *string `json:"evening_reminder"`
		DietPreference  *string `json:"diet_preference"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40042, "invalid request payload")
		return
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = utils.SanitizeText(strings.TrimSpace(*req.FirstName))
	}
	if req.Language != nil {
		updates["language"] = strings.TrimSpace(*req.Language)
	}
	if req.MorningReminder != nil {
		updates["morning_reminder"] = *req.MorningReminder
	}
	if req.EveningReminder != nil {
		updates["evening_reminder"] = *req.EveningReminder
	}
	if req.DietPreference != nil {
		updates["diet_preference"] = *req.DietPreference
	}
	if len(updates) == 0 {
		utils.Error(ctx, http.StatusBadRequest, 40043, "no updatable fields provided")
		return
	}

	res := p.db.Model(&models.Profile{}).Where("user_id = ?", userID).Updates(updates)
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50042, "failed to update profile")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, 40442, "profile not found")
		return
	}

	utils.Success(ctx, gin.H{"updated": len(updates)})
}

// AdjustActivityGoal implements flexible progress: the daily activity goal
// moves within 5-30 minutes, or 0 to pause activity entirely.
func (p *ProfileController) AdjustActivityGoal(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40143, "unauthorized")
		return
	}

	type request struct {
		Minutes *int `json:"minutes" binding:"required"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Minutes == nil {
		utils.Error(ctx, http.StatusBadRequest, 40044, "invalid request payload")
		return
	}

	minutes := *req.Minutes
	if minutes != 0 && (minutes < 5 || minutes > 30) {
		utils.Error(ctx, http.StatusBadRequest, 40045, "activity goal must be 5-30 minutes, or 0 to pause")
		return
	}

	res := p.db.Model(&models.Profile{}).Where("user_id = ?", userID).
		Update("activity_goal_minutes", minutes)
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50043, "failed to adjust goal")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, 40443, "profile not found")
		return
	}

	utils.Success(ctx, gin.H{"activity_goal_minutes": minutes, "paused": minutes == 0})
}
