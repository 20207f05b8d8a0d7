package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/steadysteps/steadysteps/models"
	"github.com/steadysteps/steadysteps/progression"
	"github.com/steadysteps/steadysteps/utils"
)

// BadgeController serves the badge catalog and per-user earned state.
type BadgeController struct {
	db *gorm.DB
}

// NewBadgeController creates a BadgeController.
func NewBadgeController(db *gorm.DB) *BadgeController {
	return &BadgeController{db: db}
}

type badgeView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Earned      bool       `json:"earned"`
	EarnedAt    *time.Time `json:"earned_at,omitempty"`
}

// Catalog returns the static badge catalog. Cached in redis since it only
// changes on deploy.
func (b *BadgeController) Catalog(ctx *gin.Context) {
	const cacheKey = "cache:badges:catalog"
	if bytes, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", bytes)
		return
	}

	views := make([]badgeView, 0, len(progression.Catalog()))
	for _, badge := range progression.Catalog() {
		views = append(views, badgeView{
			ID:          badge.ID,
			Name:        badge.Name,
			Description: badge.Description,
			Category:    badge.Category,
		})
	}

	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: gin.H{"items": views}}
	utils.CacheSetJSON(cacheKey, wrapper, 12*time.Hour)
	utils.Success(ctx, gin.H{"items": views})
}

// List returns the catalog merged with the caller's earned state.
func (b *BadgeController) List(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40160, "unauthorized")
		return
	}

	var rows []models.BadgeEarned
	if err := b.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to load badges")
		return
	}
	earnedAt := make(map[string]time.Time, len(rows))
	for _, r := range rows {
		earnedAt[r.BadgeID] = r.EarnedAt
	}

	views := make([]badgeView, 0, len(progression.Catalog()))
	earnedCount := 0
	for _, badge := range progression.Catalog() {
		v := badgeView{
			ID:          badge.ID,
			Name:        badge.Name,
			Description: badge.Description,
			Category:    badge.Category,
		}
		if at, ok := earnedAt[badge.ID]; ok {
			at := at
			v.Earned = true
			v.EarnedAt = &at
			earnedCount++
		}
		views = append(views, v)
	}

	utils.Success(ctx, gin.H{"items": views, "earned": earnedCount, "total": len(views)})
}
