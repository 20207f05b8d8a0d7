package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/steadysteps/steadysteps/models"
	"github.com/steadysteps/steadysteps/utils"
)

// ReferralController hands out shareable codes and records redemptions.
type ReferralController struct {
	db *gorm.DB
}

func NewReferralController(db *gorm.DB) *ReferralController {
	return &ReferralController{db: db}
}

// newReferralCode derives a short uppercase code from a fresh UUID.
func newReferralCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:12])
}

// Mine returns the current user's referral code, creating it on first call.
func (rc *ReferralController) Mine(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40172, "unauthorized")
		return
	}

	var ref models.Referral
	err := rc.db.Where("owner_id = ?", userID).First(&ref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ref = models.Referral{OwnerID: userID, Code: newReferralCode()}
		if err := rc.db.Create(&ref).Error; err != nil {
			// Concurrent first calls can race on the unique owner index.
			if err2 := rc.db.Where("owner_id = ?", userID).First(&ref).Error; err2 != nil {
				utils.Error(ctx, http.StatusInternalServerError, 50070, "failed to create referral code")
				return
			}
		}
	} else if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50071, "failed to load referral code")
		return
	}

	utils.Success(ctx, gin.H{"code": ref.Code, "redemptions": ref.Redemptions})
}

// Resolve is public: it reports whether a code exists so signup forms can
// validate before account creation. It never reveals the owner.
func (rc *ReferralController) Resolve(ctx *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(ctx.Param("code")))
	if len(code) != 12 {
		utils.Error(ctx, http.StatusBadRequest, 40070, "invalid referral code")
		return
	}

	var ref models.Referral
	err := rc.db.Where("code = ?", code).First(&ref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Success(ctx, gin.H{"valid": false})
		return
	}
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50072, "failed to resolve referral code")
		return
	}
	utils.Success(ctx, gin.H{"valid": true})
}

// Redeem applies a code to the signed-in user. One redemption per user ever,
// never the user's own code.
func (rc *ReferralController) Redeem(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40173, "unauthorized")
		return
	}

	type request struct {
		Code string `json:"code" binding:"required"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40071, "a referral code is required")
		return
	}
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	err := rc.db.Transaction(func(tx *gorm.DB) error {
		var prior models.ReferralRedemption
		err := tx.Where("user_id = ?", userID).First(&prior).Error
		if err == nil {
			return errAlreadyRedeemed
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var ref models.Referral
		if err := tx.Where("code = ?", code).First(&ref).Error; err != nil {
			return err
		}
		if ref.OwnerID == userID {
			return errOwnCode
		}

		redemption := models.ReferralRedemption{ReferralID: ref.ID, UserID: userID}
		if err := tx.Create(&redemption).Error; err != nil {
			return err
		}
		return tx.Model(&ref).UpdateColumn("redemptions", gorm.Expr("redemptions + ?", 1)).Error
	})

	switch {
	case err == nil:
		utils.Success(ctx, gin.H{"redeemed": true})
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.Error(ctx, http.StatusNotFound, 40470, "referral code not found")
	case errors.Is(err, errAlreadyRedeemed):
		utils.Error(ctx, http.StatusConflict, 40970, "you have already redeemed a referral code")
	case errors.Is(err, errOwnCode):
		utils.Error(ctx, http.StatusBadRequest, 40072, "you cannot redeem your own code")
	default:
		utils.Error(ctx, http.StatusInternalServerError, 50073, "failed to redeem referral code")
	}
}

var (
	errAlreadyRedeemed = errors.New("referral already redeemed")
	errOwnCode         = errors.New("own referral code")
)
