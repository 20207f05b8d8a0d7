package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/steadysteps/steadysteps/config"
	"github.com/steadysteps/steadysteps/models"
	"github.com/steadysteps/steadysteps/utils"
)

// BuddyController manages accountability buddy invites. An invite mails a
// one-time token; the invitee accepts while signed in to link both accounts.
type BuddyController struct {
	db *gorm.DB
}

func NewBuddyController(db *gorm.DB) *BuddyController {
	return &BuddyController{db: db}
}

// Invite creates a pending buddy invite and emails the token link. One
// pending invite per (inviter, email) pair at a time.
func (bc *BuddyController) Invite(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40161, "unauthorized")
		return
	}

	type request struct {
		Email string `json:"email" binding:"required,email"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40060, "a valid email is required")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var self models.User
	if err := bc.db.First(&self, userID).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50061, "failed to load account")
		return
	}
	if strings.EqualFold(self.Email, email) {
		utils.Error(ctx, http.StatusBadRequest, 40061, "you cannot invite yourself")
		return
	}

	var existing models.Buddy
	err := bc.db.Where("inviter_id = ? AND invitee_email = ? AND status = ? AND expires_at > ?",
		userID, email, models.BuddyPending, time.Now()).First(&existing).Error
	if err == nil {
		utils.Error(ctx, http.StatusConflict, 40960, "an invite to this email is already pending")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Error(ctx, http.StatusInternalServerError, 50062, "failed to check pending invites")
		return
	}

	cfg := config.Get()
	invite := models.Buddy{
		InviterID:    userID,
		InviteeEmail: email,
		Token:        uuid.NewString(),
		Status:       models.BuddyPending,
		ExpiresAt:    time.Now().Add(time.Duration(cfg.InviteTTLHours) * time.Hour),
	}
	if err := bc.db.Create(&invite).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50063, "failed to create invite")
		return
	}

	link := fmt.Sprintf("%s/buddies/accept/%s", strings.TrimRight(cfg.AppBaseURL, "/"), invite.Token)
	body := fmt.Sprintf(
		"%s invited you to be their accountability buddy on SteadySteps.\r\n\r\n"+
			"Accept the invite here: %s\r\n\r\n"+
			"The invite expires in %d hours.",
		self.Username, link, cfg.InviteTTLHours)
	if err := utils.SendMail(email, "You have a buddy invite on SteadySteps", body); err != nil {
		utils.Sugar.Warnf("buddy invite mail to %s failed: %v", email, err)
	}

	utils.Success(ctx, gin.H{"invite_id": invite.ID, "expires_at": invite.ExpiresAt})
}

// Accept links the signed-in user to a pending invite by token. The inviter
// cannot accept their own invite and tokens are single use.
func (bc *BuddyController) Accept(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40162, "unauthorized")
		return
	}
	token := ctx.Param("token")
	if _, err := uuid.Parse(token); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40062, "invalid invite token")
		return
	}

	err := bc.db.Transaction(func(tx *gorm.DB) error {
		var invite models.Buddy
		if err := tx.Where("token = ?", token).First(&invite).Error; err != nil {
			return err
		}
		if invite.Status != models.BuddyPending {
			return errInviteUsed
		}
		if time.Now().After(invite.ExpiresAt) {
			return errInviteExpired
		}
		if invite.InviterID == userID {
			return errInviteOwn
		}

		now := time.Now()
		return tx.Model(&invite).Updates(map[string]any{
			"invitee_id":  userID,
			"status":      models.BuddyAccepted,
			"accepted_at": now,
		}).Error
	})

	switch {
	case err == nil:
		utils.Success(ctx, gin.H{"accepted": true})
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.Error(ctx, http.StatusNotFound, 40460, "invite not found")
	case errors.Is(err, errInviteUsed):
		utils.Error(ctx, http.StatusConflict, 40961, "invite has already been used")
	case errors.Is(err, errInviteExpired):
		utils.Error(ctx, http.StatusGone, 41060, "invite has expired")
	case errors.Is(err, errInviteOwn):
		utils.Error(ctx, http.StatusBadRequest, 40063, "you cannot accept your own invite")
	default:
		utils.Error(ctx, http.StatusInternalServerError, 50064, "failed to accept invite")
	}
}

var (
	errInviteUsed    = errors.New("invite already used")
	errInviteExpired = errors.New("invite expired")
	errInviteOwn     = errors.New("own invite")
)

type buddyView struct {
	BuddyID       uint   `json:"buddy_id"`
	Username      string `json:"username"`
	CurrentStreak int    `json:"current_streak"`
	CurrentStage  string `json:"current_stage"`
	Since         string `json:"since"`
}

// List returns accepted buddies plus the user's outgoing pending invites.
// Buddy progression is limited to streak and stage, nothing private.
func (bc *BuddyController) List(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40163, "unauthorized")
		return
	}

	var links []models.Buddy
	err := bc.db.Where("status = ? AND (inviter_id = ? OR invitee_id = ?)",
		models.BuddyAccepted, userID, userID).Find(&links).Error
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50065, "failed to load buddies")
		return
	}

	buddies := make([]buddyView, 0, len(links))
	for _, link := range links {
		otherID := link.InviterID
		if otherID == userID && link.InviteeID != nil {
			otherID = *link.InviteeID
		}
		var other models.User
		if err := bc.db.First(&other, otherID).Error; err != nil {
			continue
		}
		view := buddyView{BuddyID: other.ID, Username: other.Username}
		if link.AcceptedAt != nil {
			view.Since = link.AcceptedAt.Format(time.DateOnly)
		}
		var profile models.Profile
		if err := bc.db.Where("user_id = ?", otherID).First(&profile).Error; err == nil {
			view.CurrentStreak = profile.CurrentStreak
			view.CurrentStage = profile.CurrentStage
		}
		buddies = append(buddies, view)
	}

	var pending []models.Buddy
	if err := bc.db.Where("inviter_id = ? AND status = ? AND expires_at > ?",
		userID, models.BuddyPending, time.Now()).Find(&pending).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50066, "failed to load pending invites")
		return
	}
	pendingViews := make([]gin.H, 0, len(pending))
	for _, inv := range pending {
		pendingViews = append(pendingViews, gin.H{
			"invitee_email": inv.InviteeEmail,
			"expires_at":    inv.ExpiresAt,
		})
	}

	utils.Success(ctx, gin.H{"buddies": buddies, "pending": pendingViews})
}
