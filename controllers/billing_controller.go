package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/steadysteps/steadysteps/config"
	"github.com/steadysteps/steadysteps/models"
	"github.com/steadysteps/steadysteps/utils"
)

// BillingController talks to the external payment provider. All provider
// payloads are opaque pass-throughs; the only field this service interprets
// is whether the subscription is paid.
type BillingController struct {
	db     *gorm.DB
	client *http.Client
}

func NewBillingController(db *gorm.DB) *BillingController {
	return &BillingController{
		db:     db,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Status returns the stored subscription state for the current user. Users
// with no subscription row are reported as free tier.
func (bc *BillingController) Status(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40190, "unauthorized")
		return
	}

	var sub models.Subscription
	err := bc.db.Where("user_id = ?", userID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Success(ctx, gin.H{"paid": false, "plan": ""})
		return
	}
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50090, "failed to load subscription")
		return
	}
	utils.Success(ctx, gin.H{
		"paid":               sub.Paid,
		"plan":               sub.Plan,
		"provider":           sub.Provider,
		"current_period_end": sub.CurrentPeriodEnd,
	})
}

// Checkout asks the provider for a hosted checkout session and relays the
// session URL untouched.
func (bc *BillingController) Checkout(ctx *gin.Context) {
	bc.relay(ctx, "/checkout", 40091, 50091)
}

// Portal asks the provider for a self-service portal session.
func (bc *BillingController) Portal(ctx *gin.Context) {
	bc.relay(ctx, "/portal", 40092, 50092)
}

// Cancel forwards a cancellation request to the provider. Local state is not
// flipped here; the client calls Verify once the provider confirms.
func (bc *BillingController) Cancel(ctx *gin.Context) {
	bc.relay(ctx, "/cancel", 40093, 50093)
}

// Verify re-checks the subscription with the provider and persists the paid
// flag plus whatever opaque plan metadata the provider returned.
func (bc *BillingController) Verify(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40191, "unauthorized")
		return
	}

	cfg := config.Get()
	if cfg.BillingBaseURL == "" {
		utils.Error(ctx, http.StatusServiceUnavailable, 50394, "billing is not configured")
		return
	}

	raw, status, err := bc.forward(ctx, "/verify", userID)
	if err != nil {
		utils.Sugar.Warnf("billing verify failed for user %d: %v", userID, err)
		utils.Error(ctx, http.StatusBadGateway, 50294, "billing provider unavailable")
		return
	}
	if status != http.StatusOK {
		utils.Error(ctx, http.StatusBadGateway, 50295, "billing provider rejected verification")
		return
	}

	var result struct {
		Paid             bool       `json:"paid"`
		Plan             string     `json:"plan"`
		Provider         string     `json:"provider"`
		CurrentPeriodEnd *time.Time `json:"current_period_end"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		utils.Error(ctx, http.StatusBadGateway, 50296, "unreadable billing response")
		return
	}

	sub := models.Subscription{
		UserID:           userID,
		Paid:             result.Paid,
		Plan:             result.Plan,
		Provider:         result.Provider,
		CurrentPeriodEnd: result.CurrentPeriodEnd,
	}
	err = bc.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"paid", "plan", "provider", "current_period_end", "updated_at"}),
	}).Create(&sub).Error
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50297, "failed to store subscription")
		return
	}

	utils.Success(ctx, gin.H{"paid": result.Paid, "plan": result.Plan})
}

// relay forwards the client body to the provider endpoint and returns the
// provider's JSON unmodified inside the standard envelope.
func (bc *BillingController) relay(ctx *gin.Context, path string, badCode, gwCode int) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40192, "unauthorized")
		return
	}

	cfg := config.Get()
	if cfg.BillingBaseURL == "" {
		utils.Error(ctx, http.StatusServiceUnavailable, 50390, "billing is not configured")
		return
	}

	raw, status, err := bc.forward(ctx, path, userID)
	if err != nil {
		utils.Sugar.Warnf("billing %s failed for user %d: %v", path, userID, err)
		utils.Error(ctx, http.StatusBadGateway, gwCode, "billing provider unavailable")
		return
	}
	if status < 200 || status >= 300 {
		utils.Error(ctx, http.StatusBadRequest, badCode, "billing provider rejected the request")
		return
	}

	var passthrough json.RawMessage = raw
	if len(passthrough) == 0 {
		passthrough = json.RawMessage(`{}`)
	}
	utils.Success(ctx, passthrough)
}

// forward posts the client's body plus the user id to the provider.
func (bc *BillingController) forward(ctx *gin.Context, path string, userID uint) ([]byte, int, error) {
	cfg := config.Get()

	clientBody, err := io.ReadAll(io.LimitReader(ctx.Request.Body, 1<<16))
	if err != nil {
		return nil, 0, err
	}
	var payload map[string]any
	if len(clientBody) > 0 {
		if err := json.Unmarshal(clientBody, &payload); err != nil {
			return nil, 0, err
		}
	}
	if payload == nil {
		payload = map[string]any{}
	}
	payload["user_id"] = userID

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, err
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), bc.client.Timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, cfg.BillingBaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.BillingAPIKey != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.BillingAPIKey)
	}

	resp, err := bc.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, 0, err
	}
	return raw, resp.StatusCode, nil
}
