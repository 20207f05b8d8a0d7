package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/steadysteps/steadysteps/config"
	"github.com/steadysteps/steadysteps/models"
	"github.com/steadysteps/steadysteps/utils"
)

// CoachController proxies chat turns to the AI completion gateway, enriching
// each request with server-fetched user context so the client can never spoof
// its own progression.
type CoachController struct {
	db     *gorm.DB
	client *http.Client
}

// NewCoachController creates a CoachController with a bounded HTTP client.
func NewCoachController(db *gorm.DB) *CoachController {
	cfg := config.Get()
	return &CoachController{
		db:     db,
		client: &http.Client{Timeout: time.Duration(cfg.CoachTimeoutSec) * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

type coachContext struct {
	FirstName     string `json:"first_name,omitempty"`
	Stage         string `json:"stage"`
	CurrentStreak int    `json:"current_streak"`
	PrimaryGoal   string `json:"primary_goal,omitempty"`
	GoalMinutes   int    `json:"goal_minutes"`
}

const coachFallbackReply = "I'm here for you. Keep taking those steady steps — even a small one today counts."

// Chat relays a conversation to the gateway. Gateway throttling and quota
// responses map to specific user-facing messages; transport failures degrade
// to a supportive default instead of a 5xx.
func (cc *CoachController) Chat(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40180, "unauthorized")
		return
	}

	type request struct {
		Messages []chatMessage `json:"messages" binding:"required,min=1,max=50"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40080, "invalid chat payload")
		return
	}
	for i := range req.Messages {
		req.Messages[i].Content = utils.SanitizeText(req.Messages[i].Content)
	}

	cfg := config.Get()
	if cfg.CoachGatewayURL == "" {
		utils.Success(ctx, gin.H{"reply": coachFallbackReply})
		return
	}

	payload := gin.H{
		"messages": req.Messages,
		"context":  cc.buildContext(userID),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50080, "failed to encode chat request")
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), cc.client.Timeout)
	defer cancel()
	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodPost, cfg.CoachGatewayURL, bytes.NewReader(body))
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50081, "failed to build gateway request")
		return
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if cfg.CoachGatewayKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+cfg.CoachGatewayKey)
	}

	resp, err := cc.client.Do(httpReq)
	if err != nil {
		utils.Sugar.Warnf("coach gateway unreachable: %v", err)
		utils.Success(ctx, gin.H{"reply": coachFallbackReply, "degraded": true})
		return
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		utils.Error(ctx, http.StatusTooManyRequests, 42980, "your coach is taking a quick breather, try again in a moment")
		return
	case http.StatusPaymentRequired:
		utils.Error(ctx, http.StatusPaymentRequired, 40280, "you've used today's free coaching, upgrade for unlimited chats")
		return
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		utils.Sugar.Warnf("coach gateway read failed: %v", err)
		utils.Success(ctx, gin.H{"reply": coachFallbackReply, "degraded": true})
		return
	}

	var gw struct {
		Reply string `json:"reply"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &gw); err != nil || gw.Reply == "" {
		if gw.Error != "" {
			utils.Sugar.Warnf("coach gateway error: %s", gw.Error)
		}
		utils.Success(ctx, gin.H{"reply": coachFallbackReply, "degraded": true})
		return
	}

	utils.Success(ctx, gin.H{"reply": gw.Reply})
}

// buildContext assembles the immutable user context sent with every chat
// turn. Missing profiles yield a minimal context, never an error.
func (cc *CoachController) buildContext(userID uint) coachContext {
	var profile models.Profile
	if err := cc.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return coachContext{Stage: "beginner"}
	}
	return coachContext{
		FirstName:     profile.FirstName,
		Stage:         profile.CurrentStage,
		CurrentStreak: profile.CurrentStreak,
		PrimaryGoal:   profile.PrimaryGoal,
		GoalMinutes:   profile.ActivityGoalMinutes,
	}
}
