package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/steadysteps/steadysteps/config"
	"github.com/steadysteps/steadysteps/controllers"
	"github.com/steadysteps/steadysteps/middleware"
	"github.com/steadysteps/steadysteps/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	// Load config and set Gin mode from configuration
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}

	r.Use(cors.New(corsCfg))
	// Count each authenticated user once per day
	r.Use(middleware.ActiveDayRecorder(db))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(db)
	profileController := controllers.NewProfileController(db)
	checkinController := controllers.NewCheckinController(db)
	badgeController := controllers.NewBadgeController(db)
	nudgeController := controllers.NewNudgeController(db)
	coachController := controllers.NewCoachController(db)
	billingController := controllers.NewBillingController(db)
	buddyController := controllers.NewBuddyController(db)
	referralController := controllers.NewReferralController(db)
	statsController := controllers.NewStatsController(db)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)

	// Public endpoints
	api.GET("/stats", statsController.GetStats)
	api.GET("/badges/catalog", badgeController.Catalog)
	api.GET("/referrals/resolve/:code", referralController.Resolve)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(), middleware.RateLimitMiddleware())

	protected.POST("/onboarding", profileController.CompleteOnboarding)
	protected.GET("/profile", profileController.GetProfile)
	protected.PATCH("/profile", profileController.UpdateProfile)
	protected.PATCH("/profile/activity-goal", profileController.AdjustActivityGoal)

	protected.POST("/checkins/daily", checkinController.SubmitDaily)
	protected.POST("/checkins/wellness", checkinController.SubmitWellness)
	protected.GET("/checkins/today", checkinController.Today)
	protected.GET("/checkins", checkinController.History)

	protected.GET("/badges", badgeController.List)

	protected.GET("/nudge/daily", nudgeController.DailyMessage)
	protected.POST("/nudge/not-behind/evaluate", nudgeController.EvaluateNotBehind)

	protected.POST("/coach/chat", coachController.Chat)

	protected.GET("/billing/status", billingController.Status)
	protected.POST("/billing/checkout", billingController.Checkout)
	protected.POST("/billing/portal", billingController.Portal)
	protected.POST("/billing/cancel", billingController.Cancel)
	protected.POST("/billing/verify", billingController.Verify)

	protected.POST("/buddies/invite", buddyController.Invite)
	protected.POST("/buddies/accept/:token", buddyController.Accept)
	protected.GET("/buddies", buddyController.List)

	protected.GET("/referrals/mine", referralController.Mine)
	protected.POST("/referrals/redeem", referralController.Redeem)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "api route not found")
	})

	return r
}
