package main

import (
	"time"

	"github.com/steadysteps/steadysteps/config"
	"github.com/steadysteps/steadysteps/models"
	"github.com/steadysteps/steadysteps/routes"
	"github.com/steadysteps/steadysteps/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.Profile{},
		&models.Checkin{},
		&models.BadgeEarned{},
		&models.Buddy{},
		&models.Referral{},
		&models.ReferralRedemption{},
		&models.Subscription{},
		&models.ActiveDay{},
	)

	r := routes.SetupRouter(db)

	// Purge expired pending buddy invites (best-effort)
	utils.StartInviteCleaner(time.Hour)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
