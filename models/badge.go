package models

import "time"

// BadgeEarned records a badge unlock. Rows are insert-only: a badge, once
// earned, never reverts (the unique index makes re-awarding a no-op upsert).
type BadgeEarned struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"index:idx_badge_user_badge,unique;not null" json:"user_id"`
	BadgeID  string    `gorm:"index:idx_badge_user_badge,unique;size:32;not null" json:"badge_id"`
	EarnedAt time.Time `gorm:"not null" json:"earned_at"`
}
