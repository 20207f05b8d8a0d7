package models

import "time"

// Referral holds a user's shareable referral code. Created lazily on first
// read; the code is stable afterwards.
type Referral struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OwnerID     uint      `gorm:"uniqueIndex;not null" json:"owner_id"`
	Code        string    `gorm:"size:12;uniqueIndex;not null" json:"code"`
	Redemptions int       `gorm:"default:0" json:"redemptions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReferralRedemption records a single redeem. A user can redeem at most one
// code ever, and never their own.
type ReferralRedemption struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ReferralID uint      `gorm:"index;not null" json:"referral_id"`
	UserID     uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
}
