package models

import "time"

// Subscription mirrors the billing provider's verdict. The backend only
// interprets the Paid boolean; plan and period are opaque display data.
type Subscription struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	Paid             bool       `gorm:"default:false" json:"paid"`
	Provider         string     `gorm:"size:32" json:"provider"`
	Plan             string     `gorm:"size:64" json:"plan"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
