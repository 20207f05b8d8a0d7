package models

import "time"

// Buddy statuses.
const (
	BuddyPending  = "pending"
	BuddyAccepted = "accepted"
)

// Buddy is an accountability connection between two users. An invite starts as
// a pending row with a token mailed to the invitee; accepting fills InviteeID.
type Buddy struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	InviterID    uint       `gorm:"index;not null" json:"inviter_id"`
	InviteeEmail string     `gorm:"size:255;not null" json:"invitee_email"`
	InviteeID    *uint      `gorm:"index" json:"invitee_id,omitempty"`
	Token        string     `gorm:"size:36;uniqueIndex;not null" json:"-"`
	Status       string     `gorm:"size:16;default:'pending'" json:"status"`
	ExpiresAt    time.Time  `gorm:"not null" json:"expires_at"`
	AcceptedAt   *time.Time `json:"accepted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
