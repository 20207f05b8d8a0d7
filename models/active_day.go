package models

import "time"

// ActiveDay stores aggregated daily active user counts. One row per date,
// incremented atomically by the activity middleware.
type ActiveDay struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"uniqueIndex;size:10;not null" json:"date"` // "YYYY-MM-DD"
	Count     int64     `gorm:"not null;default:0" json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
