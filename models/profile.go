package models

import "time"

// Profile holds the canonical per-user progression record: onboarding answers,
// counters and derived stage/level. Counters are mutated only inside the daily
// check-in transaction and by the activity goal adjuster.
type Profile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	// Identity and preferences
	FirstName       string `gorm:"size:64" json:"first_name"`
	Language        string `gorm:"size:8;default:'en'" json:"language"`
	MorningReminder string `gorm:"size:5" json:"morning_reminder"` // "HH:MM", empty = off
	EveningReminder string `gorm:"size:5" json:"evening_reminder"`

	// Onboarding answers
	PrimaryGoal        string `gorm:"size:64" json:"primary_goal"`
	ActivityLevel      string `gorm:"size:32" json:"activity_level"`
	NutritionChallenge string `gorm:"size:64" json:"nutrition_challenge"`
	TimeCommitment     string `gorm:"size:32" json:"time_commitment"`
	DietPreference     string `gorm:"size:32" json:"diet_preference"`
	BiggestObstacle    string `gorm:"size:64" json:"biggest_obstacle"`
	Confidence         int    `gorm:"default:3" json:"confidence"` // 1-5
	NutritionQuestions int    `gorm:"default:3" json:"nutrition_questions"`

	// Progression counters
	TotalPoints              int `gorm:"default:0" json:"total_points"`
	CurrentStreak            int `gorm:"default:0" json:"current_streak"`
	LongestStreak            int `gorm:"default:0" json:"longest_streak"`
	TotalCheckins            int `gorm:"default:0" json:"total_checkins"`
	TotalActivityCompletions int `gorm:"default:0" json:"total_activity_completions"`
	TotalNutritionHabits     int `gorm:"default:0" json:"total_nutrition_habits"`
	TotalPerfectDays         int `gorm:"default:0" json:"total_perfect_days"`

	// Derived, cached for cheap reads
	CurrentStage        string `gorm:"size:16;default:'beginner'" json:"current_stage"`
	CurrentLevel        int    `gorm:"default:1" json:"current_level"`
	ActivityGoalMinutes int    `gorm:"default:15" json:"activity_goal_minutes"` // 5-30, 0 = paused

	// Temporal state
	LastCheckinDate string     `gorm:"size:10" json:"last_checkin_date"` // "YYYY-MM-DD", empty = never
	NotBehindActive bool       `gorm:"default:false" json:"not_behind_active"`
	NotBehindSince  *time.Time `json:"not_behind_since"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
