package models

import "time"

// Mood values accepted on a daily check-in.
var Moods = map[string]bool{
	"great":    true,
	"good":     true,
	"okay":     true,
	"stressed": true,
	"tired":    true,
}

// Checkin stores one record per user per calendar day. The (user_id, date)
// pair is unique; a second submission for the same date overwrites the answers
// but PointsEarned is computed once at creation and kept.
type Checkin struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index:idx_checkin_user_date,unique;not null" json:"user_id"`
	Date   string `gorm:"index:idx_checkin_user_date,unique;size:10;not null" json:"date"` // "YYYY-MM-DD"

	CheckinCompleted  bool             `gorm:"default:false" json:"checkin_completed"`
	ActivityCompleted bool             `gorm:"default:false" json:"activity_completed"`
	Nutrition         NutritionAnswers `gorm:"type:text;serializer:json" json:"nutrition"`
	Mood              string           `gorm:"size:16" json:"mood,omitempty"`
	PointsEarned      int              `gorm:"default:0" json:"points_earned"`

	// Wellness fields, written by the separate wellness check-in flow. 1-5.
	Stress *int `json:"stress,omitempty"`
	Sleep  *int `json:"sleep,omitempty"`
	Energy *int `json:"energy,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AdoptWellness takes over the row identity and wellness ratings of an
// earlier wellness-only row so a daily submission completes it in place. The
// daily fields of the receiver, points included, are left untouched.
func (c *Checkin) AdoptWellness(prev *Checkin) {
	c.ID = prev.ID
	c.Stress = prev.Stress
	c.Sleep = prev.Sleep
	c.Energy = prev.Energy
	c.CreatedAt = prev.CreatedAt
}

// NutritionAnswers is an ordered sequence of answers to the fixed daily
// nutrition questions. nil means unanswered and never counts as a yes.
type NutritionAnswers []*bool

// YesCount returns how many answers are strictly true.
func (n NutritionAnswers) YesCount() int {
	count := 0
	for _, a := range n {
		if a != nil && *a {
			count++
		}
	}
	return count
}

// AllYes reports whether every slot is answered true. Empty sequences are not
// considered all-yes.
func (n NutritionAnswers) AllYes() bool {
	if len(n) == 0 {
		return false
	}
	for _, a := range n {
		if a == nil || !*a {
			return false
		}
	}
	return true
}
