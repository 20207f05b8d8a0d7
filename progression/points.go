// Package progression implements the pure progression rules: daily points,
// streaks, badge unlocks, level lookup and stage classification. Nothing in
// this package performs I/O; callers feed it already-fetched state.
package progression

import "github.com/steadysteps/steadysteps/models"

// Daily point awards.
const (
	BasePoints         = 10
	ActivityPoints     = 15
	NutritionPointsPer = 5
	PerfectDayBonus    = 10
	StreakBonus        = 5

	// StreakBonusThreshold is the streak length (after this check-in) at
	// which the streak bonus starts applying.
	StreakBonusThreshold = 3
)

// Points computes the points awarded for one daily check-in. streakAfter is
// the streak length including this check-in. Unanswered (nil) nutrition slots
// never count as a yes. Inputs are pre-validated by the caller; the result is
// always a non-negative integer.
func Points(activityCompleted bool, nutrition models.NutritionAnswers, streakAfter int) int {
	points := BasePoints
	if activityCompleted {
		points += ActivityPoints
	}
	points += NutritionPointsPer * nutrition.YesCount()
	if IsPerfectDay(activityCompleted, nutrition) {
		points += PerfectDayBonus
	}
	if streakAfter >= StreakBonusThreshold {
		points += StreakBonus
	}
	return points
}

// IsPerfectDay reports whether the day qualifies for the perfect-day bonus:
// activity completed and every nutrition question answered yes.
func IsPerfectDay(activityCompleted bool, nutrition models.NutritionAnswers) bool {
	return activityCompleted && nutrition.AllYes()
}
