package progression

import "github.com/steadysteps/steadysteps/models"

// ApplyDaily folds one completed check-in into the profile counters: points,
// streak, totals, stage and the cached level. The longest streak is a
// high-water mark and never decreases. Returns the derived level so callers
// can echo it without a second lookup.
func ApplyDaily(profile *models.Profile, facts DayFacts, points int, date string) LevelInfo {
	profile.TotalPoints += points
	profile.CurrentStreak = facts.NewStreak
	if facts.NewStreak > profile.LongestStreak {
		profile.LongestStreak = facts.NewStreak
	}
	profile.TotalCheckins++
	if facts.ActivityCompleted {
		profile.TotalActivityCompletions++
	}
	profile.TotalNutritionHabits += facts.NutritionYes
	if facts.PerfectDay {
		profile.TotalPerfectDays++
	}
	profile.LastCheckinDate = date
	profile.CurrentStage = string(facts.StageAfter)

	level := DeriveLevel(profile.TotalPoints)
	profile.CurrentLevel = level.Level
	return level
}
