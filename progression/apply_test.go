package progression_test

import (
	"testing"

	"github.com/steadysteps/steadysteps/models"
	"github.com/steadysteps/steadysteps/progression"
)

func TestApplyDaily_CountersAndLevel(t *testing.T) {
	profile := models.Profile{TotalPoints: 90, TotalCheckins: 4}
	facts := progression.DayFacts{
		ActivityCompleted: true,
		NutritionYes:      2,
		PerfectDay:        false,
		NewStreak:         5,
		StageAfter:        progression.StageBeginner,
	}

	level := progression.ApplyDaily(&profile, facts, 40, "2026-03-10")

	if profile.TotalPoints != 130 {
		t.Errorf("expected 130 points, got %d", profile.TotalPoints)
	}
	if profile.TotalCheckins != 5 {
		t.Errorf("expected 5 check-ins, got %d", profile.TotalCheckins)
	}
	if profile.TotalActivityCompletions != 1 {
		t.Errorf("expected 1 activity completion, got %d", profile.TotalActivityCompletions)
	}
	if profile.TotalNutritionHabits != 2 {
		t.Errorf("expected 2 nutrition habits, got %d", profile.TotalNutritionHabits)
	}
	if profile.TotalPerfectDays != 0 {
		t.Errorf("perfect-day counter moved on a non-perfect day: %d", profile.TotalPerfectDays)
	}
	if profile.LastCheckinDate != "2026-03-10" {
		t.Errorf("last check-in date not updated: %s", profile.LastCheckinDate)
	}
	// 130 points crosses the 101 boundary into level 2.
	if level.Level != 2 || profile.CurrentLevel != 2 {
		t.Errorf("expected level 2, got returned=%d cached=%d", level.Level, profile.CurrentLevel)
	}
}

func TestApplyDaily_LongestStreakIsHighWaterMark(t *testing.T) {
	var profile models.Profile

	// Streak grows, breaks, regrows but never past the old peak.
	streaks := []int{1, 2, 3, 1, 2}
	for i, s := range streaks {
		progression.ApplyDaily(&profile, progression.DayFacts{NewStreak: s}, 10, "2026-03-10")
		if profile.LongestStreak < profile.CurrentStreak {
			t.Fatalf("step %d: longest %d fell below current %d", i, profile.LongestStreak, profile.CurrentStreak)
		}
	}
	if profile.CurrentStreak != 2 {
		t.Errorf("expected current streak 2, got %d", profile.CurrentStreak)
	}
	if profile.LongestStreak != 3 {
		t.Errorf("expected longest streak to hold at 3, got %d", profile.LongestStreak)
	}

	// A new peak raises the mark.
	for _, s := range []int{3, 4} {
		progression.ApplyDaily(&profile, progression.DayFacts{NewStreak: s}, 10, "2026-03-11")
	}
	if profile.LongestStreak != 4 {
		t.Errorf("expected longest streak 4 after new peak, got %d", profile.LongestStreak)
	}
}

func TestApplyDaily_StageFollowsFacts(t *testing.T) {
	profile := models.Profile{TotalCheckins: 20, CurrentStage: string(progression.StageBeginner)}
	facts := progression.DayFacts{
		NewStreak:   21,
		StageBefore: progression.StageBeginner,
		StageAfter:  progression.StageConsistent,
	}
	progression.ApplyDaily(&profile, facts, 10, "2026-03-10")

	if profile.CurrentStage != string(progression.StageConsistent) {
		t.Errorf("expected consistent stage, got %s", profile.CurrentStage)
	}
	if profile.TotalCheckins != 21 {
		t.Errorf("expected 21 check-ins, got %d", profile.TotalCheckins)
	}
}
