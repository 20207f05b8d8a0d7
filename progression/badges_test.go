package progression_test

import (
	"testing"

	"github.com/steadysteps/steadysteps/progression"
)

func earnedIDs(badges []progression.Badge) map[string]bool {
	out := make(map[string]bool, len(badges))
	for _, b := range badges {
		out[b.ID] = true
	}
	return out
}

func TestBadges_FirstCheckin(t *testing.T) {
	got := progression.EvaluateBadges(
		progression.Counters{},
		progression.DayFacts{NewStreak: 1},
		nil,
	)
	ids := earnedIDs(got)
	if !ids["first_checkin"] {
		t.Error("expected first_checkin on the very first check-in")
	}
	if ids["one_week"] {
		t.Error("one_week should not fire at streak 1")
	}
}

func TestBadges_StreakExactMatchOnly(t *testing.T) {
	for _, streak := range []int{6, 8} {
		got := progression.EvaluateBadges(
			progression.Counters{TotalCheckins: streak - 1},
			progression.DayFacts{NewStreak: streak},
			nil,
		)
		if earnedIDs(got)["one_week"] {
			t.Errorf("one_week fired at streak %d", streak)
		}
	}

	got := progression.EvaluateBadges(
		progression.Counters{TotalCheckins: 6},
		progression.DayFacts{NewStreak: 7},
		nil,
	)
	if !earnedIDs(got)["one_week"] {
		t.Error("one_week did not fire at streak 7")
	}
}

func TestBadges_ActivityMilestoneFiresOnCrossing(t *testing.T) {
	notYet := progression.EvaluateBadges(
		progression.Counters{TotalCheckins: 8, TotalActivityCompletions: 8},
		progression.DayFacts{ActivityCompleted: true},
		map[string]bool{"first_activity": true, "first_checkin": true},
	)
	if earnedIDs(notYet)["active_10"] {
		t.Error("active_10 fired one completion early")
	}

	crossing := progression.EvaluateBadges(
		progression.Counters{TotalCheckins: 9, TotalActivityCompletions: 9},
		progression.DayFacts{ActivityCompleted: true},
		map[string]bool{"first_activity": true, "first_checkin": true},
	)
	if !earnedIDs(crossing)["active_10"] {
		t.Error("active_10 did not fire on the 10th completion")
	}

	skippedDay := progression.EvaluateBadges(
		progression.Counters{TotalCheckins: 9, TotalActivityCompletions: 9},
		progression.DayFacts{ActivityCompleted: false},
		map[string]bool{"first_activity": true, "first_checkin": true},
	)
	if earnedIDs(skippedDay)["active_10"] {
		t.Error("active_10 fired on a day with no activity")
	}
}

func TestBadges_NutritionMilestoneCrossesWithMultiYes(t *testing.T) {
	// 28 -> 31 jumps past 30 exactly once.
	got := progression.EvaluateBadges(
		progression.Counters{TotalCheckins: 10, TotalNutritionHabits: 28},
		progression.DayFacts{NutritionYes: 3},
		map[string]bool{"mindful_start": true, "first_checkin": true},
	)
	if !earnedIDs(got)["nourish_30"] {
		t.Error("nourish_30 did not fire when the total crossed 30")
	}

	after := progression.EvaluateBadges(
		progression.Counters{TotalCheckins: 11, TotalNutritionHabits: 31},
		progression.DayFacts{NutritionYes: 3},
		map[string]bool{"mindful_start": true, "first_checkin": true, "nourish_30": true},
	)
	if earnedIDs(after)["nourish_30"] {
		t.Error("nourish_30 fired again after being earned")
	}
}

func TestBadges_OneWayUnlock(t *testing.T) {
	already := map[string]bool{"first_checkin": true, "mood_starter": true}
	got := progression.EvaluateBadges(
		progression.Counters{},
		progression.DayFacts{NewStreak: 1, MoodProvided: true},
		already,
	)
	ids := earnedIDs(got)
	if ids["first_checkin"] || ids["mood_starter"] {
		t.Error("already-earned badges were returned again")
	}
}

func TestBadges_ComebackTiers(t *testing.T) {
	got := progression.EvaluateBadges(
		progression.Counters{TotalCheckins: 20},
		progression.DayFacts{NewStreak: 1, MissedDays: 9},
		map[string]bool{"first_checkin": true},
	)
	ids := earnedIDs(got)
	if !ids["comeback_3"] || !ids["comeback_7"] {
		t.Error("a 9-day gap should earn both the 3-day and 7-day comeback tiers")
	}
	if ids["comeback_14"] {
		t.Error("comeback_14 fired on a 9-day gap")
	}
}

func TestBadges_StageTransitions(t *testing.T) {
	got := progression.EvaluateBadges(
		progression.Counters{TotalCheckins: 20},
		progression.DayFacts{
			NewStreak:   21,
			StageBefore: progression.StageBeginner,
			StageAfter:  progression.StageConsistent,
		},
		map[string]bool{"first_checkin": true},
	)
	if !earnedIDs(got)["stage_consistent"] {
		t.Error("stage_consistent did not fire on the beginner->consistent transition")
	}

	noChange := progression.EvaluateBadges(
		progression.Counters{TotalCheckins: 25},
		progression.DayFacts{
			NewStreak:   1,
			StageBefore: progression.StageConsistent,
			StageAfter:  progression.StageConsistent,
		},
		map[string]bool{"first_checkin": true},
	)
	if earnedIDs(noChange)["stage_consistent"] {
		t.Error("stage_consistent fired without a transition")
	}
}

func TestBadges_CatalogIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range progression.Catalog() {
		if seen[b.ID] {
			t.Errorf("duplicate badge id %q", b.ID)
		}
		seen[b.ID] = true
		if b.Predicate == nil {
			t.Errorf("badge %q has no predicate", b.ID)
		}
	}
}

func TestCelebrate(t *testing.T) {
	tests := []struct {
		name      string
		newBadges int
		facts     progression.DayFacts
		want      bool
	}{
		{"new badge", 1, progression.DayFacts{NewStreak: 2}, true},
		{"perfect day", 0, progression.DayFacts{PerfectDay: true, NewStreak: 2}, true},
		{"streak multiple of seven", 0, progression.DayFacts{NewStreak: 14}, true},
		{"plain day", 0, progression.DayFacts{NewStreak: 5}, false},
		{"zero streak never celebrates alone", 0, progression.DayFacts{NewStreak: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := progression.Celebrate(tt.newBadges, tt.facts); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
