package progression_test

import (
	"testing"

	"github.com/steadysteps/steadysteps/models"
	"github.com/steadysteps/steadysteps/progression"
)

func answers(vals ...int) models.NutritionAnswers {
	// 1 = yes, 0 = no, -1 = unanswered
	out := make(models.NutritionAnswers, len(vals))
	for i, v := range vals {
		if v < 0 {
			continue
		}
		b := v == 1
		out[i] = &b
	}
	return out
}

func TestPoints_BaseOnly(t *testing.T) {
	got := progression.Points(false, answers(0, 0, 0), 1)
	if got != 10 {
		t.Errorf("expected 10 base points, got %d", got)
	}
}

func TestPoints_FullDayWithStreak(t *testing.T) {
	// 10 base + 15 activity + 3*5 nutrition + 10 perfect + 5 streak
	got := progression.Points(true, answers(1, 1, 1), 3)
	if got != 55 {
		t.Errorf("expected 55, got %d", got)
	}
}

func TestPoints_StreakBonusBoundary(t *testing.T) {
	tests := []struct {
		streakAfter int
		want        int
	}{
		{1, 10},
		{2, 10},
		{3, 15},
		{4, 15},
	}
	for _, tt := range tests {
		got := progression.Points(false, nil, tt.streakAfter)
		if got != tt.want {
			t.Errorf("streak %d: expected %d, got %d", tt.streakAfter, tt.want, got)
		}
	}
}

func TestPoints_UnansweredNeverCounts(t *testing.T) {
	// Two yes answers, one unanswered: no perfect day, nutrition pays per yes.
	got := progression.Points(true, answers(1, 1, -1), 1)
	want := 10 + 15 + 2*5
	if got != want {
		t.Errorf("expected %d, got %d", want, got)
	}
}

func TestPoints_PartialNutritionNoPerfectBonus(t *testing.T) {
	withPartial := progression.Points(true, answers(1, 1, 0), 1)
	withAll := progression.Points(true, answers(1, 1, 1), 1)
	if withAll-withPartial != progression.NutritionPointsPer+progression.PerfectDayBonus {
		t.Errorf("perfect-day gap wrong: all=%d partial=%d", withAll, withPartial)
	}
}

func TestIsPerfectDay(t *testing.T) {
	tests := []struct {
		name      string
		activity  bool
		nutrition models.NutritionAnswers
		want      bool
	}{
		{"all yes with activity", true, answers(1, 1, 1), true},
		{"no activity", false, answers(1, 1, 1), false},
		{"one no answer", true, answers(1, 0, 1), false},
		{"one unanswered", true, answers(1, 1, -1), false},
		{"empty answers", true, answers(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := progression.IsPerfectDay(tt.activity, tt.nutrition); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
