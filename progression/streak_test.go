package progression_test

import (
	"testing"

	"github.com/steadysteps/steadysteps/progression"
)

func TestNextStreak(t *testing.T) {
	tests := []struct {
		name     string
		lastDate string
		today    string
		current  int
		want     int
	}{
		{"first ever check-in", "", "2026-03-10", 0, 1},
		{"same day resubmission", "2026-03-10", "2026-03-10", 5, 5},
		{"consecutive day", "2026-03-09", "2026-03-10", 5, 6},
		{"one day gap resets", "2026-03-08", "2026-03-10", 5, 1},
		{"long gap resets", "2026-01-01", "2026-03-10", 40, 1},
		{"consecutive across month", "2026-02-28", "2026-03-01", 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := progression.NextStreak(tt.lastDate, tt.today, tt.current)
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestMissedDays(t *testing.T) {
	tests := []struct {
		name     string
		lastDate string
		today    string
		want     int
	}{
		{"first check-in", "", "2026-03-10", 0},
		{"consecutive", "2026-03-09", "2026-03-10", 0},
		{"one day skipped", "2026-03-08", "2026-03-10", 1},
		{"week away", "2026-03-01", "2026-03-10", 8},
		{"same day", "2026-03-10", "2026-03-10", 0},
		{"bad date ignored", "not-a-date", "2026-03-10", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := progression.MissedDays(tt.lastDate, tt.today)
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestStageFor(t *testing.T) {
	tests := []struct {
		checkins int
		want     progression.Stage
	}{
		{0, progression.StageBeginner},
		{20, progression.StageBeginner},
		{21, progression.StageConsistent},
		{89, progression.StageConsistent},
		{90, progression.StageConfident},
		{500, progression.StageConfident},
	}
	for _, tt := range tests {
		if got := progression.StageFor(tt.checkins); got != tt.want {
			t.Errorf("%d check-ins: expected %s, got %s", tt.checkins, tt.want, got)
		}
	}
}
