package progression_test

import (
	"testing"

	"github.com/steadysteps/steadysteps/progression"
)

func TestDeriveLevel_Boundaries(t *testing.T) {
	tests := []struct {
		points int
		level  int
	}{
		{0, 1},
		{100, 1},
		{101, 2},
		{250, 2},
		{251, 3},
		{3200, 9},
		{3201, 10},
		{999999, 10},
	}
	for _, tt := range tests {
		got := progression.DeriveLevel(tt.points)
		if got.Level != tt.level {
			t.Errorf("%d points: expected level %d, got %d", tt.points, tt.level, got.Level)
		}
	}
}

func TestDeriveLevel_TableIsContiguous(t *testing.T) {
	for i := 1; i < len(progression.Levels); i++ {
		prev := progression.Levels[i-1]
		cur := progression.Levels[i]
		if cur.MinPoints != prev.MaxPoints+1 {
			t.Errorf("gap between level %d and %d: max=%d min=%d", prev.Level, cur.Level, prev.MaxPoints, cur.MinPoints)
		}
	}
	top := progression.Levels[len(progression.Levels)-1]
	if top.MaxPoints != -1 {
		t.Errorf("top level should be unbounded, got max=%d", top.MaxPoints)
	}
}

func TestDeriveLevel_Progress(t *testing.T) {
	floor := progression.DeriveLevel(0)
	if floor.Progress != 0 {
		t.Errorf("expected 0%% at level floor, got %.1f", floor.Progress)
	}

	mid := progression.DeriveLevel(50)
	if mid.Progress <= 0 || mid.Progress >= 100 {
		t.Errorf("expected progress strictly between 0 and 100, got %.1f", mid.Progress)
	}

	top := progression.DeriveLevel(5000)
	if top.Progress != 100 {
		t.Errorf("expected 100%% at top level, got %.1f", top.Progress)
	}
}

func TestDeriveLevel_NegativeClampsToFloor(t *testing.T) {
	got := progression.DeriveLevel(-10)
	if got.Level != 1 || got.Progress != 0 {
		t.Errorf("expected level 1 at 0%%, got level %d at %.1f%%", got.Level, got.Progress)
	}
}
