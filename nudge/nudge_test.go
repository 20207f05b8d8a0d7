package nudge_test

import (
	"math/rand"
	"testing"

	"github.com/steadysteps/steadysteps/nudge"
)

func intp(v int) *int { return &v }

func testEngine() *nudge.Engine {
	return nudge.NewEngine(rand.New(rand.NewSource(42)))
}

// week builds a window of consecutive completed days ending yesterday,
// newest first.
func week(completed int) []nudge.Day {
	dates := []string{
		"2026-03-09", "2026-03-08", "2026-03-07", "2026-03-06",
		"2026-03-05", "2026-03-04", "2026-03-03",
	}
	out := make([]nudge.Day, 0, completed)
	for i := 0; i < completed && i < len(dates); i++ {
		out = append(out, nudge.Day{Date: dates[i], Completed: true})
	}
	return out
}

const today = "2026-03-10"

func TestEvaluate_DefaultEncouragement(t *testing.T) {
	got := testEngine().Evaluate(week(2), today)
	if got.Rule != nudge.RuleEncouragement {
		t.Errorf("expected encouragement, got %s", got.Rule)
	}
	if got.Text == "" {
		t.Error("message text is empty")
	}
}

func TestEvaluate_MissedDays(t *testing.T) {
	// Last completed check-in three days ago.
	window := []nudge.Day{
		{Date: "2026-03-07", Completed: true},
		{Date: "2026-03-06", Completed: true},
	}
	got := testEngine().Evaluate(window, today)
	if got.Rule != nudge.RuleMissedDays {
		t.Errorf("expected missed_days, got %s", got.Rule)
	}
	if got.Tone != nudge.ToneGentle {
		t.Errorf("expected gentle tone, got %s", got.Tone)
	}
}

func TestEvaluate_MissedDaysPreemptsHighStress(t *testing.T) {
	window := []nudge.Day{
		{Date: "2026-03-07", Completed: true, Stress: intp(5)},
		{Date: "2026-03-06", Completed: true, Stress: intp(5)},
		{Date: "2026-03-05", Completed: true, Stress: intp(5)},
	}
	got := testEngine().Evaluate(window, today)
	if got.Rule != nudge.RuleMissedDays {
		t.Errorf("missed_days should preempt high_stress, got %s", got.Rule)
	}
}

func TestEvaluate_HighStress(t *testing.T) {
	window := week(3)
	window[0].Stress = intp(5)
	window[1].Stress = intp(4)
	got := testEngine().Evaluate(window, today)
	if got.Rule != nudge.RuleHighStress {
		t.Errorf("expected high_stress, got %s", got.Rule)
	}
}

func TestEvaluate_HighStressNeedsTwoSamples(t *testing.T) {
	window := week(3)
	window[0].Stress = intp(5)
	got := testEngine().Evaluate(window, today)
	if got.Rule == nudge.RuleHighStress {
		t.Error("high_stress fired from a single sample")
	}
}

func TestEvaluate_StressMeanBoundaryIsStrict(t *testing.T) {
	// Mean exactly 3.5 must not fire.
	window := week(3)
	window[0].Stress = intp(3)
	window[1].Stress = intp(4)
	got := testEngine().Evaluate(window, today)
	if got.Rule == nudge.RuleHighStress {
		t.Error("high_stress fired at mean exactly 3.5")
	}
}

func TestEvaluate_StressTrendUsesThreeMostRecent(t *testing.T) {
	// Old high readings beyond the three most recent must be ignored.
	window := week(5)
	window[0].Stress = intp(1)
	window[1].Stress = intp(1)
	window[2].Stress = intp(1)
	window[3].Stress = intp(5)
	window[4].Stress = intp(5)
	got := testEngine().Evaluate(window, today)
	if got.Rule == nudge.RuleHighStress {
		t.Error("high_stress fired on samples outside the recent trend window")
	}
}

func TestEvaluate_LowSleep(t *testing.T) {
	window := week(3)
	window[0].Sleep = intp(2)
	window[1].Sleep = intp(2)
	got := testEngine().Evaluate(window, today)
	if got.Rule != nudge.RuleLowSleep {
		t.Errorf("expected low_sleep, got %s", got.Rule)
	}
}

func TestEvaluate_HighStressPreemptsLowSleep(t *testing.T) {
	window := week(3)
	window[0].Stress = intp(5)
	window[1].Stress = intp(5)
	window[0].Sleep = intp(1)
	window[1].Sleep = intp(1)
	got := testEngine().Evaluate(window, today)
	if got.Rule != nudge.RuleHighStress {
		t.Errorf("high_stress should preempt low_sleep, got %s", got.Rule)
	}
}

func TestEvaluate_Consistency(t *testing.T) {
	got := testEngine().Evaluate(week(5), today)
	if got.Rule != nudge.RuleConsistency {
		t.Errorf("expected consistency at 5 completed days, got %s", got.Rule)
	}
	if got.Tone != nudge.ToneCelebratory {
		t.Errorf("expected celebratory tone, got %s", got.Tone)
	}

	got = testEngine().Evaluate(week(4), today)
	if got.Rule == nudge.RuleConsistency {
		t.Error("consistency fired at 4 completed days")
	}
}

func TestEvaluate_SeededSelectionIsDeterministic(t *testing.T) {
	a := nudge.NewEngine(rand.New(rand.NewSource(7))).Evaluate(week(2), today)
	b := nudge.NewEngine(rand.New(rand.NewSource(7))).Evaluate(week(2), today)
	if a.Text != b.Text {
		t.Errorf("same seed picked different messages: %q vs %q", a.Text, b.Text)
	}
}

func TestEvaluate_EmptyWindowFallsToMissedDays(t *testing.T) {
	got := testEngine().Evaluate(nil, today)
	if got.Rule != nudge.RuleMissedDays {
		t.Errorf("expected missed_days on empty window, got %s", got.Rule)
	}
}
