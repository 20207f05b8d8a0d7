// Package nudge evaluates supportive messaging rules over a trailing window
// of daily check-ins. The engine is read-only: it never persists anything and
// re-evaluates from scratch on every call.
package nudge

import (
	"math/rand"
	"time"
)

// Day is one check-in day inside the evaluation window, newest first.
type Day struct {
	Date      string // "YYYY-MM-DD"
	Completed bool
	Stress    *int // 1-5, nil when the wellness flow was skipped
	Sleep     *int // 1-5
}

// Rule identifies which nudge rule fired.
type Rule string

const (
	RuleMissedDays    Rule = "missed_days"
	RuleHighStress    Rule = "high_stress"
	RuleLowSleep      Rule = "low_sleep"
	RuleConsistency   Rule = "consistency"
	RuleEncouragement Rule = "encouragement"
)

// Tone classifies the message register for the UI.
type Tone string

const (
	ToneGentle      Tone = "gentle"
	ToneSupportive  Tone = "supportive"
	ToneCelebratory Tone = "celebratory"
)

// Message is the selected nudge.
type Message struct {
	Rule Rule   `json:"rule"`
	Tone Tone   `json:"tone"`
	Text string `json:"text"`
}

// Thresholds for the rule chain.
const (
	stressHighMean   = 3.5
	sleepLowMean     = 2.5
	minTrendSamples  = 2
	trendWindow      = 3
	consistencyCount = 5
)

var messages = map[Rule][]string{
	RuleMissedDays: {
		"A day off is not a setback. Today is a fresh page.",
		"No pressure. One small check-in is all it takes to restart.",
		"Life happens. Your habits are still here waiting for you.",
	},
	RuleHighStress: {
		"Stress has been high lately. Be kind to yourself today.",
		"Tough stretch. Even a five minute walk can take the edge off.",
		"You are carrying a lot right now. Small steps still count double.",
	},
	RuleLowSleep: {
		"Sleep has been short. Consider winding down a little earlier tonight.",
		"Rest is part of the work. An early night is a win too.",
		"Running low on sleep? Go easy on yourself and aim for recovery.",
	},
	RuleConsistency: {
		"Five check-ins this week. That is real consistency!",
		"You keep showing up, and it shows. Great week so far.",
		"Look at that rhythm. Your streak is building something lasting.",
	},
	RuleEncouragement: {
		"Every check-in is a vote for the person you are becoming.",
		"Small steps, steady progress. You are doing fine.",
		"Showing up today matters more than being perfect.",
	},
}

// Engine selects one prioritized message per evaluation. The random source is
// injected so tests can seed it; pass nil for a time-seeded source.
type Engine struct {
	rng *rand.Rand
}

// NewEngine creates a nudge engine with the given random source.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng}
}

// Evaluate runs the strict priority chain over the window: missed days, high
// stress, low sleep, consistency, then the default encouragement. The first
// matching rule wins; a rule with too few samples simply does not fire.
func (e *Engine) Evaluate(window []Day, today string) Message {
	switch {
	case missedRecentDays(window, today):
		return e.pick(RuleMissedDays, ToneGentle)
	case trendExceeds(stressSamples(window), stressHighMean):
		return e.pick(RuleHighStress, ToneSupportive)
	case trendBelow(sleepSamples(window), sleepLowMean):
		return e.pick(RuleLowSleep, ToneSupportive)
	case completedCount(window) >= consistencyCount:
		return e.pick(RuleConsistency, ToneCelebratory)
	default:
		return e.pick(RuleEncouragement, ToneGentle)
	}
}

func (e *Engine) pick(rule Rule, tone Tone) Message {
	set := messages[rule]
	return Message{Rule: rule, Tone: tone, Text: set[e.rng.Intn(len(set))]}
}

// missedRecentDays reports whether neither today nor yesterday has a
// completed check-in in the window.
func missedRecentDays(window []Day, today string) bool {
	yesterday := ""
	if t, err := time.Parse("2006-01-02", today); err == nil {
		yesterday = t.AddDate(0, 0, -1).Format("2006-01-02")
	}
	for _, d := range window {
		if d.Completed && (d.Date == today || d.Date == yesterday) {
			return false
		}
	}
	return true
}

// stressSamples returns up to trendWindow most recent non-nil stress values.
func stressSamples(window []Day) []int {
	var out []int
	for _, d := range window {
		if d.Stress == nil {
			continue
		}
		out = append(out, *d.Stress)
		if len(out) == trendWindow {
			break
		}
	}
	return out
}

func sleepSamples(window []Day) []int {
	var out []int
	for _, d := range window {
		if d.Sleep == nil {
			continue
		}
		out = append(out, *d.Sleep)
		if len(out) == trendWindow {
			break
		}
	}
	return out
}

func trendExceeds(samples []int, threshold float64) bool {
	if len(samples) < minTrendSamples {
		return false
	}
	return mean(samples) > threshold
}

func trendBelow(samples []int, threshold float64) bool {
	if len(samples) < minTrendSamples {
		return false
	}
	return mean(samples) < threshold
}

func completedCount(window []Day) int {
	count := 0
	for _, d := range window {
		if d.Completed {
			count++
		}
	}
	return count
}

func mean(samples []int) float64 {
	sum := 0
	for _, s := range samples {
		sum += s
	}
	return float64(sum) / float64(len(samples))
}
