package nudge

// Not-Behind mode is a hysteresis filter over the 7-day window. The boundary
// operators are load-bearing: strict < and > on activation, >= and < on
// deactivation. Off-by-one changes alter behavior at exactly 3 check-ins or
// streak 0.
const (
	notBehindMinCheckins       = 3
	notBehindStressSamples     = 3
	notBehindStressMean        = 3.5
	notBehindZeroStreakMax     = 2
	notBehindRecoverCheckins   = 4
	notBehindRecoverStressMean = 3.0
)

// EvaluateNotBehind returns whether Not-Behind mode should be active given
// the 7-day window and the current streak. Deactivation overrides activation
// when both hold.
func EvaluateNotBehind(window []Day, currentStreak int) bool {
	completed := completedCount(window)
	stress := allStressSamples(window)

	activate := completed < notBehindMinCheckins ||
		(len(stress) >= notBehindStressSamples && mean(stress) > notBehindStressMean) ||
		(currentStreak == 0 && completed < notBehindZeroStreakMax)

	deactivate := completed >= notBehindRecoverCheckins &&
		len(stress) > 0 && mean(stress) < notBehindRecoverStressMean

	return activate && !deactivate
}

// allStressSamples collects every non-nil stress value in the window, unlike
// the nudge trend which caps at the three most recent.
func allStressSamples(window []Day) []int {
	var out []int
	for _, d := range window {
		if d.Stress != nil {
			out = append(out, *d.Stress)
		}
	}
	return out
}
