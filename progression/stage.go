package progression

// Stage is the coarse journey classification, driven by total check-ins.
type Stage string

const (
	StageBeginner   Stage = "beginner"
	StageConsistent Stage = "consistent"
	StageConfident  Stage = "confident"
)

// Stage transition thresholds in total check-ins. The habit library unlocks
// with the consistent stage.
const (
	ConsistentAtCheckins = 21
	ConfidentAtCheckins  = 90
)

// StageFor classifies a total check-in count into a stage.
func StageFor(totalCheckins int) Stage {
	switch {
	case totalCheckins >= ConfidentAtCheckins:
		return StageConfident
	case totalCheckins >= ConsistentAtCheckins:
		return StageConsistent
	default:
		return StageBeginner
	}
}
