package progression

// Badge categories.
const (
	CatConsistency = "consistency"
	CatActivity    = "activity"
	CatNutrition   = "nutrition"
	CatMilestone   = "milestone"
	CatComeback    = "comeback"
)

// Counters is the profile counter snapshot taken BEFORE today's check-in is
// applied. Predicates fire on strict thresholds against this snapshot so each
// badge can only trigger on the exact check-in that crosses its line.
type Counters struct {
	TotalCheckins            int
	TotalActivityCompletions int
	TotalNutritionHabits     int
	TotalPerfectDays         int
}

// DayFacts are the facts of today's check-in.
type DayFacts struct {
	ActivityCompleted bool
	NutritionYes      int // answers strictly true today
	PerfectDay        bool
	NewStreak         int // streak including today
	MoodProvided      bool
	MissedDays        int // whole days skipped since the previous check-in
	StageBefore       Stage
	StageAfter        Stage
}

// Badge is one catalog entry with a stat-based unlock predicate.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`

	Predicate func(c Counters, d DayFacts) bool `json:"-"`
}

// Catalog returns the full badge catalog. Evaluation order is catalog order.
func Catalog() []Badge {
	return []Badge{
		// Consistency
		{
			ID: "first_checkin", Name: "First Check-in", Category: CatConsistency,
			Description: "Completed your very first daily check-in.",
			Predicate:   func(c Counters, d DayFacts) bool { return c.TotalCheckins == 0 },
		},
		{
			ID: "one_week", Name: "One Week Strong", Category: CatConsistency,
			Description: "Checked in 7 days in a row.",
			Predicate:   func(c Counters, d DayFacts) bool { return d.NewStreak == 7 },
		},
		{
			ID: "two_weeks", Name: "Two Week Streak", Category: CatConsistency,
			Description: "Checked in 14 days in a row.",
			Predicate:   func(c Counters, d DayFacts) bool { return d.NewStreak == 14 },
		},
		{
			ID: "one_month", Name: "Monthly Habit", Category: CatConsistency,
			Description: "Checked in 30 days in a row.",
			Predicate:   func(c Counters, d DayFacts) bool { return d.NewStreak == 30 },
		},
		{
			ID: "fifty_days", Name: "Fifty & Flying", Category: CatConsistency,
			Description: "Checked in 50 days in a row.",
			Predicate:   func(c Counters, d DayFacts) bool { return d.NewStreak == 50 },
		},
		{
			ID: "hundred_days", Name: "Century Club", Category: CatConsistency,
			Description: "Checked in 100 days in a row.",
			Predicate:   func(c Counters, d DayFacts) bool { return d.NewStreak == 100 },
		},

		// Activity
		{
			ID: "first_activity", Name: "First Move", Category: CatActivity,
			Description: "Completed your first activity.",
			Predicate: func(c Counters, d DayFacts) bool {
				return d.ActivityCompleted && c.TotalActivityCompletions == 0
			},
		},
		{
			ID: "active_10", Name: "Ten Times Active", Category: CatActivity,
			Description: "Completed 10 activities.",
			Predicate:   activityMilestone(10),
		},
		{
			ID: "active_25", Name: "Quarter Century", Category: CatActivity,
			Description: "Completed 25 activities.",
			Predicate:   activityMilestone(25),
		},
		{
			ID: "active_50", Name: "Fifty Workouts", Category: CatActivity,
			Description: "Completed 50 activities.",
			Predicate:   activityMilestone(50),
		},
		{
			ID: "active_100", Name: "Hundred Workouts", Category: CatActivity,
			Description: "Completed 100 activities.",
			Predicate:   activityMilestone(100),
		},

		// Nutrition
		{
			ID: "mindful_start", Name: "Mindful Start", Category: CatNutrition,
			Description: "Answered yes to a nutrition habit for the first time.",
			Predicate: func(c Counters, d DayFacts) bool {
				return d.NutritionYes > 0 && c.TotalNutritionHabits == 0
			},
		},
		{
			ID: "nourish_30", Name: "Nourished", Category: CatNutrition,
			Description: "Completed 30 nutrition habits.",
			Predicate:   nutritionMilestone(30),
		},
		{
			ID: "nourish_100", Name: "Deeply Nourished", Category: CatNutrition,
			Description: "Completed 100 nutrition habits.",
			Predicate:   nutritionMilestone(100),
		},

		// Milestones
		{
			ID: "perfect_start", Name: "Perfect Start", Category: CatMilestone,
			Description: "Your first perfect day: activity plus every nutrition habit.",
			Predicate: func(c Counters, d DayFacts) bool {
				return d.PerfectDay && c.TotalPerfectDays == 0
			},
		},
		{
			ID: "mood_starter", Name: "Mood Tracker", Category: CatMilestone,
			Description: "Shared how you were feeling.",
			Predicate:   func(c Counters, d DayFacts) bool { return d.MoodProvided },
		},
		{
			ID: "stage_consistent", Name: "Finding Rhythm", Category: CatMilestone,
			Description: "Reached the consistent stage.",
			Predicate: func(c Counters, d DayFacts) bool {
				return d.StageBefore == StageBeginner && d.StageAfter == StageConsistent
			},
		},
		{
			ID: "stage_confident", Name: "Full Confidence", Category: CatMilestone,
			Description: "Reached the confident stage.",
			Predicate: func(c Counters, d DayFacts) bool {
				return d.StageBefore != StageConfident && d.StageAfter == StageConfident
			},
		},

		// Comebacks — largest matching tier fires; smaller tiers are earned too
		// on a long enough gap, once each over an account's lifetime.
		{
			ID: "comeback_3", Name: "Back on Track", Category: CatComeback,
			Description: "Returned after 3 or more days away.",
			Predicate:   func(c Counters, d DayFacts) bool { return d.MissedDays >= 3 },
		},
		{
			ID: "comeback_7", Name: "Welcome Back", Category: CatComeback,
			Description: "Returned after a week or more away.",
			Predicate:   func(c Counters, d DayFacts) bool { return d.MissedDays >= 7 },
		},
		{
			ID: "comeback_14", Name: "The Return", Category: CatComeback,
			Description: "Returned after two weeks or more away.",
			Predicate:   func(c Counters, d DayFacts) bool { return d.MissedDays >= 14 },
		},
	}
}

// activityMilestone fires exactly when today's activity lands the total on n.
func activityMilestone(n int) func(Counters, DayFacts) bool {
	return func(c Counters, d DayFacts) bool {
		return d.ActivityCompleted && c.TotalActivityCompletions+1 == n
	}
}

// nutritionMilestone fires when today's yes answers cross the total over n.
// A multi-yes day can jump past the exact value, so crossing counts once.
func nutritionMilestone(n int) func(Counters, DayFacts) bool {
	return func(c Counters, d DayFacts) bool {
		return d.NutritionYes > 0 && c.TotalNutritionHabits < n && c.TotalNutritionHabits+d.NutritionYes >= n
	}
}

// EvaluateBadges runs the catalog against today's check-in and returns the
// newly earned badges. Already-earned IDs are skipped, so re-evaluation is a
// no-op (one-way unlock).
func EvaluateBadges(c Counters, d DayFacts, earned map[string]bool) []Badge {
	var newly []Badge
	for _, b := range Catalog() {
		if earned[b.ID] {
			continue
		}
		if b.Predicate != nil && b.Predicate(c, d) {
			newly = append(newly, b)
		}
	}
	return newly
}

// Celebrate reports whether the UI should fire a celebration: any new badge,
// a perfect day, or a streak hitting a multiple of seven.
func Celebrate(newBadges int, d DayFacts) bool {
	if newBadges >= 1 || d.PerfectDay {
		return true
	}
	return d.NewStreak > 0 && d.NewStreak%7 == 0
}
