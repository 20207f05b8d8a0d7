package progression

import "time"

// DateLayout is the calendar-day key used for check-ins throughout the service.
const DateLayout = "2006-01-02"

// NextStreak returns the streak length after checking in on today, given the
// previous check-in date (empty string = never checked in) and the current
// streak. A check-in on the same day leaves the streak unchanged; the day
// after extends it; any longer gap resets to 1.
func NextStreak(lastDate, today string, current int) int {
	if lastDate == "" {
		return 1
	}
	if lastDate == today {
		if current < 1 {
			return 1
		}
		return current
	}
	if yesterdayOf(today) == lastDate {
		return current + 1
	}
	return 1
}

// MissedDays returns the number of whole days skipped between the previous
// check-in and today: 0 for consecutive days, first-ever check-ins, or
// unparseable dates.
func MissedDays(lastDate, today string) int {
	if lastDate == "" {
		return 0
	}
	last, err := time.Parse(DateLayout, lastDate)
	if err != nil {
		return 0
	}
	now, err := time.Parse(DateLayout, today)
	if err != nil {
		return 0
	}
	gap := int(now.Sub(last).Hours()/24) - 1
	if gap < 0 {
		return 0
	}
	return gap
}

func yesterdayOf(today string) string {
	t, err := time.Parse(DateLayout, today)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(DateLayout)
}
