package progression

// Level is one row of the static level table. Ranges are inclusive on both
// ends; the top level has MaxPoints = -1 meaning unbounded.
type Level struct {
	Level     int
	Name      string
	MinPoints int
	MaxPoints int
}

// Levels is the ordered, non-overlapping 10-level table. Every total falls in
// exactly one range.
var Levels = []Level{
	{Level: 1, Name: "First Steps", MinPoints: 0, MaxPoints: 100},
	{Level: 2, Name: "Momentum", MinPoints: 101, MaxPoints: 250},
	{Level: 3, Name: "Pathfinder", MinPoints: 251, MaxPoints: 450},
	{Level: 4, Name: "Builder", MinPoints: 451, MaxPoints: 700},
	{Level: 5, Name: "Steady", MinPoints: 701, MaxPoints: 1000},
	{Level: 6, Name: "Committed", MinPoints: 1001, MaxPoints: 1400},
	{Level: 7, Name: "Resilient", MinPoints: 1401, MaxPoints: 1900},
	{Level: 8, Name: "Strong", MinPoints: 1901, MaxPoints: 2500},
	{Level: 9, Name: "Thriving", MinPoints: 2501, MaxPoints: 3200},
	{Level: 10, Name: "Unstoppable", MinPoints: 3201, MaxPoints: -1},
}

// LevelInfo is the derived level view returned to clients.
type LevelInfo struct {
	Level    int     `json:"level"`
	Name     string  `json:"name"`
	Progress float64 `json:"progress"` // 0-100 toward the next level
}

// DeriveLevel looks up the level for a point total. Progress is 100 at the
// top level, otherwise the fraction of the way from this level's floor to the
// next level's floor.
func DeriveLevel(totalPoints int) LevelInfo {
	if totalPoints < 0 {
		totalPoints = 0
	}
	for i, row := range Levels {
		if totalPoints < row.MinPoints {
			continue
		}
		if row.MaxPoints >= 0 && totalPoints > row.MaxPoints {
			continue
		}
		info := LevelInfo{Level: row.Level, Name: row.Name}
		if i == len(Levels)-1 {
			info.Progress = 100
			return info
		}
		span := Levels[i+1].MinPoints - row.MinPoints
		info.Progress = float64(totalPoints-row.MinPoints) / float64(span) * 100
		return info
	}
	// Unreachable with a well-formed table; fall back to the floor.
	return LevelInfo{Level: Levels[0].Level, Name: Levels[0].Name}
}
