package scoring

// Record is the per-player, per-event attendance input to the scoring rules.
type Record struct {
	IsPresent       bool
	IsEarly         bool
	IsOnTime        bool
	HasDoubleJersey bool
}

// Counters holds a player's aggregate attendance counters, accumulated over the
// player's present records only.
type Counters struct {
	AttendanceCount   int
	EarlyArrivalCount int
	OnTimeCount       int
	DoubleJerseyCount int
}

// Point values per record.
const (
	basePoints         = 1
	earlyBonus         = 2
	onTimeBonus        = 1
	doubleJerseyBonus  = 1
	MaxPointsPerRecord = basePoints + earlyBonus + onTimeBonus + doubleJerseyBonus
)

// Score returns the point value for a single attendance record.
// An absent record scores 0 regardless of the bonus flags; clients have been
// observed persisting bonus flags without presence, so the guard lives here
// rather than in the data model.
func Score(r Record) int {
	if !r.IsPresent {
		return 0
	}
	points := basePoints
	if r.IsEarly {
		points += earlyBonus
	}
	if r.IsOnTime {
		points += onTimeBonus
	}
	if r.HasDoubleJersey {
		points += doubleJerseyBonus
	}
	return points
}

// TotalPoints returns the points implied by a set of aggregate counters. It is
// equivalent to summing Score over the underlying present records.
func TotalPoints(c Counters) int {
	return c.AttendanceCount*basePoints +
		c.EarlyArrivalCount*earlyBonus +
		c.OnTimeCount*onTimeBonus +
		c.DoubleJerseyCount*doubleJerseyBonus
}
