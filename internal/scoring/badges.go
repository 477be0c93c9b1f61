package scoring

// Badge identifies a threshold-based achievement. Badges are derived from
// aggregate counters on every read and never stored.
type Badge string

const (
	BadgeEarlyBird Badge = "early_bird"
	BadgeChameleon Badge = "chameleon"
	BadgeReliable  Badge = "reliable"
	BadgeIronMan   Badge = "iron_man"
)

type badgeRule struct {
	badge     Badge
	counter   func(Counters) int
	threshold int
}

// badgeRules are independent predicates; the slice order only fixes the order
// of the returned badges, which is a presentation concern.
var badgeRules = []badgeRule{
	{BadgeEarlyBird, func(c Counters) int { return c.EarlyArrivalCount }, 3},
	{BadgeChameleon, func(c Counters) int { return c.DoubleJerseyCount }, 3},
	{BadgeReliable, func(c Counters) int { return c.OnTimeCount }, 3},
	{BadgeIronMan, func(c Counters) int { return c.AttendanceCount }, 5},
}

// EvaluateBadges returns the set of badges earned for the given counters.
// An all-zero counter set yields an empty (non-nil) set, which callers render
// as an explicit "no badges yet" state.
func EvaluateBadges(c Counters) []Badge {
	badges := make([]Badge, 0, len(badgeRules))
	for _, rule := range badgeRules {
		if rule.counter(c) >= rule.threshold {
			badges = append(badges, rule.badge)
		}
	}
	return badges
}
