package scoring_test

import (
	"testing"

	"github.com/askelund/huddle/internal/scoring"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateBadges_Empty(t *testing.T) {
	badges := scoring.EvaluateBadges(scoring.Counters{})
	assert.NotNil(t, badges)
	assert.Empty(t, badges)
}

func TestEvaluateBadges_Thresholds(t *testing.T) {
	tests := []struct {
		name     string
		counters scoring.Counters
		want     []scoring.Badge
	}{
		{
			name:     "early bird at threshold",
			counters: scoring.Counters{EarlyArrivalCount: 3},
			want:     []scoring.Badge{scoring.BadgeEarlyBird},
		},
		{
			name:     "early bird just below threshold",
			counters: scoring.Counters{EarlyArrivalCount: 2},
			want:     []scoring.Badge{},
		},
		{
			name:     "chameleon",
			counters: scoring.Counters{DoubleJerseyCount: 4},
			want:     []scoring.Badge{scoring.BadgeChameleon},
		},
		{
			name:     "reliable",
			counters: scoring.Counters{OnTimeCount: 3},
			want:     []scoring.Badge{scoring.BadgeReliable},
		},
		{
			name:     "iron man needs five",
			counters: scoring.Counters{AttendanceCount: 4},
			want:     []scoring.Badge{},
		},
		{
			name:     "iron man at five",
			counters: scoring.Counters{AttendanceCount: 5},
			want:     []scoring.Badge{scoring.BadgeIronMan},
		},
		{
			name:     "multiple badges at once",
			counters: scoring.Counters{AttendanceCount: 5, EarlyArrivalCount: 3},
			want:     []scoring.Badge{scoring.BadgeEarlyBird, scoring.BadgeIronMan},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoring.EvaluateBadges(tt.counters))
		})
	}
}

func TestEvaluateBadges_Monotonic(t *testing.T) {
	// Once a counter is at or past its threshold, increasing it never loses
	// the badge, and crossing a threshold gains exactly that badge.
	base := scoring.Counters{EarlyArrivalCount: 3, AttendanceCount: 3}
	withBadge := scoring.EvaluateBadges(base)
	assert.Contains(t, withBadge, scoring.BadgeEarlyBird)

	grown := base
	grown.EarlyArrivalCount++
	assert.Contains(t, scoring.EvaluateBadges(grown), scoring.BadgeEarlyBird)

	crossed := base
	crossed.AttendanceCount = 5
	before := scoring.EvaluateBadges(base)
	after := scoring.EvaluateBadges(crossed)
	assert.Equal(t, len(before)+1, len(after))
	assert.Contains(t, after, scoring.BadgeIronMan)
	assert.NotContains(t, before, scoring.BadgeIronMan)
}
