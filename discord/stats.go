package discord

import (
	"math"
	"math/rand"
	"time"
)

// Synthetic statistics, used when no authoritative count is obtainable.
// These are a presentation heuristic: plausible, slowly-varying numbers
// instead of a zero. ServerInfo.StatsEstimated marks any snapshot built from
// them so nothing downstream mistakes an estimate for a measurement.

const baseMemberCount = 78

// generateStatistics derives member/online counts from the given instant.
// The member count is fully deterministic for a fixed clock; the online
// count carries a bounded ±3 jitter and is floored at 1.
func generateStatistics(now time.Time) (memberCount, onlineCount int) {
	day := now.Day()
	hour := now.Hour()
	weekday := now.Weekday()

	memberCount = baseMemberCount + int(math.Sin(float64(day)/30*math.Pi)*3)

	var base int
	switch {
	case hour >= 10 && hour <= 22 && weekday >= time.Monday && weekday <= time.Friday:
		base = memberCount * 15 / 100 // peak weekday hours
	case hour >= 10 && hour <= 22:
		base = memberCount * 12 / 100 // weekend daytime
	default:
		base = memberCount * 5 / 100 // late night / early morning
	}

	onlineCount = base + rand.Intn(7) - 3
	if onlineCount < 1 {
		onlineCount = 1
	}
	return memberCount, onlineCount
}
