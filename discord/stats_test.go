package discord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateStatisticsDeterministicMemberCount(t *testing.T) {
	// Wednesday, mid-month: sin(15/30·π) = 1, so base 78 + 3.
	now := time.Date(2025, 1, 15, 15, 0, 0, 0, time.UTC)

	first, _ := generateStatistics(now)
	second, _ := generateStatistics(now)

	assert.Equal(t, 81, first)
	assert.Equal(t, first, second)
}

func TestGenerateStatisticsOnlineBounds(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		base int
	}{
		{"weekday peak", time.Date(2025, 1, 15, 15, 0, 0, 0, time.UTC), 81 * 15 / 100},
		{"weekend daytime", time.Date(2025, 1, 18, 15, 0, 0, 0, time.UTC), 80 * 12 / 100},
		{"off hours", time.Date(2025, 1, 15, 3, 0, 0, 0, time.UTC), 81 * 5 / 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				_, online := generateStatistics(tc.now)
				assert.GreaterOrEqual(t, online, 1)
				assert.LessOrEqual(t, online, tc.base+3)
			}
		})
	}
}
