package cost_test

import (
	"sitepro/internal/domains/rental/cost"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimated(t *testing.T) {
	tests := []struct {
		rate float64
		days int
		want float64
	}{
		{rate: 1000, days: 5, want: 5000},
		{rate: 1000, days: 1, want: 1000},
		{rate: 750.5, days: 4, want: 3002},
		{rate: 0, days: 10, want: 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, cost.Estimated(tt.rate, tt.days), 1e-9)
	}
}

func TestElapsedDays(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{name: "exactly three days", now: start.Add(72 * time.Hour), want: 3},
		{name: "a minute into day four", now: start.Add(72*time.Hour + time.Minute), want: 4},
		{name: "same instant", now: start, want: 0},
		{name: "one hour", now: start.Add(time.Hour), want: 1},
		{name: "clock skew", now: start.Add(-time.Hour), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cost.ElapsedDays(start, tt.now))
		})
	}
}

func TestActual(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	got := cost.Actual(1000, &start, start.Add(72*time.Hour))
	require.NotNil(t, got)
	assert.InDelta(t, 3000.0, *got, 1e-9)

	assert.Nil(t, cost.Actual(1000, nil, start))
}
