// Package cost turns rates and durations into rental amounts.
package cost

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// Estimated is the amount agreed up front for a rental of days days.
func Estimated(rate float64, days int) float64 {
	return rate * float64(days)
}

// ElapsedDays counts started calendar days between start and now. Any part of a day counts
// as a whole one and a start in the future yields zero.
func ElapsedDays(start, now time.Time) int {
	elapsed := now.Sub(start)
	if elapsed <= 0 {
		return 0
	}

	return int(math.Ceil(float64(elapsed) / float64(day)))
}

// Actual bills rate for every elapsed day since start. It is nil while the rental never started.
func Actual(rate float64, start *time.Time, now time.Time) *float64 {
	if start == nil {
		return nil
	}

	amount := rate * float64(ElapsedDays(*start, now))

	return &amount
}
