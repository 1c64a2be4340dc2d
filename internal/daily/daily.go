// Package daily maps wall-clock time to puzzle day indices and derives each
// day's target indices.
package daily

import "time"

const (
	msPerDay = 86400000

	// Epoch is the number of whole days between the Unix epoch and day 0
	// (2022-03-06 UTC). Saved histories are keyed relative to it.
	Epoch = 19057

	// SeedStride spaces the seeds of consecutive days.
	SeedStride = 10

	// TargetsPerDay is the length of every daily sequence.
	TargetsPerDay = 10
)

// IndexAt returns the day index containing t: floor(unixMillis / 86400000) - Epoch.
func IndexAt(t time.Time) int {
	ms := t.UnixMilli()
	d := ms / msPerDay
	if ms%msPerDay < 0 {
		d--
	}
	return int(d) - Epoch
}

// Today returns the day index for the current time.
func Today() int { return IndexAt(time.Now()) }

// Date returns midnight UTC of the given day index.
func Date(day int) time.Time {
	return time.UnixMilli(int64(day+Epoch) * msPerDay).UTC()
}

// DateKey returns YYYY-MM-DD in UTC for a day index.
func DateKey(day int) string {
	return Date(day).Format("2006-01-02")
}

// Seed is the generator seed for a day.
func Seed(day int) int { return day * SeedStride }

// Indices returns the day's target-pool indices.
func Indices(day, poolSize int) []int {
	return Generate(Seed(day), TargetsPerDay, poolSize)
}
