package todo

import "math"

type Stats struct {
	Total     int
	Completed int
	Pending   int
}

// Percent is round(100 * completed / total), or 0 for an empty store.
func (s Stats) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.Completed) / float64(s.Total)))
}

// Ratio is completed / total, or 0 for an empty store.
func (s Stats) Ratio() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}
