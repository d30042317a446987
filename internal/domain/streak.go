package domain

import (
	"sort"
	"time"
)

// HasConsecutiveDays reports whether the given record dates cover at least
// requiredDays consecutive calendar days. Multiple records on the same day
// count once; a gap of more than one day restarts the candidate streak at
// the entry after the gap.
func HasConsecutiveDays(dates []time.Time, requiredDays int) bool {
	if len(dates) < requiredDays {
		return false
	}

	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].After(sorted[j]) })

	streak := 1
	for i := 1; i < len(sorted) && streak < requiredDays; i++ {
		diffDays := int(sorted[i-1].Sub(sorted[i]) / (24 * time.Hour))
		switch {
		case diffDays == 1:
			streak++
		case diffDays > 1:
			streak = 1
		}
		// diffDays == 0 is a same-day duplicate; it neither extends nor
		// breaks the streak.
	}

	return streak >= requiredDays
}
