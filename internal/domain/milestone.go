package domain

import "math"

// Milestones every 2.5 kg from 60 down to 40, highest first.
var kgMilestones = []float64{60, 57.5, 55, 52.5, 50, 47.5, 45, 42.5, 40}

// Pound equivalents, rounded to whole pounds once at definition time.
var lbMilestones = func() []float64 {
	out := make([]float64, len(kgMilestones))
	for i, kg := range kgMilestones {
		out[i] = math.Round(kg * kgToLb)
	}
	return out
}()

// Milestones returns the milestone table for the given unit, highest first.
func Milestones(unit Unit) []float64 {
	if unit == UnitKilograms {
		return kgMilestones
	}
	return lbMilestones
}

// CrossedMilestone reports the first milestone in descending order whose
// boundary was crossed downward by moving from prevWeight to newWeight.
// A nil prevWeight (first entry) or a weight gain never crosses anything.
// Only one milestone is reported even if several were skipped in one jump.
func CrossedMilestone(prevWeight *float64, newWeight float64, unit Unit) (float64, bool) {
	if prevWeight == nil {
		return 0, false
	}
	for _, m := range Milestones(unit) {
		if *prevWeight > m && newWeight <= m {
			return m, true
		}
	}
	return 0, false
}
