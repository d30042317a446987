package domain

const (
	lbToKg = 0.453592
	kgToLb = 2.20462
)

// ToKilograms converts a weight magnitude in the given unit to kilograms.
// No rounding is applied; callers round for display only.
func ToKilograms(v float64, unit Unit) float64 {
	if unit == UnitPounds {
		return v * lbToKg
	}
	return v
}

// ToPounds converts a weight magnitude in the given unit to pounds.
func ToPounds(v float64, unit Unit) float64 {
	if unit == UnitKilograms {
		return v * kgToLb
	}
	return v
}

// ConvertWeight converts a weight value between units.
// Returns v unchanged if from == to.
func ConvertWeight(v float64, from, to Unit) float64 {
	if from == to {
		return v
	}
	if to == UnitKilograms {
		return ToKilograms(v, from)
	}
	return ToPounds(v, from)
}
