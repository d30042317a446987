package domain_test

import (
	"math"
	"testing"

	"weighin/internal/domain"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestConvertWeight(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to domain.Unit
		want     float64
	}{
		{"lb to kg", 150.0, domain.UnitPounds, domain.UnitKilograms, 68.0388},
		{"kg to lb", 68.0, domain.UnitKilograms, domain.UnitPounds, 149.91416},
		{"same unit kg", 80.0, domain.UnitKilograms, domain.UnitKilograms, 80.0},
		{"same unit lb", 180.0, domain.UnitPounds, domain.UnitPounds, 180.0},
		{"zero value", 0, domain.UnitKilograms, domain.UnitPounds, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.ConvertWeight(tc.value, tc.from, tc.to)
			if !almostEqual(got, tc.want, 0.0001) {
				t.Errorf("ConvertWeight(%v, %q, %q) = %v, want %v", tc.value, tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestConvertWeightRoundTrip(t *testing.T) {
	for _, v := range []float64{1, 45.5, 100, 163.0, 999.9} {
		kg := domain.ToKilograms(v, domain.UnitPounds)
		back := domain.ToPounds(kg, domain.UnitKilograms)
		if !almostEqual(back, v, 0.01) {
			t.Errorf("round trip of %v lb drifted to %v", v, back)
		}
	}
}

func TestToKilograms(t *testing.T) {
	if got := domain.ToKilograms(150, domain.UnitPounds); !almostEqual(got, 68.0388, 0.0001) {
		t.Errorf("ToKilograms(150, lb) = %v", got)
	}
	if got := domain.ToKilograms(70, domain.UnitKilograms); got != 70 {
		t.Errorf("ToKilograms(70, kg) = %v, want 70", got)
	}
}
