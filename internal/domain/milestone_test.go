package domain_test

import (
	"testing"

	"weighin/internal/domain"
)

func ptr(v float64) *float64 { return &v }

func TestCrossedMilestone(t *testing.T) {
	tests := []struct {
		name    string
		prev    *float64
		next    float64
		unit    domain.Unit
		want    float64
		crossed bool
	}{
		{"crosses one boundary", ptr(61), 59.5, domain.UnitKilograms, 60, true},
		{"lands exactly on boundary", ptr(56), 55, domain.UnitKilograms, 55, true},
		{"no boundary between", ptr(59), 58, domain.UnitKilograms, 0, false},
		{"first entry", nil, 50, domain.UnitKilograms, 0, false},
		{"weight gain", ptr(54), 56, domain.UnitKilograms, 0, false},
		{"starts at boundary", ptr(55), 54.5, domain.UnitKilograms, 0, false},
		{"below all milestones", ptr(39), 38, domain.UnitKilograms, 0, false},
		{"pounds table", ptr(133), 131, domain.UnitPounds, 132, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, crossed := domain.CrossedMilestone(tc.prev, tc.next, tc.unit)
			if crossed != tc.crossed || got != tc.want {
				t.Errorf("CrossedMilestone(%v, %v, %q) = (%v, %v), want (%v, %v)",
					tc.prev, tc.next, tc.unit, got, crossed, tc.want, tc.crossed)
			}
		})
	}
}

func TestCrossedMilestone_ReportsHighestWhenSkippingSeveral(t *testing.T) {
	// A huge drop crosses every boundary; only the highest one is reported.
	got, crossed := domain.CrossedMilestone(ptr(62), 39, domain.UnitKilograms)
	if !crossed || got != 60 {
		t.Fatalf("got (%v, %v), want (60, true)", got, crossed)
	}
}

func TestMilestones(t *testing.T) {
	kg := domain.Milestones(domain.UnitKilograms)
	if len(kg) != 9 || kg[0] != 60 || kg[len(kg)-1] != 40 {
		t.Fatalf("unexpected kg milestone table: %v", kg)
	}
	for i := 1; i < len(kg); i++ {
		if kg[i-1]-kg[i] != 2.5 {
			t.Errorf("kg milestones not 2.5 apart at index %d: %v", i, kg)
		}
	}

	lb := domain.Milestones(domain.UnitPounds)
	if len(lb) != len(kg) {
		t.Fatalf("lb table has %d entries, want %d", len(lb), len(kg))
	}
	// 60 kg is 132 lb, 40 kg is 88 lb, to the nearest whole pound.
	if lb[0] != 132 || lb[len(lb)-1] != 88 {
		t.Errorf("unexpected lb milestone endpoints: %v", lb)
	}
}
