package app_test

import (
	"strings"
	"testing"

	"weighin/internal/app"
	"weighin/internal/domain"
)

func fptr(v float64) *float64 { return &v }

func firstPick(n int) int { return 0 }

func TestCelebrationCheck_PriorityOrder(t *testing.T) {
	sel := app.NewCelebrationSelectorWithPicker(firstPick)

	// Goal reached wins even though a milestone boundary was also crossed
	// and weight was lost.
	c := sel.Check(59.5, domain.UnitKilograms, fptr(61), fptr(60))
	if c == nil || c.Type != app.CelebrationGoalReached {
		t.Fatalf("got %+v, want goal_reached", c)
	}
	if c.Goal != 60 {
		t.Errorf("Goal = %v, want 60", c.Goal)
	}
	if !strings.Contains(c.Message, "60 kg") {
		t.Errorf("goal message missing weight: %q", c.Message)
	}

	// No goal: the milestone outranks plain loss.
	c = sel.Check(59.5, domain.UnitKilograms, fptr(61), nil)
	if c == nil || c.Type != app.CelebrationMilestone {
		t.Fatalf("got %+v, want milestone", c)
	}
	if c.Milestone != 60 {
		t.Errorf("Milestone = %v, want 60", c.Milestone)
	}

	// No goal, no boundary crossed: plain loss.
	c = sel.Check(58.5, domain.UnitKilograms, fptr(59), nil)
	if c == nil || c.Type != app.CelebrationWeightLoss {
		t.Fatalf("got %+v, want weight_loss", c)
	}
	if c.WeightLost != 0.5 {
		t.Errorf("WeightLost = %v, want 0.5", c.WeightLost)
	}
}

func TestCelebrationCheck_NoCelebration(t *testing.T) {
	sel := app.NewCelebrationSelectorWithPicker(firstPick)

	tests := []struct {
		name string
		new  float64
		prev *float64
		goal *float64
	}{
		{"first entry", 80, nil, nil},
		{"weight gain", 81, fptr(80), nil},
		{"unchanged", 80, fptr(80), nil},
		{"goal not yet reached, gain", 65, fptr(64), fptr(60)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if c := sel.Check(tc.new, domain.UnitKilograms, tc.prev, tc.goal); c != nil {
				t.Errorf("got %+v, want nil", c)
			}
		})
	}
}

func TestCelebrationCheck_GoalIgnoredWhenZero(t *testing.T) {
	sel := app.NewCelebrationSelectorWithPicker(firstPick)
	c := sel.Check(58.5, domain.UnitKilograms, fptr(59), fptr(0))
	if c == nil || c.Type != app.CelebrationWeightLoss {
		t.Fatalf("got %+v, want weight_loss with a zero goal", c)
	}
}

func TestCelebrationCheck_LossMessageFormat(t *testing.T) {
	sel := app.NewCelebrationSelectorWithPicker(firstPick)
	c := sel.Check(178.5, domain.UnitPounds, fptr(180), nil)
	if c == nil {
		t.Fatal("expected a weight_loss celebration")
	}
	if !strings.HasPrefix(c.Message, "Wow, you lost 1.5 lb since last time!") {
		t.Errorf("unexpected message: %q", c.Message)
	}
}

func TestCelebrationCheck_PickerSelectsMessage(t *testing.T) {
	for idx := 0; idx < 4; idx++ {
		idx := idx
		sel := app.NewCelebrationSelectorWithPicker(func(n int) int { return idx % n })
		c := sel.Check(54.9, domain.UnitKilograms, fptr(55.1), nil)
		if c == nil || c.Type != app.CelebrationMilestone {
			t.Fatalf("got %+v, want milestone", c)
		}
		if c.Message == "" {
			t.Fatal("empty milestone message")
		}
	}
}
