package app

import (
	"fmt"
	"math/rand"
	"strconv"

	"weighin/internal/domain"
)

// CelebrationType discriminates the celebration variants.
type CelebrationType string

// Celebration variants, in priority order.
const (
	CelebrationGoalReached CelebrationType = "goal_reached"
	CelebrationMilestone   CelebrationType = "milestone"
	CelebrationWeightLoss  CelebrationType = "weight_loss"
)

// Celebration is an ephemeral notification shown immediately after a save.
// At most one is produced per weight-log event.
type Celebration struct {
	Type       CelebrationType `json:"type"`
	Title      string          `json:"title"`
	Message    string          `json:"message"`
	Unit       domain.Unit     `json:"unit"`
	Goal       float64         `json:"goal,omitempty"`
	Milestone  float64         `json:"milestone,omitempty"`
	WeightLost float64         `json:"weightLost,omitempty"`
}

var encouragementMessages = []string{
	"You're doing amazing! Every step counts.",
	"Look at you go! Your consistency is paying off.",
	"That's the spirit! Keep up the great work.",
	"You're on fire! Nothing can stop you now.",
	"Incredible progress! You should be so proud.",
	"Yes queen! You're absolutely crushing it.",
	"Your dedication is inspiring! Keep shining.",
	"Way to go! You're becoming the best version of yourself.",
}

var milestoneMessages = []string{
	"This is HUGE! You've hit a major milestone!",
	"What an achievement! You're officially in new territory!",
	"You did it! This milestone was waiting for you!",
	"Incredible! You've unlocked a new chapter in your journey!",
}

// Picker selects an index in [0, n). Injecting a seeded picker makes message
// selection deterministic in tests; the default is uniformly random.
type Picker func(n int) int

// CelebrationSelector picks at most one celebration per weight save.
type CelebrationSelector struct {
	pick Picker
}

// NewCelebrationSelector creates a selector with the default random picker.
func NewCelebrationSelector() *CelebrationSelector {
	return &CelebrationSelector{pick: rand.Intn}
}

// NewCelebrationSelectorWithPicker creates a selector with a custom picker.
func NewCelebrationSelectorWithPicker(pick Picker) *CelebrationSelector {
	return &CelebrationSelector{pick: pick}
}

// Check applies the fixed priority order: goal reached, then milestone
// crossed, then weight loss. A gain, an unchanged weight, or a first-ever
// entry produces nil.
func (s *CelebrationSelector) Check(newWeight float64, unit domain.Unit, previousWeight, goalWeight *float64) *Celebration {
	if goalWeight != nil && *goalWeight > 0 && newWeight <= *goalWeight {
		return &Celebration{
			Type:  CelebrationGoalReached,
			Title: "You Did It!",
			Message: fmt.Sprintf(
				"You've reached your goal of %s %s! This is an incredible achievement. All your hard work and dedication has paid off. Time to celebrate and maybe set a new goal!",
				formatWeight(*goalWeight), unit),
			Unit: unit,
			Goal: *goalWeight,
		}
	}

	if m, ok := domain.CrossedMilestone(previousWeight, newWeight, unit); ok {
		return &Celebration{
			Type:      CelebrationMilestone,
			Title:     "Milestone Reached!",
			Message:   milestoneMessages[s.pick(len(milestoneMessages))],
			Unit:      unit,
			Milestone: m,
		}
	}

	if previousWeight != nil && newWeight < *previousWeight {
		lost := *previousWeight - newWeight
		return &Celebration{
			Type:  CelebrationWeightLoss,
			Title: "Nice Progress!",
			Message: fmt.Sprintf("Wow, you lost %.1f %s since last time! %s",
				lost, unit, encouragementMessages[s.pick(len(encouragementMessages))]),
			Unit:       unit,
			WeightLost: lost,
		}
	}

	return nil
}

func formatWeight(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
