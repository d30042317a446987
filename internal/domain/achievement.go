package domain

import (
	"context"
	"time"
)

// AchievementType is a static catalog entry describing one achievement.
// The catalog is fixed at compile time and never mutated at runtime.
type AchievementType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Achievement type ids.
const (
	AchievementFirstWeighIn = "first_weigh_in"
	AchievementStreak7      = "streak_7"
	AchievementEntries10    = "entries_10"
	AchievementEntries30    = "entries_30"
	AchievementGoalReached  = "goal_reached"
	AchievementDown5        = "down_5"
	AchievementDown10       = "down_10"
)

// AchievementTypes is the full catalog, keyed by type id.
var AchievementTypes = map[string]AchievementType{
	AchievementFirstWeighIn: {
		ID:          AchievementFirstWeighIn,
		Name:        "First Steps",
		Description: "Log your first weight",
		Icon:        "/unicorns/first-steps.png",
	},
	AchievementStreak7: {
		ID:          AchievementStreak7,
		Name:        "Week Warrior",
		Description: "Log weight 7 days in a row",
		Icon:        "/unicorns/warrior.png",
	},
	AchievementEntries10: {
		ID:          AchievementEntries10,
		Name:        "Dedicated",
		Description: "Log 10 weight entries",
		Icon:        "/unicorns/dedicated.png",
	},
	AchievementEntries30: {
		ID:          AchievementEntries30,
		Name:        "Consistent",
		Description: "Log 30 weight entries",
		Icon:        "/unicorns/consistent.png",
	},
	AchievementGoalReached: {
		ID:          AchievementGoalReached,
		Name:        "Goal Getter",
		Description: "Reach your goal weight",
		Icon:        "/unicorns/goal-setter.png",
	},
	AchievementDown5: {
		ID:          AchievementDown5,
		Name:        "Down 5",
		Description: "Lose 5 kg (or 11 lb)",
		Icon:        "/unicorns/down-5kg.png",
	},
	AchievementDown10: {
		ID:          AchievementDown10,
		Name:        "Down 10",
		Description: "Lose 10 kg (or 22 lb)",
		Icon:        "/unicorns/down-10kg.png",
	},
}

// UnlockedAchievement is an achievement a user has earned, created at most
// once per (user, type) pair.
type UnlockedAchievement struct {
	Type       AchievementType `json:"type"`
	UnlockedAt time.Time       `json:"unlockedAt"`
}

// AchievementRow is the persisted form of an unlock.
type AchievementRow struct {
	ID         string
	UserID     int64
	TypeID     string
	UnlockedAt time.Time
}

// AchievementRepository is the port for achievement persistence. AddUnlock
// must be a no-op when the (user, type) pair already exists so that the
// unlock uniqueness invariant holds even under concurrent requests.
type AchievementRepository interface {
	AddUnlock(ctx context.Context, row AchievementRow) error
	ListUnlocks(ctx context.Context, userID int64) ([]AchievementRow, error)
}
