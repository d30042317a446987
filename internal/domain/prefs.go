package domain

import "context"

// Preferences holds per-user settings. GoalWeight is stored in whatever unit
// was preferred when it was set; it is not re-converted if the preferred unit
// later changes.
type Preferences struct {
	UserID          int64    `json:"-"`
	PreferredUnit   Unit     `json:"preferredUnit"`
	GoalWeight      *float64 `json:"goalWeight"`
	LastSummaryWeek int      `json:"-"`
}

// DefaultPreferences returns the settings for a user who has never saved any.
func DefaultPreferences(userID int64) Preferences {
	return Preferences{UserID: userID, PreferredUnit: UnitPounds}
}

// PreferencesRepository is the port for preference persistence.
type PreferencesRepository interface {
	// GetPreferences returns the user's preferences, or the defaults if none
	// are stored.
	GetPreferences(ctx context.Context, userID int64) (Preferences, error)
	UpsertPreferences(ctx context.Context, prefs Preferences) error
	// SetLastSummaryWeek records the most recent weekly summary week number
	// shown to the user, guarding the at-most-once-per-week guarantee.
	SetLastSummaryWeek(ctx context.Context, userID int64, week int) error
}
