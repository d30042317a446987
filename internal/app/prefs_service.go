package app

import (
	"context"
	"errors"

	"weighin/internal/domain"
)

// PreferencesService manages per-user settings.
type PreferencesService struct {
	prefs domain.PreferencesRepository
}

// NewPreferencesService creates a PreferencesService backed by the given repository.
func NewPreferencesService(prefs domain.PreferencesRepository) *PreferencesService {
	return &PreferencesService{prefs: prefs}
}

// Get returns the user's preferences, falling back to the defaults.
func (s *PreferencesService) Get(ctx context.Context, userID int64) (domain.Preferences, error) {
	return s.prefs.GetPreferences(ctx, userID)
}

// PreferencesUpdate carries a partial update; nil fields are left untouched.
type PreferencesUpdate struct {
	PreferredUnit *domain.Unit
	// GoalWeight set with ClearGoal false updates the goal; ClearGoal true
	// removes it.
	GoalWeight *float64
	ClearGoal  bool
}

// Update validates and applies a partial preferences update, returning the
// stored state.
func (s *PreferencesService) Update(ctx context.Context, userID int64, upd PreferencesUpdate) (domain.Preferences, error) {
	if upd.PreferredUnit != nil && !upd.PreferredUnit.Valid() {
		return domain.Preferences{}, errors.New("unit must be \"kg\" or \"lb\"")
	}
	if upd.GoalWeight != nil && (*upd.GoalWeight <= 0 || *upd.GoalWeight > maxWeight) {
		return domain.Preferences{}, errors.New("goal weight must be between 0 and 1000")
	}

	prefs, err := s.prefs.GetPreferences(ctx, userID)
	if err != nil {
		return domain.Preferences{}, err
	}
	prefs.UserID = userID
	if upd.PreferredUnit != nil {
		prefs.PreferredUnit = *upd.PreferredUnit
	}
	if upd.ClearGoal {
		prefs.GoalWeight = nil
	} else if upd.GoalWeight != nil {
		prefs.GoalWeight = upd.GoalWeight
	}

	if err := s.prefs.UpsertPreferences(ctx, prefs); err != nil {
		return domain.Preferences{}, err
	}
	return prefs, nil
}
