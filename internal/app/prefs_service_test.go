package app_test

import (
	"context"
	"testing"

	"weighin/internal/app"
	"weighin/internal/domain"
)

func TestPreferencesUpdate_PartialMerge(t *testing.T) {
	goal := 60.0
	stored := domain.Preferences{UserID: 1, PreferredUnit: domain.UnitPounds, GoalWeight: &goal}

	var saved domain.Preferences
	prefs := &mockPrefsRepo{
		getFn: func(_ context.Context, _ int64) (domain.Preferences, error) {
			return stored, nil
		},
		upsertFn: func(_ context.Context, p domain.Preferences) error {
			saved = p
			return nil
		},
	}
	svc := app.NewPreferencesService(prefs)

	kg := domain.UnitKilograms
	got, err := svc.Update(context.Background(), 1, app.PreferencesUpdate{PreferredUnit: &kg})
	if err != nil {
		t.Fatal(err)
	}

	if got.PreferredUnit != domain.UnitKilograms {
		t.Errorf("PreferredUnit = %q, want kg", got.PreferredUnit)
	}
	// Changing the unit must not touch the goal.
	if got.GoalWeight == nil || *got.GoalWeight != 60 {
		t.Errorf("GoalWeight = %v, want 60 untouched", got.GoalWeight)
	}
	if saved.PreferredUnit != domain.UnitKilograms {
		t.Errorf("persisted unit = %q, want kg", saved.PreferredUnit)
	}
}

func TestPreferencesUpdate_ClearGoal(t *testing.T) {
	goal := 60.0
	prefs := &mockPrefsRepo{
		getFn: func(_ context.Context, userID int64) (domain.Preferences, error) {
			return domain.Preferences{UserID: userID, PreferredUnit: domain.UnitKilograms, GoalWeight: &goal}, nil
		},
	}
	svc := app.NewPreferencesService(prefs)

	got, err := svc.Update(context.Background(), 1, app.PreferencesUpdate{ClearGoal: true})
	if err != nil {
		t.Fatal(err)
	}
	if got.GoalWeight != nil {
		t.Errorf("GoalWeight = %v, want nil after clear", got.GoalWeight)
	}
}

func TestPreferencesUpdate_Validation(t *testing.T) {
	svc := app.NewPreferencesService(&mockPrefsRepo{})

	bad := domain.Unit("stones")
	if _, err := svc.Update(context.Background(), 1, app.PreferencesUpdate{PreferredUnit: &bad}); err == nil {
		t.Error("expected error for invalid unit")
	}

	zero := 0.0
	if _, err := svc.Update(context.Background(), 1, app.PreferencesUpdate{GoalWeight: &zero}); err == nil {
		t.Error("expected error for zero goal")
	}

	huge := 1200.0
	if _, err := svc.Update(context.Background(), 1, app.PreferencesUpdate{GoalWeight: &huge}); err == nil {
		t.Error("expected error for goal over the cap")
	}
}

func TestPreferencesGet_Defaults(t *testing.T) {
	svc := app.NewPreferencesService(&mockPrefsRepo{})

	got, err := svc.Get(context.Background(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if got.PreferredUnit != domain.UnitPounds {
		t.Errorf("default unit = %q, want lb", got.PreferredUnit)
	}
	if got.GoalWeight != nil {
		t.Errorf("default goal = %v, want nil", got.GoalWeight)
	}
}
