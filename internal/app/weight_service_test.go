package app_test

import (
	"context"
	"testing"

	"weighin/internal/app"
	"weighin/internal/domain"
)

type mockWeightRepo struct {
	addFn    func(ctx context.Context, rec domain.WeightRecord) error
	listFn   func(ctx context.Context, userID int64) ([]domain.WeightRecord, error)
	deleteFn func(ctx context.Context, userID int64, id string) (bool, error)
}

func (m *mockWeightRepo) AddWeight(ctx context.Context, rec domain.WeightRecord) error {
	if m.addFn != nil {
		return m.addFn(ctx, rec)
	}
	return nil
}

func (m *mockWeightRepo) ListWeights(ctx context.Context, userID int64) ([]domain.WeightRecord, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockWeightRepo) DeleteWeight(ctx context.Context, userID int64, id string) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, id)
	}
	return false, nil
}

type mockActivityRepo struct {
	addFn  func(ctx context.Context, entry domain.ActivityEntry) error
	listFn func(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
}

func (m *mockActivityRepo) AddActivity(ctx context.Context, entry domain.ActivityEntry) error {
	if m.addFn != nil {
		return m.addFn(ctx, entry)
	}
	return nil
}

func (m *mockActivityRepo) ListRecentActivity(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit)
	}
	return nil, nil
}

func newWeightService(w *mockWeightRepo, p *mockPrefsRepo, act *mockActivityRepo) *app.WeightService {
	ach := app.NewAchievementService(w, &mockAchievementRepo{})
	cel := app.NewCelebrationSelectorWithPicker(firstPick)
	return app.NewWeightService(w, p, act, ach, cel)
}

func TestRecordWeight_Validation(t *testing.T) {
	svc := newWeightService(&mockWeightRepo{}, &mockPrefsRepo{}, &mockActivityRepo{})

	tests := []struct {
		name   string
		weight float64
		unit   domain.Unit
		note   string
	}{
		{"zero weight", 0, domain.UnitKilograms, ""},
		{"negative weight", -5, domain.UnitKilograms, ""},
		{"over the cap", 1000.5, domain.UnitKilograms, ""},
		{"bad unit", 80, "stones", ""},
		{"note too long", 80, domain.UnitKilograms, string(make([]byte, 501))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RecordWeight(context.Background(), 1, tc.weight, tc.unit, testNow, tc.note)
			if err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestRecordWeight_FirstEntry(t *testing.T) {
	var stored []domain.WeightRecord
	weights := &mockWeightRepo{
		addFn: func(_ context.Context, rec domain.WeightRecord) error {
			stored = append(stored, rec)
			return nil
		},
		listFn: func(_ context.Context, _ int64) ([]domain.WeightRecord, error) {
			return stored, nil
		},
	}
	var logged []domain.ActivityEntry
	activity := &mockActivityRepo{
		addFn: func(_ context.Context, entry domain.ActivityEntry) error {
			logged = append(logged, entry)
			return nil
		},
	}
	svc := newWeightService(weights, &mockPrefsRepo{}, activity)

	result, err := svc.RecordWeight(context.Background(), 1, 80, domain.UnitKilograms, testNow, "morning")
	if err != nil {
		t.Fatal(err)
	}

	if result.Entry.ID == "" || result.Entry.Weight != 80 || result.Entry.Note != "morning" {
		t.Errorf("unexpected entry: %+v", result.Entry)
	}
	if result.Celebration != nil {
		t.Errorf("first entry produced a celebration: %+v", result.Celebration)
	}
	if len(result.NewAchievements) != 1 || result.NewAchievements[0].Type.ID != domain.AchievementFirstWeighIn {
		t.Errorf("unexpected achievements: %v", result.NewAchievements)
	}
	if len(logged) != 1 || logged[0].Action != domain.ActionWeighIn {
		t.Errorf("unexpected activity log: %v", logged)
	}
}

func TestRecordWeight_CelebratesLoss(t *testing.T) {
	previous := domain.WeightRecord{ID: "a", Weight: 82, Unit: domain.UnitKilograms, RecordedAt: testNow.AddDate(0, 0, -3)}
	stored := []domain.WeightRecord{previous}
	weights := &mockWeightRepo{
		addFn: func(_ context.Context, rec domain.WeightRecord) error {
			stored = append([]domain.WeightRecord{rec}, stored...)
			return nil
		},
		listFn: func(_ context.Context, _ int64) ([]domain.WeightRecord, error) {
			return stored, nil
		},
	}
	svc := newWeightService(weights, &mockPrefsRepo{}, &mockActivityRepo{})

	result, err := svc.RecordWeight(context.Background(), 1, 80.5, domain.UnitKilograms, testNow, "")
	if err != nil {
		t.Fatal(err)
	}
	if result.Celebration == nil || result.Celebration.Type != app.CelebrationWeightLoss {
		t.Fatalf("got %+v, want weight_loss celebration", result.Celebration)
	}
	if result.Celebration.WeightLost != 1.5 {
		t.Errorf("WeightLost = %v, want 1.5", result.Celebration.WeightLost)
	}
}

func TestRecordWeight_ActivityFailureIsIgnored(t *testing.T) {
	weights := &mockWeightRepo{
		listFn: func(_ context.Context, _ int64) ([]domain.WeightRecord, error) {
			return []domain.WeightRecord{{Weight: 80, Unit: domain.UnitKilograms, RecordedAt: testNow}}, nil
		},
	}
	activity := &mockActivityRepo{
		addFn: func(_ context.Context, _ domain.ActivityEntry) error {
			return context.DeadlineExceeded
		},
	}
	svc := newWeightService(weights, &mockPrefsRepo{}, activity)

	if _, err := svc.RecordWeight(context.Background(), 1, 80, domain.UnitKilograms, testNow, ""); err != nil {
		t.Fatalf("activity log failure leaked: %v", err)
	}
}

func TestGetStats(t *testing.T) {
	weights := &mockWeightRepo{
		listFn: func(_ context.Context, _ int64) ([]domain.WeightRecord, error) {
			return []domain.WeightRecord{
				{Weight: 78, Unit: domain.UnitKilograms, RecordedAt: testNow},
				{Weight: 80, Unit: domain.UnitKilograms, RecordedAt: testNow.AddDate(0, 0, -10)},
			}, nil
		},
	}
	prefs := &mockPrefsRepo{
		getFn: func(_ context.Context, userID int64) (domain.Preferences, error) {
			p := domain.DefaultPreferences(userID)
			p.PreferredUnit = domain.UnitKilograms
			return p, nil
		},
	}
	svc := newWeightService(weights, prefs, &mockActivityRepo{})

	stats, err := svc.GetStats(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Entries != 2 {
		t.Errorf("Entries = %d, want 2", stats.Entries)
	}
	if stats.CurrentWeight == nil || *stats.CurrentWeight != 78 {
		t.Errorf("CurrentWeight = %v, want 78", stats.CurrentWeight)
	}
	if stats.StartWeight == nil || *stats.StartWeight != 80 {
		t.Errorf("StartWeight = %v, want 80", stats.StartWeight)
	}
	if stats.TotalChange == nil || *stats.TotalChange != -2 {
		t.Errorf("TotalChange = %v, want -2", stats.TotalChange)
	}
}

func TestGetStats_Empty(t *testing.T) {
	svc := newWeightService(&mockWeightRepo{}, &mockPrefsRepo{}, &mockActivityRepo{})

	stats, err := svc.GetStats(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Entries != 0 || stats.CurrentWeight != nil || stats.StartWeight != nil || stats.TotalChange != nil {
		t.Errorf("unexpected stats for empty history: %+v", stats)
	}
}

func TestGetStats_ConvertsToPreferredUnit(t *testing.T) {
	weights := &mockWeightRepo{
		listFn: func(_ context.Context, _ int64) ([]domain.WeightRecord, error) {
			return []domain.WeightRecord{
				{Weight: 150, Unit: domain.UnitPounds, RecordedAt: testNow},
			}, nil
		},
	}
	prefs := &mockPrefsRepo{
		getFn: func(_ context.Context, userID int64) (domain.Preferences, error) {
			p := domain.DefaultPreferences(userID)
			p.PreferredUnit = domain.UnitKilograms
			return p, nil
		},
	}
	svc := newWeightService(weights, prefs, &mockActivityRepo{})

	stats, err := svc.GetStats(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Unit != domain.UnitKilograms {
		t.Errorf("Unit = %q, want kg", stats.Unit)
	}
	if stats.CurrentWeight == nil || *stats.CurrentWeight < 68.03 || *stats.CurrentWeight > 68.05 {
		t.Errorf("CurrentWeight = %v, want about 68.04", stats.CurrentWeight)
	}
}
