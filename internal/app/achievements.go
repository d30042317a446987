// Package app holds the application services and business logic.
package app

import (
	"context"
	"time"

	"weighin/internal/domain"

	"github.com/google/uuid"
)

// CheckForNewAchievements computes which achievements should newly unlock
// after a weight save. history must include the just-saved entry; existing is
// the set of type ids the user has already unlocked. The function is pure and
// idempotent: a type present in existing is never returned again. It does not
// persist anything.
func CheckForNewAchievements(
	history []domain.WeightRecord,
	existing map[string]bool,
	newWeight float64,
	unit domain.Unit,
	goalWeight *float64,
	now time.Time,
) []domain.UnlockedAchievement {
	var unlocked []domain.UnlockedAchievement

	tryUnlock := func(typeID string) {
		if existing[typeID] {
			return
		}
		t, ok := domain.AchievementTypes[typeID]
		if !ok {
			return
		}
		unlocked = append(unlocked, domain.UnlockedAchievement{Type: t, UnlockedAt: now})
	}

	if len(history) >= 1 {
		tryUnlock(domain.AchievementFirstWeighIn)
	}
	if len(history) >= 10 {
		tryUnlock(domain.AchievementEntries10)
	}
	if len(history) >= 30 {
		tryUnlock(domain.AchievementEntries30)
	}

	dates := make([]time.Time, len(history))
	for i, rec := range history {
		dates[i] = rec.RecordedAt
	}
	if domain.HasConsecutiveDays(dates, 7) {
		tryUnlock(domain.AchievementStreak7)
	}

	if goalWeight != nil && *goalWeight > 0 && newWeight <= *goalWeight {
		tryUnlock(domain.AchievementGoalReached)
	}

	if len(history) >= 2 {
		totalLost := oldestWeight(history) - newWeight
		lostKg := domain.ToKilograms(totalLost, unit)
		if lostKg >= 5 {
			tryUnlock(domain.AchievementDown5)
		}
		if lostKg >= 10 {
			tryUnlock(domain.AchievementDown10)
		}
	}

	return unlocked
}

// oldestWeight returns the weight of the chronologically first record.
func oldestWeight(history []domain.WeightRecord) float64 {
	oldest := history[0]
	for _, rec := range history[1:] {
		if rec.RecordedAt.Before(oldest.RecordedAt) {
			oldest = rec
		}
	}
	return oldest.Weight
}

// AchievementService wraps the achievement engine with persistence: it loads
// the user's history and unlocked set, runs the check, and stores any new
// unlocks.
type AchievementService struct {
	weights      domain.WeightRepository
	achievements domain.AchievementRepository
	now          func() time.Time
}

// NewAchievementService creates an AchievementService backed by the given
// repositories.
func NewAchievementService(w domain.WeightRepository, a domain.AchievementRepository) *AchievementService {
	return &AchievementService{weights: w, achievements: a, now: time.Now}
}

// CheckAndUnlock evaluates achievements for the user's latest save and
// persists the new unlocks. The repository ignores duplicate (user, type)
// inserts, so a concurrent double-check cannot unlock a type twice.
func (s *AchievementService) CheckAndUnlock(ctx context.Context, userID int64, newWeight float64, unit domain.Unit, goalWeight *float64) ([]domain.UnlockedAchievement, error) {
	history, err := s.weights.ListWeights(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.achievements.ListUnlocks(ctx, userID)
	if err != nil {
		return nil, err
	}
	existing := make(map[string]bool, len(rows))
	for _, row := range rows {
		existing[row.TypeID] = true
	}

	unlocked := CheckForNewAchievements(history, existing, newWeight, unit, goalWeight, s.now())
	for _, a := range unlocked {
		row := domain.AchievementRow{
			ID:         uuid.NewString(),
			UserID:     userID,
			TypeID:     a.Type.ID,
			UnlockedAt: a.UnlockedAt,
		}
		if err := s.achievements.AddUnlock(ctx, row); err != nil {
			return nil, err
		}
	}
	return unlocked, nil
}

// ListUnlocked returns the user's unlocked achievements with catalog details.
func (s *AchievementService) ListUnlocked(ctx context.Context, userID int64) ([]domain.UnlockedAchievement, error) {
	rows, err := s.achievements.ListUnlocks(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.UnlockedAchievement, 0, len(rows))
	for _, row := range rows {
		t, ok := domain.AchievementTypes[row.TypeID]
		if !ok {
			// Unknown type id in storage; surface it with a bare catalog entry.
			t = domain.AchievementType{ID: row.TypeID, Name: row.TypeID}
		}
		out = append(out, domain.UnlockedAchievement{Type: t, UnlockedAt: row.UnlockedAt})
	}
	return out, nil
}
