package app

import (
	"context"
	"errors"
	"time"

	"weighin/internal/domain"

	"github.com/google/uuid"
)

const (
	maxWeight     = 1000
	maxNoteLength = 500
)

// WeightService encapsulates the weight-logging use cases and drives the
// derived-data checks that follow every save.
type WeightService struct {
	weights      domain.WeightRepository
	prefs        domain.PreferencesRepository
	activity     domain.ActivityRepository
	achievements *AchievementService
	celebrations *CelebrationSelector
	now          func() time.Time
}

// NewWeightService creates a WeightService backed by the given repositories
// and decision engines.
func NewWeightService(
	w domain.WeightRepository,
	p domain.PreferencesRepository,
	act domain.ActivityRepository,
	ach *AchievementService,
	cel *CelebrationSelector,
) *WeightService {
	return &WeightService{
		weights:      w,
		prefs:        p,
		activity:     act,
		achievements: ach,
		celebrations: cel,
		now:          time.Now,
	}
}

// LogResult is everything produced by one weight save: the stored record plus
// the ephemeral celebration and any newly unlocked achievements.
type LogResult struct {
	Entry           domain.WeightRecord          `json:"entry"`
	Celebration     *Celebration                 `json:"celebration"`
	NewAchievements []domain.UnlockedAchievement `json:"newAchievements"`
}

// RecordWeight validates and stores a new measurement, then evaluates
// achievements and the celebration for it.
func (s *WeightService) RecordWeight(ctx context.Context, userID int64, weight float64, unit domain.Unit, recordedAt time.Time, note string) (*LogResult, error) {
	if weight <= 0 || weight > maxWeight {
		return nil, errors.New("weight must be > 0 and <= 1000")
	}
	if !unit.Valid() {
		return nil, errors.New("unit must be \"kg\" or \"lb\"")
	}
	if len(note) > maxNoteLength {
		return nil, errors.New("note must be at most 500 characters")
	}

	now := s.now()
	if recordedAt.IsZero() {
		recordedAt = now
	}

	var previousWeight *float64
	history, err := s.weights.ListWeights(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(history) > 0 {
		previousWeight = &history[0].Weight
	}

	prefs, err := s.prefs.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := domain.WeightRecord{
		ID:         uuid.NewString(),
		UserID:     userID,
		Weight:     weight,
		Unit:       unit,
		Note:       note,
		RecordedAt: recordedAt,
		CreatedAt:  now,
	}
	if err := s.weights.AddWeight(ctx, entry); err != nil {
		return nil, err
	}

	unlocked, err := s.achievements.CheckAndUnlock(ctx, userID, weight, unit, prefs.GoalWeight)
	if err != nil {
		return nil, err
	}

	result := &LogResult{
		Entry:           entry,
		Celebration:     s.celebrations.Check(weight, unit, previousWeight, prefs.GoalWeight),
		NewAchievements: unlocked,
	}

	_ = s.activity.AddActivity(ctx, domain.ActivityEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    domain.ActionWeighIn,
		CreatedAt: now,
	})

	return result, nil
}

// LogProgressViewed appends a progress_viewed entry to the activity log.
func (s *WeightService) LogProgressViewed(ctx context.Context, userID int64) error {
	return s.activity.AddActivity(ctx, domain.ActivityEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    domain.ActionProgressViewed,
		CreatedAt: s.now(),
	})
}

// ListWeights returns the user's full history, most recent first.
func (s *WeightService) ListWeights(ctx context.Context, userID int64) ([]domain.WeightRecord, error) {
	return s.weights.ListWeights(ctx, userID)
}

// DeleteWeight removes a record the user owns.
func (s *WeightService) DeleteWeight(ctx context.Context, userID int64, id string) (bool, error) {
	return s.weights.DeleteWeight(ctx, userID, id)
}

// Stats summarises the history for the progress view, converted to the
// user's preferred unit.
type Stats struct {
	Entries       int         `json:"entries"`
	CurrentWeight *float64    `json:"currentWeight"`
	StartWeight   *float64    `json:"startWeight"`
	TotalChange   *float64    `json:"totalChange"`
	Unit          domain.Unit `json:"unit"`
}

// GetStats computes the progress-view summary numbers.
func (s *WeightService) GetStats(ctx context.Context, userID int64) (*Stats, error) {
	prefs, err := s.prefs.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	history, err := s.weights.ListWeights(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Entries: len(history), Unit: prefs.PreferredUnit}
	if len(history) == 0 {
		return stats, nil
	}

	current := domain.ConvertWeight(history[0].Weight, history[0].Unit, prefs.PreferredUnit)
	oldest := history[len(history)-1]
	start := domain.ConvertWeight(oldest.Weight, oldest.Unit, prefs.PreferredUnit)
	change := current - start

	stats.CurrentWeight = &current
	stats.StartWeight = &start
	stats.TotalChange = &change
	return stats, nil
}
