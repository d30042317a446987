// Package memory implements in-memory repositories for development and testing.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"weighin/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu           sync.Mutex
	weights      []domain.WeightRecord
	achievements []domain.AchievementRow
	activity     []domain.ActivityEntry
	prefs        map[int64]domain.Preferences
	users        []*domain.User
	sessions     map[string]*domain.Session

	userIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		prefs:    make(map[int64]domain.Preferences),
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.WeightRepository = (*DB)(nil)
var _ domain.AchievementRepository = (*DB)(nil)
var _ domain.PreferencesRepository = (*DB)(nil)
var _ domain.ActivityRepository = (*DB)(nil)
var _ domain.UserRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- WeightRepository ---

// AddWeight stores a weight record.
func (db *DB) AddWeight(ctx context.Context, rec domain.WeightRecord) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.weights = append(db.weights, rec)
	return nil
}

// ListWeights returns the user's records, most recent first.
func (db *DB) ListWeights(ctx context.Context, userID int64) ([]domain.WeightRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var out []domain.WeightRecord
	for _, rec := range db.weights {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordedAt.After(out[j].RecordedAt) })
	return out, nil
}

// DeleteWeight removes a record the user owns.
func (db *DB) DeleteWeight(ctx context.Context, userID int64, id string) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, rec := range db.weights {
		if rec.ID == id && rec.UserID == userID {
			db.weights = append(db.weights[:i], db.weights[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- AchievementRepository ---

// AddUnlock stores an unlock; duplicate (user, type) pairs are ignored.
func (db *DB) AddUnlock(ctx context.Context, row domain.AchievementRow) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, existing := range db.achievements {
		if existing.UserID == row.UserID && existing.TypeID == row.TypeID {
			return nil
		}
	}
	db.achievements = append(db.achievements, row)
	return nil
}

// ListUnlocks returns the user's unlocks in unlock order.
func (db *DB) ListUnlocks(ctx context.Context, userID int64) ([]domain.AchievementRow, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var out []domain.AchievementRow
	for _, row := range db.achievements {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

// --- PreferencesRepository ---

// GetPreferences returns the user's preferences, or the defaults.
func (db *DB) GetPreferences(ctx context.Context, userID int64) (domain.Preferences, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if prefs, ok := db.prefs[userID]; ok {
		return prefs, nil
	}
	return domain.DefaultPreferences(userID), nil
}

// UpsertPreferences stores the user's preferences.
func (db *DB) UpsertPreferences(ctx context.Context, prefs domain.Preferences) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.prefs[prefs.UserID] = prefs
	return nil
}

// SetLastSummaryWeek records the latest weekly summary week shown.
func (db *DB) SetLastSummaryWeek(ctx context.Context, userID int64, week int) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	prefs, ok := db.prefs[userID]
	if !ok {
		prefs = domain.DefaultPreferences(userID)
	}
	prefs.LastSummaryWeek = week
	db.prefs[userID] = prefs
	return nil
}

// --- ActivityRepository ---

// AddActivity appends an activity log entry.
func (db *DB) AddActivity(ctx context.Context, entry domain.ActivityEntry) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.activity = append(db.activity, entry)
	return nil
}

// ListRecentActivity returns the newest activity entries up to limit.
func (db *DB) ListRecentActivity(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.ActivityEntry, len(db.activity))
	copy(out, db.activity)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// --- UserRepository ---

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, username, passwordHash string, isAdmin bool) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return nil, errors.New("username already exists")
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		IsAdmin:      isAdmin,
		CreatedAt:    time.Now(),
	}
	db.users = append(db.users, u)
	copied := *u
	return &copied, nil
}

// UpdateDisplayName sets the user's display name.
func (db *DB) UpdateDisplayName(ctx context.Context, id int64, displayName string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			u.DisplayName = displayName
			return nil
		}
	}
	return errors.New("user not found")
}

// Count returns the total number of users.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	return len(db.users), nil
}

// List returns all users with their entry counts.
func (db *DB) List(ctx context.Context) ([]domain.UserSummary, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.UserSummary, 0, len(db.users))
	for _, u := range db.users {
		summary := domain.UserSummary{User: *u}
		for _, rec := range db.weights {
			if rec.UserID == u.ID {
				summary.EntryCount++
			}
		}
		out = append(out, summary)
	}
	return out, nil
}

// Delete removes a user and cascades to everything they own.
func (db *DB) Delete(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	idx := -1
	for i, u := range db.users {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return errors.New("user not found")
	}
	db.users = append(db.users[:idx], db.users[idx+1:]...)

	var weights []domain.WeightRecord
	for _, rec := range db.weights {
		if rec.UserID != id {
			weights = append(weights, rec)
		}
	}
	db.weights = weights

	var achievements []domain.AchievementRow
	for _, row := range db.achievements {
		if row.UserID != id {
			achievements = append(achievements, row)
		}
	}
	db.achievements = achievements

	var activity []domain.ActivityEntry
	for _, entry := range db.activity {
		if entry.UserID != id {
			activity = append(activity, entry)
		}
	}
	db.activity = activity

	delete(db.prefs, id)
	for token, s := range db.sessions {
		if s.UserID == id {
			delete(db.sessions, token)
		}
	}
	return nil
}

// --- SessionRepository ---

// SessionRepo implements session operations on DB.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo wraps a DB as a SessionRepository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.sessions[token]
	if !ok {
		return nil, errors.New("session not found")
	}
	copied := *s
	return &copied, nil
}

// Delete removes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired removes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := time.Now()
	for token, s := range r.db.sessions {
		if s.ExpiresAt.Before(now) {
			delete(r.db.sessions, token)
		}
	}
	return nil
}
