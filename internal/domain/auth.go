package domain

import (
	"context"
	"time"
)

// User represents an authenticated user in the system.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	DisplayName  string
	IsAdmin      bool
	CreatedAt    time.Time
}

// Session represents an active user session.
type Session struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// UserSummary is a user row with aggregate counts, used by the admin view.
type UserSummary struct {
	User
	EntryCount int
}

// UserRepository defines the port for user persistence operations.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, username, passwordHash string, isAdmin bool) (*User, error)
	UpdateDisplayName(ctx context.Context, id int64, displayName string) error
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]UserSummary, error)
	// Delete removes the user and, by cascade, all owned rows.
	Delete(ctx context.Context, id int64) error
}

// SessionRepository defines the port for session persistence operations.
type SessionRepository interface {
	Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}
