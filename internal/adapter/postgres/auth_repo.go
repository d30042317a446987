package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"weighin/internal/domain"
)

// GetByUsername retrieves a user by username.
func (d *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return d.scanUser(d.sql.QueryRowContext(ctx,
		"SELECT id, username, password_hash, display_name, is_admin, created_at FROM users WHERE username = $1;",
		username))
}

// GetByID retrieves a user by ID.
func (d *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return d.scanUser(d.sql.QueryRowContext(ctx,
		"SELECT id, username, password_hash, display_name, is_admin, created_at FROM users WHERE id = $1;",
		id))
}

func (d *DB) scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.DisplayName, &u.IsAdmin, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create creates a new user.
func (d *DB) Create(ctx context.Context, username, passwordHash string, isAdmin bool) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		`INSERT INTO users (username, password_hash, is_admin, created_at) VALUES ($1, $2, $3, $4)
		 RETURNING id, username, password_hash, display_name, is_admin, created_at;`,
		username, passwordHash, isAdmin, time.Now(),
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.DisplayName, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateDisplayName sets the user's display name.
func (d *DB) UpdateDisplayName(ctx context.Context, id int64, displayName string) error {
	_, err := d.sql.ExecContext(ctx, "UPDATE users SET display_name = $2 WHERE id = $1;", id, displayName)
	return err
}

// Count returns the total number of users.
func (d *DB) Count(ctx context.Context) (int, error) {
	var count int
	err := d.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM users;").Scan(&count)
	return count, err
}

// List returns all users with their weight entry counts.
func (d *DB) List(ctx context.Context) ([]domain.UserSummary, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT u.id, u.username, u.display_name, u.is_admin, u.created_at, COUNT(w.id)
		 FROM users u LEFT JOIN weights w ON w.user_id = u.id
		 GROUP BY u.id ORDER BY u.id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.UserSummary
	for rows.Next() {
		var u domain.UserSummary
		if err := rows.Scan(&u.ID, &u.Username, &u.DisplayName, &u.IsAdmin, &u.CreatedAt, &u.EntryCount); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Delete removes a user; owned rows go with it via ON DELETE CASCADE.
func (d *DB) Delete(ctx context.Context, id int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM users WHERE id = $1;", id)
	return err
}

// SessionRepo implements session repository operations on DB.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo wraps a DB as a SessionRepository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	_, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO sessions (user_id, token, expires_at, created_at) VALUES ($1, $2, $3, $4);",
		userID, token, expiresAt, time.Now(),
	)
	return err
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	var s domain.Session
	err := r.db.sql.QueryRowContext(ctx,
		"SELECT token, user_id, expires_at, created_at FROM sessions WHERE token = $1;",
		token,
	).Scan(&s.Token, &s.UserID, &s.ExpiresAt, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.New("session not found")
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM sessions WHERE token = $1;", token)
	return err
}

// DeleteExpired removes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at < NOW();")
	return err
}
