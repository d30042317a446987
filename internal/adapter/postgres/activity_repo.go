package postgres

import (
	"context"

	"weighin/internal/domain"
)

// AddActivity appends an activity log entry.
func (d *DB) AddActivity(ctx context.Context, entry domain.ActivityEntry) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO activity_log(id, user_id, action, created_at) VALUES($1, $2, $3, $4);",
		entry.ID, entry.UserID, entry.Action, entry.CreatedAt.UTC(),
	)
	return err
}

// ListRecentActivity returns the newest activity entries up to limit.
func (d *DB) ListRecentActivity(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, action, created_at FROM activity_log ORDER BY created_at DESC LIMIT $1;", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ActivityEntry, 0, limit)
	for rows.Next() {
		var entry domain.ActivityEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Action, &entry.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}
