package postgres

import (
	"context"

	"weighin/internal/domain"
)

// AddUnlock stores an unlock. The (user_id, type) unique constraint absorbs
// duplicate inserts, which keeps the one-unlock-per-type invariant even when
// two requests race.
func (d *DB) AddUnlock(ctx context.Context, row domain.AchievementRow) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO achievements(id, user_id, type, unlocked_at) VALUES($1, $2, $3, $4) ON CONFLICT (user_id, type) DO NOTHING;",
		row.ID, row.UserID, row.TypeID, row.UnlockedAt.UTC(),
	)
	return err
}

// ListUnlocks returns the user's unlocks in unlock order.
func (d *DB) ListUnlocks(ctx context.Context, userID int64) ([]domain.AchievementRow, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, type, unlocked_at FROM achievements WHERE user_id = $1 ORDER BY unlocked_at;",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AchievementRow
	for rows.Next() {
		var row domain.AchievementRow
		if err := rows.Scan(&row.ID, &row.UserID, &row.TypeID, &row.UnlockedAt); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
