package postgres

import (
	"context"

	"weighin/internal/domain"
)

// AddWeight inserts a new weight record.
func (d *DB) AddWeight(ctx context.Context, rec domain.WeightRecord) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO weights(id, user_id, weight, unit, note, recorded_at, created_at) VALUES($1, $2, $3, $4, $5, $6, $7);",
		rec.ID, rec.UserID, rec.Weight, string(rec.Unit), rec.Note, rec.RecordedAt.UTC(), rec.CreatedAt.UTC(),
	)
	return err
}

// ListWeights returns all of the user's records, most recent first.
func (d *DB) ListWeights(ctx context.Context, userID int64) ([]domain.WeightRecord, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, weight, unit, note, recorded_at, created_at FROM weights WHERE user_id = $1 ORDER BY recorded_at DESC;",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.WeightRecord
	for rows.Next() {
		var rec domain.WeightRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Weight, &rec.Unit, &rec.Note, &rec.RecordedAt, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// DeleteWeight removes a record the user owns. Returns false when no such
// record exists.
func (d *DB) DeleteWeight(ctx context.Context, userID int64, id string) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM weights WHERE id = $1 AND user_id = $2;", id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
