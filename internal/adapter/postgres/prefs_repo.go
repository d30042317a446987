package postgres

import (
	"context"
	"database/sql"
	"errors"

	"weighin/internal/domain"
)

// GetPreferences returns the user's stored preferences, or the defaults when
// none exist yet.
func (d *DB) GetPreferences(ctx context.Context, userID int64) (domain.Preferences, error) {
	row := d.sql.QueryRowContext(ctx,
		"SELECT user_id, preferred_unit, goal_weight, last_summary_week FROM user_preferences WHERE user_id = $1;",
		userID)

	var prefs domain.Preferences
	var goal sql.NullFloat64
	if err := row.Scan(&prefs.UserID, &prefs.PreferredUnit, &goal, &prefs.LastSummaryWeek); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DefaultPreferences(userID), nil
		}
		return domain.Preferences{}, err
	}
	if goal.Valid {
		prefs.GoalWeight = &goal.Float64
	}
	return prefs, nil
}

// UpsertPreferences stores the user's preferences, inserting the row on first
// save.
func (d *DB) UpsertPreferences(ctx context.Context, prefs domain.Preferences) error {
	var goal sql.NullFloat64
	if prefs.GoalWeight != nil {
		goal = sql.NullFloat64{Float64: *prefs.GoalWeight, Valid: true}
	}
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO user_preferences(user_id, preferred_unit, goal_weight, last_summary_week)
		 VALUES($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE SET preferred_unit = $2, goal_weight = $3, last_summary_week = $4;`,
		prefs.UserID, string(prefs.PreferredUnit), goal, prefs.LastSummaryWeek,
	)
	return err
}

// SetLastSummaryWeek records the latest weekly summary week shown to the user.
func (d *DB) SetLastSummaryWeek(ctx context.Context, userID int64, week int) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO user_preferences(user_id, last_summary_week) VALUES($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET last_summary_week = $2;`,
		userID, week,
	)
	return err
}
