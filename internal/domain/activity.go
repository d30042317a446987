package domain

import (
	"context"
	"time"
)

// Activity actions.
const (
	ActionWeighIn        = "weigh_in"
	ActionProgressViewed = "progress_viewed"
)

// ActivityEntry is one append-only activity log row.
type ActivityEntry struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"createdAt"`
}

// ActivityRepository is the port for the activity log.
type ActivityRepository interface {
	AddActivity(ctx context.Context, entry ActivityEntry) error
	ListRecentActivity(ctx context.Context, limit int) ([]ActivityEntry, error)
}
