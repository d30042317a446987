// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// Unit is a weight unit of measure.
type Unit string

// Supported units.
const (
	UnitPounds    Unit = "lb"
	UnitKilograms Unit = "kg"
)

// Valid reports whether u is a recognised unit.
func (u Unit) Valid() bool {
	return u == UnitPounds || u == UnitKilograms
}

// WeightRecord represents a single logged weight measurement. Records are
// immutable once created; the only lifecycle operation besides creation is
// deletion.
type WeightRecord struct {
	ID         string    `json:"id"`
	UserID     int64     `json:"userId"`
	Weight     float64   `json:"weight"`
	Unit       Unit      `json:"unit"`
	Note       string    `json:"note,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

// WeightRepository is the port for weight persistence.
type WeightRepository interface {
	AddWeight(ctx context.Context, rec WeightRecord) error
	// ListWeights returns all records for the user, most recent first.
	ListWeights(ctx context.Context, userID int64) ([]WeightRecord, error)
	DeleteWeight(ctx context.Context, userID int64, id string) (bool, error)
}
