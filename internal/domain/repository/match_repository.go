// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/errors"

	"github.com/google/uuid"
)

// ErrMatchNotFound is returned when a match notification cannot be found.
var ErrMatchNotFound = errors.New("match notification not found")

// MatchRepository defines persistence operations for match rounds and their
// per-NGO outcome logs.
type MatchRepository interface {
	// CreateMatchNotification persists a record of one matching round.
	CreateMatchNotification(ctx context.Context, match *entity.MatchNotification) error

	// UpdateTotals updates the sent and failed counters of a match record.
	UpdateTotals(ctx context.Context, id uuid.UUID, totalSent, totalFailed int) error

	// BatchCreateMatchLogs persists the per-NGO outcome logs of a round.
	BatchCreateMatchLogs(ctx context.Context, logs []*entity.MatchLog) error
}
