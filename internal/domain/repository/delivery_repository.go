// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/errors"

	"github.com/google/uuid"
)

// Predefined delivery repository errors.
var (
	// ErrDeliveryNotFound is returned when a delivery cannot be found.
	ErrDeliveryNotFound = errors.New("delivery not found")
	// ErrDeliveryStateConflict is returned when a compare-and-swap status
	// update matches no row, meaning the delivery moved to another state
	// between read and write.
	ErrDeliveryStateConflict = errors.New("delivery state conflict")
)

// DeliveryRepository defines persistence operations for deliveries.
type DeliveryRepository interface {
	// Create persists a new delivery record.
	Create(ctx context.Context, delivery *entity.Delivery) error

	// FindByID retrieves a delivery by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error)

	// UpdateStatus transitions a delivery from one status to another using a
	// compare-and-swap on the current status. Returns ErrDeliveryStateConflict
	// when the delivery is no longer in the expected `from` status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.DeliveryStatus) error

	// FindHistoryByNgo retrieves the delivery history of an NGO, newest first,
	// with donor, NGO and food item details joined in. Parties whose profile or
	// primary address has been removed are reported as absent rather than
	// failing the whole read.
	FindHistoryByNgo(ctx context.Context, ngoID uuid.UUID) ([]*entity.DeliveryView, error)

	// FindViewByID retrieves a single delivery with joined party and food
	// item details.
	FindViewByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryView, error)
}
