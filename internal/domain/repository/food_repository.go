// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrFoodItemNotFound is returned when a food item cannot be found.
	ErrFoodItemNotFound = errors.New("food item not found")

	// ErrFoodItemStateConflict is returned when a compare-and-swap status
	// update finds the food item in a different status than expected.
	ErrFoodItemStateConflict = errors.New("food item state conflict")
)

// FoodItemRepository defines persistence operations for surplus food postings.
type FoodItemRepository interface {
	// Create persists a new food item.
	Create(ctx context.Context, item *entity.FoodItem) error

	// FindByID retrieves a food item by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodItem, error)

	// FindByDonor retrieves all food items posted by a donor, newest first.
	FindByDonor(ctx context.Context, donorID uuid.UUID) ([]*entity.FoodItem, error)

	// UpdateStatus transitions a food item from one status to another using a
	// compare-and-swap on the current status. Returns ErrFoodItemStateConflict
	// when the item exists but is no longer in the expected status.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.FoodItemStatus) error
}
