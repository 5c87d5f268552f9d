// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user entity, including any attached profiles.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID, preloading profiles.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address, preloading profiles.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update modifies an existing user entity, including attached profiles.
	Update(ctx context.Context, user *entity.User) error
}
