// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
)

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	// CreateAddress persists a new address for an owner.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressesByOwner retrieves all addresses for a specific owner profile.
	FindAddressesByOwner(ctx context.Context, ownerID uuid.UUID, ownerType entity.OwnerType) ([]*entity.Address, error)

	// FindPrimaryAddress retrieves the primary address for a specific owner profile.
	FindPrimaryAddress(ctx context.Context, ownerID uuid.UUID, ownerType entity.OwnerType) (*entity.Address, error)

	// UpdateAddress modifies an existing address.
	UpdateAddress(ctx context.Context, address *entity.Address) error
}
