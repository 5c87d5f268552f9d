// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/errors"
)

// Domain-specific errors for authentication persistence.
var (
	// ErrAuthNotFound is returned when no credential record matches.
	ErrAuthNotFound = errors.New("authentication not found")
)

// AuthRepository defines the interface for credential-related database operations.
type AuthRepository interface {
	// CreateAuthentication persists a new credential record.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves a credential by provider and provider-scoped ID.
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)
}
