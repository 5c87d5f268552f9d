// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies how an account authenticates.
type ProviderType string

const (
	// ProviderTypeEmail is the email + password credential provider.
	ProviderTypeEmail ProviderType = "email"
)

// Authentication represents one credential record for a user.
type Authentication struct {
	ID             uuid.UUID    // The Global Unique Identifier (GUID) for the credential.
	UserID         uuid.UUID    // The ID of the user this credential belongs to.
	Provider       ProviderType // The credential provider type.
	ProviderUserID string       // The provider-scoped identifier (the email address for email auth).
	PasswordHash   string       // The bcrypt hash of the password. Empty for non-password providers.
	CreatedAt      time.Time    // Timestamp of when this credential was created.
}
