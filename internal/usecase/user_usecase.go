// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"foodbridge/internal/domain/entity"
)

// --- Input DTOs ---

// AddressInput defines the pickup or drop-off address supplied at registration.
// The street address is geocoded server-side.
type AddressInput struct {
	Label       string
	FullAddress string
}

// RegisterDonorInput defines the data required to register a new donor.
type RegisterDonorInput struct {
	Name         string
	Email        string
	Password     string
	OrgName      string
	FssaiLicense string
	Address      AddressInput
}

// RegisterNgoInput defines the data required to register a new NGO.
type RegisterNgoInput struct {
	Name           string
	Email          string
	Password       string
	RegisteredName string
	LicenseNumber  string
	ContactEmail   string
	Address        AddressInput
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token presented for a new pair.
type RefreshTokenInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	User                  *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterDonor(ctx context.Context, input *RegisterDonorInput) (*RegisterOutput, error)
	RegisterNgo(ctx context.Context, input *RegisterNgoInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*LoginOutput, error)
}
