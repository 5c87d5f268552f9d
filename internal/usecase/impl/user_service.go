// Package impl contains the implementations of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	geocoder     service.GeocodingService
	logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	geocoder service.GeocodingService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		geocoder:     geocoder,
		logger:       logger,
	}
}

// RegisterDonor orchestrates the complete donor registration process.
func (srv *userService) RegisterDonor(ctx context.Context, input *usecase.RegisterDonorInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting donor registration", "email", input.Email)

	if input.Email == "" || input.Password == "" || input.Address.FullAddress == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email, password and address are required")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	// Resolve the pickup address before opening the transaction; the
	// geocoder is an external call and must not hold a DB connection.
	location, err := srv.geocoder.Geocode(ctx, input.Address.FullAddress)
	if err != nil {
		srv.logger.Error("Failed to geocode donor address", "error", err, "address", input.Address.FullAddress)

		return nil, domainerrors.ErrGeocodeFailed.WrapMessage("donor registration failed")
	}

	var registeredUser *entity.User

	// Execute the entire creation process within a single database transaction
	// to ensure data consistency (atomicity).
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()
		addressRepo := repoFactory.NewAddressRepository()

		// 1. Check if an authentication method with this email already exists.
		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err == nil {
			return domainerrors.ErrDonorAlreadyExists.WrapMessage("donor registration failed")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		// 2. Create the User entity and its associated DonorProfile.
		newUser := &entity.User{
			Name:  input.Name,
			Email: input.Email,
			DonorProfile: &entity.DonorProfile{
				OrgName:      input.OrgName,
				FssaiLicense: input.FssaiLicense,
			},
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}

		// 3. Create the Authentication entity (the email/password credential).
		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.WithStack(err)
		}

		// 4. Create the primary pickup address with the geocoded coordinates.
		newAddress := &entity.Address{
			OwnerID:     newUser.ID,
			OwnerType:   entity.OwnerTypeDonorProfile,
			Label:       input.Address.Label,
			FullAddress: input.Address.FullAddress,
			Latitude:    location.Latitude,
			Longitude:   location.Longitude,
			IsPrimary:   true,
		}
		if err := addressRepo.CreateAddress(ctx, newAddress); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute donor registration transaction", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to execute donor registration transaction")
	}
	srv.logger.Debug("Donor registered successfully", "userID", registeredUser.ID)

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// RegisterNgo orchestrates the complete NGO registration process.
func (srv *userService) RegisterNgo(ctx context.Context, input *usecase.RegisterNgoInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting NGO registration", "email", input.Email)

	if input.Email == "" || input.Password == "" || input.Address.FullAddress == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email, password and address are required")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	location, err := srv.geocoder.Geocode(ctx, input.Address.FullAddress)
	if err != nil {
		srv.logger.Error("Failed to geocode NGO address", "error", err, "address", input.Address.FullAddress)

		return nil, domainerrors.ErrGeocodeFailed.WrapMessage("ngo registration failed")
	}

	var registeredUser *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()
		addressRepo := repoFactory.NewAddressRepository()

		// 1. Check if an authentication method with this email already exists.
		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err == nil {
			return domainerrors.ErrNgoAlreadyExists.WrapMessage("ngo registration failed")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		// 2. Create the User entity and its associated NgoProfile.
		newUser := &entity.User{
			Name:  input.Name,
			Email: input.Email,
			NgoProfile: &entity.NgoProfile{
				RegisteredName: input.RegisteredName,
				LicenseNumber:  input.LicenseNumber,
				ContactEmail:   input.ContactEmail,
			},
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}

		// 3. Create the Authentication entity.
		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.WithStack(err)
		}

		// 4. Create the primary drop-off address with the geocoded coordinates.
		newAddress := &entity.Address{
			OwnerID:     newUser.ID,
			OwnerType:   entity.OwnerTypeNgoProfile,
			Label:       input.Address.Label,
			FullAddress: input.Address.FullAddress,
			Latitude:    location.Latitude,
			Longitude:   location.Longitude,
			IsPrimary:   true,
		}
		if err := addressRepo.CreateAddress(ctx, newAddress); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute NGO registration transaction", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to execute ngo registration transaction")
	}
	srv.logger.Debug("NGO registered successfully", "userID", registeredUser.ID)

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting user login", "email", input.Email)

	var loggedInUser *entity.User
	var accessToken, refreshTokenString string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.NewAuthRepository()
		userRepo := repoFactory.NewUserRepository()

		// 1. Find the authentication method.
		authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err != nil {
			// This includes ErrAuthNotFound, which we can treat as an invalid credential case.
			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		// 2. Check the password.
		if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		// 3. Fetch the full user and profile data to determine roles.
		user, err := userRepo.FindByID(ctx, authRecord.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user by id")
		}

		// 4. Generate new tokens carrying the single principal: user id plus role set.
		accessToken, refreshTokenString, err = srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}
		loggedInUser = user

		return nil
	})

	if err != nil {
		srv.logger.Warn("Login failed", "email", input.Email, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute user login transaction")
	}
	srv.logger.Debug("User logged in successfully", "userID", loggedInUser.ID)

	return &usecase.LoginOutput{
		AccessToken:           accessToken,
		RefreshToken:          refreshTokenString,
		RefreshTokenExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		User:                  loggedInUser,
	}, nil
}

// RefreshToken validates a refresh token and issues a new token pair. Roles
// are re-derived from the current profiles, not carried over from the token.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.LoginOutput, error) {
	if input.RefreshToken == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("refresh_token is required")
	}

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		srv.logger.Warn("Refresh token rejected", "error", err.Error())

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("token refresh failed")
	}

	var refreshedUser *entity.User
	var accessToken, refreshTokenString string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// A deleted account keeps a valid token signature; the lookup is
		// what revokes it.
		user, err := userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			return domainerrors.ErrInvalidCredentials.WrapMessage("token refresh failed")
		}

		accessToken, refreshTokenString, err = srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}
		refreshedUser = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute token refresh transaction")
	}

	srv.logger.Debug("Tokens refreshed", "userID", refreshedUser.ID)

	return &usecase.LoginOutput{
		AccessToken:           accessToken,
		RefreshToken:          refreshTokenString,
		RefreshTokenExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		User:                  refreshedUser,
	}, nil
}
