package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	mockRepo "foodbridge/internal/mocks/repository"
	mockSvc "foodbridge/internal/mocks/service"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	geocoder     *mockSvc.MockGeocodingService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	geocoder := mockSvc.NewMockGeocodingService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewUserService(txManager, hasher, tokenService, geocoder, logger)

	return userServiceFixtures{
		service:      svc,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		geocoder:     geocoder,
	}
}

func TestUserService_RegisterDonor_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterDonorInput{
		Name:         "Corner Cafe",
		Email:        "owner@cornercafe.example",
		Password:     "Password123!",
		OrgName:      "Corner Cafe",
		FssaiLicense: "FSSAI-12345",
		Address: usecase.AddressInput{
			Label:       "Kitchen",
			FullAddress: "1 MG Road, Bengaluru",
		},
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.geocoder.EXPECT().
		Geocode(ctx, input.Address.FullAddress).
		Return(&service.GeocodeResult{Latitude: 12.9716, Longitude: 77.5946}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			authRepo := mockRepo.NewMockAuthRepository(t)
			addressRepo := mockRepo.NewMockAddressRepository(t)

			factory.EXPECT().NewUserRepository().Return(userRepo)
			factory.EXPECT().NewAuthRepository().Return(authRepo)
			factory.EXPECT().NewAddressRepository().Return(addressRepo)

			authRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(nil, repository.ErrAuthNotFound)

			userRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
					require.NotNil(t, user.DonorProfile)
					assert.Equal(t, input.FssaiLicense, user.DonorProfile.FssaiLicense)
				}).
				Return(nil)

			authRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, "hashed_password", auth.PasswordHash)
				}).
				Return(nil)

			addressRepo.EXPECT().
				CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).
				Run(func(ctx context.Context, address *entity.Address) {
					assert.Equal(t, entity.OwnerTypeDonorProfile, address.OwnerType)
					assert.True(t, address.IsPrimary)
					assert.Equal(t, 12.9716, address.Latitude)
					assert.Equal(t, 77.5946, address.Longitude)
				}).
				Return(nil)

			return fn(factory)
		})

	output, err := fx.service.RegisterDonor(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Contains(t, output.User.Roles(), entity.RoleDonor)
}

func TestUserService_RegisterDonor_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterDonorInput{
		Name:     "Corner Cafe",
		Email:    "owner@cornercafe.example",
		Password: "Password123!",
		Address:  usecase.AddressInput{FullAddress: "1 MG Road, Bengaluru"},
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.geocoder.EXPECT().
		Geocode(ctx, input.Address.FullAddress).
		Return(&service.GeocodeResult{Latitude: 12.97, Longitude: 77.59}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			authRepo := mockRepo.NewMockAuthRepository(t)
			addressRepo := mockRepo.NewMockAddressRepository(t)

			factory.EXPECT().NewUserRepository().Return(userRepo)
			factory.EXPECT().NewAuthRepository().Return(authRepo)
			factory.EXPECT().NewAddressRepository().Return(addressRepo)

			authRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: uuid.New()}, nil)

			return fn(factory)
		})

	output, err := fx.service.RegisterDonor(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDonorAlreadyExists))
}

func TestUserService_RegisterNgo_GeocodeFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterNgoInput{
		Name:     "Helping Hands",
		Email:    "ops@helpinghands.org",
		Password: "Password123!",
		Address:  usecase.AddressInput{FullAddress: "nowhere"},
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.geocoder.EXPECT().
		Geocode(ctx, input.Address.FullAddress).
		Return(nil, errors.New("provider unavailable"))

	// No transaction runs when the address cannot be resolved.
	output, err := fx.service.RegisterNgo(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrGeocodeFailed))
}

func TestUserService_RegisterNgo_MissingFields(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.RegisterNgo(context.Background(), &usecase.RegisterNgoInput{Email: "x@y.z"})
	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{Email: "ops@helpinghands.org", Password: "Password123!"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			authRepo := mockRepo.NewMockAuthRepository(t)

			factory.EXPECT().NewUserRepository().Return(userRepo)
			factory.EXPECT().NewAuthRepository().Return(authRepo)

			authRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)

			fx.hasher.EXPECT().Check(input.Password, "hashed").Return(true)

			userRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{
					ID:         userID,
					Email:      input.Email,
					NgoProfile: &entity.NgoProfile{UserID: userID},
				}, nil)

			fx.tokenService.EXPECT().
				GenerateTokens(userID, []string{"ngo"}).
				Return("access-token", "refresh-token", nil)

			return fn(factory)
		})

	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour * 24 * 7)

	output, err := fx.service.Login(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.False(t, output.RefreshTokenExpiresAt.IsZero())
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "ops@helpinghands.org", Password: "nope"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			authRepo := mockRepo.NewMockAuthRepository(t)

			factory.EXPECT().NewUserRepository().Return(userRepo)
			factory.EXPECT().NewAuthRepository().Return(authRepo)

			authRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email).
				Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}, nil)

			fx.hasher.EXPECT().Check(input.Password, "hashed").Return(false)

			return fn(factory)
		})

	output, err := fx.service.Login(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RefreshTokenInput{RefreshToken: "refresh-token"}

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().NewUserRepository().Return(userRepo)

			userRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{
					ID:         userID,
					NgoProfile: &entity.NgoProfile{UserID: userID},
				}, nil)

			// Roles come from the current profiles, not the old token.
			fx.tokenService.EXPECT().
				GenerateTokens(userID, []string{"ngo"}).
				Return("new-access", "new-refresh", nil)

			return fn(factory)
		})

	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour * 24 * 7)

	output, err := fx.service.RefreshToken(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_RefreshToken_Invalid(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().
		ValidateRefreshToken("expired-token").
		Return(nil, errors.New("token is expired"))

	output, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "expired-token"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_RefreshToken_DeletedUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().NewUserRepository().Return(userRepo)
			userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

			return fn(factory)
		})

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
