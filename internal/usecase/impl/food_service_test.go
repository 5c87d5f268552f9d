package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	mockRepo "foodbridge/internal/mocks/repository"
	mockSvc "foodbridge/internal/mocks/service"
	mockUC "foodbridge/internal/mocks/usecase"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type foodServiceFixtures struct {
	service     usecase.FoodItemUsecase
	userRepo    *mockRepo.MockUserRepository
	foodRepo    *mockRepo.MockFoodItemRepository
	addressRepo *mockRepo.MockAddressRepository
	mediaStore  *mockSvc.MockMediaStore
	matcher     *mockUC.MockMatcherUsecase
}

func createTestFoodService(t *testing.T) foodServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	foodRepo := mockRepo.NewMockFoodItemRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	mediaStore := mockSvc.NewMockMediaStore(t)
	matcher := mockUC.NewMockMatcherUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewFoodService(userRepo, foodRepo, addressRepo, mediaStore, matcher, logger)

	return foodServiceFixtures{
		service:     svc,
		userRepo:    userRepo,
		foodRepo:    foodRepo,
		addressRepo: addressRepo,
		mediaStore:  mediaStore,
		matcher:     matcher,
	}
}

func donorFixture(id uuid.UUID) *entity.User {
	return &entity.User{
		ID:    id,
		Name:  "Corner Cafe",
		Email: "owner@cornercafe.example",
		DonorProfile: &entity.DonorProfile{
			UserID:  id,
			OrgName: "Corner Cafe",
		},
	}
}

func TestFoodService_PostFoodItem_Success(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	donorID := uuid.New()
	itemID := uuid.New()
	input := &usecase.PostFoodItemInput{
		Description: "20 veg meals",
		Quantity:    "20 boxes",
	}

	fx.userRepo.EXPECT().FindByID(ctx, donorID).Return(donorFixture(donorID), nil)

	fx.foodRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.FoodItem")).
		Run(func(ctx context.Context, item *entity.FoodItem) {
			item.ID = itemID
			assert.Equal(t, entity.FoodItemAvailable, item.Status)
		}).
		Return(nil)

	fx.addressRepo.EXPECT().
		FindPrimaryAddress(ctx, donorID, entity.OwnerTypeDonorProfile).
		Return(&entity.Address{
			OwnerID:     donorID,
			Latitude:    12.9716,
			Longitude:   77.5946,
			FullAddress: "1 MG Road, Bengaluru",
		}, nil)

	fx.matcher.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*usecase.MatchRequest")).
		Run(func(ctx context.Context, req *usecase.MatchRequest) {
			assert.Equal(t, itemID, req.FoodItemID)
			assert.Equal(t, donorID, req.DonorID)
			assert.Equal(t, 12.9716, req.Latitude)
			assert.Equal(t, "1 MG Road, Bengaluru", req.FullAddress)
		}).
		Return(nil)

	item, err := fx.service.PostFoodItem(ctx, donorID, input)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, itemID, item.ID)
	assert.Empty(t, item.CoverImageRef)
}

func TestFoodService_PostFoodItem_WithCoverImage(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	donorID := uuid.New()
	input := &usecase.PostFoodItemInput{
		Description:    "bakery surplus",
		Quantity:       "3 crates",
		CoverImage:     strings.NewReader("not-really-a-jpeg"),
		CoverImageType: "image/jpeg",
	}

	fx.userRepo.EXPECT().FindByID(ctx, donorID).Return(donorFixture(donorID), nil)

	fx.mediaStore.EXPECT().
		Save(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "food-items/")
		}), "image/jpeg", input.CoverImage).
		Return("blob://food-items/abc", nil)

	fx.foodRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.FoodItem")).
		Run(func(ctx context.Context, item *entity.FoodItem) {
			item.ID = uuid.New()
			assert.Equal(t, "blob://food-items/abc", item.CoverImageRef)
		}).
		Return(nil)

	fx.addressRepo.EXPECT().
		FindPrimaryAddress(ctx, donorID, entity.OwnerTypeDonorProfile).
		Return(&entity.Address{OwnerID: donorID, FullAddress: "1 MG Road"}, nil)

	fx.matcher.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*usecase.MatchRequest")).
		Return(nil)

	item, err := fx.service.PostFoodItem(ctx, donorID, input)
	require.NoError(t, err)
	assert.Equal(t, "blob://food-items/abc", item.CoverImageRef)
}

func TestFoodService_PostFoodItem_MissingFields(t *testing.T) {
	fx := createTestFoodService(t)

	item, err := fx.service.PostFoodItem(context.Background(), uuid.New(), &usecase.PostFoodItemInput{})
	require.Error(t, err)
	assert.Nil(t, item)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestFoodService_PostFoodItem_NotADonor(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	ngoID := uuid.New()
	fx.userRepo.EXPECT().
		FindByID(ctx, ngoID).
		Return(&entity.User{ID: ngoID, NgoProfile: &entity.NgoProfile{UserID: ngoID}}, nil)

	item, err := fx.service.PostFoodItem(ctx, ngoID, &usecase.PostFoodItemInput{
		Description: "meals",
		Quantity:    "5 boxes",
	})
	require.Error(t, err)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrDonorNotFound))
}

func TestFoodService_PostFoodItem_NoPrimaryAddressSkipsMatching(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	donorID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, donorID).Return(donorFixture(donorID), nil)
	fx.foodRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.FoodItem")).
		Run(func(ctx context.Context, item *entity.FoodItem) { item.ID = uuid.New() }).
		Return(nil)
	fx.addressRepo.EXPECT().
		FindPrimaryAddress(ctx, donorID, entity.OwnerTypeDonorProfile).
		Return(nil, repository.ErrAddressNotFound)

	// The posting still succeeds; no dispatch expectation is registered.
	item, err := fx.service.PostFoodItem(ctx, donorID, &usecase.PostFoodItemInput{
		Description: "meals",
		Quantity:    "5 boxes",
	})
	require.NoError(t, err)
	require.NotNil(t, item)
}

func TestFoodService_PostFoodItem_DispatchErrorDoesNotFail(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	donorID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, donorID).Return(donorFixture(donorID), nil)
	fx.foodRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.FoodItem")).
		Run(func(ctx context.Context, item *entity.FoodItem) { item.ID = uuid.New() }).
		Return(nil)
	fx.addressRepo.EXPECT().
		FindPrimaryAddress(ctx, donorID, entity.OwnerTypeDonorProfile).
		Return(&entity.Address{OwnerID: donorID, FullAddress: "1 MG Road"}, nil)
	fx.matcher.EXPECT().
		Dispatch(ctx, mock.AnythingOfType("*usecase.MatchRequest")).
		Return(errors.New("broker unavailable"))

	// The item row is already committed when dispatch runs, so the caller
	// still gets the created item back.
	item, err := fx.service.PostFoodItem(ctx, donorID, &usecase.PostFoodItemInput{
		Description: "meals",
		Quantity:    "5 boxes",
	})
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, entity.FoodItemAvailable, item.Status)
}

func TestFoodService_GetFoodItem_NotFound(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.foodRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrFoodItemNotFound)

	item, err := fx.service.GetFoodItem(ctx, id)
	require.Error(t, err)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrFoodItemNotFound))
}

func TestFoodService_GetDonorFoodItems_EmptyIsNotNil(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	donorID := uuid.New()
	fx.foodRepo.EXPECT().FindByDonor(ctx, donorID).Return(nil, nil)

	items, err := fx.service.GetDonorFoodItems(ctx, donorID)
	require.NoError(t, err)
	require.NotNil(t, items)
	assert.Len(t, items, 0)
}

func TestFoodService_GetCoverImage_Success(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.foodRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.FoodItem{ID: id, CoverImageRef: "food-items/abc", Status: entity.FoodItemAvailable}, nil)
	fx.mediaStore.EXPECT().
		Open(ctx, "food-items/abc").
		Return(io.NopCloser(strings.NewReader("png-bytes")), "image/png", nil)

	rc, contentType, err := fx.service.GetCoverImage(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, rc)
	defer rc.Close()

	assert.Equal(t, "image/png", contentType)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestFoodService_GetCoverImage_NoImage(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	id := uuid.New()

	// An item posted without an image has nothing to stream.
	fx.foodRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.FoodItem{ID: id, Status: entity.FoodItemAvailable}, nil)

	rc, contentType, err := fx.service.GetCoverImage(ctx, id)
	require.Error(t, err)
	assert.Nil(t, rc)
	assert.Empty(t, contentType)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}
