package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// foodService implements the FoodItemUsecase interface.
type foodService struct {
	userRepo    repository.UserRepository
	foodRepo    repository.FoodItemRepository
	addressRepo repository.AddressRepository
	mediaStore  service.MediaStore
	matcher     usecase.MatcherUsecase
	logger      *slog.Logger
}

// NewFoodService creates the surplus food posting service.
func NewFoodService(
	userRepo repository.UserRepository,
	foodRepo repository.FoodItemRepository,
	addressRepo repository.AddressRepository,
	mediaStore service.MediaStore,
	matcher usecase.MatcherUsecase,
	logger *slog.Logger,
) usecase.FoodItemUsecase {
	return &foodService{
		userRepo:    userRepo,
		foodRepo:    foodRepo,
		addressRepo: addressRepo,
		mediaStore:  mediaStore,
		matcher:     matcher,
		logger:      logger,
	}
}

// PostFoodItem creates a food item for the donor and dispatches the NGO
// matching search anchored at the donor's primary address.
func (srv *foodService) PostFoodItem(ctx context.Context, donorID uuid.UUID, input *usecase.PostFoodItemInput) (*entity.FoodItem, error) {
	if input.Description == "" || input.Quantity == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("description and quantity are required")
	}

	donor, err := srv.userRepo.FindByID(ctx, donorID)
	if err != nil || donor.DonorProfile == nil {
		return nil, domainerrors.ErrDonorNotFound.WrapMessage("post food item failed")
	}

	item := &entity.FoodItem{
		DonorID:     donorID,
		Description: input.Description,
		Quantity:    input.Quantity,
		ExpiresAt:   input.ExpiresAt,
		Status:      entity.FoodItemAvailable,
	}

	if input.CoverImage != nil {
		key := fmt.Sprintf("food-items/%s", uuid.New())
		ref, err := srv.mediaStore.Save(ctx, key, input.CoverImageType, input.CoverImage)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store cover image")
		}
		item.CoverImageRef = ref
	}

	if err := srv.foodRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create food item")
	}

	// Anchor the search at the donor's primary pickup address. A donor with
	// no address still gets their posting, just without matching.
	address, err := srv.addressRepo.FindPrimaryAddress(ctx, donorID, entity.OwnerTypeDonorProfile)
	if err != nil {
		srv.logger.Warn("Donor has no primary address; skipping match dispatch",
			"donorID", donorID, "foodItemID", item.ID, "error", err)

		return item, nil
	}

	req := &usecase.MatchRequest{
		FoodItemID:  item.ID,
		DonorID:     donorID,
		Latitude:    address.Latitude,
		Longitude:   address.Longitude,
		FullAddress: address.FullAddress,
	}
	// Dispatch is best effort. The item row is already committed, so a
	// broker outage must not turn a successful post into an error the
	// caller would retry into a duplicate.
	if err := srv.matcher.Dispatch(ctx, req); err != nil {
		srv.logger.Error("Failed to dispatch match search", "foodItemID", item.ID, "error", err)

		return item, nil
	}

	srv.logger.Info("Food item posted", "foodItemID", item.ID, "donorID", donorID)

	return item, nil
}

// GetFoodItem retrieves a single food item.
func (srv *foodService) GetFoodItem(ctx context.Context, id uuid.UUID) (*entity.FoodItem, error) {
	item, err := srv.foodRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFoodItemNotFound) {
			return nil, domainerrors.ErrFoodItemNotFound.WrapMessage("get food item failed")
		}

		return nil, errors.Wrap(err, "failed to find food item")
	}

	return item, nil
}

// GetCoverImage streams the stored cover image of a food item.
func (srv *foodService) GetCoverImage(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error) {
	item, err := srv.foodRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFoodItemNotFound) {
			return nil, "", domainerrors.ErrFoodItemNotFound.WrapMessage("get cover image failed")
		}

		return nil, "", errors.Wrap(err, "failed to find food item")
	}

	if item.CoverImageRef == "" {
		return nil, "", domainerrors.ErrNotFound.WithDetails("food item has no cover image")
	}

	rc, contentType, err := srv.mediaStore.Open(ctx, item.CoverImageRef)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to open cover image")
	}

	return rc, contentType, nil
}

// GetDonorFoodItems retrieves all food items posted by a donor, newest first.
func (srv *foodService) GetDonorFoodItems(ctx context.Context, donorID uuid.UUID) ([]*entity.FoodItem, error) {
	items, err := srv.foodRepo.FindByDonor(ctx, donorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find donor food items")
	}

	if items == nil {
		items = []*entity.FoodItem{}
	}

	return items, nil
}
