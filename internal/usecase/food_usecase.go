package usecase

import (
	"context"
	"io"
	"time"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// PostFoodItemInput defines the data required to post surplus food.
// CoverImage is optional; when present it is stored and referenced
// from the created item.
type PostFoodItemInput struct {
	Description    string
	Quantity       string
	ExpiresAt      *time.Time
	CoverImage     io.Reader
	CoverImageType string
}

// FoodItemUsecase defines the interface for surplus food posting use cases
type FoodItemUsecase interface {
	// PostFoodItem creates a food item for the donor and starts the NGO
	// matching search from the donor's primary address
	PostFoodItem(ctx context.Context, donorID uuid.UUID, input *PostFoodItemInput) (*entity.FoodItem, error)

	// GetFoodItem retrieves a single food item
	GetFoodItem(ctx context.Context, id uuid.UUID) (*entity.FoodItem, error)

	// GetDonorFoodItems retrieves all food items posted by a donor, newest first
	GetDonorFoodItems(ctx context.Context, donorID uuid.UUID) ([]*entity.FoodItem, error)

	// GetCoverImage streams the stored cover image of a food item; the
	// second return value is its content type
	GetCoverImage(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error)
}
