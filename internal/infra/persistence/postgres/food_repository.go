// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// foodItemRepository implements the repository.FoodItemRepository interface using GORM.
type foodItemRepository struct {
	db *gorm.DB
}

// NewFoodItemRepository is the constructor for foodItemRepository.
func NewFoodItemRepository(db *gorm.DB) repository.FoodItemRepository {
	return &foodItemRepository{db: db}
}

// Create persists a new food item.
func (repo *foodItemRepository) Create(ctx context.Context, item *entity.FoodItem) error {
	itemM := fromFoodItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required food item information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDonorNotFound.WrapMessage("invalid donor reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create food item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindByID retrieves a food item by its unique ID.
func (repo *foodItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodItem, error) {
	var itemM model.FoodItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find food item by id")
	}

	return toFoodItemDomain(&itemM), nil
}

// FindByDonor retrieves all food items posted by a donor, newest first.
func (repo *foodItemRepository) FindByDonor(ctx context.Context, donorID uuid.UUID) ([]*entity.FoodItem, error) {
	var itemModels []*model.FoodItemModel

	if err := repo.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find food items by donor")
	}

	items := make([]*entity.FoodItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toFoodItemDomain(itemM))
	}

	return items, nil
}

// UpdateStatus transitions a food item from one status to another. The WHERE
// clause carries the expected current status, so two NGOs racing to claim the
// same item make the losing update match zero rows instead of both winning.
func (repo *foodItemRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.FoodItemStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FoodItemModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update food item status")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing item from one that was already claimed.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.FoodItemModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check food item existence")
		}
		if count == 0 {
			return repository.ErrFoodItemNotFound
		}

		return repository.ErrFoodItemStateConflict
	}

	return nil
}

// --- Mapper Functions ---

func toFoodItemDomain(data *model.FoodItemModel) *entity.FoodItem {
	if data == nil {
		return nil
	}

	return &entity.FoodItem{
		ID:            data.ID,
		DonorID:       data.DonorID,
		Description:   data.Description,
		Quantity:      data.Quantity,
		CoverImageRef: data.CoverImageRef,
		ExpiresAt:     data.ExpiresAt,
		Status:        entity.FoodItemStatus(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromFoodItemDomain(data *entity.FoodItem) *model.FoodItemModel {
	if data == nil {
		return nil
	}

	return &model.FoodItemModel{
		ID:            data.ID,
		DonorID:       data.DonorID,
		Description:   data.Description,
		Quantity:      data.Quantity,
		CoverImageRef: data.CoverImageRef,
		ExpiresAt:     data.ExpiresAt,
		Status:        string(data.Status),
	}
}
