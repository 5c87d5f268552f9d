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

// deliveryRepository implements the repository.DeliveryRepository interface using GORM.
type deliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository is the constructor for deliveryRepository.
func NewDeliveryRepository(db *gorm.DB) repository.DeliveryRepository {
	return &deliveryRepository{db: db}
}

// Create persists a new delivery record.
func (repo *deliveryRepository) Create(ctx context.Context, delivery *entity.Delivery) error {
	deliveryM := fromDeliveryDomain(delivery)

	if err := repo.db.WithContext(ctx).Create(deliveryM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required delivery information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery")
	}

	delivery.ID = deliveryM.ID
	delivery.CreatedAt = deliveryM.CreatedAt
	delivery.UpdatedAt = deliveryM.UpdatedAt

	return nil
}

// FindByID retrieves a delivery by its unique ID.
func (repo *deliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deliveryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery by id")
	}

	return toDeliveryDomain(&deliveryM), nil
}

// UpdateStatus transitions a delivery from one status to another. The WHERE
// clause carries the expected current status, so a concurrent transition
// makes this update match zero rows instead of silently overwriting.
func (repo *deliveryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.DeliveryStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update delivery status")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing delivery from one that moved on.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.DeliveryModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check delivery existence")
		}
		if count == 0 {
			return repository.ErrDeliveryNotFound
		}

		return repository.ErrDeliveryStateConflict
	}

	return nil
}

// deliveryViewRow is the scan target for the joined history query. Pointer
// columns come from LEFT JOINs and stay nil when the referenced party or
// food item no longer exists.
type deliveryViewRow struct {
	model.DeliveryModel

	DonorUserID  *uuid.UUID
	DonorName    *string
	DonorAddress *string
	DonorLat     *float64
	DonorLon     *float64

	NgoUserID  *uuid.UUID
	NgoName    *string
	NgoAddress *string
	NgoLat     *float64
	NgoLon     *float64

	FoodID          *uuid.UUID
	FoodDescription *string
	FoodQuantity    *string
}

// deliveryViewQuery joins deliveries with the donor, NGO and food item rows.
// All joins are LEFT JOINs: a delivery whose references dangle still comes
// back, with the corresponding summary columns null.
const deliveryViewQuery = `
	SELECT d.*,
	       du.id   AS donor_user_id,
	       du.name AS donor_name,
	       da.full_address AS donor_address,
	       da.latitude  AS donor_lat,
	       da.longitude AS donor_lon,
	       nu.id   AS ngo_user_id,
	       nu.name AS ngo_name,
	       na.full_address AS ngo_address,
	       na.latitude  AS ngo_lat,
	       na.longitude AS ngo_lon,
	       f.id          AS food_id,
	       f.description AS food_description,
	       f.quantity    AS food_quantity
	FROM deliveries d
	LEFT JOIN users du ON du.id = d.donor_id AND du.deleted_at IS NULL
	LEFT JOIN donor_profiles dp ON dp.user_id = d.donor_id
	LEFT JOIN addresses da ON da.owner_id = d.donor_id
	     AND da.owner_type = 'donor_profile' AND da.is_primary = true
	LEFT JOIN users nu ON nu.id = d.ngo_id AND nu.deleted_at IS NULL
	LEFT JOIN ngo_profiles np ON np.user_id = d.ngo_id
	LEFT JOIN addresses na ON na.owner_id = d.ngo_id
	     AND na.owner_type = 'ngo_profile' AND na.is_primary = true
	LEFT JOIN food_items f ON f.id = d.food_item_id
`

// FindHistoryByNgo retrieves the delivery history of an NGO, newest first.
func (repo *deliveryRepository) FindHistoryByNgo(ctx context.Context, ngoID uuid.UUID) ([]*entity.DeliveryView, error) {
	var rows []*deliveryViewRow

	query := deliveryViewQuery + ` WHERE d.ngo_id = ? ORDER BY d.created_at DESC`
	if err := repo.db.WithContext(ctx).
		Raw(query, ngoID).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find delivery history")
	}

	views := make([]*entity.DeliveryView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toDeliveryView(row))
	}

	return views, nil
}

// FindViewByID retrieves a single delivery with joined party and food item details.
func (repo *deliveryRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryView, error) {
	var rows []*deliveryViewRow

	query := deliveryViewQuery + ` WHERE d.id = ? LIMIT 1`
	if err := repo.db.WithContext(ctx).
		Raw(query, id).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find delivery view")
	}
	if len(rows) == 0 {
		return nil, repository.ErrDeliveryNotFound
	}

	return toDeliveryView(rows[0]), nil
}

// --- Mapper Functions ---

func toDeliveryDomain(data *model.DeliveryModel) *entity.Delivery {
	if data == nil {
		return nil
	}

	return &entity.Delivery{
		ID:         data.ID,
		NgoID:      data.NgoID,
		DonorID:    data.DonorID,
		FoodItemID: data.FoodItemID,
		Status:     entity.DeliveryStatus(data.Status),
		PickupCode: data.PickupCode,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromDeliveryDomain(data *entity.Delivery) *model.DeliveryModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryModel{
		ID:         data.ID,
		NgoID:      data.NgoID,
		DonorID:    data.DonorID,
		FoodItemID: data.FoodItemID,
		Status:     string(data.Status),
		PickupCode: data.PickupCode,
	}
}

func toDeliveryView(row *deliveryViewRow) *entity.DeliveryView {
	view := &entity.DeliveryView{
		Delivery: *toDeliveryDomain(&row.DeliveryModel),
	}

	if row.DonorUserID != nil {
		view.Donor = &entity.PartySummary{
			UserID: *row.DonorUserID,
			Name:   derefString(row.DonorName),
		}
		if row.DonorAddress != nil {
			view.Donor.FullAddress = *row.DonorAddress
			view.Donor.Latitude = derefFloat(row.DonorLat)
			view.Donor.Longitude = derefFloat(row.DonorLon)
		}
	}

	if row.NgoUserID != nil {
		view.Ngo = &entity.PartySummary{
			UserID: *row.NgoUserID,
			Name:   derefString(row.NgoName),
		}
		if row.NgoAddress != nil {
			view.Ngo.FullAddress = *row.NgoAddress
			view.Ngo.Latitude = derefFloat(row.NgoLat)
			view.Ngo.Longitude = derefFloat(row.NgoLon)
		}
	}

	if row.FoodID != nil {
		view.FoodItem = &entity.FoodItemSummary{
			ID:          *row.FoodID,
			Description: derefString(row.FoodDescription),
			Quantity:    derefString(row.FoodQuantity),
		}
	}

	return view
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}

	return *f
}
