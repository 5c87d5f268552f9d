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

// matchRepository implements the repository.MatchRepository interface using GORM.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

// CreateMatchNotification persists a record of one matching round.
func (repo *matchRepository) CreateMatchNotification(ctx context.Context, match *entity.MatchNotification) error {
	matchM := fromMatchNotificationDomain(match)

	if err := repo.db.WithContext(ctx).Create(matchM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create match notification")
	}

	match.ID = matchM.ID
	match.CreatedAt = matchM.CreatedAt
	match.UpdatedAt = matchM.UpdatedAt

	return nil
}

// UpdateTotals updates the sent and failed counters of a match record.
func (repo *matchRepository) UpdateTotals(ctx context.Context, id uuid.UUID, totalSent, totalFailed int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MatchNotificationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_sent":   totalSent,
			"total_failed": totalFailed,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update match totals")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMatchNotFound
	}

	return nil
}

// BatchCreateMatchLogs persists the per-NGO outcome logs of a round.
func (repo *matchRepository) BatchCreateMatchLogs(ctx context.Context, logs []*entity.MatchLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.MatchLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromMatchLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).Create(&logModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create match logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID
	}

	return nil
}

// --- Mapper Functions ---

func fromMatchNotificationDomain(data *entity.MatchNotification) *model.MatchNotificationModel {
	if data == nil {
		return nil
	}

	return &model.MatchNotificationModel{
		ID:           data.ID,
		FoodItemID:   data.FoodItemID,
		DonorID:      data.DonorID,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		RadiusMeters: data.RadiusMeters,
		Attempt:      data.Attempt,
		TotalSent:    data.TotalSent,
		TotalFailed:  data.TotalFailed,
	}
}

func fromMatchLogDomain(data *entity.MatchLog) *model.MatchLogModel {
	if data == nil {
		return nil
	}

	return &model.MatchLogModel{
		ID:           data.ID,
		MatchID:      data.MatchID,
		NgoID:        data.NgoID,
		Channel:      data.Channel,
		Status:       data.Status,
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
	}
}
