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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading their associated profiles.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("DonorProfile").
		Preload("NgoProfile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading profiles.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("DonorProfile").
		Preload("NgoProfile").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity, including its associated profiles.
// GORM's Create with associations inserts into users, donor_profiles and/or
// ngo_profiles in one statement batch.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid foreign key reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	if user.DonorProfile != nil && userM.DonorProfile != nil {
		user.DonorProfile.UserID = userM.DonorProfile.UserID
		user.DonorProfile.UpdatedAt = userM.DonorProfile.UpdatedAt
	}
	if user.NgoProfile != nil && userM.NgoProfile != nil {
		user.NgoProfile.UserID = userM.NgoProfile.UserID
		user.NgoProfile.UpdatedAt = userM.NgoProfile.UpdatedAt
	}

	return nil
}

// Update modifies an existing user entity, including its associated profiles.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("invalid foreign key reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt
	if user.DonorProfile != nil && userM.DonorProfile != nil {
		user.DonorProfile.UpdatedAt = userM.DonorProfile.UpdatedAt
	}
	if user.NgoProfile != nil && userM.NgoProfile != nil {
		user.NgoProfile.UpdatedAt = userM.NgoProfile.UpdatedAt
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		DonorProfile: toDonorProfileDomain(data.DonorProfile),
		NgoProfile:   toNgoProfileDomain(data.NgoProfile),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		DonorProfile: fromDonorProfileDomain(data.DonorProfile),
		NgoProfile:   fromNgoProfileDomain(data.NgoProfile),
	}
}

func toDonorProfileDomain(data *model.DonorProfileModel) *entity.DonorProfile {
	if data == nil {
		return nil
	}

	return &entity.DonorProfile{
		UserID:       data.UserID,
		OrgName:      data.OrgName,
		FssaiLicense: data.FssaiLicense,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromDonorProfileDomain(data *entity.DonorProfile) *model.DonorProfileModel {
	if data == nil {
		return nil
	}

	return &model.DonorProfileModel{
		UserID:       data.UserID,
		OrgName:      data.OrgName,
		FssaiLicense: data.FssaiLicense,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toNgoProfileDomain(data *model.NgoProfileModel) *entity.NgoProfile {
	if data == nil {
		return nil
	}

	return &entity.NgoProfile{
		UserID:         data.UserID,
		RegisteredName: data.RegisteredName,
		LicenseNumber:  data.LicenseNumber,
		ContactEmail:   data.ContactEmail,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromNgoProfileDomain(data *entity.NgoProfile) *model.NgoProfileModel {
	if data == nil {
		return nil
	}

	return &model.NgoProfileModel{
		UserID:         data.UserID,
		RegisteredName: data.RegisteredName,
		LicenseNumber:  data.LicenseNumber,
		ContactEmail:   data.ContactEmail,
		UpdatedAt:      data.UpdatedAt,
	}
}
