package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	mockRepo "foodbridge/internal/mocks/repository"
	mockSvc "foodbridge/internal/mocks/service"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deliveryServiceFixtures holds all test dependencies for delivery service tests.
type deliveryServiceFixtures struct {
	service      usecase.DeliveryUsecase
	txManager    *mockRepo.MockTransactionManager
	deliveryRepo *mockRepo.MockDeliveryRepository
	mailSvc      *mockSvc.MockMailService
	qrcodeSvc    *mockSvc.MockQRCodeService
}

func createTestDeliveryService(t *testing.T) deliveryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	mailSvc := mockSvc.NewMockMailService(t)
	qrcodeSvc := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewDeliveryService(txManager, deliveryRepo, mailSvc, qrcodeSvc, logger)

	return deliveryServiceFixtures{
		service:      service,
		txManager:    txManager,
		deliveryRepo: deliveryRepo,
		mailSvc:      mailSvc,
		qrcodeSvc:    qrcodeSvc,
	}
}

func ngoUserFixture(id uuid.UUID) *entity.User {
	return &entity.User{
		ID:    id,
		Name:  "Helping Hands",
		Email: "ops@helpinghands.org",
		NgoProfile: &entity.NgoProfile{
			UserID:         id,
			RegisteredName: "Helping Hands Trust",
			ContactEmail:   "pickup@helpinghands.org",
		},
	}
}

func donorUserFixture(id uuid.UUID) *entity.User {
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

func TestDeliveryService_StartDelivery_Success(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	ngoID := uuid.New()
	donorID := uuid.New()
	foodItemID := uuid.New()
	input := &usecase.StartDeliveryInput{
		DonorID:    donorID.String(),
		FoodItemID: foodItemID.String(),
	}

	var createdID uuid.UUID

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			foodRepo := mockRepo.NewMockFoodItemRepository(t)
			deliveryRepo := mockRepo.NewMockDeliveryRepository(t)

			factory.EXPECT().NewUserRepository().Return(userRepo)
			factory.EXPECT().NewFoodItemRepository().Return(foodRepo)
			factory.EXPECT().NewDeliveryRepository().Return(deliveryRepo)

			userRepo.EXPECT().FindByID(ctx, ngoID).Return(ngoUserFixture(ngoID), nil)
			userRepo.EXPECT().FindByID(ctx, donorID).Return(donorUserFixture(donorID), nil)
			foodRepo.EXPECT().FindByID(ctx, foodItemID).
				Return(&entity.FoodItem{ID: foodItemID, DonorID: donorID, Status: entity.FoodItemAvailable}, nil)

			deliveryRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Delivery")).
				Run(func(ctx context.Context, delivery *entity.Delivery) {
					delivery.ID = uuid.New()
					createdID = delivery.ID
					assert.Equal(t, entity.DeliveryPending, delivery.Status)
					assert.Len(t, delivery.PickupCode, 6)
				}).
				Return(nil)

			foodRepo.EXPECT().UpdateStatus(ctx, foodItemID, entity.FoodItemAvailable, entity.FoodItemClaimed).Return(nil)

			return fn(factory)
		})

	fx.mailSvc.EXPECT().
		Send(ctx, []string{"pickup@helpinghands.org"}, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(nil)

	fx.deliveryRepo.EXPECT().
		FindViewByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) (*entity.DeliveryView, error) {
			return &entity.DeliveryView{
				Delivery: entity.Delivery{
					ID:         id,
					NgoID:      ngoID,
					DonorID:    donorID,
					FoodItemID: foodItemID,
					Status:     entity.DeliveryPending,
				},
				Donor: &entity.PartySummary{UserID: donorID, Name: "Corner Cafe"},
				Ngo:   &entity.PartySummary{UserID: ngoID, Name: "Helping Hands"},
			}, nil
		})

	view, err := fx.service.StartDelivery(ctx, ngoID, input)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, createdID, view.Delivery.ID)
	assert.Equal(t, entity.DeliveryPending, view.Delivery.Status)
	assert.Equal(t, donorID, view.Donor.UserID)
	assert.Equal(t, ngoID, view.Ngo.UserID)
}

func TestDeliveryService_StartDelivery_BlankInput(t *testing.T) {
	fx := createTestDeliveryService(t)

	view, err := fx.service.StartDelivery(context.Background(), uuid.New(), &usecase.StartDeliveryInput{})
	require.Error(t, err)
	assert.Nil(t, view)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	// No transaction ran, so nothing was persisted.
}

func TestDeliveryService_StartDelivery_MalformedID(t *testing.T) {
	fx := createTestDeliveryService(t)

	input := &usecase.StartDeliveryInput{DonorID: "not-a-uuid", FoodItemID: uuid.New().String()}
	view, err := fx.service.StartDelivery(context.Background(), uuid.New(), input)
	require.Error(t, err)
	assert.Nil(t, view)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDeliveryService_StartDelivery_UnknownDonor(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	ngoID := uuid.New()
	donorID := uuid.New()
	input := &usecase.StartDeliveryInput{
		DonorID:    donorID.String(),
		FoodItemID: uuid.New().String(),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			foodRepo := mockRepo.NewMockFoodItemRepository(t)
			deliveryRepo := mockRepo.NewMockDeliveryRepository(t)

			factory.EXPECT().NewUserRepository().Return(userRepo)
			factory.EXPECT().NewFoodItemRepository().Return(foodRepo)
			factory.EXPECT().NewDeliveryRepository().Return(deliveryRepo)

			userRepo.EXPECT().FindByID(ctx, ngoID).Return(ngoUserFixture(ngoID), nil)
			userRepo.EXPECT().FindByID(ctx, donorID).Return(nil, repository.ErrUserNotFound)

			// The delivery repo never sees a Create: the rollback leaves
			// zero records.
			return fn(factory)
		})

	view, err := fx.service.StartDelivery(ctx, ngoID, input)
	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrDonorNotFound))
}

func TestDeliveryService_StartDelivery_LosesClaimRace(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	ngoID := uuid.New()
	donorID := uuid.New()
	foodItemID := uuid.New()
	input := &usecase.StartDeliveryInput{
		DonorID:    donorID.String(),
		FoodItemID: foodItemID.String(),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			foodRepo := mockRepo.NewMockFoodItemRepository(t)
			deliveryRepo := mockRepo.NewMockDeliveryRepository(t)

			factory.EXPECT().NewUserRepository().Return(userRepo)
			factory.EXPECT().NewFoodItemRepository().Return(foodRepo)
			factory.EXPECT().NewDeliveryRepository().Return(deliveryRepo)

			userRepo.EXPECT().FindByID(ctx, ngoID).Return(ngoUserFixture(ngoID), nil)
			userRepo.EXPECT().FindByID(ctx, donorID).Return(donorUserFixture(donorID), nil)

			// The read still sees the item available; another NGO claims it
			// between this read and the status swap.
			foodRepo.EXPECT().FindByID(ctx, foodItemID).
				Return(&entity.FoodItem{ID: foodItemID, DonorID: donorID, Status: entity.FoodItemAvailable}, nil)
			deliveryRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Delivery")).
				Return(nil)
			foodRepo.EXPECT().
				UpdateStatus(ctx, foodItemID, entity.FoodItemAvailable, entity.FoodItemClaimed).
				Return(repository.ErrFoodItemStateConflict)

			return fn(factory)
		})

	view, err := fx.service.StartDelivery(ctx, ngoID, input)
	require.Error(t, err)
	assert.Nil(t, view)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONFLICT", appErr.ErrorCode())
	// The transaction returned an error, so the delivery insert rolled back.
}

func TestDeliveryService_StartDelivery_MailFailureDoesNotFail(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	ngoID := uuid.New()
	donorID := uuid.New()
	foodItemID := uuid.New()
	input := &usecase.StartDeliveryInput{
		DonorID:    donorID.String(),
		FoodItemID: foodItemID.String(),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			foodRepo := mockRepo.NewMockFoodItemRepository(t)
			deliveryRepo := mockRepo.NewMockDeliveryRepository(t)

			factory.EXPECT().NewUserRepository().Return(userRepo)
			factory.EXPECT().NewFoodItemRepository().Return(foodRepo)
			factory.EXPECT().NewDeliveryRepository().Return(deliveryRepo)

			userRepo.EXPECT().FindByID(ctx, ngoID).Return(ngoUserFixture(ngoID), nil)
			userRepo.EXPECT().FindByID(ctx, donorID).Return(donorUserFixture(donorID), nil)
			foodRepo.EXPECT().FindByID(ctx, foodItemID).
				Return(&entity.FoodItem{ID: foodItemID, DonorID: donorID, Status: entity.FoodItemAvailable}, nil)
			deliveryRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Delivery")).
				Run(func(ctx context.Context, delivery *entity.Delivery) {
					delivery.ID = uuid.New()
				}).
				Return(nil)
			foodRepo.EXPECT().UpdateStatus(ctx, foodItemID, entity.FoodItemAvailable, entity.FoodItemClaimed).Return(nil)

			return fn(factory)
		})

	fx.mailSvc.EXPECT().
		Send(ctx, []string{"pickup@helpinghands.org"}, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(errors.New("smtp refused"))

	fx.deliveryRepo.EXPECT().
		FindViewByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) (*entity.DeliveryView, error) {
			return &entity.DeliveryView{Delivery: entity.Delivery{ID: id, Status: entity.DeliveryPending}}, nil
		})

	view, err := fx.service.StartDelivery(ctx, ngoID, input)
	require.NoError(t, err)
	assert.NotNil(t, view)
}

func TestDeliveryService_AdvanceDelivery_Success(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	ngoID := uuid.New()
	deliveryID := uuid.New()

	fx.deliveryRepo.EXPECT().
		FindByID(ctx, deliveryID).
		Return(&entity.Delivery{ID: deliveryID, NgoID: ngoID, Status: entity.DeliveryPending}, nil)
	fx.deliveryRepo.EXPECT().
		UpdateStatus(ctx, deliveryID, entity.DeliveryPending, entity.DeliveryStarted).
		Return(nil)

	delivery, err := fx.service.AdvanceDelivery(ctx, ngoID, deliveryID, &usecase.AdvanceDeliveryInput{
		From: entity.DeliveryPending,
		To:   entity.DeliveryStarted,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStarted, delivery.Status)
}

func TestDeliveryService_AdvanceDelivery_IllegalTransition(t *testing.T) {
	fx := createTestDeliveryService(t)

	// Pending cannot jump straight to Completed.
	delivery, err := fx.service.AdvanceDelivery(context.Background(), uuid.New(), uuid.New(), &usecase.AdvanceDeliveryInput{
		From: entity.DeliveryPending,
		To:   entity.DeliveryCompleted,
	})
	require.Error(t, err)
	assert.Nil(t, delivery)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDeliveryService_AdvanceDelivery_StateConflict(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	ngoID := uuid.New()
	deliveryID := uuid.New()

	fx.deliveryRepo.EXPECT().
		FindByID(ctx, deliveryID).
		Return(&entity.Delivery{ID: deliveryID, NgoID: ngoID, Status: entity.DeliveryStarted}, nil)
	fx.deliveryRepo.EXPECT().
		UpdateStatus(ctx, deliveryID, entity.DeliveryStarted, entity.DeliveryCompleted).
		Return(repository.ErrDeliveryStateConflict)

	delivery, err := fx.service.AdvanceDelivery(ctx, ngoID, deliveryID, &usecase.AdvanceDeliveryInput{
		From: entity.DeliveryStarted,
		To:   entity.DeliveryCompleted,
	})
	require.Error(t, err)
	assert.Nil(t, delivery)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DELIVERY_STATE_CONFLICT", appErr.ErrorCode())
}

func TestDeliveryService_AdvanceDelivery_WrongNgo(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	deliveryID := uuid.New()

	fx.deliveryRepo.EXPECT().
		FindByID(ctx, deliveryID).
		Return(&entity.Delivery{ID: deliveryID, NgoID: uuid.New(), Status: entity.DeliveryPending}, nil)

	delivery, err := fx.service.AdvanceDelivery(ctx, uuid.New(), deliveryID, &usecase.AdvanceDeliveryInput{
		From: entity.DeliveryPending,
		To:   entity.DeliveryStarted,
	})
	require.Error(t, err)
	assert.Nil(t, delivery)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestDeliveryService_GetNgoHistory_EmptyIsNotNil(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	ngoID := uuid.New()

	fx.deliveryRepo.EXPECT().
		FindHistoryByNgo(ctx, ngoID).
		Return(nil, nil)

	views, err := fx.service.GetNgoHistory(ctx, ngoID)
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestDeliveryService_GetNgoHistory_KeepsDanglingDonorNil(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	ngoID := uuid.New()

	rows := []*entity.DeliveryView{
		{
			Delivery: entity.Delivery{ID: uuid.New(), NgoID: ngoID, Status: entity.DeliveryCompleted},
			Donor:    nil, // donor account removed after the delivery
			Ngo:      &entity.PartySummary{UserID: ngoID, Name: "Helping Hands"},
		},
	}

	fx.deliveryRepo.EXPECT().
		FindHistoryByNgo(ctx, ngoID).
		Return(rows, nil)

	views, err := fx.service.GetNgoHistory(ctx, ngoID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Nil(t, views[0].Donor)
	assert.NotNil(t, views[0].Ngo)
}

func TestDeliveryService_PickupQR_Success(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	ngoID := uuid.New()
	deliveryID := uuid.New()

	fx.deliveryRepo.EXPECT().
		FindByID(ctx, deliveryID).
		Return(&entity.Delivery{ID: deliveryID, NgoID: ngoID, PickupCode: "123456"}, nil)
	fx.qrcodeSvc.EXPECT().
		GeneratePickupQR(deliveryID, "123456").
		Return([]byte("png-bytes"), nil)

	png, err := fx.service.PickupQR(ctx, ngoID, deliveryID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestDeliveryService_PickupQR_NotFound(t *testing.T) {
	fx := createTestDeliveryService(t)

	ctx := context.Background()
	deliveryID := uuid.New()

	fx.deliveryRepo.EXPECT().
		FindByID(ctx, deliveryID).
		Return(nil, repository.ErrDeliveryNotFound)

	png, err := fx.service.PickupQR(ctx, uuid.New(), deliveryID)
	require.Error(t, err)
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrDeliveryNotFound))
}
