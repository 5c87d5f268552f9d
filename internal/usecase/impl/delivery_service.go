package impl

import (
	"context"
	"fmt"
	"log/slog"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/usecase"
	"foodbridge/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// deliveryService implements the DeliveryUsecase interface.
type deliveryService struct {
	txManager    repository.TransactionManager
	deliveryRepo repository.DeliveryRepository
	mailSvc      service.MailService
	qrcodeSvc    service.QRCodeService
	logger       *slog.Logger
}

// NewDeliveryService creates the delivery tracking service.
func NewDeliveryService(
	txManager repository.TransactionManager,
	deliveryRepo repository.DeliveryRepository,
	mailSvc service.MailService,
	qrcodeSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.DeliveryUsecase {
	return &deliveryService{
		txManager:    txManager,
		deliveryRepo: deliveryRepo,
		mailSvc:      mailSvc,
		qrcodeSvc:    qrcodeSvc,
		logger:       logger,
	}
}

// StartDelivery creates a Pending delivery after validating every referenced
// party. Validation and lookups happen before any write, so a bad request
// leaves no record behind.
func (srv *deliveryService) StartDelivery(ctx context.Context, ngoID uuid.UUID, input *usecase.StartDeliveryInput) (*entity.DeliveryView, error) {
	if input.DonorID == "" || input.FoodItemID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("donor_id and food_item_id are required")
	}

	donorID, err := uuid.Parse(input.DonorID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("donor_id is not a valid UUID")
	}
	foodItemID, err := uuid.Parse(input.FoodItemID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("food_item_id is not a valid UUID")
	}

	var (
		created  *entity.Delivery
		ngoUser  *entity.User
		donor    *entity.User
		foodItem *entity.FoodItem
	)

	// All lookups and the insert share one transaction so a reference that
	// disappears mid-request cannot produce a dangling delivery.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		foodRepo := repoFactory.NewFoodItemRepository()
		deliveryRepo := repoFactory.NewDeliveryRepository()

		ngoUser, err = userRepo.FindByID(ctx, ngoID)
		if err != nil || ngoUser.NgoProfile == nil {
			return domainerrors.ErrNgoNotFound.WrapMessage("start delivery failed")
		}

		donor, err = userRepo.FindByID(ctx, donorID)
		if err != nil || donor.DonorProfile == nil {
			return domainerrors.ErrDonorNotFound.WrapMessage("start delivery failed")
		}

		foodItem, err = foodRepo.FindByID(ctx, foodItemID)
		if err != nil {
			return domainerrors.ErrFoodItemNotFound.WrapMessage("start delivery failed")
		}
		if foodItem.Status != entity.FoodItemAvailable {
			return domainerrors.ErrConflict.WithDetails("food item is no longer available")
		}

		pickupCode, err := util.GeneratePickupCode()
		if err != nil {
			return errors.WithStack(err)
		}

		created = &entity.Delivery{
			NgoID:      ngoID,
			DonorID:    donorID,
			FoodItemID: foodItemID,
			Status:     entity.DeliveryPending,
			PickupCode: pickupCode,
		}
		if err := deliveryRepo.Create(ctx, created); err != nil {
			return errors.WithStack(err)
		}

		// Compare-and-swap on the available status. The earlier read is only a
		// fast path; a concurrent claim loses here and rolls the insert back.
		if err := foodRepo.UpdateStatus(ctx, foodItemID, entity.FoodItemAvailable, entity.FoodItemClaimed); err != nil {
			if errors.Is(err, repository.ErrFoodItemStateConflict) {
				return domainerrors.ErrConflict.WithDetails("food item is no longer available")
			}

			return errors.WithStack(err)
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to start delivery",
			"ngoID", ngoID, "donorID", input.DonorID, "foodItemID", input.FoodItemID, "error", err)

		return nil, errors.Wrap(err, "failed to execute start delivery transaction")
	}

	// The pickup code email is best effort. The delivery exists either way;
	// the code also shows up in the QR endpoint.
	srv.sendPickupCode(ctx, ngoUser, donor, created)

	view, err := srv.deliveryRepo.FindViewByID(ctx, created.ID)
	if err != nil {
		// The record was committed; fall back to the bare delivery.
		srv.logger.Warn("Failed to load delivery view after create", "deliveryID", created.ID, "error", err)

		return &entity.DeliveryView{Delivery: *created}, nil
	}

	srv.logger.Info("Delivery started",
		"deliveryID", created.ID, "ngoID", ngoID, "donorID", donorID, "foodItemID", foodItemID)

	return view, nil
}

// AdvanceDelivery transitions a delivery between statuses with a
// compare-and-swap on the current status.
func (srv *deliveryService) AdvanceDelivery(ctx context.Context, ngoID, deliveryID uuid.UUID, input *usecase.AdvanceDeliveryInput) (*entity.Delivery, error) {
	if !input.From.IsValid() || !input.To.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown delivery status")
	}
	if !input.From.CanTransitionTo(input.To) {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("cannot transition from %s to %s", input.From, input.To))
	}

	delivery, err := srv.deliveryRepo.FindByID(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return nil, domainerrors.ErrDeliveryNotFound.WrapMessage("advance delivery failed")
		}

		return nil, errors.Wrap(err, "failed to find delivery")
	}

	if delivery.NgoID != ngoID {
		return nil, domainerrors.ErrForbidden.WrapMessage("delivery does not belong to this NGO")
	}

	if err := srv.deliveryRepo.UpdateStatus(ctx, deliveryID, input.From, input.To); err != nil {
		if errors.Is(err, repository.ErrDeliveryStateConflict) {
			return nil, domainerrors.ErrDeliveryStateConflict.WithDetails(
				fmt.Sprintf("delivery is no longer in status %s", input.From))
		}

		return nil, errors.Wrap(err, "failed to update delivery status")
	}

	delivery.Status = input.To
	srv.logger.Info("Delivery advanced",
		"deliveryID", deliveryID, "from", input.From, "to", input.To)

	return delivery, nil
}

// GetNgoHistory retrieves the NGO's deliveries, newest first.
func (srv *deliveryService) GetNgoHistory(ctx context.Context, ngoID uuid.UUID) ([]*entity.DeliveryView, error) {
	views, err := srv.deliveryRepo.FindHistoryByNgo(ctx, ngoID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find delivery history")
	}

	// An NGO with no deliveries gets an empty list, not null.
	if views == nil {
		views = []*entity.DeliveryView{}
	}

	return views, nil
}

// PickupQR renders a PNG QR code encoding the delivery's pickup credentials.
func (srv *deliveryService) PickupQR(ctx context.Context, ngoID, deliveryID uuid.UUID) ([]byte, error) {
	delivery, err := srv.deliveryRepo.FindByID(ctx, deliveryID)
	if err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return nil, domainerrors.ErrDeliveryNotFound.WrapMessage("pickup QR failed")
		}

		return nil, errors.Wrap(err, "failed to find delivery")
	}

	if delivery.NgoID != ngoID {
		return nil, domainerrors.ErrForbidden.WrapMessage("delivery does not belong to this NGO")
	}

	png, err := srv.qrcodeSvc.GeneratePickupQR(delivery.ID, delivery.PickupCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup QR")
	}

	return png, nil
}

// sendPickupCode emails the pickup code to the NGO contact. Failures are
// logged and swallowed.
func (srv *deliveryService) sendPickupCode(ctx context.Context, ngoUser, donor *entity.User, delivery *entity.Delivery) {
	subject := "Your pickup code"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour delivery from %s has been created.\n"+
			"Pickup code: %s\n\nShow this code to the donor at handoff.\n",
		ngoUser.Name, donor.Name, delivery.PickupCode,
	)

	if err := srv.mailSvc.Send(ctx, []string{ngoUser.NotificationEmail()}, subject, body); err != nil {
		srv.logger.Warn("Failed to email pickup code",
			"deliveryID", delivery.ID, "ngoID", ngoUser.ID, "error", err)
	}
}
