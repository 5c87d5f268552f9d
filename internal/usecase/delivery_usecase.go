package usecase

import (
	"context"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// StartDeliveryInput defines the data required to start a delivery.
// IDs arrive as strings from the transport layer and are validated
// here so malformed requests leave no record behind.
type StartDeliveryInput struct {
	DonorID    string
	FoodItemID string
}

// AdvanceDeliveryInput defines a requested status transition.
type AdvanceDeliveryInput struct {
	From entity.DeliveryStatus
	To   entity.DeliveryStatus
}

// DeliveryUsecase defines the interface for delivery tracking use cases
type DeliveryUsecase interface {
	// StartDelivery creates a Pending delivery for the NGO, issues a pickup
	// code, and emails it to the NGO contact (best effort). Returns the
	// delivery together with donor and NGO details.
	StartDelivery(ctx context.Context, ngoID uuid.UUID, input *StartDeliveryInput) (*entity.DeliveryView, error)

	// AdvanceDelivery transitions a delivery between statuses. The
	// transition is compare-and-swap: a delivery that already moved on
	// yields a conflict instead of being overwritten.
	AdvanceDelivery(ctx context.Context, ngoID, deliveryID uuid.UUID, input *AdvanceDeliveryInput) (*entity.Delivery, error)

	// GetNgoHistory retrieves the NGO's deliveries, newest first, with
	// donor, NGO and food item details joined in.
	GetNgoHistory(ctx context.Context, ngoID uuid.UUID) ([]*entity.DeliveryView, error)

	// PickupQR renders a PNG QR code encoding the delivery's pickup
	// credentials for handoff verification.
	PickupQR(ctx context.Context, ngoID, deliveryID uuid.UUID) ([]byte, error)
}
