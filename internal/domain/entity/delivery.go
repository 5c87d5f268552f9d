// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus represents the lifecycle state of a delivery.
// Transitions are monotonic: Pending → Started → {Completed, Failed}.
type DeliveryStatus string

const (
	// DeliveryPending means the delivery record was created but pickup has not begun.
	DeliveryPending DeliveryStatus = "pending"
	// DeliveryStarted means the NGO confirmed pickup is underway.
	DeliveryStarted DeliveryStatus = "started"
	// DeliveryCompleted means the handoff finished successfully.
	DeliveryCompleted DeliveryStatus = "completed"
	// DeliveryFailed means the handoff was abandoned.
	DeliveryFailed DeliveryStatus = "failed"
)

// IsValid checks if the DeliveryStatus is a valid value.
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryPending, DeliveryStarted, DeliveryCompleted, DeliveryFailed:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether moving from s to next is a legal forward step.
func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	switch s {
	case DeliveryPending:
		return next == DeliveryStarted
	case DeliveryStarted:
		return next == DeliveryCompleted || next == DeliveryFailed
	default:
		// Completed and Failed are terminal.
		return false
	}
}

// Delivery tracks the handoff of a food item from a donor to an NGO.
// Donor, NGO and food item are weak references resolved via join at read time.
type Delivery struct {
	ID         uuid.UUID      `json:"id"`           // The Global Unique Identifier (GUID) for the delivery.
	NgoID      uuid.UUID      `json:"ngo_id"`       // The ID of the receiving NGO.
	DonorID    uuid.UUID      `json:"donor_id"`     // The ID of the donating party.
	FoodItemID uuid.UUID      `json:"food_item_id"` // The ID of the food item being handed off.
	Status     DeliveryStatus `json:"status"`       // Current lifecycle status.
	PickupCode string         `json:"-"`            // One-time 6-digit code emailed to the NGO for pickup confirmation.
	CreatedAt  time.Time      `json:"created_at"`   // Timestamp of when the delivery was created.
	UpdatedAt  time.Time      `json:"updated_at"`   // Timestamp of the last status change.
}

// PartySummary is the denormalized identifying view of a donor or NGO
// attached to a delivery. A nil summary means the reference dangles.
type PartySummary struct {
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	FullAddress string    `json:"full_address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
}

// FoodItemSummary is the denormalized view of the food item attached to a delivery.
type FoodItemSummary struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Quantity    string    `json:"quantity"`
}

// DeliveryView joins a delivery with its donor, NGO and food item summaries.
// Dangling references yield nil summaries rather than failing the whole query.
type DeliveryView struct {
	Delivery Delivery         `json:"delivery"`
	Donor    *PartySummary    `json:"donor"`
	Ngo      *PartySummary    `json:"ngo"`
	FoodItem *FoodItemSummary `json:"food_item"`
}
