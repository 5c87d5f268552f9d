// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FoodItemStatus represents the lifecycle state of a posted food item.
type FoodItemStatus string

const (
	// FoodItemAvailable means the item is posted and waiting for an NGO.
	FoodItemAvailable FoodItemStatus = "available"
	// FoodItemClaimed means a delivery has been started for the item.
	FoodItemClaimed FoodItemStatus = "claimed"
	// FoodItemExpired means the item passed its expiry before being claimed.
	FoodItemExpired FoodItemStatus = "expired"
)

// FoodItem represents a surplus food posting by a donor.
// Apart from its lifecycle status the record is immutable after creation.
type FoodItem struct {
	ID            uuid.UUID      `json:"id"`              // The Global Unique Identifier (GUID) for the food item.
	DonorID       uuid.UUID      `json:"donor_id"`        // The ID of the donor who posted the item.
	Description   string         `json:"description"`     // A free-text description of the food.
	Quantity      string         `json:"quantity"`        // Quantity as entered by the donor, e.g., "20 meals".
	CoverImageRef string         `json:"cover_image_ref"` // Blob-store reference for the cover image.
	ExpiresAt     *time.Time     `json:"expires_at"`      // Optional time after which the food is no longer usable.
	Status        FoodItemStatus `json:"status"`          // Lifecycle status of the item.
	CreatedAt     time.Time      `json:"created_at"`      // Timestamp of when the item was posted.
	UpdatedAt     time.Time      `json:"updated_at"`      // Timestamp of the last modification.
}
