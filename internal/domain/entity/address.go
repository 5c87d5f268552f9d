// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is the core entity for a physical location.
// It can be associated with a donor profile or an NGO profile.
type Address struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the address.
	OwnerID     uuid.UUID // The ID of the user whose profile owns this address.
	OwnerType   OwnerType // The type of the owning profile.
	Label       string    // A user-defined label, e.g., "Kitchen", "Warehouse".
	FullAddress string    // The full, human-readable street address.
	Latitude    float64   // The geographic latitude.
	Longitude   float64   // The geographic longitude.
	IsPrimary   bool      // Indicates if this is the primary address for the owner.
	CreatedAt   time.Time // Timestamp of when this address was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
