// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NgoDevice represents a push-notification target registered by NGO staff.
type NgoDevice struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the device.
	UserID    uuid.UUID `json:"user_id"`    // The NGO user this device belongs to.
	FCMToken  string    `json:"fcm_token"`  // The Firebase Cloud Messaging registration token.
	DeviceID  string    `json:"device_id"`  // Client-supplied stable device identifier.
	Platform  string    `json:"platform"`   // "ios", "android" or "web".
	IsActive  bool      `json:"is_active"`  // Inactive devices are skipped when dispatching.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the device was registered.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
