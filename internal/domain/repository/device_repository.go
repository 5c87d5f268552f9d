// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/errors"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device cannot be found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines persistence operations for NGO push devices.
type DeviceRepository interface {
	// CreateDevice registers a device token for a user. Registering the same
	// device ID again refreshes its FCM token instead of creating a duplicate.
	CreateDevice(ctx context.Context, device *entity.NgoDevice) error

	// FindDevicesByUser retrieves all active devices of a user.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.NgoDevice, error)

	// FindActiveDevicesByUsers retrieves all active devices of the given
	// users in one query. Used by the matcher to fan out push notifications.
	FindActiveDevicesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.NgoDevice, error)

	// DeactivateByTokens marks the devices holding the given FCM tokens as
	// inactive. Used to prune tokens FCM reports as invalid.
	DeactivateByTokens(ctx context.Context, tokens []string) error

	// DeleteDevice removes a device registration owned by the user.
	DeleteDevice(ctx context.Context, userID uuid.UUID, deviceID string) error
}
