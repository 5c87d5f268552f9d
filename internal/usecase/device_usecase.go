package usecase

import (
	"context"

	"foodbridge/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for NGO device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes an existing one
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.NgoDevice, error)

	// GetUserDevices retrieves all active devices for a user
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.NgoDevice, error)

	// DeactivateDevice removes a device registration owned by the user
	DeactivateDevice(ctx context.Context, userID uuid.UUID, deviceID string) error
}
