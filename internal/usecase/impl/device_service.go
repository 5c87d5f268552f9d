package impl

import (
	"context"
	"log/slog"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// NewDeviceService creates the NGO device management service.
func NewDeviceService(deviceRepo repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

// RegisterDevice registers a new device or refreshes an existing one.
func (srv *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.NgoDevice, error) {
	if deviceInfo.FCMToken == "" || deviceInfo.DeviceID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm_token and device_id are required")
	}

	device := &entity.NgoDevice{
		UserID:   userID,
		FCMToken: deviceInfo.FCMToken,
		DeviceID: deviceInfo.DeviceID,
		Platform: deviceInfo.Platform,
		IsActive: true,
	}

	if err := srv.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	srv.logger.Info("Device registered", "userID", userID, "deviceID", deviceInfo.DeviceID)

	return device, nil
}

// GetUserDevices retrieves all active devices for a user.
func (srv *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.NgoDevice, error) {
	devices, err := srv.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user devices")
	}

	if devices == nil {
		devices = []*entity.NgoDevice{}
	}

	return devices, nil
}

// DeactivateDevice removes a device registration owned by the user.
func (srv *deviceService) DeactivateDevice(ctx context.Context, userID uuid.UUID, deviceID string) error {
	if deviceID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("device_id is required")
	}

	if err := srv.deviceRepo.DeleteDevice(ctx, userID, deviceID); err != nil {
		return errors.Wrap(err, "failed to deactivate device")
	}

	return nil
}
