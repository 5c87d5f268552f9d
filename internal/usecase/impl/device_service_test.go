package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	mockRepo "foodbridge/internal/mocks/repository"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return deviceServiceFixtures{
		service:    NewDeviceService(deviceRepo, logger),
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.NgoDevice")).
		Run(func(ctx context.Context, device *entity.NgoDevice) {
			assert.Equal(t, userID, device.UserID)
			assert.True(t, device.IsActive)
		}).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "fcm-token-1",
		DeviceID: "device-1",
		Platform: "android",
	})
	require.NoError(t, err)
	require.NotNil(t, device)
	assert.Equal(t, "fcm-token-1", device.FCMToken)
}

func TestDeviceService_RegisterDevice_MissingToken(t *testing.T) {
	fx := createTestDeviceService(t)

	device, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{
		DeviceID: "device-1",
	})
	require.Error(t, err)
	assert.Nil(t, device)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDeviceService_GetUserDevices_EmptyIsNotNil(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, nil)

	devices, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, devices)
	assert.Len(t, devices, 0)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, userID, "device-1").Return(nil)

	require.NoError(t, fx.service.DeactivateDevice(ctx, userID, "device-1"))
}

func TestDeviceService_DeactivateDevice_MissingID(t *testing.T) {
	fx := createTestDeviceService(t)

	err := fx.service.DeactivateDevice(context.Background(), uuid.New(), "")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
