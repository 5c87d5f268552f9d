package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/service"
	mockSvc "foodbridge/internal/mocks/service"
	"foodbridge/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestMapsService(t *testing.T) (usecase.MapsUsecase, *mockSvc.MockGeocodingService) {
	geocoder := mockSvc.NewMockGeocodingService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewMapsService(geocoder, logger), geocoder
}

func TestMapsService_Geocode_Success(t *testing.T) {
	svc, geocoder := createTestMapsService(t)

	ctx := context.Background()
	geocoder.EXPECT().
		Geocode(ctx, "1 MG Road, Bengaluru").
		Return(&service.GeocodeResult{Latitude: 12.9716, Longitude: 77.5946}, nil)

	result, err := svc.Geocode(ctx, "1 MG Road, Bengaluru")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 12.9716, result.Latitude)
}

func TestMapsService_Geocode_BlankAddress(t *testing.T) {
	svc, _ := createTestMapsService(t)

	result, err := svc.Geocode(context.Background(), "   ")
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestMapsService_Geocode_ProviderError(t *testing.T) {
	svc, geocoder := createTestMapsService(t)

	ctx := context.Background()
	geocoder.EXPECT().
		Geocode(ctx, "nowhere").
		Return(nil, errors.New("provider unavailable"))

	result, err := svc.Geocode(ctx, "nowhere")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrGeocodeFailed))
}

func TestMapsService_TravelInfo_Success(t *testing.T) {
	svc, geocoder := createTestMapsService(t)

	ctx := context.Background()
	geocoder.EXPECT().
		GetTravelInfo(ctx, 12.97, 77.59, 13.01, 77.62).
		Return(&service.TravelInfo{DistanceMeters: 5400, DurationSeconds: 920}, nil)

	info, err := svc.TravelInfo(ctx, &usecase.TravelInfoInput{
		OriginLat: 12.97, OriginLon: 77.59,
		DestLat: 13.01, DestLon: 77.62,
	})
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, float64(5400), info.DistanceMeters)
}

func TestMapsService_TravelInfo_MissingOrigin(t *testing.T) {
	svc, _ := createTestMapsService(t)

	info, err := svc.TravelInfo(context.Background(), &usecase.TravelInfoInput{
		DestLat: 13.01, DestLon: 77.62,
	})
	require.Error(t, err)
	assert.Nil(t, info)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
