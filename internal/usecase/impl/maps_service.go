package impl

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/usecase"
)

// mapsService implements the MapsUsecase interface as a thin validation layer
// over the external geocoding provider.
type mapsService struct {
	geocoder service.GeocodingService
	logger   *slog.Logger
}

// NewMapsService creates the maps proxy service.
func NewMapsService(geocoder service.GeocodingService, logger *slog.Logger) usecase.MapsUsecase {
	return &mapsService{
		geocoder: geocoder,
		logger:   logger,
	}
}

// Geocode resolves a street address into coordinates.
func (srv *mapsService) Geocode(ctx context.Context, address string) (*service.GeocodeResult, error) {
	if strings.TrimSpace(address) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address is required")
	}

	result, err := srv.geocoder.Geocode(ctx, address)
	if err != nil {
		srv.logger.Warn("Geocode failed", "address", address, "error", err)

		return nil, domainerrors.ErrGeocodeFailed.WrapMessage("geocode failed")
	}

	return result, nil
}

// TravelInfo estimates the road distance and duration between two points.
func (srv *mapsService) TravelInfo(ctx context.Context, input *usecase.TravelInfoInput) (*service.TravelInfo, error) {
	if input.OriginLat == 0 && input.OriginLon == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("origin coordinates are required")
	}
	if input.DestLat == 0 && input.DestLon == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("destination coordinates are required")
	}

	info, err := srv.geocoder.GetTravelInfo(ctx, input.OriginLat, input.OriginLon, input.DestLat, input.DestLon)
	if err != nil {
		srv.logger.Warn("Travel info failed", "error", err)

		return nil, domainerrors.ErrGeocodeFailed.WrapMessage("travel info failed")
	}

	return info, nil
}
