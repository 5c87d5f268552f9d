package usecase

import (
	"context"

	"foodbridge/internal/domain/service"
)

// TravelInfoInput defines the origin and destination of a travel estimate.
type TravelInfoInput struct {
	OriginLat float64 `json:"origin_lat"`
	OriginLon float64 `json:"origin_lon"`
	DestLat   float64 `json:"dest_lat"`
	DestLon   float64 `json:"dest_lon"`
}

// MapsUsecase defines the interface for the maps proxy use cases
type MapsUsecase interface {
	// Geocode resolves a street address into coordinates.
	Geocode(ctx context.Context, address string) (*service.GeocodeResult, error)

	// TravelInfo estimates the road distance and duration between
	// two points.
	TravelInfo(ctx context.Context, input *TravelInfoInput) (*service.TravelInfo, error)
}
