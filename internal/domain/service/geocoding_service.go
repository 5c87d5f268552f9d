package service

import (
	"context"
)

// GeocodeResult is the resolved coordinate pair for a street address.
type GeocodeResult struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formatted_address"`
}

// TravelInfo describes the road distance and duration between two points.
type TravelInfo struct {
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// GeocodingService defines the interface for address geocoding and
// travel estimation against an external maps provider.
type GeocodingService interface {
	// Geocode resolves a street address into coordinates.
	Geocode(ctx context.Context, address string) (*GeocodeResult, error)

	// GetTravelInfo estimates the road distance and duration between two points.
	GetTravelInfo(ctx context.Context, originLat, originLon, destLat, destLon float64) (*TravelInfo, error)
}
