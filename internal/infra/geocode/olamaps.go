// Package geocode provides the Ola Maps implementation of the domain
// GeocodingService.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"foodbridge/config"
	"foodbridge/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultBaseURL = "https://api.olamaps.io"

// olaMapsService calls the Ola Maps REST API for geocoding and routing.
type olaMapsService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewOlaMapsService creates the geocoding client from configuration.
func NewOlaMapsService(cfg *config.Config, logger *slog.Logger) (service.GeocodingService, error) {
	if cfg.Geocode == nil || cfg.Geocode.APIKey == "" {
		return nil, errors.New("geocode api key must be provided")
	}

	baseURL := cfg.Geocode.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Geocode.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &olaMapsService{
		baseURL:    baseURL,
		apiKey:     cfg.Geocode.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

type geocodeResponse struct {
	GeocodingResults []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"geocodingResults"`
}

type directionsResponse struct {
	Routes []struct {
		Legs []struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// Geocode resolves a street address into coordinates.
func (s *olaMapsService) Geocode(ctx context.Context, address string) (*service.GeocodeResult, error) {
	endpoint := fmt.Sprintf("%s/places/v1/geocode?address=%s&language=en&api_key=%s",
		s.baseURL, url.QueryEscape(address), url.QueryEscape(s.apiKey))

	var result geocodeResponse
	if err := s.doRequest(ctx, http.MethodGet, endpoint, &result); err != nil {
		return nil, err
	}

	if len(result.GeocodingResults) == 0 {
		return nil, errors.Errorf("no geocode result for address: %s", address)
	}

	loc := result.GeocodingResults[0]

	return &service.GeocodeResult{
		Latitude:         loc.Geometry.Location.Lat,
		Longitude:        loc.Geometry.Location.Lng,
		FormattedAddress: loc.FormattedAddress,
	}, nil
}

// GetTravelInfo estimates the road distance and duration between two points.
func (s *olaMapsService) GetTravelInfo(ctx context.Context, originLat, originLon, destLat, destLon float64) (*service.TravelInfo, error) {
	endpoint := fmt.Sprintf("%s/routing/v1/directions?origin=%f,%f&destination=%f,%f&api_key=%s",
		s.baseURL, originLat, originLon, destLat, destLon, url.QueryEscape(s.apiKey))

	var result directionsResponse
	if err := s.doRequest(ctx, http.MethodPost, endpoint, &result); err != nil {
		return nil, err
	}

	if len(result.Routes) == 0 || len(result.Routes[0].Legs) == 0 {
		return nil, errors.New("no route found between origin and destination")
	}

	leg := result.Routes[0].Legs[0]

	return &service.TravelInfo{
		DistanceMeters:  leg.Distance,
		DurationSeconds: leg.Duration,
	}, nil
}

// doRequest performs one provider call. Every call carries a freshly
// generated X-Request-Id so provider-side traces never alias across
// requests.
func (s *olaMapsService) doRequest(ctx context.Context, method, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return errors.WithStack(err)
	}

	requestID := uuid.New().String()
	req.Header.Set("X-Request-Id", requestID)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "maps provider request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		s.logger.Warn("Maps provider returned non-success status",
			slog.Int("status", resp.StatusCode),
			slog.String("request_id", requestID),
		)

		return errors.Errorf("maps provider returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode maps provider response")
	}

	return nil
}
