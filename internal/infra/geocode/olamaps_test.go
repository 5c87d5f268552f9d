package geocode

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodbridge/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.Handler) *httptest.Server {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server
}

func serviceForServer(t *testing.T, server *httptest.Server) *olaMapsService {
	cfg := &config.Config{
		Geocode: &config.GeocodeConfig{
			BaseURL: server.URL,
			APIKey:  "test-key",
			Timeout: 5 * time.Second,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewOlaMapsService(cfg, logger)
	require.NoError(t, err)

	return svc.(*olaMapsService)
}

func TestOlaMapsService_Geocode(t *testing.T) {
	server := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "1 MG Road, Bengaluru", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"geocodingResults": [{
				"formatted_address": "1, MG Road, Bengaluru, Karnataka",
				"geometry": {"location": {"lat": 12.9716, "lng": 77.5946}}
			}]
		}`))
	}))

	svc := serviceForServer(t, server)

	result, err := svc.Geocode(context.Background(), "1 MG Road, Bengaluru")
	require.NoError(t, err)
	assert.Equal(t, 12.9716, result.Latitude)
	assert.Equal(t, 77.5946, result.Longitude)
	assert.Equal(t, "1, MG Road, Bengaluru, Karnataka", result.FormattedAddress)
}

func TestOlaMapsService_Geocode_FreshRequestIDPerCall(t *testing.T) {
	var requestIDs []string
	server := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDs = append(requestIDs, r.Header.Get("X-Request-Id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"geocodingResults": [{
				"geometry": {"location": {"lat": 1, "lng": 2}}
			}]
		}`))
	}))

	svc := serviceForServer(t, server)

	_, err := svc.Geocode(context.Background(), "first address")
	require.NoError(t, err)
	_, err = svc.Geocode(context.Background(), "second address")
	require.NoError(t, err)

	require.Len(t, requestIDs, 2)
	// Each call carries its own id; ids never repeat across calls.
	assert.NotEqual(t, requestIDs[0], requestIDs[1])
	for _, id := range requestIDs {
		_, parseErr := uuid.Parse(id)
		assert.NoError(t, parseErr)
	}
}

func TestOlaMapsService_Geocode_NoResults(t *testing.T) {
	server := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"geocodingResults": []}`))
	}))

	svc := serviceForServer(t, server)

	result, err := svc.Geocode(context.Background(), "nowhere")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "no geocode result")
}

func TestOlaMapsService_Geocode_ProviderError(t *testing.T) {
	server := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))

	svc := serviceForServer(t, server)

	_, err := svc.Geocode(context.Background(), "1 MG Road")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestOlaMapsService_GetTravelInfo(t *testing.T) {
	server := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"routes": [{"legs": [{"distance": 5400, "duration": 920}]}]
		}`))
	}))

	svc := serviceForServer(t, server)

	info, err := svc.GetTravelInfo(context.Background(), 12.97, 77.59, 13.01, 77.62)
	require.NoError(t, err)
	assert.Equal(t, float64(5400), info.DistanceMeters)
	assert.Equal(t, float64(920), info.DurationSeconds)
}

func TestOlaMapsService_GetTravelInfo_NoRoute(t *testing.T) {
	server := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"routes": []}`))
	}))

	svc := serviceForServer(t, server)

	info, err := svc.GetTravelInfo(context.Background(), 0.1, 0.1, 0.2, 0.2)
	require.Error(t, err)
	assert.Nil(t, info)
	assert.Contains(t, err.Error(), "no route found")
}

func TestNewOlaMapsService_MissingAPIKey(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := NewOlaMapsService(&config.Config{}, logger)
	require.Error(t, err)
	assert.Nil(t, svc)
}
