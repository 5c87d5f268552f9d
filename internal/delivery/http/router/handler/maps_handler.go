package handler

import (
	"log/slog"
	"net/http"

	"foodbridge/internal/delivery/http/response"
	"foodbridge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MapsHandlerParams holds dependencies for MapsHandler, injected by Fx.
type MapsHandlerParams struct {
	fx.In

	MapsUC usecase.MapsUsecase
	Logger *slog.Logger
}

// MapsHandler proxies geocoding and routing lookups for clients.
type MapsHandler struct {
	mapsUC usecase.MapsUsecase
	logger *slog.Logger
}

// NewMapsHandler is the constructor for MapsHandler.
func NewMapsHandler(params MapsHandlerParams) *MapsHandler {
	return &MapsHandler{
		mapsUC: params.MapsUC,
		logger: params.Logger,
	}
}

// TravelInfoRequest represents the request body for a travel estimate.
type TravelInfoRequest struct {
	OriginLat float64 `json:"origin_lat" validate:"required,latitude"`
	OriginLon float64 `json:"origin_lon" validate:"required,longitude"`
	DestLat   float64 `json:"dest_lat" validate:"required,latitude"`
	DestLon   float64 `json:"dest_lon" validate:"required,longitude"`
}

// Geocode resolves a street address into coordinates.
func (h *MapsHandler) Geocode(c echo.Context) error {
	address := c.QueryParam("address")
	if address == "" {
		return response.BadRequest(c, "INVALID_INPUT", "address query parameter is required")
	}

	result, err := h.mapsUC.Geocode(c.Request().Context(), address)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Address geocoded successfully")
}

// TravelInfo estimates the road distance and duration between two points.
func (h *MapsHandler) TravelInfo(c echo.Context) error {
	var req TravelInfoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid travel info input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	info, err := h.mapsUC.TravelInfo(c.Request().Context(), &usecase.TravelInfoInput{
		OriginLat: req.OriginLat,
		OriginLon: req.OriginLon,
		DestLat:   req.DestLat,
		DestLon:   req.DestLon,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, info, "Travel info retrieved successfully")
}
