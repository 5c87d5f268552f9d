package handler

import (
	"log/slog"
	"net/http"

	"foodbridge/internal/delivery/http/response"
	"foodbridge/internal/domain/entity"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
	Logger     *slog.Logger
}

// DeliveryHandler holds dependencies for delivery tracking handlers.
type DeliveryHandler struct {
	deliveryUC usecase.DeliveryUsecase
	logger     *slog.Logger
}

// NewDeliveryHandler is the constructor for DeliveryHandler.
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUC: params.DeliveryUC,
		logger:     params.Logger,
	}
}

// StartDeliveryRequest represents the request body for starting a delivery.
type StartDeliveryRequest struct {
	DonorID    string `json:"donor_id" validate:"required,uuid"`
	FoodItemID string `json:"food_item_id" validate:"required,uuid"`
}

// AdvanceDeliveryRequest represents a requested status transition.
type AdvanceDeliveryRequest struct {
	From string `json:"from" validate:"required,oneof=pending started completed failed"`
	To   string `json:"to" validate:"required,oneof=pending started completed failed"`
}

// StartDelivery handles an NGO claiming a food item for pickup.
func (h *DeliveryHandler) StartDelivery(c echo.Context) error {
	ngoID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req StartDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := h.deliveryUC.StartDelivery(c.Request().Context(), ngoID, &usecase.StartDeliveryInput{
		DonorID:    req.DonorID,
		FoodItemID: req.FoodItemID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, view, "Delivery started successfully")
}

// AdvanceDelivery handles a delivery status transition.
func (h *DeliveryHandler) AdvanceDelivery(c echo.Context) error {
	ngoID, err := getUserID(c)
	if err != nil {
		return err
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid delivery ID")
	}

	var req AdvanceDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transition input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	delivery, err := h.deliveryUC.AdvanceDelivery(c.Request().Context(), ngoID, deliveryID, &usecase.AdvanceDeliveryInput{
		From: entity.DeliveryStatus(req.From),
		To:   entity.DeliveryStatus(req.To),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, delivery, "Delivery updated successfully")
}

// GetHistory handles retrieving the NGO's delivery history.
func (h *DeliveryHandler) GetHistory(c echo.Context) error {
	ngoID, err := getUserID(c)
	if err != nil {
		return err
	}

	views, err := h.deliveryUC.GetNgoHistory(c.Request().Context(), ngoID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, views, "Delivery history retrieved successfully")
}

// GetPickupQR renders the pickup QR code for a delivery as a PNG image.
func (h *DeliveryHandler) GetPickupQR(c echo.Context) error {
	ngoID, err := getUserID(c)
	if err != nil {
		return err
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid delivery ID")
	}

	png, err := h.deliveryUC.PickupQR(c.Request().Context(), ngoID, deliveryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
