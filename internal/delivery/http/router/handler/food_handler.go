package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"foodbridge/internal/delivery/http/response"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FoodHandlerParams holds dependencies for FoodHandler, injected by Fx.
type FoodHandlerParams struct {
	fx.In

	FoodUC usecase.FoodItemUsecase
	Logger *slog.Logger
}

// FoodHandler holds dependencies for food item handlers.
type FoodHandler struct {
	foodUC usecase.FoodItemUsecase
	logger *slog.Logger
}

// NewFoodHandler is the constructor for FoodHandler.
func NewFoodHandler(params FoodHandlerParams) *FoodHandler {
	return &FoodHandler{
		foodUC: params.FoodUC,
		logger: params.Logger,
	}
}

// PostFoodItemRequest represents the JSON request body for posting food.
type PostFoodItemRequest struct {
	Description string `json:"description" validate:"required"`
	Quantity    string `json:"quantity" validate:"required"`
	ExpiresAt   string `json:"expires_at" validate:"omitempty"`
}

// PostFoodItem handles a donor posting surplus food. The request is either a
// JSON body or a multipart form carrying an optional cover_image file.
func (h *FoodHandler) PostFoodItem(c echo.Context) error {
	donorID, err := getUserID(c)
	if err != nil {
		return err
	}

	input, parseErr := h.parsePostInput(c)
	if parseErr != nil {
		return parseErr
	}
	if closer, ok := input.CoverImage.(io.Closer); ok {
		defer closer.Close()
	}

	item, err := h.foodUC.PostFoodItem(c.Request().Context(), donorID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item, "Food item posted successfully")
}

// parsePostInput builds the use-case input from either a multipart form or a JSON body.
func (h *FoodHandler) parsePostInput(c echo.Context) (*usecase.PostFoodItemInput, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return h.parseMultipartInput(c)
	}

	var req PostFoodItemRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "Invalid food item input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	expiresAt, err := parseExpiry(req.ExpiresAt)
	if err != nil {
		return nil, response.BadRequest(c, "INVALID_INPUT", "expires_at must be RFC 3339")
	}

	return &usecase.PostFoodItemInput{
		Description: req.Description,
		Quantity:    req.Quantity,
		ExpiresAt:   expiresAt,
	}, nil
}

func (h *FoodHandler) parseMultipartInput(c echo.Context) (*usecase.PostFoodItemInput, error) {
	input := &usecase.PostFoodItemInput{
		Description: c.FormValue("description"),
		Quantity:    c.FormValue("quantity"),
	}

	expiresAt, err := parseExpiry(c.FormValue("expires_at"))
	if err != nil {
		return nil, response.BadRequest(c, "INVALID_INPUT", "expires_at must be RFC 3339")
	}
	input.ExpiresAt = expiresAt

	fileHeader, err := c.FormFile("cover_image")
	if err == nil && fileHeader != nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			return nil, response.BadRequest(c, "INVALID_INPUT", "Unable to read cover image")
		}
		// PostFoodItem closes the file after the use case consumes it.
		input.CoverImage = file
		input.CoverImageType = fileHeader.Header.Get("Content-Type")
	}

	return input, nil
}

func parseExpiry(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

// GetFoodItem handles retrieving a single food item.
func (h *FoodHandler) GetFoodItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid food item ID")
	}

	item, err := h.foodUC.GetFoodItem(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item, "Food item retrieved successfully")
}

// GetCoverImage streams the stored cover image of a food item.
func (h *FoodHandler) GetCoverImage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid food item ID")
	}

	rc, contentType, err := h.foodUC.GetCoverImage(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer rc.Close()

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return c.Stream(http.StatusOK, contentType, rc)
}

// GetMyFoodItems handles retrieving the donor's own posted items.
func (h *FoodHandler) GetMyFoodItems(c echo.Context) error {
	donorID, err := getUserID(c)
	if err != nil {
		return err
	}

	items, err := h.foodUC.GetDonorFoodItems(c.Request().Context(), donorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "Food items retrieved successfully")
}
