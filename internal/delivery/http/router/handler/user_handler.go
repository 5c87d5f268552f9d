// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"foodbridge/internal/delivery/http/response"
	"foodbridge/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddressRequest is the registration address payload. The street address is
// geocoded server-side, so no coordinates are accepted here.
type AddressRequest struct {
	Label       string `json:"label"`
	FullAddress string `json:"full_address" validate:"required"`
}

// RegisterDonorRequest represents the request body for donor registration.
type RegisterDonorRequest struct {
	Name         string         `json:"name" validate:"required"`
	Email        string         `json:"email" validate:"required,email"`
	Password     string         `json:"password" validate:"required,min=8"`
	OrgName      string         `json:"org_name" validate:"required"`
	FssaiLicense string         `json:"fssai_license" validate:"required"`
	Address      AddressRequest `json:"address" validate:"required"`
}

// RegisterNgoRequest represents the request body for NGO registration.
type RegisterNgoRequest struct {
	Name           string         `json:"name" validate:"required"`
	Email          string         `json:"email" validate:"required,email"`
	Password       string         `json:"password" validate:"required,min=8"`
	RegisteredName string         `json:"registered_name" validate:"required"`
	LicenseNumber  string         `json:"license_number" validate:"required"`
	ContactEmail   string         `json:"contact_email" validate:"omitempty,email"`
	Address        AddressRequest `json:"address" validate:"required"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterDonor handles the donor registration request.
func (h *UserHandler) RegisterDonor(c echo.Context) error {
	var req RegisterDonorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.RegisterDonorInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		OrgName:      req.OrgName,
		FssaiLicense: req.FssaiLicense,
		Address: usecase.AddressInput{
			Label:       req.Address.Label,
			FullAddress: req.Address.FullAddress,
		},
	}

	output, err := h.uc.RegisterDonor(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Do not return sensitive data in the response.
	return response.Success(c, http.StatusCreated, output.User, "Donor registered successfully")
}

// RegisterNgo handles the NGO registration request.
func (h *UserHandler) RegisterNgo(c echo.Context) error {
	var req RegisterNgoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.RegisterNgoInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		RegisteredName: req.RegisteredName,
		LicenseNumber:  req.LicenseNumber,
		ContactEmail:   req.ContactEmail,
		Address: usecase.AddressInput{
			Label:       req.Address.Label,
			FullAddress: req.Address.FullAddress,
		},
	}

	output, err := h.uc.RegisterNgo(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output.User, "NGO registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token":             output.AccessToken,
		"refresh_token":            output.RefreshToken,
		"refresh_token_expires_at": output.RefreshTokenExpiresAt,
		"user":                     output.User,
	}, "Login successful")
}

// RefreshToken handles the token refresh request.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token":             output.AccessToken,
		"refresh_token":            output.RefreshToken,
		"refresh_token_expires_at": output.RefreshTokenExpiresAt,
		"user":                     output.User,
	}, "Token refreshed successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
