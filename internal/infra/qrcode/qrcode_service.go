package qrcode

import (
	"encoding/json"
	"fmt"

	"foodbridge/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the pickup QR code payload. The NGO presents this at
// pickup and the donor scans it to confirm the handover.
type QRCodeData struct {
	DeliveryID string `json:"delivery_id"`
	PickupCode string `json:"pickup_code"`
	Type       string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePickupQR generates a QR code for a delivery pickup.
func (s *qrcodeService) GeneratePickupQR(deliveryID uuid.UUID, pickupCode string) ([]byte, error) {
	data := QRCodeData{
		DeliveryID: deliveryID.String(),
		PickupCode: pickupCode,
		Type:       "pickup",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePickupQR parses QR code data and returns the delivery ID and pickup code.
func (s *qrcodeService) ParsePickupQR(qrData string) (uuid.UUID, string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "pickup" {
		return uuid.Nil, "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	deliveryID, err := uuid.Parse(data.DeliveryID)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to parse delivery ID: %w", err)
	}

	return deliveryID, data.PickupCode, nil
}
