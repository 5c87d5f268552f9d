package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePickupQR generates a QR code encoding a delivery's pickup credentials
	GeneratePickupQR(deliveryID uuid.UUID, pickupCode string) ([]byte, error)

	// ParsePickupQR parses QR code data and returns the delivery ID and pickup code
	ParsePickupQR(qrData string) (uuid.UUID, string, error)
}
