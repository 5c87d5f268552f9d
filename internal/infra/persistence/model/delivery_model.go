package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryModel is the GORM-specific struct for the 'deliveries' table.
// Donor, NGO and food item columns are plain UUIDs, not enforced foreign
// keys: a delivery record outlives the rows it references and history reads
// join against them tolerantly.
type DeliveryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NgoID      uuid.UUID `gorm:"type:uuid;not null;index"`
	DonorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FoodItemID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	PickupCode string    `gorm:"type:varchar(10);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "deliveries"
}
