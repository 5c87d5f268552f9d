package model

import (
	"time"

	"github.com/google/uuid"
)

// FoodItemModel is the GORM-specific struct for the 'food_items' table.
type FoodItemModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DonorID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Description   string    `gorm:"type:text;not null"`
	Quantity      string    `gorm:"type:varchar(100);not null"`
	CoverImageRef string    `gorm:"type:text"`
	ExpiresAt     *time.Time
	Status        string `gorm:"type:varchar(20);not null;default:'available';index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodItemModel) TableName() string {
	return "food_items"
}
