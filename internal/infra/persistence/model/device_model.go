package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NgoDeviceModel is the GORM-specific struct for the 'ngo_devices' table.
// It represents an NGO staff device registered for push notifications.
type NgoDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ngo_devices_user_device"`
	FCMToken  string    `gorm:"type:varchar(255);not null"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_ngo_devices_user_device"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NgoDeviceModel) TableName() string {
	return "ngo_devices"
}
