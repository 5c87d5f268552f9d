package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// The owner is either a donor profile or an NGO profile, discriminated by OwnerType.
type AddressModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID     uuid.UUID `gorm:"not null;index:idx_addresses_on_owner"`
	OwnerType   string    `gorm:"type:varchar(255);not null;index:idx_addresses_on_owner"`
	Label       string    `gorm:"type:varchar(100)"`
	FullAddress string    `gorm:"type:text;not null"`
	Latitude    float64   `gorm:"type:decimal(10,8);not null"`
	Longitude   float64   `gorm:"type:decimal(11,8);not null"`
	// Note: location GEOMETRY(POINT, 4326) column exists in database but is not mapped here.
	// It is automatically calculated from Latitude/Longitude via database trigger.
	// Use raw SQL queries with PostGIS functions (ST_Distance, ST_DWithin) for geospatial operations.
	IsPrimary bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
