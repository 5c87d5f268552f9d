package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`

	DonorProfile    *DonorProfileModel    `gorm:"foreignKey:UserID"`
	NgoProfile      *NgoProfileModel      `gorm:"foreignKey:UserID"`
	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// DonorProfileModel mirrors the 'donor_profiles' table. UserID references users.id (UUID).
type DonorProfileModel struct {
	UserID       uuid.UUID `gorm:"primaryKey"`
	OrgName      string    `gorm:"type:varchar(100);not null"`
	FssaiLicense string    `gorm:"type:varchar(255);not null;unique"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonorProfileModel) TableName() string {
	return "donor_profiles"
}

// NgoProfileModel mirrors the 'ngo_profiles' table. UserID references users.id (UUID).
type NgoProfileModel struct {
	UserID         uuid.UUID `gorm:"primaryKey"`
	RegisteredName string    `gorm:"type:varchar(100);not null"`
	LicenseNumber  string    `gorm:"type:varchar(255);not null;unique"`
	ContactEmail   string    `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (NgoProfileModel) TableName() string {
	return "ngo_profiles"
}
