package model

import (
	"time"

	"github.com/google/uuid"
)

// MatchNotificationModel is the GORM-specific struct for the 'match_notifications' table.
// It records one satisfied round of the expanding NGO proximity search.
type MatchNotificationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FoodItemID   uuid.UUID `gorm:"type:uuid;not null;index"`
	DonorID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Latitude     float64   `gorm:"type:decimal(10,8);not null"`
	Longitude    float64   `gorm:"type:decimal(11,8);not null"`
	RadiusMeters float64   `gorm:"not null"`
	Attempt      int       `gorm:"not null;default:0"`
	TotalSent    int       `gorm:"not null;default:0"`
	TotalFailed  int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MatchNotificationModel) TableName() string {
	return "match_notifications"
}

// MatchLogModel is the GORM-specific struct for the 'match_logs' table.
// It represents a single notification attempt to one NGO within a match round.
type MatchLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MatchID      uuid.UUID `gorm:"type:uuid;not null;index"`
	NgoID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Channel      string    `gorm:"type:varchar(20);not null"`
	Status       string    `gorm:"type:text;not null;default:'sent'"`
	ErrorMessage string    `gorm:"type:text"`
	SentAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (MatchLogModel) TableName() string {
	return "match_logs"
}
