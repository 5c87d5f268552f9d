// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MatchNotification records one satisfied proximity-match round for a food item:
// the radius that produced candidates and how many notifications went out.
type MatchNotification struct {
	ID           uuid.UUID `json:"id"`            // The Global Unique Identifier (GUID) for the match round.
	FoodItemID   uuid.UUID `json:"food_item_id"`  // The food item the search ran for.
	DonorID      uuid.UUID `json:"donor_id"`      // The donor whose location anchored the search.
	Latitude     float64   `json:"latitude"`      // Search-center latitude.
	Longitude    float64   `json:"longitude"`     // Search-center longitude.
	RadiusMeters float64   `json:"radius_meters"` // The radius that produced candidates.
	Attempt      int       `json:"attempt"`       // Zero-based round number within the expanding search.
	TotalSent    int       `json:"total_sent"`    // Number of notifications successfully dispatched.
	TotalFailed  int       `json:"total_failed"`  // Number of notifications that failed to dispatch.
	CreatedAt    time.Time `json:"created_at"`    // Timestamp of when this round was recorded.
	UpdatedAt    time.Time `json:"updated_at"`    // Timestamp of the last modification.
}

// MatchLog records a single notification attempt to one NGO within a match round.
type MatchLog struct {
	ID           uuid.UUID `json:"id"`            // The Global Unique Identifier (GUID) for the log entry.
	MatchID      uuid.UUID `json:"match_id"`      // The match round this log belongs to.
	NgoID        uuid.UUID `json:"ngo_id"`        // The NGO that was notified.
	Channel      string    `json:"channel"`       // Dispatch channel: "email" or "push".
	Status       string    `json:"status"`        // "sent" or "failed".
	ErrorMessage string    `json:"error_message"` // Error detail if the dispatch failed.
	SentAt       time.Time `json:"sent_at"`       // Timestamp of the dispatch attempt.
}

// NgoCandidate is a directory query result: an NGO whose active address lies
// within the search radius, bundled with the matched address coordinates.
type NgoCandidate struct {
	UserID       uuid.UUID // The NGO's user ID.
	Name         string    // The NGO's display name.
	ContactEmail string    // Address that receives the notification email.
	FullAddress  string    // The matched address text.
	Latitude     float64   // Matched address latitude.
	Longitude    float64   // Matched address longitude.
}
