package service

import (
	"context"
)

// MatchEvent represents one matching round to be processed by the match worker
type MatchEvent struct {
	RequestID   string  `json:"request_id,omitempty"` // For distributed tracing
	FoodItemID  string  `json:"food_item_id"`
	DonorID     string  `json:"donor_id"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	FullAddress string  `json:"full_address"`
	Attempt     int     `json:"attempt"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMatchEvent publishes a matching round for async processing
	PublishMatchEvent(ctx context.Context, event *MatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
