package usecase

import (
	"context"

	"github.com/google/uuid"
)

// MatchRequest describes a posted food item awaiting an NGO pickup.
type MatchRequest struct {
	FoodItemID  uuid.UUID `json:"food_item_id"`
	DonorID     uuid.UUID `json:"donor_id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	FullAddress string    `json:"full_address"`
}

// MatcherUsecase defines the interface for the NGO proximity matching search
type MatcherUsecase interface {
	// Dispatch begins a matching search for the request. Depending on
	// configuration this either schedules rounds in-process or publishes
	// an event for the match worker.
	Dispatch(ctx context.Context, req *MatchRequest) error

	// RunRound executes a single matching round at the search radius for
	// the given attempt. Returns whether at least one NGO was found and
	// notified. An unsatisfied round leaves no side effects.
	RunRound(ctx context.Context, req *MatchRequest, attempt int) (bool, error)

	// Schedule runs successive rounds with backoff until one is satisfied
	// or the configured attempt and radius bounds are exhausted. It blocks
	// and is meant to be run on its own goroutine in inline mode.
	Schedule(ctx context.Context, req *MatchRequest)

	// Close stops any in-flight inline searches
	Close() error
}
