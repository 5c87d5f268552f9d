// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"foodbridge/internal/domain/entity"
)

// DirectoryRepository is the NGO directory: it answers geospatial
// containment queries over NGO addresses.
type DirectoryRepository interface {
	// FindNgosWithinRadius performs a PostGIS geographic query to find all NGOs
	// with at least one registered address within radiusMeters of the given point.
	// The boundary is inclusive (ST_DWithin semantics: distance <= radius).
	// Returns one candidate per NGO, using the nearest matching address.
	FindNgosWithinRadius(ctx context.Context, lat, lon, radiusMeters float64) ([]*entity.NgoCandidate, error)
}
