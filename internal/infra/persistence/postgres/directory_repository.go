// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// directoryRepository implements the repository.DirectoryRepository interface using GORM.
type directoryRepository struct {
	db *gorm.DB
}

// NewDirectoryRepository is the constructor for directoryRepository.
func NewDirectoryRepository(db *gorm.DB) repository.DirectoryRepository {
	return &directoryRepository{db: db}
}

// ngoCandidateRow is the scan target for the radius query.
type ngoCandidateRow struct {
	UserID       uuid.UUID
	Name         string
	ContactEmail string
	FullAddress  string
	Latitude     float64
	Longitude    float64
}

// FindNgosWithinRadius performs a PostGIS geographic query to find all NGOs
// with at least one registered address within radiusMeters of the given point.
func (repo *directoryRepository) FindNgosWithinRadius(ctx context.Context, lat, lon, radiusMeters float64) ([]*entity.NgoCandidate, error) {
	var rows []*ngoCandidateRow

	// Use PostGIS ST_DWithin for efficient geographic queries. The geography
	// cast makes the radius a distance in meters; ST_DWithin is inclusive, so
	// an address exactly on the boundary matches. DISTINCT ON keeps one row
	// per NGO, picking the nearest matching address.
	query := `
		SELECT DISTINCT ON (u.id)
		       u.id AS user_id,
		       u.name,
		       np.contact_email,
		       a.full_address,
		       a.latitude,
		       a.longitude
		FROM addresses a
		JOIN ngo_profiles np ON np.user_id = a.owner_id
		JOIN users u ON u.id = np.user_id AND u.deleted_at IS NULL
		WHERE a.owner_type = 'ngo_profile'
		  AND ST_DWithin(
		    a.location::geography,
		    ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
		    ?
		  )
		ORDER BY u.id,
		         ST_Distance(
		           a.location::geography,
		           ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography
		         ) ASC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, lon, lat, radiusMeters, lon, lat).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find ngos within radius")
	}

	candidates := make([]*entity.NgoCandidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, &entity.NgoCandidate{
			UserID:       row.UserID,
			Name:         row.Name,
			ContactEmail: row.ContactEmail,
			FullAddress:  row.FullAddress,
			Latitude:     row.Latitude,
			Longitude:    row.Longitude,
		})
	}

	return candidates, nil
}
