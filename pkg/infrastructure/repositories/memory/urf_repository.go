package memory

import (
	"fmt"

	"github.com/hydroplan/streamdep/pkg/domain/entities"
	"github.com/hydroplan/streamdep/pkg/domain/repositories"
)

// URFRepository provides in-memory unit response table storage
type URFRepository struct {
	values []entities.URFValue
}

// NewURFRepository creates a new in-memory URF repository
func NewURFRepository(expectedEntries int) *URFRepository {
	return &URFRepository{
		values: make([]entities.URFValue, 0, expectedEntries),
	}
}

// Verify interface compliance
var _ repositories.URFRepository = (*URFRepository)(nil)

// LoadValues loads table entries into the repository
func (r *URFRepository) LoadValues(values []entities.URFValue) error {
	for _, value := range values {
		if value.Weight < 0 || value.Weight > 1 {
			return fmt.Errorf("urf weight for reach %d month %d out of [0,1]: %v",
				value.Reach, value.Month, value.Weight)
		}
		r.values = append(r.values, value)
	}
	return nil
}

// GetValues returns a copy of the stored table
func (r *URFRepository) GetValues() ([]entities.URFValue, error) {
	values := make([]entities.URFValue, len(r.values))
	copy(values, r.values)
	return values, nil
}
