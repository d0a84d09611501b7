package memory

import (
	"fmt"
	"math"
	"time"

	"github.com/hydroplan/streamdep/pkg/domain/entities"
	"github.com/hydroplan/streamdep/pkg/domain/repositories"
	"github.com/hydroplan/streamdep/pkg/domain/services"
)

// UsageRepository provides in-memory monthly usage storage
type UsageRepository struct {
	usage entities.UsageSeries
}

// NewUsageRepository creates a new in-memory usage repository
func NewUsageRepository() *UsageRepository {
	return &UsageRepository{
		usage: make(entities.UsageSeries),
	}
}

// Verify interface compliance
var _ repositories.UsageRepository = (*UsageRepository)(nil)

// LoadUsage loads a whole series into the repository, summing volumes for
// repeated months.
func (r *UsageRepository) LoadUsage(series entities.UsageSeries) error {
	for month, acreFeet := range series {
		if err := r.AddUsage(month, acreFeet); err != nil {
			return err
		}
	}
	return nil
}

// AddUsage records one month's pumped volume. The month key is normalized to
// the first of the month at UTC midnight.
func (r *UsageRepository) AddUsage(month time.Time, acreFeet float64) error {
	if math.IsNaN(acreFeet) || math.IsInf(acreFeet, 0) {
		return fmt.Errorf("usage for %s is not a finite volume: %v", month.Format("2006-01"), acreFeet)
	}
	r.usage[services.MonthStart(month)] += acreFeet
	return nil
}

// GetUsage returns a copy of the stored series.
func (r *UsageRepository) GetUsage() (entities.UsageSeries, error) {
	series := make(entities.UsageSeries, len(r.usage))
	for month, acreFeet := range r.usage {
		series[month] = acreFeet
	}
	return series, nil
}
