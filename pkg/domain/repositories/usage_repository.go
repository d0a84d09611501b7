package repositories

import (
	"time"

	"github.com/hydroplan/streamdep/pkg/domain/entities"
)

// UsageRepository provides access to monthly pumping data
type UsageRepository interface {
	GetUsage() (entities.UsageSeries, error)
	LoadUsage(series entities.UsageSeries) error
	AddUsage(month time.Time, acreFeet float64) error
}
