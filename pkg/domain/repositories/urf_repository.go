package repositories

import "github.com/hydroplan/streamdep/pkg/domain/entities"

// URFRepository provides access to unit response function tables
type URFRepository interface {
	GetValues() ([]entities.URFValue, error)
	LoadValues(values []entities.URFValue) error
}
