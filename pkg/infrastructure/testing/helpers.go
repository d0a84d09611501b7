package testing

import (
	"time"

	"github.com/hydroplan/streamdep/pkg/domain/entities"
	"github.com/hydroplan/streamdep/pkg/domain/services"
	"github.com/hydroplan/streamdep/pkg/infrastructure/repositories/memory"
)

// Canonical single-well scenario: one 100 acre-ft pull in January 2025,
// 4000 ft from the stream, S = 0.2, T = 261,800 GPD/ft converted to
// ft²/day, simulated for ten years of 30.42-day months.
const (
	ScenarioDaysPerMonth = 30.42
	ScenarioTotalMonths  = 120
)

// GPDPerFt2PerDay converts gallons/day/ft transmissivity to ft²/day.
const GPDPerFt2PerDay = 7.481

// BuildSingleWellUsage returns a usage repository holding the canonical
// single January 2025 pumping event.
func BuildSingleWellUsage() *memory.UsageRepository {
	repo := memory.NewUsageRepository()
	_ = repo.AddUsage(services.Date(2025, time.January, 1), 100.0)
	return repo
}

// SingleWellGloverParameters returns the canonical infinite-aquifer
// parameter set.
func SingleWellGloverParameters() entities.GloverParameters {
	return entities.GloverParameters{
		DistanceToStream: 4000.0,
		SpecificYield:    0.2,
		Transmissivity:   261800.0 / GPDPerFt2PerDay,
	}
}

// SingleWellAlluvialParameters returns the canonical bounded-aquifer
// parameter set, with the no-flow boundary 8000 ft from the well.
func SingleWellAlluvialParameters() entities.AlluvialParameters {
	return entities.AlluvialParameters{
		GloverParameters:   SingleWellGloverParameters(),
		DistanceToBoundary: 8000.0,
	}
}

// SingleWellSDFParameters returns the canonical lumped SDF of 265 days.
func SingleWellSDFParameters() entities.SDFParameters {
	return entities.SDFParameters{SDF: 265}
}

// BuildTwoReachURF returns a URF repository holding the two-reach worked
// example (reach 1: 0.6 then 0.3; reach 2: 0.1) and the matching two-month
// usage repository (July and August 2024, 100 acre-ft each).
func BuildTwoReachURF() (*memory.URFRepository, *memory.UsageRepository) {
	urfRepo := memory.NewURFRepository(3)
	_ = urfRepo.LoadValues([]entities.URFValue{
		{Month: 1, Reach: 1, Weight: 0.6},
		{Month: 1, Reach: 2, Weight: 0.1},
		{Month: 2, Reach: 1, Weight: 0.3},
	})

	usageRepo := memory.NewUsageRepository()
	_ = usageRepo.AddUsage(services.Date(2024, time.July, 1), 100.0)
	_ = usageRepo.AddUsage(services.Date(2024, time.August, 1), 100.0)
	return urfRepo, usageRepo
}
