package entities

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameters is returned when aquifer parameters are not
// physically meaningful (NaN, zero, or negative where positive is required).
var ErrInvalidParameters = errors.New("invalid aquifer parameters")

// GloverParameters describe a well near a fully penetrating stream in an
// infinite aquifer (Glover & Balmer, 1954).
type GloverParameters struct {
	// DistanceToStream is the well-to-stream distance in feet.
	DistanceToStream float64
	// SpecificYield is the aquifer storativity, dimensionless.
	SpecificYield float64
	// Transmissivity is in ft²/day.
	Transmissivity float64
}

// Validate checks that all parameters are finite and positive.
func (p GloverParameters) Validate() error {
	if !positiveFinite(p.DistanceToStream) {
		return fmt.Errorf("%w: distance to stream must be positive, got %v", ErrInvalidParameters, p.DistanceToStream)
	}
	if !positiveFinite(p.SpecificYield) {
		return fmt.Errorf("%w: specific yield must be positive, got %v", ErrInvalidParameters, p.SpecificYield)
	}
	if !positiveFinite(p.Transmissivity) {
		return fmt.Errorf("%w: transmissivity must be positive, got %v", ErrInvalidParameters, p.Transmissivity)
	}
	return nil
}

// AlluvialParameters describe a well between a stream and a parallel no-flow
// boundary, resolved with an alternating image-well series.
type AlluvialParameters struct {
	GloverParameters
	// DistanceToBoundary is the well-to-boundary distance in feet.
	DistanceToBoundary float64
}

// Validate checks that all parameters are finite and positive.
func (p AlluvialParameters) Validate() error {
	if err := p.GloverParameters.Validate(); err != nil {
		return err
	}
	if !positiveFinite(p.DistanceToBoundary) {
		return fmt.Errorf("%w: distance to boundary must be positive, got %v", ErrInvalidParameters, p.DistanceToBoundary)
	}
	return nil
}

// SDFParameters lump distance, storativity and transmissivity into a single
// Stream Depletion Factor time scale.
type SDFParameters struct {
	// SDF is the stream depletion factor in days.
	SDF float64
}

// Validate checks that the SDF is finite and positive.
func (p SDFParameters) Validate() error {
	if !positiveFinite(p.SDF) {
		return fmt.Errorf("%w: SDF must be positive, got %v", ErrInvalidParameters, p.SDF)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
