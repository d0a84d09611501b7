package dto

import (
	"time"

	"github.com/hydroplan/streamdep/pkg/domain/entities"
)

// DepletionResult contains the complete output of a depletion run
type DepletionResult struct {
	// RunID identifies this run in the event stream.
	RunID string
	// Model names the solution used: infinite, alluvial, sdf, or urf.
	Model string
	// Series is the windowed monthly depletion, sparse per the noise floor.
	Series []entities.DepletionPoint
	// Elapsed is the engine wall time.
	Elapsed time.Duration
}

// TotalAcreFeet sums the depletion across the whole series.
func (r *DepletionResult) TotalAcreFeet() float64 {
	total := 0.0
	for _, point := range r.Series {
		total += point.AcreFeet
	}
	return total
}
