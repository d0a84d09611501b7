package depletion

import (
	"math"

	"github.com/hydroplan/streamdep/pkg/domain/entities"
)

// convergenceCutoff is the erfc argument above which an image-well term is
// treated as zero (erfc(2.9) ≈ 4e-5), which is what terminates the
// alternating image-well series.
const convergenceCutoff = 2.9

// maxImagePairs bounds the image-well loop against parameter combinations
// that keep the cutoff from ever being reached.
const maxImagePairs = 1000

// InfiniteFraction returns the Glover depletion fraction for a well in an
// infinite aquifer: the fraction of a steady unit pumping rate captured from
// the stream after elapsed days of pumping.
//
// The formula divides by elapsed time, so the fraction is undefined at
// elapsed = 0; in IEEE arithmetic the argument becomes +Inf and erfc(+Inf)
// is 0, which is the value the response array carries at index 0.
func InfiniteFraction(params entities.GloverParameters, elapsed float64) float64 {
	z := math.Sqrt(params.SpecificYield * params.DistanceToStream * params.DistanceToStream /
		(4 * params.Transmissivity * elapsed))
	return math.Erfc(z)
}

// AlluvialFraction returns the depletion fraction for a well between a
// stream and a parallel no-flow boundary, summing an alternating series of
// image wells reflected across both boundaries. Terms whose erfc argument
// exceeds the convergence cutoff are treated as zero, and the series stops
// as soon as both terms of an image pair vanish. Same elapsed = 0 caveat as
// InfiniteFraction.
func AlluvialFraction(params entities.AlluvialParameters, elapsed float64) float64 {
	denominator := math.Sqrt(4 * params.Transmissivity * elapsed / params.SpecificYield)

	total := 0.0
	imageFactor := 1.0
	wellDistance := -params.DistanceToStream // offset so the first reflection lands on the real well

	for pair := 0; pair < maxImagePairs; pair++ {
		// real well, then successive positive images
		wellDistance += 2 * params.DistanceToStream
		fraction := cutoffErfc(wellDistance / denominator)
		total += fraction * imageFactor
		if fraction == 0 {
			break
		}

		// image reflected across the no-flow boundary
		wellDistance = wellDistance - 2*params.DistanceToStream + 2*params.DistanceToBoundary
		fraction = cutoffErfc(wellDistance / denominator)
		total += fraction * imageFactor
		if fraction == 0 {
			break
		}

		imageFactor = -imageFactor
	}

	return total
}

// SDFFraction returns the depletion fraction for a lumped Stream Depletion
// Factor, erfc(sqrt(SDF/4t)). Same elapsed = 0 caveat as InfiniteFraction.
func SDFFraction(params entities.SDFParameters, elapsed float64) float64 {
	u := math.Sqrt(params.SDF / (4 * elapsed))
	return math.Erfc(u)
}

func cutoffErfc(u float64) float64 {
	if u > convergenceCutoff {
		return 0
	}
	return math.Erfc(u)
}

// responseDays is the length of a step-response array covering the whole
// simulation horizon in daily steps.
func responseDays(daysPerMonth float64, totalMonths int) int {
	return int(math.Ceil(float64(totalMonths) * daysPerMonth))
}

// InfiniteResponse precomputes the infinite-aquifer step response for every
// elapsed-day index of the horizon. The response to any pumping day is then
// a shifted lookup into this one array rather than a fresh erfc evaluation.
func InfiniteResponse(params entities.GloverParameters, daysPerMonth float64, totalMonths int) []float64 {
	response := make([]float64, responseDays(daysPerMonth, totalMonths))
	for i := range response {
		response[i] = InfiniteFraction(params, float64(i))
	}
	return response
}

// AlluvialResponse precomputes the image-well step response for every
// elapsed-day index of the horizon.
func AlluvialResponse(params entities.AlluvialParameters, daysPerMonth float64, totalMonths int) []float64 {
	response := make([]float64, responseDays(daysPerMonth, totalMonths))
	for i := range response {
		response[i] = AlluvialFraction(params, float64(i))
	}
	return response
}

// SDFResponse precomputes the SDF step response for every elapsed-day index
// of the horizon.
func SDFResponse(params entities.SDFParameters, daysPerMonth float64, totalMonths int) []float64 {
	response := make([]float64, responseDays(daysPerMonth, totalMonths))
	for i := range response {
		response[i] = SDFFraction(params, float64(i))
	}
	return response
}
