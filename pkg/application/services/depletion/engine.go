package depletion

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/hydroplan/streamdep/pkg/domain/entities"
	"github.com/hydroplan/streamdep/pkg/domain/services"
)

// EngineConfig holds configuration for the depletion engine
type EngineConfig struct {
	// Workers sets the number of goroutines used for the superposition
	// fan-out. Values <= 1 run serially. Each pumping day's contribution is
	// independent, so workers only meet at the final merge.
	Workers int
}

// Service implements the depletion convolution engine: it expands a monthly
// usage series to daily rates, convolves rate changes against a precomputed
// step response, and windows the aggregated monthly result.
type Service struct {
	config EngineConfig
}

// NewService creates a depletion service with default configuration
func NewService() *Service {
	return NewServiceWithConfig(EngineConfig{Workers: 1})
}

// NewServiceWithConfig creates a depletion service with custom configuration
func NewServiceWithConfig(config EngineConfig) *Service {
	return &Service{config: config}
}

// RunInfinite calculates monthly streamflow depletion for a well in an
// infinite aquifer (Glover solution). usage maps month starts to pumped
// acre-feet; the result covers totalMonths from the earliest usage month,
// omitting months at or below the noise floor and stopping early on a
// negative month (source fully captured).
func (s *Service) RunInfinite(
	ctx context.Context,
	usage entities.UsageSeries,
	params entities.GloverParameters,
	daysPerMonth float64,
	totalMonths int,
) ([]entities.DepletionPoint, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.run(ctx, usage, InfiniteResponse(params, daysPerMonth, totalMonths), totalMonths)
}

// RunAlluvial calculates monthly streamflow depletion for a well between a
// stream and a no-flow boundary, using the alternating image-well series.
func (s *Service) RunAlluvial(
	ctx context.Context,
	usage entities.UsageSeries,
	params entities.AlluvialParameters,
	daysPerMonth float64,
	totalMonths int,
) ([]entities.DepletionPoint, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.run(ctx, usage, AlluvialResponse(params, daysPerMonth, totalMonths), totalMonths)
}

// RunSDF calculates monthly streamflow depletion from a lumped Stream
// Depletion Factor.
func (s *Service) RunSDF(
	ctx context.Context,
	usage entities.UsageSeries,
	params entities.SDFParameters,
	daysPerMonth float64,
	totalMonths int,
) ([]entities.DepletionPoint, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.run(ctx, usage, SDFResponse(params, daysPerMonth, totalMonths), totalMonths)
}

func (s *Service) run(
	ctx context.Context,
	usage entities.UsageSeries,
	response []float64,
	totalMonths int,
) ([]entities.DepletionPoint, error) {
	daily := ExpandMonthlyToDaily(usage)

	accumulator, err := s.convolve(ctx, daily, response)
	if err != nil {
		return nil, err
	}

	monthly := aggregateMonthly(accumulator)
	return windowResults(usage, monthly, totalMonths), nil
}

// convolve superposes the contribution of every pumping day into one daily
// depletion accumulator, keyed by calendar date, in ft³/day.
func (s *Service) convolve(
	ctx context.Context,
	daily entities.DailyRateSeries,
	response []float64,
) (map[time.Time]float64, error) {
	days := pumpingDays(daily)

	if s.config.Workers > 1 && len(days) > 1 {
		return s.convolveParallel(ctx, days, daily, response)
	}

	accumulator := make(map[time.Time]float64, len(response))
	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("convolution cancelled: %w", err)
		}
		accumulate(accumulator, day, daily[day], response)
	}
	return accumulator, nil
}

// convolveParallel fans pumping days out over a fixed worker pool. Each
// worker owns a partial accumulator; partials are merged in worker order
// once the pool drains.
func (s *Service) convolveParallel(
	ctx context.Context,
	days []time.Time,
	daily entities.DailyRateSeries,
	response []float64,
) (map[time.Time]float64, error) {
	workers := s.config.Workers
	if workers > len(days) {
		workers = len(days)
	}

	partials := make([]map[time.Time]float64, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			partial := make(map[time.Time]float64, len(response))
			for i := w; i < len(days); i += workers {
				day := days[i]
				accumulate(partial, day, daily[day], response)
			}
			partials[w] = partial
		}(w)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("convolution cancelled: %w", err)
	}

	accumulator := make(map[time.Time]float64, len(response))
	for _, partial := range partials {
		for date, amount := range partial {
			accumulator[date] += amount
		}
	}
	return accumulator, nil
}

// accumulate adds one pumping day's full future contribution. A continuing
// stress is already counted by its own earlier cumulative steps, so only the
// first difference of rate × response enters the accumulator: rate ×
// response[0] at the first step, rate × (response[i] − response[i−1]) after.
// Depletion is observed the day after pumping, hence the +1 day offset.
func accumulate(accumulator map[time.Time]float64, day time.Time, rate float64, response []float64) {
	previous := 0.0
	for i, fraction := range response {
		accumulator[day.AddDate(0, 0, i+1)] += rate * (fraction - previous)
		previous = fraction
	}
}

// pumpingDays returns the days with a strictly positive rate, sorted
// ascending so both execution paths visit them in the same order.
func pumpingDays(daily entities.DailyRateSeries) []time.Time {
	days := make([]time.Time, 0, len(daily))
	for day, rate := range daily {
		if rate <= 0 {
			continue
		}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// aggregateMonthly rolls the daily accumulator into month-start buckets and
// converts ft³ to acre-feet.
func aggregateMonthly(accumulator map[time.Time]float64) map[time.Time]float64 {
	monthly := make(map[time.Time]float64)
	for day, amount := range accumulator {
		monthly[services.MonthStart(day)] += amount / entities.CubicFeetPerAcreFoot
	}
	return monthly
}

// windowResults walks totalMonths from the earliest usage month. The walk
// stops silently if a month-add lands on a nonexistent day-of-month, and
// stops on the first negative month, which is read as the source being
// fully captured. Months at or below the noise floor are omitted.
func windowResults(usage entities.UsageSeries, monthly map[time.Time]float64, totalMonths int) []entities.DepletionPoint {
	start, ok := usage.StartDate()
	if !ok {
		return nil
	}

	results := make([]entities.DepletionPoint, 0, totalMonths)
	for m := 0; m < totalMonths; m++ {
		date, ok := services.AddMonths(start, m)
		if !ok {
			break
		}
		value := monthly[date]
		if value < 0 {
			break
		}
		if value > entities.NoiseFloorAcreFeet {
			results = append(results, entities.DepletionPoint{Date: date, AcreFeet: value})
		}
	}
	return results
}
