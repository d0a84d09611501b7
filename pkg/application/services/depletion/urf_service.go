package depletion

import (
	"sort"
	"time"

	"github.com/hydroplan/streamdep/pkg/domain/entities"
	"github.com/hydroplan/streamdep/pkg/domain/services"
)

// LagURF distributes each usage month across future months using tabulated
// unit response weights, independently per reach. A reach's weights are
// ordered by their month column and applied by position: the first weight
// lands on the usage month itself, the second one month later, and so on.
// Contributions sum additively per target month. Unlike the closed-form
// models there is no noise floor and no early termination — the table is
// finite and assumed valid.
func (s *Service) LagURF(usage entities.UsageSeries, values []entities.URFValue) entities.LaggedResult {
	usageDates := make([]time.Time, 0, len(usage))
	for date := range usage {
		usageDates = append(usageDates, date)
	}
	sort.Slice(usageDates, func(i, j int) bool { return usageDates[i].Before(usageDates[j]) })

	lagged := make(entities.LaggedResult)
	for _, reach := range uniqueReaches(values) {
		weights := reachWeights(values, reach)

		series := make(entities.ReachSeries)
		for _, usageDate := range usageDates {
			volume := usage[usageDate]
			for lag, weight := range weights {
				lagDate, ok := services.AddMonths(usageDate, lag)
				if !ok {
					continue
				}
				series[lagDate] += volume * weight
			}
		}
		lagged[reach] = series
	}
	return lagged
}

// CombineURF sums the per-reach series from LagURF into a single monthly
// series sorted by date.
func CombineURF(lagged entities.LaggedResult) []entities.DepletionPoint {
	sums := make(map[time.Time]float64)
	for _, series := range lagged {
		for date, value := range series {
			sums[date] += value
		}
	}

	combined := make([]entities.DepletionPoint, 0, len(sums))
	for date, value := range sums {
		combined = append(combined, entities.DepletionPoint{Date: date, AcreFeet: value})
	}
	sort.Slice(combined, func(i, j int) bool { return combined[i].Date.Before(combined[j].Date) })
	return combined
}

func uniqueReaches(values []entities.URFValue) []entities.Reach {
	seen := make(map[entities.Reach]bool)
	var reaches []entities.Reach
	for _, v := range values {
		if !seen[v.Reach] {
			seen[v.Reach] = true
			reaches = append(reaches, v.Reach)
		}
	}
	return reaches
}

func reachWeights(values []entities.URFValue, reach entities.Reach) []float64 {
	var entries []entities.URFValue
	for _, v := range values {
		if v.Reach == reach {
			entries = append(entries, v)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Month < entries[j].Month })

	weights := make([]float64, len(entries))
	for i, e := range entries {
		weights[i] = e.Weight
	}
	return weights
}
