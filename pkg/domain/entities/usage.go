package entities

import "time"

// CubicFeetPerAcreFoot converts acre-feet volumes to cubic feet.
const CubicFeetPerAcreFoot = 43560.0

// NoiseFloorAcreFeet is the smallest monthly depletion worth reporting.
// Months at or below this value are omitted from results.
const NoiseFloorAcreFeet = 0.001

// UsageSeries maps the first day of a calendar month to the volume pumped
// during that month, in acre-feet. Keys are unique per month; the engine
// treats the minimum key as the start of the simulation.
type UsageSeries map[time.Time]float64

// StartDate returns the earliest month key in the series. The second return
// value is false for an empty series.
func (u UsageSeries) StartDate() (time.Time, bool) {
	var start time.Time
	found := false
	for date := range u {
		if !found || date.Before(start) {
			start = date
			found = true
		}
	}
	return start, found
}

// TotalAcreFeet sums all monthly volumes in the series.
func (u UsageSeries) TotalAcreFeet() float64 {
	total := 0.0
	for _, volume := range u {
		total += volume
	}
	return total
}

// DepletionPoint is one month of induced stream depletion.
type DepletionPoint struct {
	Date     time.Time `json:"date"`
	AcreFeet float64   `json:"acre_feet"`
}

// DailyRateSeries maps a calendar day to a pumping rate in cubic feet/day.
// It is derived from a UsageSeries and discarded after convolution.
type DailyRateSeries map[time.Time]float64

// TotalCubicFeet sums rate × 1 day over the whole series.
func (d DailyRateSeries) TotalCubicFeet() float64 {
	total := 0.0
	for _, rate := range d {
		total += rate
	}
	return total
}
