package entities

import "time"

// Reach identifies a discrete stream segment to which a unit response table
// attributes a fraction of depletion.
type Reach int

// URFValue is one entry of a unit response function table: the fraction of a
// unit release attributed to a reach at a given month lag. Lags are taken
// from each weight's position after sorting a reach's entries by Month, so
// the first entry for a reach applies to the release month itself.
type URFValue struct {
	Month  int     `json:"month"`
	Reach  Reach   `json:"reach"`
	Weight float64 `json:"weight"`
}

// ReachSeries is a monthly date→value series for a single reach.
type ReachSeries map[time.Time]float64

// LaggedResult holds one monthly series per reach.
type LaggedResult map[Reach]ReachSeries
