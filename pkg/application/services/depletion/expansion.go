package depletion

import (
	"github.com/hydroplan/streamdep/pkg/domain/entities"
	"github.com/hydroplan/streamdep/pkg/domain/services"
)

// ExpandMonthlyToDaily spreads each month's pumped volume evenly across that
// month's actual day count and converts acre-feet to cubic feet, producing a
// rate series in ft³/day. Rates accumulate additively so duplicate or
// overlapping inputs sum rather than overwrite. Total daily volume equals
// the monthly total times CubicFeetPerAcreFoot exactly, up to float
// rounding.
func ExpandMonthlyToDaily(usage entities.UsageSeries) entities.DailyRateSeries {
	daily := make(entities.DailyRateSeries)
	for month, volume := range usage {
		days := services.DaysInMonth(month)
		rate := volume * entities.CubicFeetPerAcreFoot / float64(days)
		for d := 1; d <= days; d++ {
			daily[services.Date(month.Year(), month.Month(), d)] += rate
		}
	}
	return daily
}
