package services

import "time"

// AddMonths adds a number of calendar months to a date, preserving the
// day-of-month. Unlike time.Time.AddDate it does not normalize overflowing
// days into the next month: if the target month has no such day (for
// example Jan 31 + 1 month), the second return value is false. The engine
// walks its simulation horizon with this and stops silently at the first
// invalid step.
func AddMonths(date time.Time, months int) (time.Time, bool) {
	year := date.Year() + (int(date.Month())+months-1)/12
	month := (int(date.Month())+months-1)%12 + 1
	if month <= 0 {
		month += 12
		year--
	}
	result := time.Date(year, time.Month(month), date.Day(), 0, 0, 0, 0, time.UTC)
	if result.Day() != date.Day() || result.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return result, true
}

// MonthStart returns the first day of the month containing date, at UTC
// midnight.
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of calendar days in the month containing
// date (28–31, leap-year aware).
func DaysInMonth(date time.Time) int {
	first := MonthStart(date)
	return 32 - time.Date(first.Year(), first.Month(), 32, 0, 0, 0, 0, time.UTC).Day()
}

// Date is shorthand for a UTC midnight calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
