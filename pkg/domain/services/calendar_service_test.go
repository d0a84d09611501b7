package services

import (
	"testing"
	"time"
)

func TestAddMonths_StandardDate(t *testing.T) {
	result, ok := AddMonths(Date(2023, time.May, 15), 1)
	if !ok {
		t.Fatal("expected valid date")
	}
	if result != Date(2023, time.June, 15) {
		t.Errorf("expected 2023-06-15, got %s", result.Format("2006-01-02"))
	}
}

func TestAddMonths_YearRollover(t *testing.T) {
	result, ok := AddMonths(Date(2023, time.December, 15), 3)
	if !ok {
		t.Fatal("expected valid date")
	}
	if result != Date(2024, time.March, 15) {
		t.Errorf("expected 2024-03-15, got %s", result.Format("2006-01-02"))
	}
}

func TestAddMonths_ManyMonths(t *testing.T) {
	// 119 months forward from a month start, the longest walk the default
	// ten-year horizon takes.
	result, ok := AddMonths(Date(2025, time.January, 1), 119)
	if !ok {
		t.Fatal("expected valid date")
	}
	if result != Date(2034, time.December, 1) {
		t.Errorf("expected 2034-12-01, got %s", result.Format("2006-01-02"))
	}
}

func TestAddMonths_InvalidDayOfMonth(t *testing.T) {
	// Jan 31 + 1 month would be Feb 31; the strict add reports failure
	// instead of normalizing into March.
	if _, ok := AddMonths(Date(2023, time.January, 31), 1); ok {
		t.Error("expected Jan 31 + 1 month to be invalid")
	}
}

func TestAddMonths_NegativeMonths(t *testing.T) {
	result, ok := AddMonths(Date(2023, time.January, 15), -2)
	if !ok {
		t.Fatal("expected valid date")
	}
	if result != Date(2022, time.November, 15) {
		t.Errorf("expected 2022-11-15, got %s", result.Format("2006-01-02"))
	}
}

func TestAddMonths_LeapDay(t *testing.T) {
	if _, ok := AddMonths(Date(2024, time.February, 29), 12); ok {
		t.Error("expected Feb 29 + 12 months to be invalid in a common year")
	}
	result, ok := AddMonths(Date(2024, time.February, 29), 48)
	if !ok || result != Date(2028, time.February, 29) {
		t.Errorf("expected 2028-02-29, got %v (ok=%v)", result, ok)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{Date(2025, time.January, 1), 31},
		{Date(2025, time.February, 10), 28},
		{Date(2024, time.February, 1), 29},
		{Date(2025, time.April, 30), 30},
		{Date(2025, time.December, 25), 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.date); got != tt.want {
			t.Errorf("DaysInMonth(%s) = %d, want %d", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestMonthStart(t *testing.T) {
	got := MonthStart(time.Date(2025, time.July, 19, 13, 45, 0, 0, time.UTC))
	if got != Date(2025, time.July, 1) {
		t.Errorf("expected 2025-07-01, got %s", got.Format("2006-01-02"))
	}
}
