package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hydroplan/streamdep/pkg/domain/entities"
	"github.com/hydroplan/streamdep/pkg/domain/services"
)

// Loader handles loading depletion input data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadUsage loads a monthly usage series from a CSV file with header
// "month,acre_feet". Months are YYYY-MM or YYYY-MM-DD (normalized to the
// first of the month); volumes are parsed as decimals so ledger-style
// inputs like 100.10 survive the trip exactly, then carried as float64.
// Repeated months sum.
func (l *Loader) LoadUsage(filename string) (entities.UsageSeries, error) {
	records, err := readAll(filename)
	if err != nil {
		return nil, fmt.Errorf("usage CSV: %w", err)
	}

	expectedHeader := []string{"month", "acre_feet"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("usage CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	usage := make(entities.UsageSeries, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("usage CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		month, err := parseMonth(record[0])
		if err != nil {
			return nil, fmt.Errorf("usage CSV row %d: %w", i+2, err)
		}

		volume, err := decimal.NewFromString(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("usage CSV row %d: invalid acre_feet: %s", i+2, record[1])
		}

		usage[month] += volume.InexactFloat64()
	}

	return usage, nil
}

// LoadURF loads a unit response table from a CSV file with header
// "month,reach,weight".
func (l *Loader) LoadURF(filename string) ([]entities.URFValue, error) {
	records, err := readAll(filename)
	if err != nil {
		return nil, fmt.Errorf("URF CSV: %w", err)
	}

	expectedHeader := []string{"month", "reach", "weight"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("URF CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var values []entities.URFValue
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("URF CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		value, err := parseURFValue(record)
		if err != nil {
			return nil, fmt.Errorf("URF CSV row %d: %w", i+2, err)
		}

		values = append(values, value)
	}

	return values, nil
}

func readAll(filename string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s must have header and at least one data row", filename)
	}
	return records, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}
	return true
}

func parseMonth(field string) (time.Time, error) {
	field = strings.TrimSpace(field)
	for _, layout := range []string{"2006-01", "2006-01-02"} {
		if date, err := time.Parse(layout, field); err == nil {
			return services.MonthStart(date), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid month: %s", field)
}

func parseURFValue(record []string) (entities.URFValue, error) {
	month, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return entities.URFValue{}, fmt.Errorf("invalid month: %s", record[0])
	}

	reach, err := strconv.Atoi(strings.TrimSpace(record[1]))
	if err != nil {
		return entities.URFValue{}, fmt.Errorf("invalid reach: %s", record[1])
	}

	weight, err := decimal.NewFromString(strings.TrimSpace(record[2]))
	if err != nil {
		return entities.URFValue{}, fmt.Errorf("invalid weight: %s", record[2])
	}

	return entities.URFValue{
		Month:  month,
		Reach:  entities.Reach(reach),
		Weight: weight.InexactFloat64(),
	}, nil
}
