package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/hydroplan/streamdep/pkg/application/dto"
	"github.com/hydroplan/streamdep/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	// Reaches carries the per-reach URF series when the urf model ran.
	Reaches entities.LaggedResult
}

// Generate renders a depletion result in the configured format. With an
// output directory set, json and csv write files there; otherwise
// everything goes to stdout.
func Generate(result *dto.DepletionResult, config Config) error {
	switch config.Format {
	case "text":
		return generateText(result, config)
	case "json":
		return generateJSON(result, config)
	case "csv":
		return generateCSV(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func generateText(result *dto.DepletionResult, config Config) error {
	fmt.Printf("💧 Stream Depletion Results\n")
	fmt.Printf("===========================\n\n")

	fmt.Printf("Model: %s\n", result.Model)
	fmt.Printf("Run ID: %s\n", result.RunID)
	fmt.Printf("Months Reported: %d\n", len(result.Series))
	fmt.Printf("Total Depletion: %s acre-ft\n", seriesTotal(result.Series))
	fmt.Printf("Engine Time: %v\n\n", result.Elapsed)

	if len(result.Series) > 0 {
		fmt.Printf("📅 Monthly Depletion:\n")
		printSeriesTable(result.Series)
	}

	for _, reach := range sortedReaches(config.Reaches) {
		fmt.Printf("🏞  Reach %d:\n", reach)
		printSeriesTable(reachPoints(config.Reaches[reach]))
	}

	return nil
}

func printSeriesTable(series []entities.DepletionPoint) {
	fmt.Printf("%-12s %-15s\n", "Month", "Acre-Feet")
	fmt.Printf("%-12s %-15s\n", "------------", "---------------")
	for _, point := range series {
		fmt.Printf("%-12s %-15.5f\n", point.Date.Format("2006-01-02"), point.AcreFeet)
	}
	fmt.Println()
}

func generateJSON(result *dto.DepletionResult, config Config) error {
	payload := struct {
		RunID         string                    `json:"run_id"`
		Model         string                    `json:"model"`
		TotalAcreFeet string                    `json:"total_acre_feet"`
		Series        []entities.DepletionPoint `json:"series"`
		Reaches       entities.LaggedResult     `json:"reaches,omitempty"`
	}{
		RunID:         result.RunID,
		Model:         result.Model,
		TotalAcreFeet: seriesTotal(result.Series),
		Series:        result.Series,
		Reaches:       config.Reaches,
	}

	writer, cleanup, err := destination(config, "depletion_results.json")
	if err != nil {
		return err
	}
	defer cleanup()

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func generateCSV(result *dto.DepletionResult, config Config) error {
	writer, cleanup, err := destination(config, "depletion_results.csv")
	if err != nil {
		return err
	}
	defer cleanup()

	w := csv.NewWriter(writer)
	if err := w.Write([]string{"date", "acre_feet"}); err != nil {
		return err
	}
	for _, point := range result.Series {
		record := []string{
			point.Date.Format("2006-01-02"),
			decimal.NewFromFloat(point.AcreFeet).Round(5).String(),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// seriesTotal sums the reported months with decimal accumulation so the
// headline figure is stable regardless of series length.
func seriesTotal(series []entities.DepletionPoint) string {
	total := decimal.Zero
	for _, point := range series {
		total = total.Add(decimal.NewFromFloat(point.AcreFeet))
	}
	return total.Round(5).String()
}

func sortedReaches(lagged entities.LaggedResult) []entities.Reach {
	reaches := make([]entities.Reach, 0, len(lagged))
	for reach := range lagged {
		reaches = append(reaches, reach)
	}
	sort.Slice(reaches, func(i, j int) bool { return reaches[i] < reaches[j] })
	return reaches
}

func reachPoints(series entities.ReachSeries) []entities.DepletionPoint {
	points := make([]entities.DepletionPoint, 0, len(series))
	for date, value := range series {
		points = append(points, entities.DepletionPoint{Date: date, AcreFeet: value})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

func destination(config Config, filename string) (io.Writer, func(), error) {
	if config.OutputDir == "" {
		return os.Stdout, func() {}, nil
	}
	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(config.OutputDir, filename)
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return file, func() { file.Close() }, nil
}
