package depletion

import (
	"context"
	"testing"
	"time"

	"github.com/hydroplan/streamdep/pkg/domain/entities"
	"github.com/hydroplan/streamdep/pkg/domain/services"
	testhelpers "github.com/hydroplan/streamdep/pkg/infrastructure/testing"
)

func TestIntegration_SingleWellAllModels(t *testing.T) {
	ctx := context.Background()

	usage, err := testhelpers.BuildSingleWellUsage().GetUsage()
	if err != nil {
		t.Fatalf("Failed to get usage: %v", err)
	}
	service := NewService()

	infinite, err := service.RunInfinite(ctx, usage,
		testhelpers.SingleWellGloverParameters(),
		testhelpers.ScenarioDaysPerMonth, testhelpers.ScenarioTotalMonths)
	if err != nil {
		t.Fatalf("Infinite run failed: %v", err)
	}

	alluvial, err := service.RunAlluvial(ctx, usage,
		testhelpers.SingleWellAlluvialParameters(),
		testhelpers.ScenarioDaysPerMonth, testhelpers.ScenarioTotalMonths)
	if err != nil {
		t.Fatalf("Alluvial run failed: %v", err)
	}

	sdf, err := service.RunSDF(ctx, usage,
		testhelpers.SingleWellSDFParameters(),
		testhelpers.ScenarioDaysPerMonth, testhelpers.ScenarioTotalMonths)
	if err != nil {
		t.Fatalf("SDF run failed: %v", err)
	}

	totals := map[string]float64{
		"infinite": seriesTotal(t, infinite),
		"alluvial": seriesTotal(t, alluvial),
		"sdf":      seriesTotal(t, sdf),
	}
	for name, total := range totals {
		// Pumped volume bounds the depletion captured from the stream.
		if total <= 0 || total > 100.001 {
			t.Errorf("%s: total depletion %v outside (0, 100]", name, total)
		}
	}

	// The no-flow boundary forces the stream to supply more of the pumped
	// volume than an infinite aquifer would.
	if totals["alluvial"] <= totals["infinite"] {
		t.Errorf("expected alluvial total %v > infinite total %v",
			totals["alluvial"], totals["infinite"])
	}
}

// seriesTotal checks the series starts at the January 2025 usage month and
// sums it.
func seriesTotal(t *testing.T, series []entities.DepletionPoint) float64 {
	t.Helper()
	if len(series) == 0 {
		t.Fatal("expected a non-empty series")
	}
	start := services.Date(2025, time.January, 1)
	if !series[0].Date.Equal(start) {
		t.Fatalf("expected series to start at %s, got %s", start, series[0].Date)
	}
	total := 0.0
	for _, point := range series {
		total += point.AcreFeet
	}
	return total
}

func TestIntegration_TwoReachURFScenario(t *testing.T) {
	urfRepo, usageRepo := testhelpers.BuildTwoReachURF()

	usage, err := usageRepo.GetUsage()
	if err != nil {
		t.Fatalf("Failed to get usage: %v", err)
	}
	values, err := urfRepo.GetValues()
	if err != nil {
		t.Fatalf("Failed to get URF values: %v", err)
	}

	lagged := NewService().LagURF(usage, values)
	combined := CombineURF(lagged)

	// Weights sum to 1.0 per usage month, so the two 100 acre-ft months lag
	// to 200 acre-ft in total.
	total := 0.0
	for _, point := range combined {
		total += point.AcreFeet
	}
	if total < 199.999 || total > 200.001 {
		t.Errorf("expected lagged total ~200, got %v", total)
	}

	if len(lagged) != 2 {
		t.Errorf("expected 2 reaches, got %d", len(lagged))
	}
}
