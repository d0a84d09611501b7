package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hydroplan/streamdep/pkg/application/services/depletion"
	"github.com/hydroplan/streamdep/pkg/domain/entities"
	"github.com/hydroplan/streamdep/pkg/domain/services"
	"github.com/hydroplan/streamdep/pkg/infrastructure/repositories/memory"
)

func main() {
	ctx := context.Background()

	// A single irrigation well: 100 acre-ft pumped during January 2025,
	// 4000 ft from the stream.
	usageRepo := memory.NewUsageRepository()
	if err := usageRepo.AddUsage(services.Date(2025, time.January, 1), 100.0); err != nil {
		fmt.Printf("❌ bad usage: %v\n", err)
		return
	}
	usage, _ := usageRepo.GetUsage()

	params := entities.GloverParameters{
		DistanceToStream: 4000.0,
		SpecificYield:    0.2,
		Transmissivity:   35000.0, // ft²/day
	}

	fmt.Println("💧 Running infinite-aquifer depletion...")
	fmt.Printf("Pumped: %.1f acre-ft starting %s\n\n", usage.TotalAcreFeet(), "2025-01")

	service := depletion.NewService()
	series, err := service.RunInfinite(ctx, usage, params, 30.42, 120)
	if err != nil {
		fmt.Printf("❌ run failed: %v\n", err)
		return
	}

	fmt.Printf("📅 Monthly depletion (%d months above the noise floor):\n", len(series))
	for _, point := range series {
		fmt.Printf("  %s: %8.5f acre-ft\n", point.Date.Format("2006-01"), point.AcreFeet)
	}

	total := 0.0
	for _, point := range series {
		total += point.AcreFeet
	}
	fmt.Printf("\nTotal captured from the stream: %.2f acre-ft\n", total)

	// The same usage lagged through a two-reach unit response table.
	fmt.Println("\n🏞  URF lagging the same usage across two reaches...")
	lagged := service.LagURF(usage, []entities.URFValue{
		{Month: 1, Reach: 1, Weight: 0.6},
		{Month: 2, Reach: 1, Weight: 0.3},
		{Month: 1, Reach: 2, Weight: 0.1},
	})
	for _, point := range depletion.CombineURF(lagged) {
		fmt.Printf("  %s: %8.2f acre-ft\n", point.Date.Format("2006-01"), point.AcreFeet)
	}
}
