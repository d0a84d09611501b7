package depletion

import (
	"context"
	"testing"
	"time"

	"github.com/hydroplan/streamdep/pkg/domain/entities"
	"github.com/hydroplan/streamdep/pkg/domain/services"
	"github.com/hydroplan/streamdep/pkg/infrastructure/events"
)

func TestEventDrivenService_RunInfinite(t *testing.T) {
	store := events.NewInMemoryEventStore()
	service := NewEventDrivenService(store)

	result, err := service.RunInfinite(context.Background(), singlePullUsage(), gloverParams(), 30.42, 120)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.RunID == "" {
		t.Error("expected a run ID")
	}
	if result.Model != ModelInfinite {
		t.Errorf("expected model %q, got %q", ModelInfinite, result.Model)
	}
	if len(result.Series) == 0 {
		t.Error("expected a non-empty depletion series")
	}

	stream, err := store.ReadEvents(result.RunID, 1)
	if err != nil {
		t.Fatalf("Failed to read run stream: %v", err)
	}
	if len(stream) != 2 {
		t.Fatalf("expected 2 run events, got %d", len(stream))
	}
	if stream[0].Type() != events.RunStartedEvent {
		t.Errorf("expected %s first, got %s", events.RunStartedEvent, stream[0].Type())
	}
	if stream[1].Type() != events.RunCompletedEvent {
		t.Errorf("expected %s second, got %s", events.RunCompletedEvent, stream[1].Type())
	}
}

func TestEventDrivenService_RunFailedEvent(t *testing.T) {
	store := events.NewInMemoryEventStore()
	service := NewEventDrivenService(store)

	badParams := entities.GloverParameters{DistanceToStream: -1, SpecificYield: 0.2, Transmissivity: 1000}
	_, err := service.RunInfinite(context.Background(), singlePullUsage(), badParams, 30.42, 120)
	if err == nil {
		t.Fatal("expected error for invalid parameters")
	}

	all, _ := store.ReadAllEvents(0)
	if len(all) != 2 {
		t.Fatalf("expected 2 events, got %d", len(all))
	}
	if all[1].Type() != events.RunFailedEvent {
		t.Errorf("expected %s, got %s", events.RunFailedEvent, all[1].Type())
	}
}

func TestEventDrivenService_RunURF(t *testing.T) {
	store := events.NewInMemoryEventStore()
	service := NewEventDrivenService(store)

	usage := entities.UsageSeries{
		services.Date(2025, time.July, 1): 100.0,
	}
	values := []entities.URFValue{
		{Month: 7, Reach: 1, Weight: 0.6},
		{Month: 8, Reach: 1, Weight: 0.3},
		{Month: 7, Reach: 2, Weight: 0.1},
	}

	result, lagged, err := service.RunURF(context.Background(), usage, values)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Model != ModelURF {
		t.Errorf("expected model %q, got %q", ModelURF, result.Model)
	}
	if len(lagged) != 2 {
		t.Errorf("expected 2 reaches, got %d", len(lagged))
	}
	if got := result.TotalAcreFeet(); got < 99.999 || got > 100.001 {
		t.Errorf("expected combined total ~100, got %v", got)
	}

	stream, _ := store.ReadEvents(result.RunID, 1)
	if len(stream) != 2 {
		t.Errorf("expected 2 run events, got %d", len(stream))
	}
}

func TestEventDrivenService_DistinctRunIDs(t *testing.T) {
	store := events.NewInMemoryEventStore()
	service := NewEventDrivenService(store)

	first, err := service.RunInfinite(context.Background(), singlePullUsage(), gloverParams(), 30.42, 12)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	second, err := service.RunInfinite(context.Background(), singlePullUsage(), gloverParams(), 30.42, 12)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if first.RunID == second.RunID {
		t.Errorf("expected distinct run IDs, both %s", first.RunID)
	}
}
