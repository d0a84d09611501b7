package depletion

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hydroplan/streamdep/pkg/application/dto"
	"github.com/hydroplan/streamdep/pkg/domain/entities"
	"github.com/hydroplan/streamdep/pkg/infrastructure/events"
)

// Model names used in run events and result DTOs.
const (
	ModelInfinite = "infinite"
	ModelAlluvial = "alluvial"
	ModelSDF      = "sdf"
	ModelURF      = "urf"
)

// EventDrivenService wraps the depletion engine and publishes run lifecycle
// events to an event store. Each run gets its own UUID stream.
type EventDrivenService struct {
	service    *Service
	eventStore events.EventStore
}

// NewEventDrivenService wraps a default-configuration engine.
func NewEventDrivenService(eventStore events.EventStore) *EventDrivenService {
	return &EventDrivenService{
		service:    NewService(),
		eventStore: eventStore,
	}
}

// NewEventDrivenServiceWithConfig wraps an engine with custom configuration.
func NewEventDrivenServiceWithConfig(config EngineConfig, eventStore events.EventStore) *EventDrivenService {
	return &EventDrivenService{
		service:    NewServiceWithConfig(config),
		eventStore: eventStore,
	}
}

// RunInfinite runs the infinite-aquifer model, publishing run.started and
// run.completed (or run.failed) around the computation.
func (s *EventDrivenService) RunInfinite(
	ctx context.Context,
	usage entities.UsageSeries,
	params entities.GloverParameters,
	daysPerMonth float64,
	totalMonths int,
) (*dto.DepletionResult, error) {
	return s.runPublished(ctx, ModelInfinite, usage, daysPerMonth, totalMonths,
		func() ([]entities.DepletionPoint, error) {
			return s.service.RunInfinite(ctx, usage, params, daysPerMonth, totalMonths)
		})
}

// RunAlluvial runs the bounded-aquifer image-well model with run events.
func (s *EventDrivenService) RunAlluvial(
	ctx context.Context,
	usage entities.UsageSeries,
	params entities.AlluvialParameters,
	daysPerMonth float64,
	totalMonths int,
) (*dto.DepletionResult, error) {
	return s.runPublished(ctx, ModelAlluvial, usage, daysPerMonth, totalMonths,
		func() ([]entities.DepletionPoint, error) {
			return s.service.RunAlluvial(ctx, usage, params, daysPerMonth, totalMonths)
		})
}

// RunSDF runs the stream depletion factor model with run events.
func (s *EventDrivenService) RunSDF(
	ctx context.Context,
	usage entities.UsageSeries,
	params entities.SDFParameters,
	daysPerMonth float64,
	totalMonths int,
) (*dto.DepletionResult, error) {
	return s.runPublished(ctx, ModelSDF, usage, daysPerMonth, totalMonths,
		func() ([]entities.DepletionPoint, error) {
			return s.service.RunSDF(ctx, usage, params, daysPerMonth, totalMonths)
		})
}

// RunURF lags a usage series through a unit response table and combines the
// reaches, publishing the same run lifecycle events as the closed-form
// models.
func (s *EventDrivenService) RunURF(
	ctx context.Context,
	usage entities.UsageSeries,
	values []entities.URFValue,
) (*dto.DepletionResult, entities.LaggedResult, error) {
	runID := uuid.NewString()
	s.append(runID, events.NewRunStartedEvent(runID, ModelURF, len(usage), 0, 0))

	started := time.Now()
	lagged := s.service.LagURF(usage, values)
	combined := CombineURF(lagged)
	elapsed := time.Since(started)

	s.append(runID, events.NewRunCompletedEvent(runID, ModelURF, combined, elapsed))
	return &dto.DepletionResult{
		RunID:   runID,
		Model:   ModelURF,
		Series:  combined,
		Elapsed: elapsed,
	}, lagged, nil
}

func (s *EventDrivenService) runPublished(
	ctx context.Context,
	model string,
	usage entities.UsageSeries,
	daysPerMonth float64,
	totalMonths int,
	run func() ([]entities.DepletionPoint, error),
) (*dto.DepletionResult, error) {
	runID := uuid.NewString()
	s.append(runID, events.NewRunStartedEvent(runID, model, len(usage), daysPerMonth, totalMonths))

	started := time.Now()
	series, err := run()
	elapsed := time.Since(started)
	if err != nil {
		s.append(runID, events.NewRunFailedEvent(runID, model, err))
		return nil, err
	}

	s.append(runID, events.NewRunCompletedEvent(runID, model, series, elapsed))
	return &dto.DepletionResult{
		RunID:   runID,
		Model:   model,
		Series:  series,
		Elapsed: elapsed,
	}, nil
}

func (s *EventDrivenService) append(streamID string, event events.Event) {
	// Event publication is best effort; a full store never blocks a run.
	_ = s.eventStore.AppendEvent(streamID, event)
}
