package events

import (
	"time"

	"github.com/hydroplan/streamdep/pkg/domain/entities"
)

const (
	UsageLoadedEvent = "usage.loaded"
	URFLoadedEvent   = "urf.loaded"

	RunStartedEvent   = "run.started"
	RunCompletedEvent = "run.completed"
	RunFailedEvent    = "run.failed"
)

// UsageLoaded records a usage series entering the system.
type UsageLoaded struct {
	Months        int     `json:"months"`
	TotalAcreFeet float64 `json:"total_acre_feet"`
}

// URFLoaded records a unit response table entering the system.
type URFLoaded struct {
	Entries int `json:"entries"`
	Reaches int `json:"reaches"`
}

// RunStarted records the parameters a depletion run was launched with.
type RunStarted struct {
	Model        string  `json:"model"`
	UsageMonths  int     `json:"usage_months"`
	DaysPerMonth float64 `json:"days_per_month"`
	TotalMonths  int     `json:"total_months"`
}

// RunCompleted records the windowed outcome of a depletion run.
type RunCompleted struct {
	Model         string        `json:"model"`
	ResultMonths  int           `json:"result_months"`
	TotalAcreFeet float64       `json:"total_acre_feet"`
	Elapsed       time.Duration `json:"elapsed"`
}

// RunFailed records a run rejected before any computation.
type RunFailed struct {
	Model string `json:"model"`
	Error string `json:"error"`
}

// NewUsageLoadedEvent builds a usage.loaded event for a stream.
func NewUsageLoadedEvent(streamID string, usage entities.UsageSeries) Event {
	return NewEvent(UsageLoadedEvent, streamID, UsageLoaded{
		Months:        len(usage),
		TotalAcreFeet: usage.TotalAcreFeet(),
	})
}

// NewURFLoadedEvent builds a urf.loaded event for a stream.
func NewURFLoadedEvent(streamID string, values []entities.URFValue) Event {
	reaches := make(map[entities.Reach]bool)
	for _, value := range values {
		reaches[value.Reach] = true
	}
	return NewEvent(URFLoadedEvent, streamID, URFLoaded{
		Entries: len(values),
		Reaches: len(reaches),
	})
}

// NewRunStartedEvent builds a run.started event.
func NewRunStartedEvent(streamID, model string, usageMonths int, daysPerMonth float64, totalMonths int) Event {
	return NewEvent(RunStartedEvent, streamID, RunStarted{
		Model:        model,
		UsageMonths:  usageMonths,
		DaysPerMonth: daysPerMonth,
		TotalMonths:  totalMonths,
	})
}

// NewRunCompletedEvent builds a run.completed event.
func NewRunCompletedEvent(streamID, model string, series []entities.DepletionPoint, elapsed time.Duration) Event {
	total := 0.0
	for _, point := range series {
		total += point.AcreFeet
	}
	return NewEvent(RunCompletedEvent, streamID, RunCompleted{
		Model:         model,
		ResultMonths:  len(series),
		TotalAcreFeet: total,
		Elapsed:       elapsed,
	})
}

// NewRunFailedEvent builds a run.failed event.
func NewRunFailedEvent(streamID, model string, err error) Event {
	return NewEvent(RunFailedEvent, streamID, RunFailed{Model: model, Error: err.Error()})
}
