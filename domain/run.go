package domain

import (
	"encoding/json"
	"time"
)

// RunStatus represents the status of a generation run.
type RunStatus string

const (
	RunStatusCreated RunStatus = "CREATED"
	RunStatusRunning RunStatus = "RUNNING"
	RunStatusDone    RunStatus = "DONE"
	RunStatusFailed  RunStatus = "FAILED"
)

// EventType represents the type of a trace event.
type EventType string

const (
	EventTypeRunStarted      EventType = "run_started"
	EventTypeStrategyStarted EventType = "strategy_started"
	EventTypeStrategyDone    EventType = "strategy_done"
	EventTypeImageStarted    EventType = "image_started"
	EventTypeImageDone       EventType = "image_done"
	EventTypeStepStatus      EventType = "step_status"
	EventTypeRunDone         EventType = "run_done"
	EventTypeRunFailed       EventType = "run_failed"
)

// Run represents a single execution of the generation pipeline.
type Run struct {
	RunID     string     `json:"run_id"`
	BrandName string     `json:"brand_name"`
	Status    RunStatus  `json:"status"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// Event represents a trace event for progress polling and replay.
type Event struct {
	EventID string          `json:"event_id"`
	RunID   string          `json:"run_id"`
	Ts      int64           `json:"ts"` // Unix milliseconds
	Type    EventType       `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RunStartedPayload is the payload of a run_started event.
type RunStartedPayload struct {
	BrandName string `json:"brand_name"`
	Vibe      string `json:"vibe"`
}

// StrategyDonePayload is the payload of a strategy_done event.
type StrategyDonePayload struct {
	Tagline   string `json:"tagline"`
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// ImageDonePayload is the payload of an image_done event.
type ImageDonePayload struct {
	Slot      string `json:"slot"`
	ImageURL  string `json:"image_url,omitempty"`
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// StepStatusPayload is the payload of a step_status event.
type StepStatusPayload struct {
	StepID string     `json:"step_id"`
	Status StepStatus `json:"status"`
}

// RunFailedPayload is the payload of a run_failed event.
type RunFailedPayload struct {
	Error string `json:"error"`
}
