package engine

import "time"

// EventType represents a lifecycle phase of a benchmark run
type EventType string

const (
	EventResolve        EventType = "resolve"
	EventLoadStart      EventType = "load_start"
	EventLoadEnd        EventType = "load_end"
	EventPlan           EventType = "plan"
	EventAggregateStart EventType = "aggregate_start"
	EventAggregateEnd   EventType = "aggregate_end"
	EventReport         EventType = "report"
)

// Event represents a lifecycle event in a benchmark run
type Event struct {
	Type      EventType // Type of event
	RunID     string    // Run ID for tracing
	Timestamp time.Time // When the event occurred
	Data      any       // Phase-specific data (e.g., source, plan text, table shape)
}

// Observer interface for event subscribers
// Observers receive events at major run phases
type Observer interface {
	OnEvent(event Event)
}
