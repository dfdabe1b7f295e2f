package run

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// runCounter numbers runs within one process
var runCounter uint64

// Run is the tracing context of a single benchmark run
type Run struct {
	ID        string    // Unique run identifier (UUID), attached to events and log lines
	Seq       uint64    // Sequence number within this process
	Active    bool      // Whether the run is still in progress
	StartTime time.Time // When the run began
}

// New starts a run with a unique ID
func New() *Run {
	return &Run{
		ID:        uuid.New().String(),
		Seq:       atomic.AddUint64(&runCounter, 1),
		Active:    true,
		StartTime: time.Now(),
	}
}

// Elapsed reports the wall time since the run started
func (r *Run) Elapsed() time.Duration {
	return time.Since(r.StartTime)
}

// Close marks the run as finished
func (r *Run) Close() {
	r.Active = false
}
