package testutil

import "github.com/atomicstack/faultnote/internal/backend"

// TargetSource is a manual stand-in for backend.Loader. Events are pushed by
// the test; Refresh calls are only counted.
type TargetSource struct {
	events    chan backend.Event
	refreshes int
}

// NewTargetSource returns a source with room for a few queued events.
func NewTargetSource() *TargetSource {
	return &TargetSource{events: make(chan backend.Event, 8)}
}

func (s *TargetSource) Events() <-chan backend.Event { return s.events }

func (s *TargetSource) Refresh() { s.refreshes++ }

// Push queues evt for the next reader.
func (s *TargetSource) Push(evt backend.Event) { s.events <- evt }

// Close ends the event stream.
func (s *TargetSource) Close() { close(s.events) }

// Refreshes reports how many reloads were requested.
func (s *TargetSource) Refreshes() int { return s.refreshes }
