// Package remote defines the contract between the form and the document store
// that receives incident entries.
package remote

import (
	"context"

	"github.com/atomicstack/faultnote/internal/state"
)

// Collaborator lists the documents an entry can be appended to and performs
// the append. Implementations must be safe to call from a goroutine other
// than the UI loop.
type Collaborator interface {
	ListTargets(ctx context.Context) ([]state.Target, error)
	AppendEntry(ctx context.Context, targetID string, entry state.Entry) error
}

// DemoTargets returns the fixed target list used when no store is configured.
func DemoTargets() []state.Target {
	return []state.Target{
		{ID: "demo-1", Title: "Demo: Project Errors"},
		{ID: "demo-2", Title: "Demo: Bug Tracker"},
	}
}
