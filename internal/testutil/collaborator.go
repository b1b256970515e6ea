// Package testutil provides test doubles shared across packages.
package testutil

import (
	"context"
	"sync"

	"github.com/atomicstack/faultnote/internal/remote"
	"github.com/atomicstack/faultnote/internal/state"
)

// Append records one AppendEntry call.
type Append struct {
	TargetID string
	Entry    state.Entry
}

// Collaborator is an in-memory remote.Collaborator that records appends.
// Set ListErr or AppendErr to make the matching call fail.
type Collaborator struct {
	mu        sync.Mutex
	targets   []state.Target
	appends   []Append
	lists     int
	ListErr   error
	AppendErr error
}

var _ remote.Collaborator = (*Collaborator)(nil)

// NewCollaborator returns a fake serving targets.
func NewCollaborator(targets ...state.Target) *Collaborator {
	return &Collaborator{targets: append([]state.Target(nil), targets...)}
}

func (c *Collaborator) ListTargets(ctx context.Context) ([]state.Target, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.ListErr != nil {
		return nil, c.ListErr
	}
	return append([]state.Target(nil), c.targets...), nil
}

func (c *Collaborator) AppendEntry(ctx context.Context, targetID string, entry state.Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.AppendErr != nil {
		return c.AppendErr
	}
	c.appends = append(c.appends, Append{TargetID: targetID, Entry: entry})
	return nil
}

// SetTargets replaces the served target list.
func (c *Collaborator) SetTargets(targets ...state.Target) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.targets = append([]state.Target(nil), targets...)
}

// Appends returns the recorded appends in call order.
func (c *Collaborator) Appends() []Append {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Append(nil), c.appends...)
}

// ListCalls reports how many times ListTargets ran.
func (c *Collaborator) ListCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lists
}
