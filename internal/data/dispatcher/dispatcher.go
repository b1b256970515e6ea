// Package dispatcher folds target loader events into the form state.
package dispatcher

import (
	"fmt"

	"github.com/atomicstack/faultnote/internal/backend"
	"github.com/atomicstack/faultnote/internal/logging/events"
	"github.com/atomicstack/faultnote/internal/state"
)

const emptyTargetsText = "No pages found. Create a page in Notion first."

// Result reports what an event changed.
type Result struct {
	TargetsUpdated bool
	Count          int
	Err            error
}

type Dispatcher struct {
	model *state.Model
}

func New(model *state.Model) *Dispatcher {
	return &Dispatcher{model: model}
}

// Handle applies evt. Failures only touch the status line so the previous
// target list stays usable. Periodic reloads keep the current selection and
// stay quiet unless the list could not be fetched.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	if evt.Err != nil {
		events.Targets.Failed(evt.Reason.String(), evt.Err)
		d.model.SetError(fmt.Sprintf("Failed to fetch pages: %v", evt.Err))
		return Result{Err: evt.Err}
	}

	previous, hadSelection := d.model.SelectedTarget()
	d.model.SetTargets(evt.Targets)
	count := len(evt.Targets)
	events.Targets.Loaded(evt.Reason.String(), count)

	if evt.Reason == backend.ReasonTick {
		if hadSelection {
			d.model.SelectTargetID(previous.ID)
		}
		return Result{TargetsUpdated: true, Count: count}
	}

	if count == 0 {
		d.model.SetInfo(emptyTargetsText)
	} else {
		d.model.SetSuccess(fmt.Sprintf("Loaded %d pages from Notion", count))
	}
	return Result{TargetsUpdated: true, Count: count}
}
