// Package command runs blocking work off the UI loop as Bubble Tea commands.
package command

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/faultnote/internal/logging/events"
)

// Request describes one unit of blocking work.
type Request struct {
	ID      string
	Label   string
	Timeout time.Duration
	Run     func(ctx context.Context) tea.Msg
}

// Bus wraps requests into commands that carry a deadline and emit traces.
type Bus struct {
	base context.Context
}

// New initialises a command bus instance.
func New() *Bus {
	return NewWithContext(context.Background())
}

// NewWithContext returns a bus whose requests derive from ctx.
func NewWithContext(ctx context.Context) *Bus {
	return &Bus{base: ctx}
}

// Execute wraps req into a Bubble Tea command. A positive Timeout bounds the
// context handed to Run.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		var (
			ctx    context.Context
			cancel context.CancelFunc
		)
		if req.Timeout > 0 {
			ctx, cancel = context.WithTimeout(b.base, req.Timeout)
		} else {
			ctx, cancel = context.WithCancel(b.base)
		}
		defer cancel()

		msg := req.Run(ctx)
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
