package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/faultnote/internal/state"
)

// Reason records what triggered a fetch.
type Reason int

const (
	ReasonInitial Reason = iota
	ReasonRefresh
	ReasonTick
)

func (r Reason) String() string {
	switch r {
	case ReasonRefresh:
		return "refresh"
	case ReasonTick:
		return "tick"
	default:
		return "initial"
	}
}

// FetchFunc lists the current targets.
type FetchFunc func(ctx context.Context) ([]state.Target, error)

// Event conveys the outcome of one fetch.
type Event struct {
	Reason  Reason
	Targets []state.Target
	Err     error
}

// fetchGap is the minimum spacing between two fetches.
const fetchGap = 500 * time.Millisecond

// Loader runs target fetches off the UI loop: once at start, on every
// Refresh and, when interval is positive, on a ticker.
type Loader struct {
	fetch    FetchFunc
	interval time.Duration
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	refresh chan struct{}
	events  chan Event
	wg      sync.WaitGroup
}

// NewLoader starts a loader. An interval of zero disables periodic fetches.
func NewLoader(fetch FetchFunc, interval time.Duration) *Loader {
	return newLoader(fetch, interval, fetchGap)
}

func newLoader(fetch FetchFunc, interval, gap time.Duration) *Loader {
	ctx, cancel := context.WithCancel(context.Background())
	l := &Loader{
		fetch:    fetch,
		interval: interval,
		throttle: newThrottle(gap),
		ctx:      ctx,
		cancel:   cancel,
		refresh:  make(chan struct{}, 1),
		events:   make(chan Event, 4),
	}

	l.wg.Add(1)
	go l.run()

	go func() {
		l.wg.Wait()
		close(l.events)
	}()

	return l
}

// Events returns the channel fetch results are published on. It is closed
// once the loader has stopped.
func (l *Loader) Events() <-chan Event {
	return l.events
}

// Refresh requests another fetch. Requests made while one is already pending
// collapse into a single fetch.
func (l *Loader) Refresh() {
	select {
	case l.refresh <- struct{}{}:
	default:
	}
}

// Stop cancels the loader. An in-flight fetch sees its context cancelled.
func (l *Loader) Stop() {
	l.cancel()
}

// Wait blocks until the loader goroutine has exited and Events is closed.
func (l *Loader) Wait() {
	l.wg.Wait()
}

func (l *Loader) run() {
	defer l.wg.Done()

	if !l.emit(ReasonInitial) {
		return
	}

	var tick <-chan time.Time
	if l.interval > 0 {
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-l.ctx.Done():
			return
		case <-l.refresh:
			if !l.emit(ReasonRefresh) {
				return
			}
		case <-tick:
			if !l.emit(ReasonTick) {
				return
			}
		}
	}
}

func (l *Loader) emit(reason Reason) bool {
	if !l.throttle.wait(l.ctx) {
		return false
	}
	targets, err := l.fetch(l.ctx)
	if l.ctx.Err() != nil {
		return false
	}
	select {
	case <-l.ctx.Done():
		return false
	case l.events <- Event{Reason: reason, Targets: targets, Err: err}:
		return true
	}
}
