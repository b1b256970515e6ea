package backend

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atomicstack/faultnote/internal/state"
)

func recv(t *testing.T, l *Loader) Event {
	t.Helper()
	select {
	case evt, ok := <-l.Events():
		if !ok {
			t.Fatalf("events channel closed")
		}
		return evt
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for loader event")
	}
	return Event{}
}

func TestLoaderEmitsInitialFetch(t *testing.T) {
	want := []state.Target{{ID: "a", Title: "A"}}
	l := newLoader(func(ctx context.Context) ([]state.Target, error) {
		return want, nil
	}, 0, 0)
	defer func() {
		l.Stop()
		l.Wait()
	}()

	evt := recv(t, l)
	if evt.Reason != ReasonInitial || evt.Err != nil || len(evt.Targets) != 1 {
		t.Fatalf("unexpected event %#v", evt)
	}
}

func TestLoaderRefreshAndErrors(t *testing.T) {
	var calls int32
	boom := errors.New("boom")
	l := newLoader(func(ctx context.Context) ([]state.Target, error) {
		if atomic.AddInt32(&calls, 1) == 2 {
			return nil, boom
		}
		return nil, nil
	}, 0, 0)
	defer func() {
		l.Stop()
		l.Wait()
	}()

	recv(t, l)
	l.Refresh()
	evt := recv(t, l)
	if evt.Reason != ReasonRefresh || !errors.Is(evt.Err, boom) {
		t.Fatalf("unexpected refresh event %#v", evt)
	}
}

func TestLoaderTicks(t *testing.T) {
	l := newLoader(func(ctx context.Context) ([]state.Target, error) {
		return nil, nil
	}, 10*time.Millisecond, 0)
	defer func() {
		l.Stop()
		l.Wait()
	}()

	recv(t, l)
	if evt := recv(t, l); evt.Reason != ReasonTick {
		t.Fatalf("expected tick event, got %v", evt.Reason)
	}
}

func TestLoaderStopClosesEvents(t *testing.T) {
	started := make(chan struct{})
	l := newLoader(func(ctx context.Context) ([]state.Target, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	}, 0, 0)

	<-started
	l.Stop()
	l.Wait()
	if _, ok := <-l.Events(); ok {
		t.Fatalf("expected no event after stop during fetch")
	}
}

func TestThrottleSpacesCalls(t *testing.T) {
	th := newThrottle(30 * time.Millisecond)
	ctx := context.Background()
	start := time.Now()
	th.wait(ctx)
	th.wait(ctx)
	if elapsed := time.Since(start); elapsed < 25*time.Millisecond {
		t.Fatalf("expected second wait to be delayed, took %v", elapsed)
	}
}

func TestThrottleHonoursContext(t *testing.T) {
	th := newThrottle(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	if !th.wait(ctx) {
		t.Fatalf("expected first wait to pass")
	}
	cancel()
	if th.wait(ctx) {
		t.Fatalf("expected cancelled wait to report false")
	}
}
