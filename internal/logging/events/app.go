package events

import "github.com/atomicstack/faultnote/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) DemoMode(reason string) {
	logging.Trace("app.demo", map[string]interface{}{"reason": reason})
}
