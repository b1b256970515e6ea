package events

import "github.com/atomicstack/faultnote/internal/logging"

type TargetsTracer struct{}

var Targets = TargetsTracer{}

func (TargetsTracer) Loaded(reason string, count int) {
	logging.Trace("targets.loaded", map[string]interface{}{"reason": reason, "count": count})
}

func (TargetsTracer) Failed(reason string, err error) {
	payload := map[string]interface{}{"reason": reason}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("targets.failed", payload)
}

func (TargetsTracer) Selected(id, title string, index int) {
	logging.Trace("targets.selected", map[string]interface{}{"id": id, "title": title, "index": index})
}
