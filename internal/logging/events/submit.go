package events

import "github.com/atomicstack/faultnote/internal/logging"

type SubmitTracer struct{}

var Submit = SubmitTracer{}

func (SubmitTracer) Rejected(reason string) {
	logging.Trace("submit.rejected", map[string]interface{}{"reason": reason})
}

func (SubmitTracer) Start(targetID, title string, hasCode bool) {
	logging.Trace("submit.start", map[string]interface{}{"target": targetID, "title": title, "code": hasCode})
}

func (SubmitTracer) Success(targetID string) {
	logging.Trace("submit.success", map[string]interface{}{"target": targetID})
}

func (SubmitTracer) Failure(targetID string, kind string, err error) {
	payload := map[string]interface{}{"target": targetID, "kind": kind}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("submit.failure", payload)
}
