package events

import "github.com/atomicstack/faultnote/internal/logging"

type FormTracer struct{}

var Form = FormTracer{}

func (FormTracer) Focus(area string) {
	logging.Trace("form.focus", map[string]interface{}{"area": area})
}

func (FormTracer) Mode(mode, field string) {
	logging.Trace("form.mode", map[string]interface{}{"mode": mode, "field": field})
}

func (FormTracer) Field(field string) {
	logging.Trace("form.field", map[string]interface{}{"field": field})
}

func (FormTracer) Cleared() {
	logging.Trace("form.cleared", nil)
}
