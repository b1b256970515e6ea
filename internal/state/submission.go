package state

import "strings"

// CanSubmit reports whether the required fields hold non-blank text and a
// target is available. The Code field is optional and never consulted.
func (m *Model) CanSubmit() bool {
	if len(m.targets) == 0 {
		return false
	}
	for _, f := range []Field{FieldError, FieldProblem, FieldSolution} {
		if isBlank(m.buffers[f]) {
			return false
		}
	}
	return true
}

// BuildSubmission snapshots the buffers and the selected target. It returns
// false when CanSubmit does, and never mutates the model.
func (m *Model) BuildSubmission() (Submission, bool) {
	if !m.CanSubmit() {
		return Submission{}, false
	}
	target, ok := m.SelectedTarget()
	if !ok {
		return Submission{}, false
	}
	entry := Entry{
		Error:    string(m.buffers[FieldError]),
		Problem:  string(m.buffers[FieldProblem]),
		Solution: string(m.buffers[FieldSolution]),
	}
	if code := strings.TrimSpace(string(m.buffers[FieldCode])); code != "" {
		entry.Code = &code
	}
	return Submission{TargetID: target.ID, TargetTitle: target.Title, Entry: entry}, true
}

func isBlank(buf []rune) bool {
	return strings.TrimSpace(string(buf)) == ""
}
