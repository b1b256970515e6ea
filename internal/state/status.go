package state

// StatusKind classifies a status message for rendering.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

const (
	successGlyph = "✓ "
	errorGlyph   = "✗ "

	submittingText = "Submitting..."
)

// Status is the single feedback line shown to the user. It stays until it is
// cleared or replaced.
type Status struct {
	Kind StatusKind
	Text string
}

// String renders the status with its kind prefix: none for info, a check
// mark for success and a cross for errors.
func (s Status) String() string {
	switch s.Kind {
	case StatusSuccess:
		return successGlyph + s.Text
	case StatusError:
		return errorGlyph + s.Text
	default:
		return s.Text
	}
}

// Status returns the current message, if any.
func (m *Model) Status() (Status, bool) {
	if m.status == nil {
		return Status{}, false
	}
	return *m.status, true
}

func (m *Model) SetInfo(text string) {
	m.status = &Status{Kind: StatusInfo, Text: text}
}

// SetSuccess also ends any outstanding submission.
func (m *Model) SetSuccess(text string) {
	m.status = &Status{Kind: StatusSuccess, Text: text}
	m.loading = false
}

// SetError also ends any outstanding submission.
func (m *Model) SetError(text string) {
	m.status = &Status{Kind: StatusError, Text: text}
	m.loading = false
}

func (m *Model) ClearStatus() {
	m.status = nil
}

// StartLoading marks a submission as outstanding.
func (m *Model) StartLoading() {
	m.loading = true
	m.SetInfo(submittingText)
}
