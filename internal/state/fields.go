package state

// Field names one of the four input buffers. The zero value is FieldError and
// the model only ever advances it modulo fieldCount, so an out-of-range field
// cannot be stored.
type Field uint8

const (
	FieldError Field = iota
	FieldProblem
	FieldSolution
	FieldCode

	fieldCount = 4
)

// Fields lists every field in display order.
func Fields() []Field {
	return []Field{FieldError, FieldProblem, FieldSolution, FieldCode}
}

func (f Field) String() string {
	switch f {
	case FieldError:
		return "error"
	case FieldProblem:
		return "problem"
	case FieldSolution:
		return "solution"
	case FieldCode:
		return "code"
	default:
		return "unknown"
	}
}

// Valid reports whether f names one of the four buffers.
func (f Field) Valid() bool {
	return f < fieldCount
}

func (f Field) step(dir Direction) Field {
	if dir == Prev {
		return (f + fieldCount - 1) % fieldCount
	}
	return (f + 1) % fieldCount
}

func (m *Model) ActiveField() Field { return m.active }

// NavigateField moves the active field circularly. Focus is not consulted
// here; gating by focus is the dispatcher's concern.
func (m *Model) NavigateField(dir Direction) {
	m.active = m.active.step(dir)
}

// Buffer returns the current text of the given field.
func (m *Model) Buffer(f Field) string {
	if !f.Valid() {
		return ""
	}
	return string(m.buffers[f])
}

func (m *Model) InsertRune(r rune) {
	m.buffers[m.active] = append(m.buffers[m.active], r)
}

func (m *Model) InsertNewline() {
	m.InsertRune('\n')
}

// DeleteLastRune removes the final rune of the active buffer. Deleting from
// an empty buffer is a no-op.
func (m *Model) DeleteLastRune() {
	buf := m.buffers[m.active]
	if len(buf) == 0 {
		return
	}
	m.buffers[m.active] = buf[:len(buf)-1]
}

// ClearAllFields empties every buffer and returns to the first field.
func (m *Model) ClearAllFields() {
	for i := range m.buffers {
		m.buffers[i] = nil
	}
	m.active = FieldError
}
