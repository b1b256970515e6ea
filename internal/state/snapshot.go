package state

// Snapshot is an immutable copy of the model taken once per frame. Renderers
// read snapshots and never the live model.
type Snapshot struct {
	Focus       FocusArea
	Mode        InputMode
	Targets     []Target
	Selected    int
	ActiveField Field
	Buffers     [fieldCount]string
	Status      Status
	HasStatus   bool
	Loading     bool
}

// Snapshot copies the current state.
func (m *Model) Snapshot() Snapshot {
	snap := Snapshot{
		Focus:       m.focus,
		Mode:        m.mode,
		Targets:     cloneTargets(m.targets),
		Selected:    m.selected,
		ActiveField: m.active,
		Loading:     m.loading,
	}
	for i := range m.buffers {
		snap.Buffers[i] = string(m.buffers[i])
	}
	if m.status != nil {
		snap.Status = *m.status
		snap.HasStatus = true
	}
	return snap
}

// Buffer returns the text of f as captured in the snapshot.
func (s Snapshot) Buffer(f Field) string {
	if !f.Valid() {
		return ""
	}
	return s.Buffers[f]
}

// EditingField reports whether f is the field currently being edited.
func (s Snapshot) EditingField(f Field) bool {
	return s.Mode == ModeEditing && s.ActiveField == f
}

// FocusedField reports whether f is highlighted in the input section.
func (s Snapshot) FocusedField(f Field) bool {
	return s.Focus == FocusInputSection && s.ActiveField == f
}
