package state

import "testing"

func TestStatusMessages(t *testing.T) {
	m := New()
	if _, ok := m.Status(); ok {
		t.Fatalf("expected no status on a fresh model")
	}

	m.SetInfo("Test")
	if st, _ := m.Status(); st.String() != "Test" || st.Kind != StatusInfo {
		t.Fatalf("unexpected info status %#v", st)
	}

	m.SetSuccess("OK")
	if st, _ := m.Status(); st.String() != "✓ OK" {
		t.Fatalf("expected success glyph, got %q", st.String())
	}

	m.SetError("Fail")
	if st, _ := m.Status(); st.String() != "✗ Fail" {
		t.Fatalf("expected error glyph, got %q", st.String())
	}

	m.ClearStatus()
	if _, ok := m.Status(); ok {
		t.Fatalf("expected status cleared")
	}
}

func TestStartLoadingSetsInfo(t *testing.T) {
	m := New()
	m.StartLoading()
	if !m.Loading() {
		t.Fatalf("expected loading")
	}
	st, ok := m.Status()
	if !ok || st.Kind != StatusInfo || st.Text != submittingText {
		t.Fatalf("unexpected status %#v", st)
	}
}

func TestTerminalStatusesClearLoading(t *testing.T) {
	m := New()
	m.StartLoading()
	m.SetSuccess("done")
	if m.Loading() {
		t.Fatalf("expected success to clear loading")
	}

	m.StartLoading()
	m.SetError("failed")
	if m.Loading() {
		t.Fatalf("expected error to clear loading")
	}

	m.StartLoading()
	m.SetInfo("still going")
	if !m.Loading() {
		t.Fatalf("expected info to leave loading untouched")
	}
	m.ClearStatus()
	if !m.Loading() {
		t.Fatalf("expected clear status to leave loading untouched")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	m := New()
	m.SetTargets([]Target{{ID: "a", Title: "A"}})
	m.InsertRune('x')
	m.SetError("boom")

	snap := m.Snapshot()
	m.InsertRune('y')
	m.ClearStatus()
	m.SetTargets(nil)

	if snap.Buffer(FieldError) != "x" {
		t.Fatalf("expected snapshot buffer to stay %q, got %q", "x", snap.Buffer(FieldError))
	}
	if !snap.HasStatus || snap.Status.String() != "✗ boom" {
		t.Fatalf("expected snapshot status preserved, got %#v", snap.Status)
	}
	if len(snap.Targets) != 1 {
		t.Fatalf("expected snapshot targets preserved")
	}
}

func TestSnapshotFieldHelpers(t *testing.T) {
	m := New()
	snap := m.Snapshot()
	if snap.FocusedField(FieldError) {
		t.Fatalf("expected no focused field while target list has focus")
	}
	m.ToggleFocus()
	m.NavigateField(Next)
	m.EnterEdit()
	snap = m.Snapshot()
	if !snap.FocusedField(FieldProblem) || !snap.EditingField(FieldProblem) {
		t.Fatalf("expected problem field focused and editing")
	}
	if snap.EditingField(FieldError) {
		t.Fatalf("expected error field not editing")
	}
}
