package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func fill(m *Model, f Field, text string) {
	for m.ActiveField() != f {
		m.NavigateField(Next)
	}
	for _, r := range text {
		m.InsertRune(r)
	}
}

func strPtr(s string) *string { return &s }

func TestCanSubmitTruthTable(t *testing.T) {
	trueRows := 0
	for mask := 0; mask < 16; mask++ {
		errorSet := mask&1 != 0
		problemSet := mask&2 != 0
		solutionSet := mask&4 != 0
		targetPresent := mask&8 != 0

		m := New()
		if errorSet {
			fill(m, FieldError, "E")
		} else {
			fill(m, FieldError, "  \n\t")
		}
		if problemSet {
			fill(m, FieldProblem, "P")
		}
		if solutionSet {
			fill(m, FieldSolution, "S")
		} else {
			fill(m, FieldSolution, "   ")
		}
		fill(m, FieldCode, "irrelevant")
		if targetPresent {
			m.SetTargets([]Target{{ID: "t", Title: "T"}})
		}

		want := errorSet && problemSet && solutionSet && targetPresent
		if got := m.CanSubmit(); got != want {
			t.Fatalf("mask %04b: CanSubmit() = %v, want %v", mask, got, want)
		}
		if _, ok := m.BuildSubmission(); ok != want {
			t.Fatalf("mask %04b: BuildSubmission ok = %v, want %v", mask, ok, want)
		}
		if want {
			trueRows++
		}
	}
	if trueRows != 1 {
		t.Fatalf("expected exactly one satisfying row, got %d", trueRows)
	}
}

func TestCanSubmitIgnoresCode(t *testing.T) {
	m := New()
	m.SetTargets([]Target{{ID: "1", Title: "Test"}})
	fill(m, FieldError, "Error")
	fill(m, FieldProblem, "Problem")
	fill(m, FieldSolution, "Solution")
	if !m.CanSubmit() {
		t.Fatalf("expected submittable without code")
	}
	fill(m, FieldCode, "fn main() {}")
	if !m.CanSubmit() {
		t.Fatalf("expected submittable with code")
	}
}

func TestBuildSubmissionSnapshot(t *testing.T) {
	m := New()
	if _, ok := m.BuildSubmission(); ok {
		t.Fatalf("expected no submission from fresh model")
	}
	m.SetTargets([]Target{{ID: "page-a", Title: "A"}, {ID: "page-b", Title: "B"}})
	m.NavigateTarget(Next)
	fill(m, FieldError, "Error")
	fill(m, FieldProblem, "Problem")
	fill(m, FieldSolution, "Solution")
	fill(m, FieldCode, "  let x = 1;\n")

	got, ok := m.BuildSubmission()
	if !ok {
		t.Fatalf("expected submission")
	}
	want := Submission{
		TargetID:    "page-b",
		TargetTitle: "B",
		Entry: Entry{
			Error:    "Error",
			Problem:  "Problem",
			Solution: "Solution",
			Code:     strPtr("let x = 1;"),
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("submission mismatch (-want +got):\n%s", diff)
	}

	if m.Buffer(FieldCode) != "  let x = 1;\n" {
		t.Fatalf("expected BuildSubmission not to mutate buffers")
	}
	if m.ActiveField() != FieldCode {
		t.Fatalf("expected BuildSubmission not to move the active field")
	}
}

func TestBuildSubmissionBlankCodeIsAbsent(t *testing.T) {
	m := New()
	m.SetTargets([]Target{{ID: "p", Title: "P"}})
	fill(m, FieldError, "E")
	fill(m, FieldProblem, "P")
	fill(m, FieldSolution, "S")
	fill(m, FieldCode, " \n ")

	got, ok := m.BuildSubmission()
	if !ok {
		t.Fatalf("expected submission")
	}
	if got.Entry.Code != nil {
		t.Fatalf("expected nil code for blank buffer, got %q", *got.Entry.Code)
	}
}
