package state

import (
	"fmt"
	"testing"
)

func testTargets(n int) []Target {
	targets := make([]Target, n)
	for i := range targets {
		targets[i] = Target{ID: fmt.Sprintf("id-%d", i), Title: fmt.Sprintf("Page %d", i)}
	}
	return targets
}

func TestTargetNavigationWraps(t *testing.T) {
	m := New()
	m.SetTargets(testTargets(3))

	m.NavigateTarget(Next)
	if m.SelectedIndex() != 1 {
		t.Fatalf("expected 1, got %d", m.SelectedIndex())
	}
	m.NavigateTarget(Next)
	m.NavigateTarget(Next)
	if m.SelectedIndex() != 0 {
		t.Fatalf("expected wrap to 0, got %d", m.SelectedIndex())
	}
	m.NavigateTarget(Prev)
	if m.SelectedIndex() != 2 {
		t.Fatalf("expected prev from 0 to land on 2, got %d", m.SelectedIndex())
	}
}

func TestTargetNavigationClosure(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for start := 0; start < n; start++ {
			m := New()
			m.SetTargets(testTargets(n))
			for i := 0; i < start; i++ {
				m.NavigateTarget(Next)
			}
			for i := 0; i < n; i++ {
				m.NavigateTarget(Next)
			}
			if m.SelectedIndex() != start {
				t.Fatalf("n=%d: expected to return to %d, got %d", n, start, m.SelectedIndex())
			}
			for i := 0; i < n; i++ {
				m.NavigateTarget(Prev)
			}
			if m.SelectedIndex() != start {
				t.Fatalf("n=%d: expected prev closure at %d, got %d", n, start, m.SelectedIndex())
			}
		}
	}
}

func TestTargetNavigationOnEmptyList(t *testing.T) {
	m := New()
	m.NavigateTarget(Next)
	m.NavigateTarget(Prev)
	if m.SelectedIndex() != 0 {
		t.Fatalf("expected 0 on empty list, got %d", m.SelectedIndex())
	}
	if _, ok := m.SelectedTarget(); ok {
		t.Fatalf("expected no selected target on empty list")
	}
}

func TestSetTargetsResetsSelectionAndLoading(t *testing.T) {
	m := New()
	m.SetTargets(testTargets(4))
	m.NavigateTarget(Next)
	m.NavigateTarget(Next)
	m.StartLoading()

	m.SetTargets(testTargets(2))
	if m.SelectedIndex() != 0 {
		t.Fatalf("expected selection reset, got %d", m.SelectedIndex())
	}
	if m.Loading() {
		t.Fatalf("expected loading cleared by SetTargets")
	}
}

func TestSetTargetsKeepsOrderAndDuplicates(t *testing.T) {
	in := []Target{{ID: "b", Title: "B"}, {ID: "a", Title: "A"}, {ID: "b", Title: "B"}}
	m := New()
	m.SetTargets(in)
	in[0].Title = "mutated"

	got := m.Targets()
	if len(got) != 3 {
		t.Fatalf("expected duplicates to pass through, got %d targets", len(got))
	}
	if got[0].Title != "B" || got[1].ID != "a" || got[2].ID != "b" {
		t.Fatalf("unexpected targets %#v", got)
	}
	got[1].ID = "changed"
	if m.Targets()[1].ID != "a" {
		t.Fatalf("expected Targets to return a copy")
	}
}

func TestSelectTargetMatching(t *testing.T) {
	m := New()
	m.SetTargets([]Target{
		{ID: "1", Title: "Frontend Bugs"},
		{ID: "2", Title: "Backend Errors"},
		{ID: "3", Title: "Deploy Notes"},
	})

	if !m.SelectTargetMatching("backend errors") {
		t.Fatalf("expected exact match")
	}
	if m.SelectedIndex() != 1 {
		t.Fatalf("expected index 1, got %d", m.SelectedIndex())
	}
	if !m.SelectTargetMatching("dep") {
		t.Fatalf("expected prefix match")
	}
	if m.SelectedIndex() != 2 {
		t.Fatalf("expected index 2, got %d", m.SelectedIndex())
	}
	if !m.SelectTargetMatching("fbg") {
		t.Fatalf("expected fuzzy match")
	}
	if m.SelectedIndex() != 0 {
		t.Fatalf("expected index 0, got %d", m.SelectedIndex())
	}
	if m.SelectTargetMatching("zzz") {
		t.Fatalf("expected no match")
	}
	if m.SelectedIndex() != 0 {
		t.Fatalf("expected selection untouched, got %d", m.SelectedIndex())
	}
	if m.SelectTargetMatching("  ") {
		t.Fatalf("expected blank query to be ignored")
	}
}

func TestSelectTargetMatchingEmptyList(t *testing.T) {
	m := New()
	if m.SelectTargetMatching("anything") {
		t.Fatalf("expected no match on empty list")
	}
	if m.SelectedIndex() != 0 {
		t.Fatalf("expected index 0, got %d", m.SelectedIndex())
	}
}

func TestSelectTargetID(t *testing.T) {
	m := New()
	m.SetTargets(testTargets(3))
	if !m.SelectTargetID("id-2") || m.SelectedIndex() != 2 {
		t.Fatalf("expected id-2 selected, got %d", m.SelectedIndex())
	}
	if m.SelectTargetID("missing") {
		t.Fatalf("expected unknown id to be rejected")
	}
	if m.SelectedIndex() != 2 {
		t.Fatalf("expected selection untouched, got %d", m.SelectedIndex())
	}
}
