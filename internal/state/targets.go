package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Targets returns a copy of the loaded targets in collaborator order.
func (m *Model) Targets() []Target {
	return cloneTargets(m.targets)
}

// SelectedIndex is only meaningful while at least one target is loaded.
func (m *Model) SelectedIndex() int { return m.selected }

// SelectedTarget returns the highlighted target, if any.
func (m *Model) SelectedTarget() (Target, bool) {
	if len(m.targets) == 0 {
		return Target{}, false
	}
	return m.targets[m.selected], true
}

// SetTargets replaces the target list, resets the selection to the first
// entry and clears the loading flag.
func (m *Model) SetTargets(targets []Target) {
	m.targets = cloneTargets(targets)
	m.selected = 0
	m.loading = false
}

// NavigateTarget moves the selection one step, wrapping at both ends.
func (m *Model) NavigateTarget(dir Direction) {
	n := len(m.targets)
	if n == 0 {
		m.selected = 0
		return
	}
	if dir == Prev {
		m.selected = (m.selected - 1 + n) % n
		return
	}
	m.selected = (m.selected + 1) % n
}

// SelectTargetMatching selects the target whose title best matches query.
// Exact and prefix matches win over fuzzy ones; among fuzzy matches the
// smallest edit distance wins and ties keep list order. The selection is left
// alone when nothing matches.
func (m *Model) SelectTargetMatching(query string) bool {
	idx := bestTargetIndex(m.targets, query)
	if idx < 0 {
		return false
	}
	m.selected = idx
	return true
}

// SelectTargetID selects the first target with the given ID.
func (m *Model) SelectTargetID(id string) bool {
	for i, t := range m.targets {
		if t.ID == id {
			m.selected = i
			return true
		}
	}
	return false
}

func bestTargetIndex(targets []Target, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(targets) == 0 {
		return -1
	}
	for i, t := range targets {
		if strings.EqualFold(t.Title, trimmed) || strings.EqualFold(t.ID, trimmed) {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	for i, t := range targets {
		if strings.HasPrefix(strings.ToLower(t.Title), lower) {
			return i
		}
	}
	titles := make([]string, len(targets))
	for i, t := range targets {
		titles[i] = t.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(targets) {
		return -1
	}
	return best.OriginalIndex
}

func cloneTargets(targets []Target) []Target {
	if len(targets) == 0 {
		return nil
	}
	dup := make([]Target, len(targets))
	copy(dup, targets)
	return dup
}
