package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/faultnote/internal/backend"
	"github.com/atomicstack/faultnote/internal/logging"
	"github.com/atomicstack/faultnote/internal/logging/events"
)

func waitForTargetEvent(src TargetSource) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-src.Events()
		if !ok {
			return targetsDoneMsg{}
		}
		return targetEventMsg{event: evt}
	}
}

type targetEventMsg struct {
	event backend.Event
}

type targetsDoneMsg struct{}

// handleTargetEventMsg applies a loader event, or holds it while a
// submission is outstanding so the loading flag is not cleared mid-flight.
func (m *Model) handleTargetEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(targetEventMsg)
	if !ok {
		return nil
	}
	if m.state.Loading() {
		m.pending = append(m.pending, eventMsg.event)
	} else {
		m.applyTargetEvent(eventMsg.event)
	}
	if m.targets != nil {
		return waitForTargetEvent(m.targets)
	}
	return nil
}

func (m *Model) handleTargetsDoneMsg(msg tea.Msg) tea.Cmd {
	m.targets = nil
	return nil
}

func (m *Model) applyTargetEvent(evt backend.Event) {
	res := m.dispatcher.Handle(evt)
	if res.Err != nil {
		logging.Error(res.Err)
		return
	}
	if res.TargetsUpdated {
		m.applyPreselect()
	}
}

func (m *Model) flushPendingTargets() {
	pending := m.pending
	m.pending = nil
	for _, evt := range pending {
		m.applyTargetEvent(evt)
	}
}

// applyPreselect honours the requested target once, on the first list that
// contains a match.
func (m *Model) applyPreselect() {
	if m.preselect == "" {
		return
	}
	if m.state.SelectTargetMatching(m.preselect) {
		m.preselect = ""
		if target, ok := m.state.SelectedTarget(); ok {
			events.Targets.Selected(target.ID, target.Title, m.state.SelectedIndex())
		}
	}
}
