package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/faultnote/internal/logging"
	"github.com/atomicstack/faultnote/internal/logging/events"
	"github.com/atomicstack/faultnote/internal/remote"
	"github.com/atomicstack/faultnote/internal/state"
	"github.com/atomicstack/faultnote/internal/ui/command"
)

const (
	noTargetText      = "Select a target page first"
	missingFieldsText = "Fill in Error, Problem, and Solution fields first"
	notConnectedText  = "Not connected to Notion; submissions are disabled"
	nothingToSendText = "Internal error: nothing to submit"
)

// submitResultMsg carries the outcome of an append call.
type submitResultMsg struct {
	submission state.Submission
	err        error
}

// submit validates the form and, when it passes, starts the append call.
func (m *Model) submit() tea.Cmd {
	if !m.state.CanSubmit() {
		reason := missingFieldsText
		if len(m.state.Targets()) == 0 {
			reason = noTargetText
		}
		m.reject(reason)
		return nil
	}
	if m.collaborator == nil {
		m.reject(notConnectedText)
		return nil
	}
	sub, ok := m.state.BuildSubmission()
	if !ok {
		m.reject(nothingToSendText)
		return nil
	}

	m.state.StartLoading()
	events.Submit.Start(sub.TargetID, sub.TargetTitle, sub.Entry.Code != nil)

	collaborator := m.collaborator
	cmd := m.bus.Execute(command.Request{
		ID:      "submit:" + sub.TargetID,
		Label:   sub.TargetTitle,
		Timeout: m.timeout,
		Run: func(ctx context.Context) tea.Msg {
			err := collaborator.AppendEntry(ctx, sub.TargetID, sub.Entry)
			return submitResultMsg{submission: sub, err: err}
		},
	})
	return tea.Batch(m.spinner.Tick, cmd)
}

func (m *Model) reject(reason string) {
	events.Submit.Rejected(reason)
	m.state.SetError(reason)
}

func (m *Model) handleSubmitResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(submitResultMsg)
	if !ok {
		return nil
	}
	m.flushPendingTargets()

	if result.err != nil {
		logging.Error(fmt.Errorf("append entry to %s: %w", result.submission.TargetID, result.err))
		events.Submit.Failure(result.submission.TargetID, remote.KindOf(result.err).String(), result.err)
		m.state.SetError(remote.Describe(result.err))
		return nil
	}
	events.Submit.Success(result.submission.TargetID)
	m.state.SetSuccess(fmt.Sprintf("Entry added to %s", result.submission.TargetTitle))
	m.state.ClearAllFields()
	return nil
}
