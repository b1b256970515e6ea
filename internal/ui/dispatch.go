package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/faultnote/internal/logging/events"
	"github.com/atomicstack/faultnote/internal/state"
)

const (
	clearedText   = "Inputs cleared"
	reloadingText = "Reloading pages..."
	noReloadText  = "Not connected to Notion; nothing to reload"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.state.Loading() {
		if key.Matches(keyMsg, m.keys.Editing.ForceQuit) {
			return tea.Quit
		}
		return nil
	}
	if m.state.Editing() {
		return m.handleEditingKey(keyMsg)
	}
	return m.handleNormalKey(keyMsg)
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys.Normal
	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Focus):
		m.state.ToggleFocus()
		events.Form.Focus(m.state.Focus().String())
	case key.Matches(msg, k.Up):
		m.state.HandleUp()
		m.traceNavigation()
	case key.Matches(msg, k.Down):
		m.state.HandleDown()
		m.traceNavigation()
	case key.Matches(msg, k.Edit):
		m.state.EnterEdit()
		if m.state.Editing() {
			m.traceMode()
		}
	case key.Matches(msg, k.Submit):
		return m.submit()
	case key.Matches(msg, k.Clear):
		m.state.ClearAllFields()
		m.state.SetInfo(clearedText)
		events.Form.Cleared()
	case key.Matches(msg, k.Dismiss):
		m.state.ClearStatus()
	case key.Matches(msg, k.Reload):
		m.reload()
	}
	return nil
}

func (m *Model) handleEditingKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys.Editing
	switch {
	case key.Matches(msg, k.ForceQuit):
		return tea.Quit
	case key.Matches(msg, k.Exit):
		m.state.ExitEdit()
		m.traceMode()
	case key.Matches(msg, k.Backspace):
		m.state.DeleteLastRune()
	case key.Matches(msg, k.Newline):
		m.state.InsertNewline()
	case key.Matches(msg, k.NextField):
		m.state.ExitEdit()
		m.state.NavigateField(state.Next)
		m.state.EnterEdit()
		events.Form.Field(m.state.ActiveField().String())
	case key.Matches(msg, k.FieldUp):
		m.state.ExitEdit()
		m.state.NavigateField(state.Prev)
		m.traceMode()
	case key.Matches(msg, k.FieldDown):
		m.state.ExitEdit()
		m.state.NavigateField(state.Next)
		m.traceMode()
	default:
		m.insertKey(msg)
	}
	return nil
}

// insertKey types printable input into the active field. Pasted text arrives
// as a single rune key and may carry line breaks.
func (m *Model) insertKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeySpace:
		m.state.InsertRune(' ')
	case tea.KeyRunes:
		if msg.Alt {
			return
		}
		for _, r := range msg.Runes {
			switch r {
			case '\r', '\n':
				m.state.InsertNewline()
			default:
				m.state.InsertRune(r)
			}
		}
	}
}

func (m *Model) reload() {
	if m.targets == nil {
		m.state.SetInfo(noReloadText)
		return
	}
	m.targets.Refresh()
	m.state.SetInfo(reloadingText)
}

func (m *Model) traceNavigation() {
	if m.state.Focus() == state.FocusTargetList {
		if target, ok := m.state.SelectedTarget(); ok {
			events.Targets.Selected(target.ID, target.Title, m.state.SelectedIndex())
		}
		return
	}
	events.Form.Field(m.state.ActiveField().String())
}

func (m *Model) traceMode() {
	events.Form.Mode(m.state.Mode().String(), m.state.ActiveField().String())
}
