package ui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/faultnote/internal/logging"
	"github.com/atomicstack/faultnote/internal/remote"
	"github.com/atomicstack/faultnote/internal/state"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "faultnote-ui")
	if err != nil {
		panic(err)
	}
	logging.Configure(filepath.Join(dir, "test.log"))
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

var testPages = []state.Target{
	{ID: "11111111-aaaa", Title: "Project Errors"},
	{ID: "22222222-bbbb", Title: "Bug Tracker"},
}

func newTestHarness(t *testing.T, collaborator remote.Collaborator, targets ...state.Target) *Harness {
	t.Helper()
	st := state.New()
	if len(targets) > 0 {
		st.SetTargets(targets)
	}
	return NewHarness(NewModel(Options{
		State:        st,
		Collaborator: collaborator,
		Timeout:      time.Second,
		CodeLanguage: "go",
		Width:        100,
		Height:       30,
	}))
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// fillForm focuses the input section and types one value per field.
func fillForm(h *Harness, values ...string) {
	h.Press(tea.KeyTab)
	h.Type("e")
	for i, v := range values {
		if i > 0 {
			h.Press(tea.KeyTab)
		}
		h.Type(v)
	}
	h.Press(tea.KeyEsc)
}

// runCmd executes cmd and its batches, returning the produced messages other
// than spinner ticks.
func runCmd(cmd tea.Cmd) []tea.Msg {
	var out []tea.Msg
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case spinner.TickMsg:
		default:
			out = append(out, msg)
		}
	}
	return out
}
