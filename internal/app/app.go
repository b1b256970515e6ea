package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/atomicstack/faultnote/internal/backend"
	"github.com/atomicstack/faultnote/internal/logging"
	"github.com/atomicstack/faultnote/internal/logging/events"
	"github.com/atomicstack/faultnote/internal/notion"
	"github.com/atomicstack/faultnote/internal/remote"
	"github.com/atomicstack/faultnote/internal/state"
	"github.com/atomicstack/faultnote/internal/ui"
)

const fetchingText = "Fetching pages from Notion..."

// Config describes user-provided application options.
type Config struct {
	APIKey        string
	BaseURL       string
	NotionVersion string
	Timeout       time.Duration
	CodeLanguage  string
	// Target preselects the first page whose title matches.
	Target string
	// Refresh reloads the page list on this interval; zero disables it.
	Refresh time.Duration
	NoColor bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	client, err := notion.New(notion.Options{
		BaseURL:      cfg.BaseURL,
		APIKey:       cfg.APIKey,
		Version:      cfg.NotionVersion,
		Timeout:      cfg.Timeout,
		CodeLanguage: cfg.CodeLanguage,
	})
	if err != nil && !errors.Is(err, remote.ErrNotConfigured) {
		return fmt.Errorf("create notion client: %w", err)
	}

	var (
		collaborator remote.Collaborator
		loader       *backend.Loader
	)
	if client != nil {
		collaborator = client
		loader = backend.NewLoader(client.ListTargets, cfg.Refresh)
		defer loader.Stop()
	}

	model := newModel(cfg, collaborator, loader, err)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// newModel wires the UI. Without a collaborator the form falls back to demo
// pages and reports connectErr on the status line.
func newModel(cfg Config, collaborator remote.Collaborator, loader *backend.Loader, connectErr error) *ui.Model {
	st := state.New()
	opts := ui.Options{
		State:        st,
		Timeout:      cfg.Timeout,
		CodeLanguage: cfg.CodeLanguage,
		Highlight:    !cfg.NoColor,
		Preselect:    cfg.Target,
	}
	if collaborator == nil {
		reason := "not connected"
		if connectErr != nil {
			reason = connectErr.Error()
		}
		logging.Error(fmt.Errorf("demo mode: %s", reason))
		events.App.DemoMode(reason)
		st.SetTargets(remote.DemoTargets())
		st.SetError(fmt.Sprintf("Notion API error: %s. Using demo pages.", reason))
		return ui.NewModel(opts)
	}
	opts.Collaborator = collaborator
	if loader != nil {
		opts.Targets = loader
		st.SetInfo(fetchingText)
	}
	return ui.NewModel(opts)
}
