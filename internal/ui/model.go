package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/faultnote/internal/backend"
	"github.com/atomicstack/faultnote/internal/data/dispatcher"
	"github.com/atomicstack/faultnote/internal/remote"
	"github.com/atomicstack/faultnote/internal/state"
	"github.com/atomicstack/faultnote/internal/theme"
	"github.com/atomicstack/faultnote/internal/ui/command"
	uistate "github.com/atomicstack/faultnote/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// TargetSource streams target list updates. *backend.Loader satisfies it.
type TargetSource interface {
	Events() <-chan backend.Event
	Refresh()
}

// Options configures a Model.
type Options struct {
	// State is the form to drive; a fresh one is created when nil.
	State        *state.Model
	Collaborator remote.Collaborator
	Targets      TargetSource
	Timeout      time.Duration
	CodeLanguage string
	// Highlight enables syntax colouring of the code field.
	Highlight bool
	// Preselect is matched against titles after the first successful load.
	Preselect string
	Width     int
	Height    int
}

// Model implements the Bubble Tea model for the incident form.
type Model struct {
	state        *state.Model
	keys         KeyMap
	help         help.Model
	spinner      spinner.Model
	bus          *command.Bus
	collaborator remote.Collaborator
	targets      TargetSource
	dispatcher   *dispatcher.Dispatcher
	pending      []backend.Event

	timeout   time.Duration
	language  string
	highlight bool
	preselect string

	width    int
	height   int
	listView uistate.Viewport

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI around the given form and collaborators.
func NewModel(opts Options) *Model {
	st := opts.State
	if st == nil {
		st = state.New()
	}
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	if styles.Spinner != nil {
		sp.Style = *styles.Spinner
	}
	m := &Model{
		state:        st,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		spinner:      sp,
		bus:          command.New(),
		collaborator: opts.Collaborator,
		targets:      opts.Targets,
		dispatcher:   dispatcher.New(st),
		timeout:      opts.Timeout,
		language:     opts.CodeLanguage,
		highlight:    opts.Highlight,
		preselect:    opts.Preselect,
		width:        opts.Width,
		height:       opts.Height,
	}
	m.help.Width = opts.Width
	if len(st.Targets()) > 0 {
		m.applyPreselect()
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.targets != nil {
		return waitForTargetEvent(m.targets)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

// Snapshot exposes the current form state.
func (m *Model) Snapshot() state.Snapshot {
	return m.state.Snapshot()
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
		reflect.TypeOf(submitResultMsg{}):   m.handleSubmitResultMsg,
		reflect.TypeOf(targetEventMsg{}):    m.handleTargetEventMsg,
		reflect.TypeOf(targetsDoneMsg{}):    m.handleTargetsDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = size.Width
	m.height = size.Height
	m.help.Width = size.Width
	return nil
}

// handleSpinnerTickMsg keeps the spinner running only while submitting.
func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	if !m.state.Loading() {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}
