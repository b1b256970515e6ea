package state

// FocusArea identifies which half of the screen receives navigation keys.
type FocusArea int

const (
	FocusTargetList FocusArea = iota
	FocusInputSection
)

func (f FocusArea) String() string {
	switch f {
	case FocusInputSection:
		return "input"
	default:
		return "targets"
	}
}

// InputMode selects the key table used by the dispatcher.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeEditing
)

func (m InputMode) String() string {
	if m == ModeEditing {
		return "editing"
	}
	return "normal"
}

// Direction is used by both target and field navigation.
type Direction int

const (
	Next Direction = iota
	Prev
)

// Target is a remote document that entries can be appended to.
type Target struct {
	ID    string
	Title string
}

// Entry is the record assembled from the input buffers at submission time.
// Code is nil when the Code buffer held nothing but whitespace.
type Entry struct {
	Error    string
	Problem  string
	Solution string
	Code     *string
}

// Submission pairs an entry with the target it is addressed to.
type Submission struct {
	TargetID    string
	TargetTitle string
	Entry       Entry
}

// Model owns all mutable application data. It is not safe for concurrent
// use; the ui loop is its only owner.
type Model struct {
	focus    FocusArea
	mode     InputMode
	targets  []Target
	selected int
	active   Field
	buffers  [fieldCount][]rune
	status   *Status
	loading  bool
}

// New returns a model in its start-of-process state.
func New() *Model {
	return &Model{}
}

func (m *Model) Focus() FocusArea { return m.focus }
func (m *Model) Mode() InputMode  { return m.mode }
func (m *Model) Editing() bool    { return m.mode == ModeEditing }
func (m *Model) Loading() bool    { return m.loading }

// ToggleFocus flips between the target list and the input section. Leaving
// the input section always drops back to normal mode.
func (m *Model) ToggleFocus() {
	switch m.focus {
	case FocusTargetList:
		m.focus = FocusInputSection
	default:
		m.focus = FocusTargetList
		m.mode = ModeNormal
	}
}

// EnterEdit switches to editing mode. It does nothing unless the input
// section has focus.
func (m *Model) EnterEdit() {
	if m.focus != FocusInputSection {
		return
	}
	m.mode = ModeEditing
}

func (m *Model) ExitEdit() {
	m.mode = ModeNormal
}

// HandleUp moves the target selection or the active field back by one,
// depending on focus.
func (m *Model) HandleUp() {
	if m.focus == FocusTargetList {
		m.NavigateTarget(Prev)
		return
	}
	m.NavigateField(Prev)
}

// HandleDown is the forward counterpart of HandleUp.
func (m *Model) HandleDown() {
	if m.focus == FocusTargetList {
		m.NavigateTarget(Next)
		return
	}
	m.NavigateField(Next)
}
