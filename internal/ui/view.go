package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/faultnote/internal/format/table"
	"github.com/atomicstack/faultnote/internal/state"
)

const (
	appTitle      = "📋 FaultNote"
	appSubtitle   = "- Error Logger"
	listTitle     = "📚 Notion Pages"
	emptyListText = " No pages loaded"
	caret         = "▌"
	selectedMark  = "▶ "
	plainMark     = "  "
	shortIDRunes  = 8

	defaultWidth  = 100
	defaultHeight = 30
	listPercent   = 25
	minListWidth  = 16
	minMainHeight = 12
)

var fieldTitles = map[state.Field]string{
	state.FieldError:    "🔴 Error",
	state.FieldProblem:  "🟡 Problem",
	state.FieldSolution: "🟢 Solution",
	state.FieldCode:     "💻 Code (optional)",
}

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.state.Snapshot()
	width, height := m.size()

	title := m.renderTitleBar(snap, width)
	helpBar := m.renderHelpBar(snap, width)

	mainHeight := height - lipgloss.Height(title) - lipgloss.Height(helpBar)
	if mainHeight < minMainHeight {
		mainHeight = minMainHeight
	}
	listWidth := width * listPercent / 100
	if listWidth < minListWidth {
		listWidth = minListWidth
	}
	formWidth := width - listWidth
	if formWidth < minListWidth {
		formWidth = minListWidth
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderTargetList(snap, listWidth, mainHeight),
		m.renderForm(snap, formWidth, mainHeight),
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, body, helpBar)
}

func (m *Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

func (m *Model) renderTitleBar(snap state.Snapshot, width int) string {
	badge := styles.ModeNormal.Render("NORMAL")
	if snap.Mode == state.ModeEditing {
		badge = styles.ModeEditing.Render("EDITING")
	}
	parts := []string{styles.Title.Render(appTitle), styles.Info.Render(appSubtitle), badge}
	if snap.HasStatus {
		text := snap.Status.String()
		if snap.Loading {
			text = m.spinner.View() + " " + text
		}
		parts = append(parts, statusStyle(snap.Status.Kind).Render(text))
	}
	line := strings.Join(parts, " ")
	return styles.TitleBar.Render(ansi.Truncate(line, width-2, "…"))
}

func statusStyle(kind state.StatusKind) *lipgloss.Style {
	switch kind {
	case state.StatusSuccess:
		return styles.Success
	case state.StatusError:
		return styles.Error
	default:
		return styles.Info
	}
}

func (m *Model) renderHelpBar(snap state.Snapshot, width int) string {
	var keys help.KeyMap = m.keys.Normal
	if snap.Mode == state.ModeEditing {
		keys = m.keys.Editing
	}
	m.help.Width = width - 2
	return styles.Help.Render(m.help.View(keys))
}

func (m *Model) renderTargetList(snap state.Snapshot, width, height int) string {
	style := styles.Pane
	if snap.Focus == state.FocusTargetList {
		style = styles.FocusedPane
	}
	inner := width - 2
	visible := height - 3
	if visible < 1 {
		visible = 1
	}

	var lines []string
	if len(snap.Targets) == 0 {
		lines = append(lines, styles.Empty.Render(emptyListText))
		m.listView.Offset = 0
		return renderPane(style, listTitle, lines, width, height)
	}

	m.listView.Ensure(snap.Selected, len(snap.Targets), visible)
	start, end := m.listView.Window(len(snap.Targets), visible)
	rows := make([][]string, 0, end-start)
	for _, target := range snap.Targets[start:end] {
		rows = append(rows, []string{target.Title, shortID(target.ID)})
	}
	rowWidth := inner - ansi.StringWidth(selectedMark)
	formatted := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight}, rowWidth)
	for i, row := range formatted {
		if start+i == snap.Selected {
			pad := rowWidth - ansi.StringWidth(row)
			if pad > 0 {
				row += strings.Repeat(" ", pad)
			}
			lines = append(lines, styles.SelectedIndicator.Render(selectedMark)+styles.SelectedItem.Render(row))
			continue
		}
		lines = append(lines, styles.ItemIndicator.Render(plainMark)+styles.Item.Render(row))
	}
	return renderPane(style, listTitle, lines, width, height)
}

// shortID trims a page id to a short column-friendly tag.
func shortID(id string) string {
	compact := []rune(strings.ReplaceAll(id, "-", ""))
	if len(compact) > shortIDRunes {
		compact = compact[:shortIDRunes]
	}
	return string(compact)
}

func (m *Model) renderForm(snap state.Snapshot, width, height int) string {
	fields := state.Fields()
	base := height / len(fields)
	panes := make([]string, 0, len(fields))
	for i, f := range fields {
		h := base
		if i == len(fields)-1 {
			h = height - base*(len(fields)-1)
		}
		panes = append(panes, m.renderField(snap, f, width, h))
	}
	return lipgloss.JoinVertical(lipgloss.Left, panes...)
}

func (m *Model) renderField(snap state.Snapshot, f state.Field, width, height int) string {
	style := styles.Pane
	switch {
	case snap.EditingField(f):
		style = styles.EditingPane
	case snap.FocusedField(f):
		style = styles.FocusedPane
	}
	inner := width - 2
	visible := height - 3
	if visible < 1 {
		visible = 1
	}

	text := snap.Buffer(f)
	if snap.EditingField(f) {
		lines := wrapLines(text, inner-ansi.StringWidth(caret))
		lines[len(lines)-1] += styles.Cursor.Render(caret)
		if len(lines) > visible {
			lines = lines[len(lines)-visible:]
		}
		return renderPane(style, fieldTitles[f], lines, width, height)
	}

	var lines []string
	if f == state.FieldCode && m.highlight && strings.TrimSpace(text) != "" {
		if colored, ok := highlightCode(text, m.language); ok {
			lines = wrapLines(colored, inner)
		}
	}
	if lines == nil {
		lines = wrapLines(text, inner)
		for i := range lines {
			lines[i] = styles.Text.Render(lines[i])
		}
	}
	return renderPane(style, fieldTitles[f], lines, width, height)
}

// wrapLines splits text on line breaks and hard-wraps each line to width
// cells. It always returns at least one line.
func wrapLines(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if ansi.StringWidth(line) <= width {
			out = append(out, line)
			continue
		}
		out = append(out, strings.Split(ansi.Hardwrap(line, width, true), "\n")...)
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}

// renderPane draws a bordered box of exactly width by height cells with a
// title row followed by as many content lines as fit.
func renderPane(style *lipgloss.Style, title string, lines []string, width, height int) string {
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	rows := height - 2
	if rows < 1 {
		rows = 1
	}
	content := make([]string, 0, rows)
	content = append(content, styles.PaneTitle.Render(ansi.Truncate(title, inner, "…")))
	for _, line := range lines {
		if len(content) == rows {
			break
		}
		content = append(content, ansi.Truncate(line, inner, ""))
	}
	return style.Width(inner).Height(rows).Render(strings.Join(content, "\n"))
}
