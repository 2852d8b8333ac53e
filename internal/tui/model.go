package tui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gabrielfornes/worklog/internal/session"
	"github.com/gabrielfornes/worklog/internal/worklog"
)

// Model is the root Bubble Tea model for worklog. It turns key presses into
// session inputs and paints the session after each one.
type Model struct {
	session *session.Session

	// Terminal dimensions
	width  int
	height int

	table  table.Model
	editor textarea.Model // display only; the session owns the text
	help   help.Model

	// err is the save failure that ended the program, if any.
	err error
}

// NewModel creates the root model for s.
func NewModel(s *session.Session) Model {
	t := table.New(
		table.WithFocused(true),
		table.WithStyles(tableStyles(false)),
	)

	ed := textarea.New()
	ed.Placeholder = "What did you work on?"
	ed.ShowLineNumbers = false
	ed.CharLimit = 0
	ed.MaxHeight = 0
	ed.Focus()

	m := Model{
		session: s,
		width:   defaultTerminalWidth,
		height:  defaultTerminalHeight,
		table:   t,
		editor:  ed,
		help:    help.New(),
	}
	m.resize()
	m.sync()
	return m
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("worklog")
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.sync()
		return m, nil

	case tea.KeyMsg:
		in, ok := translate(m.session.Mode(), msg)
		if !ok {
			return m, nil
		}
		if err := m.session.Handle(in); err != nil {
			log.Printf("stopping after %s: %v", in.Action, err)
			m.err = err
			return m, tea.Quit
		}
		if m.session.Done() {
			return m, tea.Quit
		}
		m.sync()
		return m, nil
	}

	return m, nil
}

// resize fits the table and the editor to the terminal.
func (m *Model) resize() {
	// appStyle padding (2+2) and the list border (1+1); every column
	// carries one cell of padding on each side.
	usable := m.width - 6
	logWidth := usable - 3*2 - 2*timeColumnWidth
	if logWidth < minLogColumnWidth {
		logWidth = minLogColumnWidth
	}
	m.table.SetColumns([]table.Column{
		{Title: "Log", Width: logWidth},
		{Title: "Modified", Width: timeColumnWidth},
		{Title: "Created", Width: timeColumnWidth},
	})
	m.table.SetWidth(usable)

	// Vertical budget: app padding (2), title + margin (2), border (2),
	// status (1), help + margin (2).
	tableHeight := m.height - 9
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.table.SetHeight(tableHeight)

	edWidth := int(float64(m.width) * editorWidthFraction)
	if edWidth < minEditorWidth {
		edWidth = minEditorWidth
	}
	m.editor.SetWidth(edWidth)
	edHeight := m.height / 4
	if edHeight < minEditorHeight {
		edHeight = minEditorHeight
	}
	m.editor.SetHeight(edHeight)

	m.help.Width = m.width - 4
}

// sync copies the session into the widgets.
func (m *Model) sync() {
	entries := m.session.Entries()
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			e.Summary(),
			e.Modified.Local().Format(worklog.TimeLayout),
			e.Created.Local().Format(worklog.TimeLayout),
		}
	}
	m.table.SetRows(rows)

	sel, hasSel := m.session.Selection()
	armed, hasArmed := m.session.Armed()
	if hasSel {
		m.table.SetCursor(sel)
	}
	m.table.SetStyles(tableStyles(hasArmed && armed == sel))

	if buf := m.session.Buffer(); buf != nil {
		m.editor.SetValue(buf.Content())
	} else {
		m.editor.Reset()
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var content string
	switch m.session.Mode() {
	case session.Editing:
		content = m.viewEditor()
	default:
		content = m.viewList()
	}
	return appStyle.MaxWidth(m.width).MaxHeight(m.height).Render(content)
}

func (m Model) viewList() string {
	title := titleStyle.Render(" Log Your Work ")

	var body string
	if len(m.table.Rows()) == 0 {
		body = listPaneStyle.Render(mutedStyle.Render(
			padRight("No entries yet. Press [o] to write one.", m.table.Width()),
		))
	} else {
		body = listPaneStyle.Render(m.table.View())
	}

	status := ""
	switch {
	case m.err != nil:
		status = errorStyle.Render("Error: " + m.err.Error())
	default:
		if _, armed := m.session.Armed(); armed {
			status = warningStyle.Render("Press [d] again to delete this entry")
		}
	}

	helpBar := helpBarStyle.Render(m.help.View(browseKeys))

	return lipgloss.JoinVertical(lipgloss.Left, title, body, status, helpBar)
}

func (m Model) viewEditor() string {
	title := titleStyle.Render(" Log Your Work ")

	label := "New"
	if buf := m.session.Buffer(); buf != nil {
		if _, ok := indexOf(m.session.Entries(), buf.ID()); ok {
			label = "Edit"
		}
	}
	popup := editorPaneStyle.Render(
		paneHeaderStyle.Render(label) + "\n" + m.editor.View(),
	)

	// Everything but the title and the help bar is available to the popup.
	bodyHeight := m.height - 7
	if bodyHeight < lipgloss.Height(popup) {
		bodyHeight = lipgloss.Height(popup)
	}
	body := lipgloss.Place(m.width-4, bodyHeight, lipgloss.Center, lipgloss.Center, popup)

	helpBar := helpBarStyle.Render(m.help.View(editKeys))

	return lipgloss.JoinVertical(lipgloss.Left, title, body, helpBar)
}

func indexOf(entries []worklog.Entry, id string) (int, bool) {
	for i, e := range entries {
		if e.ID == id {
			return i, true
		}
	}
	return -1, false
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
