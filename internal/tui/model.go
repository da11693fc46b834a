// Package tui implements the interactive terminal dashboard: a login
// gate, a searchable comment table with confirmed deletes, and a
// comment-creation form.
package tui

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jdmorgan/comment-dash/internal/dashboard"
	"github.com/jdmorgan/comment-dash/internal/session"
)

type page int

const (
	pageLogin page = iota
	pageList
	pageCreate
)

const statusTimeout = 3 * time.Second

// createFields maps form input indexes to controller field names.
var createFields = [3]string{"name", "email", "body"}

// notifier buffers controller notifications emitted during a command so
// the model can pick them up when the command's message arrives.
type notifier struct {
	mu    sync.Mutex
	notes []dashboard.Notification
}

func (n *notifier) sink(note dashboard.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notes = append(n.notes, note)
}

func (n *notifier) drain() []dashboard.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	notes := n.notes
	n.notes = nil
	return notes
}

type (
	activatedMsg    struct{ err error }
	deletedMsg      struct{}
	submittedMsg    struct{ ok bool }
	navigateListMsg struct{}
	clearStatusMsg  struct{}
)

// Model is the dashboard's bubbletea model.
type Model struct {
	list   *dashboard.ListController
	create *dashboard.CreateController
	sess   *session.Service
	notes  *notifier

	page   page
	width  int
	height int

	loginInputs [2]textinput.Model
	loginErrors [2]string
	loginFocus  int

	table         table.Model
	search        textinput.Model
	searchFocused bool
	confirming    bool
	confirmID     int64

	formInputs [3]textinput.Model
	formFocus  int

	status      string
	statusLevel dashboard.Level

	styles Styles
}

// New creates the dashboard model over the given collaborators.
func New(sess *session.Service, slot *session.Slot, client dashboard.CollectionClient) Model {
	notes := &notifier{}

	username := textinput.New()
	username.Placeholder = "Enter your username"
	username.CharLimit = 64
	username.Width = 36

	password := textinput.New()
	password.Placeholder = "Enter your password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 64
	password.Width = 36

	search := textinput.New()
	search.Placeholder = "Search comments..."
	search.CharLimit = 64
	search.Width = 40

	name := textinput.New()
	name.Placeholder = "Enter your name"
	name.CharLimit = 64
	name.Width = 48

	email := textinput.New()
	email.Placeholder = "Enter your email"
	email.CharLimit = 64
	email.Width = 48

	body := textinput.New()
	body.Placeholder = "Enter your comment"
	body.CharLimit = 500
	body.Width = 48

	t := table.New(
		table.WithColumns(tableColumns(80)),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	return Model{
		list:        dashboard.NewListController(sess, slot, client, notes.sink),
		create:      dashboard.NewCreateController(client, slot, notes.sink, nil),
		sess:        sess,
		notes:       notes,
		page:        pageLogin,
		loginInputs: [2]textinput.Model{username, password},
		table:       t,
		search:      search,
		formInputs:  [3]textinput.Model{name, email, body},
		styles:      DefaultStyles(),
	}
}

// Run starts the dashboard program.
func Run(sess *session.Service, slot *session.Slot, client dashboard.CollectionClient) error {
	_, err := tea.NewProgram(New(sess, slot, client), tea.WithAltScreen()).Run()
	return err
}

func tableColumns(width int) []table.Column {
	body := width - 8 - 20 - 26 - 8
	if body < 20 {
		body = 20
	}
	return []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Name", Width: 20},
		{Title: "Email", Width: 26},
		{Title: "Comment", Width: body},
	}
}

// Init activates the list controller; without a session this lands on
// the login page.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.activateCmd(), textinput.Blink)
}

func (m Model) activateCmd() tea.Cmd {
	return func() tea.Msg {
		return activatedMsg{err: m.list.Activate()}
	}
}

func (m Model) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		m.list.RequestDelete(id, func() bool { return true })
		return deletedMsg{}
	}
}

func (m Model) submitCmd() tea.Cmd {
	return func() tea.Msg {
		return submittedMsg{ok: m.create.Submit()}
	}
}

func expireStatusCmd() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// applyNotes promotes the latest controller notification to the status
// line and schedules its expiry.
func (m Model) applyNotes() (Model, tea.Cmd) {
	notes := m.notes.drain()
	if len(notes) == 0 {
		return m, nil
	}
	last := notes[len(notes)-1]
	m.status = last.Message
	m.statusLevel = last.Level
	return m, expireStatusCmd()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(tableColumns(m.width - 4))
		h := m.height - 10
		if h < 5 {
			h = 5
		}
		m.table.SetHeight(h)
		return m, nil

	case activatedMsg:
		if errors.Is(msg.err, dashboard.ErrLoginRequired) {
			return m.gotoLogin()
		}
		if msg.err != nil {
			m.status = msg.err.Error()
			m.statusLevel = dashboard.LevelError
			return m, expireStatusCmd()
		}
		m.page = pageList
		m.refreshRows()
		return m.applyNotes()

	case deletedMsg:
		m.refreshRows()
		return m.applyNotes()

	case submittedMsg:
		next, cmd := m.applyNotes()
		if msg.ok {
			return next, tea.Batch(cmd, tea.Tick(next.create.NavigateDelay, func(time.Time) tea.Msg {
				return navigateListMsg{}
			}))
		}
		return next, cmd

	case navigateListMsg:
		return m, m.activateCmd()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch m.page {
		case pageLogin:
			return m.updateLogin(msg)
		case pageList:
			return m.updateList(msg)
		case pageCreate:
			return m.updateCreate(msg)
		}
	}

	return m, nil
}

func (m Model) gotoLogin() (Model, tea.Cmd) {
	m.page = pageLogin
	m.loginFocus = 0
	m.loginErrors = [2]string{}
	for i := range m.loginInputs {
		m.loginInputs[i].SetValue("")
		m.loginInputs[i].Blur()
	}
	m.loginInputs[0].Focus()
	return m, textinput.Blink
}

func (m Model) updateLogin(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab", "shift+tab", "up", "down":
		m.loginInputs[m.loginFocus].Blur()
		m.loginFocus = (m.loginFocus + 1) % 2
		m.loginInputs[m.loginFocus].Focus()
		return m, textinput.Blink

	case "enter":
		if m.loginFocus == 0 {
			m.loginInputs[0].Blur()
			m.loginFocus = 1
			m.loginInputs[1].Focus()
			return m, textinput.Blink
		}
		return m.submitLogin()
	}

	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	m.loginErrors[m.loginFocus] = ""
	return m, cmd
}

func (m Model) submitLogin() (Model, tea.Cmd) {
	ok := true
	for i := range m.loginInputs {
		if strings.TrimSpace(m.loginInputs[i].Value()) == "" {
			m.loginErrors[i] = "Field is required"
			ok = false
		}
	}
	if !ok {
		return m, nil
	}

	if err := m.sess.Activate(); err != nil {
		m.status = "Failed to save session"
		m.statusLevel = dashboard.LevelError
		return m, expireStatusCmd()
	}
	return m, m.activateCmd()
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.confirming {
		switch msg.String() {
		case "y", "Y":
			m.confirming = false
			return m, m.deleteCmd(m.confirmID)
		case "n", "N", "esc":
			m.confirming = false
		}
		return m, nil
	}

	if m.searchFocused {
		switch msg.String() {
		case "enter":
			m.searchFocused = false
			m.search.Blur()
			return m, nil
		case "esc":
			m.searchFocused = false
			m.search.Blur()
			m.search.SetValue("")
			m.list.SetQuery("")
			m.refreshRows()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.list.SetQuery(m.search.Value())
		m.refreshRows()
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.searchFocused = true
		m.search.Focus()
		return m, textinput.Blink
	case "r":
		return m, m.activateCmd()
	case "c":
		return m.gotoCreate()
	case "L":
		if err := m.list.Logout(); err != nil {
			m.status = "Failed to clear session"
			m.statusLevel = dashboard.LevelError
			return m, expireStatusCmd()
		}
		return m.gotoLogin()
	case "d":
		if id, ok := m.selectedID(); ok {
			m.confirmID = id
			m.confirming = true
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) gotoCreate() (Model, tea.Cmd) {
	m.page = pageCreate
	m.formFocus = 0
	for i := range m.formInputs {
		m.formInputs[i].SetValue("")
		m.formInputs[i].Blur()
		m.create.SetField(createFields[i], "")
	}
	m.formInputs[0].Focus()
	return m, textinput.Blink
}

func (m Model) updateCreate(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.page = pageList
		return m, nil

	case "tab", "down":
		m.formInputs[m.formFocus].Blur()
		m.formFocus = (m.formFocus + 1) % len(m.formInputs)
		m.formInputs[m.formFocus].Focus()
		return m, textinput.Blink

	case "shift+tab", "up":
		m.formInputs[m.formFocus].Blur()
		m.formFocus = (m.formFocus + len(m.formInputs) - 1) % len(m.formInputs)
		m.formInputs[m.formFocus].Focus()
		return m, textinput.Blink

	case "enter":
		if m.formFocus < len(m.formInputs)-1 {
			m.formInputs[m.formFocus].Blur()
			m.formFocus++
			m.formInputs[m.formFocus].Focus()
			return m, textinput.Blink
		}
		return m.submitCreate()

	case "ctrl+s":
		return m.submitCreate()
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	m.create.SetField(createFields[m.formFocus], m.formInputs[m.formFocus].Value())
	return m, cmd
}

func (m Model) submitCreate() (Model, tea.Cmd) {
	for i := range m.formInputs {
		m.create.SetField(createFields[i], m.formInputs[i].Value())
	}
	if !m.create.Validate() {
		return m, nil
	}
	return m, m.submitCmd()
}

// selectedID parses the comment ID out of the selected table row.
func (m Model) selectedID() (int64, bool) {
	row := m.table.SelectedRow()
	if len(row) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (m *Model) refreshRows() {
	visible := m.list.Visible()
	rows := make([]table.Row, 0, len(visible))
	for _, c := range visible {
		rows = append(rows, table.Row{
			strconv.FormatInt(c.ID, 10),
			truncate(c.Name, 20),
			truncate(c.Email, 26),
			truncate(oneLine(c.Body), 60),
		})
	}
	m.table.SetRows(rows)
}
