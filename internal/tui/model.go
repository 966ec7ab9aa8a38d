// Package tui hosts the blocklist and allowlist screens in a Bubble Tea program.
package tui

import (
	"context"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/filterpanel/internal/filtering"
	"github.com/rshade/filterpanel/internal/intl"
	"github.com/rshade/filterpanel/internal/logging"
	"github.com/rshade/filterpanel/internal/pagination"
	"github.com/rshade/filterpanel/internal/render"
	"github.com/rshade/filterpanel/internal/table"
	"github.com/rshade/filterpanel/internal/tabs"
)

// ViewState is the top-level state of the model.
type ViewState int

const (
	// ViewStateLoading waits for the first load of every screen.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the active screen.
	ViewStateList
	// ViewStateQuitting means the program is exiting.
	ViewStateQuitting
)

// loadedMsg reports the end of a screen load.
type loadedMsg struct {
	id  string
	err error
}

// actionDoneMsg reports the end of an operation started from a key.
type actionDoneMsg struct {
	status string
	err    error
}

// confirmation is a pending yes/no question.
type confirmation struct {
	prompt string
	run    tea.Cmd
}

// Model is the Bubble Tea model of the filter lists UI.
type Model struct {
	ctx     context.Context
	tabs    *tabs.Tabs[*filtering.Screen]
	loc     *intl.Localizer
	text    *render.Text
	keys    keyMap
	help    help.Model
	spinner spinner.Model

	state   ViewState
	pending map[string]bool
	cursor  int
	confirm *confirmation
	status  string
	err     error

	width  int
	height int
}

// TabID returns the tab id used for a screen's kind.
func TabID(k filtering.Kind) string {
	return k.String() + "s"
}

// NewModel creates a model with one tab per screen. Styled enables colors.
func NewModel(ctx context.Context, styled bool, screens ...*filtering.Screen) *Model {
	items := make([]tabs.Item[*filtering.Screen], 0, len(screens))
	pending := make(map[string]bool, len(screens))
	for _, s := range screens {
		id := TabID(s.Kind())
		items = append(items, tabs.Item[*filtering.Screen]{ID: id, Label: s.Title(), Content: s})
		pending[id] = true
	}

	loc := intl.New("")
	if len(screens) > 0 {
		loc = screens[0].Localizer()
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(SpinnerStyle))

	return &Model{
		ctx:     ctx,
		tabs:    tabs.New(items, tabs.Options{}),
		loc:     loc,
		text:    &render.Text{Styled: styled, Cursor: -1},
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: sp,
		state:   ViewStateLoading,
		pending: pending,
	}
}

// Init starts the spinner and loads every screen.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	for _, item := range m.tabs.Items() {
		cmds = append(cmds, m.loadCmd(item.ID, item.Content))
	}
	return tea.Batch(cmds...)
}

func (m *Model) loadCmd(id string, s *filtering.Screen) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return loadedMsg{id: id, err: s.Load(ctx)}
	}
}

// State returns the view state.
func (m *Model) State() ViewState {
	return m.state
}

// Cursor returns the highlighted row on the current page.
func (m *Model) Cursor() int {
	return m.cursor
}

// ActiveTab returns the id of the visible tab.
func (m *Model) ActiveTab() string {
	return m.tabs.ActiveID()
}

// Screen returns the visible screen.
func (m *Model) Screen() *filtering.Screen {
	s, _ := m.tabs.ActiveContent()
	return s
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		return m.handleLoaded(msg)

	case actionDoneMsg:
		m.status = msg.status
		m.err = msg.err
		if m.err != nil {
			m.status = ""
		}
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *Model) handleLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	delete(m.pending, msg.id)
	if msg.err != nil {
		m.err = msg.err
		logging.FromContext(m.ctx).Warn().Ctx(m.ctx).Str("component", "tui").Str("tab", msg.id).Err(msg.err).Msg("screen load failed")
	}
	if len(m.pending) == 0 && m.state == ViewStateLoading {
		m.state = ViewStateList
	}
	m.clampCursor()
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) && (m.confirm == nil || msg.String() == "ctrl+c") {
		m.state = ViewStateQuitting
		return m, tea.Quit
	}

	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}

	if m.state != ViewStateList {
		return m, nil
	}
	s := m.Screen()
	if s == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.tabs.Next()
		m.resetView()
	case key.Matches(msg, m.keys.PrevTab):
		m.tabs.Previous()
		m.resetView()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.PrevPage):
		m.pager(s, pagination.Pager.Previous)
	case key.Matches(msg, m.keys.NextPage):
		m.pager(s, pagination.Pager.Next)
	case key.Matches(msg, m.keys.FirstPage):
		m.pager(s, pagination.Pager.First)
	case key.Matches(msg, m.keys.LastPage):
		m.pager(s, pagination.Pager.Last)
	case key.Matches(msg, m.keys.Bigger):
		m.stepPageSize(s, 1)
	case key.Matches(msg, m.keys.Smaller):
		m.stepPageSize(s, -1)
	case key.Matches(msg, m.keys.Sort):
		m.sortColumn(s, int(msg.Runes[0]-'1'))
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()
	case key.Matches(msg, m.keys.Select):
		s.WithTable(func(t *table.Table[filtering.Filter]) {
			if row, ok := rowAt(t, m.cursor); ok {
				t.SelectRow(row.ID, !row.Selected)
			}
		})
	case key.Matches(msg, m.keys.SelectAll):
		s.WithTable(func(t *table.Table[filtering.Filter]) {
			t.SelectAll(!t.AllVisibleSelected())
		})
	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleCmd(s)
	case key.Matches(msg, m.keys.Delete):
		m.askDelete(s)
	case key.Matches(msg, m.keys.DeleteChecked):
		m.askDeleteSelected(s)
	case key.Matches(msg, m.keys.Refresh):
		return m, m.refreshCmd(s)
	}
	return m, nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		run := m.confirm.run
		m.confirm = nil
		return m, run
	case key.Matches(msg, m.keys.No):
		m.confirm = nil
	}
	return m, nil
}

func (m *Model) resetView() {
	m.cursor = 0
	m.status = ""
	m.err = nil
}

// pager presses a pager button. Pager callbacks mutate the table, so they run
// under the screen lock.
func (m *Model) pager(s *filtering.Screen, press func(pagination.Pager) bool) {
	s.WithTable(func(t *table.Table[filtering.Filter]) {
		if p, ok := t.Pager(); ok && press(p) {
			m.cursor = 0
		}
	})
}

func (m *Model) stepPageSize(s *filtering.Screen, step int) {
	s.WithTable(func(t *table.Table[filtering.Filter]) {
		p, ok := t.Pager()
		if !ok {
			return
		}
		if size, ok := nextPageSize(p.PageSizeOptions, p.PageSize, step); ok && p.SelectPageSize(size) {
			m.cursor = 0
		}
	})
}

// nextPageSize returns the option after (step > 0) or before current. A
// current size missing from options moves to the nearest option.
func nextPageSize(options []int, current, step int) (int, bool) {
	sorted := slices.Clone(options)
	slices.Sort(sorted)
	if step > 0 {
		for _, o := range sorted {
			if o > current {
				return o, true
			}
		}
		return 0, false
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] < current {
			return sorted[i], true
		}
	}
	return 0, false
}

func (m *Model) sortColumn(s *filtering.Screen, index int) {
	s.WithTable(func(t *table.Table[filtering.Filter]) {
		cols := t.Columns()
		if index < 0 || index >= len(cols) {
			return
		}
		if t.Sort(cols[index].Key) {
			m.cursor = 0
		}
	})
}

func rowAt(t *table.Table[filtering.Filter], cursor int) (table.Row[filtering.Filter], bool) {
	rows := t.VisibleRows()
	if cursor < 0 || cursor >= len(rows) {
		return table.Row[filtering.Filter]{}, false
	}
	return rows[cursor], true
}

func (m *Model) clampCursor() {
	s := m.Screen()
	if s == nil {
		m.cursor = 0
		return
	}
	n := len(s.View().Rows)
	m.cursor = max(0, min(m.cursor, n-1))
}

// current returns the filter under the cursor.
func (m *Model) current(s *filtering.Screen) (filtering.Filter, bool) {
	var (
		f  filtering.Filter
		ok bool
	)
	s.WithTable(func(t *table.Table[filtering.Filter]) {
		var row table.Row[filtering.Filter]
		row, ok = rowAt(t, m.cursor)
		f = row.Data
	})
	return f, ok
}

// toggleCmd flips the enabled state of the row under the cursor. The request
// runs outside the table lock and reports its own error.
func (m *Model) toggleCmd(s *filtering.Screen) tea.Cmd {
	f, ok := m.current(s)
	if !ok || s.Processing().Any() {
		return nil
	}

	ctx, loc := m.ctx, m.loc
	return func() tea.Msg {
		err := s.ToggleFilter(ctx, f.URL, filtering.ToggleData{Name: f.Name, URL: f.URL, Enabled: !f.Enabled})
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: loc.Get(intl.FilterUpdated, f.Name)}
	}
}

func (m *Model) askDelete(s *filtering.Screen) {
	f, ok := m.current(s)
	if !ok {
		return
	}
	ctx, loc := m.ctx, m.loc
	m.confirm = &confirmation{
		prompt: loc.Get(intl.ListConfirmDelete),
		run: func() tea.Msg {
			if _, err := s.HandleDelete(ctx, f.URL, nil); err != nil {
				return actionDoneMsg{err: err}
			}
			return actionDoneMsg{status: loc.Get(intl.FilterRemoved, f.Name)}
		},
	}
}

func (m *Model) askDeleteSelected(s *filtering.Screen) {
	count := 0
	s.WithTable(func(t *table.Table[filtering.Filter]) { count = t.State().Selected.Len() })
	if count == 0 {
		return
	}
	ctx, loc := m.ctx, m.loc
	m.confirm = &confirmation{
		prompt: loc.Get(intl.ListConfirmDelete),
		run: func() tea.Msg {
			n, err := s.RemoveSelected(ctx, nil)
			if err != nil {
				return actionDoneMsg{err: err}
			}
			return actionDoneMsg{status: loc.Get(intl.FiltersRemoved, n)}
		},
	}
}

func (m *Model) refreshCmd(s *filtering.Screen) tea.Cmd {
	ctx, loc := m.ctx, m.loc
	return func() tea.Msg {
		n, err := s.HandleRefresh(ctx)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: loc.Get(intl.FiltersUpdated, n)}
	}
}
