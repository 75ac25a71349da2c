package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/idilsaglam/kanban/internal/board"
	"github.com/idilsaglam/kanban/internal/model"
	"github.com/idilsaglam/kanban/internal/source"
)

// Options configure a board session.
type Options struct {
	Source      source.Source
	State       board.ViewState
	Language    language.Tag
	ColumnWidth int
	Log         *zap.Logger
}

type ticketsLoadedMsg struct {
	items []model.WorkItem
	err   error // non-fatal decode problem; items is still usable
}

type fetchFailedMsg struct{ err error }

// menuEntry is one line of the display menu.
type menuEntry struct {
	section string
	label   string
	apply   func(board.ViewState) board.ViewState
	active  func(board.ViewState) bool
}

func menuEntries() []menuEntry {
	var out []menuEntry
	for _, k := range model.GroupKeys() {
		out = append(out, menuEntry{
			section: "Grouping",
			label:   "By " + titleCase(k.String()),
			apply:   func(s board.ViewState) board.ViewState { return s.WithGrouping(k) },
			active:  func(s board.ViewState) bool { return s.Grouping == k },
		})
	}
	for _, m := range model.SortModes() {
		out = append(out, menuEntry{
			section: "Ordering",
			label:   "By " + titleCase(string(m)),
			apply:   func(s board.ViewState) board.ViewState { return s.WithOrdering(m) },
			active:  func(s board.ViewState) bool { return s.Ordering == m },
		})
	}
	return out
}

// Model is the Bubble Tea model for the board.
type Model struct {
	ctx  context.Context
	src  source.Source
	log  *zap.Logger
	lang language.Tag

	items   []model.WorkItem
	state   board.ViewState
	view    board.View
	loading bool
	err     error

	menu       []menuEntry
	menuCursor int

	col       int // focused column
	colOffset int // first visible column
	card      int // selected card within the focused column
	cardTop   int // first visible card within the focused column

	width, height int
	colWidth      int

	keys    keyMap
	help    help.Model
	spinner spinner.Model
}

// New builds a board model. Tickets are fetched once, from Init.
func New(ctx context.Context, opt Options) Model {
	if opt.Log == nil {
		opt.Log = zap.NewNop()
	}
	if opt.ColumnWidth < 20 {
		opt.ColumnWidth = 32
	}
	if opt.Language == language.Und {
		opt.Language = language.English
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:      ctx,
		src:      opt.Source,
		log:      opt.Log,
		lang:     opt.Language,
		items:    []model.WorkItem{},
		state:    opt.State,
		loading:  true,
		menu:     menuEntries(),
		width:    80,
		height:   24,
		colWidth: opt.ColumnWidth,
		keys:     defaultKeys(),
		help:     help.New(),
		spinner:  sp,
	}
	m.derive()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd())
}

// fetchCmd runs the single fetch. Results that arrive after the session's
// context is cancelled are dropped.
func (m Model) fetchCmd() tea.Cmd {
	ctx, src := m.ctx, m.src
	return func() tea.Msg {
		if src == nil {
			return fetchFailedMsg{err: errors.New("no ticket source configured")}
		}
		items, err := src.Fetch(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil && !model.Recoverable(err) {
			return fetchFailedMsg{err: err}
		}
		return ticketsLoadedMsg{items: items, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.clampCursor()
		return m, nil

	case ticketsLoadedMsg:
		if msg.err != nil {
			m.log.Warn("ticket payload malformed, showing remaining tickets", zap.Error(msg.err))
		}
		m.log.Info("tickets loaded", zap.Int("count", len(msg.items)))
		m.items = msg.items
		if m.items == nil {
			m.items = []model.WorkItem{}
		}
		m.loading = false
		m.derive()
		return m, nil

	case fetchFailedMsg:
		m.log.Error("error fetching tickets", zap.Error(msg.err))
		m.err = msg.err
		m.loading = false
		m.items = []model.WorkItem{}
		m.derive()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Menu):
		m.setState(m.state.ToggleMenu())
		return m, nil
	case key.Matches(msg, m.keys.ByStatus):
		m.setState(m.state.WithGrouping(model.GroupByStatus))
		return m, nil
	case key.Matches(msg, m.keys.ByUser):
		m.setState(m.state.WithGrouping(model.GroupByUser))
		return m, nil
	case key.Matches(msg, m.keys.ByPriority):
		m.setState(m.state.WithGrouping(model.GroupByPriority))
		return m, nil
	case key.Matches(msg, m.keys.OrderPrio):
		m.setState(m.state.WithOrdering(model.SortByPriority))
		return m, nil
	case key.Matches(msg, m.keys.OrderTitle):
		m.setState(m.state.WithOrdering(model.SortByTitle))
		return m, nil
	}

	if m.state.MenuOpen {
		switch {
		case key.Matches(msg, m.keys.Close):
			m.setState(m.state.ToggleMenu())
		case key.Matches(msg, m.keys.Up):
			if m.menuCursor > 0 {
				m.menuCursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.menuCursor < len(m.menu)-1 {
				m.menuCursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.setState(m.menu[m.menuCursor].apply(m.state))
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		if m.col > 0 {
			m.col--
			m.card, m.cardTop = 0, 0
		}
	case key.Matches(msg, m.keys.Right):
		if m.col < len(m.view.Columns)-1 {
			m.col++
			m.card, m.cardTop = 0, 0
		}
	case key.Matches(msg, m.keys.Up):
		if m.card > 0 {
			m.card--
		}
	case key.Matches(msg, m.keys.Down):
		if n := m.focusedLen(); m.card < n-1 {
			m.card++
		}
	}
	m.clampCursor()
	return m, nil
}

// setState applies a new ViewState and re-derives the board from the
// in-memory tickets. It never fetches.
func (m *Model) setState(s board.ViewState) {
	regroup := s.Grouping != m.state.Grouping || s.Ordering != m.state.Ordering
	m.state = s
	if regroup {
		m.log.Debug("view changed",
			zap.Stringer("grouping", s.Grouping),
			zap.String("ordering", string(s.Ordering)))
		m.derive()
	}
}

func (m *Model) derive() {
	m.view = board.Derive(m.items, m.state, m.lang)
	m.clampCursor()
}

func (m Model) focusedLen() int {
	if m.col < 0 || m.col >= len(m.view.Columns) {
		return 0
	}
	return len(m.view.Columns[m.col].Items)
}

func (m *Model) clampCursor() {
	if n := len(m.view.Columns); m.col >= n {
		m.col = max(0, n-1)
	}
	if n := m.focusedLen(); m.card >= n {
		m.card = max(0, n-1)
	}

	visibleCols := m.visibleColumns()
	if m.col < m.colOffset {
		m.colOffset = m.col
	}
	if m.col >= m.colOffset+visibleCols {
		m.colOffset = m.col - visibleCols + 1
	}

	visibleCards := m.visibleCards()
	if m.card < m.cardTop {
		m.cardTop = m.card
	}
	if m.card >= m.cardTop+visibleCards {
		m.cardTop = m.card - visibleCards + 1
	}
}

// State returns the current display settings.
func (m Model) State() board.ViewState { return m.state }

// Board returns the derived board.
func (m Model) Board() board.View { return m.view }

// Err returns the fetch failure, if any.
func (m Model) Err() error { return m.err }
