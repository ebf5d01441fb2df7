package cli

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/cadence/internal/calendar"
	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/engine"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type calendarKeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	Today key.Binding
	Undo  key.Binding
	Quit  key.Binding
}

func (k calendarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Today, k.Undo, k.Quit}
}

func (k calendarKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultCalendarKeys() calendarKeyMap {
	return calendarKeyMap{
		Prev:  key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev month")),
		Next:  key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next month")),
		Today: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Undo:  key.NewBinding(key.WithKeys("u", "ctrl+z"), key.WithHelp("u", "undo")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type monthLoadedMsg struct {
	month      calendar.Month
	categories domain.CategoryConfig
	err        error
}

type undoneMsg struct {
	err error
}

// calendarModel is the interactive month view. Key presses move one month
// each; mouse wheel scrolling goes through the navigator cooldown so a
// single flick does not skip several months.
type calendarModel struct {
	ctx   context.Context
	app   *App
	nav   *calendar.Navigator
	today time.Time
	clock func() time.Time

	month      calendar.Month
	categories domain.CategoryConfig
	loaded     bool
	status     string
	err        error

	keys calendarKeyMap
	help help.Model
}

func newCalendarModel(ctx context.Context, app *App, start, today time.Time) calendarModel {
	return calendarModel{
		ctx:   ctx,
		app:   app,
		nav:   calendar.NewNavigator(start, calendar.NewCooldown(calendar.DefaultCooldown)),
		today: today,
		clock: app.now,
		keys:  defaultCalendarKeys(),
		help:  help.New(),
	}
}

func (m calendarModel) Init() tea.Cmd {
	return m.load()
}

func (m calendarModel) load() tea.Cmd {
	year, month := m.nav.Current()
	return func() tea.Msg {
		mo, err := m.app.Planner.Month(m.ctx, year, month, m.today, m.app.WeekStart)
		if err != nil {
			return monthLoadedMsg{err: err}
		}
		sv, err := m.app.Planner.Settings(m.ctx)
		if err != nil {
			return monthLoadedMsg{err: err}
		}
		return monthLoadedMsg{month: mo, categories: sv.Categories}
	}
}

func (m calendarModel) undo() tea.Cmd {
	return func() tea.Msg {
		_, err := m.app.Planner.Undo(m.ctx)
		return undoneMsg{err: err}
	}
}

func (m calendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case monthLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.month, m.categories, m.loaded = msg.month, msg.categories, true
		}
		return m, nil

	case undoneMsg:
		switch {
		case errors.Is(msg.err, engine.ErrNothingToUndo):
			m.status = "Nothing to undo."
		case msg.err != nil:
			m.err = msg.err
		default:
			m.status = "Undone."
		}
		return m, m.load()

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		delta := 0
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			delta = -1
		case tea.MouseButtonWheelDown:
			delta = 1
		}
		if m.nav.Advance(delta, m.clock()) {
			m.status = ""
			return m, m.load()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.nav.Jump(-1)
		case key.Matches(msg, m.keys.Next):
			m.nav.Jump(1)
		case key.Matches(msg, m.keys.Today):
			m.nav.Reset(m.today)
		case key.Matches(msg, m.keys.Undo):
			return m, m.undo()
		default:
			return m, nil
		}
		m.status = ""
		return m, m.load()
	}
	return m, nil
}

func (m calendarModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n\n" + m.help.View(m.keys)
	}
	if !m.loaded {
		return formatter.Dim("Loading…")
	}
	out := formatter.FormatMonth(m.month, m.categories)
	if m.status != "" {
		out += "\n" + formatter.Dim(m.status) + "\n"
	}
	return out + "\n" + m.help.View(m.keys)
}
